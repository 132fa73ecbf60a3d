package character

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/archaosrpg/archaos-bot/internal/domain/character"
	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
	"github.com/archaosrpg/archaos-bot/internal/handlers/discord/utils"
	characterService "github.com/archaosrpg/archaos-bot/internal/services/character"
)

// RaceSelectHandler handles the race selection step of the wizard
type RaceSelectHandler struct {
	characterService characterService.Service
}

// RaceSelectHandlerConfig holds configuration for the race select handler
type RaceSelectHandlerConfig struct {
	CharacterService characterService.Service
}

// NewRaceSelectHandler creates a new race selection handler
func NewRaceSelectHandler(cfg *RaceSelectHandlerConfig) *RaceSelectHandler {
	return &RaceSelectHandler{
		characterService: cfg.CharacterService,
	}
}

// Handle records the chosen race and swaps the menu to class selection
func (h *RaceSelectHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, wizardID string) error {
	userID := utils.UserID(i)

	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return respondEphemeral(s, i, "No race selected. Please pick one from the menu.")
	}

	wizard, err := h.characterService.SelectRace(context.Background(), userID, i.ChannelID, wizardID, character.Race(values[0]))
	if err != nil {
		if dnderr.IsInvalidArgument(err) {
			return respondEphemeral(s, i, "That menu is no longer active. Start a new character to continue.")
		}
		log.Printf("Error selecting race for user %s: %v", userID, err)
		return respondEphemeral(s, i, "Could not record your race. Please try again.")
	}

	return respondUpdate(s, i, wizardEmbed(wizard), classSelectComponents(wizard.ID))
}
