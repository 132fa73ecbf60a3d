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

// ClassSelectHandler handles the class selection step of the wizard
type ClassSelectHandler struct {
	characterService characterService.Service
}

// ClassSelectHandlerConfig holds configuration for the class select handler
type ClassSelectHandlerConfig struct {
	CharacterService characterService.Service
}

// NewClassSelectHandler creates a new class selection handler
func NewClassSelectHandler(cfg *ClassSelectHandlerConfig) *ClassSelectHandler {
	return &ClassSelectHandler{
		characterService: cfg.CharacterService,
	}
}

// Handle records the class, which persists the character, then offers
// the optional attribute form.
func (h *ClassSelectHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, wizardID string) error {
	userID := utils.UserID(i)

	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return respondEphemeral(s, i, "No class selected. Please pick one from the menu.")
	}

	char, err := h.characterService.SelectClass(context.Background(), userID, i.ChannelID, wizardID, character.Class(values[0]))
	if err != nil {
		if dnderr.IsInvalidArgument(err) {
			return respondEphemeral(s, i, "That menu is no longer active. Start a new character to continue.")
		}
		log.Printf("Error selecting class for user %s: %v", userID, err)
		return respondEphemeral(s, i, "Could not record your class. Please try again.")
	}

	return respondUpdate(s, i, createdEmbed(char), attributePromptComponents(wizardID))
}
