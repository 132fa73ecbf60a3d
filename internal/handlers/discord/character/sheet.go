package character

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/archaosrpg/archaos-bot/internal/config"
	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
	"github.com/archaosrpg/archaos-bot/internal/handlers/discord/utils"
	characterService "github.com/archaosrpg/archaos-bot/internal/services/character"
)

// SheetHandler renders character sheets
type SheetHandler struct {
	characterService characterService.Service
	emojis           config.Emojis
}

// SheetHandlerConfig holds configuration for the sheet handler
type SheetHandlerConfig struct {
	CharacterService characterService.Service
	Emojis           config.Emojis
}

// NewSheetHandler creates a new sheet handler
func NewSheetHandler(cfg *SheetHandlerConfig) *SheetHandler {
	return &SheetHandler{
		characterService: cfg.CharacterService,
		emojis:           cfg.Emojis,
	}
}

// Handle renders the caller's sheet, or another user's sheet when the
// caller is a registered master.
func (h *SheetHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	requesterID := utils.UserID(i)

	targetID := utils.GetUserOptionID(i, "user")
	if targetID == "" {
		targetID = requesterID
	}

	char, err := h.characterService.GetCharacterFor(context.Background(), requesterID, targetID)
	if err != nil {
		switch {
		case dnderr.IsPermissionDenied(err):
			return respondEphemeral(s, i, "Only a master may view another player's sheet.")
		case dnderr.IsNotFound(err):
			if targetID == requesterID {
				return respondEphemeral(s, i, "You don't have a character yet. Create one first!")
			}
			return respondEphemeral(s, i, fmt.Sprintf("<@%s> doesn't have a character.", targetID))
		default:
			log.Printf("Error loading sheet for user %s: %v", targetID, err)
			return respondEphemeral(s, i, "Could not load the sheet. Please try again.")
		}
	}

	ownerName := utils.UserName(i)
	ownerAvatarURL := utils.UserAvatarURL(i)
	if targetID != requesterID {
		if user, userErr := s.User(targetID); userErr == nil {
			ownerName = user.Username
			ownerAvatarURL = user.AvatarURL("")
		}
	}

	embed := BuildSheetEmbed(char, h.emojis, ownerName, ownerAvatarURL)

	// The edit menu only appears under the viewer's own sheet
	var components []discordgo.MessageComponent
	if targetID == requesterID {
		components = sheetComponents()
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}
