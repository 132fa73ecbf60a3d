package character

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
	"github.com/archaosrpg/archaos-bot/internal/handlers/discord/utils"
	characterService "github.com/archaosrpg/archaos-bot/internal/services/character"
)

// AvatarHandler sets a character's portrait URL
type AvatarHandler struct {
	characterService characterService.Service
}

// AvatarHandlerConfig holds configuration for the avatar handler
type AvatarHandlerConfig struct {
	CharacterService characterService.Service
}

// NewAvatarHandler creates a new avatar handler
func NewAvatarHandler(cfg *AvatarHandlerConfig) *AvatarHandler {
	return &AvatarHandler{
		characterService: cfg.CharacterService,
	}
}

// HandleOpen shows the portrait URL form
func (h *AvatarHandler) HandleOpen(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: "character:avatar_submit",
			Title:    "Set Character Portrait",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "avatar_url",
							Label:       "Image URL",
							Style:       discordgo.TextInputShort,
							Placeholder: "https://...",
							Required:    true,
							MaxLength:   500,
						},
					},
				},
			},
		},
	})
}

// HandleSubmit stores the submitted URL
func (h *AvatarHandler) HandleSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID := utils.UserID(i)
	avatarURL := utils.ModalInputValue(i.ModalSubmitData(), "avatar_url")

	if err := h.characterService.SetAvatar(context.Background(), userID, avatarURL); err != nil {
		switch {
		case dnderr.IsNotFound(err):
			return respondEphemeral(s, i, "You don't have a character yet. Create one first!")
		case dnderr.IsValidation(err):
			return respondEphemeral(s, i, "That doesn't look like a valid URL.")
		default:
			log.Printf("Error setting avatar for user %s: %v", userID, err)
			return respondEphemeral(s, i, "Could not set the portrait. Please try again.")
		}
	}

	return respondEphemeral(s, i, "Portrait updated. It will show on your sheet.")
}
