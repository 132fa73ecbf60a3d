package character

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/archaosrpg/archaos-bot/internal/handlers/discord/utils"
	characterService "github.com/archaosrpg/archaos-bot/internal/services/character"
)

// DeleteHandler removes a user's character
type DeleteHandler struct {
	characterService characterService.Service
}

// DeleteHandlerConfig holds configuration for the delete handler
type DeleteHandlerConfig struct {
	CharacterService characterService.Service
}

// NewDeleteHandler creates a new delete handler
func NewDeleteHandler(cfg *DeleteHandlerConfig) *DeleteHandler {
	return &DeleteHandler{
		characterService: cfg.CharacterService,
	}
}

// Handle deletes the caller's character. Deleting again is a no-op
// with a distinct message.
func (h *DeleteHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID := utils.UserID(i)

	existed, err := h.characterService.DeleteCharacter(context.Background(), userID)
	if err != nil {
		log.Printf("Error deleting character for user %s: %v", userID, err)
		return respondEphemeral(s, i, "Could not delete your character. Please try again.")
	}

	if !existed {
		return respondEphemeral(s, i, "You don't have a character to delete.")
	}
	return respondEphemeral(s, i, "Your character has been deleted.")
}
