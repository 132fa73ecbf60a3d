package character

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
	"github.com/archaosrpg/archaos-bot/internal/handlers/discord/utils"
	characterService "github.com/archaosrpg/archaos-bot/internal/services/character"
)

// CreateHandler drives the character creation wizard
type CreateHandler struct {
	characterService characterService.Service
}

// CreateHandlerConfig holds configuration for the create handler
type CreateHandlerConfig struct {
	CharacterService characterService.Service
}

// NewCreateHandler creates a new character creation handler
func NewCreateHandler(cfg *CreateHandlerConfig) *CreateHandler {
	return &CreateHandler{
		characterService: cfg.CharacterService,
	}
}

// Handle processes the create command: it opens a wizard and prompts
// for the character's name as a plain channel reply.
func (h *CreateHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID := utils.UserID(i)

	wizard, err := h.characterService.StartWizard(context.Background(), userID, i.ChannelID)
	if err != nil {
		if dnderr.IsAlreadyExists(err) {
			return respondEphemeral(s, i, "You are already creating a character here. Finish or wait for it to expire.")
		}
		log.Printf("Error starting wizard for user %s: %v", userID, err)
		return respondEphemeral(s, i, "Could not start character creation. Please try again.")
	}

	// The name arrives as a normal message, so the prompt cannot be ephemeral
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "What will your character's name be?",
		},
	}); err != nil {
		h.characterService.CancelWizard(userID, i.ChannelID)
		return fmt.Errorf("failed to send name prompt: %w", err)
	}

	// Abort the wizard if no name arrives in time. Nothing has been
	// persisted at this point, so expiry discards all state. The timer
	// carries the wizard ID so a stale timer cannot touch a later attempt.
	channelID := i.ChannelID
	wizardID := wizard.ID
	time.AfterFunc(characterService.NameTimeout, func() {
		if h.characterService.ExpireWizard(userID, channelID, wizardID) {
			if _, sendErr := s.ChannelMessageSend(channelID, fmt.Sprintf("<@%s> You took too long to answer! Run the command again to restart.", userID)); sendErr != nil {
				log.Printf("Error sending wizard timeout notice: %v", sendErr)
			}
		}
	})

	return nil
}

// HandleNameReply consumes the user's free-text name message and moves
// the wizard to race selection.
func (h *CreateHandler) HandleNameReply(s *discordgo.Session, m *discordgo.MessageCreate) error {
	wizard, err := h.characterService.SubmitName(context.Background(), m.Author.ID, m.ChannelID, m.Content)
	if err != nil {
		if dnderr.IsValidation(err) {
			_, sendErr := s.ChannelMessageSend(m.ChannelID, "That name will not do. What will your character's name be?")
			return sendErr
		}
		return err
	}

	_, err = s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{wizardEmbed(wizard)},
		Components: raceSelectComponents(wizard.ID),
	})
	if err != nil {
		return fmt.Errorf("failed to send race selection: %w", err)
	}

	return nil
}
