package dice

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/archaosrpg/archaos-bot/internal/clients/roller"
	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
	"github.com/archaosrpg/archaos-bot/internal/handlers/discord/utils"
)

// RollHandler forwards dice expressions to the roll service
type RollHandler struct {
	roller roller.Client
}

// RollHandlerConfig holds configuration for the roll handler
type RollHandlerConfig struct {
	Roller roller.Client
}

// NewRollHandler creates a new roll handler
func NewRollHandler(cfg *RollHandlerConfig) *RollHandler {
	return &RollHandler{
		roller: cfg.Roller,
	}
}

// Handle rolls the given expression and posts the per-die breakdown
func (h *RollHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	expression := utils.GetStringOption(i, "expression")

	content, err := RollMessage(context.Background(), h.roller, expression)
	if err != nil {
		log.Printf("Error rolling %q for user %s: %v", expression, utils.UserID(i), err)
		return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "The dice refuse to roll right now. Check your expression and try again.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
}

// RollMessage resolves an expression into the chat message body
func RollMessage(ctx context.Context, client roller.Client, expression string) (string, error) {
	if expression == "" {
		return "", dnderr.InvalidArgument("dice expression is required")
	}

	groups, err := client.Roll(ctx, expression)
	if err != nil {
		return "", fmt.Errorf("failed to roll %q: %w", expression, err)
	}

	return roller.FormatGroups(groups), nil
}
