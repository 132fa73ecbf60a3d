package masters

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
	"github.com/archaosrpg/archaos-bot/internal/handlers/discord/utils"
	mastersService "github.com/archaosrpg/archaos-bot/internal/services/masters"
)

// Handler manages the master registry commands
type Handler struct {
	masterService mastersService.Service
}

// HandlerConfig holds configuration for the masters handler
type HandlerConfig struct {
	MasterService mastersService.Service
}

// NewHandler creates a new masters handler
func NewHandler(cfg *HandlerConfig) *Handler {
	return &Handler{
		masterService: cfg.MasterService,
	}
}

// HandleAdd grants master status to the targeted user
func (h *Handler) HandleAdd(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	targetID := utils.GetUserOptionID(i, "user")
	if targetID == "" {
		return respondEphemeral(s, i, "You must name a user.")
	}

	if err := h.masterService.AddMaster(context.Background(), targetID); err != nil {
		if dnderr.IsAlreadyExists(err) {
			return respondEphemeral(s, i, fmt.Sprintf("<@%s> is already a master.", targetID))
		}
		log.Printf("Error adding master %s: %v", targetID, err)
		return respondEphemeral(s, i, "Could not update the master list. Please try again.")
	}

	return respondEphemeral(s, i, fmt.Sprintf("<@%s> is now a master.", targetID))
}

// HandleRemove revokes master status from the targeted user
func (h *Handler) HandleRemove(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	targetID := utils.GetUserOptionID(i, "user")
	if targetID == "" {
		return respondEphemeral(s, i, "You must name a user.")
	}

	if err := h.masterService.RemoveMaster(context.Background(), targetID); err != nil {
		if dnderr.IsNotFound(err) {
			return respondEphemeral(s, i, fmt.Sprintf("<@%s> is not a master.", targetID))
		}
		log.Printf("Error removing master %s: %v", targetID, err)
		return respondEphemeral(s, i, "Could not update the master list. Please try again.")
	}

	return respondEphemeral(s, i, fmt.Sprintf("<@%s> is no longer a master.", targetID))
}

// HandleList shows the current registry
func (h *Handler) HandleList(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ids, err := h.masterService.ListMasters(context.Background())
	if err != nil {
		log.Printf("Error listing masters: %v", err)
		return respondEphemeral(s, i, "Could not load the master list. Please try again.")
	}

	if len(ids) == 0 {
		return respondEphemeral(s, i, "No masters are registered.")
	}

	mentions := make([]string, 0, len(ids))
	for _, id := range ids {
		mentions = append(mentions, fmt.Sprintf("<@%s>", id))
	}

	return respondEphemeral(s, i, "Masters: "+strings.Join(mentions, ", "))
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
