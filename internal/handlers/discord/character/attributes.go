package character

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
	"github.com/archaosrpg/archaos-bot/internal/handlers/discord/utils"
	characterService "github.com/archaosrpg/archaos-bot/internal/services/character"
)

// AttributesHandler handles the optional attribute form at the end of
// the creation wizard.
type AttributesHandler struct {
	characterService characterService.Service
}

// AttributesHandlerConfig holds configuration for the attributes handler
type AttributesHandlerConfig struct {
	CharacterService characterService.Service
}

// NewAttributesHandler creates a new attributes handler
func NewAttributesHandler(cfg *AttributesHandlerConfig) *AttributesHandler {
	return &AttributesHandler{
		characterService: cfg.CharacterService,
	}
}

// HandleOpen shows the attribute form. Every field is optional; blanks
// count as zero.
func (h *AttributesHandler) HandleOpen(s *discordgo.Session, i *discordgo.InteractionCreate, wizardID string) error {
	userID := utils.UserID(i)

	wizard, ok := h.characterService.PendingWizard(userID, i.ChannelID)
	if !ok || wizard.ID != wizardID {
		return respondEphemeral(s, i, "That menu is no longer active. Start a new character to continue.")
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: "character:attribs_submit",
			Title:    "Assign Attributes",
			Components: []discordgo.MessageComponent{
				attributeInput("attr_strength", "Strength"),
				attributeInput("attr_constitution", "Constitution"),
				attributeInput("attr_intelligence", "Intelligence"),
				attributeInput("attr_wisdom", "Wisdom"),
				attributeInput("attr_charisma", "Charisma"),
			},
		},
	})
}

// HandleSkip ends the wizard with attributes left at zero
func (h *AttributesHandler) HandleSkip(s *discordgo.Session, i *discordgo.InteractionCreate, wizardID string) error {
	userID := utils.UserID(i)

	wizard, ok := h.characterService.PendingWizard(userID, i.ChannelID)
	if !ok || wizard.ID != wizardID {
		return respondEphemeral(s, i, "That menu is no longer active.")
	}
	h.characterService.FinishWizard(userID, i.ChannelID)

	char, err := h.characterService.GetCharacter(context.Background(), userID)
	if err != nil {
		log.Printf("Error loading character for user %s: %v", userID, err)
		return respondEphemeral(s, i, "Character saved. Use the sheet command to view it.")
	}

	return respondUpdate(s, i, createdEmbed(char), []discordgo.MessageComponent{})
}

// HandleSubmit parses the submitted form and stores the scores
func (h *AttributesHandler) HandleSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID := utils.UserID(i)
	data := i.ModalSubmitData()

	raw := characterService.RawAttributes{
		Strength:     utils.ModalInputValue(data, "attr_strength"),
		Constitution: utils.ModalInputValue(data, "attr_constitution"),
		Intelligence: utils.ModalInputValue(data, "attr_intelligence"),
		Wisdom:       utils.ModalInputValue(data, "attr_wisdom"),
		Charisma:     utils.ModalInputValue(data, "attr_charisma"),
	}

	attrs, err := h.characterService.AssignAttributes(context.Background(), userID, raw)
	if err != nil {
		if dnderr.IsValidation(err) {
			return respondEphemeral(s, i, "Attributes must be non-negative whole numbers. Nothing was changed; open the form again.")
		}
		log.Printf("Error assigning attributes for user %s: %v", userID, err)
		return respondEphemeral(s, i, "Could not save your attributes. Please try again.")
	}

	h.characterService.FinishWizard(userID, i.ChannelID)

	return respondEphemeral(s, i, fmt.Sprintf(
		"Attributes saved: STR %d, CON %d, INT %d, WIS %d, CHA %d.",
		attrs.Strength, attrs.Constitution, attrs.Intelligence, attrs.Wisdom, attrs.Charisma))
}

func attributeInput(customID, label string) discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    customID,
				Label:       label,
				Style:       discordgo.TextInputShort,
				Placeholder: "0",
				Required:    false,
				MaxLength:   4,
			},
		},
	}
}
