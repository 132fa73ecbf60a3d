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

// EditHandler drives the sheet edit menu
type EditHandler struct {
	characterService characterService.Service
	emojis           config.Emojis
}

// EditHandlerConfig holds configuration for the edit handler
type EditHandlerConfig struct {
	CharacterService characterService.Service
	Emojis           config.Emojis
}

// NewEditHandler creates a new edit handler
func NewEditHandler(cfg *EditHandlerConfig) *EditHandler {
	return &EditHandler{
		characterService: cfg.CharacterService,
		emojis:           cfg.Emojis,
	}
}

// HandleMenu swaps the sheet controls for the field picker
func (h *EditHandler) HandleMenu(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return h.render(s, i, BuildEditMenuComponents())
}

// HandleBack restores the plain sheet view
func (h *EditHandler) HandleBack(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return h.render(s, i, sheetComponents())
}

// HandleFieldSelect opens a modal for the chosen field
func (h *EditHandler) HandleFieldSelect(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return respondEphemeral(s, i, "No field selected. Please pick one from the menu.")
	}
	field := values[0]

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: fmt.Sprintf("character:edit_submit:%s", field),
			Title:    fmt.Sprintf("Edit %s", fieldLabel(field)),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:  "edit_value",
							Label:     fmt.Sprintf("New %s", field),
							Style:     discordgo.TextInputShort,
							Required:  true,
							MaxLength: 100,
						},
					},
				},
			},
		},
	})
}

// HandleSubmit applies the edit and confirms the new value
func (h *EditHandler) HandleSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, field string) error {
	userID := utils.UserID(i)
	value := utils.ModalInputValue(i.ModalSubmitData(), "edit_value")

	char, err := h.characterService.UpdateField(context.Background(), userID, characterService.EditableField(field), value)
	if err != nil {
		switch {
		case dnderr.IsValidation(err) || dnderr.IsInvalidArgument(err):
			return respondEphemeral(s, i, fmt.Sprintf("That is not a valid %s. Nothing was changed.", field))
		case dnderr.IsNotFound(err):
			return respondEphemeral(s, i, "You don't have a character yet. Create one first!")
		default:
			log.Printf("Error updating %s for user %s: %v", field, userID, err)
			return respondEphemeral(s, i, "Could not apply the change. Please try again.")
		}
	}

	embed := BuildSheetEmbed(char, h.emojis, utils.UserName(i), utils.UserAvatarURL(i))
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: sheetComponents(),
		},
	})
}

func fieldLabel(field string) string {
	switch characterService.EditableField(field) {
	case characterService.FieldName:
		return "Name"
	case characterService.FieldLevel:
		return "Level"
	case characterService.FieldHitPoints:
		return "HP"
	case characterService.FieldRace:
		return "Race"
	case characterService.FieldClass:
		return "Class"
	}
	return field
}

func (h *EditHandler) render(s *discordgo.Session, i *discordgo.InteractionCreate, components []discordgo.MessageComponent) error {
	userID := utils.UserID(i)

	char, err := h.characterService.GetCharacter(context.Background(), userID)
	if err != nil {
		if dnderr.IsNotFound(err) {
			return respondEphemeral(s, i, "You don't have a character yet. Create one first!")
		}
		log.Printf("Error loading sheet for user %s: %v", userID, err)
		return respondEphemeral(s, i, "Could not load the sheet. Please try again.")
	}

	embed := BuildSheetEmbed(char, h.emojis, utils.UserName(i), utils.UserAvatarURL(i))
	return respondUpdate(s, i, embed, components)
}
