package character

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/archaosrpg/archaos-bot/internal/config"
	"github.com/archaosrpg/archaos-bot/internal/domain/character"
	characterService "github.com/archaosrpg/archaos-bot/internal/services/character"
)

const (
	colorWizard  = 0x5865F2 // Discord blurple
	colorSheet   = 0x3498DB
	colorCreated = 0x2ECC71
)

const notSelected = "Not selected"

// wizardEmbed renders the creation summary for an in-progress wizard
func wizardEmbed(w *characterService.WizardSession) *discordgo.MessageEmbed {
	race := notSelected
	if w.Race != "" {
		race = string(w.Race)
	}
	class := notSelected
	if w.Class != "" {
		class = string(w.Class)
	}

	description := "Select a race and a class."
	if w.Step == characterService.StepClass {
		description = "Select a class."
	}

	return &discordgo.MessageEmbed{
		Title:       w.Name,
		Description: description,
		Color:       colorWizard,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Race", Value: race, Inline: true},
			{Name: "Class", Value: class, Inline: true},
		},
	}
}

// createdEmbed renders the confirmation shown when the sheet is persisted
func createdEmbed(char *character.Character) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Character created!",
		Description: fmt.Sprintf("**%s**", char.Name),
		Color:       colorCreated,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Race", Value: string(char.Race), Inline: true},
			{Name: "Class", Value: string(char.Class), Inline: true},
			{Name: "HP", Value: fmt.Sprintf("%d", char.HitPoints), Inline: true},
		},
	}
}

// BuildSheetEmbed renders a character sheet for display
func BuildSheetEmbed(char *character.Character, emojis config.Emojis, ownerName, ownerAvatarURL string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Character Sheet",
		Color: colorSheet,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    ownerName,
			IconURL: ownerAvatarURL,
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Name", Value: char.Name},
			{Name: fmt.Sprintf("%s Level", emojis.Level), Value: fmt.Sprintf("%d", char.Level)},
			{Name: fmt.Sprintf("%s HP", emojis.HP), Value: fmt.Sprintf("%d", char.HitPoints)},
			{Name: fmt.Sprintf("%s Race", emojis.Race), Value: string(char.Race)},
			{Name: fmt.Sprintf("%s Class", emojis.Class), Value: string(char.Class)},
		},
	}

	if !char.Attributes.IsZero() {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Attributes",
			Value: fmt.Sprintf("STR %d | CON %d | INT %d | WIS %d | CHA %d",
				char.Attributes.Strength,
				char.Attributes.Constitution,
				char.Attributes.Intelligence,
				char.Attributes.Wisdom,
				char.Attributes.Charisma),
		})
	}

	if char.AvatarURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: char.AvatarURL}
	}

	return embed
}

// raceSelectComponents builds the race single-select for a wizard
func raceSelectComponents(wizardID string) []discordgo.MessageComponent {
	races := character.Races()
	options := make([]discordgo.SelectMenuOption, 0, len(races))
	for _, race := range races {
		options = append(options, discordgo.SelectMenuOption{
			Label: string(race),
			Value: string(race),
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    fmt.Sprintf("character:race_select:%s", wizardID),
					Placeholder: "Choose your race",
					Options:     options,
				},
			},
		},
	}
}

// classSelectComponents builds the class single-select for a wizard
func classSelectComponents(wizardID string) []discordgo.MessageComponent {
	classes := character.Classes()
	options := make([]discordgo.SelectMenuOption, 0, len(classes))
	for _, class := range classes {
		options = append(options, discordgo.SelectMenuOption{
			Label: string(class),
			Value: string(class),
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    fmt.Sprintf("character:class_select:%s", wizardID),
					Placeholder: "Choose your class",
					Options:     options,
				},
			},
		},
	}
}

// attributePromptComponents builds the post-creation attribute controls
func attributePromptComponents(wizardID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Assign attributes",
					Style:    discordgo.PrimaryButton,
					CustomID: fmt.Sprintf("character:attribs_open:%s", wizardID),
				},
				discordgo.Button{
					Label:    "Later",
					Style:    discordgo.SecondaryButton,
					CustomID: fmt.Sprintf("character:attribs_skip:%s", wizardID),
				},
			},
		},
	}
}

// BuildEditMenuComponents builds the edit sub-view: a field select plus
// a back action returning to the plain render
func BuildEditMenuComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    "character:edit_field",
					Placeholder: "Pick a field to edit",
					Options: []discordgo.SelectMenuOption{
						{Label: "Name", Value: string(characterService.FieldName)},
						{Label: "Level", Value: string(characterService.FieldLevel)},
						{Label: "HP", Value: string(characterService.FieldHitPoints)},
						{Label: "Race", Value: string(characterService.FieldRace)},
						{Label: "Class", Value: string(characterService.FieldClass)},
					},
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Back",
					Style:    discordgo.SecondaryButton,
					CustomID: "character:edit_back",
				},
			},
		},
	}
}

// sheetComponents builds the controls under a user's own sheet
func sheetComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Edit",
					Style:    discordgo.SecondaryButton,
					CustomID: "character:edit_menu",
				},
			},
		},
	}
}
