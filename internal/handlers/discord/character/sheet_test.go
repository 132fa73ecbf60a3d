package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archaosrpg/archaos-bot/internal/config"
	"github.com/archaosrpg/archaos-bot/internal/domain/character"
	characterService "github.com/archaosrpg/archaos-bot/internal/services/character"
)

func testCharacter() *character.Character {
	return &character.Character{
		UserID:    "user-1",
		Name:      "Seraphine",
		Level:     3,
		HitPoints: 110,
		Race:      character.RaceElf,
		Class:     character.ClassWarrior,
	}
}

func TestBuildSheetEmbed(t *testing.T) {
	embed := BuildSheetEmbed(testCharacter(), config.DefaultEmojis(), "seraphine_player", "https://cdn.example.com/avatar.png")

	assert.Equal(t, "Character Sheet", embed.Title)
	require.NotNil(t, embed.Author)
	assert.Equal(t, "seraphine_player", embed.Author.Name)
	assert.Equal(t, "https://cdn.example.com/avatar.png", embed.Author.IconURL)

	require.Len(t, embed.Fields, 5)
	assert.Equal(t, "Name", embed.Fields[0].Name)
	assert.Equal(t, "Seraphine", embed.Fields[0].Value)
	assert.Contains(t, embed.Fields[1].Name, "Level")
	assert.Equal(t, "3", embed.Fields[1].Value)
	assert.Contains(t, embed.Fields[2].Name, "HP")
	assert.Equal(t, "110", embed.Fields[2].Value)
	assert.Contains(t, embed.Fields[3].Name, "Race")
	assert.Equal(t, "Elf", embed.Fields[3].Value)
	assert.Contains(t, embed.Fields[4].Name, "Class")
	assert.Equal(t, "Warrior", embed.Fields[4].Value)

	assert.Nil(t, embed.Thumbnail)
}

func TestBuildSheetEmbed_WithAttributes(t *testing.T) {
	char := testCharacter()
	char.Attributes = character.Attributes{
		Strength:     14,
		Constitution: 12,
		Intelligence: 10,
		Wisdom:       8,
		Charisma:     16,
	}

	embed := BuildSheetEmbed(char, config.DefaultEmojis(), "seraphine_player", "")

	require.Len(t, embed.Fields, 6)
	assert.Equal(t, "Attributes", embed.Fields[5].Name)
	assert.Equal(t, "STR 14 | CON 12 | INT 10 | WIS 8 | CHA 16", embed.Fields[5].Value)
}

func TestBuildSheetEmbed_ZeroAttributesHidden(t *testing.T) {
	embed := BuildSheetEmbed(testCharacter(), config.DefaultEmojis(), "p", "")

	for _, field := range embed.Fields {
		assert.NotEqual(t, "Attributes", field.Name)
	}
}

func TestBuildSheetEmbed_Portrait(t *testing.T) {
	char := testCharacter()
	char.AvatarURL = "https://cdn.example.com/portrait.png"

	embed := BuildSheetEmbed(char, config.DefaultEmojis(), "p", "")

	require.NotNil(t, embed.Thumbnail)
	assert.Equal(t, "https://cdn.example.com/portrait.png", embed.Thumbnail.URL)
}

func TestBuildSheetEmbed_CustomEmojis(t *testing.T) {
	emojis := config.Emojis{Level: "<:lvl:1>", HP: "<:hp:2>", Race: "<:race:3>", Class: "<:cls:4>"}

	embed := BuildSheetEmbed(testCharacter(), emojis, "p", "")

	assert.Equal(t, "<:lvl:1> Level", embed.Fields[1].Name)
	assert.Equal(t, "<:hp:2> HP", embed.Fields[2].Name)
	assert.Equal(t, "<:race:3> Race", embed.Fields[3].Name)
	assert.Equal(t, "<:cls:4> Class", embed.Fields[4].Name)
}

func TestWizardEmbedShowsPlaceholders(t *testing.T) {
	wizard := &characterService.WizardSession{
		Name: "Kael",
		Step: characterService.StepRace,
	}

	embed := wizardEmbed(wizard)

	assert.Equal(t, "Kael", embed.Title)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Not selected", embed.Fields[0].Value)
	assert.Equal(t, "Not selected", embed.Fields[1].Value)
}

func TestWizardEmbedShowsChoices(t *testing.T) {
	wizard := &characterService.WizardSession{
		Name:  "Kael",
		Step:  characterService.StepClass,
		Race:  character.RaceVampire,
		Class: "",
	}

	embed := wizardEmbed(wizard)

	assert.Equal(t, "Vampire", embed.Fields[0].Value)
	assert.Equal(t, "Not selected", embed.Fields[1].Value)
}
