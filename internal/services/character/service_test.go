package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archaosrpg/archaos-bot/internal/domain/character"
	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
	masterRepo "github.com/archaosrpg/archaos-bot/internal/repositories/masters"
	playerRepo "github.com/archaosrpg/archaos-bot/internal/repositories/players"
	characterService "github.com/archaosrpg/archaos-bot/internal/services/character"
	mastersService "github.com/archaosrpg/archaos-bot/internal/services/masters"
)

type fixture struct {
	svc     characterService.Service
	masters mastersService.Service
	repo    playerRepo.Repository
}

func newFixture() *fixture {
	repo := playerRepo.NewInMemoryRepository()
	masters := mastersService.NewService(&mastersService.ServiceConfig{
		Repository: masterRepo.NewInMemoryRepository(),
	})

	svc := characterService.NewService(&characterService.ServiceConfig{
		Repository:    repo,
		MasterService: masters,
	})

	return &fixture{svc: svc, masters: masters, repo: repo}
}

// runWizard walks a wizard through to the persisted character
func (f *fixture) runWizard(t *testing.T, userID, channelID, name string, race character.Race, class character.Class) *character.Character {
	t.Helper()
	ctx := context.Background()

	_, err := f.svc.StartWizard(ctx, userID, channelID)
	require.NoError(t, err)

	wizard, err := f.svc.SubmitName(ctx, userID, channelID, name)
	require.NoError(t, err)

	wizard, err = f.svc.SelectRace(ctx, userID, channelID, wizard.ID, race)
	require.NoError(t, err)

	char, err := f.svc.SelectClass(ctx, userID, channelID, wizard.ID, class)
	require.NoError(t, err)

	return char
}

func TestWizard_FullFlow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	char := f.runWizard(t, "user-1", "chan-1", "Aldric", character.RaceHuman, character.ClassWarrior)

	assert.Equal(t, "Aldric", char.Name)
	assert.Equal(t, 1, char.Level)
	assert.Equal(t, 130, char.HitPoints)
	assert.Equal(t, character.RaceHuman, char.Race)
	assert.Equal(t, character.ClassWarrior, char.Class)

	// Fetch returns exactly what was created, attributes default to zero
	stored, err := f.svc.GetCharacter(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, char, stored)
	assert.True(t, stored.Attributes.IsZero())

	// Wizard stays open for the optional attribute step
	wizard, pending := f.svc.PendingWizard("user-1", "chan-1")
	require.True(t, pending)
	assert.Equal(t, characterService.StepAttributes, wizard.Step)

	f.svc.FinishWizard("user-1", "chan-1")
	_, pending = f.svc.PendingWizard("user-1", "chan-1")
	assert.False(t, pending)
}

func TestWizard_RejectsOverlap(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.StartWizard(ctx, "user-1", "chan-1")
	require.NoError(t, err)

	_, err = f.svc.StartWizard(ctx, "user-1", "chan-1")
	require.Error(t, err)
	assert.True(t, dnderr.IsAlreadyExists(err))

	// A different channel is a different wizard
	_, err = f.svc.StartWizard(ctx, "user-1", "chan-2")
	assert.NoError(t, err)

	// A different user in the same channel too
	_, err = f.svc.StartWizard(ctx, "user-2", "chan-1")
	assert.NoError(t, err)
}

func TestWizard_TimeoutLeavesNoRow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	wizard, err := f.svc.StartWizard(ctx, "user-1", "chan-1")
	require.NoError(t, err)

	assert.True(t, f.svc.ExpireWizard("user-1", "chan-1", wizard.ID))

	_, err = f.svc.GetCharacter(ctx, "user-1")
	assert.True(t, dnderr.IsNotFound(err))

	// The abandoned attempt does not block a fresh one
	_, err = f.svc.StartWizard(ctx, "user-1", "chan-1")
	assert.NoError(t, err)
}

func TestWizard_StaleTimerCannotAbortNewerWizard(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Wizard A runs to completion well inside its timeout window
	first, err := f.svc.StartWizard(ctx, "user-1", "chan-1")
	require.NoError(t, err)
	_, err = f.svc.SubmitName(ctx, "user-1", "chan-1", "Aldric")
	require.NoError(t, err)
	_, err = f.svc.SelectRace(ctx, "user-1", "chan-1", first.ID, character.RaceHuman)
	require.NoError(t, err)
	_, err = f.svc.SelectClass(ctx, "user-1", "chan-1", first.ID, character.ClassWarrior)
	require.NoError(t, err)
	f.svc.FinishWizard("user-1", "chan-1")

	// Wizard B starts before A's original window would have elapsed
	second, err := f.svc.StartWizard(ctx, "user-1", "chan-1")
	require.NoError(t, err)

	// A's timer fires with A's identity and must not touch B
	assert.False(t, f.svc.ExpireWizard("user-1", "chan-1", first.ID))

	pending, ok := f.svc.PendingWizard("user-1", "chan-1")
	require.True(t, ok)
	assert.Equal(t, second.ID, pending.ID)

	// B's own timer still works
	assert.True(t, f.svc.ExpireWizard("user-1", "chan-1", second.ID))
}

func TestWizard_ExpiryOnlyWhileAwaitingName(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	wizard, err := f.svc.StartWizard(ctx, "user-1", "chan-1")
	require.NoError(t, err)
	_, err = f.svc.SubmitName(ctx, "user-1", "chan-1", "Aldric")
	require.NoError(t, err)

	// Past the name step the in-band timeout no longer applies
	assert.False(t, f.svc.ExpireWizard("user-1", "chan-1", wizard.ID))

	_, pending := f.svc.PendingWizard("user-1", "chan-1")
	assert.True(t, pending)
}

func TestWizard_StaleMenuRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.StartWizard(ctx, "user-1", "chan-1")
	require.NoError(t, err)
	_, err = f.svc.SubmitName(ctx, "user-1", "chan-1", "Aldric")
	require.NoError(t, err)

	_, err = f.svc.SelectRace(ctx, "user-1", "chan-1", "some-other-wizard", character.RaceElf)
	require.Error(t, err)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestWizard_UpsertSemantics(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.runWizard(t, "user-1", "chan-1", "First", character.RaceElf, character.ClassMage)
	f.svc.FinishWizard("user-1", "chan-1")

	// Creating again replaces the single row
	f.runWizard(t, "user-1", "chan-1", "Second", character.RaceGiant, character.ClassPaladin)

	char, err := f.svc.GetCharacter(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Second", char.Name)
	assert.Equal(t, 175, char.HitPoints)
}

func TestAssignAttributes(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.runWizard(t, "user-1", "chan-1", "Aldric", character.RaceHuman, character.ClassWarrior)

	attrs, err := f.svc.AssignAttributes(ctx, "user-1", characterService.RawAttributes{
		Strength:     "3",
		Constitution: "1",
		Intelligence: "",
		Wisdom:       "0",
		Charisma:     "1",
	})
	require.NoError(t, err)
	assert.Equal(t, character.Attributes{Strength: 3, Constitution: 1, Charisma: 1}, attrs)

	char, err := f.svc.GetCharacter(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, attrs, char.Attributes)
}

func TestAssignAttributes_AllBlankStoresZeroes(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.runWizard(t, "user-1", "chan-1", "Aldric", character.RaceHuman, character.ClassWarrior)

	attrs, err := f.svc.AssignAttributes(ctx, "user-1", characterService.RawAttributes{})
	require.NoError(t, err)
	assert.True(t, attrs.IsZero())
}

func TestAssignAttributes_NonNumericLeavesPriorValues(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.runWizard(t, "user-1", "chan-1", "Aldric", character.RaceHuman, character.ClassWarrior)

	_, err := f.svc.AssignAttributes(ctx, "user-1", characterService.RawAttributes{Strength: "5"})
	require.NoError(t, err)

	_, err = f.svc.AssignAttributes(ctx, "user-1", characterService.RawAttributes{Strength: "lots"})
	require.Error(t, err)
	assert.True(t, dnderr.IsValidation(err))

	char, err := f.svc.GetCharacter(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 5, char.Attributes.Strength)
}

func TestGetCharacterFor_Permissions(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.runWizard(t, "owner", "chan-1", "Aldric", character.RaceHuman, character.ClassWarrior)

	// Own sheet always works, master or not
	char, err := f.svc.GetCharacterFor(ctx, "owner", "owner")
	require.NoError(t, err)
	assert.Equal(t, "Aldric", char.Name)

	// Non-master viewing someone else is denied with no data
	char, err = f.svc.GetCharacterFor(ctx, "stranger", "owner")
	require.Error(t, err)
	assert.True(t, dnderr.IsPermissionDenied(err))
	assert.Nil(t, char)

	// Masters may view anyone
	require.NoError(t, f.masters.AddMaster(ctx, "stranger"))
	char, err = f.svc.GetCharacterFor(ctx, "stranger", "owner")
	require.NoError(t, err)
	assert.Equal(t, "Aldric", char.Name)
}

func TestGetCharacterFor_MissingTarget(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.GetCharacterFor(ctx, "owner", "owner")
	assert.True(t, dnderr.IsNotFound(err))
}

func TestUpdateField(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.runWizard(t, "user-1", "chan-1", "Aldric", character.RaceHuman, character.ClassWarrior)

	char, err := f.svc.UpdateField(ctx, "user-1", characterService.FieldName, "Aldric the Bold")
	require.NoError(t, err)
	assert.Equal(t, "Aldric the Bold", char.Name)

	char, err = f.svc.UpdateField(ctx, "user-1", characterService.FieldLevel, "3")
	require.NoError(t, err)
	assert.Equal(t, 3, char.Level)

	// Race edits do not recompute stored hit points
	char, err = f.svc.UpdateField(ctx, "user-1", characterService.FieldRace, "Elf")
	require.NoError(t, err)
	assert.Equal(t, character.RaceElf, char.Race)
	assert.Equal(t, 130, char.HitPoints)
}

func TestUpdateField_Invalid(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.runWizard(t, "user-1", "chan-1", "Aldric", character.RaceHuman, character.ClassWarrior)

	_, err := f.svc.UpdateField(ctx, "user-1", characterService.FieldLevel, "zero")
	assert.True(t, dnderr.IsValidation(err))

	_, err = f.svc.UpdateField(ctx, "user-1", characterService.FieldHitPoints, "-5")
	assert.True(t, dnderr.IsValidation(err))

	_, err = f.svc.UpdateField(ctx, "user-1", characterService.FieldRace, "Orc")
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = f.svc.UpdateField(ctx, "user-1", characterService.FieldClass, "Bard")
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestSetAvatar(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.runWizard(t, "user-1", "chan-1", "Aldric", character.RaceHuman, character.ClassWarrior)

	require.NoError(t, f.svc.SetAvatar(ctx, "user-1", "https://example.com/aldric.png"))

	char, err := f.svc.GetCharacter(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/aldric.png", char.AvatarURL)
	assert.Equal(t, "Aldric", char.Name)
}

func TestDeleteCharacter(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.runWizard(t, "user-1", "chan-1", "Aldric", character.RaceHuman, character.ClassWarrior)

	existed, err := f.svc.DeleteCharacter(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, existed)

	_, err = f.svc.GetCharacter(ctx, "user-1")
	assert.True(t, dnderr.IsNotFound(err))

	// Second delete is a no-op, not an error
	existed, err = f.svc.DeleteCharacter(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestParseAttributes(t *testing.T) {
	attrs, err := characterService.ParseAttributes(characterService.RawAttributes{
		Strength:     " 2 ",
		Constitution: "0",
		Intelligence: "",
		Wisdom:       "1",
		Charisma:     "2",
	})
	require.NoError(t, err)
	assert.Equal(t, character.Attributes{Strength: 2, Wisdom: 1, Charisma: 2}, attrs)

	_, err = characterService.ParseAttributes(characterService.RawAttributes{Wisdom: "much"})
	assert.True(t, dnderr.IsValidation(err))

	_, err = characterService.ParseAttributes(characterService.RawAttributes{Charisma: "-1"})
	assert.True(t, dnderr.IsValidation(err))
}
