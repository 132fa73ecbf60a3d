package character

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/archaosrpg/archaos-bot/internal/domain/character"
	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
	playerRepo "github.com/archaosrpg/archaos-bot/internal/repositories/players"
	mastersService "github.com/archaosrpg/archaos-bot/internal/services/masters"
	"github.com/archaosrpg/archaos-bot/internal/uuid"
)

// Repository is an alias for the player repository interface
type Repository = playerRepo.Repository

// RawAttributes carries the attribute form fields before parsing.
// Blank fields count as zero; non-numeric fields are rejected.
type RawAttributes struct {
	Strength     string
	Constitution string
	Intelligence string
	Wisdom       string
	Charisma     string
}

// EditableField is a sheet field reachable through the edit menu
type EditableField string

const (
	FieldName      EditableField = "name"
	FieldLevel     EditableField = "level"
	FieldHitPoints EditableField = "hp"
	FieldRace      EditableField = "race"
	FieldClass     EditableField = "class"
)

// Service defines the character service interface
type Service interface {
	// StartWizard begins a creation wizard for a (user, channel) pair.
	// A second overlapping wizard for the same pair is rejected.
	StartWizard(ctx context.Context, userID, channelID string) (*WizardSession, error)

	// PendingWizard returns the in-flight wizard for a pair, if any
	PendingWizard(userID, channelID string) (*WizardSession, bool)

	// SubmitName records the free-text name and advances to race selection
	SubmitName(ctx context.Context, userID, channelID, name string) (*WizardSession, error)

	// ExpireWizard aborts the identified wizard if it is still waiting
	// for its name reply. A wizard ID from an earlier attempt never
	// touches the current one. Reports whether anything was discarded;
	// no partial state survives.
	ExpireWizard(userID, channelID, wizardID string) bool

	// CancelWizard discards a wizard at any step without persisting
	CancelWizard(userID, channelID string)

	// SelectRace records the race choice and advances to class selection
	SelectRace(ctx context.Context, userID, channelID, wizardID string, race character.Race) (*WizardSession, error)

	// SelectClass records the class choice, derives hit points, persists
	// the character, and advances to the optional attribute step
	SelectClass(ctx context.Context, userID, channelID, wizardID string, class character.Class) (*character.Character, error)

	// FinishWizard closes out a wizard whose character is already persisted
	FinishWizard(userID, channelID string)

	// AssignAttributes parses and stores the five attribute scores,
	// overwriting wholesale. Prior values are untouched on parse failure.
	AssignAttributes(ctx context.Context, userID string, raw RawAttributes) (character.Attributes, error)

	// GetCharacter retrieves the caller's own character
	GetCharacter(ctx context.Context, userID string) (*character.Character, error)

	// GetCharacterFor retrieves targetID's character on behalf of
	// requesterID. Viewing another user's sheet requires master status.
	GetCharacterFor(ctx context.Context, requesterID, targetID string) (*character.Character, error)

	// UpdateField applies one edit-menu change and returns the updated sheet
	UpdateField(ctx context.Context, userID string, field EditableField, value string) (*character.Character, error)

	// SetAvatar updates the portrait URL, preserving all other fields
	SetAvatar(ctx context.Context, userID, avatarURL string) error

	// DeleteCharacter removes the sheet. Reports whether one existed.
	DeleteCharacter(ctx context.Context, userID string) (bool, error)
}

// service implements the Service interface
type service struct {
	repository    Repository
	masterService mastersService.Service
	uuidGenerator uuid.Generator
	wizards       *wizardRegistry
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository             // Required
	MasterService mastersService.Service // Required
	UUIDGenerator uuid.Generator         // Optional, defaults to google UUIDs
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.MasterService == nil {
		panic("master service is required")
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}

	return &service{
		repository:    cfg.Repository,
		masterService: cfg.MasterService,
		uuidGenerator: gen,
		wizards:       newWizardRegistry(),
	}
}

// StartWizard begins a creation wizard for a (user, channel) pair
func (s *service) StartWizard(ctx context.Context, userID, channelID string) (*WizardSession, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, dnderr.InvalidArgument("user ID is required")
	}
	if strings.TrimSpace(channelID) == "" {
		return nil, dnderr.InvalidArgument("channel ID is required")
	}

	if _, exists := s.wizards.get(userID, channelID); exists {
		return nil, dnderr.AlreadyExists("a character creation is already in progress").
			WithMeta("user_id", userID)
	}

	wizard := &WizardSession{
		ID:        s.uuidGenerator.New(),
		UserID:    userID,
		ChannelID: channelID,
		Step:      StepName,
		CreatedAt: time.Now(),
	}
	s.wizards.put(wizard)

	log.Printf("Started creation wizard %s for user %s", wizard.ID, userID)
	return wizard, nil
}

// PendingWizard returns the in-flight wizard for a pair, if any
func (s *service) PendingWizard(userID, channelID string) (*WizardSession, bool) {
	return s.wizards.get(userID, channelID)
}

// SubmitName records the free-text name and advances to race selection
func (s *service) SubmitName(ctx context.Context, userID, channelID, name string) (*WizardSession, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dnderr.Validation("character name cannot be empty")
	}

	wizard, exists := s.wizards.get(userID, channelID)
	if !exists {
		return nil, dnderr.NotFound("no character creation in progress")
	}
	if wizard.Step != StepName {
		return nil, dnderr.InvalidArgument("name was already chosen")
	}

	wizard.Name = name
	wizard.Step = StepRace
	s.wizards.put(wizard)

	return wizard, nil
}

// ExpireWizard aborts the identified wizard while it still awaits a name
func (s *service) ExpireWizard(userID, channelID, wizardID string) bool {
	wizard, exists := s.wizards.get(userID, channelID)
	if !exists || wizard.ID != wizardID || wizard.Step != StepName {
		return false
	}

	s.wizards.remove(userID, channelID)
	log.Printf("Creation wizard %s for user %s timed out", wizard.ID, userID)
	return true
}

// CancelWizard discards a wizard at any step without persisting
func (s *service) CancelWizard(userID, channelID string) {
	s.wizards.remove(userID, channelID)
}

// SelectRace records the race choice and advances to class selection
func (s *service) SelectRace(ctx context.Context, userID, channelID, wizardID string, race character.Race) (*WizardSession, error) {
	wizard, err := s.activeWizard(userID, channelID, wizardID, StepRace)
	if err != nil {
		return nil, err
	}

	if !character.ValidRace(race) {
		return nil, dnderr.InvalidArgumentf("unknown race '%s'", race)
	}

	wizard.Race = race
	wizard.Step = StepClass
	s.wizards.put(wizard)

	return wizard, nil
}

// SelectClass finalizes the sheet: derives hit points, persists the
// character, and leaves the wizard on the optional attribute step.
func (s *service) SelectClass(ctx context.Context, userID, channelID, wizardID string, class character.Class) (*character.Character, error) {
	wizard, err := s.activeWizard(userID, channelID, wizardID, StepClass)
	if err != nil {
		return nil, err
	}

	hp, err := character.HitPoints(wizard.Race, class)
	if err != nil {
		return nil, err
	}

	char := &character.Character{
		UserID:    userID,
		Name:      wizard.Name,
		Level:     1,
		HitPoints: hp,
		Race:      wizard.Race,
		Class:     class,
	}

	if err := s.repository.Upsert(ctx, char); err != nil {
		return nil, dnderr.Wrap(err, "failed to persist character").
			WithMeta("user_id", userID)
	}

	wizard.Class = class
	wizard.Step = StepAttributes
	s.wizards.put(wizard)

	log.Printf("Created character %q for user %s (%s %s, %d hp)", char.Name, userID, char.Race, char.Class, char.HitPoints)
	return char, nil
}

// FinishWizard closes out a wizard whose character is already persisted
func (s *service) FinishWizard(userID, channelID string) {
	s.wizards.remove(userID, channelID)
}

// AssignAttributes parses and stores the five attribute scores
func (s *service) AssignAttributes(ctx context.Context, userID string, raw RawAttributes) (character.Attributes, error) {
	attrs, err := ParseAttributes(raw)
	if err != nil {
		return character.Attributes{}, err
	}

	if err := s.repository.UpdateAttributes(ctx, userID, attrs); err != nil {
		return character.Attributes{}, dnderr.Wrap(err, "failed to store attributes").
			WithMeta("user_id", userID)
	}

	return attrs, nil
}

// GetCharacter retrieves the caller's own character
func (s *service) GetCharacter(ctx context.Context, userID string) (*character.Character, error) {
	if userID == "" {
		return nil, dnderr.InvalidArgument("user ID is required")
	}

	return s.repository.Get(ctx, userID)
}

// GetCharacterFor retrieves targetID's character on behalf of requesterID
func (s *service) GetCharacterFor(ctx context.Context, requesterID, targetID string) (*character.Character, error) {
	if requesterID == "" || targetID == "" {
		return nil, dnderr.InvalidArgument("requester and target IDs are required")
	}

	if requesterID != targetID {
		isMaster, err := s.masterService.IsMaster(ctx, requesterID)
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to check master status")
		}
		if !isMaster {
			return nil, dnderr.PermissionDenied("only masters can view another user's sheet").
				WithMeta("requester_id", requesterID)
		}
	}

	return s.repository.Get(ctx, targetID)
}

// UpdateField applies one edit-menu change and returns the updated sheet
func (s *service) UpdateField(ctx context.Context, userID string, field EditableField, value string) (*character.Character, error) {
	char, err := s.repository.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	value = strings.TrimSpace(value)

	switch field {
	case FieldName:
		if value == "" {
			return nil, dnderr.Validation("name cannot be empty")
		}
		char.Name = value
	case FieldLevel:
		level, convErr := strconv.Atoi(value)
		if convErr != nil || level < 1 {
			return nil, dnderr.Validationf("level must be a positive number, got %q", value)
		}
		char.Level = level
	case FieldHitPoints:
		hp, convErr := strconv.Atoi(value)
		if convErr != nil || hp < 0 {
			return nil, dnderr.Validationf("hit points must be a non-negative number, got %q", value)
		}
		char.HitPoints = hp
	case FieldRace:
		race := character.Race(value)
		if !character.ValidRace(race) {
			return nil, dnderr.InvalidArgumentf("unknown race '%s'", value)
		}
		// Hit points are derived once at creation and deliberately
		// left alone on later race/class edits.
		char.Race = race
	case FieldClass:
		class := character.Class(value)
		if !character.ValidClass(class) {
			return nil, dnderr.InvalidArgumentf("unknown class '%s'", value)
		}
		char.Class = class
	default:
		return nil, dnderr.InvalidArgumentf("unknown field '%s'", field)
	}

	if err := s.repository.Upsert(ctx, char); err != nil {
		return nil, dnderr.Wrap(err, "failed to update character").
			WithMeta("user_id", userID)
	}

	return char, nil
}

// SetAvatar updates the portrait URL, preserving all other fields
func (s *service) SetAvatar(ctx context.Context, userID, avatarURL string) error {
	avatarURL = strings.TrimSpace(avatarURL)
	if avatarURL == "" {
		return dnderr.Validation("image URL cannot be empty")
	}

	return s.repository.UpdateAvatar(ctx, userID, avatarURL)
}

// DeleteCharacter removes the sheet. Reports whether one existed.
func (s *service) DeleteCharacter(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, dnderr.InvalidArgument("user ID is required")
	}

	if _, err := s.repository.Get(ctx, userID); err != nil {
		if dnderr.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	if err := s.repository.Delete(ctx, userID); err != nil {
		return false, err
	}

	return true, nil
}

// activeWizard looks up the wizard for a pair and checks that the
// interaction belongs to it and that it is on the expected step.
func (s *service) activeWizard(userID, channelID, wizardID string, step Step) (*WizardSession, error) {
	wizard, exists := s.wizards.get(userID, channelID)
	if !exists {
		return nil, dnderr.NotFound("no character creation in progress")
	}
	if wizard.ID != wizardID {
		return nil, dnderr.InvalidArgument("this menu belongs to an older creation attempt")
	}
	if wizard.Step != step {
		return nil, dnderr.InvalidArgumentf("unexpected step: wizard is at %s", wizard.Step)
	}

	return wizard, nil
}

// ParseAttributes converts the raw form fields into attribute scores.
// A blank field counts as 0; any non-numeric or negative field fails
// the whole submission and nothing is stored.
func ParseAttributes(raw RawAttributes) (character.Attributes, error) {
	var attrs character.Attributes

	fields := []struct {
		name  string
		value string
		dest  *int
	}{
		{"strength", raw.Strength, &attrs.Strength},
		{"constitution", raw.Constitution, &attrs.Constitution},
		{"intelligence", raw.Intelligence, &attrs.Intelligence},
		{"wisdom", raw.Wisdom, &attrs.Wisdom},
		{"charisma", raw.Charisma, &attrs.Charisma},
	}

	for _, f := range fields {
		value := strings.TrimSpace(f.value)
		if value == "" {
			*f.dest = 0
			continue
		}

		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return character.Attributes{}, dnderr.Validationf("%s must be a non-negative number, got %q", f.name, f.value)
		}
		*f.dest = n
	}

	return attrs, nil
}
