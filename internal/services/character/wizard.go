package character

import (
	"fmt"
	"sync"
	"time"

	"github.com/archaosrpg/archaos-bot/internal/domain/character"
)

// NameTimeout bounds how long the wizard waits for the free-text name reply
const NameTimeout = 60 * time.Second

// Step identifies where a creation wizard currently is
type Step string

const (
	// StepName waits for the user's free-text name reply
	StepName Step = "name"

	// StepRace waits for a race selection
	StepRace Step = "race"

	// StepClass waits for a class selection
	StepClass Step = "class"

	// StepAttributes waits for the optional attribute form. The
	// character is already persisted by the time this step is reached.
	StepAttributes Step = "attributes"
)

// WizardSession is one in-progress character creation, scoped to the
// invoking user and the channel where it started. Selection handlers
// look sessions up by that key instead of closing over shared state.
type WizardSession struct {
	ID        string
	UserID    string
	ChannelID string
	Step      Step
	Name      string
	Race      character.Race
	Class     character.Class
	CreatedAt time.Time
}

// wizardKey is the registry key: one wizard per (user, channel) pair
func wizardKey(userID, channelID string) string {
	return fmt.Sprintf("%s:%s", userID, channelID)
}

// wizardRegistry holds all in-flight creation wizards
type wizardRegistry struct {
	mu      sync.RWMutex
	wizards map[string]*WizardSession
}

func newWizardRegistry() *wizardRegistry {
	return &wizardRegistry{
		wizards: make(map[string]*WizardSession),
	}
}

func (r *wizardRegistry) get(userID, channelID string) (*WizardSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wizards[wizardKey(userID, channelID)]
	return w, ok
}

func (r *wizardRegistry) put(w *WizardSession) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wizards[wizardKey(w.UserID, w.ChannelID)] = w
}

func (r *wizardRegistry) remove(userID, channelID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.wizards, wizardKey(userID, channelID))
}
