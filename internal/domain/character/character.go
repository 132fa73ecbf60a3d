package character

// Race is one of the fixed playable races
type Race string

// Class is one of the fixed playable classes
type Class string

const (
	RaceHuman     Race = "Human"
	RaceElf       Race = "Elf"
	RaceFairy     Race = "Fairy"
	RaceGiant     Race = "Giant"
	RaceDragonkin Race = "Dragonkin"
	RaceVampire   Race = "Vampire"
	RaceWitch     Race = "Witch"
)

const (
	ClassWarrior Class = "Warrior"
	ClassMage    Class = "Mage"
	ClassArcher  Class = "Archer"
	ClassRogue   Class = "Rogue"
	ClassPaladin Class = "Paladin"
)

// Attributes holds the five assignable ability scores. All default to
// zero and are overwritten wholesale on each submission.
type Attributes struct {
	Strength     int `json:"strength"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// IsZero reports whether no score has been assigned yet
func (a Attributes) IsZero() bool {
	return a == Attributes{}
}

// Character is the persisted sheet record, one per user
type Character struct {
	UserID     string     `json:"user_id"`
	Name       string     `json:"name"`
	Level      int        `json:"level"`
	HitPoints  int        `json:"hit_points"`
	Race       Race       `json:"race"`
	Class      Class      `json:"char_class"`
	Attributes Attributes `json:"attributes"`
	AvatarURL  string     `json:"avatar_url,omitempty"`
}
