package character

import (
	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
)

// raceBaseHP maps each race to its base hit points
var raceBaseHP = map[Race]int{
	RaceHuman:     100,
	RaceElf:       80,
	RaceFairy:     60,
	RaceGiant:     150,
	RaceDragonkin: 120,
	RaceVampire:   90,
	RaceWitch:     70,
}

// classBonusHP maps each class to its hit point bonus
var classBonusHP = map[Class]int{
	ClassWarrior: 30,
	ClassMage:    10,
	ClassArcher:  20,
	ClassRogue:   15,
	ClassPaladin: 25,
}

// Races returns the selectable races in presentation order
func Races() []Race {
	return []Race{RaceHuman, RaceElf, RaceFairy, RaceGiant, RaceDragonkin, RaceVampire, RaceWitch}
}

// Classes returns the selectable classes in presentation order
func Classes() []Class {
	return []Class{ClassWarrior, ClassMage, ClassArcher, ClassRogue, ClassPaladin}
}

// ValidRace reports whether r is a catalog race
func ValidRace(r Race) bool {
	_, ok := raceBaseHP[r]
	return ok
}

// ValidClass reports whether c is a catalog class
func ValidClass(c Class) bool {
	_, ok := classBonusHP[c]
	return ok
}

// HitPoints derives the starting hit points for a race/class pair.
// Unknown keys are a programming error upstream (the UI constrains
// choices to the catalog) and fail rather than default.
func HitPoints(race Race, class Class) (int, error) {
	base, ok := raceBaseHP[race]
	if !ok {
		return 0, dnderr.InvalidArgumentf("unknown race '%s'", race)
	}

	bonus, ok := classBonusHP[class]
	if !ok {
		return 0, dnderr.InvalidArgumentf("unknown class '%s'", class)
	}

	return base + bonus, nil
}
