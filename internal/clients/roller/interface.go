package roller

//go:generate mockgen -destination=mock/mock.go -package=mockroller -source=interface.go

import (
	"context"
)

// RollGroup is one die group in the service's breakdown: the raw
// per-die results in order, the modifiers applied to them, and the
// service's precomputed sum with modifiers.
type RollGroup struct {
	Info    string `json:"info"`
	Results []int  `json:"results"`
	Mods    []int  `json:"mods"`
	Total   int    `json:"dicesSumWMod"`
}

// Client talks to the external dice rolling service
type Client interface {
	// Roll sends a dice expression (e.g. "3d20+15") and returns the
	// parsed group breakdown. The call is attempted once, never retried.
	Roll(ctx context.Context, expression string) ([]RollGroup, error)
}
