package services

import (
	masterRepo "github.com/archaosrpg/archaos-bot/internal/repositories/masters"
	playerRepo "github.com/archaosrpg/archaos-bot/internal/repositories/players"
	characterService "github.com/archaosrpg/archaos-bot/internal/services/character"
	mastersService "github.com/archaosrpg/archaos-bot/internal/services/masters"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	MasterService    mastersService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	PlayerRepository playerRepo.Repository
	MasterRepository masterRepo.Repository
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	players := cfg.PlayerRepository
	if players == nil {
		players = playerRepo.NewInMemoryRepository()
	}

	masters := cfg.MasterRepository
	if masters == nil {
		masters = masterRepo.NewInMemoryRepository()
	}

	masterSvc := mastersService.NewService(&mastersService.ServiceConfig{
		Repository: masters,
	})

	charSvc := characterService.NewService(&characterService.ServiceConfig{
		Repository:    players,
		MasterService: masterSvc,
	})

	return &Provider{
		CharacterService: charSvc,
		MasterService:    masterSvc,
	}
}
