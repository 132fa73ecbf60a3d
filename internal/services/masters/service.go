package masters

import (
	"context"
	"log"

	dnderr "github.com/archaosrpg/archaos-bot/internal/errors"
	masterRepo "github.com/archaosrpg/archaos-bot/internal/repositories/masters"
)

// Repository is an alias for the master registry repository interface
type Repository = masterRepo.Repository

// Service manages the registry of privileged user IDs. Administrator
// permission on the mutators is enforced by the Discord layer; this
// service only handles membership semantics and durable writes.
type Service interface {
	// AddMaster grants master status. Fails with already_exists when present.
	AddMaster(ctx context.Context, userID string) error

	// RemoveMaster revokes master status. Fails with not_found when absent.
	RemoveMaster(ctx context.Context, userID string) error

	// IsMaster checks whether a user holds master status
	IsMaster(ctx context.Context, userID string) (bool, error)

	// ListMasters returns all master user IDs
	ListMasters(ctx context.Context) ([]string, error)
}

// service implements the Service interface
type service struct {
	repository Repository
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository // Required
}

// NewService creates a new master registry service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	return &service{
		repository: cfg.Repository,
	}
}

// AddMaster grants master status
func (s *service) AddMaster(ctx context.Context, userID string) error {
	added, err := s.repository.Add(ctx, userID)
	if err != nil {
		return dnderr.Wrap(err, "failed to add master").
			WithMeta("user_id", userID)
	}
	if !added {
		return dnderr.AlreadyExists("user is already a master").
			WithMeta("user_id", userID)
	}

	log.Printf("Granted master status to user %s", userID)
	return nil
}

// RemoveMaster revokes master status
func (s *service) RemoveMaster(ctx context.Context, userID string) error {
	removed, err := s.repository.Remove(ctx, userID)
	if err != nil {
		return dnderr.Wrap(err, "failed to remove master").
			WithMeta("user_id", userID)
	}
	if !removed {
		return dnderr.NotFound("user is not a master").
			WithMeta("user_id", userID)
	}

	log.Printf("Revoked master status from user %s", userID)
	return nil
}

// IsMaster checks whether a user holds master status
func (s *service) IsMaster(ctx context.Context, userID string) (bool, error) {
	return s.repository.Contains(ctx, userID)
}

// ListMasters returns all master user IDs
func (s *service) ListMasters(ctx context.Context) ([]string, error) {
	return s.repository.List(ctx)
}
