// Package services contains server-side business logic. ElectricityService
// sits between the HTTP facade and the counter repository.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/footsteps/internal/logging"
	"github.com/dmitrijs2005/footsteps/internal/server/models"
	"github.com/dmitrijs2005/footsteps/internal/server/repositories/counter"
)

// ElectricityService reads and advances the electricity counter. It keeps no
// copy of the value; every call goes to the repository.
type ElectricityService struct {
	repo   counter.Repository
	logger logging.Logger
}

func NewElectricityService(repo counter.Repository, l logging.Logger) *ElectricityService {
	return &ElectricityService{repo: repo, logger: l.With("module", "electricity_service")}
}

// Initialize makes sure the counter row exists. Errors are fatal for startup.
func (s *ElectricityService) Initialize(ctx context.Context) error {
	seeded, err := s.repo.Initialize(ctx)
	if err != nil {
		return fmt.Errorf("counter initialization: %w", err)
	}

	if seeded {
		s.logger.Info(ctx, "Initialized electricity counter to 0")
	} else {
		s.logger.Info(ctx, "Electricity counter exists")
	}
	return nil
}

// Current returns the stored counter value.
func (s *ElectricityService) Current(ctx context.Context) (int64, error) {
	v, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Error(ctx, "reading counter failed", "error", err)
		return 0, err
	}
	return v, nil
}

// Generate records one footstep and returns the new counter value.
func (s *ElectricityService) Generate(ctx context.Context) (int64, error) {
	v, err := s.repo.Increment(ctx)
	if err != nil {
		s.logger.Error(ctx, "incrementing counter failed", "error", err)
		return 0, err
	}
	s.logger.Debug(ctx, "electricity generated", "value", v)
	return v, nil
}

// Stats returns the counter value together with derived figures.
func (s *ElectricityService) Stats(ctx context.Context) (models.Stats, error) {
	v, err := s.Current(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	return models.NewStats(v), nil
}

func (s *ElectricityService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
