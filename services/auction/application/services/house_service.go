package services

import (
	"context"
	"fmt"

	"github.com/ghuser/auctionhouse/pkg/logger"
	"github.com/ghuser/auctionhouse/pkg/telemetry"
	"github.com/ghuser/auctionhouse/services/auction/domain/models"
	"github.com/ghuser/auctionhouse/services/auction/domain/repositories"
)

// HouseService creates, lists and deletes auction houses.
type HouseService struct {
	repo    repositories.HouseRepository
	log     logger.Logger
	metrics *telemetry.Metrics
}

// NewHouseService returns a HouseService backed by repo. metrics may be nil.
func NewHouseService(repo repositories.HouseRepository, log logger.Logger, metrics *telemetry.Metrics) *HouseService {
	return &HouseService{repo: repo, log: log, metrics: metrics}
}

// Create registers an empty house. Returns ErrHouseAlreadyExists when the
// name is taken and ErrInvalidName when it is malformed.
func (s *HouseService) Create(ctx context.Context, name string) (*models.House, error) {
	houseName, err := parseName("house", name)
	if err != nil {
		return nil, err
	}

	house := models.NewHouse(houseName)
	if err := s.repo.Save(ctx, house); err != nil {
		return nil, fmt.Errorf("save house: %w", err)
	}

	s.metrics.HouseCreated(ctx)
	s.log.InfoContext(ctx, "house created", "house", name)
	return house, nil
}

// Get returns the named house or ErrHouseNotFound.
func (s *HouseService) Get(ctx context.Context, name string) (*models.House, error) {
	house, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get house: %w", err)
	}
	return house, nil
}

// List returns every house ordered by name.
func (s *HouseService) List(ctx context.Context) ([]*models.House, error) {
	houses, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list houses: %w", err)
	}
	return houses, nil
}

// Delete removes a house together with its auctions.
func (s *HouseService) Delete(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete house: %w", err)
	}

	s.metrics.HouseDeleted(ctx)
	s.log.InfoContext(ctx, "house deleted", "house", name)
	return nil
}

// Count reports the number of registered houses.
func (s *HouseService) Count(ctx context.Context) int {
	return s.repo.Count(ctx)
}
