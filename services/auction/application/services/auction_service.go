package services

import (
	"context"
	"fmt"
	"time"

	"github.com/facebookgo/clock"

	"github.com/ghuser/auctionhouse/pkg/logger"
	"github.com/ghuser/auctionhouse/pkg/telemetry"
	auctiondomain "github.com/ghuser/auctionhouse/services/auction/domain"
	"github.com/ghuser/auctionhouse/services/auction/domain/models"
	"github.com/ghuser/auctionhouse/services/auction/domain/repositories"
	domainsvcs "github.com/ghuser/auctionhouse/services/auction/domain/services"
)

// CreateAuctionParams carries the attributes of a new auction. The auction
// starts at the service clock's current instant.
type CreateAuctionParams struct {
	House       string
	Name        string
	Description string
	StartPrice  int64
	EndTime     time.Time
}

// WinnerResult is the outcome of a winner query on a terminated auction.
// HasWinner is false when the auction closed without any accepted bid.
type WinnerResult struct {
	Status    models.Status
	Winner    string
	HasWinner bool
}

// AuctionService manages auctions inside houses.
type AuctionService struct {
	repo    repositories.HouseRepository
	clock   clock.Clock
	log     logger.Logger
	metrics *telemetry.Metrics
}

// NewAuctionService returns an AuctionService. clk stamps auction start times
// and drives status derivation.
func NewAuctionService(repo repositories.HouseRepository, clk clock.Clock, log logger.Logger, metrics *telemetry.Metrics) *AuctionService {
	return &AuctionService{repo: repo, clock: clk, log: log, metrics: metrics}
}

// Create registers a new auction in p.House. Returns ErrHouseNotFound,
// ErrAuctionAlreadyExists, ErrInvalidName or ErrInvalidAuction.
func (s *AuctionService) Create(ctx context.Context, p CreateAuctionParams) (models.AuctionSnapshot, error) {
	auctionName, err := parseName("auction", p.Name)
	if err != nil {
		return models.AuctionSnapshot{}, err
	}

	house, err := s.repo.GetByName(ctx, p.House)
	if err != nil {
		return models.AuctionSnapshot{}, fmt.Errorf("get house: %w", err)
	}

	auction := models.NewAuction(auctionName, p.Description, p.EndTime, p.StartPrice, s.clock)
	if err := domainsvcs.ValidateAuctionForCreation(auction); err != nil {
		return models.AuctionSnapshot{}, fmt.Errorf("%w: %w", auctiondomain.ErrInvalidAuction, err)
	}

	if !house.RegisterAuction(auction) {
		return models.AuctionSnapshot{}, fmt.Errorf("register auction: %w", auctiondomain.ErrAuctionAlreadyExists)
	}

	s.metrics.AuctionCreated(ctx, p.House)
	s.log.InfoContext(ctx, "auction created",
		"house", p.House,
		"auction", p.Name,
		"start_price", p.StartPrice,
		"end_time", auction.EndTime().UnixMilli(),
	)
	return auction.Snapshot(), nil
}

// Delete marks an auction DELETED. Its bids are kept and its name stays taken.
func (s *AuctionService) Delete(ctx context.Context, houseName, auctionName string) error {
	house, err := s.repo.GetByName(ctx, houseName)
	if err != nil {
		return fmt.Errorf("get house: %w", err)
	}
	if !house.MarkAuctionDeleted(auctionName) {
		return fmt.Errorf("delete auction: %w", auctiondomain.ErrAuctionNotFound)
	}

	s.metrics.AuctionDeleted(ctx, houseName)
	s.log.InfoContext(ctx, "auction deleted", "house", houseName, "auction", auctionName)
	return nil
}

// List returns snapshots of the house's auctions in name order. status is
// matched exactly against the lifecycle phases; any other value, including
// the empty string, disables filtering.
func (s *AuctionService) List(ctx context.Context, houseName, status string) ([]models.AuctionSnapshot, error) {
	house, err := s.repo.GetByName(ctx, houseName)
	if err != nil {
		return nil, fmt.Errorf("get house: %w", err)
	}

	auctions := house.ListAuctions(status)
	out := make([]models.AuctionSnapshot, 0, len(auctions))
	for _, a := range auctions {
		out = append(out, a.Snapshot())
	}
	return out, nil
}

// Winner reports the auction's outcome. Returns ErrAuctionNotTerminated while
// the auction is not TERMINATED, deleted auctions included.
func (s *AuctionService) Winner(ctx context.Context, houseName, auctionName string) (WinnerResult, error) {
	auction, err := s.lookup(ctx, houseName, auctionName)
	if err != nil {
		return WinnerResult{}, err
	}

	status, winner, ok := auction.Winner()
	if status != models.StatusTerminated {
		return WinnerResult{Status: status}, fmt.Errorf("auction is %s: %w", status, auctiondomain.ErrAuctionNotTerminated)
	}
	return WinnerResult{Status: status, Winner: winner, HasWinner: ok}, nil
}

// Get returns a snapshot of one auction.
func (s *AuctionService) Get(ctx context.Context, houseName, auctionName string) (models.AuctionSnapshot, error) {
	auction, err := s.lookup(ctx, houseName, auctionName)
	if err != nil {
		return models.AuctionSnapshot{}, err
	}
	return auction.Snapshot(), nil
}

func (s *AuctionService) lookup(ctx context.Context, houseName, auctionName string) (*models.Auction, error) {
	house, err := s.repo.GetByName(ctx, houseName)
	if err != nil {
		return nil, fmt.Errorf("get house: %w", err)
	}
	auction, ok := house.Auction(auctionName)
	if !ok {
		return nil, fmt.Errorf("get auction: %w", auctiondomain.ErrAuctionNotFound)
	}
	return auction, nil
}
