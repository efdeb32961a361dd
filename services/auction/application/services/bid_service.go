package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ghuser/auctionhouse/pkg/logger"
	"github.com/ghuser/auctionhouse/pkg/telemetry"
	auctiondomain "github.com/ghuser/auctionhouse/services/auction/domain"
	"github.com/ghuser/auctionhouse/services/auction/domain/models"
	"github.com/ghuser/auctionhouse/services/auction/domain/repositories"
)

// BidService routes bids to auctions and reads bid histories.
type BidService struct {
	repo    repositories.HouseRepository
	log     logger.Logger
	metrics *telemetry.Metrics
}

// NewBidService returns a BidService backed by repo. metrics may be nil.
func NewBidService(repo repositories.HouseRepository, log logger.Logger, metrics *telemetry.Metrics) *BidService {
	return &BidService{repo: repo, log: log, metrics: metrics}
}

// Submit routes one bid and reports how it was handled. The bid is only
// meaningful when the outcome is BidAccepted.
func (s *BidService) Submit(ctx context.Context, houseName, auctionName, bidder string, amount int64) (models.Bid, models.BidOutcome) {
	house, err := s.repo.GetByName(ctx, houseName)
	if err != nil {
		s.record(ctx, houseName, auctionName, bidder, amount, models.BidHouseNotFound)
		return models.Bid{}, models.BidHouseNotFound
	}

	bid, outcome := house.SubmitBid(auctionName, bidder, amount)
	s.record(ctx, houseName, auctionName, bidder, amount, outcome)
	return bid, outcome
}

// Place validates the bidder name, submits the bid and converts the outcome
// into the domain's sentinel errors.
func (s *BidService) Place(ctx context.Context, houseName, auctionName, bidder string, amount int64) (models.Bid, error) {
	if _, err := parseName("bidder", bidder); err != nil {
		return models.Bid{}, err
	}

	bid, outcome := s.Submit(ctx, houseName, auctionName, bidder, amount)
	if err := outcomeError(outcome); err != nil {
		return models.Bid{}, fmt.Errorf("place bid: %w", err)
	}
	return bid, nil
}

// List returns the auction's accepted bids in acceptance order. A non-empty
// bidder restricts the result to that bidder's bids.
func (s *BidService) List(ctx context.Context, houseName, auctionName, bidder string) ([]models.Bid, error) {
	house, err := s.repo.GetByName(ctx, houseName)
	if err != nil {
		return nil, fmt.Errorf("get house: %w", err)
	}
	auction, ok := house.Auction(auctionName)
	if !ok {
		return nil, fmt.Errorf("get auction: %w", auctiondomain.ErrAuctionNotFound)
	}
	if bidder == "" {
		return auction.Bids(), nil
	}
	return auction.BidsBy(bidder), nil
}

func (s *BidService) record(ctx context.Context, houseName, auctionName, bidder string, amount int64, outcome models.BidOutcome) {
	s.metrics.BidSubmitted(ctx, outcome.String(), amount)
	s.log.DebugContext(ctx, "bid submitted",
		"house", houseName,
		"auction", auctionName,
		"bidder", bidder,
		"amount", amount,
		"outcome", outcome.String(),
	)
}

func outcomeError(o models.BidOutcome) error {
	switch o {
	case models.BidAccepted:
		return nil
	case models.BidRejected:
		return auctiondomain.ErrBidRejected
	case models.BidAuctionNotFound:
		return auctiondomain.ErrAuctionNotFound
	case models.BidHouseNotFound:
		return auctiondomain.ErrHouseNotFound
	default:
		return errors.New("unknown bid outcome")
	}
}
