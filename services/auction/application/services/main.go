package services

import (
	"github.com/facebookgo/clock"

	"github.com/ghuser/auctionhouse/pkg/app"
	"github.com/ghuser/auctionhouse/services/auction/infrastructure/persistence/memory"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	House   *HouseService
	Auction *AuctionService
	Bid     *BidService
}

// New wires all auction application services around one in-memory house registry.
func New(a *app.Application) *Services {
	clk := a.Clock
	if clk == nil {
		clk = clock.New()
	}
	repo := memory.NewHouseRepository()
	return &Services{
		House:   NewHouseService(repo, a.Logger, a.Metrics),
		Auction: NewAuctionService(repo, clk, a.Logger, a.Metrics),
		Bid:     NewBidService(repo, a.Logger, a.Metrics),
	}
}
