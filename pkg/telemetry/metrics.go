package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the auction domain instruments. A nil *Metrics is valid and
// records nothing, so services can be built without telemetry in tests.
type Metrics struct {
	housesCreated   metric.Int64Counter
	housesDeleted   metric.Int64Counter
	auctionsCreated metric.Int64Counter
	auctionsDeleted metric.Int64Counter
	bids            metric.Int64Counter
	bidAmount       metric.Int64Histogram
}

// NewMetricsWithMeter registers the domain instruments on meter.
func NewMetricsWithMeter(meter metric.Meter) (*Metrics, error) {
	var (
		m   Metrics
		err error
	)

	if m.housesCreated, err = meter.Int64Counter("auction_houses_created_total",
		metric.WithDescription("Auction houses created")); err != nil {
		return nil, fmt.Errorf("houses created counter: %w", err)
	}
	if m.housesDeleted, err = meter.Int64Counter("auction_houses_deleted_total",
		metric.WithDescription("Auction houses deleted")); err != nil {
		return nil, fmt.Errorf("houses deleted counter: %w", err)
	}
	if m.auctionsCreated, err = meter.Int64Counter("auctions_created_total",
		metric.WithDescription("Auctions created")); err != nil {
		return nil, fmt.Errorf("auctions created counter: %w", err)
	}
	if m.auctionsDeleted, err = meter.Int64Counter("auctions_deleted_total",
		metric.WithDescription("Auctions marked deleted")); err != nil {
		return nil, fmt.Errorf("auctions deleted counter: %w", err)
	}
	if m.bids, err = meter.Int64Counter("auction_bids_total",
		metric.WithDescription("Bids submitted, by outcome")); err != nil {
		return nil, fmt.Errorf("bids counter: %w", err)
	}
	if m.bidAmount, err = meter.Int64Histogram("auction_accepted_bid_amount",
		metric.WithDescription("Amount of accepted bids")); err != nil {
		return nil, fmt.Errorf("bid amount histogram: %w", err)
	}
	return &m, nil
}

// HouseCreated records a successful house creation.
func (m *Metrics) HouseCreated(ctx context.Context) {
	if m == nil {
		return
	}
	m.housesCreated.Add(ctx, 1)
}

func (m *Metrics) HouseDeleted(ctx context.Context) {
	if m == nil {
		return
	}
	m.housesDeleted.Add(ctx, 1)
}

func (m *Metrics) AuctionCreated(ctx context.Context, house string) {
	if m == nil {
		return
	}
	m.auctionsCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("house", house)))
}

func (m *Metrics) AuctionDeleted(ctx context.Context, house string) {
	if m == nil {
		return
	}
	m.auctionsDeleted.Add(ctx, 1, metric.WithAttributes(attribute.String("house", house)))
}

// BidSubmitted records one bid attempt. amount is only observed for accepted bids.
func (m *Metrics) BidSubmitted(ctx context.Context, outcome string, amount int64) {
	if m == nil {
		return
	}
	m.bids.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	if outcome == "accepted" {
		m.bidAmount.Record(ctx, amount)
	}
}
