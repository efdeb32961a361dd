package models

import (
	"time"

	"github.com/google/uuid"
)

// Bid is one accepted offer. It is created by Auction.SubmitBid and never
// modified afterwards; callers always receive copies.
type Bid struct {
	ID       uuid.UUID
	Bidder   string
	Amount   int64
	PlacedAt time.Time
}

// BidOutcome is the result of routing a bid through the registry.
type BidOutcome int

const (
	BidAccepted BidOutcome = iota
	BidRejected
	BidAuctionNotFound
	BidHouseNotFound
)

func (o BidOutcome) String() string {
	switch o {
	case BidAccepted:
		return "accepted"
	case BidRejected:
		return "rejected"
	case BidAuctionNotFound:
		return "auction_not_found"
	case BidHouseNotFound:
		return "house_not_found"
	default:
		return "unknown"
	}
}
