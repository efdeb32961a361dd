package models

import (
	"time"

	"github.com/facebookgo/clock"
	"github.com/google/uuid"

	"github.com/ghuser/auctionhouse/pkg/syncutils"
)

// Auction is a single item for sale with a fixed bidding window, a start price
// and an append-only bid history.
//
// Timestamps are kept in epoch milliseconds. The phase is derived from the
// clock on every read:
//
//	now <= start          NOT_STARTED
//	start < now < end     RUNNING
//	now >= end            TERMINATED
//
// DELETED overrides everything and never clears. The first read that sees
// now >= end latches TERMINATED and fixes the winner under the write lock, so
// no bid can be appended after a winner has been observed.
type Auction struct {
	name        Name
	description string
	startMillis int64
	endMillis   int64
	startPrice  int64
	clock       clock.Clock

	mu         syncutils.RWMutex
	bids       []Bid
	deleted    bool
	terminated bool
	winner     string
	hasWinner  bool
}

// AuctionSnapshot is a consistent copy of an auction taken at one instant.
type AuctionSnapshot struct {
	Name         string
	Description  string
	StartTime    time.Time
	EndTime      time.Time
	StartPrice   int64
	CurrentPrice int64
	Status       Status
	Bids         []Bid
	Winner       string
	HasWinner    bool
}

// NewAuction creates an auction that starts now according to clk and ends at
// endTime. A nil clk uses the wall clock.
func NewAuction(name Name, description string, endTime time.Time, startPrice int64, clk clock.Clock) *Auction {
	if clk == nil {
		clk = clock.New()
	}
	return &Auction{
		name:        name,
		description: description,
		startMillis: clk.Now().UnixMilli(),
		endMillis:   endTime.UnixMilli(),
		startPrice:  startPrice,
		clock:       clk,
	}
}

// Name returns the auction's key within its house.
func (a *Auction) Name() Name {
	return a.name
}

func (a *Auction) Description() string {
	return a.description
}

func (a *Auction) StartPrice() int64 {
	return a.startPrice
}

// StartTime is the creation instant, truncated to milliseconds.
func (a *Auction) StartTime() time.Time {
	return time.UnixMilli(a.startMillis)
}

func (a *Auction) EndTime() time.Time {
	return time.UnixMilli(a.endMillis)
}

func (a *Auction) now() int64 {
	return a.clock.Now().UnixMilli()
}

func phase(t, start, end int64) Status {
	switch {
	case t <= start:
		return StatusNotStarted
	case t < end:
		return StatusRunning
	default:
		return StatusTerminated
	}
}

// SubmitBid appends a bid when the auction is running and amount is strictly
// greater than the current price. The check and the append happen under one
// write lock, so concurrent submissions on the same auction are serialized.
func (a *Auction) SubmitBid(bidder string, amount int64) (Bid, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.clock.Now()
	if a.statusLocked(now.UnixMilli()) != StatusRunning {
		return Bid{}, false
	}
	if amount <= a.currentPriceLocked() {
		return Bid{}, false
	}

	bid := Bid{
		ID:       uuid.New(),
		Bidder:   bidder,
		Amount:   amount,
		PlacedAt: time.UnixMilli(now.UnixMilli()),
	}
	a.bids = append(a.bids, bid)
	return bid, true
}

// Status returns the current lifecycle phase.
func (a *Auction) Status() Status {
	a.mu.RLock()
	if s, ok := a.settledLocked(); ok {
		a.mu.RUnlock()
		return s
	}
	s := phase(a.now(), a.startMillis, a.endMillis)
	a.mu.RUnlock()
	if s != StatusTerminated {
		return s
	}

	// Latching termination writes shared state.
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.statusLocked(a.now())
}

// Winner returns the bidder of the last accepted bid once the auction is
// TERMINATED. ok is false before termination, after deletion, or when no bid
// was ever accepted.
func (a *Auction) Winner() (status Status, winner string, ok bool) {
	status = a.Status()
	if status != StatusTerminated {
		return status, "", false
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	return status, a.winner, a.hasWinner
}

// MarkDeleted forces the auction into DELETED. Bids are kept.
func (a *Auction) MarkDeleted() {
	a.mu.Lock()
	a.deleted = true
	a.mu.Unlock()
}

// CurrentPrice is the amount of the latest accepted bid, or the start price.
func (a *Auction) CurrentPrice() int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.currentPriceLocked()
}

// Bids returns a copy of the accepted bids in acceptance order.
func (a *Auction) Bids() []Bid {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Bid, len(a.bids))
	copy(out, a.bids)
	return out
}

// BidsBy returns the accepted bids placed by bidder, in acceptance order.
func (a *Auction) BidsBy(bidder string) []Bid {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Bid, 0)
	for _, b := range a.bids {
		if b.Bidder == bidder {
			out = append(out, b)
		}
	}
	return out
}

// Snapshot returns a copy of the auction whose status, bids and winner agree
// with each other.
func (a *Auction) Snapshot() AuctionSnapshot {
	a.mu.RLock()
	s, ok := a.settledLocked()
	if !ok {
		s = phase(a.now(), a.startMillis, a.endMillis)
	}
	if s != StatusTerminated || ok {
		defer a.mu.RUnlock()
		return a.snapshotLocked(s)
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked(a.statusLocked(a.now()))
}

func (a *Auction) snapshotLocked(status Status) AuctionSnapshot {
	bids := make([]Bid, len(a.bids))
	copy(bids, a.bids)

	snap := AuctionSnapshot{
		Name:         a.name.String(),
		Description:  a.description,
		StartTime:    a.StartTime(),
		EndTime:      a.EndTime(),
		StartPrice:   a.startPrice,
		CurrentPrice: a.currentPriceLocked(),
		Status:       status,
		Bids:         bids,
	}
	if status == StatusTerminated {
		snap.Winner, snap.HasWinner = a.winner, a.hasWinner
	}
	return snap
}

// settledLocked reports phases that no longer depend on the clock.
func (a *Auction) settledLocked() (Status, bool) {
	switch {
	case a.deleted:
		return StatusDeleted, true
	case a.terminated:
		return StatusTerminated, true
	}
	return "", false
}

// statusLocked must be called with the write lock held.
func (a *Auction) statusLocked(t int64) Status {
	if s, ok := a.settledLocked(); ok {
		return s
	}
	s := phase(t, a.startMillis, a.endMillis)
	if s == StatusTerminated {
		a.terminated = true
		if n := len(a.bids); n > 0 {
			a.winner, a.hasWinner = a.bids[n-1].Bidder, true
		}
	}
	return s
}

func (a *Auction) currentPriceLocked() int64 {
	if n := len(a.bids); n > 0 {
		return a.bids[n-1].Amount
	}
	return a.startPrice
}
