package models

import (
	"github.com/zhangyunhao116/skipmap"
)

// House is a named registry of auctions. The auction map is a lock-free
// skip list: lookups, inserts and iteration never block bidding on other
// auctions, and iteration is ordered by auction name.
type House struct {
	name     Name
	auctions *skipmap.StringMap[*Auction]
}

// NewHouse returns an empty house.
func NewHouse(name Name) *House {
	return &House{
		name:     name,
		auctions: skipmap.NewString[*Auction](),
	}
}

// Name returns the house's key in the registry.
func (h *House) Name() Name {
	return h.name
}

// RegisterAuction inserts a only if no auction with the same name exists.
// It reports whether the insert happened; an existing auction is never replaced.
func (h *House) RegisterAuction(a *Auction) bool {
	_, loaded := h.auctions.LoadOrStore(a.Name().String(), a)
	return !loaded
}

// Auction looks up an auction by name.
func (h *House) Auction(name string) (*Auction, bool) {
	return h.auctions.Load(name)
}

// SubmitBid routes a bid to the named auction. The auction is mutated in
// place; the house map is not touched.
func (h *House) SubmitBid(auctionName, bidder string, amount int64) (Bid, BidOutcome) {
	a, ok := h.auctions.Load(auctionName)
	if !ok {
		return Bid{}, BidAuctionNotFound
	}
	bid, accepted := a.SubmitBid(bidder, amount)
	if !accepted {
		return Bid{}, BidRejected
	}
	return bid, BidAccepted
}

// ListAuctions returns the auctions whose current status matches filter.
// An empty or unrecognized filter returns every auction. Each auction's
// status is derived at the moment it is visited.
func (h *House) ListAuctions(filter string) []*Auction {
	want, filtered := ParseStatus(filter)
	out := make([]*Auction, 0, h.auctions.Len())
	h.auctions.Range(func(_ string, a *Auction) bool {
		if !filtered || a.Status() == want {
			out = append(out, a)
		}
		return true
	})
	return out
}

// MarkAuctionDeleted marks the named auction DELETED. It reports false when
// the auction does not exist.
func (h *House) MarkAuctionDeleted(name string) bool {
	a, ok := h.auctions.Load(name)
	if !ok {
		return false
	}
	a.MarkDeleted()
	return true
}

// AuctionCount returns the number of registered auctions, deleted ones included.
func (h *House) AuctionCount() int {
	return h.auctions.Len()
}
