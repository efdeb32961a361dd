package models

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHouse_RegisterAuction(t *testing.T) {
	clk := clock.NewMock()
	h := NewHouse("h1")
	assert.Equal(t, Name("h1"), h.Name())

	first := NewAuction("a1", "first", clk.Now().Add(time.Hour), 1, clk)
	second := NewAuction("a1", "second", clk.Now().Add(time.Hour), 2, clk)

	assert.True(t, h.RegisterAuction(first))
	assert.False(t, h.RegisterAuction(second))
	assert.Equal(t, 1, h.AuctionCount())

	got, ok := h.Auction("a1")
	require.True(t, ok)
	assert.Same(t, first, got, "existing auction is never replaced")

	_, ok = h.Auction("missing")
	assert.False(t, ok)
}

func TestHouse_RegisterAuctionConcurrent(t *testing.T) {
	clk := clock.NewMock()
	h := NewHouse("h1")

	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if h.RegisterAuction(NewAuction("a1", "", clk.Now().Add(time.Hour), 1, clk)) {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, 1, h.AuctionCount())
}

func TestHouse_SubmitBid(t *testing.T) {
	clk := clock.NewMock()
	h := NewHouse("h1")
	require.True(t, h.RegisterAuction(NewAuction("a1", "d1", clk.Now().Add(24*time.Hour), 1, clk)))
	clk.Add(time.Millisecond)

	bid, outcome := h.SubmitBid("a1", "u1", 1000)
	assert.Equal(t, BidAccepted, outcome)
	assert.Equal(t, int64(1000), bid.Amount)

	_, outcome = h.SubmitBid("a1", "u1", 999)
	assert.Equal(t, BidRejected, outcome)

	_, outcome = h.SubmitBid("missing", "u1", 5000)
	assert.Equal(t, BidAuctionNotFound, outcome)

	a, ok := h.Auction("a1")
	require.True(t, ok)
	bids := a.Bids()
	require.Len(t, bids, 1)
	assert.Equal(t, "u1", bids[0].Bidder)
	assert.Equal(t, int64(1000), bids[0].Amount)
}

func TestHouse_ListAuctions(t *testing.T) {
	clk := clock.NewMock()
	h := NewHouse("h1")

	// "short" ends after 10ms, "long" after an hour, "gone" is deleted.
	require.True(t, h.RegisterAuction(NewAuction("short", "", clk.Now().Add(10*time.Millisecond), 1, clk)))
	require.True(t, h.RegisterAuction(NewAuction("long", "", clk.Now().Add(time.Hour), 1, clk)))
	require.True(t, h.RegisterAuction(NewAuction("gone", "", clk.Now().Add(time.Hour), 1, clk)))
	require.True(t, h.MarkAuctionDeleted("gone"))

	names := func(as []*Auction) []string {
		out := make([]string, 0, len(as))
		for _, a := range as {
			out = append(out, a.Name().String())
		}
		return out
	}

	assert.Equal(t, []string{"long", "short"}, names(h.ListAuctions("NOT_STARTED")))

	clk.Add(time.Millisecond)
	assert.Equal(t, []string{"long", "short"}, names(h.ListAuctions("RUNNING")))

	clk.Add(time.Second)
	assert.Equal(t, []string{"long"}, names(h.ListAuctions("RUNNING")))
	assert.Equal(t, []string{"short"}, names(h.ListAuctions("TERMINATED")))
	assert.Equal(t, []string{"gone"}, names(h.ListAuctions("DELETED")))

	all := []string{"gone", "long", "short"}
	assert.Equal(t, all, names(h.ListAuctions("")))
	assert.Equal(t, all, names(h.ListAuctions("FINISHED")), "unrecognized filter returns everything")
	assert.Equal(t, all, names(h.ListAuctions("running")), "filter is case-sensitive")
}

func TestHouse_MarkAuctionDeleted(t *testing.T) {
	clk := clock.NewMock()
	h := NewHouse("h1")
	require.True(t, h.RegisterAuction(NewAuction("a1", "", clk.Now().Add(time.Hour), 1, clk)))

	assert.False(t, h.MarkAuctionDeleted("missing"))
	assert.True(t, h.MarkAuctionDeleted("a1"))
	assert.True(t, h.MarkAuctionDeleted("a1"), "deleting twice is idempotent")

	a, ok := h.Auction("a1")
	require.True(t, ok)
	assert.Equal(t, StatusDeleted, a.Status())

	// The name stays taken.
	assert.False(t, h.RegisterAuction(NewAuction("a1", "", clk.Now().Add(time.Hour), 1, clk)))

	clk.Add(time.Millisecond)
	_, outcome := h.SubmitBid("a1", "u1", 10)
	assert.Equal(t, BidRejected, outcome)
}

func TestHouse_BiddingAcrossAuctions(t *testing.T) {
	clk := clock.NewMock()
	h := NewHouse("h1")
	const auctions = 8
	for i := 0; i < auctions; i++ {
		require.True(t, h.RegisterAuction(NewAuction(Name(fmt.Sprintf("a%d", i)), "", clk.Now().Add(time.Hour), 0, clk)))
	}
	clk.Add(time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < auctions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("a%d", i)
			for amount := int64(1); amount <= 100; amount++ {
				h.SubmitBid(name, "u", amount)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < auctions; i++ {
		a, ok := h.Auction(fmt.Sprintf("a%d", i))
		require.True(t, ok)
		assert.Len(t, a.Bids(), 100)
		assert.Equal(t, int64(100), a.CurrentPrice())
	}
}
