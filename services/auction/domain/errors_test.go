package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{
		ErrHouseNotFound,
		ErrAuctionNotFound,
		ErrHouseAlreadyExists,
		ErrAuctionAlreadyExists,
		ErrBidRejected,
		ErrAuctionNotTerminated,
		ErrInvalidName,
		ErrInvalidAuction,
	}
	for i, a := range all {
		if a == nil {
			t.Fatalf("sentinel %d must not be nil", i)
		}
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Fatalf("%q must not match %q", a, b)
			}
		}
	}
}

func TestSentinelErrors_Messages(t *testing.T) {
	if ErrHouseNotFound.Error() != "house does not exist" {
		t.Fatalf("unexpected message: %q", ErrHouseNotFound.Error())
	}
	if ErrBidRejected.Error() != "bid not accepted" {
		t.Fatalf("unexpected message: %q", ErrBidRejected.Error())
	}
	if ErrAuctionNotTerminated.Error() != "auction not terminated" {
		t.Fatalf("unexpected message: %q", ErrAuctionNotTerminated.Error())
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("place bid: %w", ErrAuctionNotFound)
	if !errors.Is(wrapped, ErrAuctionNotFound) {
		t.Fatal("errors.Is must match wrapped ErrAuctionNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidName, errors.New("too long"))
	if !errors.Is(wrapped2, ErrInvalidName) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidName")
	}
}
