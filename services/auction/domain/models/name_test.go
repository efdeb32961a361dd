package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"single character", "a", false},
		{"typical", "h1", false},
		{"max length", strings.Repeat("x", maxNameLength), false},
		{"empty", "", true},
		{"too long", strings.Repeat("x", maxNameLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []Status{StatusNotStarted, StatusRunning, StatusTerminated, StatusDeleted} {
		got, ok := ParseStatus(s.String())
		assert.True(t, ok, s)
		assert.Equal(t, s, got)
	}

	for _, s := range []string{"", "running", "FINISHED", " RUNNING"} {
		_, ok := ParseStatus(s)
		assert.False(t, ok, s)
	}
}

func TestBidOutcome_String(t *testing.T) {
	assert.Equal(t, "accepted", BidAccepted.String())
	assert.Equal(t, "rejected", BidRejected.String())
	assert.Equal(t, "auction_not_found", BidAuctionNotFound.String())
	assert.Equal(t, "house_not_found", BidHouseNotFound.String())
	assert.Equal(t, "unknown", BidOutcome(42).String())
}
