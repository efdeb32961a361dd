package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	auctiondomain "github.com/ghuser/auctionhouse/services/auction/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrHouseNotFound", auctiondomain.ErrHouseNotFound, http.StatusNotFound},
		{"ErrAuctionNotFound", auctiondomain.ErrAuctionNotFound, http.StatusNotFound},
		{"ErrHouseAlreadyExists", auctiondomain.ErrHouseAlreadyExists, http.StatusConflict},
		{"ErrAuctionAlreadyExists", auctiondomain.ErrAuctionAlreadyExists, http.StatusConflict},
		{"ErrAuctionNotTerminated", auctiondomain.ErrAuctionNotTerminated, http.StatusConflict},
		{"ErrBidRejected", auctiondomain.ErrBidRejected, http.StatusUnprocessableEntity},
		{"ErrInvalidName", auctiondomain.ErrInvalidName, http.StatusUnprocessableEntity},
		{"ErrInvalidAuction", auctiondomain.ErrInvalidAuction, http.StatusUnprocessableEntity},
		{"wrapped ErrAuctionNotFound", fmt.Errorf("place bid: %w", auctiondomain.ErrAuctionNotFound), http.StatusNotFound},
		{"wrapped ErrInvalidName", fmt.Errorf("%w: too long", auctiondomain.ErrInvalidName), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("clock skew")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, fmt.Errorf("get house: %w", auctiondomain.ErrHouseNotFound))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error"] != "get house: house does not exist" {
		t.Fatalf("unexpected error message: %q", body["error"])
	}
}

func TestWriteError_ProductionHidesInternal(t *testing.T) {
	SetProduction(true)
	defer SetProduction(false)

	w := httptest.NewRecorder()
	WriteError(w, errors.New("registry invariant broken"))

	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("internal detail leaked: %q", body["error"])
	}

	// Client errors keep their message.
	w = httptest.NewRecorder()
	WriteError(w, auctiondomain.ErrBidRejected)
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["error"] != auctiondomain.ErrBidRejected.Error() {
		t.Errorf("unexpected message: %q", body["error"])
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, auctiondomain.ErrHouseNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
