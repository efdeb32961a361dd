package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/auctionhouse/services/auction/domain/models"
)

// HouseResponse summarizes one auction house.
type HouseResponse struct {
	Name         string `json:"name"          example:"h1"`
	AuctionCount int    `json:"auction_count" example:"3"`
} // @name HouseResponse

// BidResponse is one accepted bid.
type BidResponse struct {
	ID       uuid.UUID `json:"id"        example:"123e4567-e89b-12d3-a456-426614174000"`
	Username string    `json:"username"  example:"u1"`
	Value    int64     `json:"value"     example:"1000"`
	PlacedAt int64     `json:"placed_at" example:"1735689600123"`
} // @name BidResponse

// AuctionResponse summarizes one auction. Times are epoch milliseconds.
// Winner is present only when the auction is TERMINATED with at least one bid.
type AuctionResponse struct {
	Name         string        `json:"name"          example:"a1"`
	Description  string        `json:"description"   example:"Art deco lamp"`
	StartTime    int64         `json:"start_time"    example:"1735689600000"`
	EndTime      int64         `json:"end_time"      example:"1735776000000"`
	StartPrice   int64         `json:"start_price"   example:"1"`
	CurrentPrice int64         `json:"current_price" example:"1000"`
	Status       string        `json:"status"        example:"RUNNING" enums:"NOT_STARTED,RUNNING,TERMINATED,DELETED"`
	Bids         []BidResponse `json:"bids"`
	Winner       *string       `json:"winner,omitempty" example:"u2"`
} // @name AuctionResponse

// WinnerResponse is returned by the winner endpoint.
type WinnerResponse struct {
	Status string  `json:"status"           example:"TERMINATED"`
	Winner *string `json:"winner,omitempty" example:"u2"`
} // @name WinnerResponse

// MessageResponse acknowledges a state change.
type MessageResponse struct {
	Message string `json:"message" example:"house created"`
} // @name MessageResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"house does not exist"`
} // @name ErrorResponse

func toHouseResponse(h *models.House) HouseResponse {
	return HouseResponse{Name: h.Name().String(), AuctionCount: h.AuctionCount()}
}

func toBidResponse(b models.Bid) BidResponse {
	return BidResponse{
		ID:       b.ID,
		Username: b.Bidder,
		Value:    b.Amount,
		PlacedAt: b.PlacedAt.UnixMilli(),
	}
}

func toBidResponses(bids []models.Bid) []BidResponse {
	out := make([]BidResponse, len(bids))
	for i, b := range bids {
		out[i] = toBidResponse(b)
	}
	return out
}

func toAuctionResponse(s models.AuctionSnapshot) AuctionResponse {
	resp := AuctionResponse{
		Name:         s.Name,
		Description:  s.Description,
		StartTime:    s.StartTime.UnixMilli(),
		EndTime:      s.EndTime.UnixMilli(),
		StartPrice:   s.StartPrice,
		CurrentPrice: s.CurrentPrice,
		Status:       s.Status.String(),
		Bids:         toBidResponses(s.Bids),
	}
	if s.HasWinner {
		winner := s.Winner
		resp.Winner = &winner
	}
	return resp
}

// pathParam returns the decoded chi URL parameter. chi matches against
// RawPath when the request carries one, so only those values are still escaped.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if dec, err := url.PathUnescape(v); err == nil {
		return dec
	}
	return v
}
