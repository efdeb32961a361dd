package handlers

import (
	"net/http"

	"github.com/ghuser/auctionhouse/pkg/errhttp"
	"github.com/ghuser/auctionhouse/pkg/httpx"
	pkgvalidator "github.com/ghuser/auctionhouse/pkg/validator"
	appsvcs "github.com/ghuser/auctionhouse/services/auction/application/services"
)

// PlaceBidRequest is assembled from the path and query of
// POST /house/{houseName}/auction/{auctionName}/bid/{username}.
type PlaceBidRequest struct {
	House    string `json:"houseName"   validate:"required"`
	Auction  string `json:"auctionName" validate:"required"`
	Username string `json:"username"    validate:"required"`
	Amount   int64  `json:"bid"         validate:"gt=0"`
}

// ListBidsHandler handles GET /house/{houseName}/auction/{auctionName}/bid requests.
type ListBidsHandler struct {
	svc *appsvcs.Services
}

// NewListBidsHandler returns a ListBidsHandler backed by the given services.
func NewListBidsHandler(svc *appsvcs.Services) *ListBidsHandler {
	return &ListBidsHandler{svc: svc}
}

// Execute lists an auction's accepted bids.
//
//	@Summary		List bids
//	@Description	Accepted bids in acceptance order, optionally restricted to one bidder
//	@Tags			bids
//	@Produce		json
//	@Param			houseName	path		string	true	"House name"
//	@Param			auctionName	path		string	true	"Auction name"
//	@Param			username	query		string	false	"Only this bidder's bids"
//	@Success		200			{array}		BidResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/house/{houseName}/auction/{auctionName}/bid [get]
func (h *ListBidsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	bids, err := h.svc.Bid.List(r.Context(),
		pathParam(r, "houseName"),
		pathParam(r, "auctionName"),
		r.URL.Query().Get("username"),
	)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toBidResponses(bids))
}

// PlaceBidHandler handles POST /house/{houseName}/auction/{auctionName}/bid/{username} requests.
type PlaceBidHandler struct {
	svc *appsvcs.Services
}

// NewPlaceBidHandler returns a PlaceBidHandler backed by the given services.
func NewPlaceBidHandler(svc *appsvcs.Services) *PlaceBidHandler {
	return &PlaceBidHandler{svc: svc}
}

// Execute submits a bid.
//
//	@Summary		Place bid
//	@Description	Accepted only while the auction is RUNNING and the amount beats the current price
//	@Tags			bids
//	@Produce		json
//	@Param			houseName	path		string	true	"House name"
//	@Param			auctionName	path		string	true	"Auction name"
//	@Param			username	path		string	true	"Bidder"
//	@Param			bid			query		int		true	"Amount"
//	@Success		201			{object}	BidResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/house/{houseName}/auction/{auctionName}/bid/{username} [post]
func (h *PlaceBidHandler) Execute(w http.ResponseWriter, r *http.Request) {
	amount, err := httpx.QueryInt64(r, "bid")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := PlaceBidRequest{
		House:    pathParam(r, "houseName"),
		Auction:  pathParam(r, "auctionName"),
		Username: pathParam(r, "username"),
		Amount:   amount,
	}
	if _, err := h.svc.Auction.Get(r.Context(), req.House, req.Auction); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if !pkgvalidator.Check(w, &req) {
		return
	}

	bid, err := h.svc.Bid.Place(r.Context(), req.House, req.Auction, req.Username, req.Amount)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toBidResponse(bid))
}
