package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/auctionhouse/pkg/errhttp"
	"github.com/ghuser/auctionhouse/pkg/httpx"
	pkgvalidator "github.com/ghuser/auctionhouse/pkg/validator"
	appsvcs "github.com/ghuser/auctionhouse/services/auction/application/services"
)

// CreateAuctionRequest is assembled from the path and query of
// POST /house/{houseName}/auction/{auctionName}.
type CreateAuctionRequest struct {
	House       string `json:"houseName"   validate:"required"`
	Name        string `json:"auctionName" validate:"required"`
	Description string `json:"dsc"`
	EndTime     int64  `json:"endTime"`
	StartPrice  int64  `json:"startPrice"  validate:"gte=0"`
}

// ListAuctionsHandler handles GET /house/{houseName}/auction requests.
type ListAuctionsHandler struct {
	svc *appsvcs.Services
}

// NewListAuctionsHandler returns a ListAuctionsHandler backed by the given services.
func NewListAuctionsHandler(svc *appsvcs.Services) *ListAuctionsHandler {
	return &ListAuctionsHandler{svc: svc}
}

// Execute lists the auctions of a house.
//
//	@Summary		List auctions
//	@Description	Returns the house's auctions ordered by name. An unknown status returns every auction.
//	@Tags			auctions
//	@Produce		json
//	@Param			houseName	path		string	true	"House name"
//	@Param			status		query		string	false	"Lifecycle filter"	Enums(NOT_STARTED, RUNNING, TERMINATED, DELETED)
//	@Success		200			{array}		AuctionResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/house/{houseName}/auction [get]
func (h *ListAuctionsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	snaps, err := h.svc.Auction.List(r.Context(), pathParam(r, "houseName"), r.URL.Query().Get("status"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]AuctionResponse, len(snaps))
	for i, s := range snaps {
		out[i] = toAuctionResponse(s)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// CreateAuctionHandler handles POST /house/{houseName}/auction/{auctionName} requests.
type CreateAuctionHandler struct {
	svc *appsvcs.Services
}

// NewCreateAuctionHandler returns a CreateAuctionHandler backed by the given services.
func NewCreateAuctionHandler(svc *appsvcs.Services) *CreateAuctionHandler {
	return &CreateAuctionHandler{svc: svc}
}

// Execute creates an auction that starts now.
//
//	@Summary		Create auction
//	@Description	Creates an auction starting at the current instant. Missing numeric parameters default to 0.
//	@Tags			auctions
//	@Produce		json
//	@Param			houseName	path		string	true	"House name"
//	@Param			auctionName	path		string	true	"Auction name"
//	@Param			dsc			query		string	false	"Description"
//	@Param			endTime		query		int		false	"End time, epoch milliseconds"
//	@Param			startPrice	query		int		false	"Start price"
//	@Success		201			{object}	AuctionResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/house/{houseName}/auction/{auctionName} [post]
func (h *CreateAuctionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	endTime, err := httpx.QueryInt64(r, "endTime")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	startPrice, err := httpx.QueryInt64(r, "startPrice")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := CreateAuctionRequest{
		House:       pathParam(r, "houseName"),
		Name:        pathParam(r, "auctionName"),
		Description: r.URL.Query().Get("dsc"),
		EndTime:     endTime,
		StartPrice:  startPrice,
	}
	if _, err := h.svc.House.Get(r.Context(), req.House); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if !pkgvalidator.Check(w, &req) {
		return
	}

	snap, err := h.svc.Auction.Create(r.Context(), appsvcs.CreateAuctionParams{
		House:       req.House,
		Name:        req.Name,
		Description: req.Description,
		StartPrice:  req.StartPrice,
		EndTime:     time.UnixMilli(req.EndTime),
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toAuctionResponse(snap))
}

// DeleteAuctionHandler handles DELETE /house/{houseName}/auction/{auctionName} requests.
type DeleteAuctionHandler struct {
	svc *appsvcs.Services
}

// NewDeleteAuctionHandler returns a DeleteAuctionHandler backed by the given services.
func NewDeleteAuctionHandler(svc *appsvcs.Services) *DeleteAuctionHandler {
	return &DeleteAuctionHandler{svc: svc}
}

// Execute marks an auction DELETED. Its bid history is kept.
//
//	@Summary		Delete auction
//	@Tags			auctions
//	@Produce		json
//	@Param			houseName	path		string	true	"House name"
//	@Param			auctionName	path		string	true	"Auction name"
//	@Success		200			{object}	MessageResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/house/{houseName}/auction/{auctionName} [delete]
func (h *DeleteAuctionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Auction.Delete(r.Context(), pathParam(r, "houseName"), pathParam(r, "auctionName")); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "auction deleted"})
}

// WinnerHandler handles GET /house/{houseName}/auction/{auctionName}/winner requests.
type WinnerHandler struct {
	svc *appsvcs.Services
}

// NewWinnerHandler returns a WinnerHandler backed by the given services.
func NewWinnerHandler(svc *appsvcs.Services) *WinnerHandler {
	return &WinnerHandler{svc: svc}
}

// Execute reports the winner of a terminated auction.
//
//	@Summary		Auction winner
//	@Description	The winner is omitted when the auction closed without bids.
//	@Tags			auctions
//	@Produce		json
//	@Param			houseName	path		string	true	"House name"
//	@Param			auctionName	path		string	true	"Auction name"
//	@Success		200			{object}	WinnerResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/house/{houseName}/auction/{auctionName}/winner [get]
func (h *WinnerHandler) Execute(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Auction.Winner(r.Context(), pathParam(r, "houseName"), pathParam(r, "auctionName"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := WinnerResponse{Status: res.Status.String()}
	if res.HasWinner {
		resp.Winner = &res.Winner
	}
	httpx.JSON(w, http.StatusOK, resp)
}
