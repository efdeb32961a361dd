package handlers

import (
	"net/http"

	"github.com/ghuser/auctionhouse/pkg/errhttp"
	"github.com/ghuser/auctionhouse/pkg/httpx"
	appsvcs "github.com/ghuser/auctionhouse/services/auction/application/services"
)

// ListHousesHandler handles GET /house requests.
type ListHousesHandler struct {
	svc *appsvcs.Services
}

// NewListHousesHandler returns a ListHousesHandler backed by the given services.
func NewListHousesHandler(svc *appsvcs.Services) *ListHousesHandler {
	return &ListHousesHandler{svc: svc}
}

// Execute lists every auction house.
//
//	@Summary		List houses
//	@Description	Returns all auction houses ordered by name
//	@Tags			houses
//	@Produce		json
//	@Success		200	{array}		HouseResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/house [get]
func (h *ListHousesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	houses, err := h.svc.House.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]HouseResponse, len(houses))
	for i, house := range houses {
		out[i] = toHouseResponse(house)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// CreateHouseHandler handles POST /house/{houseName} requests.
type CreateHouseHandler struct {
	svc *appsvcs.Services
}

// NewCreateHouseHandler returns a CreateHouseHandler backed by the given services.
func NewCreateHouseHandler(svc *appsvcs.Services) *CreateHouseHandler {
	return &CreateHouseHandler{svc: svc}
}

// Execute creates an empty auction house.
//
//	@Summary		Create house
//	@Tags			houses
//	@Produce		json
//	@Param			houseName	path		string	true	"House name"
//	@Success		201			{object}	MessageResponse
//	@Failure		409			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/house/{houseName} [post]
func (h *CreateHouseHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if _, err := h.svc.House.Create(r.Context(), pathParam(r, "houseName")); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, MessageResponse{Message: "house created"})
}

// DeleteHouseHandler handles DELETE /house/{houseName} requests.
type DeleteHouseHandler struct {
	svc *appsvcs.Services
}

// NewDeleteHouseHandler returns a DeleteHouseHandler backed by the given services.
func NewDeleteHouseHandler(svc *appsvcs.Services) *DeleteHouseHandler {
	return &DeleteHouseHandler{svc: svc}
}

// Execute deletes a house and all of its auctions.
//
//	@Summary		Delete house
//	@Tags			houses
//	@Produce		json
//	@Param			houseName	path		string	true	"House name"
//	@Success		200			{object}	MessageResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/house/{houseName} [delete]
func (h *DeleteHouseHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.House.Delete(r.Context(), pathParam(r, "houseName")); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, MessageResponse{Message: "house deleted"})
}
