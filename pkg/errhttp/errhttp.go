// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/ghuser/auctionhouse/pkg/httpx"
	auctiondomain "github.com/ghuser/auctionhouse/services/auction/domain"
)

var production atomic.Bool

// SetProduction switches 5xx responses to generic messages. Call once at startup.
func SetProduction(on bool) {
	production.Store(on)
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, production.Load()))
}

// StatusFor returns the HTTP status WriteError would use for err.
func StatusFor(err error) int {
	return mapErrorToStatus(err)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, auctiondomain.ErrHouseNotFound),
		errors.Is(err, auctiondomain.ErrAuctionNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, auctiondomain.ErrHouseAlreadyExists),
		errors.Is(err, auctiondomain.ErrAuctionAlreadyExists),
		errors.Is(err, auctiondomain.ErrAuctionNotTerminated):
		return http.StatusConflict // 409
	case errors.Is(err, auctiondomain.ErrBidRejected),
		errors.Is(err, auctiondomain.ErrInvalidName),
		errors.Is(err, auctiondomain.ErrInvalidAuction):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
