package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/auctionhouse/services/auction/application/handlers"
	appsvcs "github.com/ghuser/auctionhouse/services/auction/application/services"
)

// AuctionRoutes registers house, auction and bid endpoints on the provided chi router.
func AuctionRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/house", func(r chi.Router) {
		r.Get("/", handlers.NewListHousesHandler(svcs).Execute)
		r.Route("/{houseName}", func(r chi.Router) {
			r.Post("/", handlers.NewCreateHouseHandler(svcs).Execute)
			r.Delete("/", handlers.NewDeleteHouseHandler(svcs).Execute)
			r.Get("/auction", handlers.NewListAuctionsHandler(svcs).Execute)
			r.Route("/auction/{auctionName}", func(r chi.Router) {
				r.Post("/", handlers.NewCreateAuctionHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteAuctionHandler(svcs).Execute)
				r.Get("/winner", handlers.NewWinnerHandler(svcs).Execute)
				r.Get("/bid", handlers.NewListBidsHandler(svcs).Execute)
				r.Post("/bid/{username}", handlers.NewPlaceBidHandler(svcs).Execute)
			})
		})
	})
}
