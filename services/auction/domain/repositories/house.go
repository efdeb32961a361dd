package repositories

import (
	"context"

	"github.com/ghuser/auctionhouse/services/auction/domain/models"
)

// HouseRepository is the registry of auction houses.
// The domain layer owns this interface; infrastructure implements it.
type HouseRepository interface {
	// Save registers house if no house with the same name exists.
	// Returns ErrHouseAlreadyExists otherwise; the existing house is untouched.
	Save(ctx context.Context, house *models.House) error

	// GetByName returns ErrHouseNotFound when no house has that name.
	GetByName(ctx context.Context, name string) (*models.House, error)

	// List returns every house ordered by name.
	List(ctx context.Context) ([]*models.House, error)

	// Delete removes a house and all its auctions from the registry.
	Delete(ctx context.Context, name string) error

	// Count reports the number of registered houses.
	Count(ctx context.Context) int
}
