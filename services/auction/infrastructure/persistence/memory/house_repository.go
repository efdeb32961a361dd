package memory

import (
	"context"

	"github.com/zhangyunhao116/skipmap"

	auctiondomain "github.com/ghuser/auctionhouse/services/auction/domain"
	"github.com/ghuser/auctionhouse/services/auction/domain/models"
)

// HouseRepository implements repositories.HouseRepository on an ordered
// concurrent skip list. It is the single authority for house state; nothing
// is persisted.
type HouseRepository struct {
	houses *skipmap.StringMap[*models.House]
}

// NewHouseRepository returns an empty registry.
func NewHouseRepository() *HouseRepository {
	return &HouseRepository{houses: skipmap.NewString[*models.House]()}
}

// Save registers house if the name is free. Returns ErrHouseAlreadyExists otherwise.
func (r *HouseRepository) Save(_ context.Context, house *models.House) error {
	if _, loaded := r.houses.LoadOrStore(house.Name().String(), house); loaded {
		return auctiondomain.ErrHouseAlreadyExists
	}
	return nil
}

// GetByName returns ErrHouseNotFound if no house has that name.
func (r *HouseRepository) GetByName(_ context.Context, name string) (*models.House, error) {
	house, ok := r.houses.Load(name)
	if !ok {
		return nil, auctiondomain.ErrHouseNotFound
	}
	return house, nil
}

// List returns every house in name order.
func (r *HouseRepository) List(_ context.Context) ([]*models.House, error) {
	out := make([]*models.House, 0, r.houses.Len())
	r.houses.Range(func(_ string, h *models.House) bool {
		out = append(out, h)
		return true
	})
	return out, nil
}

// Delete removes the house and everything registered in it.
func (r *HouseRepository) Delete(_ context.Context, name string) error {
	if _, ok := r.houses.LoadAndDelete(name); !ok {
		return auctiondomain.ErrHouseNotFound
	}
	return nil
}

func (r *HouseRepository) Count(_ context.Context) int {
	return r.houses.Len()
}
