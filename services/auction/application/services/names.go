package services

import (
	"fmt"

	auctiondomain "github.com/ghuser/auctionhouse/services/auction/domain"
	"github.com/ghuser/auctionhouse/services/auction/domain/models"
	domainsvcs "github.com/ghuser/auctionhouse/services/auction/domain/services"
)

// parseName builds a Name and applies the domain naming rules. kind is used
// in the error message only.
func parseName(kind, s string) (models.Name, error) {
	name, err := models.NewName(s)
	if err != nil {
		return "", fmt.Errorf("%w: %s %w", auctiondomain.ErrInvalidName, kind, err)
	}
	if err := domainsvcs.ValidateName(name); err != nil {
		return "", fmt.Errorf("%w: %s %w", auctiondomain.ErrInvalidName, kind, err)
	}
	return name, nil
}
