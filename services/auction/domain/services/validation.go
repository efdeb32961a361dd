// Package services contains stateless domain services for the auction bounded
// context. They enforce business rules on domain types and have no
// dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ghuser/auctionhouse/services/auction/domain/models"
)

// ValidateName enforces business rules for house, auction and bidder names
// beyond the length limits enforced by models.NewName.
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - No path separators, since names are addressed as URL path segments
func ValidateName(name models.Name) error {
	s := name.String()

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("name must not have leading or trailing whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("name must not contain control characters")
		}
	}

	if strings.ContainsRune(s, '/') {
		return fmt.Errorf("name must not contain '/'")
	}

	return nil
}

// ValidateAuctionForCreation checks a constructed auction before it is
// registered in a house.
func ValidateAuctionForCreation(a *models.Auction) error {
	if a == nil {
		return fmt.Errorf("auction cannot be nil")
	}

	if err := ValidateName(a.Name()); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if a.StartPrice() < 0 {
		return fmt.Errorf("start price must not be negative")
	}

	return nil
}
