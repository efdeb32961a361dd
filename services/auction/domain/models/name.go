package models

import "fmt"

// Name is a value object for house, auction and bidder identifiers.
// Encapsulates validation rules: 1 <= len(name) <= 255.
type Name string

const (
	minNameLength = 1
	maxNameLength = 255
)

// NewName constructs a valid Name or returns an error if constraints are violated.
func NewName(s string) (Name, error) {
	if len(s) < minNameLength {
		return "", fmt.Errorf("name must be at least %d character", minNameLength)
	}
	if len(s) > maxNameLength {
		return "", fmt.Errorf("name must not exceed %d characters", maxNameLength)
	}
	return Name(s), nil
}

// String returns the underlying string value.
func (n Name) String() string {
	return string(n)
}
