package domain

import "errors"

// Sentinel errors for the auction domain. Use errors.Is() to check these.
var (
	// ErrHouseNotFound indicates the referenced auction house does not exist.
	ErrHouseNotFound = errors.New("house does not exist")

	// ErrAuctionNotFound indicates the referenced auction does not exist in the house.
	ErrAuctionNotFound = errors.New("auction does not exist")

	// ErrHouseAlreadyExists indicates a house with the same name is already registered.
	ErrHouseAlreadyExists = errors.New("house already exists")

	// ErrAuctionAlreadyExists indicates the house already holds an auction with that name.
	ErrAuctionAlreadyExists = errors.New("auction already exists")

	// ErrBidRejected indicates the auction is not running or the amount does not
	// beat the current price. No state was changed.
	ErrBidRejected = errors.New("bid not accepted")

	// ErrAuctionNotTerminated indicates a winner was requested before the auction ended.
	ErrAuctionNotTerminated = errors.New("auction not terminated")

	// ErrInvalidName indicates a house, auction or bidder name violates domain constraints.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidAuction indicates auction attributes other than the name are
	// unacceptable, such as a negative start price.
	ErrInvalidAuction = errors.New("invalid auction")
)
