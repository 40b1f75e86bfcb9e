package auctionerrors

import "errors"

// Identity errors
var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrUserBlocked        = errors.New("user blocked")
)

// Repository-level errors
var (
	ErrNotFound = errors.New("not found")
	ErrNoBids   = errors.New("no bids found for listing")
)

// business logic errors
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrPastEndTime       = errors.New("end time must be in the future")
	ErrNotOwner          = errors.New("not the listing owner")
	ErrHasBids           = errors.New("listing already has bids")
	ErrAuctionEnded      = errors.New("auction has ended")
	ErrBelowReserve      = errors.New("bid below reserve price")
	ErrBelowHighest      = errors.New("bid not above current highest bid")
	ErrNotWinner         = errors.New("not the auction winner")
	ErrNotEligible       = errors.New("not eligible")
)
