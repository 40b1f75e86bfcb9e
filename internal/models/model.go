package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a registered participant in the auction
type User struct {
	Username     string    `json:"username"`
	PasswordHash []byte    `json:"-"`
	ListingIDs   []string  `json:"listing_ids"`
	BidIDs       []string  `json:"bid_ids"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is the explicit proof of login passed into every authorized operation
type Session struct {
	ID        string    `json:"-"`
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Listing represents a car posted for auction
type Listing struct {
	ID           string           `json:"listing_id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	ReservePrice decimal.Decimal  `json:"reserve_price"`
	EndTime      time.Time        `json:"end_time"`
	Seller       string           `json:"seller"`
	BidIDs       []string         `json:"bid_ids"`
	HighestBidID string           `json:"highest_bid_id,omitempty"`
	Winner       string           `json:"winner,omitempty"`
	Closed       bool             `json:"closed"`
	ClosedAt     time.Time        `json:"closed_at"`
	Category     string           `json:"category,omitempty"`
	BuyNowPrice  *decimal.Decimal `json:"buy_now_price,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

// HasBids reports whether any bid was accepted for the listing
func (l Listing) HasBids() bool {
	return len(l.BidIDs) > 0
}

// StateAt derives the lifecycle state of the listing at the given instant
func (l Listing) StateAt(now time.Time) ListingState {
	switch {
	case l.Closed && l.Winner != "":
		return StateClosedSold
	case l.Closed:
		return StateClosedUnsold
	case now.Before(l.EndTime):
		return StateOpen
	default:
		return StateEndedUnresolved
	}
}

// Bid represents a user's bid on a listing
type Bid struct {
	BidID     string          `json:"bid_id"`
	ListingID string          `json:"listing_id"`
	Bidder    string          `json:"bidder"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// Review is left by the winner of a listing about its seller
type Review struct {
	ReviewID  string    `json:"review_id"`
	ListingID string    `json:"listing_id"`
	Author    string    `json:"author"`
	Seller    string    `json:"seller"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ClosureOutcome reports how a listing was resolved by the closing sweep
type ClosureOutcome struct {
	ListingID string          `json:"listing_id"`
	Title     string          `json:"title"`
	Sold      bool            `json:"sold"`
	Winner    string          `json:"winner,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
}

// Sale is a single sold listing in a SalesReport
type Sale struct {
	ListingID string          `json:"listing_id"`
	Title     string          `json:"title"`
	Winner    string          `json:"winner"`
	Amount    decimal.Decimal `json:"amount"`
}

// SalesReport aggregates every sold listing
type SalesReport struct {
	Sales []Sale          `json:"sales"`
	Total decimal.Decimal `json:"total"`
}
