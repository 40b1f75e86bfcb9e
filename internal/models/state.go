package models

// ListingState is the position of a listing in the auction lifecycle
type ListingState string

const (
	StateOpen            ListingState = "open"
	StateEndedUnresolved ListingState = "ended_unresolved"
	StateClosedSold      ListingState = "closed_sold"
	StateClosedUnsold    ListingState = "closed_unsold"
)

// Terminal reports whether no further transition is possible
func (s ListingState) Terminal() bool {
	return s == StateClosedSold || s == StateClosedUnsold
}

// AcceptsBids reports whether bids may be placed in this state
func (s ListingState) AcceptsBids() bool {
	return s == StateOpen
}
