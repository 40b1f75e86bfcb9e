package repository

import (
	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"
	"fmt"
	"slices"
	"sync"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// IdentityDB defines the user and session storage interface
type IdentityDB interface {
	CreateUser(user model.User) error
	GetUser(username string) (model.User, error)
	BlockUser(username string) error
	IsBlocked(username string) bool
	SaveSession(session model.Session) error
	GetSession(sessionID string) (model.Session, error)
	DeleteSession(sessionID string) error
}

// AuctionDB defines the listing registry and bid ledger storage interface
type AuctionDB interface {
	AddListing(listing model.Listing) error
	GetListing(listingID string) (model.Listing, error)
	FindListingByTitle(title string) (model.Listing, error)
	ListListings() []model.Listing
	UpdateListing(listing model.Listing) error
	RemoveListing(listingID string) error
	GetListingsBySeller(seller string) ([]model.Listing, error)

	RecordBidForListing(bid model.Bid) error
	GetBidsByListing(listingID string) ([]model.Bid, error)
	GetWinningBid(listingID string) (model.Bid, error)
	GetBidsByUser(username string) ([]model.Bid, error)

	AddReview(review model.Review) error
	GetReviewsBySeller(seller string) []model.Review
}

// MemoryRepo is a concurrency-safe in-memory implementation of IdentityDB and AuctionDB
type MemoryRepo struct {
	mu           sync.RWMutex
	users        map[string]model.User     // key: username -> value: user
	blocked      map[string]struct{}       // tombstoned usernames
	sessions     map[string]model.Session  // key: sessionID -> value: session
	listings     map[string]model.Listing  // key: listingID -> value: listing
	listingOrder []string                  // listingIDs in insertion order
	bids         map[string]model.Bid      // key: bidID -> value: bid
	reviews      map[string][]model.Review // key: seller -> value: reviews about them
}

var (
	_ IdentityDB = (*MemoryRepo)(nil)
	_ AuctionDB  = (*MemoryRepo)(nil)
)

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:    make(map[string]model.User),
		blocked:  make(map[string]struct{}),
		sessions: make(map[string]model.Session),
		listings: make(map[string]model.Listing),
		bids:     make(map[string]model.Bid),
		reviews:  make(map[string][]model.Review),
	}
}

// CreateUser stores a new user; usernames are unique
func (r *MemoryRepo) CreateUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blocked[user.Username]; ok {
		return fmt.Errorf("create user %s: %w", user.Username, auctionerrors.ErrUserBlocked)
	}
	if _, ok := r.users[user.Username]; ok {
		return fmt.Errorf("create user %s: %w", user.Username, auctionerrors.ErrAlreadyExists)
	}
	r.users[user.Username] = cloneUser(user)
	return nil
}

// GetUser returns the user registered under username
func (r *MemoryRepo) GetUser(username string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", username, auctionerrors.ErrNotFound)
	}
	return cloneUser(user), nil
}

// BlockUser removes the user record, revokes its sessions and tombstones the username.
// Listings and bids keep referring to the username.
func (r *MemoryRepo) BlockUser(username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; !ok {
		return fmt.Errorf("block user %s: %w", username, auctionerrors.ErrNotFound)
	}
	delete(r.users, username)
	r.blocked[username] = struct{}{}

	for id, s := range r.sessions {
		if s.Username == username {
			delete(r.sessions, id)
		}
	}
	return nil
}

// IsBlocked reports whether username was blocked
func (r *MemoryRepo) IsBlocked(username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.blocked[username]
	return ok
}

// SaveSession records a live session for an existing user
func (r *MemoryRepo) SaveSession(session model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[session.Username]; !ok {
		return fmt.Errorf("save session for %s: %w", session.Username, auctionerrors.ErrNotFound)
	}
	r.sessions[session.ID] = session
	return nil
}

// GetSession returns a live session by id
func (r *MemoryRepo) GetSession(sessionID string) (model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return model.Session{}, fmt.Errorf("get session %s: %w", sessionID, auctionerrors.ErrNotFound)
	}
	return s, nil
}

// DeleteSession revokes a session
func (r *MemoryRepo) DeleteSession(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return fmt.Errorf("delete session %s: %w", sessionID, auctionerrors.ErrNotFound)
	}
	delete(r.sessions, sessionID)
	return nil
}

// AddListing stores a listing and links it to its seller
func (r *MemoryRepo) AddListing(listing model.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seller, ok := r.users[listing.Seller]
	if !ok {
		return fmt.Errorf("add listing %s: seller %s: %w", listing.ID, listing.Seller, auctionerrors.ErrNotFound)
	}
	if _, exists := r.listings[listing.ID]; exists {
		return fmt.Errorf("add listing %s: %w", listing.ID, auctionerrors.ErrAlreadyExists)
	}

	r.listings[listing.ID] = cloneListing(listing)
	r.listingOrder = append(r.listingOrder, listing.ID)

	seller.ListingIDs = append(seller.ListingIDs, listing.ID)
	r.users[seller.Username] = seller
	return nil
}

// GetListing returns a listing by id
func (r *MemoryRepo) GetListing(listingID string) (model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listing, ok := r.listings[listingID]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, auctionerrors.ErrNotFound)
	}
	return cloneListing(listing), nil
}

// FindListingByTitle returns the first listing, in insertion order, whose title matches exactly
func (r *MemoryRepo) FindListingByTitle(title string) (model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.listingOrder {
		if l := r.listings[id]; l.Title == title {
			return cloneListing(l), nil
		}
	}
	return model.Listing{}, fmt.Errorf("find listing %q: %w", title, auctionerrors.ErrNotFound)
}

// ListListings returns every listing in insertion order
func (r *MemoryRepo) ListListings() []model.Listing {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Listing, 0, len(r.listingOrder))
	for _, id := range r.listingOrder {
		out = append(out, cloneListing(r.listings[id]))
	}
	return out
}

// UpdateListing replaces the stored listing with the same id
func (r *MemoryRepo) UpdateListing(listing model.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[listing.ID]; !ok {
		return fmt.Errorf("update listing %s: %w", listing.ID, auctionerrors.ErrNotFound)
	}
	r.listings[listing.ID] = cloneListing(listing)
	return nil
}

// RemoveListing deletes a listing from the registry and from its seller's listings
func (r *MemoryRepo) RemoveListing(listingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[listingID]
	if !ok {
		return fmt.Errorf("remove listing %s: %w", listingID, auctionerrors.ErrNotFound)
	}
	delete(r.listings, listingID)
	r.listingOrder = slices.DeleteFunc(r.listingOrder, func(id string) bool { return id == listingID })

	if seller, exists := r.users[listing.Seller]; exists {
		seller.ListingIDs = slices.DeleteFunc(seller.ListingIDs, func(id string) bool { return id == listingID })
		r.users[seller.Username] = seller
	}
	return nil
}

// GetListingsBySeller returns the listings currently owned by seller
func (r *MemoryRepo) GetListingsBySeller(seller string) ([]model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[seller]
	if !ok {
		return nil, fmt.Errorf("get listings for seller %s: %w", seller, auctionerrors.ErrNotFound)
	}

	out := make([]model.Listing, 0, len(user.ListingIDs))
	for _, id := range user.ListingIDs {
		if l, exists := r.listings[id]; exists {
			out = append(out, cloneListing(l))
		}
	}
	return out, nil
}

// RecordBidForListing appends a bid to the listing's ledger and the bidder's history.
// The highest bid pointer moves only when the new amount exceeds the current highest.
func (r *MemoryRepo) RecordBidForListing(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[bid.ListingID]
	if !ok {
		return fmt.Errorf("record bid for listing %s: %w", bid.ListingID, auctionerrors.ErrNotFound)
	}
	bidder, ok := r.users[bid.Bidder]
	if !ok {
		return fmt.Errorf("record bid for listing %s: bidder %s: %w", bid.ListingID, bid.Bidder, auctionerrors.ErrNotFound)
	}
	if _, exists := r.bids[bid.BidID]; exists {
		return fmt.Errorf("record bid %s: %w", bid.BidID, auctionerrors.ErrAlreadyExists)
	}

	r.bids[bid.BidID] = bid

	highest, hasHighest := r.bids[listing.HighestBidID]
	if !hasHighest || bid.Amount.GreaterThan(highest.Amount) {
		listing.HighestBidID = bid.BidID
	}
	listing.BidIDs = append(slices.Clone(listing.BidIDs), bid.BidID)
	r.listings[listing.ID] = listing

	bidder.BidIDs = append(bidder.BidIDs, bid.BidID)
	r.users[bidder.Username] = bidder
	return nil
}

// GetBidsByListing returns all bids for a listing in acceptance order
func (r *MemoryRepo) GetBidsByListing(listingID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listing, ok := r.listings[listingID]
	if !ok {
		return nil, fmt.Errorf("get bids for listing %s: %w", listingID, auctionerrors.ErrNotFound)
	}
	if len(listing.BidIDs) == 0 {
		return nil, fmt.Errorf("get bids for listing %s: %w", listingID, auctionerrors.ErrNoBids)
	}
	return r.lookupBids(listing.BidIDs), nil
}

// GetWinningBid returns the highest bid for a listing
func (r *MemoryRepo) GetWinningBid(listingID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listing, ok := r.listings[listingID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get winning bid for listing %s: %w", listingID, auctionerrors.ErrNotFound)
	}
	bid, ok := r.bids[listing.HighestBidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get winning bid for listing %s: %w", listingID, auctionerrors.ErrNoBids)
	}
	return bid, nil
}

// GetBidsByUser returns every bid the user placed, oldest first
func (r *MemoryRepo) GetBidsByUser(username string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, fmt.Errorf("get bids for user %s: %w", username, auctionerrors.ErrNotFound)
	}
	if len(user.BidIDs) == 0 {
		return nil, fmt.Errorf("get bids for user %s: %w", username, auctionerrors.ErrNoBids)
	}
	return r.lookupBids(user.BidIDs), nil
}

// AddReview stores a review about a seller
func (r *MemoryRepo) AddReview(review model.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[review.ListingID]; !ok {
		return fmt.Errorf("add review for listing %s: %w", review.ListingID, auctionerrors.ErrNotFound)
	}
	r.reviews[review.Seller] = append(r.reviews[review.Seller], review)
	return nil
}

// GetReviewsBySeller returns the reviews left about seller
func (r *MemoryRepo) GetReviewsBySeller(seller string) []model.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.Review(nil), r.reviews[seller]...)
}

// lookupBids resolves bid ids; callers must hold the lock
func (r *MemoryRepo) lookupBids(ids []string) []model.Bid {
	out := make([]model.Bid, 0, len(ids))
	for _, id := range ids {
		if b, ok := r.bids[id]; ok {
			out = append(out, b)
		}
	}
	return out
}

func cloneUser(u model.User) model.User {
	u.ListingIDs = slices.Clone(u.ListingIDs)
	u.BidIDs = slices.Clone(u.BidIDs)
	u.PasswordHash = slices.Clone(u.PasswordHash)
	return u
}

func cloneListing(l model.Listing) model.Listing {
	l.BidIDs = slices.Clone(l.BidIDs)
	if l.BuyNowPrice != nil {
		p := *l.BuyNowPrice
		l.BuyNowPrice = &p
	}
	return l
}
