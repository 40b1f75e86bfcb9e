package auction

import (
	"car-auction/internal/auctionerrors"
	"car-auction/internal/models"
	"car-auction/utils"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NewListing holds the seller-supplied fields of a listing
type NewListing struct {
	Title        string
	Description  string
	ReservePrice decimal.Decimal
	EndTime      time.Time
	Category     string
}

// CreateListing validates and registers a listing owned by the session's user
func (s *AuctionService) CreateListing(session models.Session, in NewListing) (models.Listing, error) {
	seller, err := s.requester(session)
	if err != nil {
		return models.Listing{}, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Listing{}, fmt.Errorf("service: %w - empty title", auctionerrors.ErrInvalidInput)
	}
	if in.ReservePrice.IsNegative() {
		return models.Listing{}, fmt.Errorf("service: %w - negative reserve price", auctionerrors.ErrInvalidInput)
	}

	now := s.now()
	if !in.EndTime.After(now) {
		return models.Listing{}, fmt.Errorf("service: %w - end time %s", auctionerrors.ErrPastEndTime, utils.FormatEndTime(in.EndTime))
	}

	listing := models.Listing{
		ID:           utils.GenerateID(),
		Title:        title,
		Description:  in.Description,
		ReservePrice: in.ReservePrice,
		EndTime:      in.EndTime,
		Seller:       seller,
		Category:     strings.TrimSpace(in.Category),
		CreatedAt:    now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.AddListing(listing); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to add listing %q for %s: %w", title, seller, err)
	}

	utils.Info("listing created", map[string]any{
		"listing_id": listing.ID,
		"title":      listing.Title,
		"seller":     seller,
		"category":   listing.Category,
		"end_time":   utils.FormatEndTime(listing.EndTime),
	})
	return listing, nil
}

// FindListing returns the first listing whose title matches exactly
func (s *AuctionService) FindListing(title string) (models.Listing, error) {
	listing, err := s.repo.FindListingByTitle(title)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to find listing %q: %w", title, err)
	}
	return listing, nil
}

// GetListing returns a listing by id
func (s *AuctionService) GetListing(listingID string) (models.Listing, error) {
	if listingID == "" {
		return models.Listing{}, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidInput)
	}

	listing, err := s.repo.GetListing(listingID)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	return listing, nil
}

// ListActive returns the listings whose end time is still in the future
func (s *AuctionService) ListActive() []models.Listing {
	now := s.now()

	active := make([]models.Listing, 0)
	for _, l := range s.repo.ListListings() {
		if l.EndTime.After(now) {
			active = append(active, l)
		}
	}
	return active
}

// Search matches keyword case-insensitively against titles and descriptions
func (s *AuctionService) Search(keyword string) []models.Listing {
	needle := strings.ToLower(keyword)

	found := make([]models.Listing, 0)
	for _, l := range s.repo.ListListings() {
		if strings.Contains(strings.ToLower(l.Title), needle) || strings.Contains(strings.ToLower(l.Description), needle) {
			found = append(found, l)
		}
	}
	return found
}

// ListingsBySeller returns the listings owned by the session's user
func (s *AuctionService) ListingsBySeller(session models.Session) ([]models.Listing, error) {
	seller, err := s.requester(session)
	if err != nil {
		return nil, err
	}

	listings, err := s.repo.GetListingsBySeller(seller)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get listings for %s: %w", seller, err)
	}
	return listings, nil
}

// CancelListing removes a listing that has not received any bid
func (s *AuctionService) CancelListing(session models.Session, listingID string) error {
	requester, err := s.requester(session)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	listing, err := s.ownedListing(listingID, requester)
	if err != nil {
		return err
	}
	if listing.HasBids() {
		return fmt.Errorf("service: cancel listing %s: %w", listingID, auctionerrors.ErrHasBids)
	}
	if state := listing.StateAt(s.now()); state != models.StateOpen {
		return fmt.Errorf("service: cancel listing %s: %w - listing is %s", listingID, auctionerrors.ErrAuctionEnded, state)
	}

	if err := s.repo.RemoveListing(listingID); err != nil {
		return fmt.Errorf("service: failed to remove listing %s: %w", listingID, err)
	}

	utils.Info("listing cancelled", map[string]any{"listing_id": listingID, "seller": requester})
	return nil
}

// ExtendListing pushes the end time of a listing forward by extra
func (s *AuctionService) ExtendListing(session models.Session, listingID string, extra time.Duration) error {
	requester, err := s.requester(session)
	if err != nil {
		return err
	}
	if extra <= 0 {
		return fmt.Errorf("service: %w - extension must be positive", auctionerrors.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	listing, err := s.ownedListing(listingID, requester)
	if err != nil {
		return err
	}

	switch state := listing.StateAt(s.now()); {
	case state.Terminal():
		return fmt.Errorf("service: extend listing %s: %w - already closed", listingID, auctionerrors.ErrAuctionEnded)
	case state == models.StateEndedUnresolved && s.policy == ExtendOpenOnly:
		return fmt.Errorf("service: extend listing %s: %w - end time passed", listingID, auctionerrors.ErrAuctionEnded)
	}

	listing.EndTime = listing.EndTime.Add(extra)
	if err := s.repo.UpdateListing(listing); err != nil {
		return fmt.Errorf("service: failed to extend listing %s: %w", listingID, err)
	}

	utils.Info("listing extended", map[string]any{
		"listing_id": listingID,
		"extra":      extra.String(),
		"end_time":   utils.FormatEndTime(listing.EndTime),
	})
	return nil
}

// SetBuyNowPrice records the price at which the seller offers to sell outright
func (s *AuctionService) SetBuyNowPrice(session models.Session, listingID string, price decimal.Decimal) error {
	requester, err := s.requester(session)
	if err != nil {
		return err
	}
	if !price.IsPositive() {
		return fmt.Errorf("service: %w - buy-now price must be positive", auctionerrors.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	listing, err := s.ownedListing(listingID, requester)
	if err != nil {
		return err
	}

	listing.BuyNowPrice = &price
	if err := s.repo.UpdateListing(listing); err != nil {
		return fmt.Errorf("service: failed to set buy-now price on %s: %w", listingID, err)
	}

	utils.Info("buy-now price set", map[string]any{"listing_id": listingID, "price": price.String()})
	return nil
}

// ownedListing loads a listing and checks that requester is its seller
func (s *AuctionService) ownedListing(listingID, requester string) (models.Listing, error) {
	listing, err := s.repo.GetListing(listingID)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}
	if listing.Seller != requester {
		return models.Listing{}, fmt.Errorf("service: listing %s: %w", listingID, auctionerrors.ErrNotOwner)
	}
	return listing, nil
}
