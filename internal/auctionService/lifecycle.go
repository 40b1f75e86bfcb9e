package auction

import (
	"car-auction/internal/auctionerrors"
	"car-auction/internal/models"
	"car-auction/utils"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PlaceBid validates and records a bid by the session's user on the listing with the given title
func (s *AuctionService) PlaceBid(session models.Session, title string, amount decimal.Decimal) (models.Bid, error) {
	bidder, err := s.requester(session)
	if err != nil {
		return models.Bid{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, err := s.repo.FindListingByTitle(title)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to find listing %q: %w", title, err)
	}

	now := s.now()
	previous, err := s.validateBid(listing, amount, now)
	if err != nil {
		return models.Bid{}, err
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		ListingID: listing.ID,
		Bidder:    bidder,
		Amount:    amount,
		CreatedAt: now,
	}
	if err := s.repo.RecordBidForListing(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for listing %s by %s: %w", listing.ID, bidder, err)
	}

	if previous != nil && previous.Bidder != bidder {
		s.notifier.Notify(previous.Bidder, fmt.Sprintf("You have been outbid on '%s': new highest bid is %s.", listing.Title, amount.String()))
	}

	utils.Info("bid placed", map[string]any{
		"bid_id":     bid.BidID,
		"listing_id": listing.ID,
		"bidder":     bidder,
		"amount":     amount.String(),
	})
	return bid, nil
}

// validateBid checks the lifecycle and price rules and returns the bid being outbid, if any
func (s *AuctionService) validateBid(listing models.Listing, amount decimal.Decimal, now time.Time) (*models.Bid, error) {
	if !listing.StateAt(now).AcceptsBids() {
		return nil, fmt.Errorf("service: %w - listing %q ended at %s", auctionerrors.ErrAuctionEnded, listing.Title, utils.FormatEndTime(listing.EndTime))
	}
	if amount.LessThan(listing.ReservePrice) {
		return nil, fmt.Errorf("service: %w - reserve price is %s", auctionerrors.ErrBelowReserve, listing.ReservePrice.String())
	}

	highest, err := s.repo.GetWinningBid(listing.ID)
	if err == nil {
		if amount.LessThanOrEqual(highest.Amount) {
			return nil, fmt.Errorf("service: %w - current highest bid is %s", auctionerrors.ErrBelowHighest, highest.Amount.String())
		}
		return &highest, nil
	}
	if !errors.Is(err, auctionerrors.ErrNoBids) {
		return nil, fmt.Errorf("service: failed to check winning bid: %w", err)
	}
	return nil, nil
}

// CloseExpired closes every listing whose end time has passed and reports how each was resolved.
// Listings closed by an earlier sweep are skipped, so repeated sweeps report nothing new.
func (s *AuctionService) CloseExpired() []models.ClosureOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	outcomes := make([]models.ClosureOutcome, 0)

	for _, listing := range s.repo.ListListings() {
		if listing.Closed {
			utils.Debug("close expired: listing already closed", map[string]any{"listing_id": listing.ID, "winner": listing.Winner})
			continue
		}
		if now.Before(listing.EndTime) {
			continue
		}

		outcome := models.ClosureOutcome{ListingID: listing.ID, Title: listing.Title}
		winning, err := s.repo.GetWinningBid(listing.ID)
		switch {
		case err == nil:
			listing.Winner = winning.Bidder
			outcome.Sold = true
			outcome.Winner = winning.Bidder
			outcome.Amount = winning.Amount
		case !errors.Is(err, auctionerrors.ErrNoBids):
			utils.Error("close expired: failed to resolve winning bid", map[string]any{
				"listing_id": listing.ID,
				"error":      err.Error(),
			})
			continue
		}

		listing.Closed = true
		listing.ClosedAt = now
		if err := s.repo.UpdateListing(listing); err != nil {
			utils.Error("close expired: failed to close listing", map[string]any{
				"listing_id": listing.ID,
				"error":      err.Error(),
			})
			continue
		}

		s.announceClosure(listing, outcome)
		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

func (s *AuctionService) announceClosure(listing models.Listing, outcome models.ClosureOutcome) {
	fields := map[string]any{"listing_id": listing.ID, "title": listing.Title, "sold": outcome.Sold}
	if !outcome.Sold {
		s.notifier.Notify(listing.Seller, fmt.Sprintf("Auction closed for '%s'. No bids were placed.", listing.Title))
		utils.Info("auction closed", fields)
		return
	}

	fields["winner"] = outcome.Winner
	fields["amount"] = outcome.Amount.String()
	s.notifier.Notify(outcome.Winner, fmt.Sprintf("You won '%s' with a bid of %s.", listing.Title, outcome.Amount.String()))
	s.notifier.Notify(listing.Seller, fmt.Sprintf("Auction closed for '%s'. Winner: %s with bid: %s.", listing.Title, outcome.Winner, outcome.Amount.String()))
	utils.Info("auction closed", fields)
}

// ProcessPayment simulates the winner paying for a listing and returns the amount due
func (s *AuctionService) ProcessPayment(session models.Session, title string) (decimal.Decimal, error) {
	payer, err := s.requester(session)
	if err != nil {
		return decimal.Zero, err
	}

	candidates := s.listingsTitled(title)
	if len(candidates) == 0 {
		return decimal.Zero, fmt.Errorf("service: payment for %q: %w", title, auctionerrors.ErrNotFound)
	}

	listing, ok := wonBy(candidates, payer)
	if !ok {
		return decimal.Zero, fmt.Errorf("service: payment for %q by %s: %w", title, payer, auctionerrors.ErrNotWinner)
	}

	winning, err := s.repo.GetWinningBid(listing.ID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("service: failed to get winning bid for %s: %w", listing.ID, err)
	}

	utils.Info("payment processed", map[string]any{
		"listing_id": listing.ID,
		"payer":      payer,
		"amount":     winning.Amount.String(),
	})
	return winning.Amount, nil
}

// LeaveReview stores a review by the winner of a listing about its seller
func (s *AuctionService) LeaveReview(session models.Session, title, text string) (models.Review, error) {
	author, err := s.requester(session)
	if err != nil {
		return models.Review{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Review{}, fmt.Errorf("service: %w - empty review", auctionerrors.ErrInvalidInput)
	}

	listing, ok := wonBy(s.listingsTitled(title), author)
	if !ok {
		return models.Review{}, fmt.Errorf("service: review for %q by %s: %w - only winners may review", title, author, auctionerrors.ErrNotEligible)
	}

	review := models.Review{
		ReviewID:  utils.GenerateID(),
		ListingID: listing.ID,
		Author:    author,
		Seller:    listing.Seller,
		Text:      text,
		CreatedAt: s.now(),
	}
	if err := s.repo.AddReview(review); err != nil {
		return models.Review{}, fmt.Errorf("service: failed to store review for %s: %w", listing.ID, err)
	}

	s.notifier.Notify(listing.Seller, fmt.Sprintf("%s reviewed your sale of '%s': %s", author, listing.Title, text))
	return review, nil
}

// listingsTitled returns every listing with exactly this title, in insertion order
func (s *AuctionService) listingsTitled(title string) []models.Listing {
	var out []models.Listing
	for _, l := range s.repo.ListListings() {
		if l.Title == title {
			out = append(out, l)
		}
	}
	return out
}

func wonBy(listings []models.Listing, username string) (models.Listing, bool) {
	for _, l := range listings {
		if l.Closed && l.Winner == username {
			return l, true
		}
	}
	return models.Listing{}, false
}
