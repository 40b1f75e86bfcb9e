package auction

import (
	"car-auction/internal/auctionerrors"
	"car-auction/internal/models"
	"fmt"

	"github.com/shopspring/decimal"
)

// Winners returns the outcome of every listing that closed with a winner
func (s *AuctionService) Winners() []models.ClosureOutcome {
	winners := make([]models.ClosureOutcome, 0)
	for _, l := range s.repo.ListListings() {
		if !l.Closed || l.Winner == "" {
			continue
		}
		winning, err := s.repo.GetWinningBid(l.ID)
		if err != nil {
			continue
		}
		winners = append(winners, models.ClosureOutcome{
			ListingID: l.ID,
			Title:     l.Title,
			Sold:      true,
			Winner:    l.Winner,
			Amount:    winning.Amount,
		})
	}
	return winners
}

// SalesReport totals the winning bids of every sold listing
func (s *AuctionService) SalesReport() models.SalesReport {
	report := models.SalesReport{Sales: make([]models.Sale, 0), Total: decimal.Zero}
	for _, w := range s.Winners() {
		report.Sales = append(report.Sales, models.Sale{
			ListingID: w.ListingID,
			Title:     w.Title,
			Winner:    w.Winner,
			Amount:    w.Amount,
		})
		report.Total = report.Total.Add(w.Amount)
	}
	return report
}

// BidsForListing returns all bids for a listing in acceptance order
func (s *AuctionService) BidsForListing(listingID string) ([]models.Bid, error) {
	if listingID == "" {
		return nil, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidInput)
	}

	bids, err := s.repo.GetBidsByListing(listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for listing %s: %w", listingID, err)
	}
	return bids, nil
}

// HighestBid returns the current highest bid for a listing
func (s *AuctionService) HighestBid(listingID string) (models.Bid, error) {
	if listingID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrInvalidInput)
	}

	bid, err := s.repo.GetWinningBid(listingID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for listing %s: %w", listingID, err)
	}
	return bid, nil
}

// BidsByUser returns the bid history of a user
func (s *AuctionService) BidsByUser(username string) ([]models.Bid, error) {
	if username == "" {
		return nil, fmt.Errorf("service: %w - empty username", auctionerrors.ErrInvalidInput)
	}

	bids, err := s.repo.GetBidsByUser(username)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for user %s: %w", username, err)
	}
	return bids, nil
}

// ReviewsForSeller returns the reviews winners left about a seller
func (s *AuctionService) ReviewsForSeller(seller string) []models.Review {
	return s.repo.GetReviewsBySeller(seller)
}
