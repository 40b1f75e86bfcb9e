package helpers

import (
	"time"

	model "car-auction/internal/models"
	"car-auction/utils"
)

// Request/Response DTOs
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	ExpiresAt string `json:"expires_at"`
}

type UserResponse struct {
	Username string `json:"username"`
}

type CreateListingRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	ReservePrice float64 `json:"reserve_price" binding:"gte=0"`
	EndTime      string  `json:"end_time" binding:"required"` // YYYY-MM-DD HH:MM:SS, local time
	Category     string  `json:"category"`
}

type ExtendListingRequest struct {
	Minutes int `json:"minutes" binding:"required,gt=0,lte=525600"` // at most one year
}

type BuyNowRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

type ListingResponse struct {
	ListingID    string   `json:"listing_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Seller       string   `json:"seller"`
	ReservePrice float64  `json:"reserve_price"`
	BuyNowPrice  *float64 `json:"buy_now_price,omitempty"`
	EndTime      string   `json:"end_time"`
	State        string   `json:"state"`
	Winner       string   `json:"winner,omitempty"`
	BidCount     int      `json:"bid_count"`
	Category     string   `json:"category,omitempty"`
}

type PlaceBidRequest struct {
	Title  string  `json:"title" binding:"required"`
	Amount float64 `json:"amount" binding:"gte=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	ListingID string  `json:"listing_id"`
	Bidder    string  `json:"bidder"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type OutcomeResponse struct {
	ListingID string  `json:"listing_id"`
	Title     string  `json:"title"`
	Sold      bool    `json:"sold"`
	Winner    string  `json:"winner,omitempty"`
	Amount    float64 `json:"amount,omitempty"`
}

type SalesReportResponse struct {
	Sales []OutcomeResponse `json:"sales"`
	Total float64           `json:"total"`
}

type TitleRequest struct {
	Title string `json:"title" binding:"required"`
}

type PaymentResponse struct {
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
}

type ReviewRequest struct {
	Title string `json:"title" binding:"required"`
	Text  string `json:"text" binding:"required"`
}

type ReviewResponse struct {
	ReviewID  string `json:"review_id"`
	ListingID string `json:"listing_id"`
	Author    string `json:"author"`
	Seller    string `json:"seller"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

type NotificationResponse struct {
	Message string `json:"message"`
	SentAt  string `json:"sent_at"`
}

func ToSessionResponse(s model.Session) SessionResponse {
	return SessionResponse{
		Token:     s.Token,
		Username:  s.Username,
		ExpiresAt: s.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

// ToListingResponse renders a listing together with its state at request time
func ToListingResponse(l model.Listing, state model.ListingState) ListingResponse {
	resp := ListingResponse{
		ListingID:    l.ID,
		Title:        l.Title,
		Description:  l.Description,
		Seller:       l.Seller,
		ReservePrice: l.ReservePrice.InexactFloat64(),
		EndTime:      utils.FormatEndTime(l.EndTime),
		State:        string(state),
		Winner:       l.Winner,
		BidCount:     len(l.BidIDs),
		Category:     l.Category,
	}
	if l.BuyNowPrice != nil {
		price := l.BuyNowPrice.InexactFloat64()
		resp.BuyNowPrice = &price
	}
	return resp
}

func ToBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:     b.BidID,
		ListingID: b.ListingID,
		Bidder:    b.Bidder,
		Amount:    b.Amount.InexactFloat64(),
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, ToBidResponse(b))
	}
	return out
}

func ToOutcomeResponses(outcomes []model.ClosureOutcome) []OutcomeResponse {
	out := make([]OutcomeResponse, 0, len(outcomes))
	for _, o := range outcomes {
		out = append(out, OutcomeResponse{
			ListingID: o.ListingID,
			Title:     o.Title,
			Sold:      o.Sold,
			Winner:    o.Winner,
			Amount:    o.Amount.InexactFloat64(),
		})
	}
	return out
}

func ToSalesReportResponse(r model.SalesReport) SalesReportResponse {
	resp := SalesReportResponse{Sales: make([]OutcomeResponse, 0, len(r.Sales)), Total: r.Total.InexactFloat64()}
	for _, s := range r.Sales {
		resp.Sales = append(resp.Sales, OutcomeResponse{
			ListingID: s.ListingID,
			Title:     s.Title,
			Sold:      true,
			Winner:    s.Winner,
			Amount:    s.Amount.InexactFloat64(),
		})
	}
	return resp
}

func ToReviewResponses(reviews []model.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ToReviewResponse(r))
	}
	return out
}

func ToReviewResponse(r model.Review) ReviewResponse {
	return ReviewResponse{
		ReviewID:  r.ReviewID,
		ListingID: r.ListingID,
		Author:    r.Author,
		Seller:    r.Seller,
		Text:      r.Text,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
