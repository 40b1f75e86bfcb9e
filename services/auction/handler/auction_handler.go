//go:generate mockgen -source=auction_handler.go -destination=mock_auction_handler.go -package=handler

package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	auction "car-auction/internal/auctionService"
	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"
	"car-auction/services/auction/helpers"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AuctionServiceInterface interface {
	CreateListing(session model.Session, in auction.NewListing) (model.Listing, error)
	FindListing(title string) (model.Listing, error)
	GetListing(listingID string) (model.Listing, error)
	ListActive() []model.Listing
	Search(keyword string) []model.Listing
	ListingsBySeller(session model.Session) ([]model.Listing, error)
	CancelListing(session model.Session, listingID string) error
	ExtendListing(session model.Session, listingID string, extra time.Duration) error
	SetBuyNowPrice(session model.Session, listingID string, price decimal.Decimal) error
	State(listing model.Listing) model.ListingState

	PlaceBid(session model.Session, title string, amount decimal.Decimal) (model.Bid, error)
	BidsForListing(listingID string) ([]model.Bid, error)
	HighestBid(listingID string) (model.Bid, error)
	BidsByUser(username string) ([]model.Bid, error)

	CloseExpired() []model.ClosureOutcome
	Winners() []model.ClosureOutcome
	SalesReport() model.SalesReport
	ProcessPayment(session model.Session, title string) (decimal.Decimal, error)
	LeaveReview(session model.Session, title, text string) (model.Review, error)
	ReviewsForSeller(seller string) []model.Review
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

func (h *AuctionHandler) listingResponses(listings []model.Listing) []helpers.ListingResponse {
	out := make([]helpers.ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, helpers.ToListingResponse(l, h.service.State(l)))
	}
	return out
}

// CreateListingHandler handles POST /listings
func (h *AuctionHandler) CreateListingHandler(c *gin.Context) {
	session, ok := helpers.RequireSession(c, "CreateListingHandler")
	if !ok {
		return
	}

	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	endTime, err := utils.ParseEndTime(req.EndTime)
	if err != nil {
		helpers.HandleServiceError(c, "CreateListingHandler", err, map[string]any{"end_time": req.EndTime})
		return
	}

	listing, err := h.service.CreateListing(session, auction.NewListing{
		Title:        req.Title,
		Description:  req.Description,
		ReservePrice: decimal.NewFromFloat(req.ReservePrice),
		EndTime:      endTime,
		Category:     req.Category,
	})
	if err != nil {
		helpers.HandleServiceError(c, "CreateListingHandler", err, map[string]any{"title": req.Title, "seller": session.Username})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToListingResponse(listing, h.service.State(listing)), "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id": listing.ID,
		"title":      listing.Title,
		"seller":     listing.Seller,
	})
}

// ListListingsHandler handles GET /listings and GET /listings?q=keyword
func (h *AuctionHandler) ListListingsHandler(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("q"))

	var listings []model.Listing
	if keyword != "" {
		listings = h.service.Search(keyword)
	} else {
		listings = h.service.ListActive()
	}

	utils.JSONResponse(c, http.StatusOK, h.listingResponses(listings), "listings retrieved successfully")
	helpers.LogSuccess("ListListingsHandler", "listings retrieved successfully", map[string]any{
		"keyword": keyword,
		"count":   len(listings),
	})
}

// FindListingHandler handles GET /listings/by-title/:title
func (h *AuctionHandler) FindListingHandler(c *gin.Context) {
	title := c.Param("title")
	listing, err := h.service.FindListing(title)
	if err != nil {
		helpers.HandleServiceError(c, "FindListingHandler", err, map[string]any{"title": title})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToListingResponse(listing, h.service.State(listing)), "listing retrieved successfully")
}

// GetListingHandler handles GET /listings/:listing_id
func (h *AuctionHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	listing, err := h.service.GetListing(listingID)
	if err != nil {
		helpers.HandleServiceError(c, "GetListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToListingResponse(listing, h.service.State(listing)), "listing retrieved successfully")
}

// MyListingsHandler handles GET /users/me/listings
func (h *AuctionHandler) MyListingsHandler(c *gin.Context) {
	session, ok := helpers.RequireSession(c, "MyListingsHandler")
	if !ok {
		return
	}

	listings, err := h.service.ListingsBySeller(session)
	if err != nil {
		helpers.HandleServiceError(c, "MyListingsHandler", err, map[string]any{"seller": session.Username})
		return
	}

	utils.JSONResponse(c, http.StatusOK, h.listingResponses(listings), "listings retrieved successfully")
}

// CancelListingHandler handles DELETE /listings/:listing_id
func (h *AuctionHandler) CancelListingHandler(c *gin.Context) {
	session, ok := helpers.RequireSession(c, "CancelListingHandler")
	if !ok {
		return
	}

	listingID := c.Param("listing_id")
	if err := h.service.CancelListing(session, listingID); err != nil {
		helpers.HandleServiceError(c, "CancelListingHandler", err, map[string]any{"listing_id": listingID, "seller": session.Username})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"listing_id": listingID}, "listing cancelled successfully")
	helpers.LogSuccess("CancelListingHandler", "listing cancelled successfully", map[string]any{"listing_id": listingID})
}

// ExtendListingHandler handles POST /listings/:listing_id/extend
func (h *AuctionHandler) ExtendListingHandler(c *gin.Context) {
	session, ok := helpers.RequireSession(c, "ExtendListingHandler")
	if !ok {
		return
	}

	var req helpers.ExtendListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ExtendListingHandler", err)
		return
	}

	listingID := c.Param("listing_id")
	if err := h.service.ExtendListing(session, listingID, time.Duration(req.Minutes)*time.Minute); err != nil {
		helpers.HandleServiceError(c, "ExtendListingHandler", err, map[string]any{"listing_id": listingID, "minutes": req.Minutes})
		return
	}

	listing, err := h.service.GetListing(listingID)
	if err != nil {
		helpers.HandleServiceError(c, "ExtendListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToListingResponse(listing, h.service.State(listing)), "listing extended successfully")
	helpers.LogSuccess("ExtendListingHandler", "listing extended successfully", map[string]any{
		"listing_id": listingID,
		"end_time":   utils.FormatEndTime(listing.EndTime),
	})
}

// SetBuyNowPriceHandler handles PUT /listings/:listing_id/buy-now
func (h *AuctionHandler) SetBuyNowPriceHandler(c *gin.Context) {
	session, ok := helpers.RequireSession(c, "SetBuyNowPriceHandler")
	if !ok {
		return
	}

	var req helpers.BuyNowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetBuyNowPriceHandler", err)
		return
	}

	listingID := c.Param("listing_id")
	if err := h.service.SetBuyNowPrice(session, listingID, decimal.NewFromFloat(req.Price)); err != nil {
		helpers.HandleServiceError(c, "SetBuyNowPriceHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"listing_id": listingID, "buy_now_price": req.Price}, "buy-now price set successfully")
	helpers.LogSuccess("SetBuyNowPriceHandler", "buy-now price set successfully", map[string]any{
		"listing_id": listingID,
		"price":      req.Price,
	})
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	session, ok := helpers.RequireSession(c, "PlaceBidHandler")
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(session, req.Title, decimal.NewFromFloat(req.Amount))
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err, map[string]any{
			"title":  req.Title,
			"bidder": session.Username,
			"amount": req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"listing_id": bid.ListingID,
		"bidder":     bid.Bidder,
		"amount":     bid.Amount.String(),
	})
}

// GetBidsByListingHandler handles GET /listings/:listing_id/bids
func (h *AuctionHandler) GetBidsByListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	bids, err := h.service.BidsForListing(listingID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		helpers.HandleServiceError(c, "GetBidsByListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByListingHandler", "bids retrieved successfully", map[string]any{
		"listing_id": listingID,
		"count":      len(bids),
	})
}

// GetWinningBidHandler handles GET /listings/:listing_id/winning
func (h *AuctionHandler) GetWinningBidHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	bid, err := h.service.HighestBid(listingID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"listing_id": listingID})
			return
		}
		helpers.HandleServiceError(c, "GetWinningBidHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponse(bid), "winning bid retrieved successfully")
}

// GetBidsByUserHandler handles GET /users/:username/bids
func (h *AuctionHandler) GetBidsByUserHandler(c *gin.Context) {
	username := c.Param("username")
	bids, err := h.service.BidsByUser(username)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		helpers.HandleServiceError(c, "GetBidsByUserHandler", err, map[string]any{"username": username})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToBidResponses(bids), "bids retrieved successfully")
}

// GetReviewsHandler handles GET /users/:username/reviews
func (h *AuctionHandler) GetReviewsHandler(c *gin.Context) {
	seller := c.Param("username")
	reviews := h.service.ReviewsForSeller(seller)
	utils.JSONResponse(c, http.StatusOK, helpers.ToReviewResponses(reviews), "reviews retrieved successfully")
}

// CloseExpiredHandler handles POST /auctions/close
func (h *AuctionHandler) CloseExpiredHandler(c *gin.Context) {
	outcomes := h.service.CloseExpired()
	utils.JSONResponse(c, http.StatusOK, helpers.ToOutcomeResponses(outcomes), "expired auctions closed")
	helpers.LogSuccess("CloseExpiredHandler", "expired auctions closed", map[string]any{"closed": len(outcomes)})
}

// WinnersHandler handles GET /auctions/winners
func (h *AuctionHandler) WinnersHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, helpers.ToOutcomeResponses(h.service.Winners()), "winners retrieved successfully")
}

// SalesReportHandler handles GET /auctions/report
func (h *AuctionHandler) SalesReportHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, helpers.ToSalesReportResponse(h.service.SalesReport()), "sales report generated")
}

// PaymentHandler handles POST /payments
func (h *AuctionHandler) PaymentHandler(c *gin.Context) {
	session, ok := helpers.RequireSession(c, "PaymentHandler")
	if !ok {
		return
	}

	var req helpers.TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PaymentHandler", err)
		return
	}

	paid, err := h.service.ProcessPayment(session, req.Title)
	if err != nil {
		helpers.HandleServiceError(c, "PaymentHandler", err, map[string]any{"title": req.Title, "payer": session.Username})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.PaymentResponse{Title: req.Title, Amount: paid.InexactFloat64()}, "payment processed successfully")
	helpers.LogSuccess("PaymentHandler", "payment processed successfully", map[string]any{
		"title":  req.Title,
		"payer":  session.Username,
		"amount": paid.String(),
	})
}

// ReviewHandler handles POST /reviews
func (h *AuctionHandler) ReviewHandler(c *gin.Context) {
	session, ok := helpers.RequireSession(c, "ReviewHandler")
	if !ok {
		return
	}

	var req helpers.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ReviewHandler", err)
		return
	}

	review, err := h.service.LeaveReview(session, req.Title, req.Text)
	if err != nil {
		helpers.HandleServiceError(c, "ReviewHandler", err, map[string]any{"title": req.Title, "author": session.Username})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToReviewResponse(review), "review submitted successfully")
	helpers.LogSuccess("ReviewHandler", "review submitted successfully", map[string]any{
		"review_id": review.ReviewID,
		"seller":    review.Seller,
	})
}
