package server

import (
	auction "car-auction/internal/auctionService"
	identity "car-auction/internal/identityService"
	"car-auction/internal/notifier"
	handler "car-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(identityService *identity.IdentityService, auctionService *auction.AuctionService, inbox *notifier.Inbox, adminKey string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	identityHandler := handler.NewIdentityHandler(identityService, inbox)
	auctionHandler := handler.NewAuctionHandler(auctionService)
	requireAuth := AuthMiddleware(identityService)

	sessions := router.Group("/sessions")
	{
		sessions.POST("", identityHandler.LoginHandler)
		sessions.DELETE("", requireAuth, identityHandler.LogoutHandler)
	}

	users := router.Group("/users")
	{
		users.POST("", identityHandler.RegisterHandler)
		users.GET("/me", requireAuth, identityHandler.CurrentUserHandler)
		users.GET("/me/listings", requireAuth, auctionHandler.MyListingsHandler)
		users.GET("/me/notifications", requireAuth, identityHandler.NotificationsHandler)
		users.GET("/:username/bids", auctionHandler.GetBidsByUserHandler)
		users.GET("/:username/reviews", auctionHandler.GetReviewsHandler)
		users.DELETE("/:username", AdminKeyMiddleware(adminKey), identityHandler.BlockUserHandler)
	}

	listings := router.Group("/listings")
	{
		listings.POST("", requireAuth, auctionHandler.CreateListingHandler)
		listings.GET("", auctionHandler.ListListingsHandler)
		listings.GET("/by-title/:title", auctionHandler.FindListingHandler)
		listings.GET("/:listing_id", auctionHandler.GetListingHandler)
		listings.DELETE("/:listing_id", requireAuth, auctionHandler.CancelListingHandler)
		listings.POST("/:listing_id/extend", requireAuth, auctionHandler.ExtendListingHandler)
		listings.PUT("/:listing_id/buy-now", requireAuth, auctionHandler.SetBuyNowPriceHandler)
		listings.GET("/:listing_id/bids", auctionHandler.GetBidsByListingHandler)
		listings.GET("/:listing_id/winning", auctionHandler.GetWinningBidHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", requireAuth, auctionHandler.PlaceBidHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.POST("/close", auctionHandler.CloseExpiredHandler)
		auctions.GET("/winners", auctionHandler.WinnersHandler)
		auctions.GET("/report", auctionHandler.SalesReportHandler)
	}

	router.POST("/payments", requireAuth, auctionHandler.PaymentHandler)
	router.POST("/reviews", requireAuth, auctionHandler.ReviewHandler)

	return router
}
