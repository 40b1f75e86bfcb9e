package main

import (
	auction "car-auction/internal/auctionService"
	"car-auction/internal/config"
	identity "car-auction/internal/identityService"
	"car-auction/internal/notifier"
	"car-auction/internal/repository"
	"car-auction/internal/server"
	"car-auction/utils"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	policy, err := auction.ParseExtendPolicy(cfg.ExtendPolicy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	repo := repository.NewMemoryRepo()
	inbox := notifier.NewInbox(utils.SystemClock)

	identitySvc := identity.NewIdentityService(repo, cfg.SessionSecret, cfg.SessionTTL, cfg.BcryptCost)
	auctionSvc := auction.NewAuctionService(repo, identitySvc,
		auction.WithExtendPolicy(policy),
		auction.WithNotifier(inbox),
	)

	if cfg.SeedDemo {
		if err := seedDemo(identitySvc, auctionSvc); err != nil {
			utils.Error("failed to seed demo data", map[string]any{"error": err.Error()})
		}
	}

	router := server.SetupRouter(identitySvc, auctionSvc, inbox, cfg.AdminKey)

	fmt.Printf("Starting auction server on %s...\n", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedDemo registers two demo users and lists a few cars for alice
func seedDemo(identitySvc *identity.IdentityService, auctionSvc *auction.AuctionService) error {
	for _, name := range []string{"alice", "bob"} {
		if err := identitySvc.Register(name, name+"-demo"); err != nil {
			return err
		}
	}

	alice, err := identitySvc.Login("alice", "alice-demo")
	if err != nil {
		return err
	}
	defer identitySvc.Logout(alice)

	cars := []auction.NewListing{
		{Title: "Truck", Description: "Red pickup, one owner", ReservePrice: decimal.NewFromInt(1000), EndTime: time.Now().Add(time.Hour), Category: "trucks"},
		{Title: "Coupe", Description: "Two-door sports coupe", ReservePrice: decimal.NewFromInt(5000), EndTime: time.Now().Add(24 * time.Hour), Category: "sports"},
		{Title: "Van", Description: "Camper van with a bike rack", ReservePrice: decimal.NewFromInt(2500), EndTime: time.Now().Add(2 * time.Hour), Category: "vans"},
	}
	for _, car := range cars {
		if _, err := auctionSvc.CreateListing(alice, car); err != nil {
			return err
		}
	}
	return nil
}
