package auction

import (
	"car-auction/internal/models"
	"car-auction/internal/notifier"
	"car-auction/internal/repository"
	"car-auction/utils"
	"fmt"
	"sync"
)

// ExtendPolicy decides whether a listing past its end time may still be extended
type ExtendPolicy string

const (
	// ExtendRevive lets the seller extend any listing that has not been closed yet,
	// moving an ended listing back to open.
	ExtendRevive ExtendPolicy = "revive"
	// ExtendOpenOnly only allows extending listings that are still open.
	ExtendOpenOnly ExtendPolicy = "open-only"
)

// SessionResolver maps an explicit session to the logged-in username
type SessionResolver interface {
	CurrentUser(session models.Session) (string, error)
}

// Notifier delivers user-facing messages
type Notifier interface {
	Notify(recipient, message string)
}

// AuctionService enforces the listing and bidding rules of the auction lifecycle
type AuctionService struct {
	mu       sync.Mutex // serializes every mutation so bid validation and recording are atomic
	repo     repository.AuctionDB
	sessions SessionResolver
	notifier Notifier
	policy   ExtendPolicy
	now      utils.Clock
}

// Option customizes an AuctionService
type Option func(*AuctionService)

// WithClock overrides the time source
func WithClock(clock utils.Clock) Option {
	return func(s *AuctionService) {
		s.now = clock
	}
}

// WithExtendPolicy sets the extension policy, ExtendRevive by default
func WithExtendPolicy(policy ExtendPolicy) Option {
	return func(s *AuctionService) {
		s.policy = policy
	}
}

// WithNotifier sets where outbid/closure notifications go
func WithNotifier(n Notifier) Option {
	return func(s *AuctionService) {
		s.notifier = n
	}
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB, sessions SessionResolver, opts ...Option) *AuctionService {
	s := &AuctionService{
		repo:     repo,
		sessions: sessions,
		policy:   ExtendRevive,
		now:      utils.SystemClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = notifier.NewInbox(s.now)
	}
	return s
}

// ParseExtendPolicy converts a configuration value into an ExtendPolicy
func ParseExtendPolicy(value string) (ExtendPolicy, error) {
	switch p := ExtendPolicy(value); p {
	case ExtendRevive, ExtendOpenOnly:
		return p, nil
	case "":
		return ExtendRevive, nil
	default:
		return "", fmt.Errorf("unknown extend policy %q", value)
	}
}

// State reports the lifecycle state of a listing right now
func (s *AuctionService) State(listing models.Listing) models.ListingState {
	return listing.StateAt(s.now())
}

// requester resolves the session to a username
func (s *AuctionService) requester(session models.Session) (string, error) {
	username, err := s.sessions.CurrentUser(session)
	if err != nil {
		return "", fmt.Errorf("service: %w", err)
	}
	return username, nil
}
