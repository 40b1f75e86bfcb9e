package identity

import (
	"car-auction/internal/auctionerrors"
	"car-auction/internal/models"
	"car-auction/internal/repository"
	"car-auction/utils"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// IdentityService registers users and manages their login sessions
type IdentityService struct {
	repo       repository.IdentityDB
	signKey    []byte
	sessionTTL time.Duration
	bcryptCost int
	now        utils.Clock
}

// Option customizes an IdentityService
type Option func(*IdentityService)

// WithClock overrides the time source used for session expiry
func WithClock(clock utils.Clock) Option {
	return func(s *IdentityService) {
		s.now = clock
	}
}

// NewIdentityService creates a new IdentityService instance
func NewIdentityService(repo repository.IdentityDB, signKey []byte, sessionTTL time.Duration, bcryptCost int, opts ...Option) *IdentityService {
	s := &IdentityService{
		repo:       repo,
		signKey:    signKey,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
		now:        utils.SystemClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a new user with a hashed password
func (s *IdentityService) Register(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("service: %w - missing username or password", auctionerrors.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("service: failed to hash password for %s: %w", username, err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.repo.CreateUser(user); err != nil {
		return fmt.Errorf("service: failed to register %s: %w", username, err)
	}

	utils.Info("user registered", map[string]any{"username": username})
	return nil
}

// Login verifies the credentials and opens a new session
func (s *IdentityService) Login(username, password string) (models.Session, error) {
	user, err := s.repo.GetUser(username)
	if err != nil {
		return models.Session{}, fmt.Errorf("service: login %s: %w", username, err)
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return models.Session{}, fmt.Errorf("service: login %s: %w", username, auctionerrors.ErrInvalidCredentials)
	}

	session, err := s.issueSession(user.Username)
	if err != nil {
		return models.Session{}, fmt.Errorf("service: failed to issue session for %s: %w", username, err)
	}
	if err := s.repo.SaveSession(session); err != nil {
		return models.Session{}, fmt.Errorf("service: failed to save session for %s: %w", username, err)
	}

	utils.Info("user logged in", map[string]any{"username": username})
	return session, nil
}

// Logout revokes a live session
func (s *IdentityService) Logout(session models.Session) error {
	if _, err := s.CurrentUser(session); err != nil {
		return err
	}
	if err := s.repo.DeleteSession(session.ID); err != nil {
		return fmt.Errorf("service: logout: %w", auctionerrors.ErrNotLoggedIn)
	}

	utils.Info("user logged out", map[string]any{"username": session.Username})
	return nil
}

// CurrentUser returns the username a live session belongs to
func (s *IdentityService) CurrentUser(session models.Session) (string, error) {
	if session.ID == "" {
		return "", fmt.Errorf("service: %w - empty session", auctionerrors.ErrNotLoggedIn)
	}

	stored, err := s.repo.GetSession(session.ID)
	if err != nil {
		return "", fmt.Errorf("service: %w - unknown session", auctionerrors.ErrNotLoggedIn)
	}
	if stored.Username != session.Username || !s.now().Before(stored.ExpiresAt) {
		return "", fmt.Errorf("service: %w - session expired or mismatched", auctionerrors.ErrNotLoggedIn)
	}
	return stored.Username, nil
}

// Authenticate resolves a bearer token to its live session
func (s *IdentityService) Authenticate(token string) (models.Session, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.signKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return models.Session{}, fmt.Errorf("service: %w - invalid token: %v", auctionerrors.ErrNotLoggedIn, err)
	}

	stored, err := s.repo.GetSession(claims.ID)
	if err != nil || stored.Username != claims.Subject {
		return models.Session{}, fmt.Errorf("service: %w - session revoked", auctionerrors.ErrNotLoggedIn)
	}
	if _, err := s.CurrentUser(stored); err != nil {
		return models.Session{}, err
	}
	return stored, nil
}

// Block removes a user, revokes its sessions and keeps the username from being reused
func (s *IdentityService) Block(username string) error {
	if err := s.repo.BlockUser(username); err != nil {
		return fmt.Errorf("service: failed to block %s: %w", username, err)
	}

	utils.Warn("user blocked", map[string]any{"username": username})
	return nil
}

// issueSession creates a session with a signed HS256 token for the given user
func (s *IdentityService) issueSession(username string) (models.Session, error) {
	now := s.now()
	exp := now.Add(s.sessionTTL)
	sessionID := utils.GenerateID()

	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signKey)
	if err != nil {
		return models.Session{}, err
	}

	return models.Session{
		ID:        sessionID,
		Token:     signed,
		Username:  username,
		ExpiresAt: exp,
	}, nil
}
