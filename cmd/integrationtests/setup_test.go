package integrationtests

import (
	auction "car-auction/internal/auctionService"
	identity "car-auction/internal/identityService"
	"car-auction/internal/notifier"
	"car-auction/internal/repository"
	"car-auction/internal/server"
	"car-auction/services/auction/helpers"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const testAdminKey = "integration-admin"

// testClock is shared by every service behind the router so tests can move time forward
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testApp struct {
	router *gin.Engine
	clock  *testClock
}

// SetupTestApp initializes the router with in-memory repository for integration testing.
func SetupTestApp(opts ...auction.Option) *testApp {
	gin.SetMode(gin.TestMode)
	clock := &testClock{now: time.Now().Truncate(time.Second)}

	repo := repository.NewMemoryRepo()
	inbox := notifier.NewInbox(clock.Now)
	identitySvc := identity.NewIdentityService(repo, []byte("integration-secret"), time.Hour, bcrypt.MinCost, identity.WithClock(clock.Now))
	opts = append([]auction.Option{auction.WithClock(clock.Now), auction.WithNotifier(inbox)}, opts...)
	auctionSvc := auction.NewAuctionService(repo, identitySvc, opts...)

	return &testApp{
		router: server.SetupRouter(identitySvc, auctionSvc, inbox, testAdminKey),
		clock:  clock,
	}
}

// ExecuteRequestAndParse executes an HTTP request on the app's router and parses the response envelope
func (a *testApp) ExecuteRequestAndParse(t *testing.T, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	a.router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// SignUp registers username and logs in, returning the bearer token
func (a *testApp) SignUp(t *testing.T, username string) string {
	t.Helper()

	creds := helpers.CredentialsRequest{Username: username, Password: "pw-" + username}
	if _, w := a.ExecuteRequestAndParse(t, http.MethodPost, "/users", "", creds); w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d", username, w.Code)
	}

	resp, w := a.ExecuteRequestAndParse(t, http.MethodPost, "/sessions", "", creds)
	if w.Code != http.StatusCreated {
		t.Fatalf("login %s: status %d", username, w.Code)
	}
	return resp["data"].(map[string]any)["token"].(string)
}

// CreateListing posts a listing ending after d and returns its id
func (a *testApp) CreateListing(t *testing.T, token, title string, reserve float64, d time.Duration) string {
	t.Helper()

	req := helpers.CreateListingRequest{
		Title:        title,
		Description:  title + " for sale",
		ReservePrice: reserve,
		EndTime:      a.clock.Now().Add(d).Format("2006-01-02 15:04:05"),
	}
	resp, w := a.ExecuteRequestAndParse(t, http.MethodPost, "/listings", token, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create listing %s: status %d body %s", title, w.Code, w.Body.String())
	}
	return resp["data"].(map[string]any)["listing_id"].(string)
}
