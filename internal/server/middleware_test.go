package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"
	"car-auction/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator map[string]model.Session

func (s stubAuthenticator) Authenticate(token string) (model.Session, error) {
	if session, ok := s[token]; ok {
		return session, nil
	}
	return model.Session{}, auctionerrors.ErrNotLoggedIn
}

func newMiddlewareRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", mw, func(c *gin.Context) {
		session, _ := helpers.SessionFromContext(c)
		c.JSON(http.StatusOK, gin.H{"username": session.Username})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	router := newMiddlewareRouter(AuthMiddleware(stubAuthenticator{
		"good-token": {ID: "s1", Token: "good-token", Username: "alice"},
	}))

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedBody   string
	}{
		{name: "valid_token", header: "Bearer good-token", expectedStatus: http.StatusOK, expectedBody: "alice"},
		{name: "missing_header", header: "", expectedStatus: http.StatusUnauthorized, expectedBody: "missing bearer token"},
		{name: "wrong_scheme", header: "Basic good-token", expectedStatus: http.StatusUnauthorized, expectedBody: "missing bearer token"},
		{name: "empty_token", header: "Bearer  ", expectedStatus: http.StatusUnauthorized, expectedBody: "missing bearer token"},
		{name: "unknown_token", header: "Bearer revoked", expectedStatus: http.StatusUnauthorized, expectedBody: "not logged in"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestAdminKeyMiddleware(t *testing.T) {
	t.Parallel()

	enabled := newMiddlewareRouter(AdminKeyMiddleware("s3cret"))
	disabled := newMiddlewareRouter(AdminKeyMiddleware(""))

	tests := []struct {
		name           string
		router         *gin.Engine
		key            string
		expectedStatus int
	}{
		{name: "correct_key", router: enabled, key: "s3cret", expectedStatus: http.StatusOK},
		{name: "wrong_key", router: enabled, key: "guess", expectedStatus: http.StatusForbidden},
		{name: "missing_key", router: enabled, expectedStatus: http.StatusForbidden},
		{name: "disabled", router: disabled, key: "", expectedStatus: http.StatusForbidden},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.key != "" {
				req.Header.Set(AdminKeyHeader, tc.key)
			}
			w := httptest.NewRecorder()
			tc.router.ServeHTTP(w, req)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
