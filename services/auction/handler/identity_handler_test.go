package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"
	"car-auction/internal/notifier"
	"car-auction/services/auction/helpers"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Test RegisterHandler
func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockIdentityServiceInterface(ctrl)
	handler := NewIdentityHandler(mockService, NewMockNotificationReader(ctrl))

	router := newTestRouter(nil)
	router.POST("/users", handler.RegisterHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			requestBody: helpers.CredentialsRequest{Username: "alice", Password: "pw1"},
			mockSetup: func() {
				mockService.EXPECT().Register("alice", "pw1").Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "user registered successfully",
		},
		{
			name:        "username_taken",
			requestBody: helpers.CredentialsRequest{Username: "bob", Password: "pw1"},
			mockSetup: func() {
				mockService.EXPECT().Register("bob", "pw1").Return(auctionerrors.ErrAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "already exists",
		},
		{
			name:        "blocked_username",
			requestBody: helpers.CredentialsRequest{Username: "mallory", Password: "pw1"},
			mockSetup: func() {
				mockService.EXPECT().Register("mallory", "pw1").Return(auctionerrors.ErrUserBlocked)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "user is blocked",
		},
		{
			name:           "missing_password",
			requestBody:    helpers.CredentialsRequest{Username: "carol"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tc.mockSetup()

			status, resp := performRequest(t, router, http.MethodPost, "/users", tc.requestBody)
			require.Equal(t, tc.expectedStatus, status)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test LoginHandler
func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockIdentityServiceInterface(ctrl)
	handler := NewIdentityHandler(mockService, NewMockNotificationReader(ctrl))

	router := newTestRouter(nil)
	router.POST("/sessions", handler.LoginHandler)

	expires := time.Date(2031, 1, 2, 3, 4, 5, 0, time.UTC)
	mockService.EXPECT().Login("alice", "pw1").Return(model.Session{ID: "s1", Token: "jwt-token", Username: "alice", ExpiresAt: expires}, nil)

	status, resp := performRequest(t, router, http.MethodPost, "/sessions", helpers.CredentialsRequest{Username: "alice", Password: "pw1"})
	require.Equal(t, http.StatusCreated, status)
	data := resp["data"].(map[string]any)
	require.Equal(t, "jwt-token", data["token"])
	require.Equal(t, "alice", data["username"])
	require.Equal(t, "2031-01-02T03:04:05Z", data["expires_at"])
	require.NotContains(t, data, "id", "session ids never leave the server")

	mockService.EXPECT().Login("alice", "wrong").Return(model.Session{}, auctionerrors.ErrInvalidCredentials)
	status, resp = performRequest(t, router, http.MethodPost, "/sessions", helpers.CredentialsRequest{Username: "alice", Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "invalid credentials", resp["message"])

	mockService.EXPECT().Login("ghost", "pw").Return(model.Session{}, auctionerrors.ErrNotFound)
	status, _ = performRequest(t, router, http.MethodPost, "/sessions", helpers.CredentialsRequest{Username: "ghost", Password: "pw"})
	require.Equal(t, http.StatusNotFound, status)
}

// Test session-scoped identity handlers
func TestSessionHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockIdentityServiceInterface(ctrl)
	mockInbox := NewMockNotificationReader(ctrl)
	handler := NewIdentityHandler(mockService, mockInbox)

	router := newTestRouter(&testSession)
	router.DELETE("/sessions", handler.LogoutHandler)
	router.GET("/users/me", handler.CurrentUserHandler)
	router.GET("/users/me/notifications", handler.NotificationsHandler)

	mockService.EXPECT().CurrentUser(testSession).Return("bob", nil)
	status, resp := performRequest(t, router, http.MethodGet, "/users/me", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "bob", resp["data"].(map[string]any)["username"])

	sent := time.Date(2031, 1, 1, 12, 0, 0, 0, time.UTC)
	mockInbox.EXPECT().For("bob").Return([]notifier.Notification{
		{Recipient: "bob", Message: "You have been outbid on 'Truck'", SentAt: sent},
	})
	status, resp = performRequest(t, router, http.MethodGet, "/users/me/notifications", nil)
	require.Equal(t, http.StatusOK, status)
	notes := resp["data"].([]any)
	require.Len(t, notes, 1)
	require.Equal(t, "2031-01-01T12:00:00Z", notes[0].(map[string]any)["sent_at"])

	mockService.EXPECT().Logout(testSession).Return(nil)
	status, resp = performRequest(t, router, http.MethodDelete, "/sessions", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "logged out successfully", resp["message"])

	mockService.EXPECT().Logout(testSession).Return(auctionerrors.ErrNotLoggedIn)
	status, _ = performRequest(t, router, http.MethodDelete, "/sessions", nil)
	require.Equal(t, http.StatusUnauthorized, status)
}

// Test BlockUserHandler
func TestBlockUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockIdentityServiceInterface(ctrl)
	handler := NewIdentityHandler(mockService, NewMockNotificationReader(ctrl))

	router := newTestRouter(nil)
	router.DELETE("/users/:username", handler.BlockUserHandler)

	mockService.EXPECT().Block("mallory").Return(nil)
	status, resp := performRequest(t, router, http.MethodDelete, "/users/mallory", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "user blocked successfully", resp["message"])

	mockService.EXPECT().Block("ghost").Return(auctionerrors.ErrNotFound)
	status, _ = performRequest(t, router, http.MethodDelete, "/users/ghost", nil)
	require.Equal(t, http.StatusNotFound, status)

	mockService.EXPECT().Block("alice").Return(errors.New("repo failure"))
	status, _ = performRequest(t, router, http.MethodDelete, "/users/alice", nil)
	require.Equal(t, http.StatusInternalServerError, status)
}
