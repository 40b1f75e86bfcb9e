//go:generate mockgen -source=identity_handler.go -destination=mock_identity_handler.go -package=handler

package handler

import (
	"net/http"
	"time"

	model "car-auction/internal/models"
	"car-auction/internal/notifier"
	"car-auction/services/auction/helpers"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

type IdentityServiceInterface interface {
	Register(username, password string) error
	Login(username, password string) (model.Session, error)
	Logout(session model.Session) error
	CurrentUser(session model.Session) (string, error)
	Block(username string) error
}

type NotificationReader interface {
	For(recipient string) []notifier.Notification
}

type IdentityHandler struct {
	service IdentityServiceInterface
	inbox   NotificationReader
}

func NewIdentityHandler(service IdentityServiceInterface, inbox NotificationReader) *IdentityHandler {
	return &IdentityHandler{service: service, inbox: inbox}
}

// RegisterHandler handles POST /users
func (h *IdentityHandler) RegisterHandler(c *gin.Context) {
	var req helpers.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	if err := h.service.Register(req.Username, req.Password); err != nil {
		helpers.HandleServiceError(c, "RegisterHandler", err, map[string]any{"username": req.Username})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.UserResponse{Username: req.Username}, "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{"username": req.Username})
}

// LoginHandler handles POST /sessions
func (h *IdentityHandler) LoginHandler(c *gin.Context) {
	var req helpers.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	session, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "LoginHandler", err, map[string]any{"username": req.Username})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToSessionResponse(session), "logged in successfully")
	helpers.LogSuccess("LoginHandler", "logged in successfully", map[string]any{
		"username":   session.Username,
		"expires_at": session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// LogoutHandler handles DELETE /sessions
func (h *IdentityHandler) LogoutHandler(c *gin.Context) {
	session, ok := helpers.RequireSession(c, "LogoutHandler")
	if !ok {
		return
	}

	if err := h.service.Logout(session); err != nil {
		helpers.HandleServiceError(c, "LogoutHandler", err, map[string]any{"username": session.Username})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "logged out successfully")
	helpers.LogSuccess("LogoutHandler", "logged out successfully", map[string]any{"username": session.Username})
}

// CurrentUserHandler handles GET /users/me
func (h *IdentityHandler) CurrentUserHandler(c *gin.Context) {
	session, ok := helpers.RequireSession(c, "CurrentUserHandler")
	if !ok {
		return
	}

	username, err := h.service.CurrentUser(session)
	if err != nil {
		helpers.HandleServiceError(c, "CurrentUserHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.UserResponse{Username: username}, "current user retrieved successfully")
}

// BlockUserHandler handles DELETE /users/:username
func (h *IdentityHandler) BlockUserHandler(c *gin.Context) {
	username := c.Param("username")
	if err := h.service.Block(username); err != nil {
		helpers.HandleServiceError(c, "BlockUserHandler", err, map[string]any{"username": username})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.UserResponse{Username: username}, "user blocked successfully")
	helpers.LogSuccess("BlockUserHandler", "user blocked successfully", map[string]any{"username": username})
}

// NotificationsHandler handles GET /users/me/notifications
func (h *IdentityHandler) NotificationsHandler(c *gin.Context) {
	session, ok := helpers.RequireSession(c, "NotificationsHandler")
	if !ok {
		return
	}

	notes := h.inbox.For(session.Username)
	resp := make([]helpers.NotificationResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, helpers.NotificationResponse{
			Message: n.Message,
			SentAt:  n.SentAt.UTC().Format(time.RFC3339),
		})
	}

	utils.JSONResponse(c, http.StatusOK, resp, "notifications retrieved successfully")
}
