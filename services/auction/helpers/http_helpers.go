package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key holding the authenticated session
const SessionKey = "session"

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError maps err to an HTTP response and logs it with the handler's context
func HandleServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["handler"] = handlerName
	ctx["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+message, ctx)
		return
	}
	utils.Warn(handlerName+": "+message, ctx)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusNotFound, "no bids found"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, auctionerrors.ErrInvalidTimeFormat):
		return http.StatusBadRequest, "invalid time format, expected YYYY-MM-DD HH:MM:SS"
	case errors.Is(err, auctionerrors.ErrPastEndTime):
		return http.StatusBadRequest, "end time must be in the future"
	case errors.Is(err, auctionerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, auctionerrors.ErrNotLoggedIn):
		return http.StatusUnauthorized, "not logged in"
	case errors.Is(err, auctionerrors.ErrUserBlocked):
		return http.StatusForbidden, "user is blocked"
	case errors.Is(err, auctionerrors.ErrNotOwner):
		return http.StatusForbidden, "not the listing owner"
	case errors.Is(err, auctionerrors.ErrNotWinner):
		return http.StatusForbidden, "not the auction winner"
	case errors.Is(err, auctionerrors.ErrNotEligible):
		return http.StatusForbidden, "only the winner may review"
	case errors.Is(err, auctionerrors.ErrAlreadyExists):
		return http.StatusConflict, "already exists"
	case errors.Is(err, auctionerrors.ErrHasBids):
		return http.StatusConflict, "listing already has bids"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusConflict, "auction has ended"
	case errors.Is(err, auctionerrors.ErrBelowReserve):
		return http.StatusConflict, "bid below reserve price"
	case errors.Is(err, auctionerrors.ErrBelowHighest):
		return http.StatusConflict, "bid amount too low"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// SetSession stores the authenticated session on the request context
func SetSession(c *gin.Context, session model.Session) {
	c.Set(SessionKey, session)
}

// SessionFromContext returns the session stored by the auth middleware
func SessionFromContext(c *gin.Context) (model.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return model.Session{}, false
	}
	session, ok := v.(model.Session)
	return session, ok
}

// RequireSession is SessionFromContext for handlers behind the auth middleware; it writes a 401 when missing
func RequireSession(c *gin.Context, handlerName string) (model.Session, bool) {
	session, ok := SessionFromContext(c)
	if !ok {
		HandleServiceError(c, handlerName, auctionerrors.ErrNotLoggedIn, nil)
	}
	return session, ok
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
