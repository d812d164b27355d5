package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-trip-planner/internal/logger"
	"github.com/sbilibin2017/gw-trip-planner/internal/middlewares"
)

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

// Logouter revokes a session token.
type Logouter interface {
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// NewLogoutHandler returns an HTTP handler that revokes the caller's token.
// @Summary Log out
// @Description Revokes the presented bearer token until it expires.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middlewares.ClaimsFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var expiresAt time.Time
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}

		if err := svc.Logout(r.Context(), claims.ID, expiresAt); err != nil {
			logger.Log.Errorw("failed to log out", "userID", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out successfully"})
	}
}
