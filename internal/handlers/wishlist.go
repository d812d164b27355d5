package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-planner/internal/logger"
	"github.com/sbilibin2017/gw-trip-planner/internal/middlewares"
	"github.com/sbilibin2017/gw-trip-planner/internal/models"
	"github.com/sbilibin2017/gw-trip-planner/internal/services"
)

//go:generate mockgen -source=wishlist.go -destination=wishlist_mock.go -package=handlers

// WishlistAdder saves a destination to a wishlist.
type WishlistAdder interface {
	Add(ctx context.Context, userID uuid.UUID, destinationID, destinationName string) (*models.WishlistItemDB, error)
}

// WishlistLister lists a wishlist.
type WishlistLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.WishlistItemDB, error)
}

// AddWishlistRequest represents the JSON body for adding a destination
// swagger:model AddWishlistRequest
type AddWishlistRequest struct {
	// Destination identifier
	// required: true
	// default: goa
	DestinationID string `json:"destinationId"`

	// Destination display name
	// required: true
	// default: Goa
	DestinationName string `json:"destinationName"`
}

// AddWishlistResponse represents a saved wishlist item
// swagger:model AddWishlistResponse
type AddWishlistResponse struct {
	Message string                 `json:"message"`
	Item    *models.WishlistItemDB `json:"item"`
}

// ListWishlistResponse lists wishlist items; Count feeds the header badge
// swagger:model ListWishlistResponse
type ListWishlistResponse struct {
	Items []models.WishlistItemDB `json:"items"`
	Count int                     `json:"count"`
}

// NewAddWishlistHandler returns an HTTP handler adding a wishlist item.
// @Summary Add to wishlist
// @Tags wishlist
// @Accept json
// @Produce json
// @Param request body handlers.AddWishlistRequest true "Destination"
// @Success 201 {object} handlers.AddWishlistResponse "Added"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Already in wishlist"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /wishlist [post]
// @Security BearerAuth
func NewAddWishlistHandler(svc WishlistAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req AddWishlistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item, err := svc.Add(ctx, userID, req.DestinationID, req.DestinationName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidWishlistItem):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, services.ErrWishlistDuplicate):
				writeError(w, http.StatusConflict, err.Error())
			default:
				logger.Log.Errorw("failed to add wishlist item", "userID", userID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, AddWishlistResponse{
			Message: "Destination added to wishlist",
			Item:    item,
		})
	}
}

// NewListWishlistHandler returns an HTTP handler listing the wishlist.
// @Summary List wishlist
// @Tags wishlist
// @Produce json
// @Success 200 {object} handlers.ListWishlistResponse "Wishlist"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /wishlist [get]
// @Security BearerAuth
func NewListWishlistHandler(svc WishlistLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		items, err := svc.List(ctx, userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if items == nil {
			items = []models.WishlistItemDB{}
		}

		writeJSON(w, http.StatusOK, ListWishlistResponse{Items: items, Count: len(items)})
	}
}
