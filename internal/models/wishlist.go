package models

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItemDB is a destination a user has saved for later.
type WishlistItemDB struct {
	WishlistItemID  uuid.UUID `json:"id" db:"wishlist_item_id"`
	UserID          uuid.UUID `json:"userId" db:"user_id"`
	DestinationID   string    `json:"destinationId" db:"destination_id"`
	DestinationName string    `json:"destinationName" db:"destination_name"`
	AddedAt         time.Time `json:"addedAt" db:"added_at"`
}
