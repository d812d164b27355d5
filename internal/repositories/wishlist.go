package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-trip-planner/internal/logger"
	"github.com/sbilibin2017/gw-trip-planner/internal/models"
)

const wishlistColumns = `wishlist_item_id, user_id, destination_id, destination_name, added_at`

type WishlistWriteRepository struct {
	db *sqlx.DB
}

func NewWishlistWriteRepository(db *sqlx.DB) *WishlistWriteRepository {
	return &WishlistWriteRepository{db: db}
}

// Save adds a destination to the user's wishlist. Adding the same
// destination twice yields ErrDuplicate.
func (r *WishlistWriteRepository) Save(ctx context.Context, userID uuid.UUID, destinationID, destinationName string) (*models.WishlistItemDB, error) {
	query := `
		INSERT INTO wishlist_items (wishlist_item_id, user_id, destination_id, destination_name, added_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + wishlistColumns

	var item models.WishlistItemDB
	err := r.db.GetContext(ctx, &item, query, uuid.New(), userID, destinationID, destinationName)

	logger.Log.Infow("query",
		"sql", oneLine(query),
		"args", []any{userID, destinationID, destinationName},
		"result", item.WishlistItemID,
		"error", err,
	)

	if err != nil {
		return nil, mapError(err)
	}
	return &item, nil
}

type WishlistReadRepository struct {
	db *sqlx.DB
}

func NewWishlistReadRepository(db *sqlx.DB) *WishlistReadRepository {
	return &WishlistReadRepository{db: db}
}

// ListByUserID returns the user's wishlist, most recently added first.
func (r *WishlistReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.WishlistItemDB, error) {
	query := `SELECT ` + wishlistColumns + ` FROM wishlist_items WHERE user_id = $1 ORDER BY added_at DESC`

	items := []models.WishlistItemDB{}
	err := r.db.SelectContext(ctx, &items, query, userID)

	logger.Log.Infow("query",
		"sql", oneLine(query),
		"args", []any{userID},
		"result", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return items, nil
}
