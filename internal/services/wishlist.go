package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-planner/internal/logger"
	"github.com/sbilibin2017/gw-trip-planner/internal/models"
	"github.com/sbilibin2017/gw-trip-planner/internal/repositories"
)

//go:generate mockgen -source=wishlist.go -destination=wishlist_mock.go -package=services

var (
	ErrWishlistDuplicate   = errors.New("destination already in wishlist")
	ErrInvalidWishlistItem = errors.New("destinationId and destinationName are required")
)

// WishlistWriter adds wishlist items.
type WishlistWriter interface {
	Save(ctx context.Context, userID uuid.UUID, destinationID, destinationName string) (*models.WishlistItemDB, error)
}

// WishlistReader lists wishlist items.
type WishlistReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.WishlistItemDB, error)
}

// WishlistService manages saved destinations.
type WishlistService struct {
	writer WishlistWriter
	reader WishlistReader
}

func NewWishlistService(writer WishlistWriter, reader WishlistReader) *WishlistService {
	return &WishlistService{writer: writer, reader: reader}
}

// Add saves a destination to the user's wishlist.
func (s *WishlistService) Add(ctx context.Context, userID uuid.UUID, destinationID, destinationName string) (*models.WishlistItemDB, error) {
	destinationID = strings.TrimSpace(destinationID)
	destinationName = strings.TrimSpace(destinationName)
	if destinationID == "" || destinationName == "" {
		return nil, ErrInvalidWishlistItem
	}

	item, err := s.writer.Save(ctx, userID, destinationID, destinationName)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrWishlistDuplicate
		}
		logger.Log.Errorw("failed to add wishlist item", "userID", userID, "destinationID", destinationID, "error", err)
		return nil, err
	}
	return item, nil
}

// List returns the user's wishlist.
func (s *WishlistService) List(ctx context.Context, userID uuid.UUID) ([]models.WishlistItemDB, error) {
	items, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list wishlist", "userID", userID, "error", err)
		return nil, err
	}
	return items, nil
}
