package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-trip-planner/internal/models"
	"github.com/sbilibin2017/gw-trip-planner/internal/repositories"
	"github.com/stretchr/testify/assert"
)

func TestWishlistService_Add(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockWishlistWriter(ctrl)
	svc := NewWishlistService(writer, nil)

	tests := []struct {
		name     string
		destID   string
		destName string
		setup    func()
		wantErr  error
	}{
		{
			name:     "success",
			destID:   "goa",
			destName: "Goa",
			setup: func() {
				writer.EXPECT().Save(ctx, userID, "goa", "Goa").
					Return(&models.WishlistItemDB{WishlistItemID: uuid.New(), DestinationID: "goa"}, nil)
			},
		},
		{
			name:     "duplicate",
			destID:   "goa",
			destName: "Goa",
			setup: func() {
				writer.EXPECT().Save(ctx, userID, "goa", "Goa").
					Return(nil, fmt.Errorf("insert: %w", repositories.ErrDuplicate))
			},
			wantErr: ErrWishlistDuplicate,
		},
		{
			name:     "storage error",
			destID:   "goa",
			destName: "Goa",
			setup: func() {
				writer.EXPECT().Save(ctx, userID, "goa", "Goa").Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
		{
			name:     "missing destination id",
			destID:   " ",
			destName: "Goa",
			setup:    func() {},
			wantErr:  ErrInvalidWishlistItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			item, err := svc.Add(ctx, userID, tt.destID, tt.destName)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, item)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "goa", item.DestinationID)
			}
		})
	}
}

func TestWishlistService_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockWishlistReader(ctrl)
	svc := NewWishlistService(nil, reader)

	items := []models.WishlistItemDB{{DestinationID: "goa"}, {DestinationID: "hampi"}}
	reader.EXPECT().ListByUserID(ctx, userID).Return(items, nil)

	got, err := svc.List(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}
