package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	owner, err := NewUserWriteRepository(db).Save(ctx, "wisher", "hash", "wisher@example.com")
	require.NoError(t, err)

	writeRepo := NewWishlistWriteRepository(db)
	readRepo := NewWishlistReadRepository(db)

	item, err := writeRepo.Save(ctx, owner.UserID, "taj-mahal", "Taj Mahal")
	require.NoError(t, err)
	assert.Equal(t, owner.UserID, item.UserID)
	assert.Equal(t, "taj-mahal", item.DestinationID)
	assert.Equal(t, "Taj Mahal", item.DestinationName)
	assert.False(t, item.AddedAt.IsZero())

	_, err = writeRepo.Save(ctx, owner.UserID, "hampi", "Hampi")
	require.NoError(t, err)

	t.Run("Duplicate", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, owner.UserID, "taj-mahal", "Taj Mahal")
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	items, err := readRepo.ListByUserID(ctx, owner.UserID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	others, err := readRepo.ListByUserID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, others)
}
