package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestMemoryGameRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores independent copies", func(t *testing.T) {
		// Given: a stored game
		repo := NewMemoryGameRepository()
		game := &entity.Game{ID: "123", Size: 3, Status: entity.StatusWaiting}
		require.NoError(t, repo.CreateOrUpdate(ctx, game))

		// When: the caller mutates its copy afterwards
		game.Status = entity.StatusWon

		// Then: the stored game should be unaffected
		stored, err := repo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusWaiting, stored.Status)
	})

	t.Run("Deletes games", func(t *testing.T) {
		repo := NewMemoryGameRepository()
		require.NoError(t, repo.CreateOrUpdate(ctx, &entity.Game{ID: "123"}))

		require.NoError(t, repo.DeleteByID(ctx, "123"))

		_, err := repo.GetByID(ctx, "123")
		require.ErrorIs(t, err, ErrGameNotFound)
		require.ErrorIs(t, repo.DeleteByID(ctx, "123"), ErrGameNotFound)
	})
}
