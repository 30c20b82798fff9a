package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

func newResultRepository(t *testing.T) ResultRepository {
	t.Helper()

	_, st := suite.NewResults(t)

	return NewResultRepository(st.Results.Connection)
}

func TestResultRepository_FindByPlayer(t *testing.T) {
	ctx := context.Background()
	finishedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Returns results of games the player took part in", func(t *testing.T) {
		// Given: three stored results
		repo := newResultRepository(t)

		results := []*entity.Result{
			{GameID: "g1", Size: 3, PlayerA: "Alice", PlayerB: "Bob", Winner: "Alice", WinnerMark: "X", Plays: 5, FinishedAt: finishedAt},
			{GameID: "g2", Size: 4, PlayerA: "Carol", PlayerB: "Alice", Plays: 16, FinishedAt: finishedAt.Add(time.Minute)},
			{GameID: "g3", Size: 3, PlayerA: "Carol", PlayerB: "Bob", Winner: "Bob", WinnerMark: "O", Plays: 6, FinishedAt: finishedAt},
		}
		for _, result := range results {
			require.NoError(t, repo.Save(ctx, result))
		}

		// When: Alice's results are requested
		found, err := repo.FindByPlayer(ctx, "Alice")
		require.NoError(t, err)

		// Then: only her two games should be returned in finishing order
		require.Len(t, found, 2)
		assert.Equal(t, "g1", found[0].GameID)
		assert.Equal(t, "Alice", found[0].Winner)
		assert.True(t, finishedAt.Equal(found[0].FinishedAt))
		assert.Equal(t, "g2", found[1].GameID)
		assert.True(t, found[1].IsDraw())
		assert.Equal(t, 16, found[1].Plays)
	})

	t.Run("Save replaces an existing result", func(t *testing.T) {
		repo := newResultRepository(t)

		result := &entity.Result{GameID: "g1", Size: 3, PlayerA: "Alice", PlayerB: "Bob", Plays: 9, FinishedAt: finishedAt}
		require.NoError(t, repo.Save(ctx, result))
		require.NoError(t, repo.Save(ctx, result))

		found, err := repo.FindByPlayer(ctx, "Bob")
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("Returns nothing for an unknown player", func(t *testing.T) {
		repo := newResultRepository(t)

		found, err := repo.FindByPlayer(ctx, "Nobody")

		require.NoError(t, err)
		assert.Empty(t, found)
	})
}
