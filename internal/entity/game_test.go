package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

func playedGame(t *testing.T, moves ...tictactoe.Move) *tictactoe.Game {
	t.Helper()

	game, err := tictactoe.New(3)
	require.NoError(t, err)
	require.NoError(t, game.RegisterPlayer("Alice", tictactoe.Cross))
	require.NoError(t, game.RegisterPlayer("Bob", tictactoe.Nought))

	for _, move := range moves {
		_, err = game.Play(move.Player, move.Row, move.Col)
		require.NoError(t, err)
	}

	return game
}

func TestNewGame(t *testing.T) {
	// Given: a game with two moves
	game := playedGame(t, tictactoe.Move{Player: "Alice", Row: 0, Col: 0}, tictactoe.Move{Player: "Bob", Row: 1, Col: 2})

	// When: a snapshot is taken
	snapshot := NewGame("123", game)

	// Then: the snapshot should reflect the engine state
	expected := &Game{
		ID:   "123",
		Size: 3,
		Board: [][]string{
			{"X", "", ""},
			{"", "", "O"},
			{"", "", ""},
		},
		Players: []*Player{
			{Name: "Alice", Mark: "X"},
			{Name: "Bob", Mark: "O"},
		},
		Moves: []Move{
			{Player: "Alice", Row: 0, Col: 0},
			{Player: "Bob", Row: 1, Col: 2},
		},
		Status:     StatusOngoing,
		LastPlayed: "Bob",
		Plays:      2,
	}

	require.Equal(t, expected, snapshot)
}

func TestGame_Restore(t *testing.T) {
	t.Run("Restores a game in progress", func(t *testing.T) {
		// Given: a snapshot of a game in progress
		game := playedGame(t, tictactoe.Move{Player: "Alice", Row: 0, Col: 0})
		snapshot := NewGame("123", game)

		// When: the snapshot is restored
		restored, err := snapshot.Restore()
		require.NoError(t, err)

		// Then: the restored engine should continue from the same state
		assert.Equal(t, game.Cells(), restored.Cells())

		won, err := restored.Play("Bob", 1, 1)
		require.NoError(t, err)
		assert.False(t, won)
	})

	t.Run("Restores a waiting game", func(t *testing.T) {
		snapshot := &Game{ID: "1", Size: 4, Status: StatusWaiting}

		restored, err := snapshot.Restore()

		require.NoError(t, err)
		assert.Equal(t, 4, restored.Size())
		assert.Equal(t, tictactoe.StateAwaitingPlayers, restored.State())
	})

	t.Run("Error on corrupted mark", func(t *testing.T) {
		snapshot := &Game{ID: "1", Size: 3, Players: []*Player{{Name: "Alice", Mark: "?"}}}

		_, err := snapshot.Restore()

		require.Error(t, err)
	})
}

func TestGame_Result(t *testing.T) {
	finishedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Returns the winner", func(t *testing.T) {
		// Given: a won game
		game := playedGame(t,
			tictactoe.Move{Player: "Alice", Row: 0, Col: 0},
			tictactoe.Move{Player: "Bob", Row: 1, Col: 0},
			tictactoe.Move{Player: "Alice", Row: 0, Col: 1},
			tictactoe.Move{Player: "Bob", Row: 1, Col: 1},
			tictactoe.Move{Player: "Alice", Row: 0, Col: 2},
		)
		snapshot := NewGame("123", game)
		require.Equal(t, StatusWon, snapshot.Status)

		// When: the result is built
		result, err := snapshot.Result(finishedAt)
		require.NoError(t, err)

		// Then: it should name Alice as the winner
		expected := &Result{
			GameID:     "123",
			Size:       3,
			PlayerA:    "Alice",
			PlayerB:    "Bob",
			Winner:     "Alice",
			WinnerMark: "X",
			Plays:      5,
			FinishedAt: finishedAt,
		}
		assert.Equal(t, expected, result)
		assert.False(t, result.IsDraw())
	})

	t.Run("Error on unfinished game", func(t *testing.T) {
		snapshot := &Game{ID: "1", Status: StatusOngoing}

		result, err := snapshot.Result(finishedAt)

		require.Error(t, err)
		assert.Nil(t, result)
	})
}
