package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

func newGame(t *testing.T, size int, moves ...tictactoe.Move) *tictactoe.Game {
	t.Helper()

	game, err := tictactoe.New(size)
	require.NoError(t, err)
	require.NoError(t, game.RegisterPlayer("Alice", tictactoe.Cross))
	require.NoError(t, game.RegisterPlayer("Bob", tictactoe.Nought))

	for _, move := range moves {
		_, err = game.Play(move.Player, move.Row, move.Col)
		require.NoError(t, err)
	}

	return game
}

func TestRenderer_Game(t *testing.T) {
	tests := []struct {
		name  string
		moves []tictactoe.Move
	}{
		{
			name: "ongoing",
			moves: []tictactoe.Move{
				{Player: "Alice", Row: 0, Col: 0},
				{Player: "Bob", Row: 1, Col: 1},
				{Player: "Alice", Row: 0, Col: 2},
			},
		},
		{
			name: "won",
			moves: []tictactoe.Move{
				{Player: "Alice", Row: 0, Col: 0},
				{Player: "Bob", Row: 1, Col: 0},
				{Player: "Alice", Row: 0, Col: 1},
				{Player: "Bob", Row: 1, Col: 1},
				{Player: "Alice", Row: 0, Col: 2},
			},
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a game and a plain-text renderer
			game := newGame(t, 3, tt.moves...)
			var buf bytes.Buffer
			renderer := New(&buf, termenv.WithProfile(termenv.Ascii))

			// When: the game is rendered
			require.NoError(t, renderer.Game(game))

			// Then: the output should match the golden file
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestRenderer_Board(t *testing.T) {
	t.Run("Wide indexes stay aligned", func(t *testing.T) {
		game := newGame(t, 11, tictactoe.Move{Player: "Alice", Row: 10, Col: 10})
		var buf bytes.Buffer

		require.NoError(t, New(&buf, termenv.WithProfile(termenv.Ascii)).Board(game.Cells()))

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 12)
		for _, line := range lines {
			assert.Len(t, line, 2+11*3)
		}
		assert.True(t, strings.HasSuffix(lines[0], " 10"))
		assert.Equal(t, "10", lines[11][:2])
		assert.True(t, strings.HasSuffix(lines[11], "  X"))
	})

	t.Run("Colour profiles add escape sequences", func(t *testing.T) {
		game := newGame(t, 3, tictactoe.Move{Player: "Alice", Row: 0, Col: 0})
		var buf bytes.Buffer

		require.NoError(t, New(&buf, termenv.WithProfile(termenv.ANSI)).Board(game.Cells()))

		assert.Contains(t, buf.String(), "\x1b[")
	})
}

func TestStatus(t *testing.T) {
	waiting, err := tictactoe.New(3)
	require.NoError(t, err)

	drawn := newGame(t, 3,
		tictactoe.Move{Player: "Alice", Row: 0, Col: 0},
		tictactoe.Move{Player: "Bob", Row: 0, Col: 1},
		tictactoe.Move{Player: "Alice", Row: 0, Col: 2},
		tictactoe.Move{Player: "Bob", Row: 1, Col: 1},
		tictactoe.Move{Player: "Alice", Row: 1, Col: 0},
		tictactoe.Move{Player: "Bob", Row: 1, Col: 2},
		tictactoe.Move{Player: "Alice", Row: 2, Col: 1},
		tictactoe.Move{Player: "Bob", Row: 2, Col: 0},
		tictactoe.Move{Player: "Alice", Row: 2, Col: 2},
	)

	tests := []struct {
		name     string
		game     *tictactoe.Game
		expected string
	}{
		{"Waiting", waiting, "waiting for players"},
		{"Ready", newGame(t, 3), "Alice (X) vs Bob (O)"},
		{"Bob to move", newGame(t, 3, tictactoe.Move{Player: "Alice", Row: 0, Col: 0}), "Bob (O) to move"},
		{"Alice to move after Bob opened", newGame(t, 3, tictactoe.Move{Player: "Bob", Row: 0, Col: 0}), "Alice (X) to move"},
		{"Draw", drawn, "draw after 9 plays"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Status(tt.game))
		})
	}
}

func TestNext(t *testing.T) {
	// Given: a ready game with nought registered first
	game, err := tictactoe.New(3)
	require.NoError(t, err)
	require.NoError(t, game.RegisterPlayer("Bob", tictactoe.Nought))
	require.NoError(t, game.RegisterPlayer("Alice", tictactoe.Cross))

	// Then: cross is suggested to open
	assert.Equal(t, "Alice", Next(game).Name)
}
