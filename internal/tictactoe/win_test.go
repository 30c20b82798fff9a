package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFrom builds a board from rows of 'X', 'O' and '.'.
func boardFrom(t *testing.T, rows ...string) *Board {
	t.Helper()

	board, err := NewBoard(len(rows))
	require.NoError(t, err)

	for r, line := range rows {
		require.Len(t, line, len(rows))
		for c, ch := range line {
			switch ch {
			case 'X':
				require.NoError(t, board.Place(r, c, Cross))
			case 'O':
				require.NoError(t, board.Place(r, c, Nought))
			}
		}
	}

	return board
}

func TestIsWinningMove(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		row, col int
		expected bool
	}{
		{"Anchor at the start of a row", []string{"XXX", "...", "..."}, 0, 0, true},
		{"Anchor in the middle of a row", []string{"XXX", "...", "..."}, 0, 1, true},
		{"Anchor at the end of a row", []string{"XXX", "...", "..."}, 0, 2, true},
		{"Column", []string{"O..", "O..", "O.."}, 2, 0, true},
		{"Main diagonal middle", []string{"X..", ".X.", "..X"}, 1, 1, true},
		{"Anti diagonal end", []string{"..O", ".O.", "O.."}, 0, 2, true},
		{"Mixed marks", []string{"XOX", "...", "..."}, 0, 1, false},
		{"Two in a row", []string{"XX.", "...", "..."}, 0, 1, false},
		{"Empty anchor", []string{"...", "...", "..."}, 1, 1, false},
		{"Line away from the anchor on a large board", []string{
			"XXX..",
			".....",
			".....",
			".....",
			"....X",
		}, 4, 4, false},
		{"North-west end on a large board", []string{
			".....",
			".O...",
			"..O..",
			"...O.",
			".....",
		}, 3, 3, true},
		{"South-west end on a large board", []string{
			".....",
			"...X.",
			"..X..",
			".X...",
			".....",
		}, 1, 3, true},
		{"Line must not wrap around edges", []string{
			"....X",
			"XX...",
			".....",
			".....",
			".....",
		}, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a prepared board
			board := boardFrom(t, tt.rows...)

			// When: checking the anchor cell
			won := isWinningMove(board, tt.row, tt.col)

			// Then: the result should match
			assert.Equal(t, tt.expected, won)
		})
	}
}

// hasLineThrough scans every line of three on the board and reports whether one
// exists, and whether one includes (row, col).
func hasLineThrough(board *Board, row, col int) (anywhere, through bool) {
	steps := []direction{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

	for r := 0; r < board.Size(); r++ {
		for c := 0; c < board.Size(); c++ {
			mark, _ := board.MarkAt(r, c)
			if mark == Empty {
				continue
			}

			for _, d := range steps {
				if !holdsRun(board, r, c, d, mark) {
					continue
				}

				anywhere = true
				for i := 0; i < lineLength; i++ {
					if r+i*d.dr == row && c+i*d.dc == col {
						through = true
					}
				}
			}
		}
	}

	return anywhere, through
}

func TestIsWinningMove_MatchesFullScan(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		size := MinSize + rnd.Intn(4)

		game, err := New(size)
		require.NoError(t, err)
		require.NoError(t, game.RegisterPlayer("alice", Cross))
		require.NoError(t, game.RegisterPlayer("bob", Nought))

		names := [2]string{"alice", "bob"}
		order := rnd.Perm(size * size)

		for i, cell := range order {
			row, col := cell/size, cell%size

			won, err := game.Play(names[i%2], row, col)
			require.NoError(t, err)

			anywhere, through := hasLineThrough(game.board, row, col)
			if won {
				assert.True(t, through, "win reported without a line through (%d,%d)", row, col)
				break
			}

			assert.False(t, anywhere, "line left undetected on a %dx%d board", size, size)
			if game.HasEnded() {
				break
			}
		}

		assert.True(t, game.HasEnded())
		assert.LessOrEqual(t, game.Plays(), size*size)
	}
}
