package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	crossColor  = "1"
	noughtColor = "4"
	emptyCell   = "."
)

// Renderer draws games for a terminal, styled for whatever profile the output supports.
type Renderer struct {
	out *termenv.Output
}

func New(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

// Game - writes the board followed by a status line.
func (that *Renderer) Game(game *tictactoe.Game) error {
	if err := that.Board(game.Cells()); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(that.out, Status(game)); err != nil {
		return fmt.Errorf("failed to write status: %w", err)
	}

	return nil
}

// Board - writes the grid with row and column indexes.
func (that *Renderer) Board(cells [][]tictactoe.Mark) error {
	width := len(strconv.Itoa(len(cells) - 1))

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width))
	for col := range cells {
		fmt.Fprintf(&sb, " %*d", width, col)
	}
	sb.WriteString("\n")

	for row, line := range cells {
		fmt.Fprintf(&sb, "%*d", width, row)
		for _, mark := range line {
			sb.WriteString(" ")
			sb.WriteString(strings.Repeat(" ", width-1))
			sb.WriteString(that.cell(mark))
		}
		sb.WriteString("\n")
	}

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *Renderer) cell(mark tictactoe.Mark) string {
	switch mark {
	case tictactoe.Cross:
		return that.out.String(mark.String()).Foreground(that.out.Color(crossColor)).Bold().String()
	case tictactoe.Nought:
		return that.out.String(mark.String()).Foreground(that.out.Color(noughtColor)).Bold().String()
	default:
		return that.out.String(emptyCell).Faint().String()
	}
}

// Status - one line describing where the game stands.
func Status(game *tictactoe.Game) string {
	switch game.State() {
	case tictactoe.StateAwaitingPlayers:
		return "waiting for players"
	case tictactoe.StateReady:
		a, _ := game.PlayerA()
		b, _ := game.PlayerB()
		return fmt.Sprintf("%s vs %s", describe(a), describe(b))
	case tictactoe.StateInProgress:
		return describe(Next(game)) + " to move"
	case tictactoe.StateWon:
		winner, _ := game.Winner()
		return fmt.Sprintf("%s wins after %d plays", describe(winner), game.Plays())
	case tictactoe.StateDrawn:
		return fmt.Sprintf("draw after %d plays", game.Plays())
	default:
		return game.State().String()
	}
}

// Next - the player expected to move. Before the first move either may start,
// so cross is suggested.
func Next(game *tictactoe.Game) tictactoe.Player {
	players := game.Players()

	last, ok := game.LastPlayed()
	if !ok {
		for _, player := range players {
			if player.Mark == tictactoe.Cross {
				return player
			}
		}
	}

	for _, player := range players {
		if player.Name != last.Name {
			return player
		}
	}

	return tictactoe.Player{}
}

func describe(player tictactoe.Player) string {
	return fmt.Sprintf("%s (%s)", player.Name, player.Mark)
}
