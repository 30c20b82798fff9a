package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	StatusWaiting = "waiting"
	StatusReady   = "ready"
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDrawn   = "drawn"
)

// Game is the persisted snapshot of a match.
type Game struct {
	ID         string     `json:"id"`
	Size       int        `json:"size"`
	Board      [][]string `json:"board"`
	Players    []*Player  `json:"players,omitempty"`
	Moves      []Move     `json:"moves,omitempty"`
	Status     string     `json:"status"`
	LastPlayed string     `json:"last_played,omitempty"`
	Winner     string     `json:"winner,omitempty"`
	Plays      int        `json:"plays"`
}

// NewGame - takes a snapshot of the engine state.
func NewGame(id string, game *tictactoe.Game) *Game {
	snapshot := &Game{
		ID:     id,
		Size:   game.Size(),
		Status: game.State().String(),
		Plays:  game.Plays(),
	}

	for _, row := range game.Cells() {
		cells := make([]string, len(row))
		for i, mark := range row {
			cells[i] = mark.String()
		}
		snapshot.Board = append(snapshot.Board, cells)
	}

	for _, player := range game.Players() {
		snapshot.Players = append(snapshot.Players, &Player{Name: player.Name, Mark: player.Mark.String()})
	}

	for _, move := range game.Moves() {
		snapshot.Moves = append(snapshot.Moves, Move{Player: move.Player, Row: move.Row, Col: move.Col})
	}

	if last, ok := game.LastPlayed(); ok {
		snapshot.LastPlayed = last.Name
	}

	if winner, ok := game.Winner(); ok {
		snapshot.Winner = winner.Name
	}

	return snapshot
}

// Restore - rebuilds the engine by replaying the recorded moves.
func (that *Game) Restore() (*tictactoe.Game, error) {
	players := make([]tictactoe.Player, 0, len(that.Players))
	for _, player := range that.Players {
		mark, err := tictactoe.ParseMark(player.Mark)
		if err != nil {
			return nil, fmt.Errorf("failed to parse mark of %q: %w", player.Name, err)
		}

		players = append(players, tictactoe.Player{Name: player.Name, Mark: mark})
	}

	moves := make([]tictactoe.Move, 0, len(that.Moves))
	for _, move := range that.Moves {
		moves = append(moves, tictactoe.Move{Player: move.Player, Row: move.Row, Col: move.Col})
	}

	game, err := tictactoe.Replay(that.Size, players, moves)
	if err != nil {
		return nil, fmt.Errorf("failed to replay game %s: %w", that.ID, err)
	}

	return game, nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDrawn
}

// Result - the outcome record of a finished game.
func (that *Game) Result(finishedAt time.Time) (*Result, error) {
	if !that.IsFinished() {
		return nil, fmt.Errorf("game %s is %s", that.ID, that.Status)
	}

	result := &Result{
		GameID:     that.ID,
		Size:       that.Size,
		Winner:     that.Winner,
		Plays:      that.Plays,
		FinishedAt: finishedAt.UTC(),
	}

	if len(that.Players) == 2 {
		result.PlayerA = that.Players[0].Name
		result.PlayerB = that.Players[1].Name
	}

	for _, player := range that.Players {
		if player.Name == that.Winner {
			result.WinnerMark = player.Mark
		}
	}

	return result, nil
}
