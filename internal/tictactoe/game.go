package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Player is an immutable registered participant.
type Player struct {
	Name string
	Mark Mark
}

// Move is one successful play.
type Move struct {
	Player string
	Row    int
	Col    int
}

// State is the lifecycle stage of a game.
type State int

const (
	StateAwaitingPlayers State = iota
	StateReady
	StateInProgress
	StateWon
	StateDrawn
)

func (s State) String() string {
	switch s {
	case StateAwaitingPlayers:
		return "waiting"
	case StateReady:
		return "ready"
	case StateInProgress:
		return "ongoing"
	case StateWon:
		return "won"
	case StateDrawn:
		return "drawn"
	default:
		return "unknown"
	}
}

// rosterState tracks registration progress; slots beyond it are unset.
type rosterState int

const (
	noPlayers rosterState = iota
	onePlayer
	twoPlayers
)

type roster struct {
	state   rosterState
	players [2]Player
}

// Game is the rules engine for one match. It is not safe for concurrent use:
// the host serialises calls per game.
type Game struct {
	board  *Board
	roster roster

	lastPlayed *Player
	winner     *Player
	plays      int
	ended      bool
	moves      []Move
}

// New - creates a game on an empty size×size board.
func New(size int) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	return &Game{board: board}, nil
}

// Replay - rebuilds a game by registering the players and re-applying every move.
func Replay(size int, players []Player, moves []Move) (*Game, error) {
	game, err := New(size)
	if err != nil {
		return nil, err
	}

	for _, player := range players {
		if err = game.RegisterPlayer(player.Name, player.Mark); err != nil {
			return nil, fmt.Errorf("failed to register player %q: %w", player.Name, err)
		}
	}

	for i, move := range moves {
		if _, err = game.Play(move.Player, move.Row, move.Col); err != nil {
			return nil, fmt.Errorf("failed to replay move %d: %w", i, err)
		}
	}

	return game, nil
}

// RegisterPlayer - adds the next player to the roster.
func (that *Game) RegisterPlayer(name string, mark Mark) error {
	if name == "" {
		return fmt.Errorf("%w: player name is empty", apperror.ErrInvalidArgument)
	}

	if mark != Cross && mark != Nought {
		return fmt.Errorf("%w: player mark must be cross or nought", apperror.ErrInvalidArgument)
	}

	switch that.roster.state {
	case noPlayers:
		that.roster.players[0] = Player{Name: name, Mark: mark}
		that.roster.state = onePlayer
	case onePlayer:
		first := that.roster.players[0]
		if first.Name == name {
			return fmt.Errorf("%w: %q", apperror.ErrDuplicateName, name)
		}

		if first.Mark == mark {
			return fmt.Errorf("%w: %s", apperror.ErrDuplicateMark, mark)
		}

		that.roster.players[1] = Player{Name: name, Mark: mark}
		that.roster.state = twoPlayers
	default:
		return apperror.ErrRosterFull
	}

	return nil
}

// Play - applies a move for the named player and reports whether it won the game.
// A failed call leaves the game untouched.
func (that *Game) Play(name string, row, col int) (bool, error) {
	if that.ended {
		return false, apperror.ErrGameEnded
	}

	if name == "" {
		return false, fmt.Errorf("%w: player name is empty", apperror.ErrInvalidArgument)
	}

	if that.roster.state != twoPlayers {
		return false, apperror.ErrPlayersNotReady
	}

	player, ok := that.playerByName(name)
	if !ok {
		return false, fmt.Errorf("%w: %q", apperror.ErrUnknownPlayer, name)
	}

	if that.lastPlayed != nil && that.lastPlayed.Name == name {
		return false, apperror.ErrNotYourTurn
	}

	if err := that.board.Place(row, col, player.Mark); err != nil {
		return false, err
	}

	that.plays++
	that.lastPlayed = &player
	that.moves = append(that.moves, Move{Player: name, Row: row, Col: col})

	won := isWinningMove(that.board, row, col)

	switch {
	case won:
		that.winner = &player
		that.ended = true
	case that.plays == that.board.Size()*that.board.Size():
		that.ended = true
	}

	return won, nil
}

func (that *Game) playerByName(name string) (Player, bool) {
	for i := 0; i < int(that.roster.state); i++ {
		if that.roster.players[i].Name == name {
			return that.roster.players[i], true
		}
	}

	return Player{}, false
}

func (that *Game) Size() int {
	return that.board.Size()
}

func (that *Game) Plays() int {
	return that.plays
}

func (that *Game) HasEnded() bool {
	return that.ended
}

// PlayerA - the first registered player, if any.
func (that *Game) PlayerA() (Player, bool) {
	if that.roster.state < onePlayer {
		return Player{}, false
	}

	return that.roster.players[0], true
}

// PlayerB - the second registered player, if any.
func (that *Game) PlayerB() (Player, bool) {
	if that.roster.state < twoPlayers {
		return Player{}, false
	}

	return that.roster.players[1], true
}

// Players - registered players in registration order.
func (that *Game) Players() []Player {
	players := make([]Player, int(that.roster.state))
	copy(players, that.roster.players[:that.roster.state])

	return players
}

// Winner - the player who completed a line; unset on a draw or an unfinished game.
func (that *Game) Winner() (Player, bool) {
	if that.winner == nil {
		return Player{}, false
	}

	return *that.winner, true
}

func (that *Game) LastPlayed() (Player, bool) {
	if that.lastPlayed == nil {
		return Player{}, false
	}

	return *that.lastPlayed, true
}

func (that *Game) MarkAt(row, col int) (Mark, error) {
	return that.board.MarkAt(row, col)
}

// Cells - a copy of the board, one slice per row.
func (that *Game) Cells() [][]Mark {
	return that.board.Rows()
}

// Moves - a copy of the successful plays in order.
func (that *Game) Moves() []Move {
	moves := make([]Move, len(that.moves))
	copy(moves, that.moves)

	return moves
}

func (that *Game) State() State {
	switch {
	case that.winner != nil:
		return StateWon
	case that.ended:
		return StateDrawn
	case that.plays > 0:
		return StateInProgress
	case that.roster.state == twoPlayers:
		return StateReady
	default:
		return StateAwaitingPlayers
	}
}
