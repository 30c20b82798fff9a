package apperror

import "errors"

// rules violations raised by the game engine.
var (
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrDuplicateName        = errors.New("player name is already taken")
	ErrDuplicateMark        = errors.New("player mark is already taken")
	ErrRosterFull           = errors.New("both players are already registered")
	ErrPlayersNotReady      = errors.New("both players must be registered before playing")
	ErrGameEnded            = errors.New("game has already ended")
	ErrUnknownPlayer        = errors.New("unknown player")
	ErrNotYourTurn          = errors.New("it's not your turn")
	ErrOutOfBounds          = errors.New("cell is out of bounds")
	ErrCellOccupied         = errors.New("cell is already occupied")
)

// host errors.
var (
	ErrNotFound = errors.New("not found")
)
