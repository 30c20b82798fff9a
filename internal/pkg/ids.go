package pkg

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// ErrMalformedGameID - no stored game can have this id.
var ErrMalformedGameID = fmt.Errorf("malformed game id: game %w", apperror.ErrNotFound)

// GenerateGameID - generates a unique, time-ordered identifier for a game.
func GenerateGameID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// IsValidGameID - reports whether id was produced by GenerateGameID.
func IsValidGameID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// CheckGameID - returns ErrMalformedGameID unless id was produced by GenerateGameID.
func CheckGameID(id string) error {
	if !IsValidGameID(id) {
		return fmt.Errorf("%w: %q", ErrMalformedGameID, id)
	}

	return nil
}
