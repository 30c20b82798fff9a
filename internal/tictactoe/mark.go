package tictactoe

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Mark is the content of a single cell.
type Mark int

const (
	Empty Mark = iota
	Cross
	Nought
)

func (m Mark) String() string {
	switch m {
	case Cross:
		return "X"
	case Nought:
		return "O"
	default:
		return ""
	}
}

// ParseMark - converts a transport representation of a mark into a Mark.
func ParseMark(value string) (Mark, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "x", "cross":
		return Cross, nil
	case "o", "nought":
		return Nought, nil
	default:
		return Empty, fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidArgument, value)
	}
}
