package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// MinSize is the smallest board on which a line of three fits.
const MinSize = 3

// maxCells bounds the grid so that every cell is addressable on any platform.
const maxCells = math.MaxInt32

// Board is an N×N grid of marks.
type Board struct {
	size  int
	cells []Mark
}

// NewBoard - creates an empty board of the given size.
func NewBoard(size int) (*Board, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: board size %d is less than %d", apperror.ErrInvalidConfiguration, size, MinSize)
	}

	if size > maxCells/size {
		return nil, fmt.Errorf("%w: board size %d is too large", apperror.ErrInvalidConfiguration, size)
	}

	return &Board{
		size:  size,
		cells: make([]Mark, size*size),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

// IsInBounds - reports whether both coordinates lie in [0, size).
func (that *Board) IsInBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

// MarkAt - reads a single cell.
func (that *Board) MarkAt(row, col int) (Mark, error) {
	if !that.IsInBounds(row, col) {
		return Empty, fmt.Errorf("%w: row %d col %d", apperror.ErrOutOfBounds, row, col)
	}

	return that.cells[row*that.size+col], nil
}

// Place - puts a cross or a nought into an empty cell.
func (that *Board) Place(row, col int, mark Mark) error {
	if mark != Cross && mark != Nought {
		return fmt.Errorf("%w: only cross or nought can be placed", apperror.ErrInvalidArgument)
	}

	if !that.IsInBounds(row, col) {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrOutOfBounds, row, col)
	}

	idx := row*that.size + col
	if that.cells[idx] != Empty {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrCellOccupied, row, col)
	}

	that.cells[idx] = mark

	return nil
}

// Rows - returns a copy of the grid, one slice per row.
func (that *Board) Rows() [][]Mark {
	rows := make([][]Mark, that.size)
	for row := range rows {
		rows[row] = make([]Mark, that.size)
		copy(rows[row], that.cells[row*that.size:(row+1)*that.size])
	}

	return rows
}
