package tictactoe

// lineLength is the number of equal marks in a row that wins the game.
const lineLength = 3

type direction struct {
	dr, dc int
}

// compass lists N, NE, E, SE, S, SW, W, NW. The first four are paired with their
// opposites at index+4.
var compass = [8]direction{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// isWinningMove - checks whether the mark at (row, col) completes a line of three.
// Only cells within two steps of the anchor are read, so the cost does not depend on board size.
func isWinningMove(board *Board, row, col int) bool {
	mark, err := board.MarkAt(row, col)
	if err != nil || mark == Empty {
		return false
	}

	// anchor in the middle of the line
	for _, d := range compass[:len(compass)/2] {
		if holds(board, row+d.dr, col+d.dc, mark) && holds(board, row-d.dr, col-d.dc, mark) {
			return true
		}
	}

	// anchor at one end of the line
	for _, d := range compass {
		if holdsRun(board, row, col, d, mark) {
			return true
		}
	}

	return false
}

// holdsRun - checks the lineLength-1 cells following the anchor in direction d.
func holdsRun(board *Board, row, col int, d direction, mark Mark) bool {
	for step := 1; step < lineLength; step++ {
		if !holds(board, row+step*d.dr, col+step*d.dc, mark) {
			return false
		}
	}

	return true
}

func holds(board *Board, row, col int, mark Mark) bool {
	if !board.IsInBounds(row, col) {
		return false
	}

	current, _ := board.MarkAt(row, col)

	return current == mark
}
