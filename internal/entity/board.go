package entity

const (
	EmptyCell = ""

	MarkX = "X"
	MarkO = "O"
)

const (
	WinnerNone     = "NONE"
	WinnerHost     = "HOST"
	WinnerOpponent = "OPPONENT"
)

// winLines are the eight lines that decide a game: three rows, three columns
// and two diagonals, as (x, y) coordinates.
var winLines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a 3x3 grid of cells, row-major. The zero value is an empty board.
type Board [3][3]string

func (that *Board) At(x, y int) string {
	return that[x][y]
}

func (that *Board) Place(x, y int, mark string) {
	that[x][y] = mark
}

// Wins reports whether the given mark occupies all three cells of any line.
func (that *Board) Wins(mark string) bool {
	for _, line := range winLines {
		if that[line[0][0]][line[0][1]] == mark &&
			that[line[1][0]][line[1][1]] == mark &&
			that[line[2][0]][line[2][1]] == mark {
			return true
		}
	}

	return false
}

// FilledCells returns the number of non-empty cells.
func (that *Board) FilledCells() int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != EmptyCell {
				count++
			}
		}
	}

	return count
}

// InBounds reports whether (x, y) addresses a cell on a 3x3 board.
func InBounds(x, y int) bool {
	return x >= 0 && x <= 2 && y >= 0 && y <= 2
}
