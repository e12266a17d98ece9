package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Wins(t *testing.T) {
	t.Run("Detects every row, column and diagonal", func(t *testing.T) {
		// Given: each of the eight winning lines
		for _, line := range winLines {
			board := Board{}
			for _, cell := range line {
				board.Place(cell[0], cell[1], MarkX)
			}

			// When: checking the line owner
			// Then: X wins and O does not
			assert.True(t, board.Wins(MarkX), "line %v", line)
			assert.False(t, board.Wins(MarkO), "line %v", line)
		}
	})

	t.Run("No win on an empty board", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// Then: neither mark wins
		assert.False(t, board.Wins(MarkX))
		assert.False(t, board.Wins(MarkO))
	})

	t.Run("No win on a mixed line", func(t *testing.T) {
		// Given: a top row occupied by both marks
		board := Board{}
		board.Place(0, 0, MarkX)
		board.Place(0, 1, MarkO)
		board.Place(0, 2, MarkX)

		// Then: neither mark wins
		assert.False(t, board.Wins(MarkX))
		assert.False(t, board.Wins(MarkO))
	})

	t.Run("No win on a full drawn board", func(t *testing.T) {
		// Given: a full board without three in a line
		board := Board{
			{MarkX, MarkO, MarkX},
			{MarkX, MarkO, MarkO},
			{MarkO, MarkX, MarkX},
		}

		// Then: neither mark wins
		assert.False(t, board.Wins(MarkX))
		assert.False(t, board.Wins(MarkO))
	})
}

func TestBoard_PlaceAndAt(t *testing.T) {
	// Given: an empty board
	board := Board{}
	require.Equal(t, EmptyCell, board.At(1, 2))

	// When: placing a mark
	board.Place(1, 2, MarkO)

	// Then: the cell holds the mark and the filled count reflects it
	assert.Equal(t, MarkO, board.At(1, 2))
	assert.Equal(t, 1, board.FilledCells())
}

func TestInBounds(t *testing.T) {
	assert.True(t, InBounds(0, 0))
	assert.True(t, InBounds(2, 2))
	assert.False(t, InBounds(3, 0))
	assert.False(t, InBounds(0, 3))
	assert.False(t, InBounds(-1, 1))
	assert.False(t, InBounds(1, -1))
}
