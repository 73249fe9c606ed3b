package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestBoardIntersects(t *testing.T) {
	// A 2x2 square in the mask's center, so the corner may legally sit
	// one cell outside the field on every side.
	var m tetris.Mask
	m[1][1] = true
	m[1][2] = true
	m[2][1] = true
	m[2][2] = true

	var b tetris.Board
	b[10][4] = tetris.Cell{Kind: tetris.PieceO, Filled: true}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"open space", 3, 3, false},
		{"past the left wall", -2, 3, true},
		{"flush with the left wall", -1, 3, false},
		{"past the right wall", 8, 3, true},
		{"flush with the right wall", 7, 3, false},
		{"above the top", 3, -2, true},
		{"flush with the top", 3, -1, false},
		{"below the floor", 3, 18, true},
		{"resting on the floor", 3, 17, false},
		{"overlapping the stack", 3, 9, true},
		{"beside the stack", 1, 9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Intersects(m, tt.x, tt.y))
		})
	}
}

func TestBoardIntersectsEmptyMask(t *testing.T) {
	var b tetris.Board
	// Only occupied mask cells are tested, so an empty mask fits
	// anywhere, even entirely off the field.
	assert.False(t, b.Intersects(tetris.Mask{}, -100, -100))
}

func TestBoardCellAccess(t *testing.T) {
	var b tetris.Board
	b[5][7] = tetris.Cell{Kind: tetris.PieceT, Filled: true}

	assert.True(t, b.Filled(7, 5))
	assert.Equal(t, tetris.PieceT, b.Cell(7, 5).Kind)
	assert.False(t, b.Filled(0, 0))
	assert.Equal(t, tetris.Cell{}, b.Cell(0, 0))
}
