package tetris

import "fmt"

// Width and Height are the fixed playfield dimensions, in cells.
const (
	Width  = 10
	Height = 20
)

// Cell is one playfield cell. Kind is meaningful only while Filled.
type Cell struct {
	Kind   PieceKind
	Filled bool
}

// Board is the settled playfield, addressed board[y][x] with (0, 0) at
// the top-left and y increasing downward. The zero value is empty.
type Board [Height][Width]Cell

// Cell returns the cell at (x, y). Coordinates must be on the board.
func (b *Board) Cell(x, y int) Cell {
	return b[y][x]
}

// Filled reports whether the cell at (x, y) is occupied.
func (b *Board) Filled(x, y int) bool {
	return b[y][x].Filled
}

// Intersects reports whether mask m, placed with its top-left corner at
// (x, y), would leave the playfield or overlap an occupied cell. Every
// collision question in the engine goes through this test: spawn
// validity, movement, rotation kicks, ground contact, ghost projection
// and hard-drop distance.
func (b *Board) Intersects(m Mask, x, y int) bool {
	for my := range MaskSize {
		for mx := range MaskSize {
			if !m[my][mx] {
				continue
			}
			bx, by := x+mx, y+my
			if bx < 0 || bx >= Width || by < 0 || by >= Height {
				return true
			}
			if b[by][bx].Filled {
				return true
			}
		}
	}
	return false
}

// print writes the mask's cells onto the board as kind. The position
// must have been cleared by Intersects first; printing over an occupied
// cell means the board is corrupt and panics rather than play on.
func (b *Board) print(m Mask, kind PieceKind, x, y int) {
	for mx, my := range m.Cells() {
		bx, by := x+mx, y+my
		if b[by][bx].Filled {
			panic(fmt.Sprintf("tetris: lock over occupied cell (%d, %d)", bx, by))
		}
		b[by][bx] = Cell{Kind: kind, Filled: true}
	}
}

// compact removes every completely filled row and drops the rows above
// it, returning how many rows were removed. The scan runs bottom to top,
// shifting each surviving row down by the count of full rows found
// beneath it, then clearing the vacated rows at the top.
func (b *Board) compact() int {
	cleared := 0
	for y := Height - 1; y >= 0; y-- {
		if b.rowFull(y) {
			cleared++
			continue
		}
		if cleared > 0 {
			b[y+cleared] = b[y]
		}
	}
	for y := range cleared {
		b[y] = [Width]Cell{}
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for x := range Width {
		if !b[y][x].Filled {
			return false
		}
	}
	return true
}
