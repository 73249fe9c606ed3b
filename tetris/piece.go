package tetris

import (
	"fmt"
	"iter"
)

// PieceKind identifies one of the seven tetromino shapes.
type PieceKind uint8

const (
	PieceI PieceKind = iota
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

const (
	// KindCount is the number of distinct piece kinds.
	KindCount = 7
	// RotationCount is the number of rotation states per kind.
	RotationCount = 4
	// MaskSize is the side length of a rotation mask.
	MaskSize = 4
)

var kindNames = [KindCount]string{"I", "J", "L", "O", "S", "T", "Z"}

var kindColors = [KindCount][3]uint8{
	PieceI: {88, 176, 188},
	PieceJ: {22, 101, 167},
	PieceL: {217, 133, 1},
	PieceO: {235, 214, 1},
	PieceS: {55, 154, 48},
	PieceT: {137, 64, 135},
	PieceZ: {205, 12, 17},
}

// String returns the kind's single-letter name.
func (k PieceKind) String() string {
	if int(k) >= KindCount {
		return fmt.Sprintf("PieceKind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Color returns the kind's display color as an RGB triple. Front-ends
// translate it into whatever color type their renderer uses.
func (k PieceKind) Color() (r, g, b uint8) {
	c := kindColors[k]
	return c[0], c[1], c[2]
}

// Mask is one rotation state of a piece: a 4x4 occupancy grid addressed
// mask[y][x], with y increasing downward like the board itself.
type Mask [MaskSize][MaskSize]bool

// At reports whether the mask cell at (x, y) is occupied. Both
// coordinates must be in [0, MaskSize).
func (m Mask) At(x, y int) bool {
	return m[y][x]
}

// Cells returns an iterator over the (x, y) offsets of the mask's
// occupied cells, in row-major order.
func (m Mask) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y := range MaskSize {
			for x := range MaskSize {
				if m[y][x] && !yield(x, y) {
					return
				}
			}
		}
	}
}

// PieceSet is a complete rotation catalog: four clockwise-ordered masks
// for each of the seven kinds. Sets come from ParsePieceSet or
// DefaultPieces and are immutable once built.
type PieceSet [KindCount][RotationCount]Mask

// Mask returns the mask for kind at the given rotation index. The index
// must already be normalized to [0, RotationCount).
func (p *PieceSet) Mask(kind PieceKind, rotation int) Mask {
	return p[kind][rotation]
}
