package tetris

// Lock-delay tuning. A grounded piece survives LockDelayTicks gravity
// beats before locking, and successful moves or rotations restore the
// countdown at most LockResetBudget times over the piece's life.
const (
	LockDelayTicks  = 5
	LockResetBudget = 10
)

// FallingPiece is the piece currently in play: its kind, the board
// position of its mask's top-left corner, its rotation state, and the
// remaining lock-delay allowance. Coordinates are signed; a piece whose
// occupied cells sit in the middle of its mask legally walks partly off
// the playfield edge.
type FallingPiece struct {
	kind       PieceKind
	x, y       int
	rotation   int
	mask       Mask
	lockDelay  int
	lockResets int
}

func newFallingPiece(kind PieceKind, mask Mask, x, y int) *FallingPiece {
	return &FallingPiece{
		kind:       kind,
		x:          x,
		y:          y,
		mask:       mask,
		lockDelay:  LockDelayTicks,
		lockResets: LockResetBudget,
	}
}

// Kind returns the piece's shape kind.
func (f FallingPiece) Kind() PieceKind {
	return f.kind
}

// Position returns the board coordinates of the mask's top-left corner.
func (f FallingPiece) Position() (x, y int) {
	return f.x, f.y
}

// Rotation returns the current rotation index in [0, RotationCount).
func (f FallingPiece) Rotation() int {
	return f.rotation
}

// Mask returns the mask for the current rotation.
func (f FallingPiece) Mask() Mask {
	return f.mask
}

// LockRatio reports the remaining lock delay as a fraction of its
// starting value, for effects such as flashing a piece that is about to
// settle. An airborne piece reports 1.
func (f FallingPiece) LockRatio() float64 {
	return float64(f.lockDelay) / LockDelayTicks
}

// grounded reports whether the piece is resting on the floor or on a
// filled cell.
func (f *FallingPiece) grounded(b *Board) bool {
	return b.Intersects(f.mask, f.x, f.y+1)
}

// resetLockDelay restores the countdown after a successful move or
// rotation, but only once counting has started and only while the reset
// budget lasts.
func (f *FallingPiece) resetLockDelay() {
	if f.lockDelay < LockDelayTicks && f.lockResets > 0 {
		f.lockDelay = LockDelayTicks
		f.lockResets--
	}
}
