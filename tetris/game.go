package tetris

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// The mask's top-left corner spawns horizontally centered on the top
// row.
const (
	spawnX = Width/2 - 2
	spawnY = 0
)

// scoreTable maps rows cleared in one compaction to base points, before
// the level multiplier.
var scoreTable = [...]int{0, 40, 100, 300, 1200}

// ErrNoActivePiece is returned by control operations invoked while no
// piece is falling, which a correctly written driver never does: a piece
// is in play from the first Iterate until the game ends.
var ErrNoActivePiece = errors.New("tetris: no active falling piece")

// GameOverError is the terminal outcome of a game, raised when a spawn
// position is already blocked. It carries the final tallies.
type GameOverError struct {
	Points int
	Level  int
	Lines  int
}

func (e *GameOverError) Error() string {
	return fmt.Sprintf("tetris: game over with %d points at level %d (%d lines)",
		e.Points, e.Level, e.Lines)
}

// Game is one run of the falling-block game on a 10x20 board. Drivers
// apply control operations and then Iterate once per frame, nominally 60
// ticks per second; everything else is read through accessors that
// return copies. A Game is not safe for concurrent use.
type Game struct {
	pieces  *PieceSet
	board   Board
	queue   *PieceQueue
	falling *FallingPiece

	hold    PieceKind
	hasHold bool
	canHold bool

	tick   uint64
	points int
	lines  int
	locked int
	holds  int
	drops  int
	over   *GameOverError
}

// NewGame starts a fresh game dealing pieces from src. A nil pieces uses
// DefaultPieces; a nil src means an unpredictable seed, while identical
// sources and identical operation sequences replay identical games.
func NewGame(pieces *PieceSet, src rand.Source) *Game {
	if pieces == nil {
		pieces = DefaultPieces()
	}
	return &Game{
		pieces:  pieces,
		queue:   NewPieceQueue(src),
		canHold: true,
	}
}

// Iterate advances the game one tick. In order: rows completed by a
// previously locked piece are compacted and scored; then, on beats set
// by the level's gravity interval, the active piece falls one row,
// counts down its lock delay, or locks and is replaced by the next
// spawn. The first beat of a fresh game performs the first spawn.
//
// Iterate returns a *GameOverError when a spawn is blocked; the game is
// then over and every later mutating call returns the same outcome.
func (g *Game) Iterate() error {
	if g.over != nil {
		return g.over
	}

	g.score(g.board.compact())

	var err error
	if g.tick%gravityInterval(g.Level()) == 0 {
		switch {
		case g.falling == nil:
			err = g.spawn(g.queue.Pop())
		case !g.falling.grounded(&g.board):
			g.falling.y++
		case g.falling.lockDelay == 0:
			err = g.lock()
		default:
			g.falling.lockDelay--
		}
	}

	g.tick++
	return err
}

// Move offsets the active piece by (dx, dy) if the destination is
// clear; a blocked move changes nothing and is not an error. Moving a
// piece whose lock countdown has started restores the countdown while
// the piece's reset budget lasts.
func (g *Game) Move(dx, dy int) error {
	if err := g.needPiece(); err != nil {
		return err
	}
	f := g.falling
	if g.board.Intersects(f.mask, f.x+dx, f.y+dy) {
		return nil
	}
	f.x += dx
	f.y += dy
	f.resetLockDelay()
	return nil
}

// kickOffsets are tried in order when a rotated mask collides where the
// piece stands: in place first, then one and two cells up, down, left
// and right. The first clear offset wins.
var kickOffsets = [...][2]int{
	{0, 0},
	{0, -1}, {0, -2},
	{0, 1}, {0, 2},
	{-1, 0}, {-2, 0},
	{1, 0}, {2, 0},
}

// Rotate turns the active piece delta quarter-turns clockwise (negative
// delta for counter-clockwise), nudging it along kickOffsets if the
// turned mask does not fit in place. If no offset fits, the piece is
// left exactly as it was. Like Move, a successful rotation restores a
// started lock countdown while the reset budget lasts.
func (g *Game) Rotate(delta int) error {
	if err := g.needPiece(); err != nil {
		return err
	}
	f := g.falling
	rot := ((f.rotation+delta)%RotationCount + RotationCount) % RotationCount
	m := g.pieces.Mask(f.kind, rot)
	for _, k := range kickOffsets {
		if g.board.Intersects(m, f.x+k[0], f.y+k[1]) {
			continue
		}
		f.x += k[0]
		f.y += k[1]
		f.rotation = rot
		f.mask = m
		f.resetLockDelay()
		return nil
	}
	return nil
}

// HardDrop sends the active piece straight down to its rest position,
// awards one point per row travelled plus one, and locks it on the spot,
// skipping any remaining lock delay. The follow-up spawn happens
// immediately and can end the game.
func (g *Game) HardDrop() error {
	if err := g.needPiece(); err != nil {
		return err
	}
	f := g.falling
	dist := 0
	for !g.board.Intersects(f.mask, f.x, f.y+dist+1) {
		dist++
	}
	f.y += dist
	g.points += dist + 1
	g.drops++
	return g.lock()
}

// SwitchHold stashes the active piece and brings in the previously held
// one, or the next queue piece when the hold slot is still empty. The
// swap is allowed once per piece; further attempts before the next lock
// change nothing. The incoming piece spawns at the usual position and
// can end the game like any other spawn.
func (g *Game) SwitchHold() error {
	if err := g.needPiece(); err != nil {
		return err
	}
	if !g.canHold {
		return nil
	}
	g.canHold = false
	g.holds++

	stashed := g.falling.kind
	g.falling = nil

	var next PieceKind
	if g.hasHold {
		next = g.hold
	} else {
		next = g.queue.Pop()
	}
	g.hold = stashed
	g.hasHold = true
	return g.spawn(next)
}

// needPiece guards the control operations: a finished game returns its
// stored outcome, and a missing active piece is a driver defect reported
// as ErrNoActivePiece.
func (g *Game) needPiece() error {
	if g.over != nil {
		return g.over
	}
	if g.falling == nil {
		return ErrNoActivePiece
	}
	return nil
}

// spawn activates kind at the spawn position, or ends the game when the
// position is already blocked.
func (g *Game) spawn(kind PieceKind) error {
	m := g.pieces.Mask(kind, 0)
	if g.board.Intersects(m, spawnX, spawnY) {
		g.falling = nil
		g.over = &GameOverError{Points: g.points, Level: g.Level(), Lines: g.lines}
		return g.over
	}
	g.falling = newFallingPiece(kind, m, spawnX, spawnY)
	return nil
}

// lock prints the active piece onto the board, re-arms the hold swap,
// and spawns the next piece. Rows the lock completed are scored by the
// next Iterate's compaction.
func (g *Game) lock() error {
	f := g.falling
	g.board.print(f.mask, f.kind, f.x, f.y)
	g.falling = nil
	g.canHold = true
	g.locked++
	return g.spawn(g.queue.Pop())
}

// score awards points for one compaction and adds to the line total.
// The multiplier is the level in effect when the rows were completed,
// so points are added before the total moves. A single piece can never
// complete more than four rows; seeing more means the board is corrupt.
func (g *Game) score(cleared int) {
	if cleared == 0 {
		return
	}
	if cleared >= len(scoreTable) {
		panic(fmt.Sprintf("tetris: %d rows cleared by one lock", cleared))
	}
	g.points += scoreTable[cleared] * g.Level()
	g.lines += cleared
}

// Board returns a copy of the settled playfield, without the active
// piece.
func (g *Game) Board() Board {
	return g.board
}

// Falling returns a copy of the active piece and whether one is in
// play.
func (g *Game) Falling() (FallingPiece, bool) {
	if g.falling == nil {
		return FallingPiece{}, false
	}
	return *g.falling, true
}

// Hold returns the held piece kind and whether the slot is occupied.
func (g *Game) Hold() (PieceKind, bool) {
	return g.hold, g.hasHold
}

// Preview returns the next pieces to spawn, soonest first.
func (g *Game) Preview() [Lookahead]PieceKind {
	return g.queue.Preview()
}

// Points returns the score so far.
func (g *Game) Points() int {
	return g.points
}

// Lines returns the total number of rows cleared.
func (g *Game) Lines() int {
	return g.lines
}

// Level starts at 1 and rises by one for every ten rows cleared.
func (g *Game) Level() int {
	return g.lines/10 + 1
}

// Tick returns the number of completed Iterate calls.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.over != nil
}

// GhostY returns the row at which the active piece would come to rest
// if dropped straight down, for ghost-piece rendering.
func (g *Game) GhostY() (int, bool) {
	f := g.falling
	if f == nil {
		return 0, false
	}
	y := f.y
	for !g.board.Intersects(f.mask, f.x, y+1) {
		y++
	}
	return y, true
}

// Cells flattens the current state into one number per cell, row-major
// from the top-left: 1 for an occupied cell and 0 for an empty one,
// with the active piece included. The layout is stable, sized
// Width*Height, and suits feature vectors as well as plain renderers.
func (g *Game) Cells() []float64 {
	cells := make([]float64, Width*Height)
	for y := range Height {
		for x := range Width {
			if g.board[y][x].Filled {
				cells[y*Width+x] = 1
			}
		}
	}
	if f := g.falling; f != nil {
		for mx, my := range f.mask.Cells() {
			cells[(f.y+my)*Width+(f.x+mx)] = 1
		}
	}
	return cells
}
