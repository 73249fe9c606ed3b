package main

import (
	"context"
	"math/rand/v2"

	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tetris"
)

// driver stands in for a human player during soak runs, issuing weighted
// random control operations each tick. It accumulates clear-size and
// per-kind lock histograms across every game it plays.
type driver struct {
	rng *rand.Rand

	clears *intmap.Map[int64, int64] // rows cleared at once -> count
	locks  *intmap.Map[int64, int64] // piece kind -> locked count
}

func newDriver(seed uint64) *driver {
	return &driver{
		rng:    rand.New(rand.NewPCG(seed, seed)),
		clears: intmap.New[int64, int64](8),
		locks:  intmap.New[int64, int64](tetris.KindCount),
	}
}

// playGame runs one game to its end, checking the deadline every tick.
// The second result is false when the deadline cut the game short.
func (d *driver) playGame(ctx context.Context, g *tetris.Game) (tetris.Stats, bool) {
	for {
		select {
		case <-ctx.Done():
			return g.Stats(), false
		default:
			if err := d.playTick(g); err != nil {
				return g.Stats(), true
			}
		}
	}
}

// playTick issues at most one control operation and advances the game
// one tick, reading locks and clears off the observable state deltas.
func (d *driver) playTick(g *tetris.Game) error {
	d.playOp(g)

	var kind tetris.PieceKind
	hadPiece := false
	if f, ok := g.Falling(); ok {
		kind, hadPiece = f.Kind(), true
	}
	pieces := g.Stats().Pieces
	lines := g.Lines()

	err := g.Iterate()

	if hadPiece && g.Stats().Pieces > pieces {
		d.countLock(kind)
	}
	if cleared := g.Lines() - lines; cleared > 0 {
		d.countClear(cleared)
	}
	return err
}

// playOp picks this tick's control operation. Roughly a quarter of the
// ticks let the piece fall untouched, and hard drops stay rare so games
// last long enough to reach higher gravity.
func (d *driver) playOp(g *tetris.Game) {
	f, ok := g.Falling()
	if !ok {
		return
	}
	pieces := g.Stats().Pieces

	switch d.rng.IntN(12) {
	case 0, 1:
		g.Move(-1, 0)
	case 2, 3:
		g.Move(1, 0)
	case 4:
		g.Rotate(1)
	case 5:
		g.Rotate(-1)
	case 6, 7:
		g.Move(0, 1)
	case 8:
		g.HardDrop()
		if g.Stats().Pieces > pieces {
			d.countLock(f.Kind())
		}
	case 9:
		g.SwitchHold()
	}
}

func (d *driver) countClear(rows int) {
	n, _ := d.clears.Get(int64(rows))
	d.clears.Put(int64(rows), n+1)
}

func (d *driver) countLock(kind tetris.PieceKind) {
	n, _ := d.locks.Get(int64(kind))
	d.locks.Put(int64(kind), n+1)
}
