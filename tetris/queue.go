package tetris

import "math/rand/v2"

// Lookahead is the number of upcoming pieces visible in the preview.
const Lookahead = 3

// PieceQueue deals pieces with the 7-bag rule: a bag is refilled with
// one piece of every kind and drawn down at random, so no kind can stay
// absent for more than 13 consecutive deals. A fixed lookahead window
// of already-dealt pieces is kept for preview display.
type PieceQueue struct {
	rng    *rand.Rand
	bag    []PieceKind
	buffer [Lookahead]PieceKind
}

// NewPieceQueue returns a queue dealing from src. Identical sources deal
// identical sequences; a nil src means an unpredictable seed.
func NewPieceQueue(src rand.Source) *PieceQueue {
	q := &PieceQueue{
		rng: newRand(src),
		bag: make([]PieceKind, 0, KindCount),
	}
	for i := range q.buffer {
		q.buffer[i] = q.draw()
	}
	return q
}

func newRand(src rand.Source) *rand.Rand {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return rand.New(src)
}

// Pop removes and returns the next piece, topping the preview back up
// from the bag.
func (q *PieceQueue) Pop() PieceKind {
	next := q.buffer[0]
	copy(q.buffer[:], q.buffer[1:])
	q.buffer[Lookahead-1] = q.draw()
	return next
}

// Preview returns the upcoming pieces, soonest first, without consuming
// them.
func (q *PieceQueue) Preview() [Lookahead]PieceKind {
	return q.buffer
}

// draw takes a uniformly random piece out of the bag, refilling it with
// all seven kinds whenever it runs empty.
func (q *PieceQueue) draw() PieceKind {
	if len(q.bag) == 0 {
		for k := range PieceKind(KindCount) {
			q.bag = append(q.bag, k)
		}
	}
	i := q.rng.IntN(len(q.bag))
	k := q.bag[i]
	q.bag = append(q.bag[:i], q.bag[i+1:]...)
	return k
}
