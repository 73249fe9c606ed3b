package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
)

func BenchmarkIterate(b *testing.B) {
	g := tetris.NewGame(nil, testSource(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if g.Over() {
			g = tetris.NewGame(nil, testSource(1))
		}
		g.Iterate()
	}
}

func BenchmarkIterateWithDrops(b *testing.B) {
	g := tetris.NewGame(nil, testSource(2))
	g.Iterate()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if g.Over() {
			g = tetris.NewGame(nil, testSource(2))
			g.Iterate()
		}
		g.HardDrop()
		g.Iterate()
	}
}

func BenchmarkIntersects(b *testing.B) {
	var board tetris.Board
	for x := 0; x < tetris.Width; x += 2 {
		for y := tetris.Height / 2; y < tetris.Height; y++ {
			board[y][x] = tetris.Cell{Kind: tetris.PieceI, Filled: true}
		}
	}
	m := tetris.DefaultPieces().Mask(tetris.PieceT, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Intersects(m, i%tetris.Width, i%tetris.Height)
	}
}

func BenchmarkCells(b *testing.B) {
	g := tetris.NewGame(nil, testSource(3))
	g.Iterate()
	for i := 0; i < 5; i++ {
		g.HardDrop()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Cells()
	}
}

func BenchmarkQueuePop(b *testing.B) {
	q := tetris.NewPieceQueue(testSource(4))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.Pop()
	}
}
