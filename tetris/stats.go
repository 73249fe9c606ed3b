package tetris

// Stats is a point-in-time summary of a game, cheap to copy out for
// inspection overlays and soak reports.
type Stats struct {
	Points int
	Level  int
	Lines  int
	Ticks  uint64
	Pieces int
	Holds  int
	Drops  int
	Over   bool
}

// Stats returns the current tallies: score, progress, and counts of
// locked pieces, hold swaps and hard drops.
func (g *Game) Stats() Stats {
	return Stats{
		Points: g.points,
		Level:  g.Level(),
		Lines:  g.lines,
		Ticks:  g.tick,
		Pieces: g.locked,
		Holds:  g.holds,
		Drops:  g.drops,
		Over:   g.over != nil,
	}
}
