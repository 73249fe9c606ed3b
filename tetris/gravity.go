package tetris

import "math"

// gravityTable holds fall rates in rows per tick, indexed by level-1, at
// the nominal 60 ticks per second. Levels beyond the table run at its
// last entry.
var gravityTable = [...]float64{
	1.0 / 15, 1.0 / 13, 1.0 / 11, 1.0 / 9, 1.0 / 8,
	1.0 / 7, 1.0 / 6, 1.0 / 5, 1.0 / 4, 1.0 / 3,
	1.0 / 2, 2.0 / 3, 1, 1.5, 2,
}

// gravityInterval converts a level's fall rate into a whole number of
// ticks between one-row falls, never faster than one row per tick.
func gravityInterval(level int) uint64 {
	i := level - 1
	if i < 0 {
		i = 0
	}
	if i >= len(gravityTable) {
		i = len(gravityTable) - 1
	}
	interval := math.Round(1 / gravityTable[i])
	if interval < 1 {
		return 1
	}
	return uint64(interval)
}
