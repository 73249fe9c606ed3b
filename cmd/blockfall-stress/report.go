package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Report aggregates a soak run for the text summary printed at the end.
type Report struct {
	// Configuration
	Duration time.Duration
	Games    int
	Seed     uint64

	// Results
	GamesFinished int
	TotalPieces   int
	TotalLines    int
	TotalPoints   int
	TotalTicks    uint64
	BestPoints    int
	MaxLevel      int
	TotalTime     time.Duration
	TicksPerSec   float64
	GameTime      Stats

	Clears []HistogramRow
	Locks  []HistogramRow

	MemMetrics    bool
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// HistogramRow is one bucket of a report histogram.
type HistogramRow struct {
	Label string
	Count int64
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Record folds one game's outcome into the aggregates.
func (r *Report) Record(s tetris.Stats, took time.Duration, finished bool) {
	if finished {
		r.GamesFinished++
	}
	r.TotalPieces += s.Pieces
	r.TotalLines += s.Lines
	r.TotalPoints += s.Points
	r.TotalTicks += s.Ticks
	if s.Points > r.BestPoints {
		r.BestPoints = s.Points
	}
	if s.Level > r.MaxLevel {
		r.MaxLevel = s.Level
	}
	r.GameTime.Samples = append(r.GameTime.Samples, took)
}

// Finalize computes the derived results and renders the driver's
// histograms into report rows.
func (r *Report) Finalize(d *driver) {
	r.GameTime.Finalize()
	if r.TotalTime > 0 {
		r.TicksPerSec = float64(r.TotalTicks) / r.TotalTime.Seconds()
	}

	for rows := int64(1); rows <= 4; rows++ {
		n, _ := d.clears.Get(rows)
		r.Clears = append(r.Clears, HistogramRow{
			Label: fmt.Sprintf("%d rows", rows),
			Count: n,
		})
	}
	for k := range tetris.KindCount {
		n, _ := d.locks.Get(int64(k))
		r.Locks = append(r.Locks, HistogramRow{
			Label: tetris.PieceKind(k).String(),
			Count: n,
		})
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Max Duration:** {{.Duration}}
- **Games Requested:** {{.Games}}
- **Base Seed:** {{.Seed}}

## Results
- **Games Finished:** {{.GamesFinished}}
- **Total Pieces:** {{.TotalPieces}}
- **Total Lines:** {{.TotalLines}}
- **Total Points:** {{.TotalPoints}}
- **Best Game:** {{.BestPoints}} points
- **Max Level:** {{.MaxLevel}}
- **Total Ticks:** {{.TotalTicks}} ({{printf "%.0f" .TicksPerSec}} ticks/sec)
- **Total Test Time:** {{.TotalTime}}
- **Game Time:**
  - **Avg:** {{.GameTime.Avg}}
  - **Min:** {{.GameTime.Min}}
  - **Max:** {{.GameTime.Max}}

## Clear Sizes
{{range .Clears}}- {{.Label}}: {{.Count}}
{{end}}
## Locks by Kind
{{range .Locks}}- {{.Label}}: {{.Count}}
{{end}}{{if .MemMetrics}}
## Memory Usage (Raw Bytes)
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc: {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:  {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:      {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
- Total GC Pause: {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
