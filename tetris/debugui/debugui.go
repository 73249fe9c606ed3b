// Package debugui provides immediate-mode inspection windows for a
// running game using Dear ImGui. Drivers call Inspector.Render between
// the backend's BeginFrame and EndFrame every frame; CaptureState tells
// them when ImGui owns the mouse or keyboard.
package debugui

import (
	"fmt"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// InputState reports whether Dear ImGui is consuming input this frame.
// Drivers skip their own mouse or keyboard handling while the respective
// flag is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// CaptureState reads ImGui's current input capture state.
func CaptureState() InputState {
	io := imgui.CurrentIO()
	return InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}

// Inspector draws debug windows over a running game: score and progress,
// the playfield with the active piece, the piece deal, and frame timing.
type Inspector struct {
	frameHistory []float32
	frameIndex   int
	lastFrame    time.Time
}

// NewInspector returns an inspector keeping historyFrames of frame-time
// history for the timing graph.
func NewInspector(historyFrames int) *Inspector {
	return &Inspector{
		frameHistory: make([]float32, historyFrames),
		lastFrame:    time.Now(),
	}
}

// Render draws all inspector windows for the game's current state.
func (in *Inspector) Render(g *tetris.Game) {
	in.renderStats(g)
	in.renderBoard(g)
	in.renderPieces(g)
	in.renderTiming()
}

func (in *Inspector) renderStats(g *tetris.Game) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(240, 230), imgui.CondOnce)
	if !imgui.BeginV("Game", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := g.Stats()
	imgui.Text(fmt.Sprintf("Points: %d", stats.Points))
	imgui.Text(fmt.Sprintf("Level: %d", stats.Level))
	imgui.Text(fmt.Sprintf("Lines: %d", stats.Lines))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Tick: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Pieces: %d", stats.Pieces))
	imgui.Text(fmt.Sprintf("Holds: %d", stats.Holds))
	imgui.Text(fmt.Sprintf("Hard drops: %d", stats.Drops))

	if stats.Over {
		imgui.Separator()
		imgui.Text("GAME OVER")
	} else if f, ok := g.Falling(); ok {
		imgui.Separator()
		x, y := f.Position()
		imgui.Text(fmt.Sprintf("Falling: %v at (%d, %d) r%d", f.Kind(), x, y, f.Rotation()))
		imgui.Text(fmt.Sprintf("Lock delay: %3.0f%%", f.LockRatio()*100))
		if ghost, ok := g.GhostY(); ok {
			imgui.Text(fmt.Sprintf("Rests at y=%d", ghost))
		}
	}

	imgui.End()
}

func (in *Inspector) renderBoard(g *tetris.Game) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 250), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(240, 440), imgui.CondOnce)
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	cells := g.Cells()
	var row strings.Builder
	for y := range tetris.Height {
		row.Reset()
		for x := range tetris.Width {
			if cells[y*tetris.Width+x] != 0 {
				row.WriteString("# ")
			} else {
				row.WriteString(". ")
			}
		}
		imgui.Text(row.String())
	}

	imgui.Separator()
	imgui.Text("Column heights")
	heights := columnHeights(g.Board())
	imgui.PlotLinesFloatPtr("##heights", &heights[0], int32(len(heights)))

	imgui.End()
}

func (in *Inspector) renderPieces(g *tetris.Game) {
	imgui.SetNextWindowPosV(imgui.NewVec2(260, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(190, 230), imgui.CondOnce)
	if !imgui.BeginV("Pieces", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("PieceTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Slot")
		imgui.TableSetupColumn("Piece")
		imgui.TableHeadersRow()

		writeRow := func(slot, piece string) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(slot)
			imgui.TableNextColumn()
			imgui.Text(piece)
		}

		if kind, ok := g.Hold(); ok {
			writeRow("Hold", kind.String())
		} else {
			writeRow("Hold", "-")
		}
		for i, kind := range g.Preview() {
			writeRow(fmt.Sprintf("Next %d", i+1), kind.String())
		}

		imgui.EndTable()
	}

	if f, ok := g.Falling(); ok {
		if imgui.TreeNodeStr("Falling mask") {
			m := f.Mask()
			var line strings.Builder
			for y := range tetris.MaskSize {
				line.Reset()
				for x := range tetris.MaskSize {
					if m.At(x, y) {
						line.WriteString("# ")
					} else {
						line.WriteString(". ")
					}
				}
				imgui.Text(line.String())
			}
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (in *Inspector) renderTiming() {
	imgui.SetNextWindowPosV(imgui.NewVec2(260, 250), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(190, 170), imgui.CondOnce)
	if !imgui.BeginV("Timing", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	now := time.Now()
	in.frameHistory[in.frameIndex] = float32(now.Sub(in.lastFrame).Seconds()) * 1000
	in.frameIndex = (in.frameIndex + 1) % len(in.frameHistory)
	in.lastFrame = now

	var avg float32
	for _, ft := range in.frameHistory {
		avg += ft
	}
	avg /= float32(len(in.frameHistory))

	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg frame: %.2f ms (%.0f FPS)", avg, 1000/avg))
	}
	imgui.Text("Frame time (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &in.frameHistory[0], int32(len(in.frameHistory)))

	imgui.End()
}

// columnHeights measures each column's stack height in cells, for the
// board window's profile graph.
func columnHeights(b tetris.Board) []float32 {
	heights := make([]float32, tetris.Width)
	for x := range tetris.Width {
		for y := range tetris.Height {
			if b.Filled(x, y) {
				heights[x] = float32(tetris.Height - y)
				break
			}
		}
	}
	return heights
}
