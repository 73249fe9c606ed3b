// Package ebiten provides Dear ImGui backend integration for the Ebiten
// game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend
// implementation. Call BeginFrame before issuing ImGui widgets for a
// frame and EndFrame after; Draw and Layout are forwarded from the
// Ebiten game's callbacks.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// New creates the backend together with its window. The imgui.ini state
// file is disabled so inspector windows come up at their coded
// positions.
func New(title string, width, height int) ImguiBackend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return ImguiBackend{EbitenBackend: b}
}
