package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tomicz/collide/internal/config"
)

// Open creates the window described by cfg. In fullscreen the window takes the
// monitor's size; otherwise cfg's width and height.
func Open(cfg config.Window) {
	w, h := int32(cfg.Width), int32(cfg.Height)
	if cfg.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
		w, h = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(w, h, cfg.Title)
	rl.SetTargetFPS(int32(cfg.FPS))
}

// Close destroys the window.
func Close() {
	rl.CloseWindow()
}

// Size returns the current drawable size.
func Size() (width, height float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}

// Run is the frame loop. Each frame it calls update (input and physics), then
// clears the screen to background and calls draw. Returns when the window closes.
func Run(background rl.Color, update, draw func()) {
	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(background)
		draw()
		rl.EndDrawing()
	}
}
