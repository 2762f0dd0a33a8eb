// Package render draws the world and the help panel with raylib.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tomicz/collide/internal/physics"
)

// Background is the clear color behind the bodies.
var Background = rl.White

// Bodies draws every live body as a filled circle in its own color.
func Bodies(w *physics.World) {
	for _, b := range w.Bodies() {
		rl.DrawCircleV(rl.NewVector2(b.Position.X, b.Position.Y), b.Radius, b.Color)
	}
}

// Pull draws the slingshot line from a body being created to the pointer, so
// the user can see the launch direction before releasing.
func Pull(w *physics.World, pointer physics.Vec2) {
	b, ok := w.Selected(physics.Creating)
	if !ok {
		return
	}
	from := rl.NewVector2(b.Position.X, b.Position.Y)
	to := rl.NewVector2(pointer.X, pointer.Y)
	rl.DrawLineEx(from, to, 2, rl.Fade(rl.Gray, 0.6))
}
