// Package interaction turns pointer and keyboard intents into World changes:
// creating, dragging, flinging and deleting bodies, pausing, time scaling,
// random spawning and clearing.
package interaction

import (
	"image/color"
	"math/rand"

	"github.com/tomicz/collide/internal/config"
	"github.com/tomicz/collide/internal/physics"
)

// Input is one frame of user intent, independent of any input library.
// Pressed/Released are edge events for this frame; Down/Held are levels.
type Input struct {
	Pointer physics.Vec2

	LeftPressed  bool
	LeftDown     bool
	LeftReleased bool
	RightDown    bool

	PausePressed  bool
	FasterPressed bool
	SlowerPressed bool
	SpawnHeld     bool
	ClearHeld     bool
}

// Logger receives one line per user-visible event.
type Logger interface {
	Logf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...any) {}

// Controller applies Input to a World once per frame, before the World steps.
type Controller struct {
	world   *physics.World
	tuning  config.Interaction
	palette []color.RGBA
	rng     *rand.Rand
	log     Logger
}

// New returns a controller for w. log may be nil.
func New(w *physics.World, tuning config.Interaction, palette []color.RGBA, rng *rand.Rand, log Logger) *Controller {
	if log == nil {
		log = nopLogger{}
	}
	return &Controller{world: w, tuning: tuning, palette: palette, rng: rng, log: log}
}

// SetTuning replaces the interaction tunables, e.g. after a config reload.
func (c *Controller) SetTuning(t config.Interaction) {
	c.tuning = t
}

// SetPalette replaces the colors used for new bodies.
func (c *Controller) SetPalette(p []color.RGBA) {
	c.palette = p
}

// Apply runs one frame of interaction in a fixed order: grab or create, delete,
// drag, release, fling, then the keyboard commands.
func (c *Controller) Apply(in Input) {
	if in.LeftPressed {
		c.grab(in.Pointer)
	}
	if in.RightDown {
		c.deleteAt(in.Pointer)
	}
	if in.LeftDown {
		if b, ok := c.world.Selected(physics.Dragging); ok {
			b.DragToward(in.Pointer, c.tuning.DragDivisor)
		}
	}
	if in.LeftReleased {
		c.release(in.Pointer)
	}

	if in.PausePressed {
		if c.world.Len() > 0 {
			c.log.Logf("paused=%v", c.world.TogglePause())
		}
	}
	if in.FasterPressed {
		c.world.ScaleTime(c.tuning.SpeedStep)
		c.log.Logf("time scale %.3f", c.world.TimeScale())
	}
	if in.SlowerPressed {
		c.world.ScaleTime(1 / c.tuning.SpeedStep)
		c.log.Logf("time scale %.3f", c.world.TimeScale())
	}
	if in.SpawnHeld {
		if b, ok := c.world.SpawnRandom(c.rng, c.palette, c.tuning.SpawnAttempts); ok {
			c.log.Logf("spawned body %d r=%.0f at (%.0f, %.0f)", b.ID, b.Radius, b.Position.X, b.Position.Y)
		} else {
			c.log.Logf("spawn gave up after %d attempts", c.tuning.SpawnAttempts)
		}
	}
	if in.ClearHeld && c.world.Len() > 0 {
		n := c.world.Len()
		c.world.Clear()
		c.log.Logf("cleared %d bodies", n)
	}
}

// grab selects the first body under the pointer for dragging, or creates a
// new body there when the pointer hits nothing. Ignored unless idle.
func (c *Controller) grab(p physics.Vec2) {
	if c.world.Selection().Mode != physics.Idle {
		return
	}
	if b, ok := c.world.BodyAt(p, c.tuning.GrabCushion); ok {
		c.world.Select(physics.Dragging, b.ID)
		return
	}
	b := physics.NewBody(p, physics.RandomRadius(c.rng), physics.RandomColor(c.rng, c.palette))
	id := c.world.Add(b)
	c.world.Select(physics.Creating, id)
	c.log.Logf("created body %d r=%.0f at (%.0f, %.0f)", id, b.Radius, p.X, p.Y)
}

// deleteAt removes the first body under the pointer. Only one body goes per
// frame, and nothing is deleted while a body is held.
func (c *Controller) deleteAt(p physics.Vec2) {
	if c.world.Selection().Mode != physics.Idle {
		return
	}
	if b, ok := c.world.BodyAt(p, c.tuning.DeleteCushion); ok {
		c.world.Remove(b.ID)
		c.log.Logf("deleted body %d", b.ID)
	}
}

// release ends a drag or launches a newly created body. A created body is
// flung away from the pointer like a slingshot: the further the pull, the
// faster the launch, scaled by the current time scale.
func (c *Controller) release(p physics.Vec2) {
	sel, b := c.world.Release()
	if b == nil || sel.Mode != physics.Creating {
		return
	}
	gain := c.tuning.FlingGain * c.world.TimeScale()
	b.Velocity = p.Sub(b.Position).Scale(-gain)
	c.log.Logf("flung body %d at (%.2f, %.2f)", b.ID, b.Velocity.X, b.Velocity.Y)
}
