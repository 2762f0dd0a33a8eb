package interaction

import (
	"image/color"
	"math/rand"
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/tomicz/collide/internal/config"
	"github.com/tomicz/collide/internal/physics"
)

var palette = []color.RGBA{{R: 255, A: 255}, {B: 255, A: 255}}

type recorder struct {
	lines []string
}

func (r *recorder) Logf(format string, args ...any) {
	r.lines = append(r.lines, format)
}

func setup() (*physics.World, *Controller, *recorder) {
	w := physics.NewWorld(physics.NewBounds(800, 600))
	rec := &recorder{}
	c := New(w, config.Default().Interaction, palette, rand.New(rand.NewSource(1)), rec)
	return w, c, rec
}

func approx(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-4
}

func addBody(w *physics.World, x, y, r float32) *physics.Body {
	b := physics.NewBody(physics.V(x, y), r, palette[0])
	w.Add(b)
	return b
}

func TestClickEmptyCreates(t *testing.T) {
	w, c, _ := setup()
	c.Apply(Input{Pointer: physics.V(200, 150), LeftPressed: true, LeftDown: true})

	if w.Len() != 1 {
		t.Fatalf("expected 1 body, got %d", w.Len())
	}
	b := w.Bodies()[0]
	sel := w.Selection()
	if sel.Mode != physics.Creating || sel.ID != b.ID {
		t.Fatalf("expected creating selection of %d, got %+v", b.ID, sel)
	}
	if !b.Excluded() || b.Velocity != (physics.Vec2{}) || b.Position != physics.V(200, 150) {
		t.Fatalf("unexpected new body %+v", b)
	}
	if b.Radius < physics.MinRadius || b.Radius >= physics.MaxRadius || b.Mass != physics.Density*b.Radius {
		t.Fatalf("bad radius/mass %v/%v", b.Radius, b.Mass)
	}

	// held: the new body neither moves nor follows the pointer
	c.Apply(Input{Pointer: physics.V(260, 150), LeftDown: true})
	w.Step()
	if b.Position != physics.V(200, 150) {
		t.Fatalf("created body moved to %v", b.Position)
	}
}

func TestClickBodyDrags(t *testing.T) {
	w, c, _ := setup()
	first := addBody(w, 100, 100, 15)
	addBody(w, 110, 100, 15)

	c.Apply(Input{Pointer: physics.V(105, 100), LeftPressed: true})
	if w.Len() != 2 {
		t.Fatalf("clicking a body must not create one")
	}
	sel := w.Selection()
	if sel.Mode != physics.Dragging || sel.ID != first.ID {
		t.Fatalf("expected drag of first body, got %+v", sel)
	}

	c.Apply(Input{Pointer: physics.V(200, 100), LeftDown: true})
	if !approx(first.Position.X, 110) || !approx(first.Position.Y, 100) {
		t.Fatalf("expected 10%% follow to (110,100), got %v", first.Position)
	}

	c.Apply(Input{Pointer: physics.V(200, 100), LeftReleased: true})
	if w.Selection().Mode != physics.Idle || first.Excluded() {
		t.Fatalf("release must clear selection and exclusion")
	}
	if first.Velocity != (physics.Vec2{}) {
		t.Fatalf("drag release must not set velocity, got %v", first.Velocity)
	}
}

func TestGrabCushion(t *testing.T) {
	w, c, _ := setup()
	b := addBody(w, 100, 100, 10)
	c.Apply(Input{Pointer: physics.V(117, 100), LeftPressed: true})
	if sel := w.Selection(); sel.Mode != physics.Dragging || sel.ID != b.ID {
		t.Fatalf("pointer within radius+7.5 should grab, got %+v", sel)
	}
	c.Apply(Input{LeftReleased: true})

	c.Apply(Input{Pointer: physics.V(118, 100), LeftPressed: true})
	if sel := w.Selection(); sel.Mode != physics.Creating {
		t.Fatalf("pointer beyond cushion should create, got %+v", sel)
	}
}

func TestFling(t *testing.T) {
	cases := []struct {
		name   string
		faster int
		want   physics.Vec2
	}{
		{"unit_time_scale", 0, physics.V(-0.5, 0.2)},
		{"scaled", 1, physics.V(-0.75, 0.3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, c, _ := setup()
			for k := 0; k < tc.faster; k++ {
				c.Apply(Input{FasterPressed: true})
			}
			c.Apply(Input{Pointer: physics.V(100, 100), LeftPressed: true})
			c.Apply(Input{Pointer: physics.V(150, 80), LeftReleased: true})

			b := w.Bodies()[0]
			if !approx(b.Velocity.X, tc.want.X) || !approx(b.Velocity.Y, tc.want.Y) {
				t.Fatalf("expected %v, got %v", tc.want, b.Velocity)
			}
			if b.Excluded() || w.Selection().Mode != physics.Idle {
				t.Fatalf("fling must release the body")
			}
		})
	}
}

func TestCreatingBodyExcludedFromCollisions(t *testing.T) {
	w, c, _ := setup()
	other := addBody(w, 300, 300, 15)
	other.Velocity = physics.V(-1, 0)

	c.Apply(Input{Pointer: physics.V(330, 300), LeftPressed: true})
	if w.Selection().Mode != physics.Creating {
		t.Fatalf("expected creation next to other body")
	}
	created, _ := w.Selected(physics.Creating)

	// overlap the other body onto the held one
	other.Position = physics.V(created.Position.X-5, 300)
	other.Velocity = physics.V(1, 0)
	w.Step()
	if other.Velocity != physics.V(1, 0) {
		t.Fatalf("free body collided with held body: %v", other.Velocity)
	}
	if created.Velocity != (physics.Vec2{}) {
		t.Fatalf("held body was resolved: %v", created.Velocity)
	}
}

func TestRightDelete(t *testing.T) {
	w, c, _ := setup()
	a := addBody(w, 100, 100, 15)
	b := addBody(w, 105, 100, 15)

	c.Apply(Input{Pointer: physics.V(102, 100), RightDown: true})
	if w.Len() != 1 || w.Bodies()[0].ID != b.ID {
		t.Fatalf("expected only the first hit removed")
	}
	if _, ok := w.Body(a.ID); ok {
		t.Fatalf("deleted body still resolves")
	}

	c.Apply(Input{Pointer: physics.V(105, 123), RightDown: true})
	if w.Len() != 1 {
		t.Fatalf("pointer outside radius+2.5 must not delete")
	}
}

func TestRightDeleteIgnoredWhileHolding(t *testing.T) {
	w, c, _ := setup()
	held := addBody(w, 100, 100, 15)
	other := addBody(w, 300, 300, 15)

	c.Apply(Input{Pointer: physics.V(100, 100), LeftPressed: true, LeftDown: true})
	c.Apply(Input{Pointer: physics.V(300, 300), LeftDown: true, RightDown: true})
	if w.Len() != 2 {
		t.Fatalf("delete must be ignored while a body is held")
	}
	if sel := w.Selection(); sel.ID != held.ID {
		t.Fatalf("selection changed: %+v", sel)
	}

	// removing an unrelated body through the world keeps the drag valid
	w.Remove(other.ID)
	c.Apply(Input{Pointer: physics.V(200, 100), LeftDown: true})
	if held.Position.X <= 100 {
		t.Fatalf("drag lost after unrelated removal")
	}
}

func TestPauseToggle(t *testing.T) {
	w, c, rec := setup()
	c.Apply(Input{PausePressed: true})
	if w.Paused() || len(rec.lines) != 0 {
		t.Fatalf("pause on empty world must be a no-op")
	}

	b := addBody(w, 100, 100, 15)
	b.Velocity = physics.V(1, 1)
	c.Apply(Input{PausePressed: true})
	if !w.Paused() {
		t.Fatalf("expected paused")
	}
	w.Step()
	if b.Position != physics.V(100, 100) {
		t.Fatalf("paused body moved")
	}
	c.Apply(Input{PausePressed: true})
	if w.Paused() {
		t.Fatalf("expected running")
	}
}

func TestSpeedRoundTrip(t *testing.T) {
	w, c, _ := setup()
	b := addBody(w, 100, 100, 15)
	b.Velocity = physics.V(0.4, -0.8)

	c.Apply(Input{FasterPressed: true})
	if !approx(w.TimeScale(), 1.5) || !approx(b.Velocity.X, 0.6) {
		t.Fatalf("speed up: scale %v velocity %v", w.TimeScale(), b.Velocity)
	}
	c.Apply(Input{SlowerPressed: true})
	if !approx(w.TimeScale(), 1) || !approx(b.Velocity.X, 0.4) || !approx(b.Velocity.Y, -0.8) {
		t.Fatalf("speed down: scale %v velocity %v", w.TimeScale(), b.Velocity)
	}
}

func TestSpawnHeld(t *testing.T) {
	w, c, _ := setup()
	for k := 0; k < 30; k++ {
		c.Apply(Input{SpawnHeld: true})
	}
	if w.Len() != 30 {
		t.Fatalf("expected one spawn per frame, got %d", w.Len())
	}
	bodies := w.Bodies()
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			if bodies[i].Position.Distance(bodies[j].Position) < bodies[i].Radius+bodies[j].Radius {
				t.Fatalf("spawned bodies %d and %d overlap", i, j)
			}
		}
	}
}

func TestSpawnGivesUpWhenFull(t *testing.T) {
	w := physics.NewWorld(physics.NewBounds(35, 35))
	rec := &recorder{}
	tuning := config.Default().Interaction
	tuning.SpawnAttempts = 20
	c := New(w, tuning, palette, rand.New(rand.NewSource(5)), rec)
	for k := 0; k < 5; k++ {
		c.Apply(Input{SpawnHeld: true})
	}
	if w.Len() > 1 {
		t.Fatalf("a 35x35 world fits at most one body, got %d", w.Len())
	}
	gaveUp := false
	for _, l := range rec.lines {
		if strings.HasPrefix(l, "spawn gave up") {
			gaveUp = true
		}
	}
	if !gaveUp {
		t.Fatalf("expected a give-up log line")
	}
}

func TestClearHeldDropsSelection(t *testing.T) {
	w, c, _ := setup()
	addBody(w, 100, 100, 15)
	addBody(w, 300, 300, 15)
	c.Apply(Input{Pointer: physics.V(100, 100), LeftPressed: true, LeftDown: true})

	c.Apply(Input{Pointer: physics.V(120, 100), LeftDown: true, ClearHeld: true})
	if w.Len() != 0 || w.Selection().Mode != physics.Idle {
		t.Fatalf("clear left %d bodies, selection %+v", w.Len(), w.Selection())
	}
	// still holding the button after the clear: nothing to drag, nothing breaks
	c.Apply(Input{Pointer: physics.V(140, 100), LeftDown: true})
	c.Apply(Input{Pointer: physics.V(140, 100), LeftReleased: true})
	if w.Len() != 0 {
		t.Fatalf("release after clear must not create bodies")
	}
}
