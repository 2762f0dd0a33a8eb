package physics

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// GrabMode is what the user is doing to the selected body, if anything.
type GrabMode int

const (
	Idle GrabMode = iota
	Dragging
	Creating
)

func (m GrabMode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Creating:
		return "creating"
	}
	return fmt.Sprintf("GrabMode(%d)", int(m))
}

// Selection is the body under direct user manipulation. ID is NoBody when Mode is Idle.
// Only one body can be selected, so dragging and creating exclude each other.
type Selection struct {
	Mode GrabMode
	ID   BodyID
}

// StepStats reports what happened during one Step. Collisions counts velocity
// updates, one per body, so a colliding pair counts twice.
type StepStats struct {
	Collisions int
	WallHits   int
}

// World holds the bodies and the global simulation state, and runs the per-frame
// pipeline: snapshot, collision detection and resolution, wall constraint, integration.
type World struct {
	Bounds Bounds

	bodies    []*Body // insertion order; iteration order for detection and hit tests
	index     map[BodyID]int
	nextID    BodyID
	timeScale float32
	paused    bool
	selection Selection
}

// NewWorld returns an empty, running world with time scale 1.
func NewWorld(bounds Bounds) *World {
	return &World{
		Bounds:    bounds,
		index:     make(map[BodyID]int),
		timeScale: 1,
	}
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Bodies returns the live bodies in insertion order. The slice is owned by the
// world and is only valid until the next Add, Remove or Clear.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Body looks up a live body by ID.
func (w *World) Body(id BodyID) (*Body, bool) {
	i, ok := w.index[id]
	if !ok {
		return nil, false
	}
	return w.bodies[i], true
}

// Add assigns b a fresh ID and appends it to the world.
func (w *World) Add(b *Body) BodyID {
	w.nextID++
	b.ID = w.nextID
	b.excluded = false
	w.index[b.ID] = len(w.bodies)
	w.bodies = append(w.bodies, b)
	return b.ID
}

// Remove deletes the body with the given ID. Other IDs stay valid. If the body
// was selected, the selection is dropped. Removing the last body unpauses the
// world. Returns false if id is not live.
func (w *World) Remove(id BodyID) bool {
	i, ok := w.index[id]
	if !ok {
		return false
	}
	if w.selection.ID == id {
		w.selection = Selection{}
	}
	copy(w.bodies[i:], w.bodies[i+1:])
	w.bodies[len(w.bodies)-1] = nil
	w.bodies = w.bodies[:len(w.bodies)-1]
	delete(w.index, id)
	for j := i; j < len(w.bodies); j++ {
		w.index[w.bodies[j].ID] = j
	}
	if len(w.bodies) == 0 {
		w.paused = false
	}
	return true
}

// Clear removes every body, drops any selection and unpauses the world.
func (w *World) Clear() {
	clear(w.bodies)
	w.bodies = w.bodies[:0]
	clear(w.index)
	w.selection = Selection{}
	w.paused = false
}

// BodyAt returns the first body, in insertion order, whose center is within
// radius+cushion of p.
func (w *World) BodyAt(p Vec2, cushion float32) (*Body, bool) {
	for _, b := range w.bodies {
		if b.Overlapping(p, cushion) {
			return b, true
		}
	}
	return nil, false
}

// Selection returns the current selection.
func (w *World) Selection() Selection {
	return w.selection
}

// Select starts dragging or creating the body id. It only succeeds from Idle and
// for a live body; the body is excluded from integration and collisions until Release.
func (w *World) Select(mode GrabMode, id BodyID) bool {
	if mode == Idle || w.selection.Mode != Idle {
		return false
	}
	b, ok := w.Body(id)
	if !ok {
		return false
	}
	b.excluded = true
	w.selection = Selection{Mode: mode, ID: id}
	return true
}

// Release ends the current selection and returns what was selected along with
// the body, if it is still live.
func (w *World) Release() (Selection, *Body) {
	sel := w.selection
	w.selection = Selection{}
	if sel.Mode == Idle {
		return sel, nil
	}
	b, ok := w.Body(sel.ID)
	if !ok {
		return sel, nil
	}
	b.excluded = false
	return sel, b
}

// Selected returns the selected body when the selection is in mode.
func (w *World) Selected(mode GrabMode) (*Body, bool) {
	if w.selection.Mode != mode || mode == Idle {
		return nil, false
	}
	return w.Body(w.selection.ID)
}

// excluded reports whether id takes no part in this tick's collisions.
func (w *World) excluded(id BodyID) bool {
	return w.selection.Mode != Idle && w.selection.ID == id
}

// TimeScale returns the global speed multiplier.
func (w *World) TimeScale() float32 {
	return w.timeScale
}

// ScaleTime multiplies the time scale by factor and rescales every existing
// velocity by the same factor, so current motion speeds up or slows down too.
func (w *World) ScaleTime(factor float32) {
	w.timeScale *= factor
	for _, b := range w.bodies {
		b.Velocity = b.Velocity.Scale(factor)
	}
}

// Paused reports whether the simulation is paused.
func (w *World) Paused() bool {
	return w.paused
}

// TogglePause flips the pause flag. With no bodies there is nothing to pause
// and the call is a no-op. Returns the new state.
func (w *World) TogglePause() bool {
	if len(w.bodies) == 0 {
		return w.paused
	}
	w.paused = !w.paused
	return w.paused
}

// Snapshot returns a deep copy of all bodies, index-aligned with Bodies().
// Writes to live bodies never show through the copy.
func (w *World) Snapshot() []Body {
	snap := make([]Body, 0, len(w.bodies))
	_ = copier.CopyWithOption(&snap, w.bodies, copier.Option{DeepCopy: true})
	return snap
}

// Step advances the world one frame: every non-excluded body is resolved
// against a snapshot of the frame's starting state, then all bodies are
// constrained to the walls and integrated. A paused world skips collisions
// and integration but still enforces the walls.
func (w *World) Step() StepStats {
	var stats StepStats
	if !w.paused {
		snap := w.Snapshot()
		stats.Collisions = DetectAndResolve(w.bodies, snap, w.excluded)
	}
	for _, b := range w.bodies {
		if ConstrainToWalls(b, w.Bounds) {
			stats.WallHits++
		}
		b.Integrate(w.paused)
	}
	return stats
}
