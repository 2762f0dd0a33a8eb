package physics

import "image/color"

// Density converts radius to mass: mass = Density * radius.
const Density float32 = 2.0

// Radius range for new bodies, [MinRadius, MaxRadius).
const (
	MinRadius = 10
	MaxRadius = 20
)

// BodyID identifies a body for its whole lifetime. IDs are never reused,
// so a stale ID simply stops resolving after its body is removed.
type BodyID uint64

// NoBody is the zero BodyID; no live body ever has it.
const NoBody BodyID = 0

// Body is a circular rigid body. Radius and Mass are fixed at creation.
// Position and Velocity are changed by the World and the interaction layer.
type Body struct {
	ID       BodyID
	Position Vec2
	Velocity Vec2
	Radius   float32
	Mass     float32
	Color    color.RGBA

	// excluded is set while the body is dragged or being created; it is
	// owned by the World's selection and never set directly.
	excluded bool
}

// NewBody returns a body at position with zero velocity and mass derived from radius.
// radius must be positive.
func NewBody(position Vec2, radius float32, c color.RGBA) *Body {
	return &Body{
		Position: position,
		Radius:   radius,
		Mass:     Density * radius,
		Color:    c,
	}
}

// Excluded reports whether the body is under direct user manipulation this tick.
func (b *Body) Excluded() bool {
	return b.excluded
}

// Integrate moves the body by one frame of velocity. Excluded bodies and
// bodies in a paused world stay put.
func (b *Body) Integrate(paused bool) {
	if b.excluded || paused {
		return
	}
	b.Position = b.Position.Add(b.Velocity)
}

// Overlapping reports whether point p is within radius+cushion of the body's center.
func (b *Body) Overlapping(p Vec2, cushion float32) bool {
	return b.Position.Distance(p) <= b.Radius+cushion
}

// DragToward eases the body toward target, closing 1/divisor of the gap per call.
func (b *Body) DragToward(target Vec2, divisor float32) {
	b.Position = b.Position.Add(target.Sub(b.Position).Scale(1 / divisor))
}
