package physics

// wallMargin keeps a clamped body one unit inside the wall so it is not
// detected as penetrating again on the next frame.
const wallMargin = 1

// Bounds is the axis-aligned rectangle bodies are kept inside.
type Bounds struct {
	Min, Max Vec2
}

// NewBounds returns bounds from the origin to (width, height).
func NewBounds(width, height float32) Bounds {
	return Bounds{Max: Vec2{width, height}}
}

func (r Bounds) Width() float32  { return r.Max.X - r.Min.X }
func (r Bounds) Height() float32 { return r.Max.Y - r.Min.Y }

// ConstrainToWalls reflects and clamps b against r. Each side is checked
// independently in the order x-low, x-high, y-low, y-high, so a corner hit
// corrects both axes in the same call. Returns true if any side was hit.
func ConstrainToWalls(b *Body, r Bounds) bool {
	hit := false
	if b.Position.X <= r.Min.X+b.Radius {
		b.Velocity.X = -b.Velocity.X
		b.Position.X = r.Min.X + b.Radius + wallMargin
		hit = true
	}
	if b.Position.X >= r.Max.X-b.Radius {
		b.Velocity.X = -b.Velocity.X
		b.Position.X = r.Max.X - b.Radius - wallMargin
		hit = true
	}
	if b.Position.Y <= r.Min.Y+b.Radius {
		b.Velocity.Y = -b.Velocity.Y
		b.Position.Y = r.Min.Y + b.Radius + wallMargin
		hit = true
	}
	if b.Position.Y >= r.Max.Y-b.Radius {
		b.Velocity.Y = -b.Velocity.Y
		b.Position.Y = r.Max.Y - b.Radius - wallMargin
		hit = true
	}
	return hit
}
