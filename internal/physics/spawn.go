package physics

import (
	"image/color"
	"math/rand"
)

// DefaultSpawnAttempts bounds the rejection sampling in SpawnRandom.
const DefaultSpawnAttempts = 1000

// RandomRadius returns an integer radius in [MinRadius, MaxRadius).
func RandomRadius(rng *rand.Rand) float32 {
	return float32(MinRadius + rng.Intn(MaxRadius-MinRadius))
}

// RandomColor picks a color from palette; black if the palette is empty.
func RandomColor(rng *rand.Rand, palette []color.RGBA) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{A: 255}
	}
	return palette[rng.Intn(len(palette))]
}

// SpawnRandom adds a body with a random radius at a random spot that does not
// overlap any existing body, with a random velocity in [-1, 1) per axis scaled by
// the time scale. Positions are whole units in [radius, size-radius) per axis.
// It tries up to attempts positions and returns false if none was free.
func (w *World) SpawnRandom(rng *rand.Rand, palette []color.RGBA, attempts int) (*Body, bool) {
	c := RandomColor(rng, palette)
	r := RandomRadius(rng)
	ri := int(r)
	spanX := int(w.Bounds.Width()) - 2*ri
	spanY := int(w.Bounds.Height()) - 2*ri
	if spanX <= 0 || spanY <= 0 {
		return nil, false
	}

	for n := 0; n < attempts; n++ {
		p := Vec2{
			X: w.Bounds.Min.X + float32(ri+rng.Intn(spanX)),
			Y: w.Bounds.Min.Y + float32(ri+rng.Intn(spanY)),
		}
		if !w.free(p, r) {
			continue
		}
		b := NewBody(p, r, c)
		b.Velocity = Vec2{
			X: float32(rng.Intn(200)-100) / 100,
			Y: float32(rng.Intn(200)-100) / 100,
		}.Scale(w.timeScale)
		w.Add(b)
		return b, true
	}
	return nil, false
}

// free reports whether a circle at p with radius r clears every body.
func (w *World) free(p Vec2, r float32) bool {
	for _, b := range w.bodies {
		if b.Position.Distance(p) < b.Radius+r {
			return false
		}
	}
	return true
}
