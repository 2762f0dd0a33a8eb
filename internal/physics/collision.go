package physics

// Colliding reports whether two bodies touch or overlap: center distance <= r1 + r2.
func Colliding(a, b *Body) bool {
	return a.Position.Distance(b.Position) <= a.Radius+b.Radius
}

// Resolve applies an elastic collision impulse to self along the line of
// centers, using other as a read-only partner. Only self is written. The
// tangential part of self's velocity is left as is.
//
// The new velocity is applied only while the pair is approaching; bodies that
// still overlap but already move apart keep their velocity. Coincident centers
// have no collision normal and are skipped. Returns true if self's velocity changed.
func Resolve(self *Body, other *Body) bool {
	normal, ok := self.Position.Sub(other.Position).Normalize()
	if !ok {
		return false
	}
	tangent := normal.Perp()

	vn := self.Velocity.Dot(normal)
	vt := self.Velocity.Dot(tangent)
	otherVn := other.Velocity.Dot(normal)

	m1, m2 := self.Mass, other.Mass
	vn = (vn*(m1-m2) + 2*m2*otherVn) / (m1 + m2)

	if self.Velocity.Sub(other.Velocity).Dot(self.Position.Sub(other.Position)) >= 0 {
		return false
	}
	self.Velocity = normal.Scale(vn).Add(tangent.Scale(vt))
	return true
}

// DetectAndResolve visits every ordered pair (i, j), i != j, of live bodies
// against the frozen snapshot. Pairs where either side is skipped are ignored.
// For each colliding pair, live[i] is resolved against snapshot[j].
// live and snapshot must be index-aligned. Returns the number of velocity updates.
func DetectAndResolve(live []*Body, snapshot []Body, skip func(BodyID) bool) int {
	resolved := 0
	for i, self := range live {
		if skip(self.ID) {
			continue
		}
		for j := range snapshot {
			if i == j {
				continue
			}
			other := &snapshot[j]
			if skip(other.ID) {
				continue
			}
			if !Colliding(self, other) {
				continue
			}
			if Resolve(self, other) {
				resolved++
			}
		}
	}
	return resolved
}
