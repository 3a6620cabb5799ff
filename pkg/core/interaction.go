package core

// Interaction is a single scattering event along a path
type Interaction struct {
	Start      Vec3    // Ray origin
	Direction  Vec3    // Unit direction
	End        Vec3    // Hit point, valid once Target is set
	Target     Surface // Intersected surface, nil if the ray escapes
	Importance float64 // Contribution weight relative to the primary ray
	Depth      int     // Hops from the primary ray
}

// NewInteraction creates an unresolved interaction
func NewInteraction(start, direction Vec3, importance float64, depth int) Interaction {
	return Interaction{
		Start:      start,
		Direction:  direction.Normalize(),
		Importance: importance,
		Depth:      depth,
	}
}

// NewPrimaryInteraction creates the root interaction of a path tree
func NewPrimaryInteraction(origin, direction Vec3) Interaction {
	return NewInteraction(origin, direction, 1.0, 0)
}

// Ray returns the interaction as a ray
func (i *Interaction) Ray() Ray {
	return Ray{Origin: i.Start, Direction: i.Direction}
}

// SetEnd commits the hit point at distance t along the ray
func (i *Interaction) SetEnd(t float64) {
	i.End = i.Start.Add(i.Direction.Multiply(t))
}

// HitNormal returns the target's normal at the hit point
func (i *Interaction) HitNormal() Vec3 {
	return i.Target.Normal(i.End)
}

// ShadowRay is a ray toward a sampled point on a light
type ShadowRay struct {
	Ray      Ray
	Point    Vec3    // Sampled point on the light
	Distance float64 // Distance from the ray origin to Point
}

// NewShadowRay creates a shadow ray from origin toward point
func NewShadowRay(origin, point Vec3) ShadowRay {
	toPoint := point.Subtract(origin)
	return ShadowRay{
		Ray:      NewRay(origin, toPoint.Normalize()),
		Point:    point,
		Distance: toPoint.Length(),
	}
}
