package geometry

import (
	"math"

	"github.com/df07/go-pathtree/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3 // One corner of the quad
	U        core.Vec3 // First edge vector
	V        core.Vec3 // Second edge vector
	material core.Material
	normal   core.Vec3 // Unit normal (U × V)
	d        float64   // Plane equation constant: normal · p = d
	w        core.Vec3 // Cached vector for planar coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		material: material,
		normal:   normal,
		d:        normal.Dot(corner),
		w:        cross.Multiply(1.0 / cross.Dot(cross)),
	}
}

// Intersect tests if a ray intersects with the quad
func (q *Quad) Intersect(ray core.Ray) float64 {
	denominator := ray.Direction.Dot(q.normal)

	// Ray is parallel to the quad
	if math.Abs(denominator) < 1e-12 {
		return 0
	}

	t := (q.d - ray.Origin.Dot(q.normal)) / denominator
	if t < minHitDistance {
		return 0
	}

	// Planar coordinates of the hit point
	hitVector := ray.At(t).Subtract(q.Corner)
	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return 0
	}
	return t
}

// Normal returns the quad normal
func (q *Quad) Normal(point core.Vec3) core.Vec3 {
	return q.normal
}

// Material returns the quad's material
func (q *Quad) Material() core.Material {
	return q.material
}

// ShadowRays samples points uniformly over the quad
func (q *Quad) ShadowRays(origin core.Vec3, count int, sampler core.Sampler) []core.ShadowRay {
	return sampleShadowRays(origin, count, sampler, func(sample core.Vec2) core.Vec3 {
		return q.Corner.Add(q.U.Multiply(sample.X)).Add(q.V.Multiply(sample.Y))
	})
}

// BoundingBox returns the bounds of the four corners
func (q *Quad) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	)
}
