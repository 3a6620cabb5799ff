package geometry

import (
	"github.com/df07/go-pathtree/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3     // The three vertices
	material   core.Material // Material of the triangle
	normal     core.Vec3     // Cached normal vector
	bbox       core.AABB     // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices. The normal
// follows the right-hand rule over V0, V1, V2.
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		material: material,
		normal:   v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize(),
		bbox:     core.NewAABBFromPoints(v0, v1, v2),
	}
}

// Intersect tests the ray against the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray) float64 {
	const epsilon = 1e-12

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return 0
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0
	}

	distance := f * edge2.Dot(q)
	if distance < minHitDistance {
		return 0
	}
	return distance
}

// Normal returns the triangle's normal vector
func (t *Triangle) Normal(point core.Vec3) core.Vec3 {
	return t.normal
}

// Material returns the triangle's material
func (t *Triangle) Material() core.Material {
	return t.material
}

// ShadowRays samples points uniformly over the triangle's area
func (t *Triangle) ShadowRays(origin core.Vec3, count int, sampler core.Sampler) []core.ShadowRay {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	return sampleShadowRays(origin, count, sampler, func(sample core.Vec2) core.Vec3 {
		u, v := sample.X, sample.Y
		if u+v > 1 {
			u, v = 1-u, 1-v
		}
		return t.V0.Add(edge1.Multiply(u)).Add(edge2.Multiply(v))
	})
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}
