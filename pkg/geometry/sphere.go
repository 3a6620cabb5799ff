package geometry

import (
	"math"

	"github.com/df07/go-pathtree/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		material: material,
	}
}

// Intersect returns the nearest positive root of the ray-sphere equation
func (s *Sphere) Intersect(ray core.Ray) float64 {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < minHitDistance {
		root = (-halfB + sqrtD) / a
		if root < minHitDistance {
			return 0
		}
	}
	return root
}

// Normal returns the outward normal at a point on the sphere
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Multiply(1.0 / s.Radius)
}

// Material returns the sphere's material
func (s *Sphere) Material() core.Material {
	return s.material
}

// ShadowRays samples points uniformly over the sphere surface
func (s *Sphere) ShadowRays(origin core.Vec3, count int, sampler core.Sampler) []core.ShadowRay {
	return sampleShadowRays(origin, count, sampler, func(sample core.Vec2) core.Vec3 {
		return s.Center.Add(core.SampleOnUnitSphere(sample).Multiply(s.Radius))
	})
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}
