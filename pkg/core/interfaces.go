package core

// Surface is an intersectable object in the scene
type Surface interface {
	// Intersect returns the distance along the ray to the nearest hit.
	// Non-positive values mean the ray misses the surface.
	Intersect(ray Ray) float64

	// Normal returns the surface normal at a point on the surface
	Normal(point Vec3) Vec3

	// Material returns the material of the surface
	Material() Material

	// ShadowRays returns count rays from origin toward points sampled
	// uniformly on the surface
	ShadowRays(origin Vec3, count int, sampler Sampler) []ShadowRay

	// BoundingBox returns the axis-aligned bounds of the surface
	BoundingBox() AABB
}

// Material decides how interactions scatter off a surface
type Material interface {
	// Scatter produces the outgoing interactions for an incoming interaction
	// whose Target and End are already resolved
	Scatter(incoming *Interaction, sampler Sampler) []Interaction

	// Color returns the base color of the material
	Color() Vec3

	// Emittance returns the emitted power; zero for non-emitters
	Emittance() float64

	// Absorption returns the Russian roulette survival probability
	Absorption() float64
}

// IsEmitter reports whether the material marks its surface as a light
func IsEmitter(m Material) bool {
	return m.Emittance() != 0
}
