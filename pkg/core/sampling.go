package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; every worker owns its own instance.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with a deterministic seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// SampleUniformHemisphere maps a sample to a local direction with azimuth
// uniform in [0, 2π) and polar angle uniform in [0, π/2). The Z axis is the
// hemisphere pole. Note this is uniform in angle, not in solid angle.
func SampleUniformHemisphere(sample Vec2) Vec3 {
	phi := 2 * math.Pi * sample.X
	theta := math.Pi / 2 * sample.Y

	sinTheta := math.Sin(theta)
	return NewVec3(
		math.Cos(phi)*sinTheta,
		math.Sin(phi)*sinTheta,
		math.Cos(theta),
	)
}

// Basis is an orthonormal frame with Z as the normal
type Basis struct {
	X, Y, Z Vec3
}

// NewShadingBasis builds a frame around normal whose X axis is the incoming
// direction projected onto the tangent plane
func NewShadingBasis(normal, incoming Vec3) Basis {
	z := normal.Normalize()
	x := incoming.Subtract(z.Multiply(incoming.Dot(z)))
	if x.LengthSquared() < 1e-12 {
		// Incoming is parallel to the normal, any tangent will do
		var nt Vec3
		if math.Abs(z.X) > 0.1 {
			nt = NewVec3(0, 1, 0)
		} else {
			nt = NewVec3(1, 0, 0)
		}
		x = nt.Cross(z)
	}
	x = x.Normalize()
	y := x.Negate().Cross(z).Normalize()
	return Basis{X: x, Y: y, Z: z}
}

// ToWorld transforms a local direction into world space
func (b Basis) ToWorld(local Vec3) Vec3 {
	return b.X.Multiply(local.X).Add(b.Y.Multiply(local.Y)).Add(b.Z.Multiply(local.Z))
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}
