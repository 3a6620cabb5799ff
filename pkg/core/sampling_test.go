package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleUniformHemisphere_UpperHemisphere(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		sampler := NewRandomSampler(rand.New(rand.NewSource(seed)))
		for i := 0; i < 500; i++ {
			dir := SampleUniformHemisphere(sampler.Get2D())

			if dir.Z < 0 {
				t.Fatalf("seed %d: sampled direction %v below the hemisphere", seed, dir)
			}
			if math.Abs(dir.Length()-1.0) > 1e-9 {
				t.Fatalf("seed %d: sampled direction %v is not unit length", seed, dir)
			}
		}
	}
}

func TestSampleUniformHemisphere_Corners(t *testing.T) {
	tests := []struct {
		name     string
		sample   Vec2
		expected Vec3
	}{
		{"Pole", NewVec2(0, 0), NewVec3(0, 0, 1)},
		{"Almost horizon along X", NewVec2(0, 0.999999), NewVec3(1, 0, 0)},
		{"Quarter turn", NewVec2(0.25, 0.999999), NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleUniformHemisphere(tt.sample)
			if got.Subtract(tt.expected).Length() > 1e-4 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNewShadingBasis_Orthonormal(t *testing.T) {
	tests := []struct {
		name     string
		normal   Vec3
		incoming Vec3
	}{
		{"Oblique", NewVec3(0, 0, 1), NewVec3(1, 0, -1).Normalize()},
		{"Parallel to normal", NewVec3(0, 0, 1), NewVec3(0, 0, -1)},
		{"Tilted normal", NewVec3(1, 1, 0).Normalize(), NewVec3(0, -1, 0)},
		{"X normal parallel", NewVec3(1, 0, 0), NewVec3(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewShadingBasis(tt.normal, tt.incoming)

			const tolerance = 1e-9
			for _, axis := range []Vec3{b.X, b.Y, b.Z} {
				if math.Abs(axis.Length()-1) > tolerance {
					t.Errorf("Axis %v is not unit length", axis)
				}
			}
			if math.Abs(b.X.Dot(b.Y)) > tolerance || math.Abs(b.X.Dot(b.Z)) > tolerance || math.Abs(b.Y.Dot(b.Z)) > tolerance {
				t.Errorf("Basis is not orthogonal: %+v", b)
			}
			if b.X.Cross(b.Y).Subtract(b.Z).Length() > tolerance {
				t.Errorf("Basis is not right-handed: %+v", b)
			}
		})
	}
}

func TestBasis_ToWorldKeepsHemisphere(t *testing.T) {
	normal := NewVec3(0, 1, 1).Normalize()
	basis := NewShadingBasis(normal, NewVec3(1, -1, 0).Normalize())
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		local := SampleUniformHemisphere(sampler.Get2D())
		world := basis.ToWorld(local)
		if world.Dot(normal) < -1e-12 {
			t.Fatalf("World direction %v points below the surface", world)
		}
		if math.Abs(world.Dot(normal)-local.Z) > 1e-9 {
			t.Fatalf("Polar angle changed by transform: local z %f, world cos %f", local.Z, world.Dot(normal))
		}
	}
}
