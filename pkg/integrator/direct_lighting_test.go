package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-pathtree/pkg/core"
	"github.com/df07/go-pathtree/pkg/geometry"
	"github.com/df07/go-pathtree/pkg/material"
	"github.com/df07/go-pathtree/pkg/scene"
)

// smallLight creates a tiny downward-facing square light centered at (0,0,height)
func smallLight(height, emittance float64) *geometry.Quad {
	return geometry.NewQuad(
		core.NewVec3(-0.01, -0.01, height),
		core.NewVec3(0, 0.02, 0),
		core.NewVec3(0.02, 0, 0),
		material.NewLight(core.White, emittance),
	)
}

// floor creates a 2x2 quad at z=0 facing up, or down when flipped
func floor(flipped bool) *geometry.Quad {
	u, v := core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0)
	if flipped {
		u, v = v, u
	}
	return geometry.NewQuad(core.NewVec3(-1, -1, 0), u, v, material.NewLambertian(core.White))
}

// hitFloor resolves a downward ray onto the floor at the origin
func hitFloor(t *testing.T, s *scene.Scene) *core.Interaction {
	t.Helper()
	in := core.NewPrimaryInteraction(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	if s.NearestHit(&in) == nil {
		t.Fatal("Expected the ray to hit the floor")
	}
	return &in
}

func TestLocalLighting_LitPlane(t *testing.T) {
	s := scene.New("test")
	s.AddObject(floor(false))
	s.AddAreaLight(smallLight(2, 4))

	d := NewDirectLighting(s, DefaultConfig())
	got := d.LocalLighting(hitFloor(t, s), core.NewSeededSampler(42))

	// Shadow rays leave from 0.03 above the floor
	dist := 2 - 3e-2
	expected := 4 / (dist * dist)
	for _, c := range []float64{got.X, got.Y, got.Z} {
		if math.Abs(c-expected) > 1e-3 {
			t.Errorf("Expected %f per channel, got %v", expected, got)
		}
	}
}

func TestLocalLighting_BackFacingPlane(t *testing.T) {
	s := scene.New("test")
	s.AddObject(floor(true))
	s.AddAreaLight(smallLight(2, 4))

	d := NewDirectLighting(s, DefaultConfig())
	if got := d.LocalLighting(hitFloor(t, s), core.NewSeededSampler(42)); !got.IsZero() {
		t.Errorf("Expected black for a back-facing plane, got %v", got)
	}
}

// clearWorld never occludes, so only the geometric term decides the result
type clearWorld struct {
	lights []core.Surface
}

func (w clearWorld) NearestHit(in *core.Interaction) core.Surface { return nil }

func (w clearWorld) Occluded(sr core.ShadowRay) bool { return false }

func (w clearWorld) Lights() []core.Surface { return w.lights }

func TestLocalLighting_SurfacesFacingAway(t *testing.T) {
	// Light above the floor emitting upward, floor facing down
	upward := geometry.NewQuad(
		core.NewVec3(-0.01, -0.01, 2),
		core.NewVec3(0.02, 0, 0),
		core.NewVec3(0, 0.02, 0),
		material.NewLight(core.White, 4),
	)

	tests := []struct {
		name   string
		target *geometry.Quad
		light  *geometry.Quad
	}{
		{"both facing away", floor(true), upward},
		{"light facing away", floor(false), upward},
		{"target facing away", floor(true), smallLight(2, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := core.NewPrimaryInteraction(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
			in.Target = tt.target
			in.SetEnd(1)

			d := NewDirectLighting(clearWorld{lights: []core.Surface{tt.light}}, DefaultConfig())
			if got := d.LocalLighting(&in, core.NewSeededSampler(42)); !got.IsZero() {
				t.Errorf("Expected black, got %v", got)
			}
		})
	}
}

func TestLocalLighting_Shadowed(t *testing.T) {
	s := scene.New("test")
	s.AddObject(floor(false))
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, 1), 0.2, material.NewLambertian(core.White)))
	s.AddAreaLight(smallLight(2, 4))

	in := core.NewPrimaryInteraction(core.NewVec3(0.5, 0, 1), core.NewVec3(-0.5, 0, -1))
	s.NearestHit(&in)

	d := NewDirectLighting(s, DefaultConfig())
	var stats TraceStats
	if got := d.estimate(&in, core.NewSeededSampler(42), &stats); !got.IsZero() {
		t.Errorf("Expected black in shadow, got %v", got)
	}
	if stats.ShadowRays != 1 || stats.Occluded != 1 {
		t.Errorf("Expected 1 occluded shadow ray, got %+v", stats)
	}
}

func TestLocalLighting_SpecialCases(t *testing.T) {
	light := smallLight(2, 4)
	s := scene.New("test")
	s.AddObject(floor(false))
	s.AddAreaLight(light)

	t.Run("no target", func(t *testing.T) {
		in := core.NewPrimaryInteraction(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1))
		if got := NewDirectLighting(s, DefaultConfig()).LocalLighting(&in, core.NewSeededSampler(1)); !got.IsZero() {
			t.Errorf("Expected black, got %v", got)
		}
	})

	t.Run("emitter returns its color", func(t *testing.T) {
		in := core.NewPrimaryInteraction(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))
		s.NearestHit(&in)
		if in.Target != light {
			t.Fatalf("Expected to hit the light, got %v", in.Target)
		}
		if got := NewDirectLighting(s, DefaultConfig()).LocalLighting(&in, core.NewSeededSampler(1)); !got.Equals(core.White) {
			t.Errorf("Expected white, got %v", got)
		}
	})

	t.Run("zero shadow rays", func(t *testing.T) {
		config := DefaultConfig()
		config.ShadowRays = 0
		if got := NewDirectLighting(s, config).LocalLighting(hitFloor(t, s), core.NewSeededSampler(1)); !got.IsZero() {
			t.Errorf("Expected black without shadow rays, got %v", got)
		}
	})
}

func TestLocalLighting_LightCountNormalization(t *testing.T) {
	single := scene.New("single")
	single.AddObject(floor(false))
	single.AddAreaLight(smallLight(2, 4))

	double := scene.New("double")
	double.AddObject(floor(false))
	double.AddAreaLight(smallLight(2, 4))
	double.AddAreaLight(smallLight(2, 4))

	one := NewDirectLighting(single, DefaultConfig()).LocalLighting(hitFloor(t, single), core.NewSeededSampler(3))
	two := NewDirectLighting(double, DefaultConfig()).LocalLighting(hitFloor(t, double), core.NewSeededSampler(3))

	// Two coincident lights are each divided by the light count, so the
	// estimate does not double
	if one.Subtract(two).Length() > 1e-3 {
		t.Errorf("Expected %v for two coincident lights, got %v", one, two)
	}
}
