package integrator

import (
	"github.com/df07/go-pathtree/pkg/core"
)

// World is the read-only view of a scene used by the tracer
type World interface {
	// NearestHit resolves the interaction's target and end point; nil means
	// the ray escaped
	NearestHit(in *core.Interaction) core.Surface

	// Occluded reports whether a non-emitter blocks the shadow ray
	Occluded(sr core.ShadowRay) bool

	// Lights returns the area lights sampled for direct lighting
	Lights() []core.Surface
}

// Integrator computes the color carried back along a primary ray
type Integrator interface {
	TraceRay(primary core.Interaction, sampler core.Sampler) Trace
}
