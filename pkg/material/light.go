package material

import (
	"github.com/df07/go-pathtree/pkg/core"
)

// Light is the material of an area light. It terminates transport: direct
// light is gathered by sampling the light from other surfaces.
type Light struct {
	surface
}

// NewLight creates an emissive material with default settings
func NewLight(color core.Vec3, emittance float64) *Light {
	return NewLightWithSettings(color, emittance, DefaultSettings())
}

// NewLightWithSettings creates an emissive material with custom settings
func NewLightWithSettings(color core.Vec3, emittance float64, settings Settings) *Light {
	return &Light{surface: newSurface(color, emittance, settings)}
}

// Scatter returns one zero-importance reflected interaction so the path
// tree always has a child to fold
func (l *Light) Scatter(incoming *core.Interaction, sampler core.Sampler) []core.Interaction {
	normal := incoming.HitNormal()
	stopped := core.NewInteraction(
		incoming.End,
		incoming.Direction.Reflect(normal),
		0,
		incoming.Depth+1,
	)
	return []core.Interaction{stopped}
}
