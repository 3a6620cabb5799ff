package material

import (
	"github.com/df07/go-pathtree/pkg/core"
)

// Settings holds the tuning constants shared by all materials
type Settings struct {
	MinAbsorption  float64 // Absorption of a black surface
	MaxAbsorption  float64 // Absorption of a white surface
	MaxDepth       int     // Depth at which children lose all importance
	DiffuseBounces int     // Children generated per diffuse interaction
	RayOffset      float64 // Offset along the normal for child ray origins
}

// DefaultSettings returns the calibrated defaults
func DefaultSettings() Settings {
	return Settings{
		MinAbsorption:  0.65,
		MaxAbsorption:  0.90,
		MaxDepth:       10,
		DiffuseBounces: 1,
		RayOffset:      3e-2,
	}
}

// Absorption maps a color to a survival probability in
// [MinAbsorption, MaxAbsorption]; brighter colors absorb more
func (s Settings) Absorption(color core.Vec3) float64 {
	brightness := color.Length() / core.White.Length()
	return s.MinAbsorption + (s.MaxAbsorption-s.MinAbsorption)*brightness
}

// surface holds the data every material carries
type surface struct {
	color      core.Vec3
	emittance  float64
	absorption float64
	settings   Settings
}

func newSurface(color core.Vec3, emittance float64, settings Settings) surface {
	return surface{
		color:      color,
		emittance:  emittance,
		absorption: settings.Absorption(color),
		settings:   settings,
	}
}

// Color returns the base color
func (s *surface) Color() core.Vec3 {
	return s.color
}

// Emittance returns the emitted power
func (s *surface) Emittance() float64 {
	return s.emittance
}

// Absorption returns the Russian roulette survival probability
func (s *surface) Absorption() float64 {
	return s.absorption
}

// childImportance caps importance at the maximum depth and keeps
// zero-weight parents from producing weighted children
func (s *surface) childImportance(incoming *core.Interaction, importance float64) float64 {
	if incoming.Depth >= s.settings.MaxDepth || incoming.Importance <= 0 {
		return 0
	}
	return importance
}

// offsetOrigin lifts the hit point off the surface along its normal
func (s *surface) offsetOrigin(incoming *core.Interaction, normal core.Vec3) core.Vec3 {
	return incoming.End.Add(normal.Multiply(s.settings.RayOffset))
}
