package material

import (
	"github.com/df07/go-pathtree/pkg/core"
)

// DefaultReflectance is the diffuse reflectance used by NewLambertian
const DefaultReflectance = 0.2

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	surface
	Reflectance float64
}

// NewLambertian creates a diffuse material with default settings
func NewLambertian(color core.Vec3) *Lambertian {
	return NewLambertianWithSettings(color, DefaultReflectance, DefaultSettings())
}

// NewLambertianWithSettings creates a diffuse material with custom reflectance and settings
func NewLambertianWithSettings(color core.Vec3, reflectance float64, settings Settings) *Lambertian {
	return &Lambertian{
		surface:     newSurface(color, 0, settings),
		Reflectance: reflectance,
	}
}

// Scatter draws DiffuseBounces directions over the hemisphere around the
// normal. Every sample is emitted; Russian roulette only decides whether it
// keeps any importance.
func (l *Lambertian) Scatter(incoming *core.Interaction, sampler core.Sampler) []core.Interaction {
	bounces := max(1, l.settings.DiffuseBounces)
	normal := incoming.HitNormal()
	basis := core.NewShadingBasis(normal, incoming.Direction)
	origin := l.offsetOrigin(incoming, normal)

	scattered := make([]core.Interaction, 0, bounces)
	for i := 0; i < bounces; i++ {
		local := core.SampleUniformHemisphere(sampler.Get2D())
		direction := basis.ToWorld(local)

		importance := 0.0
		if sampler.Get1D() < l.absorption {
			importance = incoming.Importance * l.Reflectance / (l.absorption * float64(bounces))
		}

		scattered = append(scattered, core.NewInteraction(
			origin,
			direction,
			l.childImportance(incoming, importance),
			incoming.Depth+1,
		))
	}
	return scattered
}
