package scene

import (
	"github.com/df07/go-pathtree/pkg/core"
	"github.com/df07/go-pathtree/pkg/material"
)

// Materials creates materials that share one set of tracer settings
type Materials struct {
	Settings    material.Settings
	Reflectance float64 // Diffuse reflectance
}

// DefaultMaterials returns the default settings and reflectance
func DefaultMaterials() Materials {
	return Materials{
		Settings:    material.DefaultSettings(),
		Reflectance: material.DefaultReflectance,
	}
}

// Diffuse creates a Lambertian material
func (m Materials) Diffuse(color core.Vec3) *material.Lambertian {
	return material.NewLambertianWithSettings(color, m.Reflectance, m.Settings)
}

// Mirror creates a perfect mirror
func (m Materials) Mirror() *material.Mirror {
	return material.NewMirrorWithSettings(m.Settings)
}

// Light creates an emitter
func (m Materials) Light(color core.Vec3, emittance float64) *material.Light {
	return material.NewLightWithSettings(color, emittance, m.Settings)
}
