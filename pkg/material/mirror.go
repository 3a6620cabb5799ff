package material

import (
	"github.com/df07/go-pathtree/pkg/core"
)

// Mirror is a perfect specular reflector. Its base color is black so it
// never picks up direct light itself; all of its color arrives through the
// reflected child.
type Mirror struct {
	surface
}

// NewMirror creates a mirror with default settings
func NewMirror() *Mirror {
	return NewMirrorWithSettings(DefaultSettings())
}

// NewMirrorWithSettings creates a mirror with custom settings
func NewMirrorWithSettings(settings Settings) *Mirror {
	m := &Mirror{surface: newSurface(core.Black, 0, settings)}
	m.absorption = 0
	return m
}

// Scatter returns the single perfectly reflected interaction
func (m *Mirror) Scatter(incoming *core.Interaction, sampler core.Sampler) []core.Interaction {
	normal := incoming.HitNormal()
	reflected := core.NewInteraction(
		m.offsetOrigin(incoming, normal),
		incoming.Direction.Reflect(normal),
		m.childImportance(incoming, incoming.Importance),
		incoming.Depth+1,
	)
	return []core.Interaction{reflected}
}
