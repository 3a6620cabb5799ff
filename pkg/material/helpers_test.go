package material

import (
	"github.com/df07/go-pathtree/pkg/core"
)

// flatSurface is a stand-in target with a constant normal
type flatSurface struct {
	normal   core.Vec3
	material core.Material
}

func (f flatSurface) Intersect(ray core.Ray) float64 { return 0 }

func (f flatSurface) Normal(point core.Vec3) core.Vec3 { return f.normal }

func (f flatSurface) Material() core.Material { return f.material }

func (f flatSurface) ShadowRays(origin core.Vec3, count int, sampler core.Sampler) []core.ShadowRay {
	return nil
}

func (f flatSurface) BoundingBox() core.AABB { return core.AABB{} }

// hitAt builds an interaction that has already resolved against a flat target
func hitAt(point, direction, normal core.Vec3, importance float64, depth int, m core.Material) *core.Interaction {
	incoming := core.NewInteraction(point.Subtract(direction), direction, importance, depth)
	incoming.End = point
	incoming.Target = flatSurface{normal: normal, material: m}
	return &incoming
}

// fixedSampler replays a preset sequence of 1D values
type fixedSampler struct {
	values []float64
	next   int
}

func (f *fixedSampler) Get1D() float64 {
	v := f.values[f.next%len(f.values)]
	f.next++
	return v
}

func (f *fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(f.Get1D(), f.Get1D())
}
