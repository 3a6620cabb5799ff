package scene

import (
	"math"

	"github.com/df07/go-pathtree/pkg/core"
	"github.com/df07/go-pathtree/pkg/geometry"
)

// ShadowEpsilon is the distance below which a shadow ray hit is treated as
// the ray leaving its own surface
const ShadowEpsilon = 1e-4

// Scene owns every surface and the subset that act as area lights. It is
// read-only once rendering starts.
type Scene struct {
	Name       string
	Objects    []core.Surface // Everything a ray can hit, lights included
	AreaLights []core.Surface // Surfaces sampled for direct lighting
	bvh        *core.BVH
}

// New creates an empty scene
func New(name string) *Scene {
	return &Scene{Name: name}
}

// AddObject adds a surface that can be hit but is not sampled as a light
func (s *Scene) AddObject(obj core.Surface) {
	s.Objects = append(s.Objects, obj)
	s.bvh = nil
}

// AddAreaLight adds a light to both the light list and the object list so
// that it is visible to rays
func (s *Scene) AddAreaLight(light core.Surface) {
	s.AreaLights = append(s.AreaLights, light)
	s.AddObject(light)
}

// Add registers a surface as an area light when its material emits and as
// a plain object otherwise
func (s *Scene) Add(surface core.Surface) {
	if core.IsEmitter(surface.Material()) {
		s.AddAreaLight(surface)
		return
	}
	s.AddObject(surface)
}

// AddBox adds the six faces of a box as separate objects
func (s *Scene) AddBox(box *geometry.Box) {
	for _, face := range box.Faces() {
		s.Add(face)
	}
}

// AddMesh adds each triangle of a mesh
func (s *Scene) AddMesh(mesh *geometry.TriangleMesh) {
	for _, tri := range mesh.Triangles() {
		s.Add(tri)
	}
}

// Lights returns the area lights
func (s *Scene) Lights() []core.Surface {
	return s.AreaLights
}

// BuildBVH puts a bounding volume hierarchy behind NearestHit and Occluded.
// Adding objects afterwards drops it again.
func (s *Scene) BuildBVH() {
	s.bvh = core.NewBVH(s.Objects)
}

// Accelerated reports whether a BVH is in use
func (s *Scene) Accelerated() bool {
	return s.bvh != nil
}

// NearestHit finds the closest surface in front of the interaction's ray and
// commits the hit point and target onto it. It returns nil when the ray
// escapes the scene.
func (s *Scene) NearestHit(in *core.Interaction) core.Surface {
	in.Target = nil
	ray := in.Ray()

	var nearest core.Surface
	closest := math.MaxFloat64
	if s.bvh != nil {
		nearest, closest = s.bvh.Nearest(ray)
	} else {
		for _, obj := range s.Objects {
			if t := obj.Intersect(ray); t > 0 && t < closest {
				closest = t
				nearest = obj
			}
		}
	}

	if nearest != nil {
		in.Target = nearest
		in.SetEnd(closest)
	}
	return nearest
}

// Occluded reports whether a non-emitting surface blocks the shadow ray
// before it reaches its sampled point
func (s *Scene) Occluded(sr core.ShadowRay) bool {
	if s.bvh != nil {
		return s.bvh.AnyHit(sr.Ray, ShadowEpsilon, sr.Distance, blocksLight)
	}

	for _, obj := range s.Objects {
		if !blocksLight(obj) {
			continue
		}
		if t := obj.Intersect(sr.Ray); t > ShadowEpsilon && t < sr.Distance {
			return true
		}
	}
	return false
}

// blocksLight reports whether a surface can occlude a shadow ray; lights
// never do
func blocksLight(obj core.Surface) bool {
	return !core.IsEmitter(obj.Material())
}
