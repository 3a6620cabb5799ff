package scene

import (
	"github.com/df07/go-pathtree/pkg/core"
	"github.com/df07/go-pathtree/pkg/geometry"
)

// NewCornellScene creates a closed Cornell box around the camera: red wall
// on the left, green on the right, a ceiling light, a mirror sphere and a
// white sphere.
func NewCornellScene(mats Materials) *Scene {
	s := New("cornell")

	white := mats.Diffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := mats.Diffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := mats.Diffuse(core.NewVec3(0.12, 0.45, 0.15))

	// The camera looks down +X with +Z up, so the left wall sits at y=max
	walls := [6]core.Material{white, white, white, white, green, red}
	for i, wall := range inwardBox(core.NewVec3(-3, -3, -3), core.NewVec3(7, 3, 3)) {
		s.AddObject(geometry.NewQuad(wall.corner, wall.u, wall.v, walls[i]))
	}

	s.AddAreaLight(geometry.NewQuad(
		core.NewVec3(2, -1, 2.99),
		core.NewVec3(0, 2, 0),
		core.NewVec3(2, 0, 0),
		mats.Light(core.White, 30),
	))

	s.AddObject(geometry.NewSphere(core.NewVec3(4, 1.2, -1.99), 1, mats.Mirror()))
	s.AddObject(geometry.NewSphere(core.NewVec3(5, -1.3, -1.89), 1.1, white))

	return s
}
