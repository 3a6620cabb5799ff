package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/df07/go-pathtree/pkg/core"
	"github.com/df07/go-pathtree/pkg/geometry"
	"github.com/df07/go-pathtree/pkg/log"
)

var logger = log.New("scene")

// Info describes a built-in scene or a scene file
type Info struct {
	Name        string
	Description string
	Path        string // Scene file path, empty for built-ins
}

type builtin struct {
	description string
	build       func(Materials) *Scene
}

var builtins = map[string]builtin{
	"cornell": {"closed Cornell box with red and green side walls, a mirror sphere and a white sphere", NewCornellScene},
	"room":    {"hexagonal room with a ceiling light, a mirror sphere, a box and a diffuse sphere", NewRoomScene},
	"mirror":  {"mirror wall facing an area light behind the camera", NewMirrorScene},
	"plane":   {"white floor under an area light inside a dark enclosure", NewPlaneScene},
}

// Lookup builds the built-in scene with the given name
func Lookup(name string, mats Materials) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	s := b.build(mats)
	logger.Infof("built scene %q: %d objects, %d area lights", name, len(s.Objects), len(s.AreaLights))
	return s, nil
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtins returns every built-in scene with its description
func Builtins() []Info {
	infos := make([]Info, 0, len(builtins))
	for _, name := range Names() {
		infos = append(infos, Info{Name: name, Description: builtins[name].description})
	}
	return infos
}

// Room dimensions. The camera sits at negative X looking down +X with Z up.
const (
	roomFloor   = -5.0
	roomCeiling = 5.0
)

// roomOutline lists the hexagon corners counter-clockwise seen from above
var roomOutline = [6]core.Vec2{
	{X: -3, Y: 0},
	{X: 0, Y: -6},
	{X: 10, Y: -6},
	{X: 13, Y: 0},
	{X: 10, Y: 6},
	{X: 0, Y: 6},
}

// NewRoomScene creates the hexagonal room
func NewRoomScene(mats Materials) *Scene {
	s := New("room")

	white := mats.Diffuse(core.White)
	wallColors := [6]core.Vec3{
		core.NewVec3(1.0, 0.4, 0.7), // pink
		core.NewVec3(1.0, 0.0, 0.0), // red
		core.NewVec3(1.0, 1.0, 0.0), // yellow
		core.NewVec3(0.0, 0.5, 0.5), // teal
		core.NewVec3(0.0, 1.0, 0.0), // green
		core.NewVec3(0.0, 0.0, 1.0), // blue
	}

	// Floor and ceiling as triangle fans around the room center
	center := core.NewVec2(5, 0)
	for i := range roomOutline {
		a, b := roomOutline[i], roomOutline[(i+1)%len(roomOutline)]
		s.AddObject(geometry.NewTriangle(
			core.NewVec3(center.X, center.Y, roomFloor),
			core.NewVec3(a.X, a.Y, roomFloor),
			core.NewVec3(b.X, b.Y, roomFloor),
			white,
		))
		s.AddObject(geometry.NewTriangle(
			core.NewVec3(center.X, center.Y, roomCeiling),
			core.NewVec3(b.X, b.Y, roomCeiling),
			core.NewVec3(a.X, a.Y, roomCeiling),
			white,
		))
	}

	// Walls face inward: up × edge points to the left of a counter-clockwise edge
	for i := range roomOutline {
		a, b := roomOutline[i], roomOutline[(i+1)%len(roomOutline)]
		s.AddObject(geometry.NewQuad(
			core.NewVec3(a.X, a.Y, roomFloor),
			core.NewVec3(0, 0, roomCeiling-roomFloor),
			core.NewVec3(b.X-a.X, b.Y-a.Y, 0),
			mats.Diffuse(wallColors[i]),
		))
	}

	// Ceiling light facing down
	s.AddAreaLight(geometry.NewQuad(
		core.NewVec3(4, -1, roomCeiling-0.01),
		core.NewVec3(0, 2, 0),
		core.NewVec3(2, 0, 0),
		mats.Light(core.White, 40),
	))

	s.AddObject(geometry.NewSphere(core.NewVec3(9, -3, -2.5), 1.5, mats.Mirror()))
	s.AddObject(geometry.NewSphere(core.NewVec3(6, 3, -3.5), 1.5, mats.Diffuse(core.NewVec3(1.0, 0.4, 0.7))))
	s.AddBox(geometry.NewBox(
		core.NewVec3(8, 1, -3.99),
		core.NewVec3(1, 1, 1),
		core.NewVec3(0, 0, math.Pi/6),
		mats.Diffuse(core.NewVec3(0.0, 1.0, 1.0)),
	))

	return s
}

// NewMirrorScene creates a mirror wall at x=4 facing an area light at x=-3
func NewMirrorScene(mats Materials) *Scene {
	s := New("mirror")

	// Normal (0,0,1) × (0,1,0) = (-1,0,0), toward the camera
	s.AddObject(geometry.NewQuad(
		core.NewVec3(4, -12, -12),
		core.NewVec3(0, 0, 24),
		core.NewVec3(0, 24, 0),
		mats.Mirror(),
	))

	// Normal (0,1,0) × (0,0,1) = (1,0,0), toward the mirror
	s.AddAreaLight(geometry.NewQuad(
		core.NewVec3(-3, -8, -8),
		core.NewVec3(0, 16, 0),
		core.NewVec3(0, 0, 16),
		mats.Light(core.White, 1),
	))

	return s
}

// NewPlaneScene creates a white floor lit from above
func NewPlaneScene(mats Materials) *Scene {
	s := New("plane")

	lo := core.NewVec3(-3, -10, -2)
	hi := core.NewVec3(17, 10, 8)
	dark := mats.Diffuse(core.NewVec3(0.1, 0.1, 0.1))
	for i, wall := range inwardBox(lo, hi) {
		m := dark
		if i == 0 {
			m = mats.Diffuse(core.White)
		}
		s.AddObject(geometry.NewQuad(wall.corner, wall.u, wall.v, m))
	}

	s.AddAreaLight(geometry.NewQuad(
		core.NewVec3(4, -1, 4),
		core.NewVec3(0, 2, 0),
		core.NewVec3(2, 0, 0),
		mats.Light(core.White, 40),
	))

	return s
}

type quadSpec struct {
	corner, u, v core.Vec3
}

// inwardBox returns the six walls of an axis-aligned box with normals
// pointing into the box, floor first
func inwardBox(lo, hi core.Vec3) [6]quadSpec {
	size := hi.Subtract(lo)
	dx := core.NewVec3(size.X, 0, 0)
	dy := core.NewVec3(0, size.Y, 0)
	dz := core.NewVec3(0, 0, size.Z)
	return [6]quadSpec{
		{lo, dx, dy},         // floor, +Z
		{lo.Add(dz), dy, dx}, // ceiling, -Z
		{lo, dy, dz},         // x=min, +X
		{lo.Add(dx), dz, dy}, // x=max, -X
		{lo, dz, dx},         // y=min, +Y
		{lo.Add(dy), dx, dz}, // y=max, -Y
	}
}
