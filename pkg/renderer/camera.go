package renderer

import (
	"github.com/df07/go-pathtree/pkg/core"
)

// Camera shoots primary rays from one of two eye positions through a fixed
// image plane at x=0 spanning y and z in [-1, 1]. The view looks down +X
// with Z up, so image columns run toward -Y.
type Camera struct {
	Plane     [2][2]core.Vec3 // Plane corners indexed [column side][row side]
	Observers [2]core.Vec3
	observer  int // Index into Observers
	width     int
	height    int
}

// NewCamera creates a camera rendering width x height pixels from the first
// observer
func NewCamera(width, height int) *Camera {
	return &Camera{
		Plane: [2][2]core.Vec3{
			{core.NewVec3(0, 1, 1), core.NewVec3(0, 1, -1)},
			{core.NewVec3(0, -1, 1), core.NewVec3(0, -1, -1)},
		},
		Observers: [2]core.Vec3{
			core.NewVec3(-2, 0, 0),
			core.NewVec3(-1, 0, 0),
		},
		width:  width,
		height: height,
	}
}

// ToggleObserver switches between the two eye positions
func (c *Camera) ToggleObserver() {
	c.observer = 1 - c.observer
}

// SetObserver selects eye position 1 or 2
func (c *Camera) SetObserver(n int) {
	if n == 2 {
		c.observer = 1
	} else {
		c.observer = 0
	}
}

// Observer returns the current eye position
func (c *Camera) Observer() core.Vec3 {
	return c.Observers[c.observer]
}

// PlanePoint maps image coordinates in [0,1]² to the image plane; (0,0) is
// the top-left corner
func (c *Camera) PlanePoint(s, t float64) core.Vec3 {
	top := c.Plane[0][0].Add(c.Plane[1][0].Subtract(c.Plane[0][0]).Multiply(s))
	bottom := c.Plane[0][1].Add(c.Plane[1][1].Subtract(c.Plane[0][1]).Multiply(s))
	return top.Add(bottom.Subtract(top).Multiply(t))
}

// Ray returns a primary interaction through a random point of pixel (i, j),
// where i is the column and j the row counted from the top
func (c *Camera) Ray(i, j int, sampler core.Sampler) core.Interaction {
	jitter := sampler.Get2D()
	s := (float64(i) + jitter.X) / float64(c.width)
	t := (float64(j) + jitter.Y) / float64(c.height)

	eye := c.Observer()
	return core.NewPrimaryInteraction(eye, c.PlanePoint(s, t).Subtract(eye))
}
