package geometry

import (
	"github.com/df07/go-pathtree/pkg/core"
)

// Box is a rectangular box made of six outward-facing quads. It is not a
// surface itself; the scene registers each face.
type Box struct {
	Center   core.Vec3 // Center point of the box
	Size     core.Vec3 // Half-extents along each axis
	Rotation core.Vec3 // Rotation angles in radians (X, Y, Z)
	faces    [6]*Quad
}

// NewBox creates a box with the given center, half-extents, rotation and material
func NewBox(center, size, rotation core.Vec3, material core.Material) *Box {
	box := &Box{
		Center:   center,
		Size:     size,
		Rotation: rotation,
	}
	box.generateFaces(material)
	return box
}

// NewAxisAlignedBox creates a box without rotation
func NewAxisAlignedBox(center, size core.Vec3, material core.Material) *Box {
	return NewBox(center, size, core.Vec3{}, material)
}

// Faces returns the six faces of the box
func (b *Box) Faces() []*Quad {
	return b.faces[:]
}

// generateFaces creates the 6 quad faces of the box
func (b *Box) generateFaces(material core.Material) {
	corners := [8]core.Vec3{
		core.NewVec3(-1, -1, -1), // 0: left-bottom-back
		core.NewVec3(1, -1, -1),  // 1: right-bottom-back
		core.NewVec3(1, 1, -1),   // 2: right-top-back
		core.NewVec3(-1, 1, -1),  // 3: left-top-back
		core.NewVec3(-1, -1, 1),  // 4: left-bottom-front
		core.NewVec3(1, -1, 1),   // 5: right-bottom-front
		core.NewVec3(1, 1, 1),    // 6: right-top-front
		core.NewVec3(-1, 1, 1),   // 7: left-top-front
	}

	for i := range corners {
		corners[i] = corners[i].MultiplyVec(b.Size).Rotate(b.Rotation).Add(b.Center)
	}

	face := func(corner, u, v int) *Quad {
		return NewQuad(
			corners[corner],
			corners[u].Subtract(corners[corner]),
			corners[v].Subtract(corners[corner]),
			material,
		)
	}

	b.faces = [6]*Quad{
		face(4, 5, 7), // Front (Z+)
		face(1, 0, 2), // Back (Z-)
		face(5, 1, 6), // Right (X+)
		face(0, 4, 3), // Left (X-)
		face(3, 7, 2), // Top (Y+)
		face(4, 0, 5), // Bottom (Y-)
	}
}
