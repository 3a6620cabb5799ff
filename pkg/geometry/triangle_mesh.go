package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtree/pkg/core"
)

var ErrInvalidMesh = errors.New("geometry: invalid triangle mesh")

// TriangleMesh is a set of triangles sharing one material. Like Box it is
// not a surface itself; the scene registers each triangle.
type TriangleMesh struct {
	triangles []*Triangle
	bbox      core.AABB
}

// TriangleMeshOptions contains optional transforms applied to the vertices
// in order: scale, rotate about Center, translate.
type TriangleMeshOptions struct {
	Scale     float64    // Uniform scale; zero means 1
	Rotation  *core.Vec3 // Rotation angles in radians (X, Y, Z)
	Center    *core.Vec3 // Rotation pivot; defaults to the center of the scaled mesh
	Translate core.Vec3
}

// NewTriangleMesh creates a mesh from vertices and face indices, each group
// of 3 indices forming one triangle.
func NewTriangleMesh(vertices []core.Vec3, faces []int, material core.Material, options *TriangleMeshOptions) (*TriangleMesh, error) {
	if len(faces) == 0 || len(faces)%3 != 0 {
		return nil, fmt.Errorf("%w: %d face indices is not a positive multiple of 3", ErrInvalidMesh, len(faces))
	}
	for _, idx := range faces {
		if idx < 0 || idx >= len(vertices) {
			return nil, fmt.Errorf("%w: face index %d out of range [0, %d)", ErrInvalidMesh, idx, len(vertices))
		}
	}

	points := transformVertices(vertices, options)

	mesh := &TriangleMesh{triangles: make([]*Triangle, 0, len(faces)/3)}
	for i := 0; i < len(faces); i += 3 {
		v0, v1, v2 := points[faces[i]], points[faces[i+1]], points[faces[i+2]]
		// Zero-area triangles have no normal
		if v1.Subtract(v0).Cross(v2.Subtract(v0)).IsZero() {
			continue
		}
		tri := NewTriangle(v0, v1, v2, material)
		if len(mesh.triangles) == 0 {
			mesh.bbox = tri.BoundingBox()
		} else {
			mesh.bbox = mesh.bbox.Union(tri.BoundingBox())
		}
		mesh.triangles = append(mesh.triangles, tri)
	}

	if len(mesh.triangles) == 0 {
		return nil, fmt.Errorf("%w: every triangle is degenerate", ErrInvalidMesh)
	}
	return mesh, nil
}

func transformVertices(vertices []core.Vec3, options *TriangleMeshOptions) []core.Vec3 {
	points := make([]core.Vec3, len(vertices))
	copy(points, vertices)
	if options == nil {
		return points
	}

	if options.Scale != 0 && options.Scale != 1 {
		for i := range points {
			points[i] = points[i].Multiply(options.Scale)
		}
	}

	if options.Rotation != nil {
		center := core.NewAABBFromPoints(points...).Center()
		if options.Center != nil {
			center = *options.Center
		}
		for i := range points {
			points[i] = points[i].Subtract(center).Rotate(*options.Rotation).Add(center)
		}
	}

	if !options.Translate.IsZero() {
		for i := range points {
			points[i] = points[i].Add(options.Translate)
		}
	}
	return points
}

// Triangles returns the triangles of the mesh
func (tm *TriangleMesh) Triangles() []*Triangle {
	return tm.triangles
}

// TriangleCount returns the number of triangles in the mesh
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}

// BoundingBox returns the bounding box of the whole mesh
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bbox
}
