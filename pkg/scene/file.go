package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/df07/go-pathtree/pkg/core"
	"github.com/df07/go-pathtree/pkg/geometry"
	"github.com/df07/go-pathtree/pkg/loaders"
)

// File is the TOML layout of a scene description
type File struct {
	Name      string                  `toml:"name"`
	Materials map[string]MaterialSpec `toml:"materials"`
	Triangles []TriangleSpec          `toml:"triangle"`
	Quads     []QuadSpec              `toml:"quad"`
	Spheres   []SphereSpec            `toml:"sphere"`
	Boxes     []BoxSpec               `toml:"box"`
	Meshes    []MeshSpec              `toml:"mesh"`

	dir string // Base directory for relative PLY paths
}

// MaterialSpec describes a named material
type MaterialSpec struct {
	Kind        string     `toml:"kind"` // "diffuse", "mirror" or "light"
	Color       [3]float64 `toml:"color"`
	Emittance   float64    `toml:"emittance"`
	Reflectance float64    `toml:"reflectance"` // Diffuse only, 0 keeps the default
}

// TriangleSpec describes a triangle
type TriangleSpec struct {
	Vertices [3][3]float64 `toml:"vertices"`
	Material string        `toml:"material"`
	Light    bool          `toml:"light"` // Optional, emitters are always lights
}

// QuadSpec describes a parallelogram
type QuadSpec struct {
	Corner   [3]float64 `toml:"corner"`
	U        [3]float64 `toml:"u"`
	V        [3]float64 `toml:"v"`
	Material string     `toml:"material"`
	Light    bool       `toml:"light"` // Optional, emitters are always lights
}

// SphereSpec describes a sphere
type SphereSpec struct {
	Center   [3]float64 `toml:"center"`
	Radius   float64    `toml:"radius"`
	Material string     `toml:"material"`
	Light    bool       `toml:"light"` // Optional, emitters are always lights
}

// BoxSpec describes a box by center, half-extents and rotation in radians
type BoxSpec struct {
	Center   [3]float64 `toml:"center"`
	Size     [3]float64 `toml:"size"`
	Rotation [3]float64 `toml:"rotation"`
	Material string     `toml:"material"`
}

// MeshSpec describes a triangle mesh, either inline or from a PLY file.
// Transforms apply in order: scale, rotate about the mesh center, translate.
type MeshSpec struct {
	Vertices  [][3]float64 `toml:"vertices"`
	Faces     []int        `toml:"faces"`
	PLY       string       `toml:"ply"` // Relative to the scene file
	Scale     float64      `toml:"scale"`
	Rotation  [3]float64   `toml:"rotation"`
	Translate [3]float64   `toml:"translate"`
	Material  string       `toml:"material"`
}

// LoadFile reads and builds a TOML scene file
func LoadFile(path string, mats Materials) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: reading %s: %w", path, err)
	}

	s, err := decode(string(data), filepath.Dir(path), mats)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	logger.Infof("loaded scene %q from %s: %d objects, %d area lights", s.Name, path, len(s.Objects), len(s.AreaLights))
	return s, nil
}

// Decode builds a scene from a TOML description. Relative PLY paths are
// resolved against the working directory.
func Decode(data string, mats Materials) (*Scene, error) {
	return decode(data, "", mats)
}

func decode(data, dir string, mats Materials) (*Scene, error) {
	file := File{dir: dir}
	md, err := toml.Decode(data, &file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidScene, undecoded)
	}
	return file.Build(mats)
}

// Build creates the scene graph described by the file
func (f *File) Build(mats Materials) (*Scene, error) {
	materials := make(map[string]core.Material, len(f.Materials))
	for name, spec := range f.Materials {
		m, err := spec.build(mats)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = m
	}

	lookup := func(name string) (core.Material, error) {
		m, ok := materials[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
		}
		return m, nil
	}

	s := New(f.Name)
	// Emitters are always lights; the flag only asserts it
	add := func(surface core.Surface, light bool) error {
		if light && !core.IsEmitter(surface.Material()) {
			return fmt.Errorf("%w: light = true on a material that does not emit", ErrInvalidScene)
		}
		s.Add(surface)
		return nil
	}

	for i, t := range f.Triangles {
		m, err := lookup(t.Material)
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
		if err := add(geometry.NewTriangle(vec(t.Vertices[0]), vec(t.Vertices[1]), vec(t.Vertices[2]), m), t.Light); err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
	}

	for i, q := range f.Quads {
		m, err := lookup(q.Material)
		if err != nil {
			return nil, fmt.Errorf("quad %d: %w", i, err)
		}
		if vec(q.U).Cross(vec(q.V)).IsZero() {
			return nil, fmt.Errorf("quad %d: %w: degenerate edges", i, ErrInvalidScene)
		}
		if err := add(geometry.NewQuad(vec(q.Corner), vec(q.U), vec(q.V), m), q.Light); err != nil {
			return nil, fmt.Errorf("quad %d: %w", i, err)
		}
	}

	for i, sp := range f.Spheres {
		m, err := lookup(sp.Material)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		if sp.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: %w: radius must be positive", i, ErrInvalidScene)
		}
		if err := add(geometry.NewSphere(vec(sp.Center), sp.Radius, m), sp.Light); err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
	}

	for i, b := range f.Boxes {
		m, err := lookup(b.Material)
		if err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
		s.AddBox(geometry.NewBox(vec(b.Center), vec(b.Size), vec(b.Rotation), m))
	}

	for i, spec := range f.Meshes {
		m, err := lookup(spec.Material)
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		mesh, err := spec.build(f.dir, m)
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		s.AddMesh(mesh)
	}

	return s, nil
}

func (spec MaterialSpec) build(mats Materials) (core.Material, error) {
	color := vec(spec.Color)
	switch spec.Kind {
	case "diffuse":
		if spec.Reflectance > 0 {
			mats.Reflectance = spec.Reflectance
		}
		return mats.Diffuse(color), nil
	case "mirror":
		return mats.Mirror(), nil
	case "light":
		if spec.Emittance <= 0 {
			return nil, fmt.Errorf("%w: light emittance must be positive", ErrInvalidScene)
		}
		return mats.Light(color, spec.Emittance), nil
	default:
		return nil, fmt.Errorf("%w: unknown material kind %q", ErrInvalidScene, spec.Kind)
	}
}

func (spec MeshSpec) build(dir string, m core.Material) (*geometry.TriangleMesh, error) {
	vertices := make([]core.Vec3, len(spec.Vertices))
	for i, v := range spec.Vertices {
		vertices[i] = vec(v)
	}
	faces := spec.Faces

	if spec.PLY != "" {
		if len(vertices) > 0 || len(faces) > 0 {
			return nil, fmt.Errorf("%w: ply and inline geometry are exclusive", ErrInvalidScene)
		}
		path := spec.PLY
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		data, err := loaders.LoadPLY(path)
		if err != nil {
			return nil, err
		}
		logger.Debugf("read %d vertices and %d triangles from %s", len(data.Vertices), data.TriangleCount(), path)
		vertices, faces = data.Vertices, data.Faces
	}

	if spec.Scale < 0 {
		return nil, fmt.Errorf("%w: scale must not be negative", ErrInvalidScene)
	}
	options := &geometry.TriangleMeshOptions{Scale: spec.Scale, Translate: vec(spec.Translate)}
	if rotation := vec(spec.Rotation); !rotation.IsZero() {
		options.Rotation = &rotation
	}

	mesh, err := geometry.NewTriangleMesh(vertices, faces, m, options)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	return mesh, nil
}

func vec(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
