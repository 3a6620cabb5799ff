package core

import (
	"math"
	"testing"
)

// mockSurface for testing
type mockSurface struct {
	boundingBox AABB
	distance    float64 // distance returned for rays travelling +X, 0 otherwise
	material    Material
}

func (m mockSurface) Intersect(ray Ray) float64 {
	if ray.Direction.X > 0 {
		return m.distance
	}
	return 0
}

func (m mockSurface) Normal(point Vec3) Vec3 { return NewVec3(-1, 0, 0) }

func (m mockSurface) Material() Material { return m.material }

func (m mockSurface) ShadowRays(origin Vec3, count int, sampler Sampler) []ShadowRay { return nil }

func (m mockSurface) BoundingBox() AABB { return m.boundingBox }

func unitBoxAt(x float64) AABB {
	return NewAABB(NewVec3(x, 0, 0), NewVec3(x+1, 1, 1))
}

func TestBVH_LeafThresholdBoundary(t *testing.T) {
	surfaces := make([]Surface, 8)
	for i := range surfaces {
		surfaces[i] = mockSurface{boundingBox: unitBoxAt(float64(i))}
	}

	stats := NewBVH(surfaces).getStats()
	if stats.totalNodes != 1 || stats.leafNodes != 1 {
		t.Errorf("Expected a single leaf for %d surfaces, got %+v", len(surfaces), stats)
	}

	surfaces = append(surfaces, mockSurface{boundingBox: unitBoxAt(8)})
	stats = NewBVH(surfaces).getStats()
	if stats.totalNodes == 1 {
		t.Errorf("Expected split for %d surfaces, but got single node", len(surfaces))
	}
	if stats.leafNodes < 2 {
		t.Errorf("Expected at least 2 leaf nodes after split, got %d", stats.leafNodes)
	}
	if stats.totalSurfaces != len(surfaces) {
		t.Errorf("Expected %d surfaces in leaves, got %d", len(surfaces), stats.totalSurfaces)
	}
}

func TestBVH_Empty(t *testing.T) {
	bvh := NewBVH(nil)
	if bvh.Root != nil {
		t.Error("Expected nil root for empty BVH")
	}

	ray := NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0))
	if hit, _ := bvh.Nearest(ray); hit != nil {
		t.Error("Expected no hit for empty BVH")
	}
	if bvh.AnyHit(ray, 0, 100, func(Surface) bool { return true }) {
		t.Error("Expected no occluder for empty BVH")
	}
}

func TestBVH_NearestPicksClosest(t *testing.T) {
	surfaces := []Surface{
		mockSurface{boundingBox: NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1)), distance: 2.0},
		mockSurface{boundingBox: NewAABB(NewVec3(0.5, 0, 0), NewVec3(1.5, 1, 1)), distance: 1.0},
		mockSurface{boundingBox: NewAABB(NewVec3(1.0, 0, 0), NewVec3(2.0, 1, 1)), distance: 3.0},
	}

	// Enough far-away filler to force internal nodes
	for i := 0; i < 20; i++ {
		surfaces = append(surfaces, mockSurface{boundingBox: unitBoxAt(float64(10 + i)), distance: float64(20 + i)})
	}

	bvh := NewBVH(surfaces)
	ray := NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(1, 0, 0))

	hit, distance := bvh.Nearest(ray)
	if hit == nil {
		t.Fatal("Expected hit")
	}
	if math.Abs(distance-1.0) > 1e-9 {
		t.Errorf("Expected closest hit at t=1.0, got t=%f", distance)
	}
}

func TestBVH_NonPositiveDistanceIsMiss(t *testing.T) {
	bvh := NewBVH([]Surface{
		mockSurface{boundingBox: NewAABB(NewVec3(0, 0, 0), NewVec3(2, 2, 2)), distance: -1},
		mockSurface{boundingBox: NewAABB(NewVec3(0, 0, 0), NewVec3(2, 2, 2)), distance: 0},
	})

	ray := NewRay(NewVec3(-1, 1, 1), NewVec3(1, 0, 0))
	if hit, _ := bvh.Nearest(ray); hit != nil {
		t.Error("Expected miss for non-positive distances")
	}
}

func TestBVH_AnyHitRespectsRangeAndFilter(t *testing.T) {
	blocker := mockSurface{boundingBox: unitBoxAt(2), distance: 3.0}
	bvh := NewBVH([]Surface{blocker})
	ray := NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(1, 0, 0))
	all := func(Surface) bool { return true }

	tests := []struct {
		name     string
		tMax     float64
		include  func(Surface) bool
		expected bool
	}{
		{"Blocker before target", 5.0, all, true},
		{"Blocker beyond target", 2.0, all, false},
		{"Blocker at target distance", 3.0, all, false},
		{"Blocker filtered out", 5.0, func(Surface) bool { return false }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bvh.AnyHit(ray, 1e-4, tt.tMax, tt.include); got != tt.expected {
				t.Errorf("Expected %t, got %t", tt.expected, got)
			}
		})
	}
}
