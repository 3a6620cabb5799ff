package geometry

import (
	"github.com/df07/go-pathtree/pkg/core"
)

// minHitDistance rejects self-hits at the ray origin
const minHitDistance = 1e-6

// sampleShadowRays builds count shadow rays from origin toward points drawn by samplePoint
func sampleShadowRays(origin core.Vec3, count int, sampler core.Sampler, samplePoint func(core.Vec2) core.Vec3) []core.ShadowRay {
	if count <= 0 {
		return nil
	}
	rays := make([]core.ShadowRay, 0, count)
	for i := 0; i < count; i++ {
		rays = append(rays, core.NewShadowRay(origin, samplePoint(sampler.Get2D())))
	}
	return rays
}
