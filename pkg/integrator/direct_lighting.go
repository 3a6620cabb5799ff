package integrator

import (
	"math"

	"github.com/df07/go-pathtree/pkg/core"
)

// DirectLighting estimates the light arriving at a hit point straight from
// the scene's area lights
type DirectLighting struct {
	world      World
	shadowRays int
	rayOffset  float64
}

// NewDirectLighting creates a direct lighting estimator for a world
func NewDirectLighting(world World, config Config) *DirectLighting {
	return &DirectLighting{
		world:      world,
		shadowRays: config.ShadowRays,
		rayOffset:  config.RayOffset,
	}
}

// LocalLighting returns the direct light reflected by the interaction's
// target toward its start. Emitters return their own color.
func (d *DirectLighting) LocalLighting(in *core.Interaction, sampler core.Sampler) core.Vec3 {
	return d.estimate(in, sampler, nil)
}

func (d *DirectLighting) estimate(in *core.Interaction, sampler core.Sampler, stats *TraceStats) core.Vec3 {
	if in.Target == nil {
		return core.Black
	}

	target := in.Target.Material()
	if core.IsEmitter(target) {
		return target.Color()
	}

	lights := d.world.Lights()
	targetNormal := in.HitNormal()
	origin := in.End.Add(targetNormal.Multiply(d.rayOffset))

	total := core.Black
	for _, light := range lights {
		lightMaterial := light.Material()
		samples := light.ShadowRays(origin, d.shadowRays, sampler)

		thisLight := core.Black
		for _, sr := range samples {
			lightNormal := light.Normal(sr.Point)
			g := math.Max(0, targetNormal.Dot(sr.Ray.Direction)) * math.Max(0, sr.Ray.Direction.Negate().Dot(lightNormal))

			occluded := d.world.Occluded(sr)
			if stats != nil {
				stats.ShadowRays++
				if occluded {
					stats.Occluded++
				}
			}
			if occluded {
				continue
			}

			// Each sample is also divided by the light count
			falloff := sr.Distance * sr.Distance * float64(len(lights))
			thisLight = thisLight.Add(lightMaterial.Color().Multiply(lightMaterial.Emittance() * g / falloff))
		}

		if len(samples) > 0 {
			total = total.Add(thisLight.Multiply(1.0 / float64(len(samples))))
		}
	}

	return total.MultiplyVec(target.Color())
}
