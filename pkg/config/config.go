// Package config loads the TOML render configuration.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/df07/go-pathtree/pkg/integrator"
	"github.com/df07/go-pathtree/pkg/material"
)

const Help = `
The configuration file is TOML with three tables:

  [render]  width, height, samples (per pixel), workers (0 uses every CPU),
            seed, output (PNG path), gamma, accelerate (BVH behind the
            visibility query)
  [tracer]  importance_threshold, color_contribution, shadow_rays,
            ray_offset, max_depth, diffuse_bounces, diffuse_reflectance,
            min_absorption, max_absorption
  [camera]  observer (1 or 2)

Missing keys keep their defaults; unknown keys are rejected. Print the
defaults with 'pathtree config'.
`

// Config is the complete render configuration
type Config struct {
	Render Render `toml:"render"`
	Tracer Tracer `toml:"tracer"`
	Camera Camera `toml:"camera"`
}

// Render controls the frame and the parallel driver
type Render struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Samples    int     `toml:"samples"`
	Workers    int     `toml:"workers"`
	Seed       int64   `toml:"seed"`
	Output     string  `toml:"output"`
	Gamma      float64 `toml:"gamma"`
	Accelerate bool    `toml:"accelerate"`
}

// Tracer holds the path tree and material constants
type Tracer struct {
	ImportanceThreshold float64 `toml:"importance_threshold"`
	ColorContribution   float64 `toml:"color_contribution"`
	ShadowRays          int     `toml:"shadow_rays"`
	RayOffset           float64 `toml:"ray_offset"`
	MaxDepth            int     `toml:"max_depth"`
	DiffuseBounces      int     `toml:"diffuse_bounces"`
	DiffuseReflectance  float64 `toml:"diffuse_reflectance"`
	MinAbsorption       float64 `toml:"min_absorption"`
	MaxAbsorption       float64 `toml:"max_absorption"`
}

// Camera selects the eye position
type Camera struct {
	Observer int `toml:"observer"`
}

// Default returns the calibrated configuration
func Default() *Config {
	tracer := integrator.DefaultConfig()
	settings := material.DefaultSettings()

	return &Config{
		Render: Render{
			Width:   800,
			Height:  800,
			Samples: 4,
			Seed:    1,
			Output:  "render.png",
			Gamma:   2.0,
		},
		Tracer: Tracer{
			ImportanceThreshold: tracer.ImportanceThreshold,
			ColorContribution:   tracer.ColorContribution,
			ShadowRays:          tracer.ShadowRays,
			RayOffset:           tracer.RayOffset,
			MaxDepth:            settings.MaxDepth,
			DiffuseBounces:      settings.DiffuseBounces,
			DiffuseReflectance:  material.DefaultReflectance,
			MinAbsorption:       settings.MinAbsorption,
			MaxAbsorption:       settings.MaxAbsorption,
		},
		Camera: Camera{Observer: 1},
	}
}

// Load reads a configuration file on top of the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg, err := Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a TOML configuration on top of the defaults and validates it
func Decode(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidConfig, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes the configuration as TOML
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks that every value is usable
func (c *Config) Validate() error {
	r, t := c.Render, c.Tracer
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return invalid("render size must be positive, got %dx%d", r.Width, r.Height)
	case r.Samples <= 0:
		return invalid("render.samples must be positive, got %d", r.Samples)
	case r.Workers < 0:
		return invalid("render.workers must not be negative, got %d", r.Workers)
	case r.Gamma <= 0:
		return invalid("render.gamma must be positive, got %f", r.Gamma)
	case t.ImportanceThreshold < 0:
		return invalid("tracer.importance_threshold must not be negative, got %f", t.ImportanceThreshold)
	case t.ColorContribution < 0:
		return invalid("tracer.color_contribution must not be negative, got %f", t.ColorContribution)
	case t.ShadowRays < 0:
		return invalid("tracer.shadow_rays must not be negative, got %d", t.ShadowRays)
	case t.RayOffset < 0:
		return invalid("tracer.ray_offset must not be negative, got %f", t.RayOffset)
	case t.MaxDepth <= 0:
		return invalid("tracer.max_depth must be positive, got %d", t.MaxDepth)
	case t.DiffuseBounces <= 0:
		return invalid("tracer.diffuse_bounces must be positive, got %d", t.DiffuseBounces)
	case t.DiffuseReflectance <= 0:
		return invalid("tracer.diffuse_reflectance must be positive, got %f", t.DiffuseReflectance)
	case t.MinAbsorption <= 0 || t.MinAbsorption > 1 || t.MaxAbsorption <= 0 || t.MaxAbsorption > 1:
		return invalid("tracer absorption bounds must lie in (0,1], got [%f, %f]", t.MinAbsorption, t.MaxAbsorption)
	case t.MinAbsorption > t.MaxAbsorption:
		return invalid("tracer.min_absorption %f exceeds max_absorption %f", t.MinAbsorption, t.MaxAbsorption)
	case c.Camera.Observer != 1 && c.Camera.Observer != 2:
		return invalid("camera.observer must be 1 or 2, got %d", c.Camera.Observer)
	}
	return nil
}

// MaterialSettings projects the tracer section onto the material settings
func (t Tracer) MaterialSettings() material.Settings {
	return material.Settings{
		MinAbsorption:  t.MinAbsorption,
		MaxAbsorption:  t.MaxAbsorption,
		MaxDepth:       t.MaxDepth,
		DiffuseBounces: t.DiffuseBounces,
		RayOffset:      t.RayOffset,
	}
}

// IntegratorConfig projects the tracer section onto the path tree config
func (t Tracer) IntegratorConfig() integrator.Config {
	return integrator.Config{
		ImportanceThreshold: t.ImportanceThreshold,
		ColorContribution:   t.ColorContribution,
		ShadowRays:          t.ShadowRays,
		RayOffset:           t.RayOffset,
	}
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
