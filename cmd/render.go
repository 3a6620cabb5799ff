package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtree/pkg/config"
	"github.com/df07/go-pathtree/pkg/renderer"
	"github.com/df07/go-pathtree/pkg/scene"
	"github.com/urfave/cli"
)

// RenderFlags are the flags of the render command
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "config, c",
		Usage: "TOML configuration file",
	},
	cli.StringFlag{
		Name:  "scene, s",
		Value: "room",
		Usage: "built-in scene name or TOML scene file",
	},
	cli.StringFlag{
		Name:  "out, o",
		Usage: "image filename for the rendered frame",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "frame width",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "frame height",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel",
	},
	cli.IntFlag{
		Name:  "workers",
		Usage: "row blocks rendered in parallel (0 uses every CPU)",
	},
	cli.Int64Flag{
		Name:  "seed",
		Usage: "base random seed",
	},
	cli.IntFlag{
		Name:  "observer",
		Usage: "eye position, 1 or 2",
	},
	cli.BoolFlag{
		Name:  "accelerate",
		Usage: "build a BVH for the visibility queries",
	},
}

// Render a still frame.
func Render(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	mats := scene.Materials{
		Settings:    cfg.Tracer.MaterialSettings(),
		Reflectance: cfg.Tracer.DiffuseReflectance,
	}
	sc, err := loadScene(ctx.String("scene"), mats)
	if err != nil {
		return err
	}
	if cfg.Render.Accelerate {
		sc.BuildBVH()
		logger.Info("built BVH for the visibility queries")
	}

	camera := renderer.NewCamera(cfg.Render.Width, cfg.Render.Height)
	camera.SetObserver(cfg.Camera.Observer)

	r, err := renderer.New(sc, camera, cfg.Tracer.IntegratorConfig(), renderer.Options{
		Width:   cfg.Render.Width,
		Height:  cfg.Render.Height,
		Samples: cfg.Render.Samples,
		Workers: cfg.Render.Workers,
		Seed:    cfg.Render.Seed,
	})
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering scene %q at %dx%d, %d spp", sc.Name, cfg.Render.Width, cfg.Render.Height, cfg.Render.Samples)
	stats, renderErr := r.Render(renderCtx)
	if renderErr != nil && !errors.Is(renderErr, renderer.ErrInterrupted) {
		return renderErr
	}
	if renderErr != nil {
		logger.Warning("render interrupted, writing the partial frame")
	}

	if err := createOutputDir(cfg.Render.Output); err != nil {
		return err
	}
	if err := r.Frame().WritePNG(cfg.Render.Output, cfg.Render.Gamma); err != nil {
		return err
	}

	displayRenderStats(stats)
	logger.Noticef("wrote %s", cfg.Render.Output)
	return renderErr
}

// loadConfig reads the optional configuration file and applies flag overrides
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := ctx.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if ctx.IsSet("out") {
		cfg.Render.Output = ctx.String("out")
	}
	if ctx.IsSet("width") {
		cfg.Render.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Render.Height = ctx.Int("height")
	}
	if ctx.IsSet("spp") {
		cfg.Render.Samples = ctx.Int("spp")
	}
	if ctx.IsSet("workers") {
		cfg.Render.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("seed") {
		cfg.Render.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("observer") {
		cfg.Camera.Observer = ctx.Int("observer")
	}
	if ctx.IsSet("accelerate") {
		cfg.Render.Accelerate = ctx.Bool("accelerate")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadScene resolves a built-in scene name or a TOML scene file
func loadScene(name string, mats scene.Materials) (*scene.Scene, error) {
	if strings.HasSuffix(name, ".toml") {
		return scene.LoadFile(name, mats)
	}
	return scene.Lookup(name, mats)
}

// createOutputDir makes sure the directory of the output file exists
func createOutputDir(output string) error {
	dir := filepath.Dir(output)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return nil
}
