package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtree/pkg/config"
	"github.com/df07/go-pathtree/pkg/log"
	"github.com/df07/go-pathtree/pkg/scene"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"pathtree"}, args...))
	return out.String(), err
}

func TestConfigCommand(t *testing.T) {
	out, err := runApp(t, "config")
	if err != nil {
		t.Fatalf("config command failed: %v", err)
	}

	cfg, err := config.Decode(out)
	if err != nil {
		t.Fatalf("Printed config does not decode: %v\n%s", err, out)
	}
	if cfg.Render.Width != config.Default().Render.Width {
		t.Errorf("Expected default width, got %d", cfg.Render.Width)
	}
}

func TestLogLevelFlag(t *testing.T) {
	defer log.SetLevel(log.Notice)

	tests := []struct {
		name    string
		args    []string
		want    log.Level
		wantErr bool
	}{
		{"named level", []string{"--log-level", "error", "config"}, log.Error, false},
		{"verbose flag wins", []string{"--log-level", "warning", "-vv", "config"}, log.Debug, false},
		{"unknown level", []string{"--log-level", "loud", "config"}, log.Notice, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log.SetLevel(log.Notice)
			_, err := runApp(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if got := log.CurrentLevel(); got != tt.want {
				t.Errorf("Expected level %v, got %v", tt.want, got)
			}
		})
	}
}

func TestScenesCommand(t *testing.T) {
	out, err := runApp(t, "scenes", "--dir", "scenes")
	if err != nil {
		t.Fatalf("scenes command failed: %v", err)
	}
	for _, name := range append(scene.Names(), "spheres") {
		if !strings.Contains(out, name) {
			t.Errorf("Expected %q in the scene list:\n%s", name, out)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name  string
		scene string
	}{
		{"built-in scene", "plane"},
		{"scene file", filepath.Join("scenes", "spheres.toml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "out", "frame.png")
			if _, err := runApp(t, "render", "--scene", tt.scene, "--out", output,
				"--width", "6", "--height", "4", "--spp", "1", "--workers", "2", "--accelerate"); err != nil {
				t.Fatalf("render command failed: %v", err)
			}

			file, err := os.Open(output)
			if err != nil {
				t.Fatalf("Output not written: %v", err)
			}
			defer file.Close()

			img, err := png.Decode(file)
			if err != nil {
				t.Fatalf("Output is not a PNG: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
				t.Errorf("Expected 6x4 image, got %v", b)
			}
		})
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	if _, err := runApp(t, "render", "--scene", "nope", "--out", filepath.Join(t.TempDir(), "x.png")); !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
	if _, err := runApp(t, "render", "--spp", "0", "--out", filepath.Join(t.TempDir(), "x.png")); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}
