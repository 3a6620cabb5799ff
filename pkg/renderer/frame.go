package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/df07/go-pathtree/pkg/core"
)

// Frame is a linear color buffer
type Frame struct {
	Width  int
	Height int
	pixels []core.Vec3
}

// NewFrame allocates a black frame
func NewFrame(width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidFrame, width, height)
	}
	return &Frame{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}, nil
}

// Set stores the color of pixel (i, j)
func (f *Frame) Set(i, j int, c core.Vec3) {
	f.pixels[j*f.Width+i] = c
}

// At returns the color of pixel (i, j)
func (f *Frame) At(i, j int) core.Vec3 {
	return f.pixels[j*f.Width+i]
}

// Brightest returns the largest color channel in the frame
func (f *Frame) Brightest() float64 {
	brightest := 0.0
	for _, p := range f.pixels {
		if c := p.MaxComponent(); c > brightest && !math.IsInf(c, 1) {
			brightest = c
		}
	}
	return brightest
}

// Image converts the frame to 8-bit color. Colors are scaled so that the
// brightest channel maps to white, then gamma corrected.
func (f *Frame) Image(gamma float64) (*image.RGBA, error) {
	if gamma <= 0 {
		return nil, fmt.Errorf("%w: %f", ErrInvalidGamma, gamma)
	}

	scale := 0.0
	if brightest := f.Brightest(); brightest > 0 {
		scale = 1.0 / brightest
	}

	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for j := 0; j < f.Height; j++ {
		for i := 0; i < f.Width; i++ {
			c := f.At(i, j).Multiply(scale).Clamp(0, 1).GammaCorrect(gamma)
			img.SetRGBA(i, j, color.RGBA{
				R: toByte(c.X),
				G: toByte(c.Y),
				B: toByte(c.Z),
				A: 255,
			})
		}
	}
	return img, nil
}

// Encode writes the frame as a PNG
func (f *Frame) Encode(w io.Writer, gamma float64) error {
	img, err := f.Image(gamma)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// WritePNG writes the frame to a PNG file
func (f *Frame) WritePNG(path string, gamma float64) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("renderer: creating %s: %w", path, err)
	}

	if err := f.Encode(file, gamma); err != nil {
		file.Close()
		return fmt.Errorf("renderer: encoding %s: %w", path, err)
	}
	return file.Close()
}

func toByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(v * 255))
}
