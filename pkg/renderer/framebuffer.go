package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/chewxy/math32"

	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
)

// ToneMapping selects how linear radiance maps to output bytes
type ToneMapping int

const (
	// ToneLinear clamps each channel to [0,1] and scales to 255
	ToneLinear ToneMapping = iota
	// ToneSRGB applies gamma 1/2.2 before scaling
	ToneSRGB
)

// Framebuffer is a row-major RGB image accumulated in linear float space.
// Rows grow downward; tiles write disjoint regions so no locking is needed.
type Framebuffer struct {
	Width  int
	Height int
	pixels []core.Vec3
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Set stores the color of pixel (x, y)
func (f *Framebuffer) Set(x, y int, c core.Vec3) {
	f.pixels[y*f.Width+x] = c
}

// At returns the color of pixel (x, y)
func (f *Framebuffer) At(x, y int) core.Vec3 {
	return f.pixels[y*f.Width+x]
}

// Bytes serializes the framebuffer to interleaved 8-bit RGB in scanline
// order, top row first
func (f *Framebuffer) Bytes(tone ToneMapping) []byte {
	out := make([]byte, len(f.pixels)*3)
	for i, p := range f.pixels {
		c := p.Clamp(0, 1)
		if tone == ToneSRGB {
			c = c.GammaCorrect(2.2)
		}
		out[i*3] = byte(math32.Floor(c.X*255.0 + 0.5))
		out[i*3+1] = byte(math32.Floor(c.Y*255.0 + 0.5))
		out[i*3+2] = byte(math32.Floor(c.Z*255.0 + 0.5))
	}
	return out
}

// WritePPM writes the image as binary PPM (P6)
func (f *Framebuffer) WritePPM(path string, tone ToneMapping) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("renderer: create %s: %w", path, err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "P6\n%d %d\n255\n", f.Width, f.Height); err != nil {
		return err
	}
	if _, err := file.Write(f.Bytes(tone)); err != nil {
		return fmt.Errorf("renderer: write %s: %w", path, err)
	}
	return nil
}

// WritePNG writes the image as PNG
func (f *Framebuffer) WritePNG(path string, tone ToneMapping) error {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	data := f.Bytes(tone)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			i := (y*f.Width + x) * 3
			img.SetRGBA(x, y, color.RGBA{R: data[i], G: data[i+1], B: data[i+2], A: 255})
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("renderer: create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("renderer: encode %s: %w", path, err)
	}
	return nil
}

// WriteFile writes the image in the format implied by the path extension:
// .ppm selects binary PPM, everything else PNG
func (f *Framebuffer) WriteFile(path string, tone ToneMapping) error {
	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		return f.WritePPM(path, tone)
	}
	return f.WritePNG(path, tone)
}
