package material

import (
	"fmt"

	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
)

// Texture is an 8-bit RGB image sampled bilinearly. Sample does not wrap
// UVs; Triangle.TexCoordAt wraps them into [0,1) before sampling.
// Pixels are stored row-major, Pixels[y*Width+x], normalized to [0,1].
type Texture struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewTexture creates a texture from normalized pixel data
func NewTexture(width, height int, pixels []core.Vec3) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("material: invalid texture size %dx%d", width, height)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("material: texture size %dx%d requires %d pixels, got %d",
			width, height, width*height, len(pixels))
	}
	return &Texture{Width: width, Height: height, Pixels: pixels}, nil
}

// NewTextureFromBytes creates a texture from raw interleaved 8-bit RGB bytes
func NewTextureFromBytes(width, height int, data []byte) (*Texture, error) {
	if len(data) != width*height*3 {
		return nil, fmt.Errorf("material: texture %dx%d requires %d bytes, got %d",
			width, height, width*height*3, len(data))
	}
	pixels := make([]core.Vec3, width*height)
	for i := range pixels {
		pixels[i] = core.NewVec3(
			float32(data[i*3])/255.0,
			float32(data[i*3+1])/255.0,
			float32(data[i*3+2])/255.0,
		)
	}
	return NewTexture(width, height, pixels)
}

// Sample returns the bilinearly filtered color at (u, v). Coordinates are
// expected pre-wrapped into [0,1); v grows upward while rows grow downward.
func (t *Texture) Sample(u, v float32) core.Vec3 {
	x := u * float32(t.Width-1)
	y := (1.0 - v) * float32(t.Height-1)

	x0 := clampInt(int(x), 0, t.Width-1)
	y0 := clampInt(int(y), 0, t.Height-1)
	x1 := clampInt(x0+1, 0, t.Width-1)
	y1 := clampInt(y0+1, 0, t.Height-1)

	fx := x - float32(x0)
	fy := y - float32(y0)

	c00 := t.Pixels[y0*t.Width+x0]
	c10 := t.Pixels[y0*t.Width+x1]
	c01 := t.Pixels[y1*t.Width+x0]
	c11 := t.Pixels[y1*t.Width+x1]

	top := c00.Multiply(1 - fx).Add(c10.Multiply(fx))
	bottom := c01.Multiply(1 - fx).Add(c11.Multiply(fx))
	return top.Multiply(1 - fy).Add(bottom.Multiply(fy))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
