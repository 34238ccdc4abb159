package loaders

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
	"github.com/HuynhNguyenPhuc/laurel/pkg/material"
)

// LoadTexture loads a texture image. Encoded formats (PNG, JPEG, BMP, TIFF)
// are detected from the file contents and carry their own dimensions; any
// other file is treated as raw interleaved 8-bit RGB, which must match the
// width and height given on the command line exactly.
func LoadTexture(path string, width, height int) (*material.Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open texture: %w", err)
	}

	if img, format, err := image.Decode(bytes.NewReader(data)); err == nil {
		tex, err := textureFromImage(img)
		if err != nil {
			return nil, err
		}
		logger.Infof("loaded %s texture %s: %dx%d", format, path, tex.Width, tex.Height)
		return tex, nil
	}

	tex, err := material.NewTextureFromBytes(width, height, data)
	if err != nil {
		return nil, fmt.Errorf("loaders: %s is not a decodable image and %w", path, err)
	}
	logger.Infof("loaded raw RGB texture %s: %dx%d", path, width, height)
	return tex, nil
}

func textureFromImage(img image.Image) (*material.Texture, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = core.NewVec3(
				float32(r)/65535.0,
				float32(g)/65535.0,
				float32(b)/65535.0,
			)
		}
	}
	return material.NewTexture(width, height, pixels)
}
