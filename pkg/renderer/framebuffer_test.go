package renderer

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"

	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
)

func TestFramebuffer_BytesLinear(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Set(0, 0, core.NewVec3(0, 0.5, 1))
	fb.Set(1, 0, core.NewVec3(-1, 2, 0.25))

	data := fb.Bytes(ToneLinear)
	if len(data) != 6 {
		t.Fatalf("expected 6 bytes, got %d", len(data))
	}

	expected := []byte{0, 128, 255, 0, 255, 64}
	for i := range expected {
		if data[i] != expected[i] {
			t.Errorf("byte %d: expected %d, got %d", i, expected[i], data[i])
		}
	}
}

func TestFramebuffer_BytesSRGB(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	fb.Set(0, 0, core.NewVec3(0.5, 0.5, 0.5))

	data := fb.Bytes(ToneSRGB)
	expected := byte(math32.Floor(math32.Pow(0.5, 1.0/2.2)*255 + 0.5))
	if data[0] != expected {
		t.Errorf("expected %d, got %d", expected, data[0])
	}
}

func TestFramebuffer_WritePPM(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Set(0, 0, core.NewVec3(1, 0, 0))

	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := fb.WritePPM(path, ToneLinear); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	header := []byte("P6\n3 2\n255\n")
	if !bytes.HasPrefix(data, header) {
		t.Fatalf("unexpected header %q", data[:min(len(data), len(header))])
	}
	if len(data) != len(header)+3*2*3 {
		t.Errorf("expected %d bytes, got %d", len(header)+18, len(data))
	}

	// First pixel is red
	body := data[len(header):]
	if body[0] != 255 || body[1] != 0 || body[2] != 0 {
		t.Errorf("expected red first pixel, got (%d, %d, %d)", body[0], body[1], body[2])
	}
}

func TestFramebuffer_WriteFilePicksFormatByExtension(t *testing.T) {
	fb := NewFramebuffer(2, 2)

	dir := t.TempDir()

	ppmPath := filepath.Join(dir, "out.ppm")
	if err := fb.WriteFile(ppmPath, ToneLinear); err != nil {
		t.Fatal(err)
	}
	ppm, err := os.ReadFile(ppmPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(ppm, []byte("P6\n")) {
		t.Error("expected PPM magic for .ppm output")
	}

	pngPath := filepath.Join(dir, "out.png")
	if err := fb.WriteFile(pngPath, ToneLinear); err != nil {
		t.Fatal(err)
	}
	file, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("expected decodable PNG: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Errorf("unexpected PNG bounds %v", img.Bounds())
	}
}
