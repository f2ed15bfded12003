package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ironsheep/image-geometry-mcp/internal/backend"
)

func testEngine(t *testing.T, name string) backend.Engine {
	t.Helper()
	be := backend.New(backend.Config{})
	if err := be.Startup(); err != nil {
		t.Fatalf("backend startup failed: %v", err)
	}
	t.Cleanup(be.Shutdown)

	eng, err := be.Engine(name)
	if err != nil {
		t.Fatalf("Engine(%q) failed: %v", name, err)
	}
	return eng
}

func decodeResult(t *testing.T, r *Result) image.Image {
	t.Helper()
	if r.MimeType != "image/png" {
		t.Fatalf("MimeType: got %s, want image/png", r.MimeType)
	}
	data, err := base64.StdEncoding.DecodeString(r.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	return img
}

func hexAt(img image.Image, x, y int) string {
	b := img.Bounds()
	return HexColor(img.At(b.Min.X+x, b.Min.Y+y))
}

func TestCrop(t *testing.T) {
	img := createPatternImage(100, 100)

	for _, name := range []string{"imaging", "bild"} {
		t.Run(name, func(t *testing.T) {
			result, err := Crop(testEngine(t, name), img, "50x50+50+0")
			if err != nil {
				t.Fatalf("Crop failed: %v", err)
			}

			if result.Width != 50 || result.Height != 50 {
				t.Errorf("dimensions: got %dx%d, want 50x50", result.Width, result.Height)
			}
			if result.Geometry != "50x50+50+0" {
				t.Errorf("Geometry: got %s", result.Geometry)
			}
			if result.Engine != name {
				t.Errorf("Engine: got %s, want %s", result.Engine, name)
			}
			want := Bounds{X1: 50, Y1: 0, X2: 100, Y2: 50}
			if result.Region == nil || *result.Region != want {
				t.Errorf("Region: got %+v, want %+v", result.Region, want)
			}

			// Top-right quadrant is green.
			if got := hexAt(decodeResult(t, result), 25, 25); got != "#00FF00" {
				t.Errorf("cropped color: got %s, want #00FF00", got)
			}
		})
	}
}

func TestCrop_Percent(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := Crop(testEngine(t, ""), img, "50%+50+50")
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if result.Width != 50 || result.Height != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", result.Width, result.Height)
	}
	if got := hexAt(decodeResult(t, result), 10, 10); got != "#FFFFFF" {
		t.Errorf("cropped color: got %s, want #FFFFFF", got)
	}
}

func TestCrop_ClippedAtEdge(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	result, err := Crop(testEngine(t, ""), img, "60x60-20+70")
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if result.Width != 40 || result.Height != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", result.Width, result.Height)
	}
	if result.Geometry != "60x60-20+70" {
		t.Errorf("Geometry: got %s", result.Geometry)
	}
}

func TestCrop_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	for _, spec := range []string{"10x10+100+100", "10x10-50-50", "0x0"} {
		t.Run(spec, func(t *testing.T) {
			if _, err := Crop(testEngine(t, ""), img, spec); err == nil {
				t.Errorf("Crop(%q) should fail", spec)
			}
		})
	}
}
