package imaging

import (
	"image/color"
	"testing"
)

func TestGeometryOverlay(t *testing.T) {
	img := createInMemoryImage(200, 100, color.White)

	result, err := GeometryOverlay(img, "100x50+50+25", "#FF0000")
	if err != nil {
		t.Fatalf("GeometryOverlay failed: %v", err)
	}
	if result.Width != 200 || result.Height != 100 {
		t.Errorf("dimensions: got %dx%d, want 200x100", result.Width, result.Height)
	}
	want := Bounds{X1: 50, Y1: 25, X2: 150, Y2: 75}
	if result.Region == nil || *result.Region != want {
		t.Errorf("Region: got %+v, want %+v", result.Region, want)
	}

	out := decodeResult(t, result)
	tests := []struct {
		x, y int
		want string
	}{
		{10, 10, "#FFFFFF"},  // outside the region
		{100, 74, "#FF0000"}, // bottom edge
		{149, 60, "#FF0000"}, // right edge
		{100, 60, "#FFFFFF"}, // inside, away from the label
	}
	for _, tt := range tests {
		if got := hexAt(out, tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d): got %s, want %s", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGeometryOverlay_Errors(t *testing.T) {
	img := createInMemoryImage(20, 20, color.White)

	if _, err := GeometryOverlay(img, "10x10", "bogus"); err == nil {
		t.Error("GeometryOverlay should fail for an invalid color")
	}
	if _, err := GeometryOverlay(img, "10x10+50+50", "#FF0000"); err == nil {
		t.Error("GeometryOverlay should fail for a region outside the image")
	}
}
