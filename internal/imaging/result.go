package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/ironsheep/image-geometry-mcp/internal/geometry"
)

// Result is returned by every geometry operation.
type Result struct {
	// Width and Height are the output image size.
	Width  int `json:"width"`
	Height int `json:"height"`

	SourceWidth  int `json:"source_width"`
	SourceHeight int `json:"source_height"`

	// Geometry is the canonical form of the geometry that was applied.
	Geometry string   `json:"geometry"`
	Flags    []string `json:"flags"`

	// Region is the area of the source image that was used, for crops and
	// overlays.
	Region *Bounds `json:"region,omitempty"`

	Engine      string `json:"engine,omitempty"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Bounds is a pixel rectangle with an exclusive lower-right corner.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

func boundsOf(r image.Rectangle) *Bounds {
	return &Bounds{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y}
}

// parseSpec parses spec into a zeroed rectangle. Parse only fails for a nil
// rectangle, so the error is not expected here but still passed through.
func parseSpec(spec string) (geometry.Flags, geometry.Rectangle, error) {
	var rect geometry.Rectangle
	flags, err := geometry.Parse(spec, &rect)
	if err != nil {
		return 0, rect, fmt.Errorf("failed to parse geometry: %w", err)
	}
	return flags, rect, nil
}

func newResult(src, out image.Image, flags geometry.Flags, rect geometry.Rectangle) (*Result, error) {
	encoded, err := encodePNG(out)
	if err != nil {
		return nil, err
	}
	return &Result{
		Width:        out.Bounds().Dx(),
		Height:       out.Bounds().Dy(),
		SourceWidth:  src.Bounds().Dx(),
		SourceHeight: src.Bounds().Dy(),
		Geometry:     geometry.Format(rect, flags),
		Flags:        flags.Names(),
		ImageBase64:  encoded,
		MimeType:     "image/png",
	}, nil
}

func encodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
