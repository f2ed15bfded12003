package imaging

import (
	"fmt"
	"image"

	"github.com/ironsheep/image-geometry-mcp/internal/backend"
)

// Resize scales img according to a resize geometry such as "640x480>",
// "50%" or "x200". When the geometry leaves the size unchanged the source
// pixels are returned as they are, without a round trip through the engine.
// Outputs larger than maxPixels fail with ErrTooLarge before any pixels are
// allocated.
func Resize(eng backend.Engine, img image.Image, spec string, filter backend.Filter, maxPixels int) (*Result, error) {
	flags, rect, err := parseSpec(spec)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	nw, nh, err := ResizeDimensions(bounds.Dx(), bounds.Dy(), flags, rect, maxPixels)
	if err != nil {
		return nil, err
	}

	out := img
	if nw != bounds.Dx() || nh != bounds.Dy() {
		out, err = eng.Resize(img, nw, nh, filter)
		if err != nil {
			return nil, fmt.Errorf("%s engine: %w", eng.Name(), err)
		}
	}

	result, err := newResult(img, out, flags, rect)
	if err != nil {
		return nil, err
	}
	result.Engine = eng.Name()
	return result, nil
}
