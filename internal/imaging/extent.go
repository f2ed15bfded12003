package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Extent places img on a canvas sized by an extent geometry, filling the
// uncovered area with background. "+X+Y" moves the canvas window right and
// down over the image, so the image itself lands at (-X,-Y). Canvases larger
// than maxPixels fail with ErrTooLarge.
func Extent(img image.Image, spec string, background string, maxPixels int) (*Result, error) {
	flags, rect, err := parseSpec(spec)
	if err != nil {
		return nil, err
	}

	bg, err := ParseColor(background)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	size, at, err := ExtentCanvas(bounds.Dx(), bounds.Dy(), flags, rect, maxPixels)
	if err != nil {
		return nil, err
	}

	canvas := imaging.New(size.X, size.Y, bg)
	out := imaging.Paste(canvas, img, at)

	return newResult(img, out, flags, rect)
}
