package imaging

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/ironsheep/image-geometry-mcp/internal/geometry"
)

// DefaultMaxPixels caps the area of images produced by Resize and Extent
// when no other limit is given.
const DefaultMaxPixels = 100_000_000

// ErrTooLarge is returned when a geometry asks for an output image larger
// than the pixel limit.
var ErrTooLarge = errors.New("output image too large")

// checkPixels fails when width x height exceeds maxPixels. A maxPixels of
// zero or less selects DefaultMaxPixels.
func checkPixels(width, height, maxPixels int) error {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	if width > 0 && height > maxPixels/width {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, width, height, maxPixels)
	}
	return nil
}

// clampDimension rounds v and keeps it within [1, MaxInt32].
func clampDimension(v float64) int {
	v = math.Round(v)
	if v >= math.MaxInt32 || math.IsNaN(v) {
		return math.MaxInt32
	}
	return max(1, int(v))
}

// ResizeDimensions returns the size an image of width x height ends up with
// after applying a parsed resize geometry. The result is never smaller than
// 1x1. A geometry without size information leaves the size unchanged.
// A new size larger than maxPixels (DefaultMaxPixels when not positive) is
// an ErrTooLarge error.
func ResizeDimensions(width, height int, flags geometry.Flags, rect geometry.Rectangle, maxPixels int) (int, int, error) {
	if width <= 0 || height <= 0 {
		return width, height, nil
	}
	w, h := float64(width), float64(height)
	hasW := flags&geometry.WidthValue != 0
	hasH := flags&geometry.HeightValue != 0

	var tw, th float64
	switch {
	case flags&geometry.AreaValue != 0 && hasW:
		scale := math.Sqrt(float64(rect.Width) / (w * h))
		tw, th = w*scale, h*scale

	case flags&geometry.PercentValue != 0 && (hasW || hasH):
		sx, sy := float64(rect.Width)/100, float64(rect.Height)/100
		if !hasH {
			sy = sx
		}
		if !hasW {
			sx = sy
		}
		tw, th = w*sx, h*sy

	case hasW && hasH && flags&geometry.AspectValue != 0:
		tw, th = float64(rect.Width), float64(rect.Height)

	case hasW && hasH:
		scale := math.Min(float64(rect.Width)/w, float64(rect.Height)/h)
		tw, th = w*scale, h*scale

	case hasW:
		scale := float64(rect.Width) / w
		tw, th = w*scale, h*scale

	case hasH:
		scale := float64(rect.Height) / h
		tw, th = w*scale, h*scale

	default:
		return width, height, nil
	}

	nw := clampDimension(tw)
	nh := clampDimension(th)

	if flags&geometry.MinimumValue == 0 {
		// '>' only shrinks, '<' only enlarges.
		if flags&geometry.GreaterValue != 0 && nw >= width && nh >= height {
			return width, height, nil
		}
		if flags&geometry.LessValue != 0 && nw <= width && nh <= height {
			return width, height, nil
		}
	}
	if nw == width && nh == height {
		return nw, nh, nil
	}
	if err := checkPixels(nw, nh, maxPixels); err != nil {
		return 0, 0, fmt.Errorf("resize geometry %s: %w", geometry.Format(rect, flags), err)
	}
	return nw, nh, nil
}

// CropRegion resolves a crop geometry against bounds.
//
// Width and height are pixels, or percentages of the image with '%'. A
// percentage width without a height applies to both sides; an absolute
// width without a height keeps the full image height (and vice versa).
// Offsets are measured from the top-left corner and may be negative. The
// region is clipped to bounds; an empty result is an error.
func CropRegion(bounds image.Rectangle, flags geometry.Flags, rect geometry.Rectangle) (image.Rectangle, error) {
	cw, ch := regionSize(bounds.Dx(), bounds.Dy(), flags, rect)

	var x, y int
	if flags&geometry.XValue != 0 {
		x = rect.X
	}
	if flags&geometry.YValue != 0 {
		y = rect.Y
	}

	region := image.Rect(x, y, x+cw, y+ch).Add(bounds.Min).Intersect(bounds)
	if region.Empty() {
		return image.Rectangle{}, fmt.Errorf("crop geometry %s selects nothing inside %dx%d image",
			geometry.Format(rect, flags), bounds.Dx(), bounds.Dy())
	}
	return region, nil
}

// ExtentCanvas resolves an extent geometry for an image of width x height.
// It returns the canvas size and where the image's top-left corner lands on
// the canvas. A canvas larger than maxPixels (DefaultMaxPixels when not
// positive) is an ErrTooLarge error.
func ExtentCanvas(width, height int, flags geometry.Flags, rect geometry.Rectangle, maxPixels int) (image.Point, image.Point, error) {
	cw, ch := regionSize(width, height, flags, rect)
	if cw <= 0 || ch <= 0 {
		return image.Point{}, image.Point{}, fmt.Errorf("extent geometry %s gives an empty canvas",
			geometry.Format(rect, flags))
	}
	if err := checkPixels(cw, ch, maxPixels); err != nil {
		return image.Point{}, image.Point{}, fmt.Errorf("extent geometry %s: %w", geometry.Format(rect, flags), err)
	}

	var at image.Point
	if flags&geometry.XValue != 0 {
		at.X = -rect.X
	}
	if flags&geometry.YValue != 0 {
		at.Y = -rect.Y
	}
	return image.Pt(cw, ch), at, nil
}

// regionSize resolves the size part of a crop or extent geometry.
func regionSize(width, height int, flags geometry.Flags, rect geometry.Rectangle) (int, int) {
	hasW := flags&geometry.WidthValue != 0
	hasH := flags&geometry.HeightValue != 0
	pct := flags&geometry.PercentValue != 0

	cw, ch := width, height
	if hasW {
		cw = rect.Width
		if pct {
			cw = percentOf(width, rect.Width)
		}
	}
	if hasH {
		ch = rect.Height
		if pct {
			ch = percentOf(height, rect.Height)
		}
	} else if hasW && pct {
		ch = percentOf(height, rect.Width)
	}
	return cw, ch
}

func percentOf(n, pct int) int {
	v := math.Round(float64(n) * float64(pct) / 100)
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}
