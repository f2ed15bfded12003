package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/image-geometry-mcp/internal/geometry"
)

const overlayStroke = 2

// GeometryOverlay returns a copy of img with the region a crop geometry
// selects outlined in lineColor and labelled with the canonical geometry.
// It shows what a crop would take without cropping.
func GeometryOverlay(img image.Image, spec string, lineColor string) (*Result, error) {
	flags, rect, err := parseSpec(spec)
	if err != nil {
		return nil, err
	}

	col, err := ParseColor(lineColor)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	region, err := CropRegion(bounds, flags, rect)
	if err != nil {
		return nil, err
	}

	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	drawOutline(out, region, col)
	drawLabel(out, region, geometry.Format(rect, flags))

	result, err := newResult(img, out, flags, rect)
	if err != nil {
		return nil, err
	}
	result.Region = boundsOf(region)
	return result, nil
}

// drawOutline strokes the inside edge of r.
func drawOutline(img *image.RGBA, r image.Rectangle, c color.Color) {
	src := image.NewUniform(c)
	s := min(overlayStroke, r.Dx(), r.Dy())
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+s),
		image.Rect(r.Min.X, r.Max.Y-s, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+s, r.Max.Y),
		image.Rect(r.Max.X-s, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(img, e, src, image.Point{}, draw.Over)
	}
}

// drawLabel writes text on a dark box just inside the top-left corner of r.
// Text that does not fit is clipped by the image bounds.
func drawLabel(img *image.RGBA, r image.Rectangle, text string) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	height := face.Metrics().Height.Ceil()

	origin := r.Min.Add(image.Pt(overlayStroke+1, overlayStroke+1))
	box := image.Rect(origin.X-1, origin.Y-1, origin.X+width+1, origin.Y+height+1).Intersect(img.Bounds())
	draw.Draw(img, box, image.NewUniform(color.RGBA{0, 0, 0, 180}), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(origin.X), Y: fixed.I(origin.Y + face.Metrics().Ascent.Ceil())},
	}
	d.DrawString(text)
}
