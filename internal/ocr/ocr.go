package ocr

import (
	"errors"
	"fmt"
	"image"
)

// ErrUnavailable is returned when the binary was built without Tesseract.
var ErrUnavailable = errors.New("ocr unavailable")

// DefaultLanguage is used when Options.Language is empty.
const DefaultLanguage = "eng"

// Options configures a Tesseract client.
type Options struct {
	Language       string
	TessdataPrefix string
}

func (o Options) language() string {
	if o.Language == "" {
		return DefaultLanguage
	}
	return o.Language
}

// Bounds represents a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

func boundsOf(r image.Rectangle) Bounds {
	return Bounds{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y}
}

// TextRegion is a recognized word with its location and confidence.
type TextRegion struct {
	Text string `json:"text"`

	// Confidence is Tesseract's score scaled to 0.0 - 1.0.
	Confidence float64 `json:"confidence"`

	Bounds Bounds `json:"bounds"`
}

// OCRResult holds the text found in a region.
type OCRResult struct {
	FullText string `json:"full_text"`

	// Regions lists individual words. It is empty, not nil, when Tesseract
	// could not produce word boxes.
	Regions []TextRegion `json:"regions"`

	// Region is the part of the image that was read.
	Region Bounds `json:"region"`

	Language string `json:"language"`
}

// clampRegion intersects region with the image and rejects empty results.
func clampRegion(img image.Image, region image.Rectangle) (image.Rectangle, error) {
	r := region.Intersect(img.Bounds())
	if r.Empty() {
		return image.Rectangle{}, fmt.Errorf("OCR region %v outside image bounds %v", region, img.Bounds())
	}
	return r, nil
}

// translate moves word boxes from crop coordinates to image coordinates.
func translate(regions []TextRegion, offset image.Point) {
	for i := range regions {
		regions[i].Bounds.X1 += offset.X
		regions[i].Bounds.Y1 += offset.Y
		regions[i].Bounds.X2 += offset.X
		regions[i].Bounds.Y2 += offset.Y
	}
}
