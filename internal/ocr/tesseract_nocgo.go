//go:build !cgo

package ocr

import "image"

// ExtractRegion is unavailable without cgo.
func ExtractRegion(image.Image, image.Rectangle, Options) (*OCRResult, error) {
	return nil, ErrUnavailable
}

// Version is empty without cgo.
func Version() string {
	return ""
}
