//go:build !cgo

package backend

import (
	"fmt"
	"image"
	"log"
)

func startVips(VipsConfig, *log.Logger, bool) error {
	return fmt.Errorf("%w: built without cgo", ErrUnavailable)
}

func stopVips() {}

type vipsEngine struct{}

func (vipsEngine) Name() string { return "vips" }

func (vipsEngine) Resize(image.Image, int, int, Filter) (image.Image, error) {
	return nil, fmt.Errorf("%w: built without cgo", ErrUnavailable)
}

func (vipsEngine) Crop(image.Image, image.Rectangle) (image.Image, error) {
	return nil, fmt.Errorf("%w: built without cgo", ErrUnavailable)
}
