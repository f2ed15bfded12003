package backend

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
)

type bildEngine struct{}

func (bildEngine) Name() string { return "bild" }

func (bildEngine) Resize(img image.Image, width, height int, filter Filter) (image.Image, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return transform.Resize(img, width, height, bildFilter(filter)), nil
}

func (bildEngine) Crop(img image.Image, r image.Rectangle) (image.Image, error) {
	if err := checkCrop(img, r); err != nil {
		return nil, err
	}
	return transform.Crop(img, r), nil
}

func bildFilter(f Filter) transform.ResampleFilter {
	switch f {
	case FilterNearest:
		return transform.NearestNeighbor
	case FilterBox:
		return transform.Box
	case FilterLinear:
		return transform.Linear
	case FilterCatmullRom:
		return transform.CatmullRom
	case FilterMitchell:
		return transform.MitchellNetravali
	default:
		return transform.Lanczos
	}
}
