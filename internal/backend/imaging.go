package backend

import (
	"image"

	"github.com/disintegration/imaging"
)

type imagingEngine struct{}

func (imagingEngine) Name() string { return "imaging" }

func (imagingEngine) Resize(img image.Image, width, height int, filter Filter) (image.Image, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return imaging.Resize(img, width, height, imagingFilter(filter)), nil
}

func (imagingEngine) Crop(img image.Image, r image.Rectangle) (image.Image, error) {
	if err := checkCrop(img, r); err != nil {
		return nil, err
	}
	return imaging.Crop(img, r), nil
}

func imagingFilter(f Filter) imaging.ResampleFilter {
	switch f {
	case FilterNearest:
		return imaging.NearestNeighbor
	case FilterBox:
		return imaging.Box
	case FilterLinear:
		return imaging.Linear
	case FilterCatmullRom:
		return imaging.CatmullRom
	case FilterMitchell:
		return imaging.MitchellNetravali
	default:
		return imaging.Lanczos
	}
}
