package imaging

import (
	"fmt"
	"image"

	"github.com/ironsheep/image-geometry-mcp/internal/backend"
)

// Crop extracts the region a crop geometry such as "200x100+10+20" or
// "50%" selects. See CropRegion for how the geometry is resolved.
func Crop(eng backend.Engine, img image.Image, spec string) (*Result, error) {
	flags, rect, err := parseSpec(spec)
	if err != nil {
		return nil, err
	}

	region, err := CropRegion(img.Bounds(), flags, rect)
	if err != nil {
		return nil, err
	}

	cropped, err := eng.Crop(img, region)
	if err != nil {
		return nil, fmt.Errorf("%s engine: %w", eng.Name(), err)
	}

	result, err := newResult(img, cropped, flags, rect)
	if err != nil {
		return nil, err
	}
	result.Region = boundsOf(region)
	result.Engine = eng.Name()
	return result, nil
}
