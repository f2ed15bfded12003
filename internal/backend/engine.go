package backend

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

var (
	// ErrNotStarted is returned by Backend.Engine before Startup.
	ErrNotStarted = errors.New("backend not started")

	// ErrUnknownEngine is returned for an engine name that is not registered.
	ErrUnknownEngine = errors.New("unknown engine")

	// ErrUnavailable is returned when an engine exists but cannot run in
	// this build or on this host.
	ErrUnavailable = errors.New("engine unavailable")
)

// Engine performs the pixel operations a geometry resolves to.
type Engine interface {
	// Name is the registry name of the engine.
	Name() string

	// Resize scales img to exactly width x height.
	Resize(img image.Image, width, height int, filter Filter) (image.Image, error)

	// Crop extracts r from img. r must lie within img.Bounds().
	Crop(img image.Image, r image.Rectangle) (image.Image, error)
}

// Filter selects the resampling kernel used by Resize.
type Filter string

// Supported filters. Every engine maps them onto its closest kernel.
const (
	FilterNearest    Filter = "nearest"
	FilterBox        Filter = "box"
	FilterLinear     Filter = "linear"
	FilterCatmullRom Filter = "catmullrom"
	FilterMitchell   Filter = "mitchell"
	FilterLanczos    Filter = "lanczos"
)

// DefaultFilter is used when no filter is specified.
const DefaultFilter = FilterLanczos

// Filters lists the accepted filter names.
func Filters() []Filter {
	return []Filter{FilterNearest, FilterBox, FilterLinear, FilterCatmullRom, FilterMitchell, FilterLanczos}
}

// ParseFilter converts a user-supplied name into a Filter. The empty string
// selects DefaultFilter.
func ParseFilter(name string) (Filter, error) {
	if name == "" {
		return DefaultFilter, nil
	}
	f := Filter(strings.ToLower(name))
	for _, known := range Filters() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown filter: %s", name)
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid target size %dx%d", width, height)
	}
	return nil
}

func checkCrop(img image.Image, r image.Rectangle) error {
	if r.Empty() || !r.In(img.Bounds()) {
		return fmt.Errorf("crop region %v outside image bounds %v", r, img.Bounds())
	}
	return nil
}
