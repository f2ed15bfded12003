//go:build cgo

package backend

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"
	"sync"

	"github.com/davidbyttow/govips/v2/vips"
)

// libvips keeps global state and cannot be restarted after vips.Shutdown,
// so both transitions happen at most once per process, whichever Backend
// asks for them.
var (
	vipsMu       sync.Mutex
	vipsStarted  bool
	vipsStopped  bool
	vipsStartErr error
)

func startVips(cfg VipsConfig, logger *log.Logger, debug bool) (err error) {
	vipsMu.Lock()
	defer vipsMu.Unlock()

	if vipsStopped {
		return fmt.Errorf("%w: libvips already shut down in this process", ErrUnavailable)
	}
	if vipsStarted {
		return vipsStartErr
	}
	vipsStarted = true

	defer func() {
		if r := recover(); r != nil {
			vipsStartErr = fmt.Errorf("%w: %v", ErrUnavailable, r)
			err = vipsStartErr
		}
	}()

	level := vips.LogLevelWarning
	if debug {
		level = vips.LogLevelDebug
	}
	vips.LoggingSettings(func(domain string, lvl vips.LogLevel, msg string) {
		logger.Printf("[%s] %s", domain, msg)
	}, level)

	vips.Startup(&vips.Config{
		ConcurrencyLevel: cfg.Concurrency,
		MaxCacheMem:      cfg.MaxCacheMemMB * 1024 * 1024,
	})
	return nil
}

func stopVips() {
	vipsMu.Lock()
	defer vipsMu.Unlock()

	if !vipsStarted || vipsStopped {
		return
	}
	vipsStopped = true
	if vipsStartErr == nil {
		vips.Shutdown()
	}
}

type vipsEngine struct{}

func (vipsEngine) Name() string { return "vips" }

func (vipsEngine) Resize(img image.Image, width, height int, filter Filter) (image.Image, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	ref, err := toVips(img)
	if err != nil {
		return nil, err
	}
	defer ref.Close()

	hscale := float64(width) / float64(ref.Width())
	vscale := float64(height) / float64(ref.Height())
	if err := ref.ResizeWithVScale(hscale, vscale, vipsKernel(filter)); err != nil {
		return nil, fmt.Errorf("failed to resize: %w", err)
	}
	return fromVips(ref)
}

func (vipsEngine) Crop(img image.Image, r image.Rectangle) (image.Image, error) {
	if err := checkCrop(img, r); err != nil {
		return nil, err
	}
	ref, err := toVips(img)
	if err != nil {
		return nil, err
	}
	defer ref.Close()

	origin := img.Bounds().Min
	if err := ref.ExtractArea(r.Min.X-origin.X, r.Min.Y-origin.Y, r.Dx(), r.Dy()); err != nil {
		return nil, fmt.Errorf("failed to extract area: %w", err)
	}
	return fromVips(ref)
}

// toVips hands img to libvips through a lossless PNG buffer.
func toVips(img image.Image) (*vips.ImageRef, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image for vips: %w", err)
	}
	ref, err := vips.NewImageFromBuffer(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to load image into vips: %w", err)
	}
	return ref, nil
}

func fromVips(ref *vips.ImageRef) (image.Image, error) {
	data, _, err := ref.ExportPng(vips.NewPngExportParams())
	if err != nil {
		return nil, fmt.Errorf("failed to export from vips: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode vips output: %w", err)
	}
	return img, nil
}

func vipsKernel(f Filter) vips.Kernel {
	switch f {
	case FilterNearest:
		return vips.KernelNearest
	case FilterBox, FilterLinear:
		return vips.KernelLinear
	case FilterCatmullRom:
		return vips.KernelCubic
	case FilterMitchell:
		return vips.KernelMitchell
	default:
		return vips.KernelLanczos3
	}
}
