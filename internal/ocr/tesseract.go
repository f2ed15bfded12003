//go:build cgo

package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// ExtractRegion performs OCR on region of img.
//
// The region is clipped to the image. It is cropped and handed to
// Tesseract as an in-memory PNG; word bounds in the result are relative to
// img, not to the crop. If word boxes cannot be extracted the full text is
// still returned with an empty Regions slice.
func ExtractRegion(img image.Image, region image.Rectangle, opts Options) (*OCRResult, error) {
	region, err := clampRegion(img, region)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, imaging.Crop(img, region)); err != nil {
		return nil, fmt.Errorf("failed to encode region: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if opts.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(opts.TessdataPrefix); err != nil {
			return nil, fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}

	lang := opts.language()
	if err := client.SetLanguage(strings.Split(lang, "+")...); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	regions := []TextRegion{}
	if boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD); err == nil {
		for _, box := range boxes {
			if box.Word == "" {
				continue
			}
			regions = append(regions, TextRegion{
				Text:       box.Word,
				Confidence: box.Confidence / 100.0,
				Bounds:     boundsOf(box.Box),
			})
		}
	}
	translate(regions, region.Min)

	return &OCRResult{
		FullText: text,
		Regions:  regions,
		Region:   boundsOf(region),
		Language: lang,
	}, nil
}

// Version reports the linked Tesseract version.
func Version() string {
	return gosseract.Version()
}
