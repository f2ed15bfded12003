// Package ocr reads text from the region of an image that a geometry
// selects, using the Tesseract engine through gosseract.
//
// # Prerequisites
//
// Tesseract and its language data must be installed, and the package must
// be built with cgo:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Without cgo every call fails with ErrUnavailable.
//
// # Language Data
//
// Options.Language takes Tesseract language codes ("eng", "deu", "eng+fra").
// Options.TessdataPrefix points at a directory of *.traineddata files when
// they are not in Tesseract's default location.
//
// # Coordinates
//
// Only the requested region is sent to Tesseract, from memory. Word bounds
// in the result are translated back into the coordinates of the full image.
package ocr
