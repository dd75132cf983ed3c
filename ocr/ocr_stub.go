//go:build !ocr

// Package ocr provides a Tesseract-backed recognition source producing
// pipeline candidates.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// All operations return ErrOCRNotEnabled.
//
// To enable recognition, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"errors"
	"image"

	"github.com/ThadlerK/formHTR/model"
)

// ErrOCRNotEnabled is returned when recognition is requested but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Source is a stub recognition source that returns errors for all
// operations.
type Source struct{}

// New returns an error indicating OCR support is not enabled.
// To enable it, rebuild with: go build -tags ocr
func New() (*Source, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub source.
// It is safe to call on a nil source.
func (s *Source) Close() error {
	return nil
}

// SetLanguage returns ErrOCRNotEnabled.
func (s *Source) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// Recognize returns ErrOCRNotEnabled.
func (s *Source) Recognize(img image.Image, roi model.ROI) (model.Candidate, error) {
	return nil, ErrOCRNotEnabled
}
