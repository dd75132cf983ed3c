//go:build ocr

// Package ocr provides a Tesseract-backed recognition source producing
// pipeline candidates.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system and the repository to be built
// with the "ocr" build tag. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
	"golang.org/x/image/draw"

	"github.com/ThadlerK/formHTR/model"
)

// minCropHeight is the smallest crop height handed to Tesseract; smaller
// region crops are upscaled first.
const minCropHeight = 64

// Source wraps Tesseract as one recognition source.
type Source struct {
	client *gosseract.Client
}

// New creates a new recognition source.
// The source should be closed when no longer needed to release resources.
func New() (*Source, error) {
	return &Source{client: gosseract.NewClient()}, nil
}

// Close releases the underlying Tesseract resources.
func (s *Source) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// SetLanguage sets the language(s) for recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (s *Source) SetLanguage(lang string) error {
	return s.client.SetLanguage(lang)
}

// Recognize runs word-level recognition over the region of interest and
// returns the recognized rectangles as a pipeline candidate. Rectangle
// bounds are reported in the coordinates of the full image, not of the
// region crop.
func (s *Source) Recognize(img image.Image, roi model.ROI) (model.Candidate, error) {
	prepared, scale := prepare(img, roi)

	var buf bytes.Buffer
	if err := png.Encode(&buf, prepared); err != nil {
		return nil, fmt.Errorf("failed to encode region crop: %w", err)
	}
	if err := s.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := s.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("recognition failed: %w", err)
	}

	candidate := make(model.Candidate, 0, len(boxes))
	for _, box := range boxes {
		word := strings.TrimSpace(box.Word)
		if word == "" {
			continue
		}
		candidate = append(candidate, model.NewRectangle(
			float64(box.Box.Min.X)/scale+roi.StartX,
			float64(box.Box.Min.Y)/scale+roi.StartY,
			float64(box.Box.Max.X)/scale+roi.StartX,
			float64(box.Box.Max.Y)/scale+roi.StartY,
			word,
		))
	}
	return candidate, nil
}

// prepare crops the region of interest out of the image and converts it to
// grayscale. Crops shorter than minCropHeight are upscaled so Tesseract has
// enough pixels to work with; the returned scale maps crop coordinates back
// to image coordinates.
func prepare(img image.Image, roi model.ROI) (image.Image, float64) {
	crop := imaging.Crop(img, image.Rect(
		int(roi.StartX), int(roi.StartY), int(roi.EndX), int(roi.EndY)))
	gray := imaging.Grayscale(crop)

	height := gray.Bounds().Dy()
	if height == 0 || height >= minCropHeight {
		return gray, 1
	}

	scale := float64(minCropHeight) / float64(height)
	scaled := image.NewGray(image.Rect(0, 0,
		int(float64(gray.Bounds().Dx())*scale), minCropHeight))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), gray, gray.Bounds(), draw.Src, nil)
	return scaled, scale
}
