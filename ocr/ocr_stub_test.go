//go:build !ocr

package ocr

import (
	"errors"
	"image"
	"testing"

	"github.com/ThadlerK/formHTR/model"
)

func TestNewReturnsError(t *testing.T) {
	source, err := New()
	if err == nil {
		t.Error("Expected error from New() when OCR is disabled")
	}
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
	if source != nil {
		t.Error("Expected nil source when OCR is disabled")
	}
}

func TestCloseOnNilSource(t *testing.T) {
	var source *Source
	if err := source.Close(); err != nil {
		t.Errorf("Close on nil source should not error: %v", err)
	}
}

func TestRecognizeReturnsError(t *testing.T) {
	var source Source
	img := image.NewGray(image.Rect(0, 0, 10, 10))

	_, err := source.Recognize(img, model.NewROI(0, 0, 10, 10))
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
}

func TestSetLanguageReturnsError(t *testing.T) {
	var source Source
	if err := source.SetLanguage("eng"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
}
