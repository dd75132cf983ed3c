//go:build ocr

package ocr

import (
	"image"
	"testing"

	"github.com/ThadlerK/formHTR/model"
)

func TestPrepare_CropsToROI(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 400, 300))
	roi := model.NewROI(50, 100, 250, 200)

	prepared, scale := prepare(img, roi)

	if scale != 1 {
		t.Errorf("Expected scale 1 for a tall enough crop, got %f", scale)
	}
	bounds := prepared.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 100 {
		t.Errorf("Expected 200x100 crop, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestPrepare_UpscalesSmallCrops(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 400, 300))
	roi := model.NewROI(0, 0, 100, 32)

	prepared, scale := prepare(img, roi)

	if scale != 2 {
		t.Errorf("Expected scale 2 for a 32px crop, got %f", scale)
	}
	if got := prepared.Bounds().Dy(); got != minCropHeight {
		t.Errorf("Expected height %d after upscaling, got %d", minCropHeight, got)
	}
}
