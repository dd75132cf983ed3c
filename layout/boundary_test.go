package layout

import (
	"testing"

	"github.com/ThadlerK/formHTR/model"
)

func TestReconcileBoundaries_UnanimousNonExceedance(t *testing.T) {
	roi := model.NewROI(0, 0, 100, 50)
	lines := []Line{
		{makeRect("a", 10, 10, 40, 30)},
		{makeRect("b", 12, 12, 42, 32)},
	}

	result := ReconcileBoundaries(lines, roi)

	if len(result) != 2 || len(result[0]) != 1 || len(result[1]) != 1 {
		t.Errorf("Expected lines unchanged when no source exceeds, got %v", result)
	}
}

func TestReconcileBoundaries_UnanimousExceedance(t *testing.T) {
	roi := model.NewROI(0, 0, 100, 50)
	// Both sources report a rectangle crossing the right edge: the
	// unanimous signal is trusted and nothing is removed.
	lines := []Line{
		{makeRect("in", 10, 10, 40, 30), makeRect("out", 90, 10, 120, 30)},
		{makeRect("in", 12, 12, 42, 32), makeRect("out", 92, 12, 122, 32)},
	}

	result := ReconcileBoundaries(lines, roi)

	if len(result[0]) != 2 || len(result[1]) != 2 {
		t.Errorf("Expected lines unchanged on unanimous exceedance, got %v", result)
	}
}

func TestReconcileBoundaries_MixedSignalReduces(t *testing.T) {
	roi := model.NewROI(0, 0, 100, 50)
	// Only the first source sees something stick out; the second source's
	// view defines the boundary and the exceeding rectangle is dropped.
	lines := []Line{
		{makeRect("in", 10, 10, 40, 30), makeRect("out", 90, 10, 120, 30)},
		{makeRect("in", 12, 12, 42, 32)},
	}

	result := ReconcileBoundaries(lines, roi)

	if len(result[0]) != 1 {
		t.Fatalf("Expected exceeding rectangle removed, got %d rectangles", len(result[0]))
	}
	for _, line := range result {
		for _, rect := range line {
			if roi.Exceeds(rect) {
				t.Errorf("Expected every surviving rectangle inside ROI, got %v", rect)
			}
		}
	}
}

func TestReconcileBoundaries_MixedSignalCanEmptyALine(t *testing.T) {
	roi := model.NewROI(0, 0, 100, 50)
	lines := []Line{
		{makeRect("out", 90, 10, 120, 30)},
		{makeRect("in", 12, 12, 42, 32)},
	}

	result := ReconcileBoundaries(lines, roi)

	if len(result) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(result))
	}
	if len(result[0]) != 0 {
		t.Errorf("Expected first line emptied, got %d rectangles", len(result[0]))
	}
	if len(result[1]) != 1 {
		t.Errorf("Expected second line kept, got %d rectangles", len(result[1]))
	}
}
