package layout

import (
	"sort"
	"strings"

	"github.com/ThadlerK/formHTR/model"
)

// Line is an ordered run of rectangles from a single recognition source
// judged to lie on one visual text line, sorted left to right.
type Line []model.Rectangle

// Center returns the mean vertical center of the line's rectangles.
func (l Line) Center() float64 {
	if len(l) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range l {
		sum += r.CenterY()
	}
	return sum / float64(len(l))
}

// Top returns the smallest start Y among the line's rectangles.
func (l Line) Top() float64 {
	top := l[0].StartY
	for _, r := range l[1:] {
		if r.StartY < top {
			top = r.StartY
		}
	}
	return top
}

// Bottom returns the largest end Y among the line's rectangles.
func (l Line) Bottom() float64 {
	bottom := l[0].EndY
	for _, r := range l[1:] {
		if r.EndY > bottom {
			bottom = r.EndY
		}
	}
	return bottom
}

// Text returns the line's recognized contents joined with single spaces.
func (l Line) Text() string {
	parts := make([]string, len(l))
	for i, r := range l {
		parts[i] = r.Content
	}
	return strings.Join(parts, " ")
}

// SegmenterConfig holds configuration for line segmentation.
type SegmenterConfig struct {
	// BreakFactor is the fraction of the mean rectangle height used as the
	// vertical distance threshold for starting a new line (default: 0.5)
	BreakFactor float64
}

// DefaultSegmenterConfig returns sensible default configuration.
func DefaultSegmenterConfig() SegmenterConfig {
	return SegmenterConfig{
		BreakFactor: 0.5,
	}
}

// Segmenter clusters one source's rectangles into reading lines by vertical
// proximity.
type Segmenter struct {
	config SegmenterConfig
}

// NewSegmenter creates a segmenter with default configuration.
func NewSegmenter() *Segmenter {
	return &Segmenter{
		config: DefaultSegmenterConfig(),
	}
}

// NewSegmenterWithConfig creates a segmenter with custom configuration.
func NewSegmenterWithConfig(config SegmenterConfig) *Segmenter {
	return &Segmenter{
		config: config,
	}
}

// Segment partitions the candidate's rectangles into lines. Every rectangle
// ends up in exactly one line; lines are ordered top to bottom and each line
// is sorted left to right. An empty candidate yields no lines.
func (s *Segmenter) Segment(candidate model.Candidate) []Line {
	if len(candidate) == 0 {
		return nil
	}

	sorted := make([]model.Rectangle, len(candidate))
	copy(sorted, candidate)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CenterY() < sorted[j].CenterY()
	})

	threshold := s.config.BreakFactor * meanHeight(sorted)

	var lines []Line
	var current Line
	previous := sorted[0].CenterY()

	for _, rect := range sorted {
		if absFloat64(rect.CenterY()-previous) > threshold {
			lines = append(lines, current)
			current = nil
		}
		current = append(current, rect)
		// Track the center of each rectangle in turn rather than the line's
		// first member. A line whose rectangles drift gradually downward
		// stays together as long as no single step exceeds the threshold.
		previous = rect.CenterY()
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}

	for _, line := range lines {
		sortLeftToRight(line)
	}

	return lines
}

func sortLeftToRight(line Line) {
	sort.SliceStable(line, func(i, j int) bool {
		return line[i].Less(line[j])
	})
}

func meanHeight(rectangles []model.Rectangle) float64 {
	sum := 0.0
	for _, r := range rectangles {
		sum += r.Height()
	}
	return sum / float64(len(rectangles))
}

func absFloat64(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
