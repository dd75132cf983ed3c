package formhtr

import (
	"errors"
	"fmt"

	"github.com/ThadlerK/formHTR/layout"
)

// ErrFallbackSource is returned when the fallback policy cannot select a
// line from a group.
var ErrFallbackSource = errors.New("fallback source selection failed")

// FallbackPolicy selects the line whose text stands in for a group when the
// region is too large for full consensus.
type FallbackPolicy func(lines []layout.Line) (layout.Line, error)

// SecondSource is the default fallback policy: it selects the second line
// that joined the group. The first join can carry boundary noise that a
// later source already disagreed with, so the second reading is preferred.
// Groups with fewer than two lines yield ErrFallbackSource.
func SecondSource(lines []layout.Line) (layout.Line, error) {
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 lines per group, got %d", ErrFallbackSource, len(lines))
	}
	return lines[1], nil
}

// Option configures GeneralTextArea.
type Option func(*processOptions)

// processOptions holds configuration for text area processing.
type processOptions struct {
	// Full consensus runs only while the group count stays at or below
	// maxGroups and every line holds at most maxLineWords rectangles;
	// alignment cost grows quickly beyond that.
	maxGroups    int
	maxLineWords int

	fallback  FallbackPolicy
	segmenter layout.SegmenterConfig
}

// defaultOptions returns the default processing options.
func defaultOptions() processOptions {
	return processOptions{
		maxGroups:    3,
		maxLineWords: 5,
		fallback:     SecondSource,
		segmenter:    layout.DefaultSegmenterConfig(),
	}
}

// WithMaxGroups sets the largest group count still processed with full
// consensus.
func WithMaxGroups(n int) Option {
	return func(o *processOptions) {
		o.maxGroups = n
	}
}

// WithMaxLineWords sets the largest per-line rectangle count still
// processed with full consensus.
func WithMaxLineWords(n int) Option {
	return func(o *processOptions) {
		o.maxLineWords = n
	}
}

// WithFallbackPolicy replaces the line selection used when full consensus
// is skipped.
func WithFallbackPolicy(policy FallbackPolicy) Option {
	return func(o *processOptions) {
		o.fallback = policy
	}
}

// WithSegmenterConfig replaces the line segmentation configuration.
func WithSegmenterConfig(config layout.SegmenterConfig) Option {
	return func(o *processOptions) {
		o.segmenter = config
	}
}
