// Package formhtr fuses text read by several independent recognition
// sources over the same region of a scanned form into one consensus
// transcription.
//
// Each source supplies a [model.Candidate]: the rectangles it recognized
// inside a region of interest, each carrying a text fragment and image
// coordinates. The pipeline clusters each source's rectangles into reading
// lines, matches corresponding lines across sources, reconciles
// disagreement about content near the region boundary, and votes the
// aligned readings character by character:
//
//	text, err := formhtr.GeneralTextArea(candidates, roi)
//	if err != nil {
//	    // handle error
//	}
//
// For simple single-object regions such as barcodes, [CheckBarcodeArea]
// validates the per-source counts without running the pipeline.
//
// The pipeline is a pure function of its arguments: it performs no I/O and
// keeps no state between calls, so independent regions can be processed
// concurrently without coordination. The hocr and ocr packages provide ways
// to obtain candidates from recognition output.
package formhtr

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ThadlerK/formHTR/align"
	"github.com/ThadlerK/formHTR/layout"
	"github.com/ThadlerK/formHTR/model"
)

// ErrNoCandidates is returned when every supplied candidate is empty.
var ErrNoCandidates = errors.New("no non-empty candidates")

// CheckBarcodeArea validates per-source candidates for a region expected to
// hold a single object. The region is valid iff no source reports more than
// one rectangle and at least one source reports one.
func CheckBarcodeArea(candidates []model.Candidate) bool {
	found := false
	for _, candidate := range candidates {
		if len(candidate) > 1 {
			return false
		}
		if len(candidate) == 1 {
			found = true
		}
	}
	return found
}

// GeneralTextArea produces the consensus transcription for a text region.
//
// Each non-empty candidate is segmented into lines, lines are grouped
// across sources, and every group is reduced to one string. For small
// regions (group and word counts within the configured thresholds) the full
// consensus pipeline runs: boundary reconciliation followed by sequence
// alignment and majority voting. Larger regions skip the quadratic
// alignment work and fall back to the line chosen by the fallback policy.
// Group outputs are joined with newlines in group order.
func GeneralTextArea(candidates []model.Candidate, roi model.ROI, opts ...Option) (string, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	segmenter := layout.NewSegmenterWithConfig(options.segmenter)
	var candidateLines [][]layout.Line
	for _, candidate := range candidates {
		if len(candidate) == 0 {
			continue
		}
		candidateLines = append(candidateLines, segmenter.Segment(candidate))
	}
	if len(candidateLines) == 0 {
		return "", ErrNoCandidates
	}

	groups := layout.GroupLines(candidateLines)

	outputs := make([]string, 0, len(groups))
	if len(groups) <= options.maxGroups && maxLineWords(groups) <= options.maxLineWords {
		for _, group := range groups {
			text, err := groupConsensus(group, roi)
			if err != nil {
				return "", err
			}
			outputs = append(outputs, text)
		}
	} else {
		for _, group := range groups {
			line, err := options.fallback(group.Lines)
			if err != nil {
				return "", err
			}
			outputs = append(outputs, line.Text())
		}
	}

	return strings.Join(outputs, "\n"), nil
}

// groupConsensus runs boundary reconciliation and sequence consensus for
// one line group.
func groupConsensus(group layout.Group, roi model.ROI) (string, error) {
	lines := layout.ReconcileBoundaries(group.Lines, roi)

	var readings []string
	for _, line := range lines {
		text := line.Text()
		if text == "" {
			continue
		}
		// Sources disagree about composed vs decomposed forms of accented
		// characters; alignment compares code points, so normalize first.
		readings = append(readings, norm.NFC.String(text))
	}
	if len(readings) == 0 {
		// Nothing survived reconciliation: the physical line is blank.
		return "", nil
	}

	text, err := align.Consensus(readings)
	if err != nil {
		return "", fmt.Errorf("line group at y=%.1f: %w", group.Center, err)
	}
	return text, nil
}

// maxLineWords returns the largest rectangle count found in any single line
// across all groups.
func maxLineWords(groups []layout.Group) int {
	max := 0
	for _, group := range groups {
		for _, line := range group.Lines {
			if len(line) > max {
				max = len(line)
			}
		}
	}
	return max
}
