// Package layout groups recognized rectangles into text lines and matches
// lines across independent recognition sources.
//
// # Line segmentation
//
// The [Segmenter] clusters a single source's rectangles into reading lines
// by vertical proximity:
//
//	segmenter := layout.NewSegmenter()
//	lines := segmenter.Segment(candidate)
//
// Rectangles are sorted by vertical center and a new line starts whenever
// the center-to-center step exceeds a threshold derived from the mean
// rectangle height. The threshold fraction is configurable via
// [SegmenterConfig].
//
// # Cross-source grouping
//
// [GroupLines] merges the per-source line lists into [Group] values, one
// per physical line. A line joins a group when the group's representative
// vertical center falls within the line's span. Groups keep an explicit
// record of their representative center and members, and group order is the
// deterministic first-seen order.
//
// # Boundary reconciliation
//
// [ReconcileBoundaries] resolves disagreement about rectangles that stick
// out of the region of interest: unanimous signals are kept as-is, mixed
// signals drop the exceeding rectangles.
package layout
