package layout

import "github.com/ThadlerK/formHTR/model"

// ReconcileBoundaries resolves disagreement between sources about whether
// content near the edge of the region belongs inside it.
//
// Each line is reduced to the rectangles that stay within the ROI, and
// flagged if anything was cut. When the flags are unanimous — every source
// saw something exceed, or none did — the lines are returned unchanged:
// uniform exceedance across independent sources indicates real content
// rather than noise. When the sources disagree, the reduced lines are
// returned; the sources reporting no exceedance are trusted to define the
// true boundary.
func ReconcileBoundaries(lines []Line, roi model.ROI) []Line {
	reduced := make([]Line, len(lines))
	indicators := make([]bool, len(lines))

	for i, line := range lines {
		var kept Line
		for _, rect := range line {
			if roi.Exceeds(rect) {
				indicators[i] = true
				continue
			}
			kept = append(kept, rect)
		}
		reduced[i] = kept
	}

	if mixed(indicators) {
		return reduced
	}
	return lines
}

// mixed reports whether the indicators disagree (some true, some false).
func mixed(indicators []bool) bool {
	any, all := false, true
	for _, flag := range indicators {
		any = any || flag
		all = all && flag
	}
	return any && !all
}
