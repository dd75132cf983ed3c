package layout

// Group collects lines from different sources judged to represent the same
// physical text line. Center is the representative vertical center the group
// was opened with; Lines holds the members in join order.
type Group struct {
	Center float64
	Lines  []Line
}

// GroupLines merges per-source line lists into groups, one group per
// physical line. Sources are visited in input order and lines top to bottom
// within each source; a line joins every existing group whose representative
// center falls within the line's vertical span, and opens a new group keyed
// by its own center if none matches. Group order is first-seen order.
//
// A line can join more than one group when several representative centers
// fall inside its span. The grouping is deliberately permissive: physical
// lines rarely have identical bounds across sources, and an
// overlap-with-center test is a cheap, robust correspondence check that
// needs no global matching.
func GroupLines(candidateLines [][]Line) []Group {
	var groups []Group

	for _, lines := range candidateLines {
		for _, line := range lines {
			top := line.Top()
			bottom := line.Bottom()

			joined := false
			for i := range groups {
				if bottom >= groups[i].Center && groups[i].Center >= top {
					groups[i].Lines = append(groups[i].Lines, line)
					joined = true
				}
			}
			if !joined {
				groups = append(groups, Group{
					Center: line.Center(),
					Lines:  []Line{line},
				})
			}
		}
	}

	return groups
}
