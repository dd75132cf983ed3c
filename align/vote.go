package align

// MajorityVote produces one string from several by character-level voting.
// Inputs are right-padded with spaces to the length of the longest; at each
// position the character occurring most often across the inputs wins. Ties
// are broken in favor of the character seen first across the inputs at that
// position, in input order.
func MajorityVote(strings []string) string {
	if len(strings) == 0 {
		return ""
	}

	lines := make([][]rune, len(strings))
	maxLen := 0
	for i, s := range strings {
		lines[i] = []rune(s)
		if len(lines[i]) > maxLen {
			maxLen = len(lines[i])
		}
	}

	type charCount struct {
		ch rune
		n  int
	}

	voted := make([]rune, 0, maxLen)
	for col := 0; col < maxLen; col++ {
		// Counts keep first-seen order so the tie-break is stable.
		var counts []charCount
		for _, line := range lines {
			ch := ' '
			if col < len(line) {
				ch = line[col]
			}
			seen := false
			for i := range counts {
				if counts[i].ch == ch {
					counts[i].n++
					seen = true
					break
				}
			}
			if !seen {
				counts = append(counts, charCount{ch: ch, n: 1})
			}
		}

		winner := counts[0]
		for _, c := range counts[1:] {
			if c.n > winner.n {
				winner = c
			}
		}
		voted = append(voted, winner.ch)
	}

	return string(voted)
}
