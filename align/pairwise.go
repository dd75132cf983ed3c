package align

// Alignment scoring. Identical characters score 1 and mismatches 0; opening
// a gap costs 3 and each further gap character 1, so a run of k gap
// characters costs 3 + (k-1).
const (
	matchScore = 1
	gapOpen    = 3
	gapExtend  = 1
)

const negInf = -1 << 30

// Alignment states for traceback.
const (
	stateMatch = iota // a character aligned to a b character (match or mismatch)
	stateGapB         // a character aligned to a gap in b
	stateGapA         // gap in a aligned to a b character
)

// Pairwise computes the best-scoring global alignment of a against b and
// returns a's side of it: a's characters in order, with a space inserted
// wherever the alignment places a gap in a. The alignment is computed over
// Unicode code points.
//
// Ties between equal-scoring alignments are broken deterministically:
// aligning two characters is preferred over either gap, and a gap in b
// (consuming a character of a) is preferred over a gap in a.
func Pairwise(a, b string) string {
	ra := []rune(a)
	rb := []rune(b)
	n, m := len(ra), len(rb)

	if n == 0 && m == 0 {
		return ""
	}

	// Gotoh three-state dynamic program: match holds alignments ending in a
	// character pair, gapB alignments ending with a consumed a character
	// against a gap, gapA alignments ending with a gap against a consumed b
	// character. trace matrices record the predecessor state.
	match := newMatrix(n+1, m+1)
	gapB := newMatrix(n+1, m+1)
	gapA := newMatrix(n+1, m+1)
	traceMatch := newByteMatrix(n+1, m+1)
	traceGapB := newByteMatrix(n+1, m+1)
	traceGapA := newByteMatrix(n+1, m+1)

	for i := 1; i <= n; i++ {
		gapB[i][0] = -(gapOpen + (i-1)*gapExtend)
		traceGapB[i][0] = stateGapB
	}
	for j := 1; j <= m; j++ {
		gapA[0][j] = -(gapOpen + (j-1)*gapExtend)
		traceGapA[0][j] = stateGapA
	}
	for i := 1; i <= n; i++ {
		match[i][0] = negInf
		gapA[i][0] = negInf
	}
	for j := 1; j <= m; j++ {
		match[0][j] = negInf
		gapB[0][j] = negInf
	}
	gapB[0][0] = negInf
	gapA[0][0] = negInf

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			sub := 0
			if ra[i-1] == rb[j-1] {
				sub = matchScore
			}
			match[i][j], traceMatch[i][j] = pick(
				match[i-1][j-1], gapB[i-1][j-1], gapA[i-1][j-1])
			match[i][j] += sub

			gapB[i][j], traceGapB[i][j] = pick(
				match[i-1][j]-gapOpen, gapB[i-1][j]-gapExtend, gapA[i-1][j]-gapOpen)

			gapA[i][j], traceGapA[i][j] = pick(
				match[i][j-1]-gapOpen, gapB[i][j-1]-gapOpen, gapA[i][j-1]-gapExtend)
		}
	}

	_, state := pick(match[n][m], gapB[n][m], gapA[n][m])

	// Trace back from the end, collecting a's side in reverse.
	gapped := make([]rune, 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		switch state {
		case stateMatch:
			gapped = append(gapped, ra[i-1])
			state = traceMatch[i][j]
			i--
			j--
		case stateGapB:
			gapped = append(gapped, ra[i-1])
			state = traceGapB[i][j]
			i--
		case stateGapA:
			gapped = append(gapped, ' ')
			state = traceGapA[i][j]
			j--
		}
	}

	for l, r := 0, len(gapped)-1; l < r; l, r = l+1, r-1 {
		gapped[l], gapped[r] = gapped[r], gapped[l]
	}
	return string(gapped)
}

// pick returns the best of the three scores with its originating state,
// preferring match over a gap in b over a gap in a on ties.
func pick(fromMatch, fromGapB, fromGapA int) (int, byte) {
	best, state := fromMatch, byte(stateMatch)
	if fromGapB > best {
		best, state = fromGapB, stateGapB
	}
	if fromGapA > best {
		best, state = fromGapA, stateGapA
	}
	return best, state
}

func newMatrix(rows, cols int) [][]int {
	backing := make([]int, rows*cols)
	matrix := make([][]int, rows)
	for i := range matrix {
		matrix[i] = backing[i*cols : (i+1)*cols]
	}
	return matrix
}

func newByteMatrix(rows, cols int) [][]byte {
	backing := make([]byte, rows*cols)
	matrix := make([][]byte, rows)
	for i := range matrix {
		matrix[i] = backing[i*cols : (i+1)*cols]
	}
	return matrix
}
