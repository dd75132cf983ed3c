package align

import (
	"errors"
	"fmt"
)

// ErrNoContent is returned when consensus is requested over zero strings.
var ErrNoContent = errors.New("no content to reconcile")

// ErrTooManySources is returned when consensus is requested over more than
// three strings. The alignment scheme pairs every source against the others
// and is defined for at most three.
var ErrTooManySources = errors.New("consensus supports at most three sources")

// Consensus reconciles 1-3 per-source readings of the same text line into
// one string.
//
// A single reading is returned unchanged. With two readings each is aligned
// against the other (alignment is not symmetric, so both directions are
// computed) and the gapped strings are voted character by character. With
// three readings each source is aligned against the other two independently,
// those two alignments are aligned against each other to normalize length,
// and the three reconciled strings are voted.
func Consensus(readings []string) (string, error) {
	switch len(readings) {
	case 0:
		return "", ErrNoContent
	case 1:
		return readings[0], nil
	case 2:
		return MajorityVote([]string{
			Pairwise(readings[0], readings[1]),
			Pairwise(readings[1], readings[0]),
		}), nil
	case 3:
		reconciled := make([]string, 3)
		for i := range readings {
			first := Pairwise(readings[i], readings[(i+1)%3])
			second := Pairwise(readings[i], readings[(i+2)%3])
			reconciled[i] = Pairwise(first, second)
		}
		return MajorityVote(reconciled), nil
	}
	return "", fmt.Errorf("%w: got %d", ErrTooManySources, len(readings))
}
