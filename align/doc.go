// Package align reconciles disagreeing recognition outputs of one text line
// into a single consensus string.
//
// # Pairwise alignment
//
// [Pairwise] computes a global (end-to-end) alignment of two strings with a
// uniform scoring scheme: identical characters score 1, mismatches 0, and
// gaps carry an affine penalty (3 to open, 1 to extend). It returns the
// first string with spaces inserted where the alignment gaps it:
//
//	align.Pairwise("hello", "helo") // "hello"
//	align.Pairwise("B", "AB")       // " B"
//
// Tie-breaking between equal-scoring alignments is pinned: character pairs
// beat gaps, and gaps in the second string beat gaps in the first.
//
// # Voting
//
// [MajorityVote] votes the aligned strings character by character, padding
// with spaces and breaking ties by first-seen order across the inputs.
//
// # Consensus
//
// [Consensus] ties the two together for one, two, or three sources. More
// than three sources is outside the scheme's domain and yields
// [ErrTooManySources].
package align
