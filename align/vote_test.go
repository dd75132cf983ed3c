package align

import "testing"

func TestMajorityVote_SimpleMajority(t *testing.T) {
	if got := MajorityVote([]string{"cat", "cot", "cat"}); got != "cat" {
		t.Errorf("Expected 'cat', got '%s'", got)
	}
}

func TestMajorityVote_SingleInput(t *testing.T) {
	if got := MajorityVote([]string{"hello"}); got != "hello" {
		t.Errorf("Expected 'hello', got '%s'", got)
	}
}

func TestMajorityVote_NoInput(t *testing.T) {
	if got := MajorityVote(nil); got != "" {
		t.Errorf("Expected empty string, got '%s'", got)
	}
}

func TestMajorityVote_TieBreaksFirstSeen(t *testing.T) {
	// Every column ties 1-1; the character from the first input wins.
	if got := MajorityVote([]string{"ab", "ba"}); got != "ab" {
		t.Errorf("Expected 'ab', got '%s'", got)
	}
	// Order of the inputs, not of the alphabet, decides.
	if got := MajorityVote([]string{"ba", "ab"}); got != "ba" {
		t.Errorf("Expected 'ba', got '%s'", got)
	}
}

func TestMajorityVote_PadsWithSpaces(t *testing.T) {
	// The two longer inputs outvote the short one beyond its end; where
	// only the pad and one character compete, the pad was seen first.
	if got := MajorityVote([]string{"ab", "abcd", "abcd"}); got != "abcd" {
		t.Errorf("Expected 'abcd', got '%s'", got)
	}
	if got := MajorityVote([]string{"ab", "ab", "abcd"}); got != "ab  " {
		t.Errorf("Expected 'ab  ', got '%s'", got)
	}
}

func TestMajorityVote_SpaceCountsAsCharacter(t *testing.T) {
	if got := MajorityVote([]string{"a b", "a b", "axb"}); got != "a b" {
		t.Errorf("Expected 'a b', got '%s'", got)
	}
}
