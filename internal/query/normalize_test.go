package query

import "testing"

func TestNormalizeRemovesPunctuationAndSpaces(t *testing.T) {
	if got := Normalize("a, b!  c"); got != "a b c" {
		t.Fatalf("Normalize = %q, want %q", got, "a b c")
	}
}

func TestNormalizeAllPunctuation(t *testing.T) {
	in := "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	if got := Normalize(in); got != "" {
		t.Fatalf("expected empty output for pure punctuation, got %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"hello world",
		"Don't stop -- believing!",
		"a, b!  c",
		"tabs\tand\nnewlines",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestNormalizeKeepsLettersAndDigits(t *testing.T) {
	if got := Normalize("scene#42: red car"); got != "scene42 red car" {
		t.Fatalf("Normalize = %q, want %q", got, "scene42 red car")
	}
}
