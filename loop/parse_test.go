package loop

import (
	"errors"
	"testing"
)

func TestParseSpecs(t *testing.T) {
	set, err := ParseSpecs(
		[]string{"120:140", "50:70"},
		[]string{"2:2", "3:3"})
	if err != nil {
		t.Fatalf("Could not parse valid specs: %s", err)
	}
	if len(set) != 2 {
		t.Fatalf("Expected 2 specs but got %d", len(set))
	}

	// The set must come back sorted ascending by start.
	first, second := set[0], set[1]
	if first.Start != 50 || first.End != 70 ||
		first.KeepN != 3 || first.KeepC != 3 {

		t.Fatalf("First spec should be 50:70 (keep 3:3) but is %s", first)
	}
	if second.Start != 120 || second.End != 140 ||
		second.KeepN != 2 || second.KeepC != 2 {

		t.Fatalf("Second spec should be 120:140 (keep 2:2) but is %s",
			second)
	}
}

func TestParseMalformed(t *testing.T) {
	bad := [][2]string{
		{"50-70", "3:3"},
		{"a:70", "3:3"},
		{"50:70:90", "3:3"},
		{"50:70", "3:"},
		{"50:70", "three:3"},
	}
	for _, tokens := range bad {
		_, err := ParseSpecs([]string{tokens[0]}, []string{tokens[1]})
		var perr ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("Tokens ('%s', '%s') should yield a ParseError, "+
				"but yielded %v", tokens[0], tokens[1], err)
		}
	}
}

func TestParseLengthMismatch(t *testing.T) {
	_, err := ParseSpecs([]string{"50:70", "120:140"}, []string{"3:3"})
	assertConfigError(t, err)
}

func TestParseNoLoops(t *testing.T) {
	_, err := ParseSpecs(nil, nil)
	assertConfigError(t, err)
}

func TestParseOverlap(t *testing.T) {
	_, err := ParseSpecs(
		[]string{"50:70", "60:90"},
		[]string{"3:3", "3:3"})
	assertConfigError(t, err)
}

func TestParseBackwardLoop(t *testing.T) {
	_, err := ParseSpecs([]string{"70:50"}, []string{"3:3"})
	assertConfigError(t, err)
}

func TestParseNegativeKeep(t *testing.T) {
	_, err := ParseSpecs([]string{"50:70"}, []string{"-1:3"})
	assertConfigError(t, err)
}

func TestParseEmptyTrim(t *testing.T) {
	// keep 10:10 covers all of 50:70; there is nothing left to remove.
	_, err := ParseSpecs([]string{"50:70"}, []string{"10:10"})
	assertConfigError(t, err)
}

func TestValidateOutOfRange(t *testing.T) {
	set, err := ParseSpecs([]string{"50:70"}, []string{"3:3"})
	if err != nil {
		t.Fatalf("Could not parse valid specs: %s", err)
	}
	assertConfigError(t, set.Validate(60))
	if err := set.Validate(70); err != nil {
		t.Fatalf("A loop ending at the last residue should be valid, "+
			"but got: %s", err)
	}
}

func assertConfigError(t *testing.T, err error) {
	t.Helper()
	var cerr ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("Expected a ConfigError but got %v", err)
	}
}
