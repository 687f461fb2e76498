package loop

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSpecs builds a validated Set from parallel lists of "start:end" and
// "keepN:keepC" tokens. The i'th keep token applies to the i'th loop token.
//
// Integers are parsed strictly: any non-numeric or malformed token yields a
// ParseError. List length mismatches, invalid specs and overlapping loops
// yield a ConfigError. The returned set is sorted ascending by start.
func ParseSpecs(loops, keeps []string) (Set, error) {
	if len(loops) != len(keeps) {
		return nil, ConfigError{fmt.Sprintf(
			"%d loop tokens but %d keep tokens; each loop needs exactly "+
				"one keep token", len(loops), len(keeps))}
	}
	if len(loops) == 0 {
		return nil, ConfigError{"at least one loop must be given"}
	}

	set := make(Set, len(loops))
	for i := range loops {
		start, end, err := parsePair(loops[i])
		if err != nil {
			return nil, err
		}
		keepN, keepC, err := parsePair(keeps[i])
		if err != nil {
			return nil, err
		}
		set[i] = Spec{Start: start, End: end, KeepN: keepN, KeepC: keepC}
	}
	if err := set.sortAndCheck(); err != nil {
		return nil, err
	}
	return set, nil
}

// parsePair parses a "number:number" token.
func parsePair(token string) (int, int, error) {
	pieces := strings.Split(token, ":")
	if len(pieces) != 2 {
		return 0, 0, ParseError{token,
			fmt.Errorf("expected exactly one ':' separator")}
	}
	first, err := strconv.Atoi(strings.TrimSpace(pieces[0]))
	if err != nil {
		return 0, 0, ParseError{token, err}
	}
	second, err := strconv.Atoi(strings.TrimSpace(pieces[1]))
	if err != nil {
		return 0, 0, ParseError{token, err}
	}
	return first, second, nil
}
