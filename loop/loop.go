// Package loop defines loop-shortening specifications and the residue
// position bookkeeping needed to hand a trimmed sequence to a modeling
// engine.
//
// A Spec names a loop by its 1-based inclusive start and end positions in
// the original sequence, along with how many residues to keep at each end.
// The residues strictly between the kept stretches are removed; every
// position downstream of a removed stretch shifts by that stretch's length,
// and the shifts accumulate across loops. The Mapper owns that arithmetic.
package loop

import (
	"fmt"
	"sort"
)

// A Spec is one loop to shorten.
type Spec struct {
	// Start and End are 1-based inclusive positions in the original
	// sequence bounding the full loop.
	Start, End int

	// KeepN and KeepC are the number of residues retained at the loop's
	// N-terminal and C-terminal ends. The interior between them is removed.
	KeepN, KeepC int
}

// TrimmedStart returns the original-numbering position of the first residue
// removed from the loop.
func (s Spec) TrimmedStart() int {
	return s.Start + s.KeepN + 1
}

// TrimmedEnd returns the original-numbering position of the last residue
// removed from the loop.
func (s Spec) TrimmedEnd() int {
	return s.End - s.KeepC - 1
}

// TrimmedLen returns the number of residues removed from the loop.
func (s Spec) TrimmedLen() int {
	return s.TrimmedEnd() - s.TrimmedStart() + 1
}

func (s Spec) String() string {
	return fmt.Sprintf("%d:%d (keep %d:%d)", s.Start, s.End, s.KeepN, s.KeepC)
}

// check verifies the invariants of a single spec: the loop is a real span,
// the keep counts are non-negative and there is at least one residue left
// to remove.
func (s Spec) check() error {
	if s.End <= s.Start {
		return ConfigError{fmt.Sprintf(
			"loop %s: end must be greater than start", s)}
	}
	if s.KeepN < 0 || s.KeepC < 0 {
		return ConfigError{fmt.Sprintf(
			"loop %s: keep counts must not be negative", s)}
	}
	if s.TrimmedEnd() < s.TrimmedStart() {
		return ConfigError{fmt.Sprintf(
			"loop %s: nothing left to trim (the kept ends cover the "+
				"whole loop)", s)}
	}
	return nil
}

// A Set is a collection of loop specs sorted ascending by start position.
// Sets produced by ParseSpecs are always sorted and pairwise disjoint.
type Set []Spec

// sortAndCheck orders the set by start position and verifies that every
// spec is valid and that no two loops overlap or touch.
func (set Set) sortAndCheck() error {
	sort.Slice(set, func(i, j int) bool {
		return set[i].Start < set[j].Start
	})
	for i, s := range set {
		if err := s.check(); err != nil {
			return err
		}
		if i > 0 && set[i-1].End >= s.Start {
			return ConfigError{fmt.Sprintf(
				"loops %s and %s overlap", set[i-1], s)}
		}
	}
	return nil
}

// Validate checks that every loop lies inside a sequence of the given
// length. It is the caller's bridge between parsed specs and an actual
// template sequence.
func (set Set) Validate(seqLen int) error {
	for _, s := range set {
		if s.Start < 1 || s.End > seqLen {
			return ConfigError{fmt.Sprintf(
				"loop %s lies outside the sequence (1-%d)", s, seqLen)}
		}
	}
	return nil
}

// TrimmedTotal returns the total number of residues removed by all loops.
func (set Set) TrimmedTotal() int {
	total := 0
	for _, s := range set {
		total += s.TrimmedLen()
	}
	return total
}
