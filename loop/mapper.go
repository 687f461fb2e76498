package loop

import "fmt"

// A Mapper translates original (pre-trim) residue positions into positions
// in the renumbered sequence the modeling engine builds, where every
// trimmed stretch has been removed and everything downstream shifted up.
//
// The mapping for a residue after the k'th loop must subtract the
// cumulative trimmed length of loops 1..k, not just the most recent loop's
// trim. A mapper that forgets the earlier loops selects the wrong residues
// for every loop after the first, and nothing downstream will notice: the
// models come back structurally valid and silently wrong. Map makes the
// accumulation explicit by walking the trimmed spans in ascending order and
// summing the lengths of every span that ends before the queried position.
//
// A Mapper is immutable after construction and safe for concurrent use.
type Mapper struct {
	set   Set
	spans []span
	total int
}

// span is one trimmed stretch in original numbering, inclusive.
type span struct {
	start, end int
}

func (sp span) len() int {
	return sp.end - sp.start + 1
}

// NewMapper builds a Mapper from a validated Set. The set must already be
// sorted and disjoint; sets from ParseSpecs always are.
func NewMapper(set Set) *Mapper {
	m := &Mapper{
		set:   set,
		spans: make([]span, len(set)),
	}
	for i, s := range set {
		m.spans[i] = span{s.TrimmedStart(), s.TrimmedEnd()}
		m.total += m.spans[i].len()
	}
	return m
}

// Map returns the renumbered position of the residue at the given original
// 1-based position. Residues inside a trimmed span have no renumbered
// position; for those Map returns false.
func (m *Mapper) Map(orig int) (int, bool) {
	removed := 0
	for _, sp := range m.spans {
		if orig < sp.start {
			break
		}
		if orig <= sp.end {
			return 0, false
		}
		removed += sp.len()
	}
	return orig - removed, true
}

// MustMap is like Map but panics if the residue was trimmed. It is for
// callers that only ever iterate retained residues; a panic here is a bug
// in the caller, not a configuration problem.
func (m *Mapper) MustMap(orig int) int {
	out, kept := m.Map(orig)
	if !kept {
		panic(fmt.Sprintf("residue %d lies inside a trimmed span and has "+
			"no renumbered position", orig))
	}
	return out
}

// Trimmed returns true if the residue at the given original position is
// removed by some loop.
func (m *Mapper) Trimmed(orig int) bool {
	_, kept := m.Map(orig)
	return !kept
}

// TrimmedTotal returns the total number of residues removed by all loops.
func (m *Mapper) TrimmedTotal() int {
	return m.total
}

// KeptLen returns the length of the renumbered sequence for an original
// sequence of the given length.
func (m *Mapper) KeptLen(seqLen int) int {
	return seqLen - m.total
}

// A Range is an inclusive residue range in renumbered positions.
type Range struct {
	Start, End int
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// RebuildRanges returns, per loop, the renumbered range of residues the
// engine must treat as movable: the kept stretches strictly between the
// loop's bounds and its trimmed span. After trimming, a loop's kept
// N-terminal and C-terminal stretches are adjacent in renumbered space, so
// each loop contributes at most one contiguous range. Loops that keep no
// residues on either side contribute nothing.
func (m *Mapper) RebuildRanges() []Range {
	ranges := make([]Range, 0, len(m.set))
	for _, s := range m.set {
		if s.KeepN == 0 && s.KeepC == 0 {
			continue
		}
		firstOrig := s.Start + 1
		if s.KeepN == 0 {
			firstOrig = s.End - s.KeepC
		}
		lastOrig := s.End - 1
		if s.KeepC == 0 {
			lastOrig = s.Start + s.KeepN
		}
		ranges = append(ranges, Range{
			Start: m.MustMap(firstOrig),
			End:   m.MustMap(lastOrig),
		})
	}
	return ranges
}
