// Package ali builds the two-record alignment handed to the modeling
// engine: the full template sequence from the structure, and a target
// sequence in which every loop's trimmed span is replaced by a gap run of
// exactly the trimmed span's length.
package ali

import (
	"github.com/ELELAB/MAVISp-loop-replacer/loop"
)

// Gap is the alignment gap character.
const Gap = '-'

// A Record is one alignment ready to be written: the template sequence as
// read from the structure and the gapped target built from it. Both
// sequences always have the same length, gaps counted.
type Record struct {
	// ID identifies the template; the target is named ID + "_short".
	ID string

	// PDBFile is the structure file the template sequence came from.
	PDBFile string

	// Chain is the template chain identifier.
	Chain byte

	Template []byte
	Target   []byte
}

// TargetID returns the identifier of the gapped target sequence.
func (r Record) TargetID() string {
	return r.ID + "_short"
}

// Build constructs the alignment record for a template sequence and a
// validated loop set. The target sequence is emitted in a single
// left-to-right pass over the template: unchanged spans and gap runs are
// appended in order, so no position is ever computed against a partially
// rewritten sequence. The set must already be sorted; sets from
// loop.ParseSpecs always are.
func Build(id, pdbFile string, chain byte,
	template []byte, set loop.Set) Record {

	target := make([]byte, 0, len(template))
	pos := 1 // 1-based position of the next template residue to emit
	for _, s := range set {
		ts, te := s.TrimmedStart(), s.TrimmedEnd()
		target = append(target, template[pos-1:ts-1]...)
		for i := ts; i <= te; i++ {
			target = append(target, Gap)
		}
		pos = te + 1
	}
	target = append(target, template[pos-1:]...)

	return Record{
		ID:       id,
		PDBFile:  pdbFile,
		Chain:    chain,
		Template: template,
		Target:   target,
	}
}
