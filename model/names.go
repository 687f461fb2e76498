package model

import (
	"fmt"
	"strings"
)

// AlignmentFile returns the name of the alignment file for a template id.
func AlignmentFile(id string) string {
	return id + ".ali"
}

// CandidateFile returns the name of the n'th candidate structure produced
// by the engine for a template id. Candidates are numbered from 1.
func CandidateFile(id string, n int) string {
	return fmt.Sprintf("%s.%d.pdb", id, n)
}

// RenumberedFile returns the output name for a renumbered candidate: the
// candidate's name with a fixed "_renum" suffix before the extension.
func RenumberedFile(candidate string) string {
	if strings.HasSuffix(candidate, ".pdb") {
		return strings.TrimSuffix(candidate, ".pdb") + "_renum.pdb"
	}
	return candidate + "_renum.pdb"
}
