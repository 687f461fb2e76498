package model

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/ELELAB/MAVISp-loop-replacer/loop"
	"github.com/ELELAB/MAVISp-loop-replacer/pdb"
)

// A MismatchError reports that a candidate model could not be put into
// residue correspondence with the template: its residues disagree with the
// retained template residues in number or identity.
type MismatchError struct {
	Candidate string
	Msg       string
}

func (e MismatchError) Error() string {
	return fmt.Sprintf("cannot renumber '%s': %s", e.Candidate, e.Msg)
}

// Renumber rewrites the residue bookkeeping columns of a candidate model so
// that its numbering matches the template's original scheme instead of the
// sequential 1..M scheme the engine built it under.
//
// The correspondence is positional: the candidate's residue m is the m'th
// retained template residue under the mapper. The template chain must have
// one ATOM residue for every SEQRES position, and each candidate residue's
// identity must agree with the template's at the corresponding position;
// any disagreement is a MismatchError, never a silent skip.
func Renumber(candPath string, tmpl *pdb.Chain, m *loop.Mapper,
	outPath string) error {

	if len(tmpl.Residues) != len(tmpl.Sequence) {
		return MismatchError{candPath, fmt.Sprintf(
			"template chain %c has %d ATOM residues but %d SEQRES "+
				"residues; numbering correspondence cannot be established",
			tmpl.Ident, len(tmpl.Residues), len(tmpl.Sequence))}
	}

	// keptOrig[m-1] is the original template position of the candidate's
	// residue m.
	keptOrig := make([]int, 0, m.KeptLen(len(tmpl.Sequence)))
	for orig := 1; orig <= len(tmpl.Sequence); orig++ {
		if !m.Trimmed(orig) {
			keptOrig = append(keptOrig, orig)
		}
	}

	in, err := os.Open(candPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	buf := bufio.NewWriter(out)

	seen := make(map[int]bool)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := []byte(scanner.Text())
		rewritten, err := renumberLine(line, candPath, tmpl, keptOrig, seen)
		if err != nil {
			out.Close()
			return err
		}
		if _, err := buf.Write(rewritten); err != nil {
			out.Close()
			return err
		}
		if err := buf.WriteByte('\n'); err != nil {
			out.Close()
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		out.Close()
		return err
	}
	if len(seen) != len(keptOrig) {
		out.Close()
		return MismatchError{candPath, fmt.Sprintf(
			"model has %d residues but the trimmed template retains %d",
			len(seen), len(keptOrig))}
	}
	if err := buf.Flush(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// renumberLine rewrites one line of the candidate file. Only ATOM, HETATM
// and TER records carry residue columns; everything else passes through
// untouched.
func renumberLine(line []byte, candPath string, tmpl *pdb.Chain,
	keptOrig []int, seen map[int]bool) ([]byte, error) {

	if !isResidueRecord(line) || len(line) < 27 {
		return line, nil
	}

	num, err := strconv.Atoi(string(bytes.TrimSpace(line[22:26])))
	if err != nil {
		return line, nil
	}
	if num < 1 || num > len(keptOrig) {
		return nil, MismatchError{candPath, fmt.Sprintf(
			"model residue %d has no corresponding retained template "+
				"residue (retained count is %d)", num, len(keptOrig))}
	}
	orig := keptOrig[num-1]
	tmplRes := tmpl.Residues[orig-1]

	resName := string(bytes.TrimSpace(line[17:20]))
	if single, ok := pdb.AminoThreeToOne[resName]; ok {
		if single != tmpl.Sequence[orig-1] {
			return nil, MismatchError{candPath, fmt.Sprintf(
				"model residue %d is %s but template position %d is %s",
				num, resName, orig,
				pdb.AminoOneToThree[tmpl.Sequence[orig-1]])}
		}
		seen[num] = true
	}

	line[21] = tmpl.Ident
	copy(line[22:26], []byte(fmt.Sprintf("%4d", tmplRes.SeqNum)))
	line[26] = tmplRes.ICode
	return line, nil
}

func isResidueRecord(line []byte) bool {
	if len(line) < 6 {
		return false
	}
	switch string(bytes.TrimSpace(line[0:6])) {
	case "ATOM", "HETATM", "TER":
		return true
	}
	return false
}
