// Package pdb reads the pieces of a PDB file this project needs: the
// SEQRES sequence of each chain and the per-residue numbering of its ATOM
// records. It deliberately builds no geometry model; coordinates are never
// interpreted, only the residue bookkeeping columns.
package pdb

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
)

// AminoThreeToOne is a map from three letter amino acids to their
// corresponding single letter representation.
var AminoThreeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
}

// AminoOneToThree is the reverse of AminoThreeToOne. It is created in
// this package's 'init' function.
var AminoOneToThree = map[byte]string{}

func init() {
	for k, v := range AminoThreeToOne {
		AminoOneToThree[v] = k
	}
}

// Entry represents all information read from a particular PDB file.
type Entry struct {
	Path   string
	IdCode string
	Chains map[byte]*Chain
}

// New creates a new PDB Entry from a file. If the file cannot be read, or
// there is an error parsing the PDB file, an error is returned.
//
// If the file name ends with ".gz", gzip decompression will be used.
func New(fileName string) (*Entry, error) {
	var reader io.Reader
	var err error

	reader, err = os.Open(fileName)
	if err != nil {
		return nil, err
	}

	if path.Ext(fileName) == ".gz" {
		reader, err = gzip.NewReader(reader)
		if err != nil {
			return nil, err
		}
	}

	entry := &Entry{
		Path:   fileName,
		Chains: make(map[byte]*Chain),
	}

	// Traverse each line and process it according to the record name,
	// which is always in the first six columns.
	breader := bufio.NewReaderSize(reader, 1000)
	for {
		// 'isPrefix' is ignored; no line this package cares about is
		// longer than the 1000 byte buffer.
		line, _, err := breader.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if len(line) < 6 {
			continue
		}

		switch strings.TrimSpace(string(line[0:6])) {
		case "HEADER":
			entry.parseHeader(line)
		case "SEQRES":
			entry.parseSeqres(line)
		case "ATOM":
			entry.parseAtom(line)
		}
	}

	return entry, nil
}

// Chain returns the chain with the given identifier, or nil if the entry
// has no such chain.
func (e *Entry) Chain(ident byte) *Chain {
	return e.Chains[ident]
}

// OneChain returns the single chain in the PDB file. If there is more than
// one chain, OneChain will panic. This is convenient when you expect a PDB
// file to have only a single chain, but don't know the name.
func (e *Entry) OneChain() *Chain {
	if len(e.Chains) != 1 {
		panic(fmt.Sprintf("OneChain can only be called on PDB entries with "+
			"ONE chain. But the '%s' PDB entry has %d chains.",
			e.Path, len(e.Chains)))
	}
	for _, chain := range e.Chains {
		return chain
	}
	panic("unreachable")
}

// String returns a sorted list of all chains, their ATOM residue counts,
// and the amino acid sequence from SEQRES.
func (e *Entry) String() string {
	lines := make([]string, 0)
	for _, chain := range e.Chains {
		lines = append(lines, chain.String())
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// getOrMakeChain looks for a chain in the 'Chains' map corresponding to the
// chain identifier. If one exists, it is returned. If one doesn't exist,
// it is created, memory is allocated and it is returned.
func (e *Entry) getOrMakeChain(ident byte) *Chain {
	if chain, ok := e.Chains[ident]; ok {
		return chain
	}
	e.Chains[ident] = &Chain{
		Ident:    ident,
		Sequence: make([]byte, 0, 10),
		Residues: make([]Residue, 0, 10),
	}
	return e.Chains[ident]
}

// parseHeader reads the PDB id code from a HEADER record, if present.
func (e *Entry) parseHeader(line []byte) {
	if len(line) >= 66 {
		e.IdCode = strings.TrimSpace(string(line[62:66]))
	}
}

// parseSeqres loads all pertinent information from SEQRES records in a PDB
// file. In particular, amino acid residues are read and added to the
// chain's "Sequence" field. If a residue isn't a valid amino acid, it is
// simply ignored.
//
// N.B. This assumes that the SEQRES records are in order in the PDB file.
func (e *Entry) parseSeqres(line []byte) {
	chain := e.getOrMakeChain(line[11])

	// Residues are in columns 19-21, 23-25, 27-29, ..., 67-69
	for i := 19; i <= 67; i += 4 {
		end := i + 3
		if end >= len(line) {
			break
		}
		residue := strings.TrimSpace(string(line[i:end]))
		if single, ok := AminoThreeToOne[residue]; ok {
			chain.Sequence = append(chain.Sequence, single)
		}
	}
}

// parseAtom records the residue bookkeeping columns of an ATOM record: the
// residue name, its sequence number and its insertion code. Consecutive
// ATOM records belonging to the same residue collapse into one Residue, so
// a chain's Residues slice lists each structured residue once, in file
// order.
//
// ATOM records whose residue name is not a standard amino acid are ignored.
func (e *Entry) parseAtom(line []byte) {
	if len(line) < 27 {
		return
	}
	chain := e.getOrMakeChain(line[21])

	residue := strings.TrimSpace(string(line[17:20]))
	single, ok := AminoThreeToOne[residue]
	if !ok {
		return
	}

	snum := strings.TrimSpace(string(line[22:26]))
	num, err := strconv.ParseInt(snum, 10, 32)
	if err != nil {
		return
	}
	res := Residue{
		Name:   single,
		SeqNum: int(num),
		ICode:  line[26],
	}
	if n := len(chain.Residues); n > 0 && chain.Residues[n-1].same(res) {
		return
	}
	chain.Residues = append(chain.Residues, res)
}

// Chain represents a protein chain or subunit in a PDB file. Each chain
// has its own identifier, the amino acid sequence from its SEQRES records,
// and the residues observed in its ATOM records in file order.
type Chain struct {
	Ident    byte
	Sequence []byte
	Residues []Residue
}

// A Residue is one structured residue from the ATOM records: its
// single-letter name, its author-assigned sequence number and its insertion
// code (' ' when absent).
type Residue struct {
	Name   byte
	SeqNum int
	ICode  byte
}

func (r Residue) same(other Residue) bool {
	return r.SeqNum == other.SeqNum && r.ICode == other.ICode
}

// String returns a FASTA-like formatted string of this chain and all of its
// related information.
func (c *Chain) String() string {
	return fmt.Sprintf("> Chain %c (%d ATOM residues) :: length %d\n%s",
		c.Ident, len(c.Residues), len(c.Sequence), string(c.Sequence))
}
