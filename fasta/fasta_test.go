package fasta

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadAll(t *testing.T) {
	in := strings.NewReader(
		">sp|P00000|TEST first\n" +
			"MKGH\n" +
			"LLVA\n" +
			"\n" +
			"> second\n" +
			"ACDE\n")
	entries, err := ReadAll(in)
	if err != nil {
		t.Fatalf("Could not read FASTA: %s", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries but got %d", len(entries))
	}
	if entries[0].Header != "sp|P00000|TEST first" {
		t.Fatalf("Bad first header: '%s'", entries[0].Header)
	}
	if got := string(entries[0].Sequence); got != "MKGHLLVA" {
		t.Fatalf("Sequence lines should concatenate to 'MKGHLLVA' "+
			"but got '%s'", got)
	}
	if got := string(entries[1].Sequence); got != "ACDE" {
		t.Fatalf("Bad second sequence: '%s'", got)
	}
}

func TestReadNoHeader(t *testing.T) {
	if _, err := ReadAll(strings.NewReader("MKGH\n")); err == nil {
		t.Fatalf("Sequence data before any header should be an error")
	}
}

func TestReadEmptySequence(t *testing.T) {
	if _, err := ReadAll(strings.NewReader(">only a header\n")); err == nil {
		t.Fatalf("An entry with no sequence should be an error")
	}
}

func TestWriteWraps(t *testing.T) {
	seq := make([]byte, 130)
	for i := range seq {
		seq[i] = 'A'
	}
	var buf bytes.Buffer
	err := NewWriter(&buf).WriteAll([]Entry{{Header: "t", Sequence: seq}})
	if err != nil {
		t.Fatalf("Could not write FASTA: %s", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines but got %d", len(lines))
	}
	if lines[0] != ">t" {
		t.Fatalf("Bad header line: '%s'", lines[0])
	}
	if len(lines[1]) != 60 || len(lines[2]) != 60 || len(lines[3]) != 10 {
		t.Fatalf("Sequence should wrap as 60/60/10 but wraps as "+
			"%d/%d/%d", len(lines[1]), len(lines[2]), len(lines[3]))
	}
}

func TestRoundTrip(t *testing.T) {
	entries := []Entry{{Header: "x", Sequence: []byte("MKGHLLVA")}}
	var buf bytes.Buffer
	if err := NewWriter(&buf).WriteAll(entries); err != nil {
		t.Fatalf("Could not write FASTA: %s", err)
	}
	back, err := ReadAll(&buf)
	if err != nil {
		t.Fatalf("Could not read written FASTA: %s", err)
	}
	if len(back) != 1 || back[0].Header != "x" ||
		string(back[0].Sequence) != "MKGHLLVA" {

		t.Fatalf("Round trip mangled the entry: %v", back)
	}
}
