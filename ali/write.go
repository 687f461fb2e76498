package ali

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Write writes the record in the engine's two-record text format: a
// template block (header, structure source line, sequence) followed by a
// target block (header, blank descriptor line, gapped sequence). Each
// sequence is wrapped at 60 columns and terminated by a '*' sentinel.
func Write(w io.Writer, r Record) error {
	buf := bufio.NewWriter(w)

	fmt.Fprintf(buf, ">P1;%s\n", r.ID)
	fmt.Fprintf(buf, "structureX:%s:FIRST:%c:LAST:%c::::\n",
		r.PDBFile, r.Chain, r.Chain)
	writeSeq(buf, r.Template)

	fmt.Fprintf(buf, ">P1;%s\n", r.TargetID())
	fmt.Fprintln(buf, "")
	writeSeq(buf, r.Target)

	return buf.Flush()
}

// WriteFile writes the record to the named file, creating or truncating it.
func WriteFile(path string, r Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeSeq(buf *bufio.Writer, seq []byte) {
	for start := 0; start < len(seq); start += 60 {
		end := start + 60
		if end > len(seq) {
			end = len(seq)
		}
		fmt.Fprintf(buf, "%s", seq[start:end])
		if end == len(seq) {
			fmt.Fprint(buf, "*")
		}
		fmt.Fprintln(buf, "")
	}
}
