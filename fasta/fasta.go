// Package fasta provides reading and writing of FASTA formatted sequence
// files. Parsing is deliberately conservative: headers start with '>',
// sequence lines are concatenated verbatim with surrounding whitespace
// trimmed.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// An Entry corresponds to a single FASTA record: a header (without the
// leading '>') and the concatenation of all of its sequence lines.
type Entry struct {
	Header   string
	Sequence []byte
}

// ReadAll reads every FASTA entry from the given reader. An entry with a
// header but no sequence data is an error, as is sequence data appearing
// before the first header.
func ReadAll(r io.Reader) ([]Entry, error) {
	entries := make([]Entry, 0, 1)
	scanner := bufio.NewScanner(r)

	var current *Entry
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &Entry{
				Header:   strings.TrimSpace(line[1:]),
				Sequence: make([]byte, 0, 100),
			}
			continue
		}
		if current == nil {
			return nil, fmt.Errorf(
				"FASTA data contains sequence '%s' before any header", line)
		}
		current.Sequence = append(current.Sequence, []byte(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if current != nil {
		entries = append(entries, *current)
	}
	for _, entry := range entries {
		if len(entry.Sequence) == 0 {
			return nil, fmt.Errorf(
				"FASTA entry '%s' has an empty sequence", entry.Header)
		}
	}
	return entries, nil
}

// A Writer writes FASTA entries with sequences wrapped at 60 columns.
type Writer struct {
	buf *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{bufio.NewWriter(w)}
}

// Write writes a single FASTA entry. The writer is not flushed.
func (w *Writer) Write(entry Entry) error {
	if _, err := fmt.Fprintf(w.buf, ">%s\n", entry.Header); err != nil {
		return err
	}
	for start := 0; start < len(entry.Sequence); start += 60 {
		end := start + 60
		if end > len(entry.Sequence) {
			end = len(entry.Sequence)
		}
		if _, err := fmt.Fprintf(w.buf, "%s\n",
			entry.Sequence[start:end]); err != nil {

			return err
		}
	}
	return nil
}

// WriteAll writes each entry in sequence and flushes the writer.
func (w *Writer) WriteAll(entries []Entry) error {
	for _, entry := range entries {
		if err := w.Write(entry); err != nil {
			return err
		}
	}
	return w.buf.Flush()
}
