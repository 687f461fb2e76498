package looper

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ELELAB/MAVISp-loop-replacer/model"
)

// ReadSummary parses the engine's summary table: one candidate per line in
// the form
//
//	name  molpdf  dope  status
//
// where status is "ok" or "failed". Blank lines and lines starting with
// '#' are skipped. A failed candidate's scores may be absent; they are
// reported as zero.
func ReadSummary(r io.Reader) ([]model.Candidate, error) {
	cands := make([]model.Candidate, 0, 5)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		cand, err := parseSummaryLine(line)
		if err != nil {
			return nil, err
		}
		cands = append(cands, cand)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cands, nil
}

func parseSummaryLine(line string) (model.Candidate, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return model.Candidate{}, fmt.Errorf(
			"malformed engine summary line '%s'", line)
	}

	cand := model.Candidate{Name: fields[0]}
	switch fields[len(fields)-1] {
	case "ok":
	case "failed":
		cand.Failed = true
	default:
		return model.Candidate{}, fmt.Errorf(
			"engine summary line '%s' has unknown status '%s'",
			line, fields[len(fields)-1])
	}
	if cand.Failed {
		return cand, nil
	}

	if len(fields) != 4 {
		return model.Candidate{}, fmt.Errorf(
			"engine summary line '%s' should have exactly 4 fields", line)
	}
	var err error
	if cand.Quality, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return model.Candidate{}, fmt.Errorf(
			"bad molpdf score in summary line '%s': %s", line, err)
	}
	if cand.Secondary, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return model.Candidate{}, fmt.Errorf(
			"bad DOPE score in summary line '%s': %s", line, err)
	}
	return cand, nil
}
