package looper

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/BurntSushi/cmd"
	"github.com/BurntSushi/ty/fun"

	"github.com/ELELAB/MAVISp-loop-replacer/loop"
	"github.com/ELELAB/MAVISp-loop-replacer/model"
)

type Config struct {
	Exec string

	// When true, the engine's stderr is mapped to the current processes'
	// stderr, and each invocation is echoed before it runs.
	Verbose bool
}

var Default = Config{
	Exec:    "loopbuilder",
	Verbose: false,
}

// Submit asks the engine for the given number of candidate models built
// from the alignment file, allowing only the residues in 'rebuild'
// (renumbered positions) to move. Builds run in parallel, one engine
// invocation per candidate.
//
// A build attempt that fails is returned as a failed Candidate rather than
// aborting the whole submission; Submit itself only errors when the
// selection file cannot be written.
func (conf Config) Submit(id, aliFile string, rebuild []loop.Range,
	models int) ([]model.Candidate, error) {

	selFile, err := writeSelection(rebuild)
	if err != nil {
		return nil, err
	}
	defer os.Remove(selFile)

	build := func(n int) model.Candidate {
		return conf.buildOne(id, aliFile, selFile, n+1)
	}
	return fun.ParMap(build, fun.Range(0, models)).([]model.Candidate), nil
}

// buildOne runs a single engine invocation for candidate n and parses the
// summary line it prints.
func (conf Config) buildOne(id, aliFile, selFile string,
	n int) model.Candidate {

	outFile := model.CandidateFile(id, n)
	args := []string{
		"-a", aliFile,
		"-s", selFile,
		"-o", outFile,
		"-n", fmt.Sprintf("%d", n),
	}

	c := cmd.New(conf.Exec, args...)
	var stdout bytes.Buffer
	c.Cmd.Stdout = &stdout
	if conf.Verbose {
		fmt.Fprintf(os.Stderr, "\n%s\n", c)
		c.Cmd.Stderr = os.Stderr
	}
	if err := c.Run(); err != nil {
		return model.Candidate{Name: outFile, Failed: true}
	}

	cands, err := ReadSummary(&stdout)
	if err != nil || len(cands) != 1 {
		return model.Candidate{Name: outFile, Failed: true}
	}
	return cands[0]
}

// writeSelection writes the movable residue ranges to a temporary file,
// one "start end" pair per line, and returns its path. The caller removes
// the file.
func writeSelection(rebuild []loop.Range) (string, error) {
	selFile, err := ioutil.TempFile("", "loop-replacer-sel")
	if err != nil {
		return "", err
	}
	for _, r := range rebuild {
		if _, err := fmt.Fprintf(selFile, "%d %d\n", r.Start, r.End); err != nil {
			selFile.Close()
			os.Remove(selFile.Name())
			return "", err
		}
	}
	if err := selFile.Close(); err != nil {
		os.Remove(selFile.Name())
		return "", err
	}
	return selFile.Name(), nil
}
