// Package model defines the candidate structures returned by the modeling
// engine, ranks them by quality, and restores template numbering in the
// accepted ones.
package model

import (
	"github.com/ELELAB/MAVISp-loop-replacer/loop"
)

// A Candidate is one model produced by the engine for a single build
// attempt. Quality is the primary ranking key; lower is better. Secondary
// is reported but never used for ordering. Failed marks attempts the engine
// could not complete.
type Candidate struct {
	Name      string
	Quality   float64
	Secondary float64
	Failed    bool
}

// An Engine is the external modeling collaborator. Submit hands it an
// alignment file and the renumbered residue ranges it may move, and asks
// for the given number of candidate models. Implementations must name
// their outputs CandidateFile(id, n) for n = 1..models; not every attempt
// needs to succeed.
type Engine interface {
	Submit(id, aliFile string, rebuild []loop.Range,
		models int) ([]Candidate, error)
}
