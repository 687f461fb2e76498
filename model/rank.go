package model

import (
	"errors"
	"sort"
)

// ErrNoValidModel is returned by Rank when every candidate failed.
var ErrNoValidModel = errors.New("no candidate model was built successfully")

// Ranked is a list of successful candidates ordered ascending by quality
// score, best first.
type Ranked []Candidate

func (r Ranked) Len() int           { return len(r) }
func (r Ranked) Less(i, j int) bool { return r[i].Quality < r[j].Quality }
func (r Ranked) Swap(i, j int)      { r[i], r[j] = r[j], r[i] }

// Top returns the best ranked candidate. Rank never returns an empty
// Ranked, so Top is always safe on its result.
func (r Ranked) Top() Candidate {
	return r[0]
}

// Rank drops failed candidates and orders the rest ascending by quality
// score. If nothing survives the filter, ErrNoValidModel is returned.
func Rank(cands []Candidate) (Ranked, error) {
	ranked := make(Ranked, 0, len(cands))
	for _, c := range cands {
		if !c.Failed {
			ranked = append(ranked, c)
		}
	}
	if len(ranked) == 0 {
		return nil, ErrNoValidModel
	}
	sort.Sort(ranked)
	return ranked, nil
}
