package model

import "testing"

func TestRank(t *testing.T) {
	cands := []Candidate{
		{Name: "x.1.pdb", Quality: 3.1},
		{Name: "x.2.pdb", Quality: 2.0},
		{Name: "x.3.pdb", Quality: 5.5},
	}
	ranked, err := Rank(cands)
	if err != nil {
		t.Fatalf("Could not rank candidates: %s", err)
	}
	if top := ranked.Top(); top.Quality != 2.0 || top.Name != "x.2.pdb" {
		t.Fatalf("Top model should be x.2.pdb (2.0) but is %s (%f)",
			top.Name, top.Quality)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Quality > ranked[i].Quality {
			t.Fatalf("Ranking is not ascending by quality: %v", ranked)
		}
	}
}

func TestRankSkipsFailed(t *testing.T) {
	cands := []Candidate{
		{Name: "x.1.pdb", Quality: 1.0, Failed: true},
		{Name: "x.2.pdb", Quality: 9.0},
	}
	ranked, err := Rank(cands)
	if err != nil {
		t.Fatalf("Could not rank candidates: %s", err)
	}
	if len(ranked) != 1 {
		t.Fatalf("Expected 1 ranked candidate but got %d", len(ranked))
	}
	if top := ranked.Top(); top.Failed || top.Name != "x.2.pdb" {
		t.Fatalf("A failed candidate must never be selected, but the "+
			"top model is %s", top.Name)
	}
}

func TestRankAllFailed(t *testing.T) {
	cands := []Candidate{
		{Name: "x.1.pdb", Failed: true},
		{Name: "x.2.pdb", Failed: true},
	}
	if _, err := Rank(cands); err != ErrNoValidModel {
		t.Fatalf("Expected ErrNoValidModel but got %v", err)
	}
}

func TestNames(t *testing.T) {
	if got := AlignmentFile("1abc"); got != "1abc.ali" {
		t.Fatalf("Bad alignment file name: '%s'", got)
	}
	if got := CandidateFile("1abc", 3); got != "1abc.3.pdb" {
		t.Fatalf("Bad candidate file name: '%s'", got)
	}
	if got := RenumberedFile("1abc.3.pdb"); got != "1abc.3_renum.pdb" {
		t.Fatalf("Bad renumbered file name: '%s'", got)
	}
}
