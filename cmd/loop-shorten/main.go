package main

import (
	"bytes"
	"fmt"

	"github.com/ELELAB/MAVISp-loop-replacer/ali"
	"github.com/ELELAB/MAVISp-loop-replacer/apps/looper"
	"github.com/ELELAB/MAVISp-loop-replacer/cmd/util"
	"github.com/ELELAB/MAVISp-loop-replacer/fasta"
	"github.com/ELELAB/MAVISp-loop-replacer/loop"
	"github.com/ELELAB/MAVISp-loop-replacer/model"
	"github.com/ELELAB/MAVISp-loop-replacer/pdb"
)

func init() {
	util.FlagUse("loops", "keeps", "models", "chain", "engine", "verbose")
	util.FlagParse("target-fasta template-id template-pdb",
		"Replaces each given disordered loop of the template structure "+
			"with a short linker built from the loop's own ends, by "+
			"preparing a gapped alignment and movable-residue selection "+
			"for the loop modeling engine, ranking the candidate models "+
			"it returns, and restoring template numbering in each "+
			"accepted model.")
	util.AssertNArg(3)
}

func main() {
	fastaPath, id, pdbPath := util.Arg(0), util.Arg(1), util.Arg(2)

	if util.FlagModels < 1 {
		util.Fatalf("The number of models must be positive (got %d).",
			util.FlagModels)
	}
	if len(util.FlagChain) != 1 {
		util.Fatalf("A chain identifier must be a single character "+
			"(got '%s').", util.FlagChain)
	}

	entries, err := fasta.ReadAll(util.OpenFile(fastaPath))
	util.Assert(err, "Could not read FASTA file '%s'", fastaPath)
	if len(entries) != 1 {
		util.Fatalf("FASTA file '%s' should contain exactly one sequence, "+
			"but has %d.", fastaPath, len(entries))
	}
	target := entries[0].Sequence

	entry, err := pdb.New(pdbPath)
	util.Assert(err, "Could not read PDB file '%s'", pdbPath)
	chain := entry.Chain(util.FlagChain[0])
	if chain == nil {
		util.Fatalf("The chain '%s' could not be found in '%s'.",
			util.FlagChain, pdbPath)
	}
	if !bytes.Equal(chain.Sequence, target) {
		util.Fatalf("The sequence in '%s' (%d residues) does not match "+
			"the SEQRES sequence of chain %c in '%s' (%d residues).",
			fastaPath, len(target), chain.Ident, pdbPath,
			len(chain.Sequence))
	}

	set, err := loop.ParseSpecs(util.FlagLoops, util.FlagKeeps)
	util.Assert(err, "Invalid loop specification")
	util.Assert(set.Validate(len(target)), "Invalid loop specification")

	mapper := loop.NewMapper(set)
	offset := 0
	for i, s := range set {
		util.Verbosef("loop %d pre-trim: keeping %d-%d (offset %d)",
			i, s.Start+1, s.TrimmedStart()-1, offset)
		util.Verbosef("loop %d trim: removing %d-%d (%d residues)",
			i, s.TrimmedStart(), s.TrimmedEnd(), s.TrimmedLen())
		util.Verbosef("loop %d post-trim: keeping %d-%d (offset %d)",
			i, s.TrimmedEnd()+1, s.End-1, offset+s.TrimmedLen())
		offset += s.TrimmedLen()
	}

	rec := ali.Build(id, pdbPath, chain.Ident, target, set)
	aliFile := model.AlignmentFile(id)
	util.Assert(ali.WriteFile(aliFile, rec),
		"Could not write alignment file '%s'", aliFile)
	util.Verbosef("wrote alignment '%s' (%d residues, %d gapped)",
		aliFile, len(rec.Template), mapper.TrimmedTotal())

	var engine model.Engine = looper.Config{
		Exec:    util.FlagEngine,
		Verbose: util.FlagVerbose,
	}
	cands, err := engine.Submit(id, aliFile, mapper.RebuildRanges(),
		util.FlagModels)
	util.Assert(err, "Could not run the loop modeling engine")

	ranked, err := model.Rank(cands)
	util.Assert(err)
	top := ranked.Top()
	fmt.Printf("Top model: %s (molpdf %0.4f, DOPE %0.4f)\n",
		top.Name, top.Quality, top.Secondary)

	for _, cand := range ranked {
		out := model.RenumberedFile(cand.Name)
		util.Assert(model.Renumber(cand.Name, chain, mapper, out),
			"Could not renumber model '%s'", cand.Name)
		fmt.Printf("renumbered %s -> %s\n", cand.Name, out)
	}
}
