package util

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strings"
)

var (
	FlagChain   = "A"
	FlagModels  = 5
	FlagEngine  = "loopbuilder"
	FlagVerbose = false

	flagLoops = ""
	FlagLoops []string

	flagKeeps = ""
	FlagKeeps []string
)

func init() {
	log.SetFlags(0)
}

type commonFlag struct {
	set, init func()
	use       bool
}

var commonFlags = map[string]*commonFlag{
	"chain": {
		set: func() {
			flag.StringVar(&FlagChain, "chain", FlagChain,
				"The template chain identifier to model against.")
		},
	},
	"models": {
		set: func() {
			flag.IntVar(&FlagModels, "models", FlagModels,
				"The number of candidate models to build.")
		},
	},
	"engine": {
		set: func() {
			flag.StringVar(&FlagEngine, "engine", FlagEngine,
				"The loop modeling engine executable.")
		},
	},
	"verbose": {
		set: func() {
			flag.BoolVar(&FlagVerbose, "verbose", FlagVerbose,
				"When set, per-loop trim diagnostics and engine "+
					"invocations are logged.")
		},
	},
	"loops": {
		set: func() {
			flag.StringVar(&flagLoops, "loops", flagLoops,
				"Comma separated 'start:end' positions of each loop to "+
					"shorten, in original template numbering.")
		},
		init: func() {
			FlagLoops = splitList(flagLoops)
		},
	},
	"keeps": {
		set: func() {
			flag.StringVar(&flagKeeps, "keeps", flagKeeps,
				"Comma separated 'keepN:keepC' residue counts retained at "+
					"each loop's ends; one token per loop.")
		},
		init: func() {
			FlagKeeps = splitList(flagKeeps)
		},
	},
}

func splitList(s string) []string {
	if len(strings.TrimSpace(s)) == 0 {
		return nil
	}
	pieces := strings.Split(s, ",")
	for i := range pieces {
		pieces[i] = strings.TrimSpace(pieces[i])
	}
	return pieces
}

func FlagUse(names ...string) {
	for _, name := range names {
		commonFlags[name].use = true
	}
}

// Arg just calls `flag.Arg`. It's included here to avoid
// an extra import to `flag` just to call Arg.
func Arg(i int) string {
	return flag.Arg(i)
}

// NArg just calls `flag.NArg`. It's included here to avoid
// an extra import to `flag` just to call NArg.
func NArg() int {
	return flag.NArg()
}

func FlagParse(positional string, desc string) {
	for _, fl := range commonFlags {
		if fl.use {
			fl.set()
		}
	}

	flag.Usage = func() {
		log.Printf("Usage: %s [flags] %s\n\n",
			path.Base(os.Args[0]), positional)
		if len(desc) > 0 {
			log.Printf("%s\n", desc)
		}
		flag.VisitAll(func(fl *flag.Flag) {
			var def string
			if len(fl.DefValue) > 0 {
				def = fmt.Sprintf(" (default: %s)", fl.DefValue)
			}

			usage := strings.Replace(fl.Usage, "\n", "\n    ", -1)
			log.Printf("-%s%s\n", fl.Name, def)
			log.Printf("    %s\n", usage)
		})
		os.Exit(1)
	}
	flag.Parse()

	for _, fl := range commonFlags {
		if fl.use && fl.init != nil {
			fl.init()
		}
	}
}
