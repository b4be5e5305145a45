// Command balkanize reads a mask file of spherical-cap polygons,
// balkanizes it (fragments overlapping polygons and partitions
// disconnected regions into connected pieces), and writes the result to
// a second mask file (spec.md §6's CLI surface).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/skymask/balkanize"
	"github.com/katalvlaran/skymask/maskio"
	"github.com/katalvlaran/skymask/spherical"
)

// stdLogger adapts the standard log package to balkanize.Logger, the one
// place in this module allowed to print (library code under balkanize/,
// fragment/, partition/, pixel/, maskio/ never does).
type stdLogger struct{ *log.Logger }

func (l stdLogger) Printf(format string, args ...interface{}) {
	l.Logger.Printf(format, args...)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("balkanize", flag.ContinueOnError)
	mtol := fs.Float64("mtol", 1e-9, "angular tolerance (as a cm value) for prune/fragment/partition")
	renumber := fs.String("id", "n", `id-renumbering mode: "n" (sequential), "p" (by pixel), or "preserve"`)
	forceSplit := fs.Bool("force-split", true, "allow partition to proceed without an excluding lasso")
	lassoAdjust := fs.Int("lasso-adjust", 8, "maximum lasso-radius halving steps")
	maxWarnings := fs.Int("max-warnings", 8, "maximum warnings retained before further ones are only counted")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: balkanize [flags] <input-mask-file> <output-mask-file>")
		return 2
	}

	var mode balkanize.RenumberMode
	switch *renumber {
	case "n":
		mode = balkanize.RenumberSequential
	case "p":
		mode = balkanize.RenumberByPixel
	case "preserve":
		mode = balkanize.RenumberPreserve
	default:
		fmt.Fprintf(os.Stderr, "balkanize: unknown -id mode %q\n", *renumber)
		return 2
	}

	in, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "balkanize:", err)
		return 1
	}
	defer in.Close()

	input, err := maskio.Read(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "balkanize:", err)
		return 1
	}

	logger := stdLogger{log.New(os.Stderr, "", log.LstdFlags)}
	cfg := balkanize.DefaultConfig(
		balkanize.WithTol(spherical.NewCM(*mtol)),
		balkanize.WithForceSplit(*forceSplit),
		balkanize.WithLassoAdjust(*lassoAdjust),
		balkanize.WithMaxWarnings(*maxWarnings),
		balkanize.WithRenumberMode(mode),
		balkanize.WithLogger(logger),
	)

	res, err := balkanize.Balkanize(input, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "balkanize:", err)
		return 1
	}
	if res.WarningsDropped > 0 {
		logger.Printf("... %d more warnings", res.WarningsDropped)
	}
	if res.PartialPartitions > 0 {
		logger.Printf("%d polygon(s) partitioned without an excluding lasso (approximate split)", res.PartialPartitions)
	}

	out, err := os.Create(fs.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, "balkanize:", err)
		return 1
	}
	defer out.Close()

	if err := maskio.Write(out, res.Polygons); err != nil {
		fmt.Fprintln(os.Stderr, "balkanize:", err)
		return 1
	}
	return 0
}
