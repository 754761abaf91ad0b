// Command gen-random-data writes random points close to the lines of a grid
// of the given size, with hotel names, duplicates and positional fuzz.
//
// Usage:
//
//	go run ./cmd/gen-random-data [-seed N] [-validate] x_dim y_dim num_points fuzz_pbb filename
//
// fuzz_pbb is the probability that a point is duplicated. Each line of the
// output is "id,unique_id,x,y,name".
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/andreiashu/geogen"
)

type args struct {
	grid      geogen.Grid
	numPoints int
	fuzzPbb   float64
	filename  string
	seed      int64
	validate  bool
}

var errUsage = errors.New("usage")

func parseArgs(argv []string, stderr io.Writer) (args, error) {
	var a args
	fs := flag.NewFlagSet("gen-random-data", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Int64Var(&a.seed, "seed", time.Now().UnixNano(), "random seed")
	fs.BoolVar(&a.validate, "validate", false, "re-read the written file and check it")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Generate random points close to a grid lines of a given size.")
		fmt.Fprintln(fs.Output(), "\nUsage: gen-random-data [flags] x_dim y_dim num_points fuzz_pbb filename")
		fmt.Fprintln(fs.Output(), "  x_dim       grid horizontal size")
		fmt.Fprintln(fs.Output(), "  y_dim       grid vertical size")
		fmt.Fprintln(fs.Output(), "  num_points  number of points")
		fmt.Fprintln(fs.Output(), "  fuzz_pbb    probability of item duplication")
		fmt.Fprintln(fs.Output(), "  filename    output data filename")
		fmt.Fprintln(fs.Output(), "\nFlags:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(argv); err != nil {
		return a, errUsage
	}

	fail := func(format string, v ...any) (args, error) {
		fmt.Fprintf(stderr, "gen-random-data: "+format+"\n", v...)
		fs.Usage()
		return a, errUsage
	}

	if fs.NArg() != 5 {
		return fail("expected 5 arguments, got %d", fs.NArg())
	}
	var err error
	if a.grid.XDim, err = strconv.Atoi(fs.Arg(0)); err != nil {
		return fail("x_dim: invalid int value %q", fs.Arg(0))
	}
	if a.grid.YDim, err = strconv.Atoi(fs.Arg(1)); err != nil {
		return fail("y_dim: invalid int value %q", fs.Arg(1))
	}
	if a.numPoints, err = strconv.Atoi(fs.Arg(2)); err != nil {
		return fail("num_points: invalid int value %q", fs.Arg(2))
	}
	if a.fuzzPbb, err = strconv.ParseFloat(fs.Arg(3), 64); err != nil {
		return fail("fuzz_pbb: invalid float value %q", fs.Arg(3))
	}
	a.filename = fs.Arg(4)
	return a, nil
}

func run(a args, stdout io.Writer) error {
	if _, err := geogen.Generate(a.grid, a.numPoints, a.fuzzPbb, a.filename,
		geogen.WithSeed(a.seed),
		geogen.WithProgress(stdout),
	); err != nil {
		return err
	}

	if a.validate {
		n, err := geogen.ValidateFile(a.filename)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Validated %d records.\n", n)
	}
	return nil
}

func main() {
	a, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	if err := run(a, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, geogen.ErrInvalidArgument) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
