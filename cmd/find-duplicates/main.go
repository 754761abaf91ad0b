// Command find-duplicates loads a file written by gen-random-data and
// reports pairs of records closer than a radius.
//
// Usage:
//
//	go run ./cmd/find-duplicates -data out.csv -radius 0.3 -use-unique-id
//
// Columns are (id, unique id, x, y, name); id and unique id are only used
// to verify accuracy when -use-unique-id is set.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/andreiashu/geogen"
	"github.com/k0kubun/pp"
)

func main() {
	var (
		data        = flag.String("data", "", "file with data, columns should be (id, unique id, x, y, name)")
		radius      = flag.Float64("radius", 0.0, "radius that should be considered for searching similar objects")
		debug       = flag.Bool("debug", false, "print the sweep trace and every pair found")
		useUniqueID = flag.Bool("use-unique-id", false, "use the unique_id column to verify accuracy")
		maxNameDist = flag.Int("max-name-dist", -1, "maximum edit distance between names of a pair (-1 disables)")
	)
	flag.Parse()

	if *data == "" {
		fmt.Fprintln(os.Stderr, "find-duplicates: -data is required")
		flag.Usage()
		os.Exit(2)
	}

	records, err := geogen.LoadRecords(*data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("loaded %d entries\n", len(records))

	var trace io.Writer = io.Discard
	if *debug {
		trace = os.Stdout
	}
	report, err := geogen.FindDuplicates(records, *radius,
		geogen.WithUniqueIDScoring(*useUniqueID),
		geogen.WithMaxNameDistance(*maxNameDist),
		geogen.WithTrace(trace),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *debug {
		for _, p := range report.Pairs {
			pp.Println(p)
		}
	}
	fmt.Printf("\n\nconsidered duplicates: %d\n", report.Considered)
	fmt.Printf("true_positives: %d\n", report.TruePositives)
}
