// Package geogen generates synthetic geographic test data: random grid
// points with cyclic hotel names, probabilistically duplicated and fuzzed,
// written as a comma-separated text file. It also loads, validates and
// searches such files for near-duplicate records.
package geogen

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/golang/geo/r2"
)

var (
	// ErrInvalidArgument is returned for malformed or out-of-range inputs.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIO is returned when a data file cannot be opened, read or written.
	ErrIO = errors.New("i/o error")
)

// Grid is the bounding box points are drawn from: x in [0, XDim), y in [0, YDim).
type Grid struct {
	XDim int
	YDim int
}

// Validate reports whether both dimensions are positive.
func (g Grid) Validate() error {
	if g.XDim <= 0 {
		return fmt.Errorf("%w: x_dim must be positive, got %d", ErrInvalidArgument, g.XDim)
	}
	if g.YDim <= 0 {
		return fmt.Errorf("%w: y_dim must be positive, got %d", ErrInvalidArgument, g.YDim)
	}
	return nil
}

// Rect returns the closed rectangle spanning every integer point of the grid.
func (g Grid) Rect() r2.Rect {
	return r2.RectFromPoints(r2.Point{}, r2.Point{X: float64(g.XDim - 1), Y: float64(g.YDim - 1)})
}

// NamedPoint is a grid point with a display name attached.
type NamedPoint struct {
	Point r2.Point
	Name  string
}

// Record is a named point with its row id and the id of the entity it
// represents. Duplicates share UniqueID with their original.
type Record struct {
	ID       int
	UniqueID int
	NamedPoint
}

// IsOriginal reports whether r is the first record of its entity.
func (r Record) IsOriginal() bool {
	return r.ID == r.UniqueID
}

func (r Record) String() string {
	return fmt.Sprintf("%d(%d) X (%v, %v)", r.ID, r.UniqueID, r.Point.X, r.Point.Y)
}

// Config contains the parameters of a generation run.
type Config struct {
	Grid      Grid
	NumPoints int
	FuzzPbb   float64 // duplication probability
	Filename  string

	Rand     *rand.Rand // Source of all randomness (default: seeded from the clock)
	Progress io.Writer  // Destination of progress lines (default: os.Stdout)
	Words    WordLists  // Name word lists (default: DefaultWordLists)
}

// Option is a functional option for configuring a generation run.
type Option func(*Config)

// WithRand sets the random source.
func WithRand(rng *rand.Rand) Option {
	return func(c *Config) {
		c.Rand = rng
	}
}

// WithSeed seeds a fresh random source, making the run reproducible.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithProgress sets where progress lines are printed. A nil writer
// silences them.
func WithProgress(w io.Writer) Option {
	return func(c *Config) {
		if w == nil {
			w = io.Discard
		}
		c.Progress = w
	}
}

// WithWordLists replaces the hotel word lists used for names.
func WithWordLists(words WordLists) Option {
	return func(c *Config) {
		c.Words = words
	}
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	return &Config{
		Progress: os.Stdout,
		Words:    DefaultWordLists,
	}
}

// Generate runs the whole pipeline: it generates cfg.NumPoints points on
// the grid, names them, duplicates and fuzzes them, and writes the result to
// filename. It returns the number of records written.
//
// Example:
//
//	n, err := geogen.Generate(geogen.Grid{XDim: 10, YDim: 10}, 5, 0.1, "out.csv", geogen.WithSeed(1))
//	if err != nil {
//	    log.Fatal(err)
//	}
func Generate(grid Grid, numPoints int, fuzzPbb float64, filename string, opts ...Option) (int, error) {
	cfg := defaultConfig()
	cfg.Grid = grid
	cfg.NumPoints = numPoints
	cfg.FuzzPbb = fuzzPbb
	cfg.Filename = filename
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Reject every bad argument before drawing a single random number.
	if err := cfg.Grid.Validate(); err != nil {
		return 0, err
	}
	if err := validateCount(cfg.NumPoints); err != nil {
		return 0, err
	}
	if err := validateProbability(cfg.FuzzPbb); err != nil {
		return 0, err
	}
	if err := cfg.Words.Validate(); err != nil {
		return 0, err
	}
	if cfg.Filename == "" {
		return 0, fmt.Errorf("%w: empty output filename", ErrInvalidArgument)
	}

	points, err := GeneratePoints(cfg.Rand, cfg.Grid, cfg.NumPoints)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(cfg.Progress, "Generated %d number of points\n", len(points))

	named, err := MakeNamesFrom(points, cfg.Words)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(cfg.Progress, "Gave names for %d geo locations.\n", len(named))

	records, err := FuzzAndDuplicate(cfg.Rand, named, cfg.FuzzPbb)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(cfg.Progress, "Duplicated and fuzzied %d.\n", len(records))

	if err := SaveToFile(cfg.Filename, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
