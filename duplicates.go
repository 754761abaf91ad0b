package geogen

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/exp/slices"
)

// DuplicatePair is two records found closer than the search radius.
type DuplicatePair struct {
	A, B     Record
	Distance float64
}

// TruePositive reports whether the pair is a real original/duplicate match:
// both share unique_id and at least one of them is the original.
func (p DuplicatePair) TruePositive() bool {
	return p.A.UniqueID == p.B.UniqueID && (p.A.IsOriginal() || p.B.IsOriginal())
}

// DuplicateReport is the result of FindDuplicates.
type DuplicateReport struct {
	Pairs         []DuplicatePair
	Considered    int // pairs closer than the radius
	TruePositives int // only counted with WithUniqueIDScoring
}

type finderConfig struct {
	scoreUniqueID bool
	maxNameDist   int
	trace         io.Writer
}

// FinderOption configures FindDuplicates.
type FinderOption func(*finderConfig)

// WithUniqueIDScoring counts true positives using the unique_id column.
func WithUniqueIDScoring(enabled bool) FinderOption {
	return func(c *finderConfig) {
		c.scoreUniqueID = enabled
	}
}

// WithMaxNameDistance only accepts pairs whose names are within n edits of
// each other (case-insensitive). A negative n disables the name check.
func WithMaxNameDistance(n int) FinderOption {
	return func(c *finderConfig) {
		c.maxNameDist = n
	}
}

// WithTrace writes a step-by-step log of the sweep to w.
func WithTrace(w io.Writer) FinderOption {
	return func(c *finderConfig) {
		if w == nil {
			w = io.Discard
		}
		c.trace = w
	}
}

// windowKey orders the active window by y, then by sweep position.
type windowKey struct {
	y   float64
	pos int
}

// FindDuplicates reports every pair of records closer than radius.
//
// Records are swept in x order. The active window holds the records whose
// x lies within radius of the sweep position, ordered by y, so each record
// is only compared against the y-slice [y-radius, y+radius] of its window.
// A record leaves the window once it has been scanned, which reports every
// unordered pair exactly once.
func FindDuplicates(records []Record, radius float64, opts ...FinderOption) (DuplicateReport, error) {
	cfg := &finderConfig{maxNameDist: -1, trace: io.Discard}
	for _, opt := range opts {
		opt(cfg)
	}

	var report DuplicateReport
	if math.IsNaN(radius) || radius <= 0 {
		return report, fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidArgument, radius)
	}
	if len(records) < 2 {
		return report, nil
	}

	pts := slices.Clone(records)
	sort.SliceStable(pts, func(i, j int) bool {
		return pts[i].Point.X < pts[j].Point.X
	})

	keyCmp := func(pos int, k windowKey) int {
		if c := cmp.Compare(pts[pos].Point.Y, k.y); c != 0 {
			return c
		}
		return cmp.Compare(pos, k.pos)
	}

	window := make([]int, 0, 16)
	end := 0
	for i, cur := range pts {
		for end < len(pts) && pts[end].Point.X-cur.Point.X < radius {
			at, _ := slices.BinarySearchFunc(window, windowKey{pts[end].Point.Y, end}, keyCmp)
			window = slices.Insert(window, at, end)
			fmt.Fprintf(cfg.trace, "add %v\n", pts[end])
			end++
		}

		fmt.Fprintf(cfg.trace, "active for searching duplicates: %v\n", cur)
		at, _ := slices.BinarySearchFunc(window, windowKey{cur.Point.Y - radius, -1}, keyCmp)
		browsed := 0
		for ; at < len(window) && pts[window[at]].Point.Y <= cur.Point.Y+radius; at++ {
			browsed++
			pos := window[at]
			if pos == i {
				fmt.Fprintf(cfg.trace, "\tskipping self\n")
				continue
			}
			other := pts[pos]
			dist := cur.Point.Sub(other.Point).Norm()
			if dist >= radius {
				fmt.Fprintf(cfg.trace, "\tskipping: %v %v\n", other, dist)
				continue
			}
			if !cfg.namesMatch(cur.Name, other.Name) {
				fmt.Fprintf(cfg.trace, "\tskipping name: %v %q\n", other, other.Name)
				continue
			}

			fmt.Fprintf(cfg.trace, "\tconsidering duplicate: %v\n", other)
			pair := DuplicatePair{A: cur, B: other, Distance: dist}
			report.Pairs = append(report.Pairs, pair)
			report.Considered++
			if cfg.scoreUniqueID && pair.TruePositive() {
				report.TruePositives++
			}
		}
		fmt.Fprintf(cfg.trace, "\tbrowsed through %d elems\n", browsed)

		self, found := slices.BinarySearchFunc(window, windowKey{cur.Point.Y, i}, keyCmp)
		if found {
			window = slices.Delete(window, self, self+1)
		}
	}
	return report, nil
}

// namesMatch compares two names with the configured Levenshtein tolerance.
func (c *finderConfig) namesMatch(a, b string) bool {
	if c.maxNameDist < 0 {
		return true
	}
	if c.maxNameDist == 0 {
		return strings.EqualFold(a, b)
	}
	dist := levenshtein.ComputeDistance(strings.ToLower(a), strings.ToLower(b))
	return dist <= c.maxNameDist
}
