package geogen

import (
	"fmt"
	"iter"
	"strings"

	"github.com/golang/geo/r2"
	"golang.org/x/exp/constraints"
)

// WordLists holds the two word lists names are built from. Their lengths
// must be coprime so the pairing runs through every combination before it
// repeats.
type WordLists struct {
	Base  []string
	Extra []string
}

// DefaultWordLists are the hotel names: 11 base words and 7 extras, giving
// a period of 77.
var DefaultWordLists = WordLists{
	Base:  strings.Split("sheraton,hilton,mariott,intercontinental,grand,rex,orhid,radisson,valamar,ibis,menteleone", ","),
	Extra: strings.Split("inn,carriage,launge,plaza,blue,red,green", ","),
}

// Validate checks that both lists are non-empty and their lengths coprime.
func (w WordLists) Validate() error {
	if len(w.Base) == 0 || len(w.Extra) == 0 {
		return fmt.Errorf("%w: word lists must not be empty (base %d, extra %d)",
			ErrInvalidArgument, len(w.Base), len(w.Extra))
	}
	if d := gcd(len(w.Base), len(w.Extra)); d != 1 {
		return fmt.Errorf("%w: word list lengths %d and %d share divisor %d",
			ErrInvalidArgument, len(w.Base), len(w.Extra), d)
	}
	return nil
}

// Period is the number of names generated before the sequence repeats.
func (w WordLists) Period() int {
	return len(w.Base) * len(w.Extra)
}

func gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// NameGen yields n names "{base} {extra}", advancing an independent index
// into each list and wrapping each at its own length.
func NameGen(words WordLists, n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		bIdx, eIdx := 0, 0
		for range n {
			if !yield(words.Base[bIdx] + " " + words.Extra[eIdx]) {
				return
			}
			bIdx++
			if bIdx == len(words.Base) {
				bIdx = 0
			}
			eIdx++
			if eIdx == len(words.Extra) {
				eIdx = 0
			}
		}
	}
}

// MakeNames names points with the default hotel word lists.
func MakeNames(points []r2.Point) []NamedPoint {
	named, _ := MakeNamesFrom(points, DefaultWordLists)
	return named
}

// MakeNamesFrom names points in order. Names depend only on position in
// the slice, never on coordinates.
func MakeNamesFrom(points []r2.Point, words WordLists) ([]NamedPoint, error) {
	if err := words.Validate(); err != nil {
		return nil, err
	}
	named := make([]NamedPoint, 0, len(points))
	i := 0
	for name := range NameGen(words, len(points)) {
		named = append(named, NamedPoint{Point: points[i], Name: name})
		i++
	}
	return named, nil
}
