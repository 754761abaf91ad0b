package geogen

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
)

func namedGrid(t *testing.T, seed int64, n int) []NamedPoint {
	t.Helper()
	points, err := GeneratePoints(rand.New(rand.NewSource(seed)), Grid{XDim: 50, YDim: 50}, n)
	if err != nil {
		t.Fatal(err)
	}
	return MakeNames(points)
}

func TestFuzzAndDuplicateProbabilityBounds(t *testing.T) {
	named := namedGrid(t, 3, 200)

	tests := []struct {
		name    string
		pbb     float64
		wantLen int // -1: anything in [n, 2n]
	}{
		{"never", 0, 200},
		{"always", 1, 400},
		{"half", 0.5, -1},
		{"rare", 0.01, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := FuzzAndDuplicate(rand.New(rand.NewSource(11)), named, tt.pbb)
			if err != nil {
				t.Fatal(err)
			}
			if tt.wantLen >= 0 && len(records) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(records), tt.wantLen)
			}
			if len(records) < len(named) || len(records) > 2*len(named) {
				t.Errorf("len = %d, want within [%d, %d]", len(records), len(named), 2*len(named))
			}
			if err := ValidateRecords(records); err != nil {
				t.Errorf("ValidateRecords: %v", err)
			}
		})
	}
}

func TestFuzzAndDuplicateIDs(t *testing.T) {
	named := namedGrid(t, 5, 100)
	records, err := FuzzAndDuplicate(rand.New(rand.NewSource(5)), named, 0.4)
	if err != nil {
		t.Fatal(err)
	}

	for i := range named {
		r := records[i]
		if r.ID != i+1 || r.UniqueID != i+1 {
			t.Fatalf("record %d: id=%d unique_id=%d, want both %d", i, r.ID, r.UniqueID, i+1)
		}
		if r.Name != named[i].Name {
			t.Errorf("record %d: name %q, want %q", i, r.Name, named[i].Name)
		}
	}

	// Duplicates follow in source order with ids continuing the sequence.
	lastSource := 0
	for i, r := range records[len(named):] {
		if r.ID != len(named)+i+1 {
			t.Errorf("duplicate %d: id=%d, want %d", i, r.ID, len(named)+i+1)
		}
		if r.UniqueID <= lastSource {
			t.Errorf("duplicate %d: unique_id %d not after %d", i, r.UniqueID, lastSource)
		}
		lastSource = r.UniqueID
		if r.Name != named[r.UniqueID-1].Name {
			t.Errorf("duplicate %d: name %q, want %q", i, r.Name, named[r.UniqueID-1].Name)
		}
	}

	ids := make(map[int]bool, len(records))
	for _, r := range records {
		if ids[r.ID] {
			t.Errorf("id %d repeated", r.ID)
		}
		ids[r.ID] = true
	}
}

func TestFuzzAndDuplicateNoiseBound(t *testing.T) {
	named := namedGrid(t, 8, 500)
	records, err := FuzzAndDuplicate(rand.New(rand.NewSource(8)), named, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	moved := false
	for _, r := range records {
		src := named[r.UniqueID-1].Point
		dx, dy := math.Abs(r.Point.X-src.X), math.Abs(r.Point.Y-src.Y)
		if dx > FuzzRadius || dy > FuzzRadius {
			t.Errorf("record %d moved (%v, %v) from %v", r.ID, dx, dy, src)
		}
		if dx > 0 || dy > 0 {
			moved = true
		}
	}
	if !moved {
		t.Error("no record was fuzzed")
	}
}

func TestFuzzAndDuplicateDoesNotMutateInput(t *testing.T) {
	named := []NamedPoint{{Point: r2.Point{X: 1, Y: 2}, Name: "sheraton inn"}}
	if _, err := FuzzAndDuplicate(rand.New(rand.NewSource(1)), named, 1); err != nil {
		t.Fatal(err)
	}
	if named[0].Point != (r2.Point{X: 1, Y: 2}) {
		t.Errorf("input point changed to %v", named[0].Point)
	}
}

func TestFuzzAndDuplicateInvalidProbability(t *testing.T) {
	named := namedGrid(t, 1, 3)
	for _, pbb := range []float64{-0.1, 1.01, math.NaN(), math.Inf(1)} {
		if _, err := FuzzAndDuplicate(rand.New(rand.NewSource(1)), named, pbb); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("FuzzAndDuplicate(pbb=%v) = %v, want ErrInvalidArgument", pbb, err)
		}
	}
}

func TestFuzzAndDuplicateEmpty(t *testing.T) {
	records, err := FuzzAndDuplicate(rand.New(rand.NewSource(1)), nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("len = %d, want 0", len(records))
	}
}
