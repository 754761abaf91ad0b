package geogen

import (
	"fmt"
	"log"
	"math"
)

// coordTolerance absorbs float rounding when comparing fuzzed coordinates
// against their bounds.
const coordTolerance = 1e-9

// ValidateRecords checks the invariants of a generated record list:
// unique ids, every unique_id naming an original, at most one duplicate per
// original carrying the original's name, and duplicates within the fuzz
// bound of their original.
func ValidateRecords(records []Record) error {
	originals := make(map[int]Record, len(records))
	seen := make(map[int]bool, len(records))
	for _, r := range records {
		if seen[r.ID] {
			return fmt.Errorf("duplicate id %d", r.ID)
		}
		seen[r.ID] = true
		if r.IsOriginal() {
			originals[r.UniqueID] = r
		}
	}

	dups := make(map[int]int, len(originals))
	for _, r := range records {
		if r.IsOriginal() {
			continue
		}
		orig, ok := originals[r.UniqueID]
		if !ok {
			return fmt.Errorf("record %d: unique_id %d has no original", r.ID, r.UniqueID)
		}
		dups[r.UniqueID]++
		if dups[r.UniqueID] > 1 {
			return fmt.Errorf("record %d: unique_id %d duplicated more than once", r.ID, r.UniqueID)
		}
		if r.Name != orig.Name {
			return fmt.Errorf("record %d: name %q, want %q from original %d", r.ID, r.Name, orig.Name, orig.ID)
		}
		if !withinFuzz(r.Point.X, orig.Point.X, 2*FuzzRadius) || !withinFuzz(r.Point.Y, orig.Point.Y, 2*FuzzRadius) {
			return fmt.Errorf("record %d: %v too far from original %v", r.ID, r, orig)
		}
	}

	for _, r := range records {
		if !withinFuzz(r.Point.X, math.Round(r.Point.X), FuzzRadius) || !withinFuzz(r.Point.Y, math.Round(r.Point.Y), FuzzRadius) {
			return fmt.Errorf("record %d: %v not within %v of a grid point", r.ID, r, FuzzRadius)
		}
	}
	return nil
}

func withinFuzz(a, b, bound float64) bool {
	return math.Abs(a-b) <= bound+coordTolerance
}

// ValidateFile loads path and validates its records, returning the number
// of records found.
func ValidateFile(path string) (int, error) {
	records, err := LoadRecords(path)
	if err != nil {
		return 0, err
	}
	if err := ValidateRecords(records); err != nil {
		return 0, fmt.Errorf("validating %s: %w", path, err)
	}

	originals := 0
	for _, r := range records {
		if r.IsOriginal() {
			originals++
		}
	}
	log.Printf("info: %s: %d records, %d originals, %d duplicates", path, len(records), originals, len(records)-originals)
	return len(records), nil
}
