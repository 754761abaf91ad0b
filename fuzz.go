package geogen

import (
	"math/rand"
)

// FuzzRadius bounds the positional noise added to each coordinate. A
// duplicate and its original are fuzzed independently, so they may end up
// 2*FuzzRadius apart on each axis.
const FuzzRadius = 0.1

// FuzzAndDuplicate assigns sequential ids, duplicates each original with
// probability fuzzPbb, then shifts every coordinate by uniform noise in
// [-FuzzRadius, FuzzRadius].
//
// Despite its name fuzzPbb is the duplication probability; the noise
// magnitude is fixed. Random draws happen in a fixed order (one duplication
// draw per original, then x and y noise per output record) so a seeded rng
// reproduces the output exactly.
func FuzzAndDuplicate(rng *rand.Rand, named []NamedPoint, fuzzPbb float64) ([]Record, error) {
	if err := validateProbability(fuzzPbb); err != nil {
		return nil, err
	}

	records := make([]Record, len(named), 2*len(named))
	id := 1
	for i, np := range named {
		records[i] = Record{ID: id, UniqueID: id, NamedPoint: np}
		id++
	}

	// Only originals are candidates; duplicates appended here are not revisited.
	for _, orig := range records[:len(named)] {
		if rng.Float64() < fuzzPbb {
			dup := orig
			dup.ID = id
			records = append(records, dup)
			id++
		}
	}

	for i := range records {
		records[i].Point.X += uniform(rng, -FuzzRadius, FuzzRadius)
		records[i].Point.Y += uniform(rng, -FuzzRadius, FuzzRadius)
	}
	return records, nil
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
