package geogen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

// GeneratePoints draws numPoints integer points uniformly from the grid,
// with replacement. Each point consumes two draws from rng, x first.
func GeneratePoints(rng *rand.Rand, grid Grid, numPoints int) ([]r2.Point, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if err := validateCount(numPoints); err != nil {
		return nil, err
	}

	points := make([]r2.Point, numPoints)
	for i := range points {
		points[i] = r2.Point{
			X: float64(rng.Intn(grid.XDim)),
			Y: float64(rng.Intn(grid.YDim)),
		}
	}
	return points, nil
}

func validateCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: num_points must not be negative, got %d", ErrInvalidArgument, n)
	}
	return nil
}

func validateProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: fuzz_pbb must be in [0, 1], got %v", ErrInvalidArgument, p)
	}
	return nil
}
