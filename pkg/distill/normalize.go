package distill

import (
	"fmt"

	"github.com/ja7ad/distill/pkg/mathx"
)

// Normalize rescales a mole-fraction vector to sum to 1. The input is not
// modified.
func Normalize(z []float64) ([]float64, error) {
	if len(z) == 0 {
		return nil, fmt.Errorf("%w: empty vector", ErrInvalidComposition)
	}
	for i, v := range z {
		if !mathx.Finite(v) || v < 0 {
			return nil, fmt.Errorf("%w: z[%d]=%g", ErrInvalidComposition, i, v)
		}
	}
	sum := mathx.Sum(z)
	if !(sum > 0) {
		return nil, fmt.Errorf("%w: sum=%g", ErrInvalidComposition, sum)
	}

	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = v / sum
	}
	return out, nil
}
