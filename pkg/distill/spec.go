package distill

import (
	"fmt"
	"math"

	"github.com/ja7ad/distill/pkg/mathx"
)

// Specify derives the distillate and bottoms flows from the feed flow, the
// normalized composition z and the split.
//
// With explicit Recoveries each component sends that fraction of its feed to
// the distillate. Otherwise the keys take their given recoveries and each
// non-key follows the Hengstebeck–Geddes line through the keys:
//
//	ln(d_i/b_i) = A + C·ln α_i
//
// which puts a non-key in the product it is closer to in volatility. When a
// key recovery is exactly 0 or 1 the line is undefined and non-keys split
// sharply: lighter than the light key to the distillate, heavier than the
// heavy key to the bottoms.
//
// B_i is computed as F_i - D_i so the component balance is exact.
func Specify(flow float64, z, alpha []float64, split Split) (SeparationSpec, error) {
	n := len(z)
	if len(alpha) != n {
		return SeparationSpec{}, fmt.Errorf("%w: len(z)=%d len(alpha)=%d", ErrLengthMismatch, n, len(alpha))
	}
	if !(flow > 0) || !mathx.Finite(flow) {
		return SeparationSpec{}, fmt.Errorf("%w: feed flow %g", ErrSpecification, flow)
	}
	if err := checkKeys(alpha, split.LightKey, split.HeavyKey); err != nil {
		return SeparationSpec{}, err
	}

	rec, err := recoveries(alpha, split)
	if err != nil {
		return SeparationSpec{}, err
	}

	s := SeparationSpec{
		Flow:            flow,
		Composition:     append([]float64(nil), z...),
		FeedFlows:       make([]float64, n),
		DistillateFlows: make([]float64, n),
		BottomsFlows:    make([]float64, n),
		XD:              make([]float64, n),
		XB:              make([]float64, n),
		Recoveries:      rec,
		LightKey:        split.LightKey,
		HeavyKey:        split.HeavyKey,
	}
	for i := range z {
		s.FeedFlows[i] = flow * z[i]
		s.DistillateFlows[i] = s.FeedFlows[i] * rec[i]
		s.BottomsFlows[i] = s.FeedFlows[i] - s.DistillateFlows[i]
		if s.DistillateFlows[i] < 0 || s.BottomsFlows[i] < 0 {
			return SeparationSpec{}, fmt.Errorf("%w: negative flow for component %d (D=%g, B=%g)",
				ErrSpecification, i, s.DistillateFlows[i], s.BottomsFlows[i])
		}
	}
	s.Distillate = mathx.Sum(s.DistillateFlows)
	s.Bottoms = mathx.Sum(s.BottomsFlows)
	if !(s.Distillate > 0) || !(s.Bottoms > 0) {
		return SeparationSpec{}, fmt.Errorf("%w: empty product (D=%g, B=%g)", ErrSpecification, s.Distillate, s.Bottoms)
	}
	for i := range z {
		s.XD[i] = s.DistillateFlows[i] / s.Distillate
		s.XB[i] = s.BottomsFlows[i] / s.Bottoms
	}
	return s, nil
}

func checkKeys(alpha []float64, lk, hk int) error {
	n := len(alpha)
	for i, a := range alpha {
		if !(a > 0) || !mathx.Finite(a) {
			return fmt.Errorf("%w: alpha[%d]=%g must be positive", ErrSpecification, i, a)
		}
	}
	if lk < 0 || lk >= n || hk < 0 || hk >= n || lk == hk {
		return fmt.Errorf("%w: keys LK=%d HK=%d out of range for %d components", ErrSpecification, lk, hk, n)
	}
	if !(alpha[lk] > alpha[hk]) {
		return fmt.Errorf("%w: alpha[LK]=%g must exceed alpha[HK]=%g", ErrSpecification, alpha[lk], alpha[hk])
	}
	return nil
}

func recoveries(alpha []float64, split Split) ([]float64, error) {
	n := len(alpha)
	if split.Recoveries != nil {
		if len(split.Recoveries) != n {
			return nil, fmt.Errorf("%w: %d recoveries for %d components", ErrLengthMismatch, len(split.Recoveries), n)
		}
		for i, r := range split.Recoveries {
			if err := checkRecovery(i, r); err != nil {
				return nil, err
			}
		}
		return append([]float64(nil), split.Recoveries...), nil
	}

	lk, hk := split.LightKey, split.HeavyKey
	rl, rh := split.LightKeyRecovery, split.HeavyKeyRecovery
	if err := checkRecovery(lk, rl); err != nil {
		return nil, err
	}
	if err := checkRecovery(hk, rh); err != nil {
		return nil, err
	}
	if !(rl > rh) {
		return nil, fmt.Errorf("%w: light key recovery %g must exceed heavy key recovery %g", ErrSpecification, rl, rh)
	}

	out := make([]float64, n)
	sharp := rl >= 1 || rh <= 0
	var a, c float64
	if !sharp {
		sl, sh := rl/(1-rl), rh/(1-rh)
		c = math.Log(sl/sh) / math.Log(alpha[lk]/alpha[hk])
		a = math.Log(sh) - c*math.Log(alpha[hk])
	}
	for i := range out {
		switch {
		case i == lk:
			out[i] = rl
		case i == hk:
			out[i] = rh
		case sharp && alpha[i] >= alpha[lk]:
			out[i] = 1
		case sharp && alpha[i] <= alpha[hk]:
			out[i] = 0
		case sharp:
			// between the keys: nearer key decides
			if alpha[lk]-alpha[i] < alpha[i]-alpha[hk] {
				out[i] = 1
			}
		default:
			// d/(d+b) written as a logistic so huge ratios stay finite
			out[i] = 1 / (1 + math.Exp(-(a + c*math.Log(alpha[i]))))
		}
	}
	return out, nil
}

func checkRecovery(i int, r float64) error {
	if math.IsNaN(r) || r < 0 || r > 1 {
		return fmt.Errorf("%w: recovery[%d]=%g implies a negative flow", ErrSpecification, i, r)
	}
	return nil
}
