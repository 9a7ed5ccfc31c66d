package distill

import (
	"fmt"
	"math"

	"github.com/ja7ad/distill/pkg/mathx"
)

// Kirkbride returns the ratio of rectifying to stripping stages
//
//	NR/NS = [(B/D)·(z_HK/z_LK)·(xB_LK/xD_HK)²]^0.206
func Kirkbride(spec SeparationSpec) (float64, error) {
	lk, hk := spec.LightKey, spec.HeavyKey
	zLK, zHK := spec.Composition[lk], spec.Composition[hk]
	xbLK, xdHK := spec.XB[lk], spec.XD[hk]
	if !(zLK > 0) || !(zHK > 0) || !(xbLK > 0) || !(xdHK > 0) || !(spec.Distillate > 0) {
		return 0, fmt.Errorf("%w: kirkbride needs positive key fractions", ErrDegenerateSplit)
	}

	base := (spec.Bottoms / spec.Distillate) * (zHK / zLK) * math.Pow(xbLK/xdHK, 2)
	r := math.Pow(base, 0.206)
	if !(r > 0) || !mathx.Finite(r) {
		return 0, fmt.Errorf("%w: kirkbride ratio %g", ErrDegenerateSplit, r)
	}
	return r, nil
}

// LocateFeedStage splits the stages with the Kirkbride ratio and places the
// feed. The theoretical feed stage sits just below the rectifying section
// (NR_teo + 1 from the top) and maps onto the real column in proportion
// N_real/Nteo.
func LocateFeedStage(spec SeparationSpec, fug FUGResult, eff EfficiencyResult) (FeedStageResult, error) {
	r, err := Kirkbride(spec)
	if err != nil {
		return FeedStageResult{}, err
	}
	rect := r / (1 + r)

	res := FeedStageResult{
		Ratio: r,
		NRmin: fug.Nmin * rect,
		NRop:  eff.NReal * rect,
	}
	res.NSmin = fug.Nmin - res.NRmin
	res.NSop = eff.NReal - res.NRop
	res.FeedStageTheoretical = fug.Nteo*rect + 1
	res.FeedStageReal = res.FeedStageTheoretical * eff.NReal / fug.Nteo
	if !mathx.Finite(res.FeedStageReal) {
		return FeedStageResult{}, fmt.Errorf("%w: feed stage %g", ErrFeedStageOutOfBounds, res.FeedStageReal)
	}
	res.FeedStage = mathx.CeilInt(res.FeedStageReal)

	if res.FeedStage < 1 || res.FeedStage > eff.Trays {
		return FeedStageResult{}, fmt.Errorf("%w: stage %d of %d", ErrFeedStageOutOfBounds, res.FeedStage, eff.Trays)
	}
	return res, nil
}
