package distill

import (
	"fmt"
	"math"

	"github.com/ja7ad/distill/pkg/component"
	"github.com/ja7ad/distill/pkg/mathx"
)

// FeedViscosity estimates the feed liquid viscosity (cP) as the mole-fraction
// weighted average of the component viscosities in the table.
func FeedViscosity(z []float64, comps []component.Component) (float64, error) {
	if len(z) != len(comps) {
		return 0, fmt.Errorf("%w: len(z)=%d components=%d", ErrLengthMismatch, len(z), len(comps))
	}
	var mu float64
	for i, c := range comps {
		if z[i] == 0 {
			continue
		}
		if !(c.Viscosity > 0) {
			return 0, fmt.Errorf("%w: no viscosity for %q", ErrEfficiencyOutOfRange, c.Name)
		}
		mu += z[i] * c.Viscosity
	}
	if !(mu > 0) {
		return 0, fmt.Errorf("%w: feed viscosity %g cP", ErrEfficiencyOutOfRange, mu)
	}
	return mu, nil
}

// OConnell returns the overall tray efficiency
//
//	η = 0.492·(α_rel·μ_F)^-0.245
//
// and fails when η falls outside (0, 1].
func OConnell(alphaRel, muF float64) (float64, error) {
	p := alphaRel * muF
	if !(p > 0) || !mathx.Finite(p) {
		return 0, fmt.Errorf("%w: alpha*mu=%g must be positive", ErrEfficiencyOutOfRange, p)
	}
	eta := 0.492 * math.Pow(p, -0.245)
	if !(eta > 0 && eta <= 1) {
		return 0, fmt.Errorf("%w: eta=%g at alpha*mu=%g", ErrEfficiencyOutOfRange, eta, p)
	}
	return eta, nil
}

// Efficiency applies the O'Connell correction to nteo theoretical stages.
func Efficiency(nteo, alphaRel, muF float64) (EfficiencyResult, error) {
	eta, err := OConnell(alphaRel, muF)
	if err != nil {
		return EfficiencyResult{}, err
	}
	nreal := nteo / eta
	return EfficiencyResult{
		FeedViscosity: muF,
		AlphaRel:      alphaRel,
		Efficiency:    eta,
		NReal:         nreal,
		Trays:         mathx.CeilInt(nreal),
	}, nil
}
