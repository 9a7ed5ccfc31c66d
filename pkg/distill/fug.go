package distill

import (
	"fmt"
	"math"
	"strings"

	"github.com/ja7ad/distill/pkg/mathx"
)

// GillilandModel names a fitted form of the Gilliland correlation.
type GillilandModel string

const (
	// Molokanov is Y = 1 - exp[((1+54.4X)/(11+117.2X))·((X-1)/√X)]
	// (Molokanov et al., 1972). Y→1 as X→0 and Y=0 at X=1.
	Molokanov GillilandModel = "molokanov"

	// Eduljee is Y = 0.75·(1 - X^0.5668) (Eduljee, 1975).
	Eduljee GillilandModel = "eduljee"
)

// ParseGillilandModel accepts a model name case-insensitively; "" means Molokanov.
func ParseGillilandModel(s string) (GillilandModel, error) {
	switch GillilandModel(strings.ToLower(strings.TrimSpace(s))) {
	case "", Molokanov:
		return Molokanov, nil
	case Eduljee:
		return Eduljee, nil
	default:
		return "", fmt.Errorf("%w: gilliland model %q", ErrUnknownCorrelation, s)
	}
}

const (
	underwoodEdge    = 1e-6
	underwoodTol     = 1e-10
	underwoodMaxIter = 200
)

// Fenske returns the minimum number of equilibrium stages at total reflux:
//
//	Nmin = ln[(xD_LK/xD_HK)·(xB_HK/xB_LK)] / ln(α_LK/α_HK)
func Fenske(xD, xB, alpha []float64, lk, hk int) (float64, error) {
	for _, v := range []struct {
		name string
		x    float64
	}{
		{"xD[LK]", xD[lk]}, {"xD[HK]", xD[hk]}, {"xB[LK]", xB[lk]}, {"xB[HK]", xB[hk]},
	} {
		if !(v.x > 0) {
			return 0, fmt.Errorf("%w: %s=%g", ErrDegenerateSplit, v.name, v.x)
		}
	}
	rel := alpha[lk] / alpha[hk]
	if !(rel > 1) {
		return 0, fmt.Errorf("%w: alpha[LK]/alpha[HK]=%g must exceed 1", ErrSpecification, rel)
	}

	nmin := math.Log((xD[lk]/xD[hk])*(xB[hk]/xB[lk])) / math.Log(rel)
	if nmin < 0 || !mathx.Finite(nmin) {
		return 0, fmt.Errorf("%w: Nmin=%g, products are not enriched in their keys", ErrDegenerateSplit, nmin)
	}
	return nmin, nil
}

// UnderwoodTheta solves Σ α_i·z_i/(α_i - θ) = 1 - q for θ in (α_HK, α_LK)
// by bisection.
func UnderwoodTheta(alpha, z []float64, q float64, lk, hk int) (float64, error) {
	aLK, aHK := alpha[lk], alpha[hk]
	if !(aLK-aHK > 2*underwoodEdge) {
		return 0, fmt.Errorf("%w: empty bracket (%g, %g)", ErrRootNotFound, aHK, aLK)
	}
	for i, a := range alpha {
		if i != lk && i != hk && a > aHK && a < aLK {
			return 0, fmt.Errorf("%w: alpha[%d]=%g lies between the keys", ErrRootNotFound, i, a)
		}
	}

	f := func(theta float64) float64 {
		var s float64
		for i := range alpha {
			s += alpha[i] * z[i] / (alpha[i] - theta)
		}
		return s - (1 - q)
	}

	theta, err := mathx.Bisect(f, aHK+underwoodEdge, aLK-underwoodEdge, underwoodTol, underwoodMaxIter)
	if err != nil {
		return 0, fmt.Errorf("%w: q=%g bracket (%g, %g): %v", ErrRootNotFound, q, aHK, aLK, err)
	}
	return theta, nil
}

// Underwood returns θ and the minimum reflux ratio
//
//	RRmin = Σ α_i·xD_i/(α_i - θ) - 1
func Underwood(alpha, z, xD []float64, q float64, lk, hk int) (theta, rrmin float64, err error) {
	theta, err = UnderwoodTheta(alpha, z, q, lk, hk)
	if err != nil {
		return 0, 0, err
	}
	for i := range alpha {
		rrmin += alpha[i] * xD[i] / (alpha[i] - theta)
	}
	rrmin--
	if !(rrmin > 0) || !mathx.Finite(rrmin) {
		return theta, 0, fmt.Errorf("%w: RRmin=%g", ErrDegenerateSplit, rrmin)
	}
	return theta, rrmin, nil
}

// GillilandY evaluates the Gilliland correlation Y = (N - Nmin)/(N + 1) at
// X = (RR - RRmin)/(RR + 1). X must lie in (0, 1].
func GillilandY(model GillilandModel, x float64) (float64, error) {
	if !(x > 0 && x <= 1) {
		return 0, fmt.Errorf("%w: Gilliland X=%g outside (0, 1]", ErrInvalidReflux, x)
	}
	switch model {
	case Molokanov, "":
		return 1 - math.Exp(((1+54.4*x)/(11+117.2*x))*((x-1)/math.Sqrt(x))), nil
	case Eduljee:
		return 0.75 * (1 - math.Pow(x, 0.5668)), nil
	default:
		return 0, fmt.Errorf("%w: gilliland model %q", ErrUnknownCorrelation, model)
	}
}

// Gilliland returns the operating reflux RR = factor·RRmin and the
// theoretical stage count Nteo = (Nmin + Y)/(1 - Y). Nteo is not rounded.
func Gilliland(model GillilandModel, nmin, rrmin, factor float64) (rr, x, y, nteo float64, err error) {
	if !(factor > 1) || !mathx.Finite(factor) {
		return 0, 0, 0, 0, fmt.Errorf("%w: factor %g must exceed 1", ErrInvalidReflux, factor)
	}
	rr = factor * rrmin
	x = (rr - rrmin) / (rr + 1)
	y, err = GillilandY(model, x)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	if !(y < 1) {
		return 0, 0, 0, 0, fmt.Errorf("%w: factor %g too close to minimum reflux", ErrInvalidReflux, factor)
	}
	nteo = (nmin + y) / (1 - y)
	return rr, x, y, nteo, nil
}

// SolveFUG runs Fenske, Underwood and Gilliland for one reflux factor.
func SolveFUG(spec SeparationSpec, alpha []float64, q, factor float64, model GillilandModel) (FUGResult, error) {
	lk, hk := spec.LightKey, spec.HeavyKey

	nmin, err := Fenske(spec.XD, spec.XB, alpha, lk, hk)
	if err != nil {
		return FUGResult{}, err
	}
	theta, rrmin, err := Underwood(alpha, spec.Composition, spec.XD, q, lk, hk)
	if err != nil {
		return FUGResult{}, err
	}
	if model == "" {
		model = Molokanov
	}
	rr, x, y, nteo, err := Gilliland(model, nmin, rrmin, factor)
	if err != nil {
		return FUGResult{}, err
	}

	return FUGResult{
		Nmin:         nmin,
		Theta:        theta,
		RRmin:        rrmin,
		RefluxFactor: factor,
		RR:           rr,
		Model:        model,
		X:            x,
		Y:            y,
		Nteo:         nteo,
	}, nil
}
