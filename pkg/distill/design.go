package distill

import (
	"fmt"
	"slices"

	"github.com/ja7ad/distill/pkg/component"
)

// Design runs the whole shortcut pipeline on in with the component table
// comps: split, Fenske-Underwood-Gilliland, O'Connell efficiency, Kirkbride
// feed stage, tray and packed sizing, and the reflux sweep.
//
// comps must be aligned with the feed composition. When in.Volatility is
// empty the α vector is read from the table. Zero-valued Trays or Packing
// parameters take their defaults. The first failing step aborts the run.
func Design(in Input, comps []component.Component) (Project, error) {
	in = in.clone()
	comps = slices.Clone(comps)

	if len(in.Volatility) == 0 {
		in.Volatility = component.Volatilities(comps)
	}
	if in.Trays == (TrayParams{}) {
		in.Trays = DefaultTrayParams()
	}
	if in.Packing == (PackingParams{}) {
		in.Packing = DefaultPackingParams()
	}

	n := len(in.Feed.Composition)
	if len(in.Volatility) != n || len(comps) != n {
		return Project{}, fmt.Errorf("%w: z=%d alpha=%d components=%d",
			ErrLengthMismatch, n, len(in.Volatility), len(comps))
	}

	z, err := Normalize(in.Feed.Composition)
	if err != nil {
		return Project{}, err
	}
	model, err := ParseGillilandModel(string(in.Gilliland))
	if err != nil {
		return Project{}, err
	}
	in.Gilliland = model
	q := in.Feed.Q()

	spec, err := Specify(in.Feed.Flow, z, in.Volatility, in.Split)
	if err != nil {
		return Project{}, err
	}

	mw, err := component.MolarMasses(comps)
	if err != nil {
		return Project{}, fmt.Errorf("%w: %v", ErrInvalidSizingInput, err)
	}

	fug, err := SolveFUG(spec, in.Volatility, q, in.RefluxFactor, model)
	if err != nil {
		return Project{}, err
	}

	mu := in.FeedViscosity
	if !(mu > 0) {
		if mu, err = FeedViscosity(z, comps); err != nil {
			return Project{}, err
		}
	}
	alphaRel := in.Volatility[spec.LightKey] / in.Volatility[spec.HeavyKey]
	eff, err := Efficiency(fug.Nteo, alphaRel, mu)
	if err != nil {
		return Project{}, err
	}

	feed, err := LocateFeedStage(spec, fug, eff)
	if err != nil {
		return Project{}, err
	}

	trays, err := SizeTrays(spec, fug.RR, q, eff.Trays, mw, in.Pressure, in.Trays)
	if err != nil {
		return Project{}, err
	}
	packed, err := SizePacking(spec, fug.RR, fug.Nteo, mw, in.Pressure, in.Packing)
	if err != nil {
		return Project{}, err
	}

	p := Project{
		Input:      in,
		Components: comps,
		Q:          q,
		Spec:       spec,
		FUG:        fug,
		Efficiency: eff,
		FeedStage:  feed,
		Trays:      trays,
		Packing:    packed,
	}
	if p.Sweep, err = sweepBaseOf(p, mw).run(in.SweepFactors); err != nil {
		return Project{}, err
	}
	return p, nil
}
