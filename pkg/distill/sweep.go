package distill

import (
	"fmt"
	"sync"

	"github.com/ja7ad/distill/pkg/component"
	"github.com/ja7ad/distill/pkg/mathx"
	"github.com/ja7ad/distill/pkg/types"
)

// sweepBase holds what every sweep row shares: the split, the minimum
// conditions and the tray efficiency.
type sweepBase struct {
	spec     SeparationSpec
	q        float64
	nmin     float64
	rrmin    float64
	model    GillilandModel
	eta      float64
	mw       []float64
	pressure types.Pressure
	trays    TrayParams
}

func (b sweepBase) row(factor float64) (SweepRow, error) {
	rr, _, _, nteo, err := Gilliland(b.model, b.nmin, b.rrmin, factor)
	if err != nil {
		return SweepRow{}, err
	}
	nreal := nteo / b.eta
	n := mathx.CeilInt(nreal)
	col, err := SizeTrays(b.spec, rr, b.q, n, b.mw, b.pressure, b.trays)
	if err != nil {
		return SweepRow{}, err
	}
	return SweepRow{
		Factor:      factor,
		RR:          rr,
		Nteo:        nteo,
		NReal:       nreal,
		Trays:       n,
		Diameter:    col.Diameter,
		TotalHeight: col.TotalHeight,
	}, nil
}

func (b sweepBase) run(factors []float64) ([]SweepRow, error) {
	rows := make([]SweepRow, len(factors))
	errs := make([]error, len(factors))

	var wg sync.WaitGroup
	for i, f := range factors {
		wg.Go(func() {
			rows[i], errs[i] = b.row(f)
		})
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("sweep factor %g: %w", factors[i], err)
		}
	}
	return rows, nil
}

// Sweep recomputes reflux, stage count and tray-column size of a finished
// design for each reflux factor. The minimum conditions and the efficiency
// of p are reused. Rows follow the order of factors, duplicates included.
func Sweep(p Project, factors []float64) ([]SweepRow, error) {
	mw, err := component.MolarMasses(p.Components)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSizingInput, err)
	}
	return sweepBaseOf(p, mw).run(factors)
}

func sweepBaseOf(p Project, mw []float64) sweepBase {
	return sweepBase{
		spec:     p.Spec,
		q:        p.Q,
		nmin:     p.FUG.Nmin,
		rrmin:    p.FUG.RRmin,
		model:    p.FUG.Model,
		eta:      p.Efficiency.Efficiency,
		mw:       mw,
		pressure: p.Input.Pressure,
		trays:    p.Input.Trays,
	}
}
