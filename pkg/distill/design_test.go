package distill

import (
	"math"
	"testing"

	"github.com/ja7ad/distill/pkg/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesign_StudyCase(t *testing.T) {
	p, err := Design(DefaultInput(), component.Default())
	require.NoError(t, err)

	assert.InDelta(t, 0.8, p.Q, 1e-12)
	assert.InDelta(t, 314.75, p.Spec.Distillate, 1e-9)
	assert.InDelta(t, 10.294018, p.FUG.Nmin, 1e-6)
	assert.InDelta(t, 3.585389, p.FUG.RRmin, 1e-6)
	assert.InDelta(t, 20.273591, p.FUG.Nteo, 1e-5)
	assert.InDelta(t, 0.59245, p.Efficiency.FeedViscosity, 1e-9)
	assert.Equal(t, 40, p.Efficiency.Trays)
	assert.Equal(t, 28, p.FeedStage.FeedStage)
	assert.Equal(t, 40, p.Trays.Trays)
	assert.InDelta(t, 3.364944, p.Trays.Diameter.Meters(), 1e-5)
	assert.InDelta(t, 24.0, p.Trays.TotalHeight.Meters(), 1e-12)
	assert.InDelta(t, 4.368897, p.Packing.Diameter.Meters(), 1e-4)

	// invariants between the steps
	assert.GreaterOrEqual(t, p.FUG.Nteo, p.FUG.Nmin)
	assert.GreaterOrEqual(t, p.Efficiency.NReal, p.FUG.Nteo)
	assert.Equal(t, int(math.Ceil(p.Efficiency.NReal)), p.Efficiency.Trays)
	assert.GreaterOrEqual(t, p.Efficiency.Trays, int(math.Ceil(p.FUG.Nteo)))
	assert.Greater(t, p.FUG.Theta, 1.3)
	assert.Less(t, p.FUG.Theta, 1.8)
}

func TestDesign_Sweep(t *testing.T) {
	p, err := Design(DefaultInput(), component.Default())
	require.NoError(t, err)
	require.Len(t, p.Sweep, 5)

	want := []struct {
		factor   float64
		trays    int
		diameter float64
		height   float64
	}{
		{1.1, 51, 3.115645, 29.5},
		{1.2, 44, 3.242691, 26.0},
		{1.3, 40, 3.364944, 24.0},
		{1.5, 35, 3.597006, 21.5},
		{2.0, 29, 4.120373, 18.5},
	}
	for i, w := range want {
		row := p.Sweep[i]
		assert.Equal(t, w.factor, row.Factor)
		assert.Equal(t, w.trays, row.Trays, "factor %g", w.factor)
		assert.InDelta(t, w.diameter, row.Diameter.Meters(), 1e-5, "factor %g", w.factor)
		assert.InDelta(t, w.height, row.TotalHeight.Meters(), 1e-12, "factor %g", w.factor)
	}

	// the operating factor reproduces the main design
	assert.InDelta(t, p.FUG.Nteo, p.Sweep[2].Nteo, 1e-12)
	assert.Equal(t, p.Trays.Diameter, p.Sweep[2].Diameter)
}

func TestSweep_KeepsOrderAndDuplicates(t *testing.T) {
	p, err := Design(DefaultInput(), component.Default())
	require.NoError(t, err)

	factors := []float64{2.0, 1.1, 2.0, 1.3}
	rows, err := Sweep(p, factors)
	require.NoError(t, err)
	require.Len(t, rows, len(factors))
	for i, f := range factors {
		assert.Equal(t, f, rows[i].Factor)
	}
	assert.Equal(t, rows[0], rows[2])
	assert.Greater(t, rows[1].Trays, rows[3].Trays)

	rows, err = Sweep(p, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSweep_FirstFailureAborts(t *testing.T) {
	p, err := Design(DefaultInput(), component.Default())
	require.NoError(t, err)

	rows, err := Sweep(p, []float64{1.3, 0.9, 1.0})
	assert.ErrorIs(t, err, ErrInvalidReflux)
	assert.Contains(t, err.Error(), "sweep factor 0.9")
	assert.Nil(t, rows)

	in := DefaultInput()
	in.SweepFactors = []float64{1.2, 1}
	_, err = Design(in, component.Default())
	assert.ErrorIs(t, err, ErrInvalidReflux)
}

func TestDesign_DoesNotAliasInputs(t *testing.T) {
	in := DefaultInput()
	in.Feed.Composition = []float64{5, 10, 25, 30, 30}
	comps := component.Default()

	p, err := Design(in, comps)
	require.NoError(t, err)
	assert.InDelta(t, 10.294018, p.FUG.Nmin, 1e-6)

	in.Feed.Composition[0] = 99
	in.Volatility[0] = 99
	in.SweepFactors[0] = 99
	comps[0].Name = "changed"

	assert.Equal(t, 5.0, p.Input.Feed.Composition[0])
	assert.Equal(t, 3.0, p.Input.Volatility[0])
	assert.Equal(t, 1.1, p.Input.SweepFactors[0])
	assert.Equal(t, "n-pentane", p.Components[0].Name)
}

func TestDesign_Defaults(t *testing.T) {
	in := DefaultInput()
	in.Volatility = nil
	in.Trays = TrayParams{}
	in.Packing = PackingParams{}
	in.Gilliland = ""

	p, err := Design(in, component.Default())
	require.NoError(t, err)
	assert.Equal(t, studyAlpha, p.Input.Volatility)
	assert.Equal(t, DefaultTrayParams(), p.Input.Trays)
	assert.Equal(t, Molokanov, p.FUG.Model)
	assert.Equal(t, 40, p.Efficiency.Trays)
}

func TestDesign_ViscosityOverride(t *testing.T) {
	in := DefaultInput()
	in.FeedViscosity = 0.3

	p, err := Design(in, component.Default())
	require.NoError(t, err)
	assert.Equal(t, 0.3, p.Efficiency.FeedViscosity)
	assert.Greater(t, p.Efficiency.Efficiency, 0.516464)
}

func TestDesign_Errors(t *testing.T) {
	tests := []struct {
		name  string
		in    func() Input
		comps func() []component.Component
		want  error
	}{
		{
			name:  "short table",
			in:    DefaultInput,
			comps: func() []component.Component { return component.Default()[:4] },
			want:  ErrLengthMismatch,
		},
		{
			name: "zero composition",
			in: func() Input {
				in := DefaultInput()
				in.Feed.Composition = make([]float64, 5)
				return in
			},
			comps: component.Default,
			want:  ErrInvalidComposition,
		},
		{
			name: "heavy key absent from distillate",
			in: func() Input {
				in := DefaultInput()
				in.Split.Recoveries = []float64{1, 1, 0.9, 0, 0}
				return in
			},
			comps: component.Default,
			want:  ErrDegenerateSplit,
		},
		{
			name: "minimum reflux",
			in: func() Input {
				in := DefaultInput()
				in.RefluxFactor = 1
				return in
			},
			comps: component.Default,
			want:  ErrInvalidReflux,
		},
		{
			name: "unknown correlation",
			in: func() Input {
				in := DefaultInput()
				in.Gilliland = "fair"
				return in
			},
			comps: component.Default,
			want:  ErrUnknownCorrelation,
		},
		{
			name: "no molar mass",
			in:   DefaultInput,
			comps: func() []component.Component {
				c := component.Default()
				c[0].Name, c[0].MolarMass = "mystery", 0
				return c
			},
			want: ErrInvalidSizingInput,
		},
		{
			name: "zero pressure",
			in: func() Input {
				in := DefaultInput()
				in.Pressure = 0
				return in
			},
			comps: component.Default,
			want:  ErrInvalidSizingInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Design(tt.in(), tt.comps())
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, p.Efficiency.Trays)
		})
	}
}
