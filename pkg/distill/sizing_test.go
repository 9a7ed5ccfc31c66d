package distill

import (
	"testing"

	"github.com/ja7ad/distill/pkg/component"
	"github.com/ja7ad/distill/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const studyRR = 4.661006013242058

func studyMW(t *testing.T) []float64 {
	t.Helper()
	mw, err := component.MolarMasses(component.Default())
	require.NoError(t, err)
	return mw
}

func TestOConnell(t *testing.T) {
	eta, err := OConnell(1.8/1.3, 0.59245)
	require.NoError(t, err)
	assert.InDelta(t, 0.516464, eta, 1e-6)

	// decreasing in both arguments
	lo, err := OConnell(2, 0.5)
	require.NoError(t, err)
	hiAlpha, err := OConnell(3, 0.5)
	require.NoError(t, err)
	hiMu, err := OConnell(2, 1.0)
	require.NoError(t, err)
	assert.Less(t, hiAlpha, lo)
	assert.Less(t, hiMu, lo)

	for _, p := range [][2]float64{{0, 1}, {1, -1}, {0.01, 0.01}} {
		_, err := OConnell(p[0], p[1])
		assert.ErrorIs(t, err, ErrEfficiencyOutOfRange, "alpha=%g mu=%g", p[0], p[1])
	}
}

func TestEfficiency(t *testing.T) {
	mu, err := FeedViscosity(studyZ, component.Default())
	require.NoError(t, err)
	assert.InDelta(t, 0.59245, mu, 1e-9)

	res, err := Efficiency(20.273591, 1.8/1.3, mu)
	require.NoError(t, err)
	assert.InDelta(t, 39.25463, res.NReal, 1e-4)
	assert.Equal(t, 40, res.Trays)
	assert.GreaterOrEqual(t, res.NReal, 20.273591)
	assert.Equal(t, int(res.NReal)+1, res.Trays)
}

func TestFeedViscosity_Errors(t *testing.T) {
	comps := component.Default()
	comps[2].Viscosity = 0
	_, err := FeedViscosity(studyZ, comps)
	assert.ErrorIs(t, err, ErrEfficiencyOutOfRange)

	// a missing viscosity only matters when the component is in the feed
	_, err = FeedViscosity([]float64{0.5, 0.5, 0, 0, 0}, comps)
	assert.NoError(t, err)

	_, err = FeedViscosity(studyZ[:3], comps)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestLocateFeedStage_StudyCase(t *testing.T) {
	s := studySpec(t)
	fug, err := SolveFUG(s, studyAlpha, 0.8, 1.3, Molokanov)
	require.NoError(t, err)
	eff, err := Efficiency(fug.Nteo, 1.8/1.3, 0.59245)
	require.NoError(t, err)

	res, err := LocateFeedStage(s, fug, eff)
	require.NoError(t, err)
	assert.InDelta(t, 1.932670, res.Ratio, 1e-6)
	assert.InDelta(t, 6.783900, res.NRmin, 1e-5)
	assert.InDelta(t, fug.Nmin, res.NRmin+res.NSmin, 1e-12)
	assert.InDelta(t, eff.NReal, res.NRop+res.NSop, 1e-12)
	assert.InDelta(t, 14.360577, res.FeedStageTheoretical, 1e-5)
	assert.InDelta(t, 27.805589, res.FeedStageReal, 1e-5)
	assert.Equal(t, 28, res.FeedStage)
	assert.GreaterOrEqual(t, res.FeedStage, 1)
	assert.LessOrEqual(t, res.FeedStage, eff.Trays)
}

func TestLocateFeedStage_OutOfBounds(t *testing.T) {
	s := studySpec(t)
	fug, err := SolveFUG(s, studyAlpha, 0.8, 1.3, Molokanov)
	require.NoError(t, err)
	eff, err := Efficiency(fug.Nteo, 1.8/1.3, 0.59245)
	require.NoError(t, err)

	// a column shorter than the computed feed position
	eff.Trays = 10
	_, err = LocateFeedStage(s, fug, eff)
	assert.ErrorIs(t, err, ErrFeedStageOutOfBounds)
}

func TestSizeTrays_StudyCase(t *testing.T) {
	s := studySpec(t)
	col, err := SizeTrays(s, studyRR, 0.8, 40, studyMW(t), 2, DefaultTrayParams())
	require.NoError(t, err)

	assert.InDelta(t, 92.698616, col.Top.VaporMolarMass, 1e-5)
	assert.InDelta(t, 6.106722, col.Top.VaporDensity, 1e-5)
	assert.InDelta(t, 1.540260, col.Top.FloodVelocity, 1e-5)
	assert.InDelta(t, 3.217313, col.Top.Diameter.Meters(), 1e-5)

	assert.InDelta(t, 130.267947, col.Bottom.VaporMolarMass, 1e-5)
	assert.InDelta(t, 7.384238, col.Bottom.VaporDensity, 1e-5)
	assert.InDelta(t, 3.364944, col.Bottom.Diameter.Meters(), 1e-5)

	// stripping vapor loses the vapor part of the feed
	assert.InDelta(t, col.Top.Vapor-0.2*1000, col.Bottom.Vapor, 1e-9)
	assert.InDelta(t, col.Top.Liquid+0.8*1000, col.Bottom.Liquid, 1e-9)

	assert.Equal(t, col.Bottom.Diameter, col.Diameter)
	assert.InDelta(t, 20.0, col.ActiveHeight.Meters(), 1e-12)
	assert.InDelta(t, 24.0, col.TotalHeight.Meters(), 1e-12)

	for _, sec := range []SectionSizing{col.Top, col.Bottom} {
		assert.Less(t, sec.OperatingVelocity, sec.FloodVelocity)
		assert.Greater(t, sec.Diameter.Meters(), 0.0)
	}
}

func TestSizeTrays_InvalidInput(t *testing.T) {
	s := studySpec(t)
	mw := studyMW(t)

	tests := []struct {
		name   string
		mutate func(*TrayParams)
	}{
		{"flood fraction one", func(tp *TrayParams) { tp.FloodFraction = 1 }},
		{"zero active area", func(tp *TrayParams) { tp.ActiveAreaFraction = 0 }},
		{"negative capacity", func(tp *TrayParams) { tp.CapacityFactor = -0.1 }},
		{"zero temperature", func(tp *TrayParams) { tp.BottomTemperature = 0 }},
		{"zero spacing", func(tp *TrayParams) { tp.TraySpacing = 0 }},
		{"liquid lighter than vapor", func(tp *TrayParams) { tp.TopLiquidDensity = 5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := DefaultTrayParams()
			tt.mutate(&tp)
			_, err := SizeTrays(s, studyRR, 0.8, 40, mw, 2, tp)
			assert.ErrorIs(t, err, ErrInvalidSizingInput)
		})
	}

	_, err := SizeTrays(s, studyRR, 0.8, 40, mw, 0, DefaultTrayParams())
	assert.ErrorIs(t, err, ErrInvalidSizingInput)

	// a superheated feed can leave no stripping vapor
	_, err = SizeTrays(s, 0.1, -3, 40, mw, 2, DefaultTrayParams())
	assert.ErrorIs(t, err, ErrInvalidSizingInput)
}

func TestSizePacking_StudyCase(t *testing.T) {
	s := studySpec(t)
	col, err := SizePacking(s, studyRR, 20.273591, studyMW(t), 2, DefaultPackingParams())
	require.NoError(t, err)

	assert.Equal(t, IntaloxSaddles1, col.Packing)
	assert.InDelta(t, 0.0810625, col.FLV, 1e-6)
	assert.InDelta(t, 0.144533, col.Y, 1e-6)
	assert.InDelta(t, 0.715969, col.FloodVelocity, 1e-5)
	assert.InDelta(t, 4.368897, col.Diameter.Meters(), 1e-4)
	assert.InDelta(t, 0.4572, col.HETP.Meters(), 1e-12)
	assert.InDelta(t, 20.273591*0.4572, col.BedHeight.Meters(), 1e-6)
	assert.InDelta(t, 20.273591*0.4572+2, col.TotalHeight.Meters(), 1e-6)
	assert.Less(t, col.OperatingVelocity, col.FloodVelocity)
}

func TestSizePacking_DenserPackingIsWider(t *testing.T) {
	s := studySpec(t)
	mw := studyMW(t)

	pp := DefaultPackingParams()
	intalox, err := SizePacking(s, studyRR, 20, mw, 2, pp)
	require.NoError(t, err)

	pp.Packing = RaschigRings1
	raschig, err := SizePacking(s, studyRR, 20, mw, 2, pp)
	require.NoError(t, err)

	assert.Greater(t, raschig.Diameter, intalox.Diameter)
}

func TestSizePacking_InvalidInput(t *testing.T) {
	s := studySpec(t)
	mw := studyMW(t)

	tests := []struct {
		name   string
		mutate func(*PackingParams)
	}{
		{"flood fraction zero", func(pp *PackingParams) { pp.FloodFraction = 0 }},
		{"no viscosity", func(pp *PackingParams) { pp.LiquidViscosity = 0 }},
		{"unknown packing", func(pp *PackingParams) { pp.Packing = Packing{Key: "x"} }},
		// F1 turns negative for very light liquids
		{"light liquid", func(pp *PackingParams) { pp.LiquidDensity = 250 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pp := DefaultPackingParams()
			tt.mutate(&pp)
			_, err := SizePacking(s, studyRR, 20, mw, 2, pp)
			assert.ErrorIs(t, err, ErrInvalidSizingInput)
		})
	}
}

func TestPackingByName(t *testing.T) {
	p, err := PackingByName("PALL-2")
	require.NoError(t, err)
	assert.Equal(t, PallRings2, p)

	p, err = PackingByName(`Intalox saddles 1.5"`)
	require.NoError(t, err)
	assert.InDelta(t, types.FromFeet(2.25).Meters(), p.HETP().Meters(), 1e-12)

	_, err = PackingByName("berl-1")
	assert.ErrorIs(t, err, ErrUnknownCorrelation)
}
