package distill

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	studyZ     = []float64{0.05, 0.10, 0.25, 0.30, 0.30}
	studyAlpha = []float64{3.0, 2.3, 1.8, 1.3, 1.0}
)

func studySpec(t *testing.T) SeparationSpec {
	t.Helper()
	s, err := Specify(1000, studyZ, studyAlpha, DefaultInput().Split)
	require.NoError(t, err)
	return s
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
	}{
		{"already normalized", []float64{0.2, 0.3, 0.5}},
		{"percent", []float64{5, 10, 25, 30, 30}},
		{"single", []float64{7}},
		{"with zero", []float64{0, 1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := append([]float64(nil), tt.in...)
			out, err := Normalize(tt.in)
			require.NoError(t, err)
			var sum float64
			for _, v := range out {
				sum += v
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
			assert.Equal(t, orig, tt.in, "input must not change")
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	for name, in := range map[string][]float64{
		"empty":    nil,
		"zeros":    {0, 0, 0},
		"negative": {0.5, -0.1, 0.6},
		"nan":      {0.5, math.NaN()},
		"inf":      {math.Inf(1), 1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Normalize(in)
			assert.ErrorIs(t, err, ErrInvalidComposition)
		})
	}
}

func TestSpecify_StudyCase(t *testing.T) {
	s := studySpec(t)

	assert.InDelta(t, 314.75, s.Distillate, 1e-9)
	assert.InDelta(t, 685.25, s.Bottoms, 1e-9)
	assert.InDelta(t, s.Flow, s.Distillate+s.Bottoms, 1e-9)
	for i := range s.FeedFlows {
		assert.InDelta(t, s.FeedFlows[i], s.DistillateFlows[i]+s.BottomsFlows[i], 1e-9, "component %d", i)
	}

	var sd, sb float64
	for i := range s.XD {
		sd += s.XD[i]
		sb += s.XB[i]
	}
	assert.InDelta(t, 1.0, sd, 1e-12)
	assert.InDelta(t, 1.0, sb, 1e-12)
}

func TestSpecify_KeyRecoveries(t *testing.T) {
	split := Split{LightKey: 2, HeavyKey: 3, LightKeyRecovery: 0.6, HeavyKeyRecovery: 0.05}
	s, err := Specify(1000, studyZ, studyAlpha, split)
	require.NoError(t, err)

	assert.InDelta(t, 0.6, s.Recoveries[2], 1e-12)
	assert.InDelta(t, 0.05, s.Recoveries[3], 1e-12)
	// lighter than LK goes up, heavier than HK goes down
	assert.Greater(t, s.Recoveries[1], 0.6)
	assert.Greater(t, s.Recoveries[0], s.Recoveries[1])
	assert.Less(t, s.Recoveries[4], 0.05)
	for i := range s.FeedFlows {
		assert.InDelta(t, s.FeedFlows[i], s.DistillateFlows[i]+s.BottomsFlows[i], 1e-9)
	}

	// the distribution line through the keys has slope Nmin
	nmin, err := Fenske(s.XD, s.XB, studyAlpha, 2, 3)
	require.NoError(t, err)
	slope := math.Log((s.Recoveries[0]/(1-s.Recoveries[0]))/(s.Recoveries[3]/(1-s.Recoveries[3]))) /
		math.Log(studyAlpha[0]/studyAlpha[3])
	assert.InDelta(t, nmin, slope, 1e-9)
}

func TestSpecify_SharpSplit(t *testing.T) {
	split := Split{LightKey: 2, HeavyKey: 3, LightKeyRecovery: 1, HeavyKeyRecovery: 0}
	s, err := Specify(1000, studyZ, studyAlpha, split)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 0, 0}, s.Recoveries)
	assert.InDelta(t, 400, s.Distillate, 1e-9)
}

func TestSpecify_Errors(t *testing.T) {
	tests := []struct {
		name  string
		flow  float64
		alpha []float64
		split Split
		want  error
	}{
		{"zero flow", 0, studyAlpha, DefaultInput().Split, ErrSpecification},
		{"same keys", 1000, studyAlpha, Split{LightKey: 2, HeavyKey: 2, Recoveries: DefaultInput().Split.Recoveries}, ErrSpecification},
		{"key out of range", 1000, studyAlpha, Split{LightKey: 2, HeavyKey: 7, Recoveries: DefaultInput().Split.Recoveries}, ErrSpecification},
		{"keys reversed", 1000, studyAlpha, Split{LightKey: 3, HeavyKey: 2, Recoveries: DefaultInput().Split.Recoveries}, ErrSpecification},
		{"recovery above one", 1000, studyAlpha, Split{LightKey: 2, HeavyKey: 3, Recoveries: []float64{1.2, 1, 0.6, 0.05, 0}}, ErrSpecification},
		{"negative recovery", 1000, studyAlpha, Split{LightKey: 2, HeavyKey: 3, LightKeyRecovery: 0.9, HeavyKeyRecovery: -0.1}, ErrSpecification},
		{"empty bottoms", 1000, studyAlpha, Split{LightKey: 2, HeavyKey: 3, Recoveries: []float64{1, 1, 1, 1, 1}}, ErrSpecification},
		{"empty distillate", 1000, studyAlpha, Split{LightKey: 2, HeavyKey: 3, Recoveries: []float64{0, 0, 0, 0, 0}}, ErrSpecification},
		{"recoveries length", 1000, studyAlpha, Split{LightKey: 2, HeavyKey: 3, Recoveries: []float64{1, 0}}, ErrLengthMismatch},
		{"alpha length", 1000, []float64{3, 2}, DefaultInput().Split, ErrLengthMismatch},
		{"non-positive alpha", 1000, []float64{3, 2.3, 1.8, 1.3, 0}, DefaultInput().Split, ErrSpecification},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Specify(tt.flow, studyZ, tt.alpha, tt.split)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
