package component

import (
	"fmt"
	"slices"
	"strings"
)

// Component is one row of the property table. Numeric fields left blank in the
// source are zero. Units:
//   - Tb: normal boiling point, K
//   - MolarMass: kg/kmol
//   - AlphaRef: volatility relative to the heaviest component
//   - LiquidDensity, VaporDensity: kg/m3
//   - Viscosity: liquid viscosity, cP
//   - SurfaceTension: mN/m
type Component struct {
	Index          int     `json:"index" yaml:"index"`
	Name           string  `json:"name" yaml:"name"`
	Tb             float64 `json:"tb_k" yaml:"tb_k"`
	MolarMass      float64 `json:"molar_mass" yaml:"molar_mass"`
	AlphaRef       float64 `json:"alpha_ref" yaml:"alpha_ref"`
	LiquidDensity  float64 `json:"liquid_density" yaml:"liquid_density"`
	VaporDensity   float64 `json:"vapor_density" yaml:"vapor_density"`
	Viscosity      float64 `json:"viscosity_cp" yaml:"viscosity_cp"`
	SurfaceTension float64 `json:"surface_tension" yaml:"surface_tension"`
}

// fallbackMolarMass holds n-alkane molar masses (kg/kmol) keyed by name stem,
// used when a table row leaves MM blank.
var fallbackMolarMass = []struct {
	stems []string
	mm    float64
}{
	{[]string{"pentan", "n-c5"}, 72.15},
	{[]string{"hexan", "n-c6"}, 86.18},
	{[]string{"heptan", "n-c7"}, 100.21},
	{[]string{"octan", "n-c8"}, 114.23},
	{[]string{"nonan", "n-c9"}, 128.26},
	{[]string{"decan", "n-c10"}, 142.29},
}

// MolarMassOf returns the component molar mass, falling back to a
// built-in n-alkane table matched by name.
func MolarMassOf(c Component) (float64, error) {
	if c.MolarMass > 0 {
		return c.MolarMass, nil
	}
	name := strings.ToLower(c.Name)
	for _, fb := range fallbackMolarMass {
		for _, s := range fb.stems {
			if strings.Contains(name, s) {
				return fb.mm, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrNoMolarMass, c.Name)
}

// MolarMasses resolves MolarMassOf for every component, in order.
func MolarMasses(comps []Component) ([]float64, error) {
	out := make([]float64, len(comps))
	for i, c := range comps {
		mm, err := MolarMassOf(c)
		if err != nil {
			return nil, err
		}
		out[i] = mm
	}
	return out, nil
}

// Sort orders components from most to least volatile (AlphaRef descending),
// breaking ties by Index. Rows without AlphaRef go last.
func Sort(comps []Component) {
	slices.SortStableFunc(comps, func(a, b Component) int {
		switch {
		case a.AlphaRef > b.AlphaRef:
			return -1
		case a.AlphaRef < b.AlphaRef:
			return 1
		case a.Index < b.Index:
			return -1
		case a.Index > b.Index:
			return 1
		default:
			return 0
		}
	})
}

// Volatilities returns the AlphaRef column in table order.
func Volatilities(comps []Component) []float64 {
	out := make([]float64, len(comps))
	for i, c := range comps {
		out[i] = c.AlphaRef
	}
	return out
}

// Names returns the Name column in table order.
func Names(comps []Component) []string {
	out := make([]string, len(comps))
	for i, c := range comps {
		out[i] = c.Name
	}
	return out
}

// Default returns the five n-alkane table (n-C5, n-C6, n-C7, n-C9, n-C10)
// used when no table file is configured. Viscosities are at 25 °C.
func Default() []Component {
	return []Component{
		{Index: 1, Name: "n-pentane", Tb: 309.2, MolarMass: 72.15, AlphaRef: 3.0, LiquidDensity: 626, Viscosity: 0.224, SurfaceTension: 16.0},
		{Index: 2, Name: "n-hexane", Tb: 341.9, MolarMass: 86.18, AlphaRef: 2.3, LiquidDensity: 655, Viscosity: 0.295, SurfaceTension: 17.9},
		{Index: 3, Name: "n-heptane", Tb: 371.6, MolarMass: 100.21, AlphaRef: 1.8, LiquidDensity: 684, Viscosity: 0.389, SurfaceTension: 19.7},
		{Index: 4, Name: "n-nonane", Tb: 423.9, MolarMass: 128.26, AlphaRef: 1.3, LiquidDensity: 718, Viscosity: 0.665, SurfaceTension: 22.4},
		{Index: 5, Name: "n-decane", Tb: 447.3, MolarMass: 142.29, AlphaRef: 1.0, LiquidDensity: 730, Viscosity: 0.850, SurfaceTension: 23.4},
	}
}
