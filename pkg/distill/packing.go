package distill

import (
	"fmt"
	"math"
	"strings"

	"github.com/ja7ad/distill/pkg/mathx"
	"github.com/ja7ad/distill/pkg/types"
)

// Packing is a random packing from the catalog. NominalSize is in inches and
// PackingFactor (F_p) in 1/ft.
type Packing struct {
	Key           string  `json:"key" yaml:"key"`
	Name          string  `json:"name" yaml:"name"`
	NominalSize   float64 `json:"nominal_size_in" yaml:"nominal_size_in"`
	PackingFactor float64 `json:"packing_factor" yaml:"packing_factor"`
}

// HETP returns the rule-of-thumb height equivalent to a theoretical plate,
// 1.5 ft per inch of nominal size.
func (p Packing) HETP() types.Length {
	return types.FromFeet(1.5 * p.NominalSize)
}

func (p Packing) String() string { return p.Name }

var (
	IntaloxSaddles1  = Packing{Key: "intalox-1", Name: `Intalox saddles 1"`, NominalSize: 1, PackingFactor: 92}
	IntaloxSaddles15 = Packing{Key: "intalox-1.5", Name: `Intalox saddles 1.5"`, NominalSize: 1.5, PackingFactor: 52}
	IntaloxSaddles2  = Packing{Key: "intalox-2", Name: `Intalox saddles 2"`, NominalSize: 2, PackingFactor: 40}
	PallRings1       = Packing{Key: "pall-1", Name: `Pall rings 1"`, NominalSize: 1, PackingFactor: 56}
	PallRings2       = Packing{Key: "pall-2", Name: `Pall rings 2"`, NominalSize: 2, PackingFactor: 27}
	RaschigRings1    = Packing{Key: "raschig-1", Name: `Raschig rings 1"`, NominalSize: 1, PackingFactor: 155}
)

// Packings lists the catalog.
var Packings = []Packing{
	IntaloxSaddles1,
	IntaloxSaddles15,
	IntaloxSaddles2,
	PallRings1,
	PallRings2,
	RaschigRings1,
}

// PackingByName looks a packing up by key or display name, ignoring case.
func PackingByName(name string) (Packing, error) {
	name = strings.TrimSpace(name)
	for _, p := range Packings {
		if strings.EqualFold(p.Key, name) || strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Packing{}, fmt.Errorf("%w: packing %q", ErrUnknownCorrelation, name)
}

const waterDensity = 995.6 // kg/m3

// Leva returns the flooding ordinate Y of the generalized pressure-drop
// chart at flow parameter flv:
//
//	Y = exp(-3.7121 - 1.0371·lnF - 0.1501·ln²F - 0.007544·ln³F)
func Leva(flv float64) float64 {
	l := math.Log(flv)
	return math.Exp(-3.7121 - 1.0371*l - 0.1501*l*l - 0.007544*l*l*l)
}

func (pp PackingParams) validate() error {
	switch {
	case !(pp.Packing.NominalSize > 0) || !(pp.Packing.PackingFactor > 0):
		return fmt.Errorf("%w: packing %q has no size or packing factor", ErrInvalidSizingInput, pp.Packing.Key)
	case !(pp.TopTemperature > 0):
		return fmt.Errorf("%w: packing temperature must be positive", ErrInvalidSizingInput)
	case !(pp.LiquidDensity > 0):
		return fmt.Errorf("%w: packing liquid density must be positive", ErrInvalidSizingInput)
	case !(pp.LiquidViscosity > 0):
		return fmt.Errorf("%w: packing liquid viscosity must be positive", ErrInvalidSizingInput)
	case !(pp.FloodFraction > 0 && pp.FloodFraction < 1):
		return fmt.Errorf("%w: flood fraction %g outside (0, 1)", ErrInvalidSizingInput, pp.FloodFraction)
	case !(pp.HeightAllowance >= 0):
		return fmt.Errorf("%w: height allowance must not be negative", ErrInvalidSizingInput)
	}
	return nil
}

// SizePacking sizes a random-packed column on its top section with the Leva
// correlation. The bed holds nteo theoretical stages at the packing's HETP.
func SizePacking(spec SeparationSpec, rr, nteo float64, mw []float64, p types.Pressure, pp PackingParams) (PackedColumnSizing, error) {
	if err := pp.validate(); err != nil {
		return PackedColumnSizing{}, err
	}
	if !(p > 0) {
		return PackedColumnSizing{}, fmt.Errorf("%w: pressure %g", ErrInvalidSizingInput, float64(p))
	}
	if !(nteo > 0) {
		return PackedColumnSizing{}, fmt.Errorf("%w: %g theoretical stages", ErrInvalidSizingInput, nteo)
	}

	l := rr * spec.Distillate
	v := (rr + 1) * spec.Distillate
	if !(v > 0) {
		return PackedColumnSizing{}, fmt.Errorf("%w: top vapor flow %g", ErrInvalidSizingInput, v)
	}

	mwV := mathx.Dot(spec.XD, mw)
	rhoV := VaporDensity(p, pp.TopTemperature, mwV)
	rhoL := pp.LiquidDensity
	if !(rhoV > 0) || !(rhoL > rhoV) {
		return PackedColumnSizing{}, fmt.Errorf("%w: rhoV=%g rhoL=%g", ErrInvalidSizingInput, rhoV, rhoL)
	}

	// top liquid and vapor share the distillate composition
	flv := (l / v) * math.Sqrt(rhoV/rhoL)
	y := Leva(flv)

	r := waterDensity / rhoL
	f1 := -0.8787 + 2.6776*r - 0.6313*r*r
	f2 := 0.96 * math.Pow(pp.LiquidViscosity, 0.19)
	if !(f1 > 0) || !(f2 > 0) {
		return PackedColumnSizing{}, fmt.Errorf("%w: Leva corrections F1=%g F2=%g", ErrInvalidSizingInput, f1, f2)
	}

	uf := types.FromFeet(math.Sqrt(32.2 * y * (waterDensity / rhoV) / (pp.Packing.PackingFactor * f1 * f2))).Meters()
	if !(uf > 0) || !mathx.Finite(uf) {
		return PackedColumnSizing{}, fmt.Errorf("%w: flood velocity %g", ErrInvalidSizingInput, uf)
	}
	uop := pp.FloodFraction * uf
	area := v * mwV / 3600 / rhoV / uop

	hetp := pp.Packing.HETP()
	bed := types.Length(nteo * hetp.Meters())
	return PackedColumnSizing{
		Packing:           pp.Packing,
		VaporMolarMass:    mwV,
		VaporDensity:      rhoV,
		LiquidDensity:     rhoL,
		Liquid:            l,
		Vapor:             v,
		FLV:               flv,
		Y:                 y,
		FloodVelocity:     uf,
		OperatingVelocity: uop,
		Area:              area,
		Diameter:          types.Length(math.Sqrt(4 * area / math.Pi)),
		HETP:              hetp,
		BedHeight:         bed,
		TotalHeight:       bed + pp.HeightAllowance,
	}, nil
}
