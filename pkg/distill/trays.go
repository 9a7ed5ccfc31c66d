package distill

import (
	"fmt"
	"math"

	"github.com/ja7ad/distill/pkg/mathx"
	"github.com/ja7ad/distill/pkg/types"
)

// RGas is the universal gas constant, J/(mol·K).
const RGas = 8.314

func (tp TrayParams) validate() error {
	switch {
	case !(tp.TopTemperature > 0) || !(tp.BottomTemperature > 0):
		return fmt.Errorf("%w: tray temperatures must be positive", ErrInvalidSizingInput)
	case !(tp.TopLiquidDensity > 0) || !(tp.BottomLiquidDensity > 0):
		return fmt.Errorf("%w: tray liquid densities must be positive", ErrInvalidSizingInput)
	case !(tp.FloodFraction > 0 && tp.FloodFraction < 1):
		return fmt.Errorf("%w: flood fraction %g outside (0, 1)", ErrInvalidSizingInput, tp.FloodFraction)
	case !(tp.ActiveAreaFraction > 0 && tp.ActiveAreaFraction <= 1):
		return fmt.Errorf("%w: active area fraction %g outside (0, 1]", ErrInvalidSizingInput, tp.ActiveAreaFraction)
	case !(tp.CapacityFactor > 0):
		return fmt.Errorf("%w: capacity factor must be positive", ErrInvalidSizingInput)
	case !(tp.TraySpacing > 0):
		return fmt.Errorf("%w: tray spacing must be positive", ErrInvalidSizingInput)
	case !(tp.HeightAllowance >= 0):
		return fmt.Errorf("%w: height allowance must not be negative", ErrInvalidSizingInput)
	}
	return nil
}

// VaporDensity returns the ideal-gas density (kg/m3) of a vapor of molar
// mass mw (kg/kmol) at pressure p and temperature t.
func VaporDensity(p types.Pressure, t types.Temperature, mw float64) float64 {
	return p.Pa() * (mw / 1000) / (RGas * float64(t))
}

// SoudersBrown returns the flooding velocity u = C·√((ρL - ρV)/ρV).
func SoudersBrown(c, rhoL, rhoV float64) float64 {
	return c * math.Sqrt((rhoL-rhoV)/rhoV)
}

// SizeSection sizes one tray section from its molar flows (kmol/h) and the
// vapor composition y.
func SizeSection(name string, liquid, vapor float64, y, mw []float64, p types.Pressure,
	t types.Temperature, rhoL float64, tp TrayParams) (SectionSizing, error) {
	if !(vapor > 0) || liquid < 0 {
		return SectionSizing{}, fmt.Errorf("%w: %s section flows L=%g V=%g", ErrInvalidSizingInput, name, liquid, vapor)
	}
	if !(p > 0) || !(t > 0) || !(rhoL > 0) {
		return SectionSizing{}, fmt.Errorf("%w: %s section needs positive P, T and liquid density", ErrInvalidSizingInput, name)
	}

	mwV := mathx.Dot(y, mw)
	rhoV := VaporDensity(p, t, mwV)
	if !(rhoV > 0) || !(rhoL > rhoV) {
		return SectionSizing{}, fmt.Errorf("%w: %s section rhoV=%g rhoL=%g", ErrInvalidSizingInput, name, rhoV, rhoL)
	}

	uf := SoudersBrown(tp.CapacityFactor, rhoL, rhoV)
	uop := tp.FloodFraction * uf

	qv := vapor * mwV / 3600 / rhoV // m3/s
	aActive := qv / uop
	aTotal := aActive / tp.ActiveAreaFraction

	return SectionSizing{
		Name:              name,
		Liquid:            liquid,
		Vapor:             vapor,
		Temperature:       t,
		VaporMolarMass:    mwV,
		VaporDensity:      rhoV,
		LiquidDensity:     rhoL,
		FloodVelocity:     uf,
		OperatingVelocity: uop,
		ActiveArea:        aActive,
		TotalArea:         aTotal,
		Diameter:          types.Length(math.Sqrt(4 * aTotal / math.Pi)),
	}, nil
}

// SectionFlows returns the constant-molar-overflow flows (kmol/h) of the
// rectifying (L, V) and stripping (Ls, Vs) sections.
func SectionFlows(rr, d, f, q float64) (l, v, ls, vs float64) {
	l = rr * d
	v = (rr + 1) * d
	ls = l + q*f
	vs = v - (1-q)*f
	return l, v, ls, vs
}

// SizeTrays sizes a valve-tray column with the given adopted tray count.
// The top section uses the distillate composition as its vapor, the bottom
// section the bottoms composition; the shell takes the larger diameter.
func SizeTrays(spec SeparationSpec, rr, q float64, trays int, mw []float64, p types.Pressure, tp TrayParams) (TrayColumnSizing, error) {
	if err := tp.validate(); err != nil {
		return TrayColumnSizing{}, err
	}
	if trays < 1 {
		return TrayColumnSizing{}, fmt.Errorf("%w: %d trays", ErrInvalidSizingInput, trays)
	}

	l, v, ls, vs := SectionFlows(rr, spec.Distillate, spec.Flow, q)

	top, err := SizeSection("top", l, v, spec.XD, mw, p, tp.TopTemperature, tp.TopLiquidDensity, tp)
	if err != nil {
		return TrayColumnSizing{}, err
	}
	bottom, err := SizeSection("bottom", ls, vs, spec.XB, mw, p, tp.BottomTemperature, tp.BottomLiquidDensity, tp)
	if err != nil {
		return TrayColumnSizing{}, err
	}

	active := types.Length(float64(trays) * tp.TraySpacing.Meters())
	return TrayColumnSizing{
		Trays:        trays,
		ActiveHeight: active,
		TotalHeight:  active + tp.HeightAllowance,
		Diameter:     max(top.Diameter, bottom.Diameter),
		Top:          top,
		Bottom:       bottom,
	}, nil
}
