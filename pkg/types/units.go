package types

import "fmt"

const (
	feetPerMeter = 1 / 0.3048
	paPerAtm     = 101325.0
	celsiusZero  = 273.15
)

// Length is a float64 wrapper representing a length in meters.
type Length float64

// FromFeet converts a length in feet to Length.
func FromFeet(ft float64) Length { return Length(ft * 0.3048) }

// Humanized returns a human-readable string with automatic unit (mm, cm, m).
func (l Length) Humanized() string {
	v := float64(l)
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1:
		return fmt.Sprintf("%.2f m", v)
	case abs >= 0.01:
		return fmt.Sprintf("%.1f cm", v*100)
	default:
		return fmt.Sprintf("%.1f mm", v*1000)
	}
}

// Meters returns the raw value in meters.
func (l Length) Meters() float64 { return float64(l) }

// Feet returns the length in feet.
func (l Length) Feet() float64 { return float64(l) * feetPerMeter }

// Pressure is a float64 wrapper representing an absolute pressure in atm.
type Pressure float64

// Pa returns the pressure in pascal.
func (p Pressure) Pa() float64 { return float64(p) * paPerAtm }

// KPa returns the pressure in kilopascal.
func (p Pressure) KPa() float64 { return float64(p) * paPerAtm / 1000 }

// Bar returns the pressure in bar.
func (p Pressure) Bar() float64 { return float64(p) * paPerAtm / 1e5 }

func (p Pressure) String() string { return fmt.Sprintf("%.3g atm", float64(p)) }

// Temperature is a float64 wrapper representing an absolute temperature in kelvin.
type Temperature float64

// FromCelsius converts degrees Celsius to Temperature.
func FromCelsius(c float64) Temperature { return Temperature(c + celsiusZero) }

// Celsius returns the temperature in degrees Celsius.
func (t Temperature) Celsius() float64 { return float64(t) - celsiusZero }

func (t Temperature) String() string { return fmt.Sprintf("%.1f K", float64(t)) }
