package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/ja7ad/distill/pkg/distill"
	"github.com/ja7ad/distill/pkg/types"
	"github.com/pelletier/go-toml/v2"
)

// Case is a design case file. Key indices are zero-based positions in the
// component table. An empty split.recoveries array switches the split to the
// two key recoveries.
type Case struct {
	Name       string          `toml:"name" json:"name"`
	Components string          `toml:"components,omitempty" json:"components,omitempty"`
	Feed       FeedConfig      `toml:"feed" json:"feed"`
	Split      SplitConfig     `toml:"split" json:"split"`
	Operation  OperationConfig `toml:"operation" json:"operation"`
	Trays      TrayConfig      `toml:"trays" json:"trays"`
	Packing    PackingConfig   `toml:"packing" json:"packing"`
}

// FeedConfig feed section
type FeedConfig struct {
	Flow          float64   `toml:"flow_kmol_h" json:"flow_kmol_h"`
	Composition   []float64 `toml:"composition" json:"composition"`
	VaporFraction float64   `toml:"vapor_fraction" json:"vapor_fraction"`
}

// SplitConfig split section
type SplitConfig struct {
	LightKey         int       `toml:"light_key" json:"light_key"`
	HeavyKey         int       `toml:"heavy_key" json:"heavy_key"`
	LightKeyRecovery float64   `toml:"light_key_recovery" json:"light_key_recovery"`
	HeavyKeyRecovery float64   `toml:"heavy_key_recovery" json:"heavy_key_recovery"`
	Recoveries       []float64 `toml:"recoveries" json:"recoveries"`
}

// OperationConfig operating conditions
type OperationConfig struct {
	Pressure      float64   `toml:"pressure_atm" json:"pressure_atm"`
	Volatility    []float64 `toml:"volatility" json:"volatility"`
	RefluxFactor  float64   `toml:"reflux_factor" json:"reflux_factor"`
	SweepFactors  []float64 `toml:"sweep_factors" json:"sweep_factors"`
	Gilliland     string    `toml:"gilliland" json:"gilliland"`
	FeedViscosity float64   `toml:"feed_viscosity_cp" json:"feed_viscosity_cp"`
}

// TrayConfig valve-tray sizing assumptions
type TrayConfig struct {
	TopTemperature      float64 `toml:"top_temperature_k" json:"top_temperature_k"`
	BottomTemperature   float64 `toml:"bottom_temperature_k" json:"bottom_temperature_k"`
	TopLiquidDensity    float64 `toml:"top_liquid_density" json:"top_liquid_density"`
	BottomLiquidDensity float64 `toml:"bottom_liquid_density" json:"bottom_liquid_density"`
	FloodFraction       float64 `toml:"flood_fraction" json:"flood_fraction"`
	ActiveAreaFraction  float64 `toml:"active_area_fraction" json:"active_area_fraction"`
	CapacityFactor      float64 `toml:"capacity_factor" json:"capacity_factor"`
	TraySpacing         float64 `toml:"tray_spacing_m" json:"tray_spacing_m"`
	HeightAllowance     float64 `toml:"height_allowance_m" json:"height_allowance_m"`
}

// PackingConfig random-packing sizing assumptions; Type is a catalog key
// such as "intalox-1".
type PackingConfig struct {
	Type            string  `toml:"type" json:"type"`
	TopTemperature  float64 `toml:"top_temperature_k" json:"top_temperature_k"`
	LiquidDensity   float64 `toml:"liquid_density" json:"liquid_density"`
	LiquidViscosity float64 `toml:"liquid_viscosity_cp" json:"liquid_viscosity_cp"`
	FloodFraction   float64 `toml:"flood_fraction" json:"flood_fraction"`
	HeightAllowance float64 `toml:"height_allowance_m" json:"height_allowance_m"`
}

// DefaultCase returns the n-alkane study case.
func DefaultCase() Case {
	return FromInput("n-alkanes", distill.DefaultInput())
}

// FromInput converts a pipeline input into a case.
func FromInput(name string, in distill.Input) Case {
	return Case{
		Name: name,
		Feed: FeedConfig{
			Flow:          in.Feed.Flow,
			Composition:   slices.Clone(in.Feed.Composition),
			VaporFraction: in.Feed.VaporFraction,
		},
		Split: SplitConfig{
			LightKey:         in.Split.LightKey,
			HeavyKey:         in.Split.HeavyKey,
			LightKeyRecovery: in.Split.LightKeyRecovery,
			HeavyKeyRecovery: in.Split.HeavyKeyRecovery,
			Recoveries:       slices.Clone(in.Split.Recoveries),
		},
		Operation: OperationConfig{
			Pressure:      float64(in.Pressure),
			Volatility:    slices.Clone(in.Volatility),
			RefluxFactor:  in.RefluxFactor,
			SweepFactors:  slices.Clone(in.SweepFactors),
			Gilliland:     string(in.Gilliland),
			FeedViscosity: in.FeedViscosity,
		},
		Trays: TrayConfig{
			TopTemperature:      float64(in.Trays.TopTemperature),
			BottomTemperature:   float64(in.Trays.BottomTemperature),
			TopLiquidDensity:    in.Trays.TopLiquidDensity,
			BottomLiquidDensity: in.Trays.BottomLiquidDensity,
			FloodFraction:       in.Trays.FloodFraction,
			ActiveAreaFraction:  in.Trays.ActiveAreaFraction,
			CapacityFactor:      in.Trays.CapacityFactor,
			TraySpacing:         in.Trays.TraySpacing.Meters(),
			HeightAllowance:     in.Trays.HeightAllowance.Meters(),
		},
		Packing: PackingConfig{
			Type:            in.Packing.Packing.Key,
			TopTemperature:  float64(in.Packing.TopTemperature),
			LiquidDensity:   in.Packing.LiquidDensity,
			LiquidViscosity: in.Packing.LiquidViscosity,
			FloodFraction:   in.Packing.FloodFraction,
			HeightAllowance: in.Packing.HeightAllowance.Meters(),
		},
	}
}

// Input converts the case into a pipeline input. Only the catalog and
// correlation names are checked here; numeric ranges are left to distill.
func (c Case) Input() (distill.Input, error) {
	model, err := distill.ParseGillilandModel(c.Operation.Gilliland)
	if err != nil {
		return distill.Input{}, err
	}
	packing, err := distill.PackingByName(c.Packing.Type)
	if err != nil {
		return distill.Input{}, err
	}

	recoveries := slices.Clone(c.Split.Recoveries)
	if len(recoveries) == 0 {
		recoveries = nil
	}

	return distill.Input{
		Feed: distill.Feed{
			Flow:          c.Feed.Flow,
			Composition:   slices.Clone(c.Feed.Composition),
			VaporFraction: c.Feed.VaporFraction,
		},
		Volatility: slices.Clone(c.Operation.Volatility),
		Split: distill.Split{
			LightKey:         c.Split.LightKey,
			HeavyKey:         c.Split.HeavyKey,
			LightKeyRecovery: c.Split.LightKeyRecovery,
			HeavyKeyRecovery: c.Split.HeavyKeyRecovery,
			Recoveries:       recoveries,
		},
		Pressure:      types.Pressure(c.Operation.Pressure),
		RefluxFactor:  c.Operation.RefluxFactor,
		SweepFactors:  slices.Clone(c.Operation.SweepFactors),
		Gilliland:     model,
		FeedViscosity: c.Operation.FeedViscosity,
		Trays: distill.TrayParams{
			TopTemperature:      types.Temperature(c.Trays.TopTemperature),
			BottomTemperature:   types.Temperature(c.Trays.BottomTemperature),
			TopLiquidDensity:    c.Trays.TopLiquidDensity,
			BottomLiquidDensity: c.Trays.BottomLiquidDensity,
			FloodFraction:       c.Trays.FloodFraction,
			ActiveAreaFraction:  c.Trays.ActiveAreaFraction,
			CapacityFactor:      c.Trays.CapacityFactor,
			TraySpacing:         types.Length(c.Trays.TraySpacing),
			HeightAllowance:     types.Length(c.Trays.HeightAllowance),
		},
		Packing: distill.PackingParams{
			Packing:         packing,
			TopTemperature:  types.Temperature(c.Packing.TopTemperature),
			LiquidDensity:   c.Packing.LiquidDensity,
			LiquidViscosity: c.Packing.LiquidViscosity,
			FloodFraction:   c.Packing.FloodFraction,
			HeightAllowance: types.Length(c.Packing.HeightAllowance),
		},
	}, nil
}

// LoadCase reads a case file over the defaults. Keys missing from the file
// keep their default value.
func LoadCase(path string) (Case, error) {
	return LoadCaseOver(DefaultCase(), path)
}

// LoadCaseOver reads a case file over base. An empty path returns base.
func LoadCaseOver(base Case, path string) (Case, error) {
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Case{}, err
	}
	if err := toml.Unmarshal(data, &base); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Case{}, fmt.Errorf("config: %s:%d:%d: %w", filepath.Base(path), row, col, err)
		}
		return Case{}, fmt.Errorf("config: %s: %w", filepath.Base(path), err)
	}
	return base, nil
}

// SaveCase writes c to path as TOML.
func SaveCase(path string, c Case) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
