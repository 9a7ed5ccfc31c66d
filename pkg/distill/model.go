package distill

import (
	"slices"

	"github.com/ja7ad/distill/pkg/component"
	"github.com/ja7ad/distill/pkg/types"
)

// Feed describes the column feed.
// Units:
//   - Flow: kmol/h
//   - Composition: mole fractions, normalized by the pipeline
//   - VaporFraction: molar fraction of the feed that is vapor; q = 1 - VaporFraction
type Feed struct {
	Flow          float64   `json:"flow_kmol_h" yaml:"flow_kmol_h"`
	Composition   []float64 `json:"composition" yaml:"composition"`
	VaporFraction float64   `json:"vapor_fraction" yaml:"vapor_fraction"`
}

// Q returns the feed thermal condition (liquid fraction).
func (f Feed) Q() float64 { return 1 - f.VaporFraction }

// Split fixes the key components and their distillate recoveries.
//
// When Recoveries is set it gives the distillate recovery of every component
// and the key recovery fields are ignored. Otherwise non-keys are distributed
// from the two key recoveries (see Specify).
type Split struct {
	LightKey         int       `json:"light_key" yaml:"light_key"`
	HeavyKey         int       `json:"heavy_key" yaml:"heavy_key"`
	LightKeyRecovery float64   `json:"light_key_recovery,omitempty" yaml:"light_key_recovery,omitempty"`
	HeavyKeyRecovery float64   `json:"heavy_key_recovery,omitempty" yaml:"heavy_key_recovery,omitempty"`
	Recoveries       []float64 `json:"recoveries,omitempty" yaml:"recoveries,omitempty"`
}

// TrayParams holds the valve-tray sizing assumptions.
// Units: temperatures K, densities kg/m3, CapacityFactor m/s, lengths m.
type TrayParams struct {
	TopTemperature      types.Temperature `json:"top_temperature_k" yaml:"top_temperature_k"`
	BottomTemperature   types.Temperature `json:"bottom_temperature_k" yaml:"bottom_temperature_k"`
	TopLiquidDensity    float64           `json:"top_liquid_density" yaml:"top_liquid_density"`
	BottomLiquidDensity float64           `json:"bottom_liquid_density" yaml:"bottom_liquid_density"`
	FloodFraction       float64           `json:"flood_fraction" yaml:"flood_fraction"`
	ActiveAreaFraction  float64           `json:"active_area_fraction" yaml:"active_area_fraction"`
	CapacityFactor      float64           `json:"capacity_factor" yaml:"capacity_factor"`
	TraySpacing         types.Length      `json:"tray_spacing_m" yaml:"tray_spacing_m"`
	HeightAllowance     types.Length      `json:"height_allowance_m" yaml:"height_allowance_m"`
}

// PackingParams holds the random-packing sizing assumptions.
// Units: temperature K, density kg/m3, viscosity cP, length m.
type PackingParams struct {
	Packing         Packing           `json:"packing" yaml:"packing"`
	TopTemperature  types.Temperature `json:"top_temperature_k" yaml:"top_temperature_k"`
	LiquidDensity   float64           `json:"liquid_density" yaml:"liquid_density"`
	LiquidViscosity float64           `json:"liquid_viscosity_cp" yaml:"liquid_viscosity_cp"`
	FloodFraction   float64           `json:"flood_fraction" yaml:"flood_fraction"`
	HeightAllowance types.Length      `json:"height_allowance_m" yaml:"height_allowance_m"`
}

// Input is everything the pipeline needs besides the component table.
// FeedViscosity (cP) overrides the estimate from the table when > 0.
type Input struct {
	Feed          Feed           `json:"feed" yaml:"feed"`
	Volatility    []float64      `json:"volatility" yaml:"volatility"`
	Split         Split          `json:"split" yaml:"split"`
	Pressure      types.Pressure `json:"pressure_atm" yaml:"pressure_atm"`
	RefluxFactor  float64        `json:"reflux_factor" yaml:"reflux_factor"`
	SweepFactors  []float64      `json:"sweep_factors" yaml:"sweep_factors"`
	Gilliland     GillilandModel `json:"gilliland" yaml:"gilliland"`
	FeedViscosity float64        `json:"feed_viscosity_cp,omitempty" yaml:"feed_viscosity_cp,omitempty"`
	Trays         TrayParams     `json:"trays" yaml:"trays"`
	Packing       PackingParams  `json:"packing" yaml:"packing"`
}

func (in Input) clone() Input {
	out := in
	out.Feed.Composition = slices.Clone(in.Feed.Composition)
	out.Volatility = slices.Clone(in.Volatility)
	out.Split.Recoveries = slices.Clone(in.Split.Recoveries)
	out.SweepFactors = slices.Clone(in.SweepFactors)
	return out
}

// DefaultInput returns an Input pre-filled with the n-C5..n-C10 study case:
// 1000 kmol/h feed, 20% vaporized, 2 atm, n-heptane/n-nonane keys, reflux at
// 1.3 times the minimum.
func DefaultInput() Input {
	return Input{
		Feed: Feed{
			Flow:          1000,
			Composition:   []float64{0.05, 0.10, 0.25, 0.30, 0.30},
			VaporFraction: 0.20,
		},
		Volatility: []float64{3.0, 2.3, 1.8, 1.3, 1.0},
		Split: Split{
			LightKey:   2,
			HeavyKey:   3,
			Recoveries: []float64{0.999, 0.995, 0.60, 0.05, 0.001},
		},
		Pressure:     2.0,
		RefluxFactor: 1.3,
		SweepFactors: []float64{1.1, 1.2, 1.3, 1.5, 2.0},
		Gilliland:    Molokanov,
		Trays:        DefaultTrayParams(),
		Packing:      DefaultPackingParams(),
	}
}

// DefaultTrayParams returns the valve-tray assumptions of the study case.
func DefaultTrayParams() TrayParams {
	return TrayParams{
		TopTemperature:      370, // K at the top
		BottomTemperature:   430, // K at the bottom
		TopLiquidDensity:    650, // kg/m3
		BottomLiquidDensity: 700, // kg/m3
		FloodFraction:       0.75,
		ActiveAreaFraction:  0.80,
		CapacityFactor:      0.15, // m/s
		TraySpacing:         0.5,
		HeightAllowance:     4.0,
	}
}

// DefaultPackingParams returns the 1" Intalox saddle assumptions of the study case.
func DefaultPackingParams() PackingParams {
	return PackingParams{
		Packing:         IntaloxSaddles1,
		TopTemperature:  370,
		LiquidDensity:   630,
		LiquidViscosity: 0.5,
		FloodFraction:   0.70,
		HeightAllowance: 2.0,
	}
}

// SeparationSpec is the product split derived from the feed and recoveries.
// Flows in kmol/h; XD and XB are mole fractions.
type SeparationSpec struct {
	Flow            float64   `json:"flow_kmol_h" yaml:"flow_kmol_h"`
	Composition     []float64 `json:"z" yaml:"z"`
	FeedFlows       []float64 `json:"feed_flows" yaml:"feed_flows"`
	Distillate      float64   `json:"distillate_kmol_h" yaml:"distillate_kmol_h"`
	Bottoms         float64   `json:"bottoms_kmol_h" yaml:"bottoms_kmol_h"`
	DistillateFlows []float64 `json:"distillate_flows" yaml:"distillate_flows"`
	BottomsFlows    []float64 `json:"bottoms_flows" yaml:"bottoms_flows"`
	XD              []float64 `json:"xd" yaml:"xd"`
	XB              []float64 `json:"xb" yaml:"xb"`
	Recoveries      []float64 `json:"recoveries" yaml:"recoveries"`
	LightKey        int       `json:"light_key" yaml:"light_key"`
	HeavyKey        int       `json:"heavy_key" yaml:"heavy_key"`
}

// FUGResult carries the Fenske, Underwood and Gilliland results.
// X and Y are the Gilliland abscissa and ordinate at the operating reflux.
type FUGResult struct {
	Nmin         float64        `json:"nmin" yaml:"nmin"`
	Theta        float64        `json:"theta" yaml:"theta"`
	RRmin        float64        `json:"rr_min" yaml:"rr_min"`
	RefluxFactor float64        `json:"reflux_factor" yaml:"reflux_factor"`
	RR           float64        `json:"rr" yaml:"rr"`
	Model        GillilandModel `json:"gilliland" yaml:"gilliland"`
	X            float64        `json:"x" yaml:"x"`
	Y            float64        `json:"y" yaml:"y"`
	Nteo         float64        `json:"nteo" yaml:"nteo"`
}

// EfficiencyResult carries the O'Connell correction.
type EfficiencyResult struct {
	FeedViscosity float64 `json:"feed_viscosity_cp" yaml:"feed_viscosity_cp"`
	AlphaRel      float64 `json:"alpha_rel" yaml:"alpha_rel"`
	Efficiency    float64 `json:"efficiency" yaml:"efficiency"`
	NReal         float64 `json:"n_real" yaml:"n_real"`
	Trays         int     `json:"trays" yaml:"trays"`
}

// FeedStageResult locates the feed. Stage positions count from the top.
type FeedStageResult struct {
	Ratio                float64 `json:"kirkbride_ratio" yaml:"kirkbride_ratio"`
	NRmin                float64 `json:"nr_min" yaml:"nr_min"`
	NSmin                float64 `json:"ns_min" yaml:"ns_min"`
	NRop                 float64 `json:"nr_op" yaml:"nr_op"`
	NSop                 float64 `json:"ns_op" yaml:"ns_op"`
	FeedStageTheoretical float64 `json:"feed_stage_teo" yaml:"feed_stage_teo"`
	FeedStageReal        float64 `json:"feed_stage_real" yaml:"feed_stage_real"`
	FeedStage            int     `json:"feed_stage" yaml:"feed_stage"`
}

// SectionSizing is the hydraulic sizing of one tray-column section.
// Units: flows kmol/h, molar mass kg/kmol, densities kg/m3, velocities m/s, areas m2.
type SectionSizing struct {
	Name              string            `json:"name" yaml:"name"`
	Liquid            float64           `json:"liquid_kmol_h" yaml:"liquid_kmol_h"`
	Vapor             float64           `json:"vapor_kmol_h" yaml:"vapor_kmol_h"`
	Temperature       types.Temperature `json:"temperature_k" yaml:"temperature_k"`
	VaporMolarMass    float64           `json:"vapor_molar_mass" yaml:"vapor_molar_mass"`
	VaporDensity      float64           `json:"vapor_density" yaml:"vapor_density"`
	LiquidDensity     float64           `json:"liquid_density" yaml:"liquid_density"`
	FloodVelocity     float64           `json:"flood_velocity" yaml:"flood_velocity"`
	OperatingVelocity float64           `json:"operating_velocity" yaml:"operating_velocity"`
	ActiveArea        float64           `json:"active_area_m2" yaml:"active_area_m2"`
	TotalArea         float64           `json:"total_area_m2" yaml:"total_area_m2"`
	Diameter          types.Length      `json:"diameter_m" yaml:"diameter_m"`
}

// TrayColumnSizing is the valve-tray column realization.
type TrayColumnSizing struct {
	Trays        int           `json:"trays" yaml:"trays"`
	ActiveHeight types.Length  `json:"active_height_m" yaml:"active_height_m"`
	TotalHeight  types.Length  `json:"total_height_m" yaml:"total_height_m"`
	Diameter     types.Length  `json:"diameter_m" yaml:"diameter_m"`
	Top          SectionSizing `json:"top" yaml:"top"`
	Bottom       SectionSizing `json:"bottom" yaml:"bottom"`
}

// PackedColumnSizing is the random-packed column realization, sized on the
// top section. Velocities in m/s, area in m2.
type PackedColumnSizing struct {
	Packing           Packing      `json:"packing" yaml:"packing"`
	VaporMolarMass    float64      `json:"vapor_molar_mass" yaml:"vapor_molar_mass"`
	VaporDensity      float64      `json:"vapor_density" yaml:"vapor_density"`
	LiquidDensity     float64      `json:"liquid_density" yaml:"liquid_density"`
	Liquid            float64      `json:"liquid_kmol_h" yaml:"liquid_kmol_h"`
	Vapor             float64      `json:"vapor_kmol_h" yaml:"vapor_kmol_h"`
	FLV               float64      `json:"flv" yaml:"flv"`
	Y                 float64      `json:"y" yaml:"y"`
	FloodVelocity     float64      `json:"flood_velocity" yaml:"flood_velocity"`
	OperatingVelocity float64      `json:"operating_velocity" yaml:"operating_velocity"`
	Area              float64      `json:"area_m2" yaml:"area_m2"`
	Diameter          types.Length `json:"diameter_m" yaml:"diameter_m"`
	HETP              types.Length `json:"hetp_m" yaml:"hetp_m"`
	BedHeight         types.Length `json:"bed_height_m" yaml:"bed_height_m"`
	TotalHeight       types.Length `json:"total_height_m" yaml:"total_height_m"`
}

// SweepRow is one reflux factor of the sensitivity table.
type SweepRow struct {
	Factor      float64      `json:"factor" yaml:"factor"`
	RR          float64      `json:"rr" yaml:"rr"`
	Nteo        float64      `json:"nteo" yaml:"nteo"`
	NReal       float64      `json:"n_real" yaml:"n_real"`
	Trays       int          `json:"trays" yaml:"trays"`
	Diameter    types.Length `json:"diameter_m" yaml:"diameter_m"`
	TotalHeight types.Length `json:"total_height_m" yaml:"total_height_m"`
}

// Project is the result of one Design run. It owns copies of every input
// slice and is not modified after Design returns.
type Project struct {
	Input      Input                 `json:"input" yaml:"input"`
	Components []component.Component `json:"components" yaml:"components"`
	Q          float64               `json:"q" yaml:"q"`
	Spec       SeparationSpec        `json:"spec" yaml:"spec"`
	FUG        FUGResult             `json:"fug" yaml:"fug"`
	Efficiency EfficiencyResult      `json:"efficiency" yaml:"efficiency"`
	FeedStage  FeedStageResult       `json:"feed_stage" yaml:"feed_stage"`
	Trays      TrayColumnSizing      `json:"trays" yaml:"trays"`
	Packing    PackedColumnSizing    `json:"packing" yaml:"packing"`
	Sweep      []SweepRow            `json:"sweep" yaml:"sweep"`
}
