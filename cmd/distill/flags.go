package main

import (
	"github.com/ja7ad/distill/pkg/config"
	"github.com/spf13/pflag"
)

// caseFlags binds design-case fields to flags. Only flags set on the
// command line are copied onto the loaded case.
type caseFlags struct {
	fs  *pflag.FlagSet
	set map[string]func(*config.Case)
}

func newCaseFlags(fs *pflag.FlagSet) *caseFlags {
	cf := &caseFlags{fs: fs, set: make(map[string]func(*config.Case))}
	d := config.DefaultCase()

	// feed
	cf.float("flow", func(c *config.Case) *float64 { return &c.Feed.Flow }, d.Feed.Flow, "feed flow (kmol/h)")
	cf.floats("z", func(c *config.Case) *[]float64 { return &c.Feed.Composition }, d.Feed.Composition, "feed mole fractions, normalized before use")
	cf.float("vapor-fraction", func(c *config.Case) *float64 { return &c.Feed.VaporFraction }, d.Feed.VaporFraction, "vaporized fraction of the feed (q = 1 - value)")

	// split
	cf.int("lk", func(c *config.Case) *int { return &c.Split.LightKey }, d.Split.LightKey, "light key index (zero-based)")
	cf.int("hk", func(c *config.Case) *int { return &c.Split.HeavyKey }, d.Split.HeavyKey, "heavy key index (zero-based)")
	cf.float("lk-recovery", func(c *config.Case) *float64 { return &c.Split.LightKeyRecovery }, d.Split.LightKeyRecovery, "light key distillate recovery; setting a key recovery drops the per-component recoveries")
	cf.float("hk-recovery", func(c *config.Case) *float64 { return &c.Split.HeavyKeyRecovery }, d.Split.HeavyKeyRecovery, "heavy key distillate recovery")
	cf.floats("recoveries", func(c *config.Case) *[]float64 { return &c.Split.Recoveries }, d.Split.Recoveries, "distillate recovery of every component")

	// operation
	cf.float("pressure", func(c *config.Case) *float64 { return &c.Operation.Pressure }, d.Operation.Pressure, "column pressure (atm)")
	cf.floats("alpha", func(c *config.Case) *[]float64 { return &c.Operation.Volatility }, d.Operation.Volatility, "relative volatilities, one per component")
	cf.float("reflux-factor", func(c *config.Case) *float64 { return &c.Operation.RefluxFactor }, d.Operation.RefluxFactor, "operating reflux as a multiple of RRmin")
	cf.floats("sweep", func(c *config.Case) *[]float64 { return &c.Operation.SweepFactors }, d.Operation.SweepFactors, "reflux factors of the sensitivity sweep")
	cf.string("gilliland", func(c *config.Case) *string { return &c.Operation.Gilliland }, d.Operation.Gilliland, "Gilliland correlation: molokanov or eduljee")
	cf.float("feed-viscosity", func(c *config.Case) *float64 { return &c.Operation.FeedViscosity }, d.Operation.FeedViscosity, "feed liquid viscosity (cP), 0 to estimate from the table")

	// trays
	cf.float("top-temp", func(c *config.Case) *float64 { return &c.Trays.TopTemperature }, d.Trays.TopTemperature, "top temperature (K)")
	cf.float("bottom-temp", func(c *config.Case) *float64 { return &c.Trays.BottomTemperature }, d.Trays.BottomTemperature, "bottom temperature (K)")
	cf.float("top-rho", func(c *config.Case) *float64 { return &c.Trays.TopLiquidDensity }, d.Trays.TopLiquidDensity, "top liquid density (kg/m3)")
	cf.float("bottom-rho", func(c *config.Case) *float64 { return &c.Trays.BottomLiquidDensity }, d.Trays.BottomLiquidDensity, "bottom liquid density (kg/m3)")
	cf.float("flood", func(c *config.Case) *float64 { return &c.Trays.FloodFraction }, d.Trays.FloodFraction, "tray design fraction of flooding")
	cf.float("active-area", func(c *config.Case) *float64 { return &c.Trays.ActiveAreaFraction }, d.Trays.ActiveAreaFraction, "active fraction of the tray area")
	cf.float("capacity", func(c *config.Case) *float64 { return &c.Trays.CapacityFactor }, d.Trays.CapacityFactor, "Souders-Brown capacity factor (m/s)")
	cf.float("spacing", func(c *config.Case) *float64 { return &c.Trays.TraySpacing }, d.Trays.TraySpacing, "tray spacing (m)")
	cf.float("tray-allowance", func(c *config.Case) *float64 { return &c.Trays.HeightAllowance }, d.Trays.HeightAllowance, "extra tray column height (m)")

	// packing
	cf.string("packing", func(c *config.Case) *string { return &c.Packing.Type }, d.Packing.Type, "packing catalog key")
	cf.float("pack-temp", func(c *config.Case) *float64 { return &c.Packing.TopTemperature }, d.Packing.TopTemperature, "packed column top temperature (K)")
	cf.float("pack-rho", func(c *config.Case) *float64 { return &c.Packing.LiquidDensity }, d.Packing.LiquidDensity, "packed column liquid density (kg/m3)")
	cf.float("pack-mu", func(c *config.Case) *float64 { return &c.Packing.LiquidViscosity }, d.Packing.LiquidViscosity, "packed column liquid viscosity (cP)")
	cf.float("pack-flood", func(c *config.Case) *float64 { return &c.Packing.FloodFraction }, d.Packing.FloodFraction, "packing design fraction of flooding")
	cf.float("pack-allowance", func(c *config.Case) *float64 { return &c.Packing.HeightAllowance }, d.Packing.HeightAllowance, "extra packed column height (m)")

	return cf
}

func (cf *caseFlags) float(name string, dst func(*config.Case) *float64, def float64, usage string) {
	v := cf.fs.Float64(name, def, usage)
	cf.set[name] = func(c *config.Case) { *dst(c) = *v }
}

func (cf *caseFlags) floats(name string, dst func(*config.Case) *[]float64, def []float64, usage string) {
	v := cf.fs.Float64Slice(name, def, usage)
	cf.set[name] = func(c *config.Case) { *dst(c) = append([]float64(nil), *v...) }
}

func (cf *caseFlags) int(name string, dst func(*config.Case) *int, def int, usage string) {
	v := cf.fs.Int(name, def, usage)
	cf.set[name] = func(c *config.Case) { *dst(c) = *v }
}

func (cf *caseFlags) string(name string, dst func(*config.Case) *string, def string, usage string) {
	v := cf.fs.String(name, def, usage)
	cf.set[name] = func(c *config.Case) { *dst(c) = *v }
}

// apply copies every flag changed on the command line onto c.
func (cf *caseFlags) apply(c *config.Case) {
	keyMode := false
	cf.fs.Visit(func(f *pflag.Flag) {
		if set, ok := cf.set[f.Name]; ok {
			set(c)
		}
		if f.Name == "lk-recovery" || f.Name == "hk-recovery" {
			keyMode = true
		}
	})
	if keyMode && !cf.fs.Changed("recoveries") {
		c.Split.Recoveries = nil
	}
}
