// Package distill designs a multicomponent distillation column with
// shortcut methods.
//
// The pipeline is a chain of pure steps, each also usable on its own:
//
//	Normalize       feed composition to mole fractions
//	Specify         distillate and bottoms from key recoveries
//	SolveFUG        Fenske Nmin, Underwood RRmin, Gilliland Nteo
//	Efficiency      O'Connell correction to real trays
//	LocateFeedStage Kirkbride split of the stages
//	SizeTrays       valve-tray diameter and height (Souders-Brown)
//	SizePacking     random-packed diameter and height (Leva)
//	Sweep           stage count and size over a range of reflux factors
//
// Design runs all of them and returns a Project. No step logs or keeps
// state; every error wraps one of the package sentinels.
package distill
