// Package component loads the component property table that the column
// design runs against. Row order defines the index of each component in the
// feed composition and volatility vectors, so every loader returns the rows
// sorted by Sort (most volatile first).
//
// Overview
//
//   - Loader interface:
//     Load() ([]Component, error)
//     Close() error
//
//     NewLoader(path) picks a backend with DetectFormat. Load(path) opens,
//     reads and closes in one call; an empty path yields Default().
//
//   - Backends:
//
//   - CSV: one header row, columns matched by name. Both the study sheet
//     names (indice, nome, Tb, MM, alpha_ref, dens_liq, dens_vap,
//     viscosidade, tensao_superficial) and English aliases (index, name,
//     tb, mw, alpha, ...) are accepted. Blank or "nan" cells are unset.
//
//   - SQLite: a components table with the same columns (schema.sql).
//     WriteSQLite creates or replaces it.
//
//   - Errors (errs.go):
//     ErrUnsupported   : neither CSV nor SQLite
//     ErrMissingColumn : no index or name column
//     ErrBadValue      : a numeric cell does not parse
//     ErrEmpty         : no rows
//     ErrNoMolarMass   : MW unset and the name is not a known n-alkane
//
// Example
//
//	comps, err := component.Load("alkanes.csv")
//	if err != nil { log.Fatal(err) }
//	alpha := component.Volatilities(comps)
//	mw, err := component.MolarMasses(comps)
package component
