package component

import "errors"

var (
	// ErrUnsupported indicates that the table format could not be recognized.
	ErrUnsupported = errors.New("component: unsupported table format")

	// ErrMissingColumn indicates that a required column (index or name) is absent.
	ErrMissingColumn = errors.New("component: missing required column")

	// ErrBadValue indicates that a numeric cell could not be parsed.
	ErrBadValue = errors.New("component: malformed numeric value")

	// ErrEmpty indicates that the table holds no component rows.
	ErrEmpty = errors.New("component: empty table")

	// ErrNoMolarMass indicates that neither the table nor the name fallback
	// provides a molar mass.
	ErrNoMolarMass = errors.New("component: no molar mass")
)
