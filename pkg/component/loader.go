package component

import "fmt"

// Loader reads a component table. Load returns the rows ordered by Sort.
type Loader interface {
	Load() ([]Component, error)
	Close() error
}

// NewLoader returns a Loader implementation chosen by the detected table format.
// - CSV: header-driven reader, Portuguese or English column names.
// - SQLite: reads the components table.
func NewLoader(path string) (Loader, error) {
	f, err := DetectFormat(path)
	if err != nil {
		return nil, fmt.Errorf("loader: detect format: %w", err)
	}

	switch f {
	case CSV:
		return newCSV(path), nil
	case SQLite:
		return newSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}
}

// Load is a convenience that opens path, loads the table and closes the loader.
// An empty path yields Default().
func Load(path string) ([]Component, error) {
	if path == "" {
		return Default(), nil
	}
	l, err := NewLoader(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = l.Close()
	}()
	return l.Load()
}
