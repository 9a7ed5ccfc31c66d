package component

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// csvLoader reads a header-driven CSV table. Column names follow the Portuguese
// study sheet (indice, nome, Tb, MM, alpha_ref, dens_liq, dens_vap, viscosidade,
// tensao_superficial); English aliases are accepted.
type csvLoader struct {
	path string
}

func newCSV(path string) *csvLoader { return &csvLoader{path: path} }

func (l *csvLoader) Close() error { return nil }

func (l *csvLoader) Load() ([]Component, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

var columnAliases = map[string]string{
	"indice":             "index",
	"index":              "index",
	"nome":               "name",
	"name":               "name",
	"tb":                 "tb",
	"mm":                 "mm",
	"mw":                 "mm",
	"molar_mass":         "mm",
	"alpha_ref":          "alpha",
	"alpha":              "alpha",
	"dens_liq":           "rho_l",
	"liquid_density":     "rho_l",
	"dens_vap":           "rho_v",
	"vapor_density":      "rho_v",
	"viscosidade":        "mu",
	"viscosity":          "mu",
	"tensao_superficial": "sigma",
	"surface_tension":    "sigma",
}

// ReadCSV parses a component table from r and returns it ordered by Sort.
func ReadCSV(r io.Reader) ([]Component, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := map[string]int{}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if canon, ok := columnAliases[key]; ok {
			cols[canon] = i
		}
	}
	if _, ok := cols["index"]; !ok {
		return nil, fmt.Errorf("%w: indice", ErrMissingColumn)
	}
	if _, ok := cols["name"]; !ok {
		return nil, fmt.Errorf("%w: nome", ErrMissingColumn)
	}

	var comps []Component
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		if blankRecord(rec) {
			continue
		}

		cell := func(key string) string {
			i, ok := cols[key]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		idx, err := strconv.Atoi(cell("index"))
		if err != nil {
			// indices are sometimes exported as floats ("3.0")
			fv, ferr := strconv.ParseFloat(cell("index"), 64)
			if ferr != nil {
				return nil, fmt.Errorf("%w: line %d indice %q", ErrBadValue, line, cell("index"))
			}
			idx = int(fv)
		}

		c := Component{Index: idx, Name: cell("name")}
		fields := []struct {
			key string
			dst *float64
		}{
			{"tb", &c.Tb},
			{"mm", &c.MolarMass},
			{"alpha", &c.AlphaRef},
			{"rho_l", &c.LiquidDensity},
			{"rho_v", &c.VaporDensity},
			{"mu", &c.Viscosity},
			{"sigma", &c.SurfaceTension},
		}
		for _, fd := range fields {
			v, err := optionalFloat(cell(fd.key))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %s", ErrBadValue, line, fd.key)
			}
			*fd.dst = v
		}
		comps = append(comps, c)
	}

	if len(comps) == 0 {
		return nil, ErrEmpty
	}
	Sort(comps)
	return comps, nil
}

// optionalFloat parses s; blank and NaN cells are unset (zero).
func optionalFloat(s string) (float64, error) {
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

func blankRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
