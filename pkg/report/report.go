package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/ja7ad/distill/pkg/distill"
)

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format is an output format.
type Format string

const (
	Table Format = "table"
	CSV   Format = "csv"
	JSON  Format = "json"
	YAML  Format = "yaml"
	HTML  Format = "html"
	XLSX  Format = "xlsx"
)

// Formats lists every supported format.
var Formats = []Format{Table, CSV, JSON, YAML, HTML, XLSX}

// ParseFormat accepts a format name or file extension, case-insensitively.
func ParseFormat(s string) (Format, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	switch s {
	case "", "txt", "text":
		return Table, nil
	case "yml":
		return YAML, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case CSV:
		return "text/csv; charset=utf-8"
	case JSON:
		return "application/json"
	case YAML:
		return "application/yaml"
	case HTML:
		return "text/html; charset=utf-8"
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Extension returns the file extension of f, with the dot.
func (f Format) Extension() string {
	if f == Table {
		return ".txt"
	}
	return "." + string(f)
}

// Meta identifies a report.
type Meta struct {
	ID    string
	Title string
}

// NewMeta returns a Meta with a fresh random ID.
func NewMeta(title string) Meta {
	return Meta{ID: uuid.NewString(), Title: title}
}

// Write renders p to w in format f.
func Write(w io.Writer, f Format, p distill.Project, m Meta) error {
	switch f {
	case Table:
		return WriteTable(w, p)
	case CSV:
		return WriteCSV(w, p.Sweep)
	case JSON:
		return WriteJSON(w, p)
	case YAML:
		return WriteYAML(w, p)
	case HTML:
		return WriteHTML(w, p, m)
	case XLSX:
		return WriteXLSX(w, p, m)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Item is one labelled line of the design summary.
type Item struct {
	Label string
	Value string
	Unit  string
}

// Summary flattens the headline results of p.
func Summary(p distill.Project) []Item {
	name := func(i int) string {
		if i >= 0 && i < len(p.Components) {
			return p.Components[i].Name
		}
		return strconv.Itoa(i)
	}
	f := func(v float64, prec int) string { return strconv.FormatFloat(v, 'f', prec, 64) }

	return []Item{
		{"Feed flow", f(p.Spec.Flow, 2), "kmol/h"},
		{"Feed q", f(p.Q, 3), ""},
		{"Pressure", f(float64(p.Input.Pressure), 3), "atm"},
		{"Light key", name(p.Spec.LightKey), ""},
		{"Heavy key", name(p.Spec.HeavyKey), ""},
		{"Distillate", f(p.Spec.Distillate, 2), "kmol/h"},
		{"Bottoms", f(p.Spec.Bottoms, 2), "kmol/h"},
		{"Nmin", f(p.FUG.Nmin, 3), "stages"},
		{"Underwood theta", f(p.FUG.Theta, 5), ""},
		{"RRmin", f(p.FUG.RRmin, 4), ""},
		{"RR", f(p.FUG.RR, 4), ""},
		{"Gilliland", string(p.FUG.Model), ""},
		{"Nteo", f(p.FUG.Nteo, 2), "stages"},
		{"Feed viscosity", f(p.Efficiency.FeedViscosity, 4), "cP"},
		{"O'Connell efficiency", f(p.Efficiency.Efficiency, 4), ""},
		{"N real", f(p.Efficiency.NReal, 2), "trays"},
		{"Trays", strconv.Itoa(p.Efficiency.Trays), ""},
		{"Feed tray", strconv.Itoa(p.FeedStage.FeedStage), "from top"},
		{"Tray diameter", f(p.Trays.Diameter.Meters(), 3), "m"},
		{"Tray column height", f(p.Trays.TotalHeight.Meters(), 2), "m"},
		{"Packing", p.Packing.Packing.Name, ""},
		{"Packed diameter", f(p.Packing.Diameter.Meters(), 3), "m"},
		{"HETP", f(p.Packing.HETP.Meters(), 4), "m"},
		{"Packed column height", f(p.Packing.TotalHeight.Meters(), 2), "m"},
	}
}

var sweepHeader = []string{"factor", "rr", "nteo", "n_real", "trays", "diameter_m", "total_height_m"}

func sweepRecord(r distill.SweepRow) []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return []string{
		f(r.Factor), f(r.RR), f(r.Nteo), f(r.NReal),
		strconv.Itoa(r.Trays), f(r.Diameter.Meters()), f(r.TotalHeight.Meters()),
	}
}
