package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ja7ad/distill/pkg/distill"
	"gopkg.in/yaml.v3"
)

// WriteTable prints the summary, the section sizing and the sweep as
// aligned text tables.
func WriteTable(w io.Writer, p distill.Project) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "RESULT\tVALUE\tUNIT")
	fmt.Fprintln(tw, "------\t-----\t----")
	for _, it := range Summary(p) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", it.Label, it.Value, it.Unit)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "SECTION\tL (kmol/h)\tV (kmol/h)\tMW_V\trho_V\tu_f (m/s)\tu_op (m/s)\tA (m2)\tD (m)")
	fmt.Fprintln(tw, "-------\t----------\t----------\t----\t-----\t---------\t----------\t------\t-----")
	for _, s := range []distill.SectionSizing{p.Trays.Top, p.Trays.Bottom} {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\n",
			s.Name, s.Liquid, s.Vapor, s.VaporMolarMass, s.VaporDensity,
			s.FloodVelocity, s.OperatingVelocity, s.TotalArea, s.Diameter.Meters())
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if len(p.Sweep) > 0 {
		fmt.Fprintln(w)
		return WriteSweepTable(w, p.Sweep)
	}
	return nil
}

// WriteSweepTable prints the sweep rows as an aligned text table.
func WriteSweepTable(w io.Writer, rows []distill.SweepRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FACTOR\tRR\tNteo\tN_real\tTRAYS\tD (m)\tH (m)")
	fmt.Fprintln(tw, "------\t--\t----\t------\t-----\t-----\t-----")
	for _, r := range rows {
		fmt.Fprintf(tw, "%.2f\t%.3f\t%.2f\t%.2f\t%d\t%.3f\t%.2f\n",
			r.Factor, r.RR, r.Nteo, r.NReal, r.Trays, r.Diameter.Meters(), r.TotalHeight.Meters())
	}
	return tw.Flush()
}

// WriteCSV writes the sweep rows with a header line.
func WriteCSV(w io.Writer, rows []distill.SweepRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(sweepHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(sweepRecord(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the whole project as indented JSON.
func WriteJSON(w io.Writer, p distill.Project) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// WriteYAML writes the whole project as YAML.
func WriteYAML(w io.Writer, p distill.Project) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}
