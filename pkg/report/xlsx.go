package report

import (
	"fmt"
	"io"

	"github.com/ja7ad/distill/pkg/distill"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet    = "Summary"
	componentsSheet = "Components"
	sectionsSheet   = "Sections"
	sweepSheet      = "Sweep"
)

// Workbook builds an excelize workbook with summary, component, section and
// sweep sheets.
func Workbook(p distill.Project, m Meta) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	summary := [][]any{{"Result", "Value", "Unit"}}
	for _, it := range Summary(p) {
		summary = append(summary, []any{it.Label, it.Value, it.Unit})
	}

	components := [][]any{{"Name", "MW", "z", "alpha", "xD", "xB", "Recovery", "D (kmol/h)", "B (kmol/h)"}}
	for i, c := range p.Components {
		components = append(components, []any{
			c.Name, c.MolarMass, p.Spec.Composition[i], p.Input.Volatility[i],
			p.Spec.XD[i], p.Spec.XB[i], p.Spec.Recoveries[i],
			p.Spec.DistillateFlows[i], p.Spec.BottomsFlows[i],
		})
	}

	sections := [][]any{{"Section", "L (kmol/h)", "V (kmol/h)", "T (K)", "MW_V", "rho_V", "rho_L", "u_f (m/s)", "u_op (m/s)", "A active (m2)", "A total (m2)", "D (m)"}}
	for _, s := range []distill.SectionSizing{p.Trays.Top, p.Trays.Bottom} {
		sections = append(sections, []any{
			s.Name, s.Liquid, s.Vapor, float64(s.Temperature), s.VaporMolarMass, s.VaporDensity,
			s.LiquidDensity, s.FloodVelocity, s.OperatingVelocity, s.ActiveArea, s.TotalArea, s.Diameter.Meters(),
		})
	}

	sweep := [][]any{{"Factor", "RR", "Nteo", "N real", "Trays", "D (m)", "H (m)"}}
	for _, r := range p.Sweep {
		sweep = append(sweep, []any{r.Factor, r.RR, r.Nteo, r.NReal, r.Trays, r.Diameter.Meters(), r.TotalHeight.Meters()})
	}

	for _, sh := range []struct {
		name string
		rows [][]any
	}{
		{summarySheet, summary},
		{componentsSheet, components},
		{sectionsSheet, sections},
		{sweepSheet, sweep},
	} {
		if sh.name != summarySheet {
			if _, err := f.NewSheet(sh.name); err != nil {
				return nil, err
			}
		}
		if err := fill(f, sh.name, sh.rows); err != nil {
			return nil, err
		}
		if err := f.SetRowStyle(sh.name, 1, 1, headerStyle); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 26); err != nil {
		return nil, err
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       m.Title,
		Identifier:  m.ID,
		Description: fmt.Sprintf("%d trays, feed tray %d", p.Efficiency.Trays, p.FeedStage.FeedStage),
	}); err != nil {
		return nil, err
	}
	return f, nil
}

func fill(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteXLSX writes the workbook of p to w.
func WriteXLSX(w io.Writer, p distill.Project, m Meta) error {
	f, err := Workbook(p, m)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}
