package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ja7ad/distill/pkg/component"
	"github.com/ja7ad/distill/pkg/config"
	"github.com/ja7ad/distill/pkg/distill"
	"github.com/ja7ad/distill/pkg/report"
	"github.com/spf13/cobra"
)

type outputs struct {
	format   string
	csvPath  string
	jsonPath string
	yamlPath string
	htmlPath string
	xlsxPath string
}

func (o *outputs) register(cmd *cobra.Command, def string) {
	cmd.Flags().StringVarP(&o.format, "format", "f", def, "stdout format: table, csv, json, yaml, html")
	cmd.Flags().StringVar(&o.csvPath, "csv", "", "write the sweep rows to a CSV file")
	cmd.Flags().StringVar(&o.jsonPath, "json", "", "write the design to a JSON file")
	cmd.Flags().StringVar(&o.yamlPath, "yaml", "", "write the design to a YAML file")
	cmd.Flags().StringVar(&o.htmlPath, "html", "", "write an HTML report")
	cmd.Flags().StringVar(&o.xlsxPath, "xlsx", "", "write an Excel workbook")
}

// files writes every requested report file.
func (o *outputs) files(p distill.Project, m report.Meta) error {
	for _, out := range []struct {
		path   string
		format report.Format
	}{
		{o.csvPath, report.CSV},
		{o.jsonPath, report.JSON},
		{o.yamlPath, report.YAML},
		{o.htmlPath, report.HTML},
		{o.xlsxPath, report.XLSX},
	} {
		if out.path == "" {
			continue
		}
		if err := writeFile(out.path, out.format, p, m); err != nil {
			return fmt.Errorf("%s: %w", out.path, err)
		}
		slog.Info("wrote report", "path", out.path, "format", out.format)
	}
	return nil
}

func writeFile(path string, format report.Format, p distill.Project, m report.Meta) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.Write(f, format, p, m); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// loadCase resolves the design case: defaults, then environment, then the
// case file, then flags set on the command line.
func loadCase(g *globals, cf *caseFlags) (config.Case, error) {
	c, err := config.LoadCaseOver(g.env.BaseCase(), g.casePath)
	if err != nil {
		return config.Case{}, err
	}
	cf.apply(&c)
	if g.components != "" {
		c.Components = g.components
	}
	return c, nil
}

func loadComponents(path string) ([]component.Component, error) {
	comps, err := component.Load(path)
	if err != nil {
		return nil, fmt.Errorf("component table: %w", err)
	}
	if path == "" {
		slog.Debug("using built-in component table", "components", len(comps))
	} else {
		slog.Debug("loaded component table", "path", path, "components", len(comps))
	}
	return comps, nil
}

func runDesign(g *globals, cf *caseFlags) (distill.Project, config.Case, error) {
	c, err := loadCase(g, cf)
	if err != nil {
		return distill.Project{}, c, err
	}
	comps, err := loadComponents(c.Components)
	if err != nil {
		return distill.Project{}, c, err
	}
	in, err := c.Input()
	if err != nil {
		return distill.Project{}, c, err
	}
	p, err := distill.Design(in, comps)
	if err != nil {
		return distill.Project{}, c, err
	}
	slog.Debug("design",
		"case", c.Name,
		"nmin", p.FUG.Nmin,
		"rr_min", p.FUG.RRmin,
		"nteo", p.FUG.Nteo,
		"trays", p.Efficiency.Trays,
		"feed_stage", p.FeedStage.FeedStage,
	)
	return p, c, nil
}

func designCmd(g *globals) *cobra.Command {
	var o outputs
	cmd := &cobra.Command{
		Use:   "design",
		Short: "Run the full column design",
		Args:  cobra.NoArgs,
	}
	cf := newCaseFlags(cmd.Flags())
	o.register(cmd, "table")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		p, c, err := runDesign(g, cf)
		if err != nil {
			return err
		}
		m := report.NewMeta(c.Name)
		if err := o.files(p, m); err != nil {
			return err
		}
		format, err := report.ParseFormat(o.format)
		if err != nil {
			return err
		}
		if format == report.XLSX {
			return fmt.Errorf("xlsx cannot go to stdout, use --xlsx PATH")
		}
		return report.Write(cmd.OutOrStdout(), format, p, m)
	}
	return cmd
}

func sweepCmd(g *globals) *cobra.Command {
	var o outputs
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Tabulate stage count and column size against the reflux factor",
		Args:  cobra.NoArgs,
	}
	cf := newCaseFlags(cmd.Flags())
	o.register(cmd, "table")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		p, c, err := runDesign(g, cf)
		if err != nil {
			return err
		}
		if err := o.files(p, report.NewMeta(c.Name)); err != nil {
			return err
		}
		format, err := report.ParseFormat(o.format)
		if err != nil {
			return err
		}
		switch format {
		case report.Table:
			return report.WriteSweepTable(cmd.OutOrStdout(), p.Sweep)
		case report.CSV:
			return report.WriteCSV(cmd.OutOrStdout(), p.Sweep)
		default:
			return fmt.Errorf("sweep prints table or csv, got %q", format)
		}
	}
	return cmd
}
