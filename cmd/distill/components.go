package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/ja7ad/distill/pkg/component"
	"github.com/spf13/cobra"
)

func componentsCmd(g *globals) *cobra.Command {
	var (
		asJSON     bool
		sqlitePath string
	)
	cmd := &cobra.Command{
		Use:   "components",
		Short: "Print the component table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := g.components
			if path == "" {
				path = g.env.Components
			}
			comps, err := loadComponents(path)
			if err != nil {
				return err
			}

			if sqlitePath != "" {
				if err := component.WriteSQLite(sqlitePath, comps); err != nil {
					return err
				}
				slog.Info("wrote component table", "path", sqlitePath, "components", len(comps))
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(comps)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tNAME\tTb (K)\tMW\tALPHA\tRHO_L\tMU (cP)")
			fmt.Fprintln(tw, "-\t----\t------\t--\t-----\t-----\t-------")
			for i, c := range comps {
				mw, err := component.MolarMassOf(c)
				mwText := fmt.Sprintf("%.2f", mw)
				if err != nil {
					mwText = "?"
				}
				fmt.Fprintf(tw, "%d\t%s\t%.1f\t%s\t%.3f\t%.0f\t%.3f\n",
					i, c.Name, c.Tb, mwText, c.AlphaRef, c.LiquidDensity, c.Viscosity)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "also write the table to a SQLite database")
	return cmd
}
