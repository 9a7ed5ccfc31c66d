package main

import (
	"log/slog"
	"os"

	"github.com/ja7ad/distill/pkg/config"
	"github.com/spf13/cobra"
)

type globals struct {
	components string
	casePath   string
	logLevel   string
	env        config.Env
}

func main() {
	g := &globals{env: config.LoadEnv()}

	root := &cobra.Command{
		Use:   "distill",
		Short: "Shortcut design of multicomponent distillation columns",
		Long: `The distill tool designs a multicomponent distillation column with the
Fenske-Underwood-Gilliland shortcut method, corrects the stage count with the
O'Connell tray efficiency, places the feed with the Kirkbride equation and
sizes both a valve-tray and a random-packed column.

Inputs come from flags, a TOML case file (--case) and DISTILL_* environment
variables, in that order of precedence.

Examples:
  distill design
  distill design --case column.toml --reflux-factor 1.5 --xlsx out/column.xlsx
  distill sweep --sweep 1.05,1.1,1.2,1.5,2,3 --format csv
  distill components --components table.csv --sqlite table.db
  distill serve --addr :8080`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.ParseLevel(g.logLevel)})
			slog.SetDefault(slog.New(h))
		},
	}

	root.PersistentFlags().StringVar(&g.components, "components", "", "component table (.csv or .db); built-in n-alkanes when empty")
	root.PersistentFlags().StringVar(&g.casePath, "case", g.env.Case, "TOML design case file")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", g.env.LogLevel, "log level: debug, info, warn, error")

	root.AddCommand(
		designCmd(g),
		sweepCmd(g),
		componentsCmd(g),
		serveCmd(g),
		initCaseCmd(g),
	)

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
