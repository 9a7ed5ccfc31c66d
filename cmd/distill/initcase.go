package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ja7ad/distill/pkg/config"
	"github.com/spf13/cobra"
)

func initCaseCmd(g *globals) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-case [PATH]",
		Short: "Write the default design case to a TOML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "case.toml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s exists, use --force to overwrite", path)
			}
			if err := config.SaveCase(path, g.env.BaseCase()); err != nil {
				return err
			}
			slog.Info("wrote case", "path", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
