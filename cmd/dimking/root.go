// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/dimking/puzzle"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the resolved configuration into subcommands.
type app struct {
	v   *viper.Viper
	cfg config
}

func newRootCmd() *cobra.Command {
	a := &app{v: newViper()}
	root := &cobra.Command{
		Use:           "dimking",
		Short:         "N-dimensional polytope generator and puzzle runner",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.v, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg

			return setupLogger(cfg.LogLevel, cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (yaml, toml or json)")
	pf.Int64("seed", 0, "random seed, 0 picks one from the clock")
	pf.Float64("scale", puzzle.DefaultScale, "display scale of the polytope")
	pf.String("format", formatText, "output format: text or json")
	pf.String("log-level", "info", "zerolog level")

	root.AddCommand(newGenerateCmd(a), newShapesCmd(a), newPlayCmd(a))

	return root
}
