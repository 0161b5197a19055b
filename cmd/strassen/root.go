// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strassen/strassen"
)

// newRootCmd builds the command with its own flag set so tests can run it
// repeatedly.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := defaultConfig()
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "strassen <path> <type> [print]",
		Short: "Multiply two square integer matrices with a numbered strategy",
		Long: "Reads matrices A and B from <path> (\"n n\" header followed by n*n integers, twice),\n" +
			"multiplies them with strategy <type> and prints the elapsed time.\n\nStrategies:\n" +
			presetList(),
		Args:         cobra.RangeArgs(2, 3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			eff := defaultConfig()
			if cfgPath != "" {
				if err := loadConfig(cfgPath, &eff); err != nil {
					return err
				}
			}
			flags := cmd.Flags()
			if flags.Changed("print") {
				eff.Print = cfg.Print
			}
			if flags.Changed("threshold") {
				eff.Threshold = cfg.Threshold
			}
			if flags.Changed("log-level") {
				eff.LogLevel = cfg.LogLevel
			}

			code, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: type %q", strassen.ErrUnknownStrategy, args[1])
			}
			if len(args) == 3 {
				eff.Print = args[2] == "1"
			}
			if err = eff.validate(); err != nil {
				return err
			}
			lvl, _ := eff.level()
			log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

			return run(stdout, log, args[0], code, eff)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolVar(&cfg.Print, "print", cfg.Print, "print the product")
	flags.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "recursion cutoff size for the keep-strassen strategies")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	flags.StringVar(&cfgPath, "config", "", "YAML file with print, threshold and log_level")

	return cmd
}

func presetList() string {
	var b strings.Builder
	for _, p := range strassen.Presets() {
		fmt.Fprintf(&b, "  %d  %s\n", p.Code, p.Name)
	}

	return b.String()
}
