package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/arith"
	"github.com/zephyrtronium/arith/internal/calc"
	"github.com/zephyrtronium/arith/internal/tui"
)

func tuiCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run an interactive calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := calc.New(
				calc.WithLogger(slog.Default().Handler()),
				calc.WithMaxDepth(depth),
			)
			return tui.Run(s)
		},
	}
	cmd.Flags().IntVar(&depth, "max-depth", arith.DefaultMaxDepth, "deepest parenthesis nesting allowed")
	return cmd
}
