package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/arith"
)

var errFailed = errors.New("some expressions failed")

func evalCmd() *cobra.Command {
	var (
		inname string
		depth  int
		echo   bool
	)
	cmd := &cobra.Command{
		Use:   "eval [expr...]",
		Short: "Evaluate expressions from arguments, a file, or stdin",
		Long: "Evaluate each argument as an expression. With --in, or with no " +
			"arguments, evaluate each non-blank line of the input instead. " +
			"Arguments such as -5+2 are expressions, not flags.",
		RunE: func(cmd *cobra.Command, args []string) error {
			exprs := args
			in, closer, err := infile(cmd, inname, len(args) == 0)
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}
			if in != nil {
				lines, err := readlines(in)
				if err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
				exprs = append(exprs, lines...)
			}
			return run(cmd.OutOrStdout(), exprs, echo, arith.MaxDepth(depth))
		},
	}
	cmd.Flags().StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	cmd.Flags().IntVar(&depth, "max-depth", arith.DefaultMaxDepth, "deepest parenthesis nesting allowed")
	cmd.Flags().BoolVar(&echo, "echo", false, "print each expression with its result")
	return cmd
}

// run evaluates each expression and writes one line per result.
func run(w io.Writer, exprs []string, echo bool, opts ...arith.Option) error {
	failed := 0
	for _, ex := range exprs {
		if echo {
			fmt.Fprintf(w, "%s = ", strings.TrimSpace(ex))
		}
		v, err := arith.Evaluate(ex, opts...)
		if err != nil {
			slog.Debug("evaluation failed", slog.String("expr", ex), slog.Any("error", err))
			fmt.Fprintf(w, "Error: %v\n", err)
			failed++
			continue
		}
		fmt.Fprintln(w, arith.Format(v))
	}
	if failed > 0 {
		slog.Info("evaluation finished with errors", slog.Int("failed", failed), slog.Int("total", len(exprs)))
		return errFailed
	}
	return nil
}

func infile(cmd *cobra.Command, inname string, std bool) (io.Reader, io.Closer, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	case inname == "-", std:
		return cmd.InOrStdin(), nil, nil
	}
	return nil, nil, nil
}

func readlines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
