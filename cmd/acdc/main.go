package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"acdc/internal/code"
	"acdc/internal/interp"
	"acdc/internal/lexer"
	"acdc/internal/token"
)

var (
	debug  bool
	logger *zap.Logger
)

func main() {
	root := &cobra.Command{
		Use:           "acdc",
		Short:         "acdc is a tiny interpreter for the ac language",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if debug {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			return err
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.AddCommand(runCmd(), compileCmd(), dumpCmd())

	err := root.Execute()
	if err != nil {
		if logger != nil {
			logger.Error("acdc failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Interpret an ac program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			logger.Debug("running program", zap.String("file", args[0]))
			return interp.Run(string(src), cmd.OutOrStdout())
		},
	}
}

func compileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile an ac program to an instruction listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			stmts, err := interp.Program(string(src))
			if err != nil {
				return err
			}
			prog, err := code.Emit(stmts)
			if err != nil {
				return err
			}

			var sb strings.Builder
			for _, in := range prog {
				sb.WriteString(in.String())
				sb.WriteByte('\n')
			}

			out := strings.TrimSuffix(args[0], ".ac") + ".acc"
			if err := os.WriteFile(out, []byte(sb.String()), 0644); err != nil {
				return err
			}

			logger.Info("compiled", zap.String("out", out), zap.Int("instructions", len(prog)))
			return nil
		},
	}
}

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump the token stream and AST of an ac program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			for i, line := range strings.Split(string(src), "\n") {
				toks, err := lexer.Lex(line)
				if err != nil {
					return errors.Wrapf(err, "line %d", i+1)
				}
				if toks[0].Type == token.EOF {
					continue
				}
				fmt.Fprintf(w, "line %d:", i+1)
				for _, t := range toks {
					fmt.Fprintf(w, " %s", t)
				}
				fmt.Fprintln(w)
			}

			stmts, err := interp.Program(string(src))
			if err != nil {
				return err
			}
			spew.Fdump(w, stmts)
			return nil
		},
	}
}
