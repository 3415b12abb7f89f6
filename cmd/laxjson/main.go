// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program laxjson checks and converts JSON documents, optionally accepting
// the relaxed syntax of JavaScript object literals.
//
// Usage:
//
//	laxjson [flags] [file ...]
//
// With no files, laxjson reads a single document from stdin. Each input is
// parsed and written to stdout in the selected output format. Syntax errors
// are reported with the file name, line, and column.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("laxjson")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "laxjson [file ...]",
		Short: "Check and convert relaxed JSON documents",
		Long: `Parse JSON documents and write them to stdout.

By default the input must be strict JSON. The relaxations accepted by
JavaScript object literals can be enabled one at a time, or all at once
with --js:

  --comments         line and (nested) block comments
  --trailing-commas  a comma after the last element or member
  --single-quotes    strings delimited by single quotes
  --unquoted-keys    object keys written as bare identifiers

With no file arguments, a single document is read from stdin.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(opts.verbose, nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.runner(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				if opts.watch {
					return errWatchStdin
				}
				return r.processReader("<stdin>", cmd.InOrStdin())
			}
			if err := r.processFiles(args); err != nil && !opts.watch {
				return err
			}
			if opts.watch {
				return r.watch(cmd.Context(), args)
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.BoolVar(&opts.js, "js", false, "enable all relaxations")
	fs.BoolVar(&opts.comments, "comments", false, "allow line and block comments")
	fs.BoolVar(&opts.trailingCommas, "trailing-commas", false, "allow trailing commas in arrays and objects")
	fs.BoolVar(&opts.singleQuotes, "single-quotes", false, "allow single-quoted strings")
	fs.BoolVar(&opts.unquotedKeys, "unquoted-keys", false, "allow unquoted identifiers as object keys")
	fs.IntVar(&opts.tabWidth, "tab-width", 0, "columns per tab in error locations (0 means default)")
	fs.IntVar(&opts.maxDepth, "max-depth", 0, "maximum nesting depth (0 means default)")
	fs.StringVarP(&opts.format, "format", "f", "json", "output format (json, yaml, toml)")
	fs.BoolVar(&opts.tokens, "tokens", false, "print the token stream instead of the value")
	fs.BoolVarP(&opts.watch, "watch", "w", false, "reprocess files when they change")
	cmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity")

	return cmd
}
