// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/creachadair/laxjson"
	"github.com/creachadair/laxjson/ast"
	"github.com/pkg/errors"
)

var errWatchStdin = errors.New("--watch requires at least one file argument")

// options are the settings from the command line.
type options struct {
	js             bool
	comments       bool
	trailingCommas bool
	singleQuotes   bool
	unquotedKeys   bool
	tabWidth       int
	maxDepth       int
	format         string
	tokens         bool
	watch          bool
	verbose        int
}

// config returns the parser configuration selected by o.
func (o options) config() laxjson.Config {
	cfg := laxjson.Strict()
	if o.js {
		cfg = laxjson.Permissive()
	}
	cfg.AllowComments = cfg.AllowComments || o.comments
	cfg.AllowTrailingComma = cfg.AllowTrailingComma || o.trailingCommas
	cfg.AllowSingleQuotes = cfg.AllowSingleQuotes || o.singleQuotes
	cfg.AllowUnquotedIdentifier = cfg.AllowUnquotedIdentifier || o.unquotedKeys
	if o.tabWidth > 0 {
		cfg.TabWidth = o.tabWidth
	}
	if o.maxDepth > 0 {
		cfg.MaxDepth = o.maxDepth
	}
	return cfg
}

func (o options) runner(w io.Writer) (*runner, error) {
	enc, ok := encoders[o.format]
	if !ok {
		return nil, errors.Errorf("unknown output format %q", o.format)
	}
	return &runner{cfg: o.config(), tokens: o.tokens, encode: enc, out: w}, nil
}

// A runner processes input documents and writes the results to out.
type runner struct {
	cfg    laxjson.Config
	tokens bool
	encode encoder
	out    io.Writer
}

// processFiles processes each of the named files in order. It reports the
// first error, but continues with the remaining files.
func (r *runner) processFiles(paths []string) error {
	var first error
	for _, path := range paths {
		if err := r.processFile(path); err != nil {
			log.Errorf("%v", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

func (r *runner) processFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer f.Close()
	return r.processReader(path, f)
}

func (r *runner) processReader(name string, rd io.Reader) error {
	data, err := io.ReadAll(rd)
	if err != nil {
		return errors.Wrapf(err, "read %s", name)
	}
	text := string(data)
	log.Debugf("read %d bytes from %s", len(text), name)

	toks, err := laxjson.Scan(text, r.cfg)
	if err != nil {
		return errors.Wrap(err, name)
	}
	if r.tokens {
		return r.printTokens(toks)
	}

	v, err := ast.ParseTokens(toks, r.cfg)
	if err != nil {
		return errors.Wrap(err, name)
	}
	log.Infof("parsed %s (%d tokens)", name, len(toks))
	return r.encode(r.out, v)
}

func (r *runner) printTokens(toks []laxjson.Token) error {
	tw := tabwriter.NewWriter(r.out, 4, 8, 1, ' ', 0)
	for _, tok := range toks {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", tok.LineCol, tok.Kind, tok.Lexeme)
	}
	return tw.Flush()
}
