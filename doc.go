// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package laxjson implements a scanner and parser for JSON with optional
// JavaScript-style relaxations.
//
// # Configuration
//
// A Config selects which relaxations are accepted. Strict returns a Config for
// plain JSON; Permissive enables all of them:
//
//	Relaxation              | Example
//	----------------------- | ------------------------------
//	AllowUnquotedIdentifier | {foo: 1}
//	AllowTrailingComma      | [1, 2,]  {"a": 1,}
//	AllowSingleQuotes       | {'foo': 'bar'}
//	AllowComments           | // line   /* block /* nested */ */
//
// The TabWidth field sets how many columns a tab advances, so that positions
// in error messages match what an editor displays.
//
// # Scanning
//
// Scan converts a complete input text into a sequence of tokens, the last of
// which always has kind End:
//
//	toks, err := laxjson.Scan(text, laxjson.Permissive())
//	if err != nil {
//	   log.Fatalf("Scan failed: %v", err)
//	}
//
// For step-by-step scanning, construct a Scanner and call its Next method:
//
//	s := laxjson.NewScanner(text, cfg)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token())
//	}
//	if err := s.Err(); err != nil {
//	   log.Fatalf("Scanning failed: %v", err)
//	}
//
// # Parsing
//
// A Parser consumes a token sequence by recursive descent and calls methods on
// a Handler to report the structure of the input. The ast package provides a
// Handler that builds a value tree, and is the usual entry point:
//
//	v, err := ast.Parse(text, laxjson.Strict())
//
// Every failure, lexical or structural, is reported as a *SyntaxError giving
// the 1-based line and column of the offending input.
package laxjson
