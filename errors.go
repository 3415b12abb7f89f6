// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package laxjson

import "fmt"

// SyntaxError is the concrete type of errors reported by the scanner and the
// parser. Every failure, lexical or structural, is reported as a SyntaxError.
type SyntaxError struct {
	Location LineCol // the position of the offending input
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

func syntaxErrorf(lc LineCol, err error, msg string, args ...any) *SyntaxError {
	return &SyntaxError{
		Location: lc,
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	}
}
