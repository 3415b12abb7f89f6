// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package laxjson

// Default settings used when the corresponding Config field is not positive.
const (
	DefaultTabWidth = 4
	DefaultMaxDepth = 10000
)

// Config selects which relaxations of strict JSON syntax are accepted by the
// scanner and parser. A zero Config is strict JSON with default settings.
// The scanner and parser never modify a Config.
type Config struct {
	// Bare identifiers are permitted as object keys, as in {foo: 1}.
	AllowUnquotedIdentifier bool

	// A comma immediately before a closing "}" or "]" is tolerated.
	AllowTrailingComma bool

	// Strings may be delimited by single quotes ('...') as well as double.
	AllowSingleQuotes bool

	// Line comments (// ...) and block comments (/* ... */) are skipped.
	// Block comments may nest.
	AllowComments bool

	// The number of columns a tab character advances when reporting positions.
	// If TabWidth <= 0, DefaultTabWidth is used.
	TabWidth int

	// The maximum nesting depth of objects and arrays.
	// If MaxDepth <= 0, DefaultMaxDepth is used.
	MaxDepth int
}

// Strict returns a Config that accepts only strict JSON.
func Strict() Config { return Config{TabWidth: DefaultTabWidth} }

// Permissive returns a Config that enables all the JavaScript-style
// relaxations: unquoted keys, trailing commas, single quotes, and comments.
func Permissive() Config {
	return Config{
		AllowUnquotedIdentifier: true,
		AllowTrailingComma:      true,
		AllowSingleQuotes:       true,
		AllowComments:           true,
		TabWidth:                DefaultTabWidth,
	}
}

func (c Config) tabWidth() int {
	if c.TabWidth <= 0 {
		return DefaultTabWidth
	}
	return c.TabWidth
}

func (c Config) maxDepth() int {
	if c.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return c.MaxDepth
}
