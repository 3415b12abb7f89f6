// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package laxjson

// Kind is the type of a lexical token.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid    Kind = iota // invalid token
	LBrace                 // left brace "{"
	RBrace                 // right brace "}"
	Colon                  // colon ":"
	Comma                  // comma ","
	LSquare                // left square bracket "["
	RSquare                // right square bracket "]"
	String                 // quoted string
	Number                 // number
	Identifier             // unquoted identifier
	Null                   // constant: null
	True                   // constant: true
	False                  // constant: false
	End                    // end of input
)

var kindStr = [...]string{
	Invalid:    "invalid token",
	LBrace:     `"{"`,
	RBrace:     `"}"`,
	Colon:      `":"`,
	Comma:      `","`,
	LSquare:    `"["`,
	RSquare:    `"]"`,
	String:     "string",
	Number:     "number",
	Identifier: "identifier",
	Null:       "null",
	True:       "true",
	False:      "false",
	End:        "end of input",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// keywords maps the text of each constant to its token kind.
var keywords = map[string]Kind{
	"null":  Null,
	"true":  True,
	"false": False,
}

// A Token is a single lexical unit of the input.
// Tokens are immutable once produced by the scanner.
type Token struct {
	Kind     Kind
	Lexeme   string // the exact source text of the token, quotes included
	Location        // the location of the first character of the token

	// For String and Number tokens, the decoded value. Otherwise nil.
	Literal Literal
}

func (t Token) String() string {
	if t.Kind == End || t.Lexeme == "" {
		return t.Kind.String()
	}
	return t.Kind.String() + " " + t.Lexeme
}

// A Literal is the decoded value carried by a String or Number token.
// The concrete type is StringLiteral or NumberLiteral.
type Literal interface{ isLiteral() }

// StringLiteral is the unescaped content of a string token.
type StringLiteral string

// NumberLiteral is the parsed value of a number token.
type NumberLiteral float64

func (StringLiteral) isLiteral() {}
func (NumberLiteral) isLiteral() {}
