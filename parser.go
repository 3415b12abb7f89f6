// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package laxjson

import (
	"io"

	"github.com/creachadair/mds/mapset"
)

// A Handler handles events from parsing a token sequence. If a method reports
// an error, parsing stops and that error is returned to the caller.
// The parser ensures objects and arrays are correctly balanced.
type Handler interface {
	// Begin a new object, whose open brace is tok.
	BeginObject(tok Token) error

	// End the most-recently-opened object, whose close brace is tok.
	EndObject(tok Token) error

	// Begin a new array, whose open bracket is tok.
	BeginArray(tok Token) error

	// End the most-recently-opened array, whose close bracket is tok.
	EndArray(tok Token) error

	// Begin a new object member with the given key. The key is already
	// decoded; tok is the string or identifier token it came from.
	BeginMember(key string, tok Token) error

	// End the current object member. The tok is the first token after the
	// member's value (either Comma or RBrace in well-formed input).
	EndMember(tok Token) error

	// Report a literal value. The type of the value can be recovered from the
	// kind of tok; String and Number tokens carry their decoded Literal.
	Value(tok Token) error

	// EndOfInput reports the end of the token sequence.
	EndOfInput(tok Token)
}

// A Parser is a recursive-descent parser that consumes a sequence of tokens
// and delivers events to a Handler corresponding with the structure of the
// input. A Parser is not safe for concurrent use; use one Parser per input.
type Parser struct {
	toks  []Token
	cfg   Config
	cur   int // index of the next unconsumed token
	depth int // current nesting depth of objects and arrays
}

// NewParser constructs a Parser that consumes toks, which should be the output
// of Scan with the same cfg. The trailing-comma and depth settings of cfg are
// applied by the parser.
func NewParser(toks []Token, cfg Config) *Parser { return &Parser{toks: toks, cfg: cfg} }

func (p *Parser) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		switch err := perr.(type) {
		case *SyntaxError:
			*errp = err
		case handlerError:
			*errp = err.error
		default:
			panic(perr)
		}
	}
}

// Parse parses a single value and requires that it be followed by the end of
// the input. In case of a syntax error, the returned error has type
// [*SyntaxError].
func (p *Parser) Parse(h Handler) (err error) {
	defer p.recoverParseError(&err)

	p.value(h)
	if tok := p.peek(); tok.Kind != End {
		p.syntaxError(tok, "unexpected %v after value", tok.Kind)
	}
	h.EndOfInput(p.peek())
	return nil
}

// ParseOne parses the next value from the token sequence and delivers events
// to h until the value is complete or an error occurs. If no further value is
// available, ParseOne returns io.EOF. In case of a syntax error, the returned
// error has type [*SyntaxError].
func (p *Parser) ParseOne(h Handler) (err error) {
	defer p.recoverParseError(&err)

	if p.isAtEnd() {
		h.EndOfInput(p.peek())
		return io.EOF
	}
	p.value(h)
	return nil
}

// value := object | array | literal
func (p *Parser) value(h Handler) {
	switch p.peek().Kind {
	case LBrace:
		p.object(h)
	case LSquare:
		p.array(h)
	default:
		p.literal(h)
	}
}

// object := '{' ( property (',' property)* [','] )? '}'
// Precondition: the next token is LBrace.
func (p *Parser) object(h Handler) {
	open := p.advance()
	p.enter(open)
	p.checkError(h.BeginObject(open))

	keys := mapset.New[string]()
	var hadComma bool
	for !p.at(RBrace) && !p.isAtEnd() {
		if len(keys) != 0 && !hadComma {
			p.syntaxError(p.peek(), "expected ',' before next property in object")
		}

		// property := identifier ':' value
		key, ktok := p.key()
		if keys.Has(key) {
			p.syntaxError(ktok, "duplicate key %q found in object", key)
		}
		keys.Add(key)
		p.checkError(h.BeginMember(key, ktok))
		p.consume(Colon, "expected ':' after key")
		p.value(h)
		p.checkError(h.EndMember(p.peek()))

		hadComma = p.match(Comma)
	}
	if hadComma && !p.cfg.AllowTrailingComma && !p.isAtEnd() {
		p.syntaxError(p.previous(), "trailing commas are not allowed")
	}

	end := p.consume(RBrace, "expected '}' at the end of an object")
	p.leave()
	p.checkError(h.EndObject(end))
}

// array := '[' ( value (',' value)* [','] )? ']'
// Precondition: the next token is LSquare.
func (p *Parser) array(h Handler) {
	open := p.advance()
	p.enter(open)
	p.checkError(h.BeginArray(open))

	var n int
	var hadComma bool
	for !p.at(RSquare) && !p.isAtEnd() {
		if n != 0 && !hadComma {
			p.syntaxError(p.peek(), "expected ',' before next value in array")
		}

		p.value(h)
		n++

		hadComma = p.match(Comma)
	}
	if hadComma && !p.cfg.AllowTrailingComma && !p.isAtEnd() {
		p.syntaxError(p.previous(), "trailing commas are not allowed")
	}

	end := p.consume(RSquare, "expected ']' at the end of an array")
	p.leave()
	p.checkError(h.EndArray(end))
}

// key := Identifier | String
//
// Identifier tokens only occur if the scanner allowed them.
func (p *Parser) key() (string, Token) {
	tok := p.peek()
	switch lit := tok.Literal.(type) {
	case nil:
		if tok.Kind == Identifier {
			p.advance()
			return tok.Lexeme, tok
		}
	case StringLiteral:
		if tok.Kind == String {
			p.advance()
			return string(lit), tok
		}
	}
	p.syntaxError(tok, "expected key for key value pair, got %v", tok.Kind)
	return "", tok
}

// literal := 'null' | 'true' | 'false' | String | Number
func (p *Parser) literal(h Handler) {
	tok := p.peek()
	switch tok.Kind {
	case Null, True, False:
		// OK
	case String, Number:
		if !hasLiteral(tok) {
			p.syntaxError(tok, "malformed %v token %q", tok.Kind, tok.Lexeme)
		}
	default:
		p.syntaxError(tok, "expected value, got %v", tok.Kind)
	}
	p.advance()
	p.checkError(h.Value(tok))
}

// hasLiteral reports whether tok carries a decoded literal of the type
// matching its kind.
func hasLiteral(tok Token) bool {
	switch tok.Literal.(type) {
	case StringLiteral:
		return tok.Kind == String
	case NumberLiteral:
		return tok.Kind == Number
	default:
		return false
	}
}

func (p *Parser) enter(tok Token) {
	p.depth++
	if limit := p.cfg.maxDepth(); p.depth > limit {
		p.syntaxError(tok, "nesting depth exceeds %d", limit)
	}
}

func (p *Parser) leave() { p.depth-- }

// peek returns the next unconsumed token. If the sequence is exhausted, peek
// returns an End token, so the parser never reads past the input.
func (p *Parser) peek() Token {
	if p.cur < len(p.toks) {
		return p.toks[p.cur]
	}
	end := Token{Kind: End, Location: Location{LineCol: LineCol{Line: 1, Column: 1}}}
	if n := len(p.toks); n != 0 {
		end.Location = p.toks[n-1].Location
	}
	return end
}

// previous returns the most recently consumed token.
func (p *Parser) previous() Token {
	if p.cur == 0 {
		return p.peek()
	}
	return p.toks[p.cur-1]
}

// advance consumes and returns the next token. It does not move past End.
func (p *Parser) advance() Token {
	tok := p.peek()
	if tok.Kind != End {
		p.cur++
	}
	return tok
}

func (p *Parser) at(kind Kind) bool { return p.peek().Kind == kind }

func (p *Parser) isAtEnd() bool { return p.at(End) }

// match consumes the next token if it has the given kind.
func (p *Parser) match(kind Kind) bool {
	if p.at(kind) {
		p.advance()
		return true
	}
	return false
}

// consume consumes the next token, which must have the given kind.
func (p *Parser) consume(kind Kind, msg string) Token {
	if tok := p.peek(); tok.Kind != kind {
		p.syntaxError(tok, "%s, got %v", msg, tok.Kind)
	}
	return p.advance()
}

func (p *Parser) syntaxError(tok Token, msg string, args ...any) {
	panic(syntaxErrorf(tok.LineCol, nil, msg, args...))
}

func (p *Parser) checkError(err error) {
	if err != nil {
		panic(handlerError{err})
	}
}

type handlerError struct{ error }

func (h handlerError) Unwrap() error { return h.error }

// Valid reports whether text is a single valid value under cfg.
func Valid(text string, cfg Config) bool {
	toks, err := Scan(text, cfg)
	if err != nil {
		return false
	}
	return NewParser(toks, cfg).Parse(discard{}) == nil
}

// discard is a Handler that ignores all events.
type discard struct{}

func (discard) BeginObject(Token) error         { return nil }
func (discard) EndObject(Token) error           { return nil }
func (discard) BeginArray(Token) error          { return nil }
func (discard) EndArray(Token) error            { return nil }
func (discard) BeginMember(string, Token) error { return nil }
func (discard) EndMember(Token) error           { return nil }
func (discard) Value(Token) error               { return nil }
func (discard) EndOfInput(Token)                {}
