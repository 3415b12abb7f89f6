// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package laxjson

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/laxjson/internal/escape"

	"go4.org/mem"
)

// A Scanner reads lexical tokens from an input text. Each call to Next
// advances the scanner to the next token, or reports an error.
//
// The last token of every successful scan has kind End.
type Scanner struct {
	text string
	src  mem.RO
	cfg  Config
	tabw int

	pos       int // offset of the next unread byte
	line, col int // position of the next unread byte, 1-based

	tok  Token
	err  error
	done bool // the End token has been delivered
}

// NewScanner constructs a new lexical scanner that consumes text using the
// relaxations enabled by cfg.
func NewScanner(text string, cfg Config) *Scanner {
	return &Scanner{
		text: text,
		src:  mem.S(text),
		cfg:  cfg,
		tabw: cfg.tabWidth(),
		line: 1,
		col:  1,
	}
}

// Scan scans the complete text and returns its tokens in source order.
// On success, the final token has kind End. In case of error, the error has
// concrete type [*SyntaxError] and no tokens are returned.
func Scan(text string, cfg Config) ([]Token, error) {
	s := NewScanner(text, cfg)
	var toks []Token
	for s.Next() {
		toks = append(toks, s.Token())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return toks, nil
}

// Next advances s to the next token of the input and reports whether a token
// is available. Next returns false after the End token has been delivered, or
// if an error occurs; use Err to distinguish these cases.
func (s *Scanner) Next() bool {
	if s.done || s.err != nil {
		return false
	}
	if err := s.next(); err != nil {
		s.err = err
		return false
	}
	s.done = s.tok.Kind == End
	return true
}

// Token returns the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the error that stopped the scanner, or nil.
func (s *Scanner) Err() error { return s.err }

func (s *Scanner) next() error {
	for s.pos < s.src.Len() {
		start, lc := s.pos, s.lineCol()
		ch := s.src.At(s.pos)

		// Handle punctuation.
		if k, ok := selfDelim(ch); ok {
			s.advance()
			s.setToken(k, start, lc, nil)
			return nil
		}

		switch {
		case isSpace(ch):
			s.advance()
		case ch == '"' || (ch == '\'' && s.cfg.AllowSingleQuotes):
			return s.scanString(ch, start, lc)
		case ch == '/' && s.cfg.AllowComments:
			if err := s.skipComment(lc); err != nil {
				return err
			}
		case isNumStart(ch):
			return s.scanNumber(start, lc)
		case isNameStart(ch):
			return s.scanName(start, lc)
		default:
			r, _ := mem.DecodeRune(s.src.SliceFrom(s.pos))
			return syntaxErrorf(lc, nil, "unexpected token %q", r)
		}
	}
	s.setToken(End, s.pos, s.lineCol(), nil)
	return nil
}

func (s *Scanner) scanString(quote byte, start int, lc LineCol) error {
	s.advance() // opening quote
	var esc bool
	for s.pos < s.src.Len() {
		cur := s.lineCol()
		ch := s.advance()
		switch {
		case esc:
			// We are awaiting the completion of a \-escape.
			if err := s.checkEscape(ch, cur); err != nil {
				return err
			}
			esc = false
		case ch == rune(quote):
			dec, err := escape.Unquote(s.src.Slice(start+1, s.pos-1))
			if err != nil {
				return syntaxErrorf(lc, err, "invalid string: %v", err)
			}
			s.setToken(String, start, lc, StringLiteral(dec))
			return nil
		case ch == '\\':
			esc = true
		case ch < ' ':
			return syntaxErrorf(cur, nil, "unescaped control %q in string", ch)
		}
	}
	return syntaxErrorf(lc, nil, "unclosed quote")
}

// checkEscape reports whether ch, which follows a backslash, begins a valid
// escape sequence. For Unicode escapes it consumes the hex digits.
func (s *Scanner) checkEscape(ch rune, lc LineCol) error {
	switch ch {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return nil
	case '\'':
		if s.cfg.AllowSingleQuotes {
			return nil
		}
	case 'u':
		for range 4 {
			if !isHexDigit(s.peek(0)) {
				return syntaxErrorf(lc, nil, "invalid Unicode escape")
			}
			s.advance()
		}
		return nil
	}
	return syntaxErrorf(lc, nil, "invalid %q after escape", ch)
}

func (s *Scanner) scanNumber(start int, lc LineCol) error {
	if s.peek(0) == '-' {
		s.advance()
		if !isDigit(s.peek(0)) {
			return syntaxErrorf(lc, nil, "expected digit after '-'")
		}
	}
	s.skipWhile(isDigit)

	// A fraction is only consumed if a digit follows the decimal point.
	if s.peek(0) == '.' && isDigit(s.peek(1)) {
		s.advance()
		s.skipWhile(isDigit)
	}

	if c := s.peek(0); c == 'e' || c == 'E' {
		s.advance()
		if c := s.peek(0); c == '+' || c == '-' {
			s.advance()
		}
		if !isDigit(s.peek(0)) {
			return syntaxErrorf(s.lineCol(), nil, "missing exponent digits")
		}
		s.skipWhile(isDigit)
	}

	text := s.text[start:s.pos]
	v, err := strconv.ParseFloat(text, 64)
	if errors.Is(err, strconv.ErrRange) {
		return syntaxErrorf(lc, err, "number %s out of range", text)
	} else if err != nil {
		// The grammar above only matches valid floating-point syntax.
		panic(fmt.Sprintf("laxjson: invalid number %q: %v", text, err))
	}
	s.setToken(Number, start, lc, NumberLiteral(v))
	return nil
}

func (s *Scanner) scanName(start int, lc LineCol) error {
	s.skipWhile(isNameByte)
	text := s.text[start:s.pos]
	if k, ok := keywords[text]; ok {
		s.setToken(k, start, lc, nil)
		return nil
	} else if !s.cfg.AllowUnquotedIdentifier {
		return syntaxErrorf(lc, nil, "unquoted identifiers are not allowed (got %q)", text)
	}
	s.setToken(Identifier, start, lc, nil)
	return nil
}

// skipComment consumes a line or block comment. Block comments nest.
// Precondition: the current byte is "/".
func (s *Scanner) skipComment(lc LineCol) error {
	s.advance()
	switch s.peek(0) {
	case '/': // line comment, up to but not including LF
		for s.pos < s.src.Len() && s.peek(0) != '\n' {
			s.advance()
		}
		return nil

	case '*': // block comment
		s.advance()
		for depth := 1; depth > 0; {
			if s.pos >= s.src.Len() {
				return syntaxErrorf(lc, nil, "unterminated comment")
			}
			if s.hasPrefix("/*") {
				s.advance()
				s.advance()
				depth++
			} else if s.hasPrefix("*/") {
				s.advance()
				s.advance()
				depth--
			} else {
				s.advance()
			}
		}
		return nil

	default:
		return syntaxErrorf(lc, nil, "unexpected token '/'")
	}
}

// advance consumes one rune from the input and updates the line and column.
// Precondition: s.pos < s.src.Len().
func (s *Scanner) advance() rune {
	r, n := mem.DecodeRune(s.src.SliceFrom(s.pos))
	s.pos += max(n, 1)
	switch r {
	case '\n':
		s.line++
		s.col = 1
	case '\t':
		s.col += s.tabw
	default:
		s.col++
	}
	return r
}

// peek returns the byte at offset i past the current position, or 0 if that
// is beyond the end of the input.
func (s *Scanner) peek(i int) byte {
	if p := s.pos + i; p < s.src.Len() {
		return s.src.At(p)
	}
	return 0
}

func (s *Scanner) skipWhile(f func(byte) bool) {
	for s.pos < s.src.Len() && f(s.src.At(s.pos)) {
		s.advance()
	}
}

func (s *Scanner) hasPrefix(p string) bool {
	return mem.HasPrefix(s.src.SliceFrom(s.pos), mem.S(p))
}

func (s *Scanner) lineCol() LineCol { return LineCol{Line: s.line, Column: s.col} }

func (s *Scanner) setToken(k Kind, start int, lc LineCol, lit Literal) {
	s.tok = Token{
		Kind:     k,
		Lexeme:   s.text[start:s.pos],
		Location: Location{Span: Span{Pos: start, End: s.pos}, LineCol: lc},
		Literal:  lit,
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch byte) bool  { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool     { return '0' <= ch && ch <= '9' }
func isNameStart(ch byte) bool { return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }
func isNameByte(ch byte) bool  { return isNameStart(ch) || isDigit(ch) }

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

var self = [...]Kind{LBrace, RBrace, Colon, Comma, LSquare, RSquare}

func selfDelim(ch byte) (Kind, bool) {
	i := strings.IndexByte("{}:,[]", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
