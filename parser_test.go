// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package laxjson_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/laxjson"
	"github.com/google/go-cmp/cmp"
)

func mustScan(t *testing.T, input string, cfg laxjson.Config) []laxjson.Token {
	t.Helper()
	toks, err := laxjson.Scan(input, cfg)
	if err != nil {
		t.Fatalf("Scan %#q failed: %v", input, err)
	}
	return toks
}

func TestParser(t *testing.T) {
	strict, lax := laxjson.Strict(), laxjson.Permissive()
	tests := []struct {
		input string
		cfg   laxjson.Config
		want  string
	}{
		{"true", strict, "Value true <true>\n."},
		{" null ", strict, "Value null <null>\n."},
		{`-6.32`, strict, "Value number <-6.32>\n."},
		{`"a\tb"`, strict, "Value string <\"a\\tb\">\n."},

		{`{}`, strict, "BeginObject\nEndObject\n."},
		{`[]`, strict, "BeginArray\nEndArray\n."},

		{`{"a":15}`, strict, `
BeginObject
BeginMember a <"a">
Value number <15>
EndMember "}"
EndObject
.`},

		{`{"x":null, "y":[true]}`, strict, `
BeginObject
BeginMember x <"x">
Value null <null>
EndMember ","
BeginMember y <"y">
BeginArray
Value true <true>
EndArray
EndMember "}"
EndObject
.`},

		{`[1, [2, {}], 3]`, strict, `
BeginArray
Value number <1>
BeginArray
Value number <2>
BeginObject
EndObject
EndArray
Value number <3>
EndArray
.`},

		{`{x: 'y', "z": [0,],}`, lax, `
BeginObject
BeginMember x <x>
Value string <'y'>
EndMember ","
BeginMember z <"z">
BeginArray
Value number <0>
EndArray
EndMember ","
EndObject
.`},

		{"// lead\n[ /* one */ 1 ] // trail", lax, `
BeginArray
Value number <1>
EndArray
.`},
	}

	for _, test := range tests {
		th := new(testHandler)
		p := laxjson.NewParser(mustScan(t, test.input, test.cfg), test.cfg)
		if err := p.Parse(th); err != nil {
			t.Errorf("Parse %#q failed: %v", test.input, err)
		}
		if diff := diffStrings(test.want, th.output()); diff != "" {
			t.Errorf("Input: %#q\nOutput: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParserErrors(t *testing.T) {
	strict, lax := laxjson.Strict(), laxjson.Permissive()
	shallow := laxjson.Config{MaxDepth: 2}

	tests := []struct {
		input string
		cfg   laxjson.Config
		want  string
		estr  string
	}{
		{``, strict, ``, `at 1:1: expected value, got end of input`},
		{`{`, strict, `BeginObject`,
			`at 1:2: expected '}' at the end of an object, got end of input`},
		{`[`, strict, `BeginArray`,
			`at 1:2: expected ']' at the end of an array, got end of input`},
		{`}`, strict, ``, `at 1:1: expected value, got "}"`},
		{`{false:1}`, strict, `BeginObject`,
			`at 1:2: expected key for key value pair, got false`},
		{`{1:1}`, lax, `BeginObject`,
			`at 1:2: expected key for key value pair, got number`},
		{`{"true":}`, strict, `
BeginObject
BeginMember true <"true">`,
			`at 1:9: expected value, got "}"`},
		{`{"a" 1}`, strict, `
BeginObject
BeginMember a <"a">`,
			`at 1:6: expected ':' after key, got number`},
		{`{"a":`, lax, `
BeginObject
BeginMember a <"a">`,
			`at 1:6: expected value, got end of input`},

		// Separators.
		{`[1 2]`, strict, `
BeginArray
Value number <1>`,
			`at 1:4: expected ',' before next value in array`},
		{`{"a":1 "b":2}`, strict, `
BeginObject
BeginMember a <"a">
Value number <1>
EndMember string`,
			`at 1:8: expected ',' before next property in object`},
		{`[1,,2]`, lax, `
BeginArray
Value number <1>`,
			`at 1:4: expected value, got ","`},
		{`[,]`, lax, `BeginArray`, `at 1:2: expected value, got ","`},
		{`{,}`, lax, `BeginObject`, `at 1:2: expected key for key value pair, got ","`},

		// Trailing commas.
		{`[1,2,]`, strict, `
BeginArray
Value number <1>
Value number <2>`,
			`at 1:5: trailing commas are not allowed`},
		{`{"a":1,}`, strict, `
BeginObject
BeginMember a <"a">
Value number <1>
EndMember ","`,
			`at 1:7: trailing commas are not allowed`},
		{`[1,`, lax, `
BeginArray
Value number <1>`,
			`at 1:4: expected ']' at the end of an array, got end of input`},
		{`[1,`, strict, `
BeginArray
Value number <1>`,
			`at 1:4: expected ']' at the end of an array, got end of input`},
		{`{"a":1,`, strict, `
BeginObject
BeginMember a <"a">
Value number <1>
EndMember ","`,
			`at 1:8: expected '}' at the end of an object, got end of input`},

		// Duplicate keys.
		{`{"a":1,"a":2}`, strict, `
BeginObject
BeginMember a <"a">
Value number <1>
EndMember ","`,
			`at 1:8: duplicate key "a" found in object`},
		{`{a:1, 'a':2}`, lax, `
BeginObject
BeginMember a <a>
Value number <1>
EndMember ","`,
			`at 1:7: duplicate key "a" found in object`},

		// Extra input.
		{`1 2`, strict, `Value number <1>`, `at 1:3: unexpected number after value`},
		{`{} }`, strict, "BeginObject\nEndObject", `at 1:4: unexpected "}" after value`},

		// Nesting depth.
		{`[[[1]]]`, shallow, "BeginArray\nBeginArray", `at 1:3: nesting depth exceeds 2`},
		{`{"a":{"b":{}}}`, shallow, `
BeginObject
BeginMember a <"a">
BeginObject
BeginMember b <"b">`,
			`at 1:11: nesting depth exceeds 2`},
	}

	for _, test := range tests {
		th := new(testHandler)
		p := laxjson.NewParser(mustScan(t, test.input, test.cfg), test.cfg)
		err := p.Parse(th)
		if err == nil {
			t.Errorf("Parse %#q did not report an error", test.input)
			continue
		}
		var serr *laxjson.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Parse %#q: got error %T, want *SyntaxError", test.input, err)
		}

		if diff := diffStrings(test.want, th.output()); diff != "" {
			t.Errorf("Input: %#q\nOutput: (-want, +got)\n%s", test.input, diff)
		}
		if diff := diffStrings(test.estr, err.Error()); diff != "" {
			t.Errorf("Input: %#q\nError: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParseOne(t *testing.T) {
	const input = `{ "love": true } [] "ok"`
	const want = `
BeginObject
BeginMember love <"love">
Value true <true>
EndMember "}"
EndObject
---
BeginArray
EndArray
---
Value string <"ok">
---
.`
	th := new(testHandler)

	p := laxjson.NewParser(mustScan(t, input, laxjson.Strict()), laxjson.Strict())
	for {
		err := p.ParseOne(th)
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("ParseOne failed: %v", err)
		}
		th.pr("---")
	}

	if diff := diffStrings(want, th.output()); diff != "" {
		t.Errorf("Input: %#q\nOutput: (-want, +got)\n%s", input, diff)
	}
}

func TestParserHandlerError(t *testing.T) {
	errStop := errors.New("stop")
	h := &failHandler{err: errStop}
	p := laxjson.NewParser(mustScan(t, `[1, 2]`, laxjson.Strict()), laxjson.Strict())
	if err := p.Parse(h); err != errStop {
		t.Errorf("Parse: got %v, want %v", err, errStop)
	}
}

func TestParserTokens(t *testing.T) {
	// Token sequences need not come from Scan, and need not be terminated.
	tests := []struct {
		name string
		toks []laxjson.Token
		estr string
	}{
		{"Empty", nil, "at 1:1: expected value, got end of input"},
		{"Unterminated", []laxjson.Token{{Kind: laxjson.LSquare}},
			"at 0:0: expected ']' at the end of an array, got end of input"},
		{"NoLiteral", []laxjson.Token{{Kind: laxjson.Number, Lexeme: "5"}},
			`at 0:0: malformed number token "5"`},
		{"WrongLiteral", []laxjson.Token{{Kind: laxjson.String, Literal: laxjson.NumberLiteral(1)}},
			`at 0:0: malformed string token ""`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := laxjson.NewParser(tc.toks, laxjson.Strict()).Parse(new(testHandler))
			if err == nil {
				t.Fatal("Parse did not report an error")
			}
			if got := err.Error(); got != tc.estr {
				t.Errorf("Parse: got %q, want %q", got, tc.estr)
			}
		})
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		input  string
		strict bool
		lax    bool
	}{
		{`{"a":1,"b":[1,2,3]}`, true, true},
		{`[1,2,]`, false, true},
		{`{x:1}`, false, true},
		{`{'x':1}`, false, true},
		{`{/* a /* b */ c */"x":1}`, false, true},
		{`{"a":1,"a":2}`, false, false},
		{`{"a":`, false, false},
		{`"unterminated`, false, false},
		{`[1 2]`, false, false},
	}
	for _, tc := range tests {
		if got := laxjson.Valid(tc.input, laxjson.Strict()); got != tc.strict {
			t.Errorf("Valid(%#q, strict): got %v, want %v", tc.input, got, tc.strict)
		}
		if got := laxjson.Valid(tc.input, laxjson.Permissive()); got != tc.lax {
			t.Errorf("Valid(%#q, permissive): got %v, want %v", tc.input, got, tc.lax)
		}
	}
}

func diffStrings(want, got string) string {
	return cmp.Diff(strings.Split(strings.TrimSpace(want), "\n"),
		strings.Split(strings.TrimSpace(got), "\n"))
}

type testHandler struct {
	buf bytes.Buffer
}

func (t *testHandler) pr(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprintf(&t.buf, msg, args...)
}

func (t *testHandler) output() string { return t.buf.String() }

func (t *testHandler) BeginObject(laxjson.Token) error { t.pr("BeginObject"); return nil }
func (t *testHandler) EndObject(laxjson.Token) error   { t.pr("EndObject"); return nil }
func (t *testHandler) BeginArray(laxjson.Token) error  { t.pr("BeginArray"); return nil }
func (t *testHandler) EndArray(laxjson.Token) error    { t.pr("EndArray"); return nil }
func (t *testHandler) EndOfInput(laxjson.Token)        { t.pr(".") }

func (t *testHandler) BeginMember(key string, tok laxjson.Token) error {
	t.pr("BeginMember %s <%s>", key, tok.Lexeme)
	return nil
}

func (t *testHandler) EndMember(tok laxjson.Token) error {
	t.pr("EndMember %s", tok.Kind)
	return nil
}

func (t *testHandler) Value(tok laxjson.Token) error {
	t.pr(`Value %s <%s>`, tok.Kind, tok.Lexeme)
	return nil
}

// failHandler reports err for every value.
type failHandler struct {
	testHandler
	err error
}

func (f *failHandler) Value(laxjson.Token) error { return f.err }
