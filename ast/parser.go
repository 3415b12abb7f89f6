// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"io"

	"github.com/creachadair/laxjson"
)

// Parse parses text as a single value under cfg. Input after the value, other
// than whitespace and comments, is an error. In case of error, the error has
// concrete type [*laxjson.SyntaxError].
func Parse(text string, cfg laxjson.Config) (Value, error) {
	toks, err := laxjson.Scan(text, cfg)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks, cfg)
}

// ParseTokens parses a single value from toks, which should be the result of
// calling laxjson.Scan with the same cfg.
func ParseTokens(toks []laxjson.Token, cfg laxjson.Config) (Value, error) {
	h := new(parseHandler)
	if err := laxjson.NewParser(toks, cfg).Parse(h); err != nil {
		return nil, err
	}
	return h.result()
}

// ParseAll parses and returns all the values in text, which may contain any
// number of values separated by whitespace or comments. In case of error, any
// complete values already parsed are returned along with the error.
func ParseAll(text string, cfg laxjson.Config) ([]Value, error) {
	toks, err := laxjson.Scan(text, cfg)
	if err != nil {
		return nil, err
	}
	h := new(parseHandler)
	p := laxjson.NewParser(toks, cfg)
	var vs []Value
	for {
		if err := p.ParseOne(h); err == io.EOF {
			return vs, nil
		} else if err != nil {
			return vs, err
		}
		v, err := h.result()
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
		h.stk = h.stk[:0]
	}
}

// A parseHandler implements the laxjson.Handler interface to construct value
// trees. Incomplete objects, arrays, and members are kept on a stack and
// reduced into their parent when complete.
type parseHandler struct {
	stk []any // *Object, *Array, *Member, or a complete Value
}

func (h *parseHandler) result() (Value, error) {
	if len(h.stk) != 1 {
		return nil, errors.New("incomplete value")
	}
	v, ok := h.stk[0].(Value)
	if !ok {
		return nil, fmt.Errorf("incomplete value %T", h.stk[0])
	}
	return v, nil
}

func (h *parseHandler) top() any { return h.stk[len(h.stk)-1] }

func (h *parseHandler) pop() any {
	last := h.top()
	h.stk = h.stk[:len(h.stk)-1]
	return last
}

func (h *parseHandler) push(v any) { h.stk = append(h.stk, v) }

// reduceValue attaches a complete value v to the container atop the stack, or
// pushes it if the stack is empty.
func (h *parseHandler) reduceValue(v Value) error {
	if len(h.stk) == 0 {
		h.push(v)
		return nil
	}
	switch prev := h.top().(type) {
	case *Member:
		prev.Value = v
	case *Array:
		*prev = append(*prev, v)
	default:
		return fmt.Errorf("unexpected value after %T", prev)
	}
	return nil
}

func (h *parseHandler) BeginObject(laxjson.Token) error {
	h.push(new(Object))
	return nil
}

func (h *parseHandler) EndObject(laxjson.Token) error {
	obj, ok := h.pop().(*Object)
	if !ok {
		return errors.New("unbalanced object")
	}
	return h.reduceValue(*obj)
}

func (h *parseHandler) BeginArray(laxjson.Token) error {
	h.push(&Array{})
	return nil
}

func (h *parseHandler) EndArray(laxjson.Token) error {
	arr, ok := h.pop().(*Array)
	if !ok {
		return errors.New("unbalanced array")
	}
	return h.reduceValue(*arr)
}

func (h *parseHandler) BeginMember(key string, _ laxjson.Token) error {
	// The object this member belongs to is atop the stack. Add the new member
	// to it eagerly, so that reducing the value only updates the member.
	obj, ok := h.top().(*Object)
	if !ok {
		return errors.New("member outside of object")
	}
	m := &Member{Key: key}
	*obj = append(*obj, m)
	h.push(m)
	return nil
}

func (h *parseHandler) EndMember(laxjson.Token) error {
	if _, ok := h.pop().(*Member); !ok {
		return errors.New("unbalanced member")
	}
	return nil
}

func (h *parseHandler) Value(tok laxjson.Token) error {
	switch tok.Kind {
	case laxjson.Null:
		return h.reduceValue(Null)
	case laxjson.True, laxjson.False:
		return h.reduceValue(Bool(tok.Kind == laxjson.True))
	}
	switch lit := tok.Literal.(type) {
	case laxjson.StringLiteral:
		return h.reduceValue(String(lit))
	case laxjson.NumberLiteral:
		return h.reduceValue(Number(lit))
	default:
		return fmt.Errorf("unknown value %v", tok)
	}
}

func (h *parseHandler) EndOfInput(laxjson.Token) {}
