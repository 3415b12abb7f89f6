// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a value tree for JSON values, and a parser that
// constructs value trees from source text.
package ast

import (
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/laxjson"
)

// A Value is an arbitrary JSON value. The concrete type is one of Object,
// Array, String, Number, Bool, or the Null value.
type Value interface {
	// JSON returns the compact JSON encoding of the value.
	JSON() string
}

// An Object is a collection of key-value members. Keys are unique within an
// object constructed by the parser; members are kept in input order.
type Object []*Member

// Len returns the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Keys returns the keys of o in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// JSON satisfies the Value interface.
func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
// The value must be a Value or convertible by ToValue.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// JSON renders the member as "key":value.
func (m *Member) JSON() string {
	return laxjson.Quote(m.Key) + ":" + m.Value.JSON()
}

// An Array is a sequence of values.
type Array []Value

// Len returns the number of elements in a.
func (a Array) Len() int { return len(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// A String is a string value.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return laxjson.Quote(string(s)) }

// A Number is a floating-point value.
type Number float64

// JSON satisfies the Value interface. Integers in the range of int64 are
// written without an exponent.
func (n Number) JSON() string {
	if n.IsInt() {
		return strconv.FormatFloat(float64(n), 'f', -1, 64)
	}
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// IsInt reports whether n is an integer value in the range of int64.
func (n Number) IsInt() bool {
	f := float64(n)
	return f == math.Trunc(f) && math.Abs(f) < 1<<63
}

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// Null is the null constant.
var Null Value = null{}

type null struct{}

func (null) JSON() string { return "null" }
