// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"io"
	"strconv"

	"github.com/creachadair/laxjson/ast"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// An encoder writes a value to w in some output format.
type encoder func(w io.Writer, v ast.Value) error

var encoders = map[string]encoder{
	"json": encodeJSON,
	"yaml": encodeYAML,
	"toml": encodeTOML,
}

func encodeJSON(w io.Writer, v ast.Value) error {
	_, err := io.WriteString(w, v.JSON()+"\n")
	return err
}

func encodeYAML(w io.Writer, v ast.Value) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(v)); err != nil {
		return errors.Wrap(err, "encode YAML")
	}
	return enc.Close()
}

// yamlNode converts v into a YAML node tree. Object members keep their input
// order.
func yamlNode(v ast.Value) *yaml.Node {
	switch t := v.(type) {
	case ast.Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range t {
			n.Content = append(n.Content, yamlScalar("!!str", m.Key), yamlNode(m.Value))
		}
		return n
	case ast.Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, elt := range t {
			n.Content = append(n.Content, yamlNode(elt))
		}
		return n
	case ast.String:
		return yamlScalar("!!str", string(t))
	case ast.Number:
		if t.IsInt() {
			return yamlScalar("!!int", strconv.FormatInt(int64(t), 10))
		}
		return yamlScalar("!!float", t.JSON())
	case ast.Bool:
		return yamlScalar("!!bool", t.JSON())
	default:
		return yamlScalar("!!null", "null")
	}
}

func yamlScalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func encodeTOML(w io.Writer, v ast.Value) error {
	obj, ok := v.(ast.Object)
	if !ok {
		return errors.Errorf("TOML output requires an object, not %T", v)
	}
	doc, err := tomlValue(obj)
	if err != nil {
		return err
	}
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return errors.Wrap(enc.Encode(doc), "encode TOML")
}

// tomlValue converts v into plain Go values for the TOML encoder. TOML has no
// null, so members with null values are omitted; a null array element is an
// error.
func tomlValue(v ast.Value) (any, error) {
	switch t := v.(type) {
	case ast.Object:
		m := make(map[string]any, len(t))
		for _, mem := range t {
			if mem.Value == ast.Null {
				log.Debugf("omitting null member %q from TOML output", mem.Key)
				continue
			}
			val, err := tomlValue(mem.Value)
			if err != nil {
				return nil, errors.Wrapf(err, "member %q", mem.Key)
			}
			m[mem.Key] = val
		}
		return m, nil
	case ast.Array:
		out := make([]any, len(t))
		for i, elt := range t {
			if elt == ast.Null {
				return nil, errors.Errorf("null array element at offset %d has no TOML representation", i)
			}
			val, err := tomlValue(elt)
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			out[i] = val
		}
		return out, nil
	case ast.Number:
		if t.IsInt() {
			return int64(t), nil
		}
		return float64(t), nil
	default:
		return ast.ToAny(v), nil
	}
}
