/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package emitter renders node trees to YAML text.
//
// Block emission is delegated to the external YAML library; the emitter
// only lowers nodes into values the library understands (ordered mappings
// become yaml.MapSlice, so key order survives). Flow-form containers and
// scalars that need exact text (the null sentinel, escaped strings,
// binary payloads) are rendered here and spliced in as raw YAML.
package emitter

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/goccy/go-yaml"

	"dirpx.dev/yamx/apis"
)

var (
	// ErrNilNode is returned when a nil node is provided.
	ErrNilNode = errors.New("yamx(emitter): nil node provided")
	// ErrUnknownNodeKind indicates a node with an invalid kind.
	ErrUnknownNodeKind = errors.New("yamx(emitter): unknown node kind")
)

// Encode renders node according to style and returns the document text,
// newline terminated.
func Encode(node *apis.Node, style apis.Style) ([]byte, error) {
	if node == nil {
		return nil, ErrNilNode
	}

	if node.Kind == apis.ScalarNode {
		text, err := flowText(node, style)
		if err != nil {
			return nil, err
		}
		return []byte(text + "\n"), nil
	}

	if useFlow(node, style) {
		text, err := flowText(node, style)
		if err != nil {
			return nil, err
		}
		return []byte(text + "\n"), nil
	}

	v, err := lower(node, style)
	if err != nil {
		return nil, err
	}
	return yaml.MarshalWithOptions(v,
		yaml.Indent(style.Indent),
		yaml.IndentSequence(style.IndentSequences),
	)
}

// Write renders node to w.
func Write(w io.Writer, node *apis.Node, style apis.Style) error {
	data, err := Encode(node, style)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// useFlow decides inline rendering for a container node. An explicit
// per-node flow request always wins; FlowAuto additionally flows
// containers whose children are all scalars.
func useFlow(n *apis.Node, style apis.Style) bool {
	if !n.IsContainer() {
		return false
	}
	if n.Flow {
		return true
	}
	switch style.Flow {
	case apis.FlowAlways:
		return true
	case apis.FlowAuto:
		return n.ScalarChildrenOnly()
	default:
		return false
	}
}

// raw splices pre-rendered YAML text into the external encoder.
type raw struct {
	text string
}

// MarshalYAML implements the external library's BytesMarshaler.
func (r raw) MarshalYAML() ([]byte, error) {
	return []byte(r.text), nil
}

// lower converts a node into a value the external encoder renders as
// block YAML. Flow-form descendants are rendered here and embedded raw.
func lower(n *apis.Node, style apis.Style) (any, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	if n.Kind != apis.ScalarNode && useFlow(n, style) {
		text, err := flowText(n, style)
		if err != nil {
			return nil, err
		}
		return raw{text: text}, nil
	}

	switch n.Kind {
	case apis.ScalarNode:
		return scalarValue(n, style), nil
	case apis.SequenceNode:
		items := make([]any, 0, len(n.Items))
		for _, it := range n.Items {
			v, err := lower(it, style)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case apis.MappingNode:
		ms := make(yaml.MapSlice, 0, len(n.Pairs))
		for _, p := range n.Pairs {
			k, err := lower(p.Key, style)
			if err != nil {
				return nil, err
			}
			v, err := lower(p.Value, style)
			if err != nil {
				return nil, err
			}
			ms = append(ms, yaml.MapItem{Key: k, Value: v})
		}
		return ms, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownNodeKind, n.Kind)
	}
}

// scalarValue picks the representation of a scalar for the external
// encoder: a typed Go value when the text round-trips through it
// unchanged, raw text otherwise.
func scalarValue(n *apis.Node, style apis.Style) any {
	switch n.Tag {
	case apis.TagNull:
		if n.Value == "" || n.Value == "~" || n.Value == "null" {
			return nil
		}
		// The null sentinel keeps its exact spelling.
		return raw{text: n.Value}
	case apis.TagBool:
		if b, err := strconv.ParseBool(n.Value); err == nil {
			return b
		}
		return raw{text: n.Value}
	case apis.TagInt:
		if i, err := strconv.ParseInt(n.Value, 10, 64); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(n.Value, 10, 64); err == nil {
			return u
		}
		return raw{text: n.Value}
	case apis.TagFloat:
		switch n.Value {
		case ".inf", "-.inf", ".nan":
			return raw{text: n.Value}
		}
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return f
		}
		return raw{text: n.Value}
	case apis.TagStr:
		if !style.AllowUnicode && !isASCII(n.Value) {
			return raw{text: strconv.QuoteToASCII(n.Value)}
		}
		return n.Value
	case apis.TagBinary:
		return raw{text: "!!binary " + n.Value}
	case apis.TagTimestamp:
		return raw{text: n.Value}
	default:
		return raw{text: n.Value}
	}
}

// flowText renders a node inline. Containers recurse; every child is
// inline by construction.
func flowText(n *apis.Node, style apis.Style) (string, error) {
	if n == nil {
		return "", ErrNilNode
	}
	switch n.Kind {
	case apis.ScalarNode:
		return flowScalarText(n, style), nil
	case apis.SequenceNode:
		parts := make([]string, 0, len(n.Items))
		for _, it := range n.Items {
			s, err := flowText(it, style)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case apis.MappingNode:
		parts := make([]string, 0, len(n.Pairs))
		for _, p := range n.Pairs {
			k, err := flowText(p.Key, style)
			if err != nil {
				return "", err
			}
			v, err := flowText(p.Value, style)
			if err != nil {
				return "", err
			}
			parts = append(parts, k+": "+v)
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownNodeKind, n.Kind)
	}
}

// flowScalarText renders a scalar inline, quoting strings that would
// otherwise be mistaken for another scalar type or break flow syntax.
func flowScalarText(n *apis.Node, style apis.Style) string {
	switch n.Tag {
	case apis.TagStr:
		if !style.AllowUnicode && !isASCII(n.Value) {
			return strconv.QuoteToASCII(n.Value)
		}
		if needsQuote(n.Value) {
			return strconv.Quote(n.Value)
		}
		return n.Value
	case apis.TagBinary:
		return "!!binary " + n.Value
	default:
		return n.Value
	}
}

// needsQuote reports whether a string scalar requires quoting: empty
// strings, strings that resolve to another type on reload, and strings
// containing flow indicators or other special syntax.
func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	switch s {
	case "null", "Null", "NULL", "~",
		"true", "True", "TRUE", "false", "False", "FALSE",
		"yes", "Yes", "YES", "no", "No", "NO",
		"on", "On", "ON", "off", "Off", "OFF":
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	if strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
		return true
	}
	if strings.ContainsAny(s, "{}[],&*#?|-<>=!%@:`\"'\n\t\\") {
		return true
	}
	return !unicode.IsLetter(rune(s[0])) && !unicode.IsDigit(rune(s[0]))
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
