// SPDX-License-Identifier: MPL-2.0

package jsmodule

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ExportPrefix is the assignment every module starts with.
const ExportPrefix = "module.exports"

// ErrSyntax is returned when a module cannot be read as an exported object literal.
var ErrSyntax = errors.New("invalid module syntax")

// SyntaxError describes where reading a module failed.
// It wraps ErrSyntax for errors.Is() compatibility.
type SyntaxError struct {
	Line int
	Msg  string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// Unwrap returns ErrSyntax so callers can use errors.Is for programmatic detection.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Parse reads `module.exports = <literal>;` and returns the exported value.
//
// The literal may use quoted or bare keys, single or double quoted strings
// with JavaScript escapes, trailing commas, numbers, booleans and null. It is
// rewritten into YAML flow syntax and decoded through the YAML node API, which
// keeps key order.
func Parse(data []byte) (Value, error) {
	body := bytes.TrimLeft(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")), " \t\r\n")
	if !bytes.HasPrefix(body, []byte(ExportPrefix)) {
		return nil, &SyntaxError{Msg: "missing " + ExportPrefix + " assignment"}
	}
	body = bytes.TrimLeft(body[len(ExportPrefix):], " \t\r\n")
	if !bytes.HasPrefix(body, []byte("=")) {
		return nil, &SyntaxError{Msg: "expected '=' after " + ExportPrefix}
	}
	body = bytes.TrimLeft(body[1:], " \t\r\n")
	line := 1 + bytes.Count(data[:len(data)-len(body)], []byte("\n"))
	body = bytes.TrimSpace(bytes.TrimSuffix(bytes.TrimSpace(body), []byte(";")))
	if len(body) == 0 || (body[0] != '{' && body[0] != '[') {
		return nil, &SyntaxError{Line: line, Msg: "exported value must be an object or array literal"}
	}

	flow, err := toFlow(body, line)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(flow, &doc); err != nil {
		return nil, &SyntaxError{Msg: err.Error()}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, &SyntaxError{Msg: "expected a single exported value"}
	}

	return fromNode(doc.Content[0])
}

func fromNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.MappingNode:
		obj := &Object{Fields: make([]Field, 0, len(n.Content)/2)}
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, &SyntaxError{Line: keyNode.Line, Msg: "object keys must be identifiers or strings"}
			}
			if isMissingValue(valNode) {
				return nil, &SyntaxError{Line: keyNode.Line, Msg: fmt.Sprintf("missing value for key %q", keyNode.Value)}
			}
			v, err := fromNode(valNode)
			if err != nil {
				return nil, err
			}
			obj.Fields = append(obj.Fields, Field{Key: keyNode.Value, Value: v})
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := &Array{Elems: make([]Value, 0, len(n.Content))}
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			arr.Elems = append(arr.Elems, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return fromScalar(n)
	case yaml.AliasNode:
		return nil, &SyntaxError{Line: n.Line, Msg: "unexpected alias"}
	default:
		return nil, &SyntaxError{Line: n.Line, Msg: "unexpected token"}
	}
}

func fromScalar(n *yaml.Node) (Value, error) {
	if n.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle) != 0 {
		return String(n.Value), nil
	}
	if n.Style != 0 {
		return nil, &SyntaxError{Line: n.Line, Msg: "unsupported scalar style"}
	}
	switch n.ShortTag() {
	case "!!int", "!!float":
		return Literal(n.Value), nil
	case "!!bool":
		if n.Value != "true" && n.Value != "false" {
			return nil, &SyntaxError{Line: n.Line, Msg: fmt.Sprintf("invalid boolean %q", n.Value)}
		}
		return Literal(n.Value), nil
	case "!!null":
		if n.Value != "null" {
			return nil, &SyntaxError{Line: n.Line, Msg: fmt.Sprintf("invalid literal %q", n.Value)}
		}
		return Literal("null"), nil
	default:
		return nil, &SyntaxError{Line: n.Line, Msg: fmt.Sprintf("unsupported expression %q", n.Value)}
	}
}

// isMissingValue reports the implicit null YAML produces for `key` without a value.
func isMissingValue(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Style == 0 && n.ShortTag() == "!!null" && n.Value == ""
}
