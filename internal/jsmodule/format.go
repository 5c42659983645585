// SPDX-License-Identifier: MPL-2.0

package jsmodule

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// TrailingComma values understood by the printer.
const (
	TrailingCommaNone TrailingComma = "none"
	TrailingCommaES5  TrailingComma = "es5"
	TrailingCommaAll  TrailingComma = "all"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

type (
	// TrailingComma controls commas after the last element of a broken group.
	TrailingComma string

	// Style is the resolved subset of formatter options the printer honours.
	Style struct {
		PrintWidth     int
		TabWidth       int
		UseTabs        bool
		SingleQuote    bool
		Semi           bool
		BracketSpacing bool
		TrailingComma  TrailingComma
	}

	printer struct {
		style *Style
		buf   strings.Builder
	}
)

// DefaultStyle returns the formatter defaults used when a configuration file
// omits an option.
func DefaultStyle() Style {
	return Style{
		PrintWidth:     80,
		TabWidth:       2,
		UseTabs:        false,
		SingleQuote:    false,
		Semi:           true,
		BracketSpacing: true,
		TrailingComma:  TrailingCommaAll,
	}
}

// Format renders `module.exports = <v>;` followed by a newline.
//
// A nil style produces compact single-line output with no formatting pass.
func Format(v Value, style *Style) []byte {
	if style == nil {
		var b strings.Builder
		b.WriteString(ExportPrefix)
		b.WriteString(" = ")
		writeCompact(&b, v)
		b.WriteString(";\n")
		return []byte(b.String())
	}

	p := &printer{style: style}
	head := ExportPrefix + " = "
	p.buf.WriteString(head)
	tail := ""
	if style.Semi {
		tail = ";"
	}
	p.print(v, 0, len(head), len(tail))
	p.buf.WriteString(tail)
	p.buf.WriteString("\n")
	return []byte(p.buf.String())
}

// print writes v starting at column col; suffix is the width of the text that
// must follow v on the same line.
func (p *printer) print(v Value, depth, col, suffix int) {
	flat := p.flat(v)
	if col+utf8.RuneCountInString(flat)+suffix <= p.style.PrintWidth || !isGroup(v) {
		p.buf.WriteString(flat)
		return
	}

	switch typed := v.(type) {
	case *Object:
		p.buf.WriteString("{\n")
		for i, f := range typed.Fields {
			key := p.key(f.Key) + ": "
			p.indent(depth + 1)
			p.buf.WriteString(key)
			p.print(f.Value, depth+1, p.width(depth+1)+len(key), 1)
			p.separator(i == len(typed.Fields)-1)
		}
		p.indent(depth)
		p.buf.WriteString("}")
	case *Array:
		p.buf.WriteString("[\n")
		for i, e := range typed.Elems {
			p.indent(depth + 1)
			p.print(e, depth+1, p.width(depth+1), 1)
			p.separator(i == len(typed.Elems)-1)
		}
		p.indent(depth)
		p.buf.WriteString("]")
	}
}

func (p *printer) separator(last bool) {
	if !last || p.style.TrailingComma != TrailingCommaNone {
		p.buf.WriteString(",")
	}
	p.buf.WriteString("\n")
}

func (p *printer) indent(depth int) {
	if p.style.UseTabs {
		p.buf.WriteString(strings.Repeat("\t", depth))
		return
	}
	p.buf.WriteString(strings.Repeat(" ", depth*p.style.TabWidth))
}

// width is the visual column of an indentation level.
func (p *printer) width(depth int) int {
	return depth * p.style.TabWidth
}

func (p *printer) flat(v Value) string {
	switch typed := v.(type) {
	case *Object:
		if len(typed.Fields) == 0 {
			return "{}"
		}
		parts := make([]string, len(typed.Fields))
		for i, f := range typed.Fields {
			parts[i] = p.key(f.Key) + ": " + p.flat(f.Value)
		}
		if p.style.BracketSpacing {
			return "{ " + strings.Join(parts, ", ") + " }"
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *Array:
		parts := make([]string, len(typed.Elems))
		for i, e := range typed.Elems {
			parts[i] = p.flat(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case String:
		return quote(string(typed), p.style.SingleQuote)
	case Literal:
		return string(typed)
	default:
		return "null"
	}
}

func (p *printer) key(k string) string {
	if identifierPattern.MatchString(k) {
		return k
	}
	return quote(k, p.style.SingleQuote)
}

func isGroup(v Value) bool {
	switch typed := v.(type) {
	case *Object:
		return len(typed.Fields) > 0
	case *Array:
		return len(typed.Elems) > 0
	}
	return false
}

// writeCompact mirrors a JSON5 stringifier: bare identifier keys, no
// whitespace, double quotes unless single quotes need fewer escapes.
func writeCompact(b *strings.Builder, v Value) {
	switch typed := v.(type) {
	case *Object:
		b.WriteString("{")
		for i, f := range typed.Fields {
			if i > 0 {
				b.WriteString(",")
			}
			if identifierPattern.MatchString(f.Key) {
				b.WriteString(f.Key)
			} else {
				b.WriteString(quote(f.Key, false))
			}
			b.WriteString(":")
			writeCompact(b, f.Value)
		}
		b.WriteString("}")
	case *Array:
		b.WriteString("[")
		for i, e := range typed.Elems {
			if i > 0 {
				b.WriteString(",")
			}
			writeCompact(b, e)
		}
		b.WriteString("]")
	case String:
		b.WriteString(quote(string(typed), false))
	case Literal:
		b.WriteString(string(typed))
	default:
		b.WriteString("null")
	}
}

// quote picks the preferred quote character unless the content holds more of
// it than of the alternative.
func quote(s string, preferSingle bool) string {
	q, alt := byte('"'), byte('\'')
	if preferSingle {
		q, alt = alt, q
	}
	if strings.Count(s, string(q)) > strings.Count(s, string(alt)) {
		q = alt
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(q)
	for _, r := range s {
		switch r {
		case rune(q):
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\u2028', '\u2029':
			b.WriteString(`\u` + strconv.FormatInt(int64(r), 16))
		default:
			if r < 0x20 {
				b.WriteString(`\u00`)
				if r < 0x10 {
					b.WriteByte('0')
				}
				b.WriteString(strconv.FormatInt(int64(r), 16))
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
	return b.String()
}
