// SPDX-License-Identifier: MPL-2.0

package jsmodule

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// toFlow rewrites a JavaScript object literal into YAML flow syntax that
// decodes to the same values. String literals are decoded with JavaScript
// escape rules and re-emitted as YAML double-quoted scalars. Outside strings a
// `:` gets a following space and tabs become spaces, while comments and
// template literals are rejected. src starts on the given line of the module,
// and the output is padded so YAML line numbers match module line numbers.
func toFlow(src []byte, line int) ([]byte, error) {
	var out bytes.Buffer
	out.Grow(len(src) + len(src)/8 + line)
	out.WriteString(strings.Repeat("\n", line-1))

	for i := 0; i < len(src); {
		switch c := src[i]; c {
		case '\'', '"':
			s, n, err := readString(src[i:], line)
			if err != nil {
				return nil, err
			}
			writeFlowString(&out, s)
			// continued lines keep their newlines so later line numbers hold
			nl := bytes.Count(src[i:i+n], []byte("\n"))
			out.WriteString(strings.Repeat("\n", nl))
			line += nl
			i += n
		case '`':
			return nil, &SyntaxError{Line: line, Msg: "template literals are not supported"}
		case '/':
			return nil, &SyntaxError{Line: line, Msg: "comments are not supported"}
		case ':':
			out.WriteString(": ")
			i++
		case '\t':
			out.WriteByte(' ')
			i++
		case '\n':
			line++
			out.WriteByte(c)
			i++
		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.Bytes(), nil
}

// readString decodes the quoted string at the start of src and reports how
// many bytes it spans, quotes included.
func readString(src []byte, line int) (string, int, error) {
	q := src[0]
	var b strings.Builder

	for i := 1; i < len(src); {
		switch c := src[i]; c {
		case q:
			return b.String(), i + 1, nil
		case '\n', '\r':
			return "", 0, &SyntaxError{Line: line, Msg: "unterminated string"}
		case '\\':
			n, err := readEscape(&b, src[i+1:], line)
			if err != nil {
				return "", 0, err
			}
			i += 1 + n
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", 0, &SyntaxError{Line: line, Msg: "unterminated string"}
}

// readEscape decodes the escape sequence following a backslash and returns
// the number of bytes consumed.
func readEscape(b *strings.Builder, rest []byte, line int) (int, error) {
	if len(rest) == 0 {
		return 0, &SyntaxError{Line: line, Msg: "unterminated string"}
	}

	switch c := rest[0]; c {
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'v':
		b.WriteByte('\v')
	case '0':
		if len(rest) > 1 && rest[1] >= '0' && rest[1] <= '9' {
			return 0, &SyntaxError{Line: line, Msg: "octal escapes are not supported"}
		}
		b.WriteByte(0)
	case '\n':
		// line continuation
	case '\r':
		if len(rest) > 1 && rest[1] == '\n' {
			return 2, nil
		}
	case 'x':
		r, err := parseHex(rest[1:], 2, line)
		if err != nil {
			return 0, err
		}
		b.WriteRune(r)
		return 3, nil
	case 'u':
		return readUnicodeEscape(b, rest, line)
	default:
		if c >= '1' && c <= '9' {
			return 0, &SyntaxError{Line: line, Msg: "octal escapes are not supported"}
		}
		r, size := utf8.DecodeRune(rest)
		b.WriteRune(r)
		return size, nil
	}
	return 1, nil
}

// readUnicodeEscape handles \uXXXX, \u{X...} and UTF-16 surrogate pairs. rest
// starts at the 'u'.
func readUnicodeEscape(b *strings.Builder, rest []byte, line int) (int, error) {
	if len(rest) > 1 && rest[1] == '{' {
		end := bytes.IndexByte(rest, '}')
		if end < 3 {
			return 0, &SyntaxError{Line: line, Msg: "invalid unicode escape"}
		}
		v, err := strconv.ParseUint(string(rest[2:end]), 16, 32)
		if err != nil || v > unicode.MaxRune {
			return 0, &SyntaxError{Line: line, Msg: "invalid unicode escape"}
		}
		b.WriteRune(rune(v))
		return end + 1, nil
	}

	r, err := parseHex(rest[1:], 4, line)
	if err != nil {
		return 0, err
	}
	if utf16.IsSurrogate(r) && len(rest) >= 11 && rest[5] == '\\' && rest[6] == 'u' {
		if low, lowErr := parseHex(rest[7:], 4, line); lowErr == nil {
			if pair := utf16.DecodeRune(r, low); pair != utf8.RuneError {
				b.WriteRune(pair)
				return 11, nil
			}
		}
	}
	b.WriteRune(r)
	return 5, nil
}

func parseHex(src []byte, digits, line int) (rune, error) {
	if len(src) < digits {
		return 0, &SyntaxError{Line: line, Msg: "invalid hexadecimal escape"}
	}
	v, err := strconv.ParseUint(string(src[:digits]), 16, 32)
	if err != nil {
		return 0, &SyntaxError{Line: line, Msg: "invalid hexadecimal escape"}
	}
	return rune(v), nil
}

// writeFlowString writes s as a YAML double-quoted scalar. Non-printable
// runes are escaped since YAML rejects them inside scalars.
func writeFlowString(out *bytes.Buffer, s string) {
	out.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"':
			out.WriteString(`\"`)
		case r == '\\':
			out.WriteString(`\\`)
		case r == ' ' || unicode.IsPrint(r):
			out.WriteRune(r)
		case r > 0xFFFF:
			fmt.Fprintf(out, `\U%08x`, r)
		default:
			fmt.Fprintf(out, `\u%04x`, r)
		}
	}
	out.WriteByte('"')
}
