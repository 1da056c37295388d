// Package fastjson scans loosely-formatted JSON objects without building a
// full document tree, the values are returned as raw sub-slices.
package fastjson

import (
	"bytes"
	"errors"
	"strconv"
	"unicode"
)

// ParseObject parses a top-level JSON object and returns the raw value bytes
// keyed by field name. Nested values stay unparsed. Any other top-level
// shape is an error.
func ParseObject(d []byte) (map[string][]byte, error) {
	i := firstNotSpace(d)
	if i >= len(d) || d[i] != '{' {
		return nil, errors.New("not a JSON object:\"" + string(d) + "\"")
	}

	m := map[string][]byte{}
	var k string
	for l := len(d); i < l; {
		switch n := d[i]; n {
		case '{', ',', ':':
			s, j, err := readValue(d[i+1:])
			if err != nil {
				return nil, err
			}
			i += j + 1

			if n == ':' {
				m[k] = s
			} else {
				k = string(s)
			}
		case '}':
			return m, nil
		default:
			if unicode.IsSpace(rune(n)) {
				i++
				continue
			}
			return nil, errors.New(
				"cannot parse object \"" + string(d) + "\", char:'" + string(n) + "'",
			)
		}
	}
	return nil, errors.New("unterminated object:\"" + string(d) + "\"")
}

// StringValues parses a top-level JSON object and returns its values as
// unescaped strings keyed by field name
func StringValues(d []byte) (map[string]string, error) {
	raw, err := ParseObject(d)
	if err != nil {
		return nil, err
	}

	m := make(map[string]string, len(raw))
	for k, v := range raw {
		m[k] = Unescape(v)
	}
	return m, nil
}

func readValue(d []byte) ([]byte, int, error) {
	for i, l := 0, len(d); i < l; i++ {
		n := d[i]
		if unicode.IsSpace(rune(n)) {
			continue
		}

		switch {
		case n == '{':
			v, j, err := readObject(d[i:])
			return v, i + j, err
		case n == '[':
			v, j, err := readArray(d[i:])
			return v, i + j, err
		case n == '"':
			return readString(d)
		case n == '-' || (n >= '0' && n <= '9'):
			v, j, err := readNumber(d[i:])
			return v, i + j, err
		case n == 't' || n == 'f' || n == 'n':
			v, j, err := readLiteral(d[i:])
			return v, i + j, err
		case n == ':' || n == '}' || n == ',':
			return d[:i], i, nil
		default:
			return nil, 0, errors.New(
				"cannot read value \"" + string(d) + "\", char:'" + string(n) + "'",
			)
		}
	}
	return nil, 0, errors.New("cannot read value \"" + string(d) + "\"")
}

// readString returns the bytes between the quotes, the escape sequences are
// kept as they are
func readString(d []byte) ([]byte, int, error) {
	s, l := -1, len(d)
	for i := 0; i < l; i++ {
		if d[i] == '"' {
			s = i
			break
		}
		if !unicode.IsSpace(rune(d[i])) {
			return nil, 0, errors.New("cannot read string:" + string(d))
		}
	}
	if s == -1 {
		return nil, 0, errors.New("cannot read string:" + string(d))
	}

	for i := s + 1; i < l; i++ {
		switch d[i] {
		case '\\':
			i++ // the escaped char
		case '"':
			return d[s+1 : i], i + 1, nil
		}
	}
	return nil, 0, errors.New("unterminated string:" + string(d))
}

func readNumber(d []byte) ([]byte, int, error) {
	for i, n := range d {
		switch {
		case n >= '0' && n <= '9':
		case n == '-' || n == '+':
		case n == 'e' || n == 'E':
		case n == '.':
		default:
			if i == 0 {
				return nil, 0, errors.New(
					"cannot read number \"" + string(d) + "\", char:'" + string(n) + "'",
				)
			}
			return d[:i], i, nil
		}
	}
	return d, len(d), nil
}

var literals = [][]byte{[]byte("true"), []byte("false"), []byte("null")}

func readLiteral(d []byte) ([]byte, int, error) {
	for _, lit := range literals {
		if bytes.HasPrefix(d, lit) {
			return d[:len(lit)], len(lit), nil
		}
	}
	return nil, 0, errors.New("cannot read literal:" + string(d))
}

func readArray(d []byte) ([]byte, int, error) {
	for i, l := 0, len(d); i < l; {
		switch n := d[i]; {
		case n == '[' || n == ',' || unicode.IsSpace(rune(n)):
			i++
		case n == ']':
			return d[:i+1], i + 1, nil
		default:
			_, k, err := readValue(d[i:])
			if err != nil {
				return nil, 0, err
			}
			if k == 0 {
				return nil, 0, errors.New("cannot read array:\"" + string(d) + "\"")
			}
			i += k
		}
	}
	return nil, 0, errors.New("unterminated array:\"" + string(d) + "\"")
}

func readObject(d []byte) ([]byte, int, error) {
	for i, l := 0, len(d); i < l; {
		switch n := d[i]; {
		case n == '{' || n == ',' || n == ':':
			_, k, err := readValue(d[i+1:])
			if err != nil {
				return nil, 0, err
			}
			i += k + 1
		case n == '}':
			return d[:i+1], i + 1, nil
		default:
			if unicode.IsSpace(rune(n)) {
				i++
				continue
			}
			return nil, 0, errors.New(
				"cannot read object \"" + string(d) + "\", char:'" + string(n) + "'",
			)
		}
	}
	return nil, 0, errors.New("unterminated object:\"" + string(d) + "\"")
}

// Unescape resolves the JSON escape sequences, the malformed ones are kept
// as they are
func Unescape(d []byte) string {
	if bytes.IndexByte(d, '\\') < 0 {
		return string(d)
	}

	buf := make([]byte, 0, len(d))
	for i, l := 0, len(d); i < l; i++ {
		c := d[i]
		if c != '\\' || i+1 >= l {
			buf = append(buf, c)
			continue
		}

		i++
		switch e := d[i]; e {
		case '"', '\\', '/':
			buf = append(buf, e)
		case 'b':
			buf = append(buf, '\b')
		case 'f':
			buf = append(buf, '\f')
		case 'n':
			buf = append(buf, '\n')
		case 'r':
			buf = append(buf, '\r')
		case 't':
			buf = append(buf, '\t')
		case 'u':
			if i+4 < l {
				if n, err := strconv.ParseUint(string(d[i+1:i+5]), 16, 32); err == nil {
					buf = append(buf, string(rune(n))...)
					i += 4
					break
				}
			}
			buf = append(buf, '\\', 'u')
		default:
			buf = append(buf, '\\', e)
		}
	}
	return string(buf)
}

func firstNotSpace(d []byte) int {
	for i, n := range d {
		if !unicode.IsSpace(rune(n)) {
			return i
		}
	}
	return len(d)
}
