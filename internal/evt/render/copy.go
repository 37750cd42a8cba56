// Package render turns chain records into PostgreSQL writes: COPY text-format
// rows for the append-only tables and named statement invocations for the
// entity tables. Nothing in this package performs I/O.
package render

import (
	"strconv"
	"strings"
	"time"
)

const timeLayout = "2006-01-02T15:04:05.999999Z07:00"

// Row accumulates the fields of one line in COPY text format.
type Row struct {
	buf    []byte
	fields int
}

// Fields returns the number of fields written so far.
func (r *Row) Fields() int {
	return r.fields
}

// Text appends an escaped text field.
func (r *Row) Text(s string) *Row {
	r.next()
	r.buf = appendEscaped(r.buf, s)
	return r
}

// Int appends an integer field.
func (r *Row) Int(v int64) *Row {
	r.next()
	r.buf = strconv.AppendInt(r.buf, v, 10)
	return r
}

// Bool appends a boolean field.
func (r *Row) Bool(v bool) *Row {
	r.next()
	if v {
		r.buf = append(r.buf, 't')
	} else {
		r.buf = append(r.buf, 'f')
	}
	return r
}

// Time appends a timestamp with time zone field in UTC.
func (r *Row) Time(t time.Time) *Row {
	return r.Text(t.UTC().Format(timeLayout))
}

// Null appends a NULL field.
func (r *Row) Null() *Row {
	r.next()
	r.buf = append(r.buf, '\\', 'N')
	return r
}

// TextArray appends a text[] field.
func (r *Row) TextArray(values []string) *Row {
	return r.Text(ArrayLiteral(values))
}

// Line returns the encoded row terminated by a newline.
func (r *Row) Line() []byte {
	line := make([]byte, 0, len(r.buf)+1)
	line = append(line, r.buf...)
	return append(line, '\n')
}

func (r *Row) next() {
	if r.fields > 0 {
		r.buf = append(r.buf, '\t')
	}
	r.fields++
}

// ArrayLiteral renders values as a PostgreSQL array literal with every
// element quoted, e.g. {"a","b"}. An empty slice renders as {}.
func ArrayLiteral(values []string) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		for j := 0; j < len(v); j++ {
			if v[j] == '"' || v[j] == '\\' {
				b.WriteByte('\\')
			}
			b.WriteByte(v[j])
		}
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String()
}

func appendEscaped(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		default:
			dst = append(dst, c)
		}
	}
	return dst
}
