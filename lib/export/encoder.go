// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// StreamHeader opens every exported asset file.
const StreamHeader = "%YAML 1.1\n%TAG !u! tag:unity3d.com,2011:\n"

// Encoder renders documents to a writer. The stream header is written
// before the first document.
type Encoder struct {
	writer        io.Writer
	headerWritten bool
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{writer: w}
}

// Encode renders one document.
func (e *Encoder) Encode(document *Document) error {
	if document == nil || document.Root == nil {
		return fmt.Errorf("encoding document: missing root mapping")
	}

	var buffer bytes.Buffer
	if !e.headerWritten {
		buffer.WriteString(StreamHeader)
	}
	writeDocument(&buffer, document)

	if _, err := e.writer.Write(buffer.Bytes()); err != nil {
		return fmt.Errorf("writing document &%d: %w", document.Anchor, err)
	}
	e.headerWritten = true
	return nil
}

// EncodeAll renders documents in order.
func (e *Encoder) EncodeAll(documents []*Document) error {
	for _, document := range documents {
		if err := e.Encode(document); err != nil {
			return err
		}
	}
	return nil
}

// Render returns the complete text of a stream holding documents.
func Render(documents []*Document) ([]byte, error) {
	var buffer bytes.Buffer
	if err := NewEncoder(&buffer).EncodeAll(documents); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Flush renders every document the context has accumulated.
func (c *Context) Flush(w io.Writer) error {
	return NewEncoder(w).EncodeAll(c.Documents())
}

func writeDocument(b *bytes.Buffer, document *Document) {
	fmt.Fprintf(b, "--- !u!%d &%d\n", document.Tag, document.Anchor)
	b.WriteString(document.ClassName)
	b.WriteByte(':')
	writeValue(b, document.Root, 0)
}

func writeIndent(b *bytes.Buffer, indent int) {
	for range indent {
		b.WriteByte(' ')
	}
}

// writeMapping writes a block mapping's entries at indent. When
// firstInline is set the first entry continues the current line (after
// a sequence item's "- ").
func writeMapping(b *bytes.Buffer, m *Mapping, indent int, firstInline bool) {
	for i, entry := range m.Entries {
		if i > 0 || !firstInline {
			writeIndent(b, indent)
		}
		b.WriteString(formatKey(entry.Key))
		b.WriteByte(':')
		writeValue(b, entry.Value, indent)
	}
}

// writeValue writes the part of a line after "key:", including the
// newline, and any nested block content. indent is the key's indent.
func writeValue(b *bytes.Buffer, value Node, indent int) {
	switch v := value.(type) {
	case Scalar:
		b.WriteByte(' ')
		b.WriteString(formatScalar(v))
		b.WriteByte('\n')
	case *Mapping:
		if v.Flow || v.Len() == 0 {
			b.WriteByte(' ')
			writeFlow(b, v)
			b.WriteByte('\n')
			return
		}
		b.WriteByte('\n')
		writeMapping(b, v, indent+2, false)
	case *Sequence:
		if isInlineSequence(v) {
			b.WriteByte(' ')
			writeFlow(b, v)
			b.WriteByte('\n')
			return
		}
		b.WriteByte('\n')
		writeBlockSequence(b, v, indent)
	default:
		b.WriteString(" {}\n")
	}
}

// writeBlockSequence writes "- " items at indent, the same column as
// the key that owns the sequence.
func writeBlockSequence(b *bytes.Buffer, s *Sequence, indent int) {
	for _, item := range s.Items {
		writeIndent(b, indent)
		b.WriteByte('-')
		switch v := item.(type) {
		case *Mapping:
			if v.Flow || v.Len() == 0 {
				b.WriteByte(' ')
				writeFlow(b, v)
				b.WriteByte('\n')
				continue
			}
			b.WriteByte(' ')
			writeMapping(b, v, indent+2, true)
		case *Sequence:
			if isInlineSequence(v) {
				b.WriteByte(' ')
				writeFlow(b, v)
				b.WriteByte('\n')
				continue
			}
			b.WriteByte('\n')
			writeBlockSequence(b, v, indent+2)
		default:
			writeValue(b, item, indent)
		}
	}
}

func isInlineSequence(s *Sequence) bool {
	for _, item := range s.Items {
		if _, ok := item.(Scalar); !ok {
			return false
		}
	}
	return true
}

// writeFlow writes a node in inline form.
func writeFlow(b *bytes.Buffer, value Node) {
	switch v := value.(type) {
	case Scalar:
		b.WriteString(formatScalar(v))
	case *Mapping:
		b.WriteByte('{')
		for i, entry := range v.Entries {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(formatKey(entry.Key))
			b.WriteString(": ")
			writeFlow(b, entry.Value)
		}
		b.WriteByte('}')
	case *Sequence:
		b.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			writeFlow(b, item)
		}
		b.WriteByte(']')
	default:
		b.WriteString("{}")
	}
}

func formatScalar(s Scalar) string {
	if s.Kind != StringScalar {
		return s.Text()
	}
	return quoteIfNeeded(s.Str)
}

func formatKey(key string) string {
	return quoteIfNeeded(key)
}

// indicatorCharacters may not start a plain scalar.
const indicatorCharacters = "-?:,[]{}#&*!|>'\"%@`"

// needsQuoting reports whether value cannot be written as a plain
// scalar without changing its meaning.
func needsQuoting(value string) bool {
	if value == "" {
		return false
	}
	if value[0] == ' ' || value[len(value)-1] == ' ' {
		return true
	}
	if strings.IndexByte(indicatorCharacters, value[0]) >= 0 {
		// A lone "-" followed by a digit is a plain negative number
		// in the engine's own output.
		if !(value[0] == '-' && len(value) > 1 && value[1] >= '0' && value[1] <= '9') {
			return true
		}
	}
	if !utf8.ValidString(value) {
		return true
	}
	for i := 0; i < len(value); i++ {
		switch c := value[i]; {
		case c < 0x20 || c == 0x7f:
			return true
		case c == ':' || c == '#' || c == ',' || c == '[' || c == ']' || c == '{' || c == '}':
			return true
		case c == '"' || c == '\\':
			return true
		}
	}
	return false
}

func quoteIfNeeded(value string) string {
	if !needsQuoting(value) {
		return value
	}
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c >= utf8.RuneSelf {
			// Bytes outside a UTF-8 sequence are escaped.
			if r, size := utf8.DecodeRuneInString(value[i:]); r != utf8.RuneError || size > 1 {
				b.WriteString(value[i : i+size])
				i += size - 1
			} else {
				fmt.Fprintf(&b, `\x%02x`, c)
			}
			continue
		}
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
