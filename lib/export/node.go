// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"math"
	"strconv"
)

// Node is one value in a document tree: *Mapping, *Sequence or Scalar.
type Node interface {
	node()
}

// ScalarKind identifies how a scalar is rendered.
type ScalarKind uint8

const (
	IntScalar ScalarKind = iota
	UintScalar
	FloatScalar
	BoolScalar
	StringScalar
	BytesScalar
)

// Scalar is a leaf value.
type Scalar struct {
	Kind  ScalarKind
	Int   int64
	Uint  uint64
	Float float64
	Bool  bool
	Str   string
	Bytes []byte

	// Single marks floats that were decoded as 32-bit, so they render
	// with the shortest representation that round-trips at that width.
	Single bool
}

func (Scalar) node() {}

func Int(v int64) Scalar     { return Scalar{Kind: IntScalar, Int: v} }
func Uint(v uint64) Scalar   { return Scalar{Kind: UintScalar, Uint: v} }
func Bool(v bool) Scalar     { return Scalar{Kind: BoolScalar, Bool: v} }
func String(v string) Scalar { return Scalar{Kind: StringScalar, Str: v} }
func Bytes(v []byte) Scalar  { return Scalar{Kind: BytesScalar, Bytes: v} }

// Float32 returns a scalar for a 32-bit float.
func Float32(v float32) Scalar {
	return Scalar{Kind: FloatScalar, Float: float64(v), Single: true}
}

// Float64 returns a scalar for a 64-bit float.
func Float64(v float64) Scalar { return Scalar{Kind: FloatScalar, Float: v} }

// Text returns the scalar's rendered form, before any quoting.
func (s Scalar) Text() string {
	switch s.Kind {
	case IntScalar:
		return strconv.FormatInt(s.Int, 10)
	case UintScalar:
		return strconv.FormatUint(s.Uint, 10)
	case FloatScalar:
		return formatFloat(s.Float, s.Single)
	case BoolScalar:
		if s.Bool {
			return "1"
		}
		return "0"
	case BytesScalar:
		return hexString(s.Bytes)
	default:
		return s.Str
	}
}

func formatFloat(value float64, single bool) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	}
	bits := 64
	if single {
		bits = 32
	}
	return strconv.FormatFloat(value, 'f', -1, bits)
}

func hexString(data []byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, len(data)*2)
	for i, b := range data {
		out[i*2] = digits[b>>4]
		out[i*2+1] = digits[b&0x0f]
	}
	return string(out)
}

// Entry is one key/value pair of a mapping.
type Entry struct {
	Key   string
	Value Node
}

// Mapping is an ordered key/value node. Keys render in insertion order.
type Mapping struct {
	Entries []Entry

	// Flow renders the mapping inline as {k: v, ...}. Used for small
	// value structs such as vectors and references.
	Flow bool
}

func (*Mapping) node() {}

// NewMapping returns an empty block mapping.
func NewMapping() *Mapping { return &Mapping{} }

// NewFlowMapping returns an empty inline mapping.
func NewFlowMapping() *Mapping { return &Mapping{Flow: true} }

// Add appends key with an arbitrary node value.
func (m *Mapping) Add(key string, value Node) *Mapping {
	m.Entries = append(m.Entries, Entry{Key: key, Value: value})
	return m
}

func (m *Mapping) AddInt(key string, v int64) *Mapping     { return m.Add(key, Int(v)) }
func (m *Mapping) AddUint(key string, v uint64) *Mapping   { return m.Add(key, Uint(v)) }
func (m *Mapping) AddFloat(key string, v float32) *Mapping { return m.Add(key, Float32(v)) }
func (m *Mapping) AddBool(key string, v bool) *Mapping     { return m.Add(key, Bool(v)) }
func (m *Mapping) AddString(key string, v string) *Mapping { return m.Add(key, String(v)) }
func (m *Mapping) AddBytes(key string, v []byte) *Mapping  { return m.Add(key, Bytes(v)) }

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Node, bool) {
	for _, entry := range m.Entries {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return nil, false
}

// Keys returns the mapping's keys in order.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.Entries))
	for i, entry := range m.Entries {
		keys[i] = entry.Key
	}
	return keys
}

// Len returns the number of entries.
func (m *Mapping) Len() int { return len(m.Entries) }

// Sequence is an ordered list node.
type Sequence struct {
	Items []Node
}

func (*Sequence) node() {}

// NewSequence returns a sequence holding items.
func NewSequence(items ...Node) *Sequence {
	return &Sequence{Items: items}
}

// Append adds an item.
func (s *Sequence) Append(item Node) *Sequence {
	s.Items = append(s.Items, item)
	return s
}

// Len returns the number of items.
func (s *Sequence) Len() int { return len(s.Items) }

// Document is one top-level object in the output stream.
type Document struct {
	// Tag is the class id rendered as "!u!<tag>".
	Tag int32

	// Anchor is the document's per-session anchor rendered as "&<anchor>".
	Anchor int64

	// ClassName is the root key the mapping is nested under.
	ClassName string

	// Root holds the object's fields.
	Root *Mapping
}
