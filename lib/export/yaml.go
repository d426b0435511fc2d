// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler, giving tooling a plain YAML
// view of a document tree without the engine's stream header, tags or
// anchors. Scalars keep their engine spelling (booleans as 0 and 1).
func (m *Mapping) MarshalYAML() (any, error) {
	return toYAML(m), nil
}

// MarshalYAML implements yaml.Marshaler.
func (s *Sequence) MarshalYAML() (any, error) {
	return toYAML(s), nil
}

// PlainYAML returns the document's root, nested under its class name,
// as standalone YAML.
func (d *Document) PlainYAML() ([]byte, error) {
	wrapper := NewMapping().Add(d.ClassName, d.Root)
	return yaml.Marshal(wrapper)
}

func toYAML(value Node) *yaml.Node {
	switch v := value.(type) {
	case *Mapping:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if v.Flow {
			node.Style = yaml.FlowStyle
		}
		for _, entry := range v.Entries {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Key}
			node.Content = append(node.Content, key, toYAML(entry.Value))
		}
		return node
	case *Sequence:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if isInlineSequence(v) {
			node.Style = yaml.FlowStyle
		}
		for _, item := range v.Items {
			node.Content = append(node.Content, toYAML(item))
		}
		return node
	case Scalar:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: scalarTag(v), Value: v.Text()}
	default:
		return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Style: yaml.FlowStyle}
	}
}

func scalarTag(s Scalar) string {
	switch s.Kind {
	case IntScalar, UintScalar, BoolScalar:
		return "!!int"
	case FloatScalar:
		return "!!float"
	default:
		return "!!str"
	}
}
