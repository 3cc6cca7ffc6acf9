package nest

import (
	"bytes"
	"encoding/json"
)

// Nested represents a value built from layered ordered sequences around
// leaf values of type T. Exactly one of the case fields is populated.
type Nested[T any] struct {
	LeafPart *LeafPart[T] `json:"-"`
	SeqPart  *SeqPart[T]  `json:"-"`
}

type Kind string

const (
	KindLeaf Kind = "leaf"
	KindSeq  Kind = "seq"
)

func (n Nested[T]) Kind() Kind {
	switch {
	case n.LeafPart != nil:
		return KindLeaf
	case n.SeqPart != nil:
		return KindSeq
	default:
		return ""
	}
}

// LeafPart holds a value that is not descended into further.
type LeafPart[T any] struct {
	Value T
}

// SeqPart holds an ordered sequence of nested values. Items may be empty.
type SeqPart[T any] struct {
	Items []Nested[T]
}

// Len returns the number of items in a sequence node, or 0 for a leaf.
func (n Nested[T]) Len() int {
	if n.SeqPart == nil {
		return 0
	}
	return len(n.SeqPart.Items)
}

// MarshalJSON implements custom JSON marshaling for Nested. A sequence
// marshals as a JSON array of its items and a leaf marshals as its value, so
// the encoding is the literal nesting, e.g. [[1,2],[3]].
func (n Nested[T]) MarshalJSON() ([]byte, error) {
	if n.LeafPart != nil {
		return json.Marshal(n.LeafPart.Value)
	}
	if n.SeqPart != nil {
		if n.SeqPart.Items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(n.SeqPart.Items)
	}
	return nil, NewStructuralMismatchError("nested value has no content")
}

// UnmarshalJSON implements custom JSON unmarshaling for Nested, dispatching
// on a leading '[': arrays decode as sequences, anything else as a leaf of
// T. Leaf types that themselves encode as JSON arrays are ambiguous and not
// supported.
func (n *Nested[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		items := []Nested[T]{}
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		n.LeafPart = nil
		n.SeqPart = &SeqPart[T]{Items: items}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.SeqPart = nil
	n.LeafPart = &LeafPart[T]{Value: v}
	return nil
}
