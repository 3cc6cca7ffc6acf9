package nest

// NewLeaf creates a new leaf node holding v.
func NewLeaf[T any](v T) Nested[T] {
	return Nested[T]{
		LeafPart: &LeafPart[T]{
			Value: v,
		},
	}
}

// NewSeq creates a new sequence node from the given items, in order.
func NewSeq[T any](items ...Nested[T]) Nested[T] {
	return Nested[T]{
		SeqPart: &SeqPart[T]{
			Items: items,
		},
	}
}

// FromSlice builds a one-layer nested value: a sequence of leaves.
func FromSlice[T any](s []T) Nested[T] {
	items := make([]Nested[T], len(s))
	for i, v := range s {
		items[i] = NewLeaf(v)
	}
	return NewSeq(items...)
}

// FromSlice2 builds a two-layer nested value from a slice of slices.
func FromSlice2[T any](s [][]T) Nested[T] {
	items := make([]Nested[T], len(s))
	for i, inner := range s {
		items[i] = FromSlice(inner)
	}
	return NewSeq(items...)
}

// FromSlice3 builds a three-layer nested value. Deeper shapes compose via
// NewSeq.
func FromSlice3[T any](s [][][]T) Nested[T] {
	items := make([]Nested[T], len(s))
	for i, inner := range s {
		items[i] = FromSlice2(inner)
	}
	return NewSeq(items...)
}

// ToSlice converts a sequence of leaves back to a slice. It fails with a
// structural mismatch if n is not a sequence or any item is not a leaf.
func ToSlice[T any](n Nested[T]) ([]T, error) {
	if n.SeqPart == nil {
		return nil, NewStructuralMismatchError("expected a sequence, found " + kindName(n.Kind()))
	}
	out := make([]T, len(n.SeqPart.Items))
	for i, item := range n.SeqPart.Items {
		if item.LeafPart == nil {
			return nil, NewStructuralMismatchError("expected a leaf at " + pathString([]int{i}) + ", found " + kindName(item.Kind()))
		}
		out[i] = item.LeafPart.Value
	}
	return out, nil
}

// ToSlice2 converts a two-layer nested value back to a slice of slices.
func ToSlice2[T any](n Nested[T]) ([][]T, error) {
	if n.SeqPart == nil {
		return nil, NewStructuralMismatchError("expected a sequence, found " + kindName(n.Kind()))
	}
	out := make([][]T, len(n.SeqPart.Items))
	for i, item := range n.SeqPart.Items {
		inner, err := ToSlice(item)
		if err != nil {
			return nil, err
		}
		out[i] = inner
	}
	return out, nil
}

// ToSlice3 converts a three-layer nested value back to a nested slice.
func ToSlice3[T any](n Nested[T]) ([][][]T, error) {
	if n.SeqPart == nil {
		return nil, NewStructuralMismatchError("expected a sequence, found " + kindName(n.Kind()))
	}
	out := make([][][]T, len(n.SeqPart.Items))
	for i, item := range n.SeqPart.Items {
		inner, err := ToSlice2(item)
		if err != nil {
			return nil, err
		}
		out[i] = inner
	}
	return out, nil
}

func kindName(k Kind) string {
	if k == "" {
		return "an empty node"
	}
	return "a " + string(k)
}
