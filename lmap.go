package nest

// LMap descends exactly level sequence layers through n, applies fn to every
// value found there, and rebuilds the surrounding shape unchanged. The value
// at the target depth may be a leaf or a further nested structure; fn
// receives it either way. level 0 applies fn to n itself. The input is never
// mutated; the result shares no state with it above the mapped positions.
//
// A negative level fails before any traversal. A leaf (or empty node)
// encountered before level layers have been descended fails with a
// structural mismatch naming the offending position.
func LMap[T any, U any](n Nested[T], level int, fn func(Nested[T]) Nested[U]) (Nested[U], error) {
	return LMapErr(n, level, func(x Nested[T]) (Nested[U], error) {
		return fn(x), nil
	})
}

// LMapErr is LMap for transformations that can fail. An error from fn aborts
// the traversal and propagates to the caller unchanged.
func LMapErr[T any, U any](n Nested[T], level int, fn func(Nested[T]) (Nested[U], error)) (Nested[U], error) {
	if level < 0 {
		return Nested[U]{}, NewInvalidLevelError(level)
	}
	return lmapNode(n, level, nil, fn)
}

// LMapValues is a leaf-to-leaf convenience over LMap for the common case
// where the values at the target depth are leaves. A sequence found at the
// target depth is a structural mismatch.
func LMapValues[T any, U any](n Nested[T], level int, fn func(T) U) (Nested[U], error) {
	return LMapErr(n, level, func(x Nested[T]) (Nested[U], error) {
		if x.LeafPart == nil {
			return Nested[U]{}, NewStructuralMismatchError("expected a leaf at the target depth, found " + kindName(x.Kind()))
		}
		return NewLeaf(fn(x.LeafPart.Value)), nil
	})
}

func lmapNode[T any, U any](n Nested[T], level int, path []int, fn func(Nested[T]) (Nested[U], error)) (Nested[U], error) {
	if level == 0 {
		return fn(n)
	}
	if n.SeqPart == nil {
		return Nested[U]{}, newMismatchAtPath(path, level, n.Kind())
	}
	items := make([]Nested[U], len(n.SeqPart.Items))
	for i, item := range n.SeqPart.Items {
		mapped, err := lmapNode(item, level-1, append(path, i), fn)
		if err != nil {
			return Nested[U]{}, err
		}
		items[i] = mapped
	}
	return NewSeq(items...), nil
}

// L2Map is LMap at level 2.
func L2Map[T any, U any](n Nested[T], fn func(Nested[T]) Nested[U]) (Nested[U], error) {
	return LMap(n, 2, fn)
}

// L3Map is LMap at level 3.
func L3Map[T any, U any](n Nested[T], fn func(Nested[T]) Nested[U]) (Nested[U], error) {
	return LMap(n, 3, fn)
}

// L4Map is LMap at level 4.
func L4Map[T any, U any](n Nested[T], fn func(Nested[T]) Nested[U]) (Nested[U], error) {
	return LMap(n, 4, fn)
}

// L5Map is LMap at level 5.
func L5Map[T any, U any](n Nested[T], fn func(Nested[T]) Nested[U]) (Nested[U], error) {
	return LMap(n, 5, fn)
}
