package sliceutil

// Map applies mapper to each element of input and returns the results in
// order.
func Map[T any, U any](input []T, mapper func(T) U) []U {
	output := make([]U, len(input))
	for i, v := range input {
		output[i] = mapper(v)
	}
	return output
}

// MapErr is Map for mappers that can fail. The first error aborts the map
// and is returned unchanged.
func MapErr[T any, U any](input []T, mapper func(T) (U, error)) ([]U, error) {
	output := make([]U, len(input))
	for i, v := range input {
		mapped, err := mapper(v)
		if err != nil {
			return nil, err
		}
		output[i] = mapped
	}
	return output, nil
}

// Map2 applies mapper to every element two layers deep, preserving the
// shape of the outer layers.
func Map2[T any, U any](input [][]T, mapper func(T) U) [][]U {
	return Map(input, func(inner []T) []U {
		return Map(inner, mapper)
	})
}

// Map3 applies mapper to every element three layers deep.
func Map3[T any, U any](input [][][]T, mapper func(T) U) [][][]U {
	return Map(input, func(inner [][]T) [][]U {
		return Map2(inner, mapper)
	})
}

// Map4 applies mapper to every element four layers deep.
func Map4[T any, U any](input [][][][]T, mapper func(T) U) [][][][]U {
	return Map(input, func(inner [][][]T) [][][]U {
		return Map3(inner, mapper)
	})
}

// Map5 applies mapper to every element five layers deep.
func Map5[T any, U any](input [][][][][]T, mapper func(T) U) [][][][][]U {
	return Map(input, func(inner [][][][]T) [][][][]U {
		return Map4(inner, mapper)
	})
}
