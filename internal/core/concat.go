package core

// ConcatenateArrays returns the elements of every sequence, in argument order.
// The result is never nil and never shares storage with its inputs.
func ConcatenateArrays[T any](seqs ...[]T) []T {
	total := 0
	for _, seq := range seqs {
		total += len(seq)
	}

	out := make([]T, 0, total)
	for _, seq := range seqs {
		out = append(out, seq...)
	}

	return out
}
