package checking

// Combine the elements at the same position of a and b.
// b must be at least as long as a.
func zipWith[A, B, C any](a []A, b []B, f func(A, B) C) []C {
	out := make([]C, len(a))
	for i := range a {
		out[i] = f(a[i], b[i])
	}
	return out
}

func mapValues[K comparable, V, W any](m map[K]V, f func(K, V) W) map[K]W {
	out := make(map[K]W, len(m))
	for k, v := range m {
		out[k] = f(k, v)
	}
	return out
}

func flatten[T any](nested [][]T) []T {
	n := 0
	for _, s := range nested {
		n += len(s)
	}
	out := make([]T, 0, n)
	for _, s := range nested {
		out = append(out, s...)
	}
	return out
}
