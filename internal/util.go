package internal

// Reverse reverses values in place and returns it.
func Reverse[T any](values []T) []T {
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
	return values
}
