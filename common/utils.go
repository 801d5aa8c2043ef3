package common

// Coalesce picks the first value that is not the zero value of T. Hosts use it to fall back
// from an unset option (empty title, zero size) to its default.
//
// Parameters:
//   - values: candidates in priority order
//
// Returns:
//   - T: the first non-zero candidate, or the zero value when every candidate is zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
