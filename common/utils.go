package common

// Coalesce returns the first non-zero value, or the zero value if all are zero.
// Configuration layers use it to fall back to defaults for unset fields.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
