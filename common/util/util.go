package util

// Reversed returns a copy of the values in reverse order.
func Reversed[K any](values []K) []K {
	reversed := make([]K, len(values))
	for i, value := range values {
		reversed[len(values)-1-i] = value
	}
	return reversed
}

// AtLeast clamps value to minimum from below.
func AtLeast(value int, minimum int) int {
	if value < minimum {
		return minimum
	}
	return value
}
