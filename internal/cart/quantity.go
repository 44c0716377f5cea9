package cart

import (
	"strconv"
	"strings"
)

// NormalizeQuantity floors quantities at 1. Zero and negatives never delete
// a line.
func NormalizeQuantity(qty int) int {
	if qty <= 0 {
		return 1
	}
	return qty
}

// ParseQuantity reads a quantity form field. Empty, non-numeric and zero
// input become 1; negative numbers pass through for SetQuantity to floor.
func ParseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n == 0 {
		return 1
	}
	return n
}
