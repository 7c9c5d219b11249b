package domain

import (
	"math"
	"strconv"
	"strings"
)

// DefaultLimit is used when the limit input is empty or not a positive number.
const DefaultLimit = 10

// CoerceLimit turns raw limit input into a positive integer. Empty,
// non-numeric and non-positive input all fall back to DefaultLimit.
func CoerceLimit(input string) int {
	input = strings.TrimSpace(input)
	if input == "" {
		return DefaultLimit
	}

	f, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(f) || f < 1 || f > 1e6 {
		return DefaultLimit
	}
	return int(f)
}
