package utils

import (
	"strconv"
)

// ParseYear converts a year form value to *int. Empty or non-numeric input
// yields nil, the year is optional everywhere it appears.
func ParseYear(value string) *int {
	if value == "" {
		return nil
	}

	year, err := strconv.Atoi(value)
	if err != nil || year < 1800 || year > 3000 {
		return nil
	}

	return &year
}
