package tasks

import (
	"math"
	"strconv"
	"strings"
)

// ParseEstimate reads an hours estimate from form input. Anything that is
// not a finite non-negative number becomes 0.
func ParseEstimate(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return clampEstimate(v)
}

func clampEstimate(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ParseTags splits comma separated input into trimmed, non-empty tags.
// Order and duplicates are kept. The result is never nil.
func ParseTags(s string) []string {
	tags := []string{}
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// FormatTags is the inverse of ParseTags for prefilling form input
func FormatTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// FormatEstimate renders an estimate without a trailing ".0"
func FormatEstimate(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
