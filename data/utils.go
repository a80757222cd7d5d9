package data

import (
	"strconv"
	"strings"
)

// parseInt returns defaultValue for empty or invalid input.
func parseInt(s string, defaultValue int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseFloat returns defaultValue for empty or invalid input.
func parseFloat(s string, defaultValue float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// parseBool is true only for "true", case-insensitive.
func parseBool(s string) bool {
	return strings.ToLower(strings.TrimSpace(s)) == "true"
}

// splitList splits a "|" separated cell, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, "|") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
