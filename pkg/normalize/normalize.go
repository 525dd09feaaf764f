package normalize

import "strings"

// Fold trims and lowercases free-text identifiers (truck numbers, plant
// names) so the engine and the priority router match rows the same way.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
