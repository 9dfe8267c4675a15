package ranking

import "strings"

// Normalize keeps ASCII letters and spaces only, then collapses whitespace.
// Two mentions of the same player must normalize to the same string for
// aggregation to group them.
func Normalize(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == ' ' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			sb.WriteByte(c)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
