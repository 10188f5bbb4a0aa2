// Package redact shortens matched secret values so they can be shown on a
// terminal without exposing the full value.
package redact

const ellipsis = "…"

// Shorten returns a display-safe form of s. Values longer than 20 characters
// keep their first 12 and last 4 characters; shorter values keep at most the
// first 8. Lengths are counted in runes.
func Shorten(s string) string {
	r := []rune(s)
	if len(r) > 20 {
		return string(r[:12]) + ellipsis + string(r[len(r)-4:])
	}
	if len(r) > 8 {
		r = r[:8]
	}
	return string(r) + ellipsis
}
