package components

import "fmt"

// Truncate shortens s to at most max runes, appending an ellipsis when it
// had to cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// CountLabel renders "3 followers" style labels. The plural form is explicit
// because not every noun takes an s ("2 following").
func CountLabel(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
