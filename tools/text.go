package tools

// Preview truncates s to at most max runes for log records, appending an
// ellipsis when anything was cut.
func Preview(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
