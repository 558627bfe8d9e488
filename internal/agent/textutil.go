package agent

import "strings"

// snippet flattens text to one line and truncates it for log entries and
// payloads.
func snippet(text string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) <= limit {
		return text
	}
	return text[:limit-1] + "…"
}

// normKey upper-cases a core key and collapses every run of characters
// outside [A-Z0-9_] into a single underscore.
func normKey(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	var b strings.Builder
	lastUnderscore := false
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
			lastUnderscore = r == '_'
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return b.String()
}

// splitSymbolKey turns "SYMBOL:A:B" into its normalized symbol names.
func splitSymbolKey(key string) []string {
	var out []string
	for _, part := range strings.Split(strings.TrimPrefix(key, "SYMBOL:"), ":") {
		if p := normKey(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
