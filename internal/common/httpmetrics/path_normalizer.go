package httpmetrics

import "strings"

// NormalizePath collapses unbounded path segments (usernames, numeric
// ids) into placeholders to keep metric label cardinality bounded.
func NormalizePath(path string) string {
	if path == "" {
		return "/"
	}

	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part == "" {
			continue
		}
		if isNumeric(part) {
			parts[i] = "{id}"
			continue
		}
		if i > 0 && parts[i-1] == "users" {
			parts[i] = "{username}"
		}
	}

	result := strings.Join(parts, "/")
	if result == "" {
		return "/"
	}

	return result
}

func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
