package http

import (
	"strconv"
	"strings"
)

// PathSegment returns the path segment immediately after prefix, plus
// any trailing remainder. "/users/alice/feedback" with prefix "/users/"
// yields ("alice", "/feedback", true).
func PathSegment(path, prefix string) (segment, rest string, ok bool) {
	if !strings.HasPrefix(path, prefix) {
		return "", "", false
	}

	remaining := strings.TrimPrefix(path, prefix)
	if remaining == "" {
		return "", "", false
	}

	if idx := strings.Index(remaining, "/"); idx != -1 {
		return remaining[:idx], remaining[idx:], true
	}
	return remaining, "", true
}

// PathID parses the segment after prefix as a positive integer id.
func PathID(path, prefix string) (int64, bool) {
	segment, rest, ok := PathSegment(path, prefix)
	if !ok || rest != "" {
		return 0, false
	}

	if strings.HasPrefix(segment, "+") {
		return 0, false
	}
	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
