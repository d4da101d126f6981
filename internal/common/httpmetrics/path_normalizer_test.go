package httpmetrics_test

import (
	"testing"

	"github.com/mzhuravlev/feedback-board/internal/common/httpmetrics"
)

func TestNormalizePath(t *testing.T) {
	testCases := []struct {
		path     string
		expected string
	}{
		{"/", "/"},
		{"", "/"},
		{"/register", "/register"},
		{"/users/alice", "/users/{username}"},
		{"/users/alice/feedback", "/users/{username}/feedback"},
		{"/feedback/42", "/feedback/{id}"},
		{"/delete/7", "/delete/{id}"},
		{"/users/12345", "/users/{id}"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			if got := httpmetrics.NormalizePath(tc.path); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
