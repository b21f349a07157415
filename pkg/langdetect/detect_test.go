package langdetect_test

import (
	"testing"

	"github.com/yaklabco/linepos/pkg/langdetect"
)

func TestDetectFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		content  string
		expected string
	}{
		{
			name:     "go file",
			path:     "main.go",
			content:  "package main\n\nfunc main() {}\n",
			expected: "go",
		},
		{
			name:     "json file",
			path:     "data.json",
			content:  `{"key": "value"}`,
			expected: "json",
		},
		{
			name:     "markdown file",
			path:     "README.md",
			content:  "# Title\n\nSome text.\n",
			expected: "markdown",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := langdetect.DetectFile(testCase.path, []byte(testCase.content))
			if got != testCase.expected {
				t.Errorf("expected %q, got %q", testCase.expected, got)
			}
		})
	}
}

func TestDetect_Shebang(t *testing.T) {
	t.Parallel()

	got := langdetect.Detect([]byte("#!/bin/sh\necho hi\n"))
	if got != "shell" {
		t.Errorf("expected %q, got %q", "shell", got)
	}
}

func TestDetect_EmptyFallsBack(t *testing.T) {
	t.Parallel()

	if got := langdetect.Detect(nil); got != "text" {
		t.Errorf("expected %q, got %q", "text", got)
	}
}
