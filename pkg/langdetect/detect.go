// Package langdetect identifies the language of inspected files so the
// CLI can label positions with what kind of source they point into.
// Detection is best-effort via go-enry.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// langText is the fallback when detection fails.
const langText = "text"

// DetectFile returns the detected language for a file, using both its
// name and content. Returns "text" when detection fails.
func DetectFile(path string, content []byte) string {
	if lang := enry.GetLanguage(filepath.Base(path), content); lang != "" {
		return normalize(lang)
	}
	return Detect(content)
}

// Detect returns the detected language for content alone.
// Returns "text" if detection fails or confidence is low.
func Detect(content []byte) string {
	if len(content) == 0 {
		return langText
	}

	// Shebang is the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	candidates := []string{
		"Go", "Python", "Shell", "JavaScript", "TypeScript",
		"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
		"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
	}

	// Only trust the classifier when it reports high confidence.
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

func normalize(lang string) string {
	if lang == "" {
		return langText
	}
	return strings.ToLower(lang)
}
