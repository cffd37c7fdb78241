package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex pattern for performance
var whitespaceRunRegex = regexp.MustCompile(`\s+`)

// normalizeText collapses all whitespace runs (including newlines) to a
// single space and trims the ends. Total and idempotent.
func normalizeText(s string) string {
	return strings.TrimSpace(whitespaceRunRegex.ReplaceAllString(s, " "))
}

// normalizeUpper prepares text for warning-phrase containment checks
func normalizeUpper(s string) string {
	return strings.ToUpper(normalizeText(s))
}

// normalizeLower prepares text for free-text containment checks
func normalizeLower(s string) string {
	return strings.ToLower(normalizeText(s))
}
