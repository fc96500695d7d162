// Package logutil provides redaction and truncation helpers for values that
// page objects write to the structured log.
package logutil

import (
	"strings"
)

// IsSensitiveSelector returns true when a selector likely targets an input
// holding sensitive data, such as a password or SSN field.
func IsSensitiveSelector(selector string) bool {
	normalized := strings.ToLower(strings.TrimSpace(selector))
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ReplaceAll(normalized, "_", "")

	switch {
	case strings.Contains(normalized, "password"):
		return true
	case strings.Contains(normalized, "ssn"):
		return true
	case strings.Contains(normalized, "secret"):
		return true
	case strings.Contains(normalized, "token"):
		return true
	case strings.Contains(normalized, "dateofbirth"), strings.Contains(normalized, "dob"):
		return true
	default:
		return false
	}
}

// RedactFillValue redacts a fill value when its target selector looks sensitive.
func RedactFillValue(selector, value string) string {
	if IsSensitiveSelector(selector) {
		return "[REDACTED]"
	}
	return value
}

// TruncateForLog returns a single-line truncated preview of extracted DOM text.
func TruncateForLog(value string, maxChars int) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	normalized := strings.ReplaceAll(trimmed, "\n", "\\n")
	if maxChars <= 0 || len(normalized) <= maxChars {
		return normalized
	}
	return normalized[:maxChars] + "... [truncated]"
}
