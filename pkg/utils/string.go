package utils

import "fmt"

// TruncateString is a helper function to shorten long strings for logging or display,
// preventing them from becoming excessively long. If the string's length exceeds
// maxLen, it is truncated and "..." is appended.
func TruncateString(s string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// RedactSecret describes a secret by its length only.
func RedactSecret(secret string) string {
	if secret == "" {
		return "<empty>"
	}
	return fmt.Sprintf("<redacted, %d chars>", len(secret))
}
