package validation

import (
	"strings"
	"unicode/utf8"
)

// MaxMessageRunes caps the length of a single chat message.
const MaxMessageRunes = 2000

// NormalizeMessage trims surrounding whitespace from a submitted message.
func NormalizeMessage(message string) string {
	return strings.TrimSpace(message)
}

// ValidateMessage checks that a normalized message is non-empty and not too long.
func ValidateMessage(message string) (bool, string) {
	if message == "" {
		return false, "Message is required"
	}
	if utf8.RuneCountInString(message) > MaxMessageRunes {
		return false, "Message is too long"
	}
	if !utf8.ValidString(message) {
		return false, "Message must be valid UTF-8"
	}
	return true, ""
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeMessage neutralizes markup in user text before it is redisplayed
// next to trusted reply markup.
func EscapeMessage(message string) string {
	return htmlEscaper.Replace(message)
}
