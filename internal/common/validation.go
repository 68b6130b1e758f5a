package common

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

const (
	MaxMessageLength = 1000
	MinTitleLength   = 3
	MaxTitleLength   = 255
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeContent strips all markup and returns trimmed plain text.
func SanitizeContent(content string) string {
	sanitized := strictPolicy.Sanitize(content)
	return strings.TrimSpace(html.UnescapeString(sanitized))
}

// ValidateMessageContent sanitizes user-authored message content and checks
// the 1..MaxMessageLength length rule. Returns the sanitized content.
func ValidateMessageContent(content string) (string, error) {
	sanitized := SanitizeContent(content)
	if sanitized == "" {
		return "", fmt.Errorf("%w: message content cannot be empty", ErrValidation)
	}
	if utf8.RuneCountInString(sanitized) > MaxMessageLength {
		return "", fmt.Errorf("%w: message content exceeds %d characters", ErrValidation, MaxMessageLength)
	}
	return sanitized, nil
}

// ValidateConversationTitle checks an explicitly set conversation title.
func ValidateConversationTitle(title string) error {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) < MinTitleLength {
		return fmt.Errorf("%w: title must be at least %d characters", ErrValidation, MinTitleLength)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", ErrValidation, MaxTitleLength)
	}
	return nil
}
