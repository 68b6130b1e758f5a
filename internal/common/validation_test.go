package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain text untouched", "hello there", "hello there"},
		{"markup stripped", "<b>hello</b> <i>there</i>", "hello there"},
		{"script removed", `<script>alert("x")</script>hi`, "hi"},
		{"entities unescaped", "fish &amp; chips", "fish & chips"},
		{"whitespace trimmed", "  padded  ", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeContent(tt.content))
		})
	}
}

func TestValidateMessageContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{"valid content", "hello", "hello", false},
		{"empty content", "", "", true},
		{"whitespace only", "   \n\t ", "", true},
		{"markup only collapses to empty", "<p></p>", "", true},
		{"max length accepted", strings.Repeat("a", MaxMessageLength), strings.Repeat("a", MaxMessageLength), false},
		{"over max length rejected", strings.Repeat("a", MaxMessageLength+1), "", true},
		{"markup stripped before check", "<b>ok</b>", "ok", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateMessageContent(tt.content)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateMessageContentRuneCounting(t *testing.T) {
	// Multibyte runes count as one character each.
	content := strings.Repeat("日", MaxMessageLength)
	_, err := ValidateMessageContent(content)
	assert.NoError(t, err)

	_, err = ValidateMessageContent(content + "本")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateConversationTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"valid title", "Weekend plans", false},
		{"minimum length", "abc", false},
		{"too short", "ab", true},
		{"whitespace not counted", "  a  ", true},
		{"maximum length", strings.Repeat("t", MaxTitleLength), false},
		{"too long", strings.Repeat("t", MaxTitleLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConversationTitle(tt.title)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
