package common

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page is one slice of a keyset-paginated listing. NextCursor is nil on the
// last page.
type Page[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"next_cursor,omitempty"`
}

// ClampLimit normalizes a caller-supplied page size.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageLimit
	}
	if limit > MaxPageLimit {
		return MaxPageLimit
	}
	return limit
}

// EncodeCursor packs the sort key of a row into an opaque token. Rows are
// ordered by (timestamp DESC, id DESC); the id breaks timestamp ties.
func EncodeCursor(t time.Time, id string) string {
	raw := t.UTC().Format(time.RFC3339Nano) + "|" + id
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor reverses EncodeCursor.
func DecodeCursor(cursor string) (time.Time, string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: malformed cursor", ErrValidation)
	}
	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, "", fmt.Errorf("%w: malformed cursor", ErrValidation)
	}
	t, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: malformed cursor", ErrValidation)
	}
	return t, parts[1], nil
}

// SlicePage applies the fetch-N+1 pagination rule: rows must have been
// queried with limit+1. The extra row only signals that more data exists;
// the cursor carries the sort key of the last returned row, matching the
// exclusive keyset bound the repositories query with.
func SlicePage[T any](rows []T, limit int, key func(T) string) Page[T] {
	if len(rows) <= limit {
		return Page[T]{Items: rows}
	}
	cursor := key(rows[limit-1])
	return Page[T]{Items: rows[:limit], NextCursor: &cursor}
}
