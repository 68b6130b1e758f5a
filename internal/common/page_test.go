package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero falls back to default", 0, DefaultPageLimit},
		{"negative falls back to default", -5, DefaultPageLimit},
		{"in range passes through", 42, 42},
		{"above max is capped", 500, MaxPageLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampLimit(tt.limit))
		})
	}
}

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.UTC)
	cursor := EncodeCursor(at, "msg-42")

	gotAt, gotID, err := DecodeCursor(cursor)
	require.NoError(t, err)
	assert.True(t, at.Equal(gotAt))
	assert.Equal(t, "msg-42", gotID)
}

func TestDecodeCursorMalformed(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{"not base64", "!!not-base64!!"},
		{"missing separator", "bm9zZXBhcmF0b3I"},
		{"bad timestamp", "bm90LWEtdGltZXxpZA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeCursor(tt.cursor)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

type pageRow struct {
	id string
	at time.Time
}

// fetchBefore emulates the repositories' exclusive keyset predicate over an
// in-memory slice already ordered by (at DESC, id DESC).
func fetchBefore(rows []pageRow, before *time.Time, beforeID string, limit int) []pageRow {
	out := make([]pageRow, 0, limit)
	for _, r := range rows {
		if before != nil {
			older := r.at.Before(*before) || (r.at.Equal(*before) && r.id < beforeID)
			if !older {
				continue
			}
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out
}

func TestSlicePageChaining(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := []pageRow{
		{id: "m5", at: base.Add(5 * time.Minute)},
		{id: "m4", at: base.Add(4 * time.Minute)},
		{id: "m3", at: base.Add(3 * time.Minute)},
		{id: "m2", at: base.Add(2 * time.Minute)},
		{id: "m1", at: base.Add(1 * time.Minute)},
	}

	const limit = 2
	var cursor *string
	var collected []string

	for i := 0; i < 10; i++ {
		var before *time.Time
		var beforeID string
		if cursor != nil {
			at, id, err := DecodeCursor(*cursor)
			require.NoError(t, err)
			before, beforeID = &at, id
		}

		fetched := fetchBefore(rows, before, beforeID, limit+1)
		page := SlicePage(fetched, limit, func(r pageRow) string {
			return EncodeCursor(r.at, r.id)
		})

		for _, r := range page.Items {
			collected = append(collected, r.id)
		}
		if page.NextCursor == nil {
			break
		}
		cursor = page.NextCursor
	}

	assert.Equal(t, []string{"m5", "m4", "m3", "m2", "m1"}, collected)
}

func TestSlicePageLastPage(t *testing.T) {
	rows := []pageRow{
		{id: "m2", at: time.Now()},
		{id: "m1", at: time.Now()},
	}

	page := SlicePage(rows, 5, func(r pageRow) string { return r.id })
	assert.Len(t, page.Items, 2)
	assert.Nil(t, page.NextCursor)
}

func TestSlicePageCursorIsLastReturnedRow(t *testing.T) {
	rows := []pageRow{{id: "m3"}, {id: "m2"}, {id: "m1"}}

	page := SlicePage(rows, 2, func(r pageRow) string { return r.id })
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, "m2", *page.NextCursor)
	assert.Len(t, page.Items, 2)
}
