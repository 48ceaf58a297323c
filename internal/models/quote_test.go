package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDs(t *testing.T) {
	local := NewLocalID()
	imported := NewImportedID()

	assert.True(t, strings.HasPrefix(local, LocalIDPrefix))
	assert.True(t, strings.HasPrefix(imported, ImportedIDPrefix))
	assert.NotEqual(t, local, NewLocalID())

	assert.True(t, IsLocalID(local))
	assert.True(t, IsLocalID(imported))
	assert.True(t, IsLocalID(DefaultIDPrefix+"1"))
	assert.False(t, IsLocalID("42"))
}

func TestQuote_Normalize(t *testing.T) {
	added := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	q := Quote{
		ID:           "1",
		Text:         "  Keep going.  ",
		Category:     " Motivation ",
		DateAdded:    added,
		LastModified: added.Add(-time.Hour),
	}
	q.Normalize()

	assert.Equal(t, "Keep going.", q.Text)
	assert.Equal(t, "motivation", q.Category)
	assert.Equal(t, added, q.LastModified)
}

func TestQuote_Validate(t *testing.T) {
	tests := []struct {
		name  string
		quote Quote
		field string
	}{
		{name: "valid", quote: Quote{ID: "1", Text: "t", Category: "c"}},
		{name: "missing id", quote: Quote{Text: "t", Category: "c"}, field: "id"},
		{name: "blank text", quote: Quote{ID: "1", Text: "  ", Category: "c"}, field: "text"},
		{name: "missing category", quote: Quote{ID: "1", Text: "t"}, field: "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.quote.Validate()
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestQuote_TouchNeverBeforeDateAdded(t *testing.T) {
	added := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	q := Quote{DateAdded: added}

	q.Touch(added.Add(-time.Minute))
	assert.Equal(t, added, q.LastModified)

	q.Touch(added.Add(time.Minute))
	assert.Equal(t, added.Add(time.Minute), q.LastModified)
}

func TestQuote_IsCustom(t *testing.T) {
	assert.True(t, (&Quote{ID: NewLocalID(), Source: SourceLocal}).IsCustom())
	assert.True(t, (&Quote{ID: NewImportedID(), Source: SourceImported}).IsCustom())
	assert.False(t, (&Quote{ID: DefaultIDPrefix + "3", Source: SourceLocal}).IsCustom())
	assert.False(t, (&Quote{ID: "7", Source: SourceServer}).IsCustom())
}

func TestDefaultQuotes(t *testing.T) {
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	quotes := DefaultQuotes(now)

	require.Len(t, quotes, 8)
	seen := make(map[string]bool)
	for i, q := range quotes {
		require.NoError(t, q.Validate())
		assert.False(t, seen[q.ID], "duplicate id %s", q.ID)
		seen[q.ID] = true
		assert.True(t, strings.HasPrefix(q.ID, DefaultIDPrefix))
		assert.Equal(t, SourceLocal, q.Source)
		assert.Equal(t, now, q.DateAdded, "quote %d", i)
	}
	assert.Equal(t, DefaultQuotes(now), quotes)
}
