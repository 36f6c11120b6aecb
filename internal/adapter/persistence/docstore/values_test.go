package docstore

import (
	"testing"
	"time"

	"portfolio_backend/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp_SortsLexicographically(t *testing.T) {
	a := FormatTimestamp(time.Date(2024, 1, 1, 0, 0, 5, 100_000_000, time.UTC))
	b := FormatTimestamp(time.Date(2024, 1, 1, 0, 0, 5, 120_000_000, time.UTC))
	assert.Equal(t, "2024-01-01T00:00:05.100000000Z", a)
	assert.Less(t, a, b)
}

func TestFormatTimestamp_KeepsNanoseconds(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 5, 431_561_147, time.UTC)
	a := FormatTimestamp(at)
	b := FormatTimestamp(at.Add(time.Nanosecond))
	assert.Equal(t, "2024-01-01T00:00:05.431561147Z", a)
	assert.Less(t, a, b)

	got, ok := ParseTimestamp(a)
	assert.True(t, ok)
	assert.True(t, at.Equal(got))
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, 3, 2, 8, 30, 0, 0, time.UTC)

	got, ok := ParseTimestamp("2024-03-02T08:30:00.000Z")
	assert.True(t, ok)
	assert.True(t, want.Equal(got))

	got, ok = ParseTimestamp(want.In(time.FixedZone("x", 3600)))
	assert.True(t, ok)
	assert.Equal(t, time.UTC, got.Location())

	_, ok = ParseTimestamp("yesterday")
	assert.False(t, ok)
	_, ok = ParseTimestamp(42)
	assert.False(t, ok)
}

func TestSortDocuments_MixedValues(t *testing.T) {
	docs := []interfaces.Document{
		{"n": 2.0},
		{"other": true},
		{"n": int64(10)},
		{"n": 1},
	}
	sortDocuments(docs, "n", interfaces.SortAscending)
	assert.Equal(t, 1, docs[0]["n"])
	assert.Equal(t, 2.0, docs[1]["n"])
	assert.Equal(t, int64(10), docs[2]["n"])
	_, hasN := docs[3]["n"]
	assert.False(t, hasN, "documents without the field sort last")
}
