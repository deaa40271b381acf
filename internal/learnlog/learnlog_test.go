package learnlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	first := Entry{
		Timestamp:   time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
		CategoryID:  "food",
		Description: "스타벅스 아메리카노",
		Keywords:    []string{"스타벅스", "아메리카노"},
	}
	require.NoError(t, Append(dir, []Entry{first}))

	second := Entry{
		Timestamp:  time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC),
		CategoryID: "transport",
		Keywords:   []string{"카카오택시"},
	}
	require.NoError(t, Append(dir, []Entry{second}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}

func TestAppend_WritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	e := Entry{Timestamp: time.Now().UTC().Truncate(time.Second), CategoryID: "food"}

	require.NoError(t, Append(dir, []Entry{e}))
	require.NoError(t, Append(dir, []Entry{e}))

	data, err := os.ReadFile(filepath.Join(dir, "logs", "learning-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestRead_MissingLogIsEmpty(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUnmarshalEntry_FieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "three", "fields"})
	assert.Error(t, err)
}
