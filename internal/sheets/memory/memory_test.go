package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRanges(t *testing.T) {
	s := New()
	grid := [][]string{{"a", "b"}, {"c", "d"}}
	s.SetTab("sheet-1", "My Tab", grid)

	got, err := s.FetchRanges(context.Background(), "sheet-1", []string{
		"'My Tab'!A1:AZ1000",
		"'Unseeded'!A1:AZ1000",
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, grid, got[0])
	assert.Nil(t, got[1], "unseeded tabs come back empty")
}

func TestFetchRangesUnknownSpreadsheet(t *testing.T) {
	s := New()
	got, err := s.FetchRanges(context.Background(), "nowhere", []string{"'Tab'!A1:B2"})
	require.NoError(t, err)
	assert.Nil(t, got[0])
}

func TestSetTabOverwrites(t *testing.T) {
	s := New()
	s.SetTab("sheet-1", "Tab", [][]string{{"old"}})
	s.SetTab("sheet-1", "Tab", [][]string{{"new"}})

	got, err := s.FetchRanges(context.Background(), "sheet-1", []string{"'Tab'!A1:B2"})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"new"}}, got[0])
}

func TestTabOf(t *testing.T) {
	assert.Equal(t, "My Tab", tabOf("'My Tab'!A1:AZ1000"))
	assert.Equal(t, "Plain", tabOf("Plain!A1:B2"))
	assert.Equal(t, "NoRange", tabOf("NoRange"))
}
