// Package memory is a fixture-backed RangeFetcher for tests and local
// development without Sheets credentials.
package memory

import (
	"context"
	"strings"
	"sync"

	"pacedash/internal/sheets"
)

type Store struct {
	mu    sync.Mutex
	grids map[string]map[string][][]string // spreadsheetID -> tab name -> grid
}

var _ sheets.RangeFetcher = (*Store)(nil)

func New() *Store {
	return &Store{grids: make(map[string]map[string][][]string)}
}

// SetTab seeds the grid returned for a tab of a spreadsheet.
func (s *Store) SetTab(spreadsheetID, tab string, grid [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grids[spreadsheetID] == nil {
		s.grids[spreadsheetID] = make(map[string][][]string)
	}
	s.grids[spreadsheetID][tab] = grid
}

// FetchRanges resolves each range to its tab's seeded grid. Unseeded tabs
// yield empty grids, matching how the Sheets API treats blank ranges.
func (s *Store) FetchRanges(_ context.Context, spreadsheetID string, ranges []string) ([][][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([][][]string, len(ranges))
	for i, r := range ranges {
		out[i] = s.grids[spreadsheetID][tabOf(r)]
	}
	return out, nil
}

// tabOf extracts the tab name from an A1 range like "'My Tab'!A1:AZ1000".
func tabOf(a1 string) string {
	tab := a1
	if i := strings.LastIndex(tab, "!"); i >= 0 {
		tab = tab[:i]
	}
	return strings.Trim(tab, "'")
}
