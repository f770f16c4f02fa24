// Package sheets defines the outbound port to the spreadsheet source.
package sheets

import "context"

// RangeFetcher reads a batch of A1 ranges from one spreadsheet in a single
// round trip. The result holds one grid (rows of cells) per requested
// range, in request order; missing tabs or empty ranges come back as empty
// grids. A fetch either succeeds with full data or fails; there is no
// partial recovery or retry at this boundary.
type RangeFetcher interface {
	FetchRanges(ctx context.Context, spreadsheetID string, ranges []string) ([][][]string, error)
}
