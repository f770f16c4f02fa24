// Package google adapts the Sheets v4 API to the RangeFetcher port.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	ports "pacedash/internal/sheets"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Client is a read-only Sheets API client authenticated with a service
// account.
type Client struct {
	svc *gsheet.Service
}

var _ ports.RangeFetcher = (*Client)(nil)

// NewFromEnv builds a client from environment credentials, in order of
// preference: GOOGLE_SERVICE_ACCOUNT_JSON (inline), GOOGLE_SERVICE_ACCOUNT_FILE,
// then the standard GOOGLE_APPLICATION_CREDENTIALS path.
func NewFromEnv(ctx context.Context) (*Client, error) {
	credentialsJSON, err := loadCredentials(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	slog.InfoContext(ctx, "Google Sheets client ready", "scope", gsheet.SpreadsheetsReadonlyScope)
	return &Client{svc: svc}, nil
}

func loadCredentials(ctx context.Context) ([]byte, error) {
	inline := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	file := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if inline == "" && file == "" {
		file = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	switch {
	case inline != "":
		slog.DebugContext(ctx, "using inline service account credentials")
		return []byte(inline), nil
	case file != "":
		slog.DebugContext(ctx, "reading service account credentials", "path", file)
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		return data, nil
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}
}

// FetchRanges reads the given A1 ranges with a single batchGet. Cells come
// back as the sheet renders them, currency and percent decorations
// included; the parser strips those uniformly.
func (c *Client) FetchRanges(ctx context.Context, spreadsheetID string, ranges []string) ([][][]string, error) {
	call := c.svc.Spreadsheets.Values.BatchGet(spreadsheetID).Ranges(ranges...).Context(ctx)
	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("batch get %s: %w", spreadsheetID, err)
	}

	grids := make([][][]string, len(resp.ValueRanges))
	for i, vr := range resp.ValueRanges {
		grids[i] = toGrid(vr.Values)
	}
	// BatchGet preserves request order, but guard against a short reply.
	for len(grids) < len(ranges) {
		grids = append(grids, nil)
	}
	return grids, nil
}

func toGrid(values [][]interface{}) [][]string {
	grid := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = toString(v)
		}
		grid[i] = cells
	}
	return grid
}

func toString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
