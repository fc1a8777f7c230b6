package client

import (
	"context"

	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// Import runs a batch of raw export rows through the server's import
// pipeline and returns the resulting summary.
func (c *Client) Import(
	ctx context.Context,
	platform domain.Platform,
	rows []domain.Row,
) (*domain.ImportSummary, error) {
	body := map[string]any{
		"platform": platform,
		"rows":     rows,
	}

	var summary domain.ImportSummary
	if err := c.post(ctx, "/api/v1/imports", body, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// PreviewResponse wraps an order preview response.
type PreviewResponse struct {
	Orders []domain.Order `json:"orders"`
	Total  int            `json:"total"`
}

// Preview assembles per-order views from raw rows without importing them.
func (c *Client) Preview(ctx context.Context, rows []domain.Row) (*PreviewResponse, error) {
	body := map[string]any{"rows": rows}

	var resp PreviewResponse
	if err := c.post(ctx, "/api/v1/imports/preview", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
