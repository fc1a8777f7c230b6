package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// TaxesResponse wraps a paginated tax entries response.
type TaxesResponse struct {
	Entries []domain.TaxEntry `json:"entries"`
	Total   int               `json:"total"`
}

// ListTaxesParams defines query parameters for tax queries.
type ListTaxesParams struct {
	Platform string
	DateFrom string
	DateTo   string
	Limit    int
	Offset   int
	OrderBy  string
}

// ListTaxes returns tax entries matching the given parameters.
func (c *Client) ListTaxes(ctx context.Context, params *ListTaxesParams) (*TaxesResponse, error) {
	q := url.Values{}
	if params.Platform != "" {
		q.Set("platform", params.Platform)
	}
	if params.DateFrom != "" {
		q.Set("date_from", params.DateFrom)
	}
	if params.DateTo != "" {
		q.Set("date_to", params.DateTo)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/taxes"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp TaxesResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReturnsResponse wraps a paginated returns log response.
type ReturnsResponse struct {
	Entries []domain.ReturnEntry `json:"entries"`
	Total   int                  `json:"total"`
}

// ListReturns returns the returns log, optionally filtered by platform.
func (c *Client) ListReturns(
	ctx context.Context,
	platform string,
	limit, offset int,
) (*ReturnsResponse, error) {
	q := url.Values{}
	if platform != "" {
		q.Set("platform", platform)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}

	path := "/api/v1/returns"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ReturnsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetLedgerStats returns aggregate idempotency ledger counts.
func (c *Client) GetLedgerStats(ctx context.Context) (*domain.LedgerStats, error) {
	var stats domain.LedgerStats
	if err := c.get(ctx, "/api/v1/ledger/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
