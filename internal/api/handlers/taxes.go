package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kjdelacruz/stocksync/internal/store"
	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// TaxesHandler handles tax ledger query endpoints.
type TaxesHandler struct {
	store store.Store
}

// NewTaxesHandler creates a new TaxesHandler.
func NewTaxesHandler(s store.Store) *TaxesHandler {
	return &TaxesHandler{store: s}
}

// ListTaxesInput is the input for listing tax entries with filters.
type ListTaxesInput struct {
	Platform string `query:"platform"  doc:"Filter by source marketplace"    enum:"shopee,tiktok,"`
	DateFrom string `query:"date_from" doc:"Inclusive ISO-8601 start date"`
	DateTo   string `query:"date_to"   doc:"Inclusive ISO-8601 end date"`
	Limit    int    `query:"limit"     doc:"Number of results (default 50)"  minimum:"1" maximum:"500"`
	Offset   int    `query:"offset"    doc:"Pagination offset"               minimum:"0"`
	OrderBy  string `query:"order_by"  doc:"Sort field"                      enum:"date,amount,created_at,"`
}

// ListTaxesOutput is the response for listing tax entries.
type ListTaxesOutput struct {
	Body struct {
		Entries []domain.TaxEntry `json:"entries"`
		Total   int               `json:"total"`
		Limit   int               `json:"limit"`
		Offset  int               `json:"offset"`
	}
}

// ListTaxes returns tax entries with optional platform and date filters.
func (h *TaxesHandler) ListTaxes(
	ctx context.Context,
	input *ListTaxesInput,
) (*ListTaxesOutput, error) {
	q := &store.TaxQuery{
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.Platform != "" {
		q.Platform = &input.Platform
	}

	if input.DateFrom != "" {
		q.DateFrom = &input.DateFrom
	}

	if input.DateTo != "" {
		q.DateTo = &input.DateTo
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	entries, total, err := h.store.ListTaxEntries(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("tax query failed: " + err.Error())
	}

	if entries == nil {
		entries = []domain.TaxEntry{}
	}

	resp := &ListTaxesOutput{}
	resp.Body.Entries = entries
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// RegisterTaxRoutes registers tax ledger endpoints with the Huma API.
func RegisterTaxRoutes(api huma.API, h *TaxesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-taxes",
		Method:      http.MethodGet,
		Path:        "/api/v1/taxes",
		Summary:     "List tax entries",
		Description: "Returns per-order tax entries with optional platform and date range filters.",
		Tags:        []string{"finance"},
	}, h.ListTaxes)
}
