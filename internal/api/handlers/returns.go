package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kjdelacruz/stocksync/internal/store"
	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// ReturnsHandler handles returns log query endpoints.
type ReturnsHandler struct {
	store store.Store
}

// NewReturnsHandler creates a new ReturnsHandler.
func NewReturnsHandler(s store.Store) *ReturnsHandler {
	return &ReturnsHandler{store: s}
}

// ListReturnsInput is the input for listing return entries.
type ListReturnsInput struct {
	Platform string `query:"platform" doc:"Filter by source marketplace"   enum:"shopee,tiktok,"`
	Limit    int    `query:"limit"    doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
	Offset   int    `query:"offset"   doc:"Pagination offset"              minimum:"0"`
}

// ListReturnsOutput is the response for listing return entries.
type ListReturnsOutput struct {
	Body struct {
		Entries []domain.ReturnEntry `json:"entries"`
		Total   int                  `json:"total"`
		Limit   int                  `json:"limit"`
		Offset  int                  `json:"offset"`
	}
}

// ListReturns returns the returns log, newest first.
func (h *ReturnsHandler) ListReturns(
	ctx context.Context,
	input *ListReturnsInput,
) (*ListReturnsOutput, error) {
	entries, total, err := h.store.ListReturnEntries(ctx, input.Platform, input.Limit, input.Offset)
	if err != nil {
		return nil, huma.Error500InternalServerError("returns query failed: " + err.Error())
	}

	if entries == nil {
		entries = []domain.ReturnEntry{}
	}

	resp := &ListReturnsOutput{}
	resp.Body.Entries = entries
	resp.Body.Total = total
	resp.Body.Limit = input.Limit
	resp.Body.Offset = input.Offset

	return resp, nil
}

// RegisterReturnRoutes registers returns log endpoints with the Huma API.
func RegisterReturnRoutes(api huma.API, h *ReturnsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-returns",
		Method:      http.MethodGet,
		Path:        "/api/v1/returns",
		Summary:     "List return entries",
		Description: "Returns the per-order returns log with an optional platform filter.",
		Tags:        []string{"finance"},
	}, h.ListReturns)
}
