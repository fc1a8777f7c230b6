package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// Importer defines the engine methods required by the imports handler.
type Importer interface {
	ImportBatch(ctx context.Context, platform domain.Platform, rows []domain.Row) (*domain.ImportSummary, error)
	PreviewOrders(ctx context.Context, rows []domain.Row) ([]domain.Order, error)
}

// ImportsHandler handles order-export import requests.
type ImportsHandler struct {
	engine Importer
}

// NewImportsHandler creates a new ImportsHandler.
func NewImportsHandler(eng Importer) *ImportsHandler {
	return &ImportsHandler{engine: eng}
}

// ImportInput is the request for importing a batch of export rows.
type ImportInput struct {
	Body struct {
		Platform domain.Platform `json:"platform" doc:"Source marketplace" enum:"shopee,tiktok"`
		Rows     []domain.Row    `json:"rows"     doc:"Raw spreadsheet rows keyed by column label"`
	}
}

// ImportOutput is the response for a completed import.
type ImportOutput struct {
	Body domain.ImportSummary
}

// PreviewInput is the request for assembling orders without importing.
type PreviewInput struct {
	Body struct {
		Rows []domain.Row `json:"rows" doc:"Raw spreadsheet rows keyed by column label"`
	}
}

// PreviewOutput is the response for an order preview.
type PreviewOutput struct {
	Body struct {
		Orders []domain.Order `json:"orders"`
		Total  int            `json:"total"`
	}
}

// Import runs one export batch through the reconciliation pipeline.
func (h *ImportsHandler) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	summary, err := h.engine.ImportBatch(ctx, input.Body.Platform, input.Body.Rows)
	if err != nil {
		if strings.Contains(err.Error(), "unknown platform") ||
			strings.Contains(err.Error(), "exceeds limit") {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, huma.Error500InternalServerError("import failed: " + err.Error())
	}

	return &ImportOutput{Body: *summary}, nil
}

// Preview assembles per-order views from raw rows without touching stock.
func (h *ImportsHandler) Preview(ctx context.Context, input *PreviewInput) (*PreviewOutput, error) {
	orders, err := h.engine.PreviewOrders(ctx, input.Body.Rows)
	if err != nil {
		return nil, huma.Error500InternalServerError("preview failed: " + err.Error())
	}

	if orders == nil {
		orders = []domain.Order{}
	}

	resp := &PreviewOutput{}
	resp.Body.Orders = orders
	resp.Body.Total = len(orders)
	return resp, nil
}

// RegisterImportRoutes registers import endpoints with the Huma API.
func RegisterImportRoutes(api huma.API, h *ImportsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "import-batch",
		Method:      http.MethodPost,
		Path:        "/api/v1/imports",
		Summary:     "Import an order-export batch",
		Description: "Runs raw export rows through field resolution, product matching, " +
			"the idempotency ledger, and inventory delta application.",
		Tags:   []string{"imports"},
		Errors: []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.Import)

	huma.Register(api, huma.Operation{
		OperationID: "preview-orders",
		Method:      http.MethodPost,
		Path:        "/api/v1/imports/preview",
		Summary:     "Preview assembled orders",
		Description: "Groups raw export rows into per-order financial views against the " +
			"current catalog without writing anything.",
		Tags:   []string{"imports"},
		Errors: []int{http.StatusInternalServerError},
	}, h.Preview)
}
