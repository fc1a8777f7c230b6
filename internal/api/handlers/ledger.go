package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kjdelacruz/stocksync/internal/store"
	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// LedgerHandler handles idempotency ledger inspection endpoints.
type LedgerHandler struct {
	store store.Store
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(s store.Store) *LedgerHandler {
	return &LedgerHandler{store: s}
}

// LedgerStatsOutput is the response for ledger statistics.
type LedgerStatsOutput struct {
	Body domain.LedgerStats
}

// GetStats returns aggregate counts over the durable idempotency ledger.
func (h *LedgerHandler) GetStats(ctx context.Context, _ *struct{}) (*LedgerStatsOutput, error) {
	stats, err := h.store.GetLedgerStats(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("ledger stats failed: " + err.Error())
	}

	return &LedgerStatsOutput{Body: *stats}, nil
}

// RegisterLedgerRoutes registers ledger endpoints with the Huma API.
func RegisterLedgerRoutes(api huma.API, h *LedgerHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-ledger-stats",
		Method:      http.MethodGet,
		Path:        "/api/v1/ledger/stats",
		Summary:     "Get idempotency ledger statistics",
		Description: "Returns total, decrement and increment key counts from the durable ledger.",
		Tags:        []string{"ledger"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.GetStats)
}
