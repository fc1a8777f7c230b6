package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kjdelacruz/stocksync/internal/api/handlers"
	storeMocks "github.com/kjdelacruz/stocksync/internal/store/mocks"
	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

func TestGetLedgerStats(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		GetLedgerStats(mock.Anything).
		Return(&domain.LedgerStats{TotalKeys: 12, Decrements: 9, Increments: 3}, nil).
		Once()

	h := handlers.NewLedgerHandler(ms)

	_, api := humatest.New(t)
	handlers.RegisterLedgerRoutes(api, h)

	resp := api.Get("/api/v1/ledger/stats")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total_keys":12`)
	assert.Contains(t, resp.Body.String(), `"decrements":9`)
}

func TestGetLedgerStats_Error(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetLedgerStats(mock.Anything).Return(nil, assert.AnError).Once()

	h := handlers.NewLedgerHandler(ms)

	_, api := humatest.New(t)
	handlers.RegisterLedgerRoutes(api, h)

	resp := api.Get("/api/v1/ledger/stats")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "ledger stats failed")
}
