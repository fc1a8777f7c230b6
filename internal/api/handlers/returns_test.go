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

func TestListReturns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "no filters returns entries",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListReturnEntries(mock.Anything, "", 0, 0).
					Return([]domain.ReturnEntry{
						{OrderID: "A1", Product: "Red Mug", Quantity: 1},
					}, 1, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_id":"A1"`,
		},
		{
			name:  "platform filter and pagination",
			query: "?platform=tiktok&limit=10&offset=5",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListReturnEntries(mock.Anything, "tiktok", 10, 5).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"entries":[]`,
		},
		{
			name:  "store error returns 500",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListReturnEntries(mock.Anything, "", 0, 0).
					Return(nil, 0, assert.AnError).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "returns query failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			h := handlers.NewReturnsHandler(ms)

			_, api := humatest.New(t)
			handlers.RegisterReturnRoutes(api, h)

			resp := api.Get("/api/v1/returns" + tt.query)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}
