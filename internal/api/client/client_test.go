package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.GetLedgerStats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetLedgerStats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_Import(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/imports", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Platform string       `json:"platform"`
			Rows     []domain.Row `json:"rows"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "shopee", body.Platform)
		assert.Len(t, body.Rows, 1)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.ImportSummary{
			Platform:  domain.PlatformShopee,
			RowsTotal: 1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	summary, err := c.Import(context.Background(), domain.PlatformShopee, []domain.Row{
		{"Order ID": "A1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.RowsTotal)
}

func TestClient_Preview(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/imports/preview", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PreviewResponse{
			Orders: []domain.Order{{OrderID: "A1", Total: 300}},
			Total:  1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Preview(context.Background(), []domain.Row{{"Order ID": "A1"}})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "A1", resp.Orders[0].OrderID)
}

func TestClient_ListProducts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products", r.URL.Path)
		assert.Equal(t, "kitchen", r.URL.Query().Get("category"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ProductsResponse{
			Products: []domain.Product{{ID: "p1", Name: "Red Mug"}},
			Total:    1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ListProducts(context.Background(), &ListProductsParams{
		Category: "kitchen",
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "Red Mug", resp.Products[0].Name)
}

func TestClient_UpsertProduct(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/products", r.URL.Path)

		var p domain.Product
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		p.ID = "p-created"

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(p)
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.UpsertProduct(context.Background(), &domain.Product{
		Name:     "Red Mug",
		Quantity: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "p-created", result.ID)
}

func TestClient_DeleteProduct(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/products/p1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.DeleteProduct(context.Background(), "p1"))
}

func TestClient_ListTaxes(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/taxes", r.URL.Path)
		assert.Equal(t, "shopee", r.URL.Query().Get("platform"))
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("date_from"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TaxesResponse{
			Entries: []domain.TaxEntry{{OrderID: "A1", Amount: 3.5}},
			Total:   1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ListTaxes(context.Background(), &ListTaxesParams{
		Platform: "shopee",
		DateFrom: "2024-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.InDelta(t, 3.5, resp.Entries[0].Amount, 1e-9)
}

func TestClient_ListReturns(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/returns", r.URL.Path)
		assert.Equal(t, "tiktok", r.URL.Query().Get("platform"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ReturnsResponse{
			Entries: []domain.ReturnEntry{{OrderID: "A1", Product: "Red Mug"}},
			Total:   1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ListReturns(context.Background(), "tiktok", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestClient_ListJobs(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/jobs", r.URL.Path)
		assert.Equal(t, "import", r.URL.Query().Get("job_name"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.JobRun{
			{ID: "j1", JobName: "import", Status: "completed"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	runs, err := c.ListJobs(context.Background(), "import", 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "completed", runs[0].Status)
}
