//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/kjdelacruz/stocksync/internal/store"
	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("stocksync_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testProduct(name string) *domain.Product {
	return &domain.Product{
		Name:     name,
		Category: "Mugs",
		Type:     "Ceramic",
		Quantity: 10,
		ImageURL: "https://img.example.com/" + name + ".jpg",
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_UpsertProduct(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("insert new product", func(t *testing.T) {
		p := testProduct("Red Mug")
		require.NoError(t, s.UpsertProduct(ctx, p))
		assert.NotEmpty(t, p.ID)
		assert.False(t, p.UpdatedAt.IsZero())
	})

	t.Run("upsert with changed quantity", func(t *testing.T) {
		p := testProduct("Blue Vase")
		require.NoError(t, s.UpsertProduct(ctx, p))
		firstID := p.ID

		p2 := testProduct("Blue Vase")
		p2.Quantity = 4
		require.NoError(t, s.UpsertProduct(ctx, p2))

		// Same ID, updated quantity.
		assert.Equal(t, firstID, p2.ID)

		got, err := s.GetProduct(ctx, firstID)
		require.NoError(t, err)
		assert.Equal(t, 4, got.Quantity)
	})
}

func TestPostgresStore_ListProducts(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	for _, name := range []string{"Red Mug", "Blue Vase", "Green Mug"} {
		require.NoError(t, s.UpsertProduct(ctx, testProduct(name)))
	}

	t.Run("all", func(t *testing.T) {
		products, total, err := s.ListProducts(ctx, &store.ProductQuery{})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, products, 3)
		// Default ordering by name.
		assert.Equal(t, "Blue Vase", products[0].Name)
	})

	t.Run("name filter", func(t *testing.T) {
		contains := "mug"
		products, total, err := s.ListProducts(ctx, &store.ProductQuery{NameContains: &contains})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, products, 2)
	})
}

func TestPostgresStore_UpdateQuantities(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, s.UpsertProduct(ctx, testProduct("Red Mug")))
	require.NoError(t, s.UpsertProduct(ctx, testProduct("Blue Vase")))

	err := s.UpdateQuantities(ctx, []domain.Product{
		{Name: "Red Mug", Quantity: 7},
		{Name: "Blue Vase", Quantity: 0},
	})
	require.NoError(t, err)

	snapshot, err := s.SnapshotProducts(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 2)
	assert.Equal(t, 0, snapshot[0].Quantity) // Blue Vase
	assert.Equal(t, 7, snapshot[1].Quantity) // Red Mug
}

func TestPostgresStore_LedgerKeys(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	keys := []string{
		"shopee|A1|Red Mug|Large|dec",
		"shopee|A2|Red Mug||dec",
		"shopee|A1|Red Mug|Large|inc",
	}
	require.NoError(t, s.AppendLedgerKeys(ctx, domain.PlatformShopee, keys))

	// Re-appending the same keys is a no-op.
	require.NoError(t, s.AppendLedgerKeys(ctx, domain.PlatformShopee, keys[:1]))

	loaded, err := s.LoadLedgerKeys(ctx, domain.PlatformShopee)
	require.NoError(t, err)
	assert.ElementsMatch(t, keys, loaded)

	// Platform isolation.
	other, err := s.LoadLedgerKeys(ctx, domain.PlatformTiktok)
	require.NoError(t, err)
	assert.Empty(t, other)

	stats, err := s.GetLedgerStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalKeys)
	assert.Equal(t, 2, stats.Decrements)
	assert.Equal(t, 1, stats.Increments)
}

func TestPostgresStore_TaxEntries(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	entries := []domain.TaxEntry{
		{OrderID: "A1", Date: "2024-01-05", Amount: 15.0, Platform: domain.PlatformShopee},
		{OrderID: "A2", Date: "2024-02-10", Amount: 3.5, Platform: domain.PlatformTiktok},
	}

	inserted, err := s.InsertTaxEntries(ctx, entries)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	// Duplicate order ids are skipped.
	inserted, err = s.InsertTaxEntries(ctx, entries[:1])
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	platform := "shopee"
	got, total, err := s.ListTaxEntries(ctx, &store.TaxQuery{Platform: &platform})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "A1", got[0].OrderID)
	assert.InDelta(t, 15.0, got[0].Amount, 1e-9)
}

func TestPostgresStore_ReturnEntries(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	entries := []domain.ReturnEntry{
		{OrderID: "A1", Product: "Red Mug", Quantity: 1, Platform: domain.PlatformShopee},
		{OrderID: "A1", Product: "Red Mug", Quantity: 2, Platform: domain.PlatformShopee},
		{OrderID: "A2", Product: "Blue Vase", Quantity: 1, Platform: domain.PlatformTiktok},
	}

	inserted, err := s.InsertReturnEntries(ctx, entries)
	require.NoError(t, err)
	// Second A1 row is dropped by the order id constraint.
	assert.Equal(t, 2, inserted)

	got, total, err := s.ListReturnEntries(ctx, "", 50, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, got, 2)

	got, total, err = s.ListReturnEntries(ctx, "tiktok", 50, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "A2", got[0].OrderID)
}

func TestPostgresStore_JobRuns(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	id, err := s.InsertJobRun(ctx, "import")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.NoError(t, s.CompleteJobRun(ctx, id, "completed", "", 42))

	runs, err := s.ListJobRuns(ctx, "import", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "completed", runs[0].Status)
	require.NotNil(t, runs[0].RowsAffected)
	assert.Equal(t, 42, *runs[0].RowsAffected)
	assert.NotNil(t, runs[0].CompletedAt)
}
