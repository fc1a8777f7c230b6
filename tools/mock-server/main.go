// Package main implements a mock stocksync API server for local development.
// It serves canned catalog responses from a JSON fixture so the CLI can be
// exercised without a running database or import pipeline.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
	ImageURL string `json:"image_url,omitempty"`
}

type productsResponse struct {
	Products []product `json:"products"`
	Total    int       `json:"total"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/products.json", "path to catalog fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "products", len(fixture.Products))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", healthzHandler)
	mux.HandleFunc("GET /api/v1/products", listProductsHandler(logger, fixture))
	mux.HandleFunc("GET /api/v1/products/{id}", getProductHandler(logger, fixture))
	mux.HandleFunc("GET /api/v1/ledger/stats", ledgerStatsHandler(logger, fixture))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock stocksync server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*productsResponse, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var resp productsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &resp, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func healthzHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func listProductsHandler(logger *slog.Logger, fixture *productsResponse) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.ToLower(r.URL.Query().Get("name"))
		category := r.URL.Query().Get("category")
		limitStr := r.URL.Query().Get("limit")
		offsetStr := r.URL.Query().Get("offset")

		limit := 50
		if limitStr != "" {
			if v, err := strconv.Atoi(limitStr); err == nil && v > 0 {
				limit = v
			}
		}
		offset := 0
		if offsetStr != "" {
			if v, err := strconv.Atoi(offsetStr); err == nil && v >= 0 {
				offset = v
			}
		}

		var matched []product
		for _, p := range fixture.Products {
			if name != "" && !strings.Contains(strings.ToLower(p.Name), name) {
				continue
			}
			if category != "" && p.Category != category {
				continue
			}
			matched = append(matched, p)
		}

		total := len(matched)

		if offset >= len(matched) {
			matched = nil
		} else {
			end := min(offset+limit, len(matched))
			matched = matched[offset:end]
		}

		// Return empty array instead of null when no results.
		if matched == nil {
			matched = []product{}
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(productsResponse{Products: matched, Total: total})
		logger.Info("list products", "name", name, "category", category,
			"matched", total, "returned", len(matched), "offset", offset, "limit", limit)
	}
}

func getProductHandler(logger *slog.Logger, fixture *productsResponse) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		for _, p := range fixture.Products {
			if p.ID == id {
				w.Header().Set("Content-Type", "application/json")
				//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
				json.NewEncoder(w).Encode(p)
				return
			}
		}
		logger.Warn("product not found", "id", id)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]string{"error": "product not found"})
	}
}

func ledgerStatsHandler(logger *slog.Logger, fixture *productsResponse) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		// Stats sized to the fixture so the numbers look plausible.
		total := len(fixture.Products) * 3
		stats := map[string]int{
			"total_keys": total,
			"decrements": total - len(fixture.Products),
			"increments": len(fixture.Products),
		}
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(stats)
		logger.Info("ledger stats", "total_keys", total)
	}
}
