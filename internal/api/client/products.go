package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// ProductsResponse wraps a paginated catalog response.
type ProductsResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

// ListProductsParams defines query parameters for catalog queries.
type ListProductsParams struct {
	Category string
	Type     string
	Name     string
	Limit    int
	Offset   int
	OrderBy  string
}

// ListProducts returns catalog products matching the given parameters.
func (c *Client) ListProducts(
	ctx context.Context,
	params *ListProductsParams,
) (*ProductsResponse, error) {
	q := url.Values{}
	if params.Category != "" {
		q.Set("category", params.Category)
	}
	if params.Type != "" {
		q.Set("type", params.Type)
	}
	if params.Name != "" {
		q.Set("name", params.Name)
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

	path := "/api/v1/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ProductsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProduct returns a single catalog product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := c.get(ctx, fmt.Sprintf("/api/v1/products/%s", id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertProduct creates a product or updates the entry with the same name.
func (c *Client) UpsertProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	var out domain.Product
	if err := c.put(ctx, "/api/v1/products", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct removes a catalog product by ID.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.del(ctx, fmt.Sprintf("/api/v1/products/%s", id), nil)
}
