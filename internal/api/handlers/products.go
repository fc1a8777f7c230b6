package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kjdelacruz/stocksync/internal/store"
	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// ProductsHandler handles inventory catalog endpoints.
type ProductsHandler struct {
	store store.Store
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(s store.Store) *ProductsHandler {
	return &ProductsHandler{store: s}
}

// --- Input/Output types ---

// ListProductsInput is the input for listing catalog products with filters.
type ListProductsInput struct {
	Category string `query:"category" doc:"Filter by category"`
	Type     string `query:"type"     doc:"Filter by product type"`
	Name     string `query:"name"     doc:"Substring match on product name"`
	Limit    int    `query:"limit"    doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
	Offset   int    `query:"offset"   doc:"Pagination offset"              minimum:"0"`
	OrderBy  string `query:"order_by" doc:"Sort field"                     enum:"name,quantity,updated_at,"`
}

// ListProductsOutput is the response for listing products.
type ListProductsOutput struct {
	Body struct {
		Products []domain.Product `json:"products"`
		Total    int              `json:"total"`
		Limit    int              `json:"limit"`
		Offset   int              `json:"offset"`
	}
}

// GetProductInput is the input for getting a single product.
type GetProductInput struct {
	ID string `path:"id" doc:"Product UUID"`
}

// GetProductOutput is the response for getting a single product.
type GetProductOutput struct {
	Body domain.Product
}

// UpsertProductInput is the input for creating or updating a product.
type UpsertProductInput struct {
	Body struct {
		Name     string `json:"name"                 doc:"Canonical product name" minLength:"1"`
		Category string `json:"category,omitempty"   doc:"Category"`
		Type     string `json:"type,omitempty"       doc:"Product type"`
		Quantity int    `json:"quantity"             doc:"Stock on hand"          minimum:"0"`
		ImageURL string `json:"image_url,omitempty"  doc:"Image URL"`
	}
}

// UpsertProductOutput is the response for an upsert.
type UpsertProductOutput struct {
	Body domain.Product
}

// DeleteProductInput is the input for deleting a product.
type DeleteProductInput struct {
	ID string `path:"id" doc:"Product UUID"`
}

// --- Handlers ---

// ListProducts returns catalog products with optional filters and pagination.
func (h *ProductsHandler) ListProducts(
	ctx context.Context,
	input *ListProductsInput,
) (*ListProductsOutput, error) {
	q := &store.ProductQuery{
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.Category != "" {
		q.Category = &input.Category
	}

	if input.Type != "" {
		q.Type = &input.Type
	}

	if input.Name != "" {
		q.NameContains = &input.Name
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	products, total, err := h.store.ListProducts(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("product query failed: " + err.Error())
	}

	if products == nil {
		products = []domain.Product{}
	}

	resp := &ListProductsOutput{}
	resp.Body.Products = products
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetProduct returns a single product by ID.
func (h *ProductsHandler) GetProduct(
	ctx context.Context,
	input *GetProductInput,
) (*GetProductOutput, error) {
	p, err := h.store.GetProduct(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("product not found")
	}

	return &GetProductOutput{Body: *p}, nil
}

// UpsertProduct creates a product or updates the entry with the same name.
func (h *ProductsHandler) UpsertProduct(
	ctx context.Context,
	input *UpsertProductInput,
) (*UpsertProductOutput, error) {
	p := domain.Product{
		Name:     input.Body.Name,
		Category: input.Body.Category,
		Type:     input.Body.Type,
		Quantity: input.Body.Quantity,
		ImageURL: input.Body.ImageURL,
	}

	if err := h.store.UpsertProduct(ctx, &p); err != nil {
		return nil, huma.Error500InternalServerError("upserting product failed: " + err.Error())
	}

	return &UpsertProductOutput{Body: p}, nil
}

// DeleteProduct removes a product from the catalog.
func (h *ProductsHandler) DeleteProduct(
	ctx context.Context,
	input *DeleteProductInput,
) (*struct{}, error) {
	if err := h.store.DeleteProduct(ctx, input.ID); err != nil {
		return nil, huma.Error500InternalServerError("deleting product failed: " + err.Error())
	}

	return nil, nil //nolint:nilnil // empty 204 response
}

// RegisterProductRoutes registers catalog endpoints with the Huma API.
func RegisterProductRoutes(api huma.API, h *ProductsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/products",
		Summary:     "List catalog products",
		Description: "Returns catalog products with optional category, type and name filters.",
		Tags:        []string{"catalog"},
	}, h.ListProducts)

	huma.Register(api, huma.Operation{
		OperationID: "get-product",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}",
		Summary:     "Get a product by ID",
		Description: "Returns a single catalog product by its UUID.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetProduct)

	huma.Register(api, huma.Operation{
		OperationID: "upsert-product",
		Method:      http.MethodPut,
		Path:        "/api/v1/products",
		Summary:     "Create or update a product",
		Description: "Creates a catalog product, or updates the existing entry with the same name.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.UpsertProduct)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-product",
		Method:        http.MethodDelete,
		Path:          "/api/v1/products/{id}",
		Summary:       "Delete a product",
		Description:   "Removes a catalog product by its UUID.",
		Tags:          []string{"catalog"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusInternalServerError},
	}, h.DeleteProduct)
}
