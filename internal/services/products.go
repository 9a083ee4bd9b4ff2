package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/example/shafran-admin/internal/apperrors"
	"github.com/example/shafran-admin/internal/models"
)

// ListProducts returns the active (not soft-deleted) products.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	return c.listProducts(ctx, "admin/product", "Failed to fetch products")
}

// ListDeletedProducts returns soft-deleted products.
func (c *Client) ListDeletedProducts(ctx context.Context) ([]models.Product, error) {
	return c.listProducts(ctx, "admin/product/deleted", "Failed to fetch deleted products")
}

func (c *Client) listProducts(ctx context.Context, path, failMessage string) ([]models.Product, error) {
	resp, err := c.Do(ctx, RequestOpts{Method: http.MethodGet, Path: path, FailMessage: failMessage})
	if err != nil {
		return nil, err
	}
	products, err := decode[[]models.Product](resp)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetProduct loads one product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	resp, err := c.Do(ctx, RequestOpts{
		Method:      http.MethodGet,
		Path:        "admin/product/" + escape(id),
		FailMessage: "Failed to fetch product",
	})
	if err != nil {
		return nil, err
	}

	product, err := decode[*models.Product](resp)
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", id, apperrors.ErrNotFound)
	}
	return product, nil
}

// CreateProduct uploads a new product as multipart form data.
func (c *Client) CreateProduct(ctx context.Context, in models.ProductInput) error {
	form, err := encodeProductInput(in)
	if err != nil {
		return err
	}
	_, err = c.Do(ctx, RequestOpts{
		Method:      http.MethodPost,
		Path:        "admin/product",
		Form:        form,
		FailMessage: "Failed to create product",
	})
	return err
}

// UpdateProduct replaces scalar fields and the image set of a product. The
// server keeps ExistingPhotos in order and appends Photos after them.
func (c *Client) UpdateProduct(ctx context.Context, id string, up models.ProductUpdate) error {
	form, err := encodeProductUpdate(up)
	if err != nil {
		return err
	}
	_, err = c.Do(ctx, RequestOpts{
		Method:      http.MethodPut,
		Path:        "admin/product/" + escape(id),
		Form:        form,
		FailMessage: "Failed to update product",
	})
	return err
}

// DeleteProduct soft-deletes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.Do(ctx, RequestOpts{
		Method:      http.MethodDelete,
		Path:        "admin/product/" + escape(id),
		FailMessage: "Failed to delete product",
	})
	return err
}

// RestoreProduct clears deletedAt on a soft-deleted product.
func (c *Client) RestoreProduct(ctx context.Context, id string) error {
	_, err := c.Do(ctx, RequestOpts{
		Method:      http.MethodPut,
		Path:        "admin/product/" + escape(id) + "/restore",
		FailMessage: "Failed to restore product",
	})
	return err
}

// DeleteProductImage removes the image at index from a saved product.
func (c *Client) DeleteProductImage(ctx context.Context, id string, index int) error {
	_, err := c.Do(ctx, RequestOpts{
		Method:      http.MethodDelete,
		Path:        "admin/product/" + escape(id) + "/image/" + strconv.Itoa(index),
		FailMessage: "Failed to delete product image",
	})
	return err
}

// ListCategories returns product categories.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	resp, err := c.Do(ctx, RequestOpts{Method: http.MethodGet, Path: "admin/category", FailMessage: "Failed to fetch categories"})
	if err != nil {
		return nil, err
	}
	categories, err := decode[[]models.Category](resp)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
