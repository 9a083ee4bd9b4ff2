package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/example/shafran-admin/internal/apperrors"
	"github.com/example/shafran-admin/internal/models"
)

// ListOrders returns all orders.
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	resp, err := c.Do(ctx, RequestOpts{Method: http.MethodGet, Path: "admin/order", FailMessage: "Failed to fetch orders"})
	if err != nil {
		return nil, err
	}
	orders, err := decode[[]models.Order](resp)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// GetOrder loads one order by its human-facing number.
func (c *Client) GetOrder(ctx context.Context, orderNumber string) (*models.Order, error) {
	resp, err := c.Do(ctx, RequestOpts{
		Method:      http.MethodGet,
		Path:        "admin/order/" + escape(orderNumber),
		FailMessage: "Failed to fetch order",
	})
	if err != nil {
		return nil, err
	}

	order, err := decode[*models.Order](resp)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderNumber, err)
	}
	if order == nil {
		return nil, fmt.Errorf("order %s: %w", orderNumber, apperrors.ErrNotFound)
	}
	return order, nil
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus moves an order to status.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderNumber, status string) error {
	_, err := c.Do(ctx, RequestOpts{
		Method:      http.MethodPut,
		Path:        "admin/order/" + escape(orderNumber) + "/status",
		Body:        orderStatusRequest{Status: status},
		FailMessage: "Failed to update order status",
	})
	return err
}

// DeleteOrder removes an order by id.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	_, err := c.Do(ctx, RequestOpts{
		Method:      http.MethodDelete,
		Path:        "admin/order/" + escape(id),
		FailMessage: "Failed to delete order",
	})
	return err
}
