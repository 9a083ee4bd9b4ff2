package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/example/shafran-admin/internal/models"
)

// GetDashboardStats fetches the aggregate dashboard snapshot.
func (c *Client) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	resp, err := c.Do(ctx, RequestOpts{
		Method:      http.MethodGet,
		Path:        "admin/dashboard",
		FailMessage: "Failed to fetch dashboard stats",
	})
	if err != nil {
		return nil, err
	}

	stats, err := decode[models.DashboardStats](resp)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &stats, nil
}
