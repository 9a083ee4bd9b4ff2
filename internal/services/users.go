package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/example/shafran-admin/internal/models"
)

// ListUsers returns all customers.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := c.Do(ctx, RequestOpts{Method: http.MethodGet, Path: "admin/user", FailMessage: "Failed to fetch users"})
	if err != nil {
		return nil, err
	}
	users, err := decode[[]models.User](resp)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

type userVerificationRequest struct {
	IsVerified bool `json:"isVerified"`
}

// SetUserVerified sets the moderation flag of a user.
func (c *Client) SetUserVerified(ctx context.Context, id string, verified bool) error {
	_, err := c.Do(ctx, RequestOpts{
		Method:      http.MethodPut,
		Path:        "admin/user/" + escape(id),
		Body:        userVerificationRequest{IsVerified: verified},
		FailMessage: "Failed to update user status",
	})
	return err
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	_, err := c.Do(ctx, RequestOpts{
		Method:      http.MethodDelete,
		Path:        "admin/user/" + escape(id),
		FailMessage: "Failed to delete user",
	})
	return err
}
