package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login exchanges admin credentials for an access token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := c.Do(ctx, RequestOpts{
		Method:      http.MethodPost,
		Path:        "admin/login",
		Body:        loginRequest{Username: username, Password: password},
		Public:      true,
		FailMessage: "Login failed",
	})
	if err != nil {
		return "", err
	}

	out, err := decode[loginResponse](resp)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if out.AccessToken == "" {
		return "", errors.New("login response missing accessToken")
	}
	return out.AccessToken, nil
}
