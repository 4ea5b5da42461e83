package api

import (
	"context"
	"fmt"
)

type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	Role         string `json:"rol"`
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	req, err := c.newJSONRequest(ctx, "POST", "/auth/login", payload)
	if err != nil {
		return AuthResponse{}, err
	}

	var resp AuthResponse
	if err := c.doJSON(req, &resp); err != nil {
		return AuthResponse{}, err
	}
	if resp.AccessToken == "" {
		return AuthResponse{}, fmt.Errorf("login failed: missing access_token")
	}

	c.AccessToken = resp.AccessToken
	return resp, nil
}
