package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/gophcal/pkg/api"
)

// SignUp регистрирует нового пользователя по email и паролю
func (c *Client) SignUp(ctx context.Context, req api.SignUpRequest) (*api.SignUpResponse, error) {
	var resp api.SignUpResponse
	if err := c.do(ctx, call{method: http.MethodPost, path: "/api/v1/auth/signup", in: req, out: &resp}); err != nil {
		return nil, fmt.Errorf("signup request failed: %w", err)
	}
	return &resp, nil
}

// SignIn выполняет аутентификацию по email и паролю
func (c *Client) SignIn(ctx context.Context, req api.SignInRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.do(ctx, call{method: http.MethodPost, path: "/api/v1/auth/signin", in: req, out: &resp}); err != nil {
		return nil, fmt.Errorf("signin request failed: %w", err)
	}
	return &resp, nil
}

// SignInWithCustomToken обменивает custom token на пару токенов
func (c *Client) SignInWithCustomToken(ctx context.Context, customToken string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	req := api.CustomTokenSignInRequest{CustomToken: customToken}
	if err := c.do(ctx, call{method: http.MethodPost, path: "/api/v1/auth/custom", in: req, out: &resp}); err != nil {
		return nil, fmt.Errorf("custom token signin failed: %w", err)
	}
	return &resp, nil
}

// Refresh обновляет id token по refresh token. Старый refresh token отзывается сервером.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.do(ctx, call{method: http.MethodPost, path: "/api/v1/auth/refresh", token: refreshToken, out: &resp}); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// SignOut отзывает refresh токены пользователя
func (c *Client) SignOut(ctx context.Context, idToken string) error {
	if err := c.do(ctx, call{method: http.MethodPost, path: "/api/v1/auth/signout", token: idToken}); err != nil {
		return fmt.Errorf("signout request failed: %w", err)
	}
	return nil
}
