package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iudanet/gophcal/pkg/api"
)

// CreateCustomToken вызывает RPC выпуска custom token по access token Kakao
func (c *Client) CreateCustomToken(ctx context.Context, accessToken string) (*api.CreateCustomTokenResponse, error) {
	var resp api.CreateCustomTokenResponse
	req := api.CreateCustomTokenRequest{AccessToken: accessToken}
	if err := c.do(ctx, call{method: http.MethodPost, path: "/createCustomToken", in: req, out: &resp}); err != nil {
		return nil, fmt.Errorf("create custom token request failed: %w", err)
	}
	return &resp, nil
}

// GetKakaoUserInfo возвращает профиль пользователя Kakao, сохраненный сервером
func (c *Client) GetKakaoUserInfo(ctx context.Context, uid string) (*api.KakaoUserInfoResponse, error) {
	var resp api.KakaoUserInfoResponse
	path := "/getKakaoUserInfo?" + url.Values{"uid": {uid}}.Encode()
	if err := c.do(ctx, call{method: http.MethodGet, path: path, out: &resp}); err != nil {
		return nil, fmt.Errorf("get kakao user info request failed: %w", err)
	}
	return &resp, nil
}
