// Package kakao is a small client for the Kakao user API.
// The backend uses it to validate access tokens before minting custom
// tokens; the CLI uses it to drive the OAuth login and fetch profiles.
package kakao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

// DefaultAPIBaseURL Kakao REST API host
const DefaultAPIBaseURL = "https://kapi.kakao.com"

// Endpoint Kakao OAuth 2.0 endpoints
var Endpoint = oauth2.Endpoint{
	AuthURL:   "https://kauth.kakao.com/oauth/authorize",
	TokenURL:  "https://kauth.kakao.com/oauth/token",
	AuthStyle: oauth2.AuthStyleInParams,
}

var (
	// ErrInvalidToken access token rejected by Kakao (HTTP 401)
	ErrInvalidToken = errors.New("invalid kakao access token")
	// ErrInsufficientScope token lacks the required consent (HTTP 403)
	ErrInsufficientScope = errors.New("insufficient kakao api permission")
)

// Profile public part of the Kakao account
type Profile struct {
	Nickname          string `json:"nickname"`
	ProfileImageURL   string `json:"profile_image_url"`
	ThumbnailImageURL string `json:"thumbnail_image_url"`
}

// Account kakao_account section of /v2/user/me
type Account struct {
	Email   string  `json:"email"`
	Profile Profile `json:"profile"`
}

// User response of /v2/user/me
type User struct {
	Account Account `json:"kakao_account"`
	ID      int64   `json:"id"`
}

// UID backend user id for a Kakao account
func UID(id int64) string {
	return fmt.Sprintf("kakao_%d", id)
}

// NewConfig returns the OAuth2 config for the Kakao authorization code flow
func NewConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     Endpoint,
		Scopes:       []string{"profile_nickname", "profile_image", "account_email"},
	}
}

// Client calls the Kakao REST API on behalf of a user token
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Kakao API client. httpClient may be nil.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Me returns the profile of the token owner
func (c *Client) Me(ctx context.Context, token *oauth2.Token) (*User, error) {
	var user User
	if err := c.do(ctx, token, http.MethodGet, "/v2/user/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout expires the access and refresh tokens of the user
func (c *Client) Logout(ctx context.Context, token *oauth2.Token) error {
	return c.do(ctx, token, http.MethodPost, "/v1/user/logout", nil)
}

// Unlink disconnects the user from the application
func (c *Client) Unlink(ctx context.Context, token *oauth2.Token) error {
	return c.do(ctx, token, http.MethodPost, "/v1/user/unlink", nil)
}

func (c *Client) do(ctx context.Context, token *oauth2.Token, method, path string, result any) error {
	if token == nil || token.AccessToken == "" {
		return ErrInvalidToken
	}

	// oauth2 клиент сам подставит заголовок Authorization: Bearer
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("kakao request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read kakao response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrInvalidToken
	case resp.StatusCode == http.StatusForbidden:
		return ErrInsufficientScope
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("kakao api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to decode kakao response: %w", err)
		}
	}
	return nil
}
