package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/iudanet/gophcal/internal/kakao"
)

// CodePrompter shows the authorization URL to the user and returns the code
// from the redirect. An empty code means the user gave up.
type CodePrompter func(ctx context.Context, authURL, state string) (code string, err error)

// OAuthKakaoSDK KakaoSDK driven by the OAuth authorization code flow with PKCE,
// for platforms without the native Kakao SDK
type OAuthKakaoSDK struct {
	config *oauth2.Config
	api    *kakao.Client
	prompt CodePrompter
}

var _ KakaoSDK = (*OAuthKakaoSDK)(nil)

// NewOAuthKakaoSDK creates the SDK
func NewOAuthKakaoSDK(config *oauth2.Config, api *kakao.Client, prompt CodePrompter) *OAuthKakaoSDK {
	return &OAuthKakaoSDK{config: config, api: api, prompt: prompt}
}

// Login implements KakaoSDK
func (s *OAuthKakaoSDK) Login(ctx context.Context) (*oauth2.Token, error) {
	state := uuid.NewString()
	verifier := oauth2.GenerateVerifier()

	authURL := s.config.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))

	code, err := s.prompt(ctx, authURL, state)
	if err != nil {
		return nil, err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrCanceled
	}

	token, err := s.config.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("failed to exchange kakao authorization code: %w", err)
	}
	return token, nil
}

// Logout implements KakaoSDK
func (s *OAuthKakaoSDK) Logout(ctx context.Context, token *oauth2.Token) error {
	return s.api.Logout(ctx, token)
}
