package auth

import (
	"context"
	"strings"
)

//go:generate moq -out provider_mock.go . Provider PasswordProvider

// Kind identity provider kind
type Kind int

const (
	KindNone Kind = iota
	KindPassword
	KindApple
	KindKakao
)

func (k Kind) String() string {
	switch k {
	case KindPassword:
		return "password"
	case KindApple:
		return "apple"
	case KindKakao:
		return "kakao"
	default:
		return "none"
	}
}

// ParseKind returns the kind for its string form
func ParseKind(s string) Kind {
	switch strings.ToLower(s) {
	case "password", "email":
		return KindPassword
	case "apple":
		return KindApple
	case "kakao":
		return KindKakao
	default:
		return KindNone
	}
}

// Identity authenticated user as seen by one provider
type Identity struct {
	Kind          Kind   `json:"kind"`
	ProviderID    string `json:"provider_id"`    // email, Apple user id, Kakao numeric id
	UID           string `json:"uid"`            // backend uid, empty when the provider has none
	DisplayName   string `json:"display_name"`   // provider supplied name
	Email         string `json:"email"`          // optional
	GivenName     string `json:"given_name"`     // Apple only
	FamilyName    string `json:"family_name"`    // Apple only
	Nickname      string `json:"nickname"`       // Kakao only
	PhotoURL      string `json:"photo_url"`      // optional
	RawCredential string `json:"raw_credential"` // provider specific, opaque
}

// Credentials input of SignIn. Social providers ignore it.
type Credentials struct {
	Email       string
	Password    string
	DisplayName string
}

// Result normalized outcome of a sign-in attempt.
// Expected failures (wrong password, canceled flow, network) are reported here
// with Success=false instead of an error.
type Result struct {
	Err      error
	Identity *Identity
	Message  string
	Success  bool
}

func success(identity *Identity) Result {
	return Result{Success: true, Identity: identity}
}

func failure(err error, message string) Result {
	return Result{Err: err, Message: message}
}

// Provider common contract of the identity provider adapters
type Provider interface {
	// Kind returns the provider kind
	Kind() Kind

	// SignIn runs the provider sign-in flow and persists provider state
	SignIn(ctx context.Context, creds Credentials) Result

	// SignOut clears provider state. Returns false if local state could not be cleared.
	SignOut(ctx context.Context) bool

	// IsLoggedIn reports whether the provider has an active session
	IsLoggedIn(ctx context.Context) (bool, error)

	// UserInfo returns the current identity or nil when nobody is signed in
	UserInfo(ctx context.Context) (*Identity, error)
}

// PasswordProvider email/password provider with a refreshable id token and a
// native state change listener
type PasswordProvider interface {
	Provider

	// SignUp creates an account and signs it in
	SignUp(ctx context.Context, creds Credentials) Result

	// IDToken returns an id token, refreshing it if force is set or it is stale
	IDToken(ctx context.Context, force bool) (string, error)

	// OnAuthStateChanged registers a listener for sign-in/sign-out transitions
	OnAuthStateChanged(fn func(loggedIn bool)) (cancel func())
}

// BearerSource is implemented by providers able to authorize backend calls
type BearerSource interface {
	BearerToken(ctx context.Context) (string, error)
}

// UserInfo integrated view of the active identity
type UserInfo struct {
	Kind        Kind   `json:"kind"`
	ID          string `json:"id"`
	UID         string `json:"uid,omitempty"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
}
