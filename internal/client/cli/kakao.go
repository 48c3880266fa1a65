package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/iudanet/gophcal/internal/client/auth"
	"github.com/iudanet/gophcal/internal/client/iocli"
)

var (
	// ErrStateMismatch state в redirect URL не совпал с отправленным
	ErrStateMismatch = errors.New("oauth state mismatch")
	// ErrNoCode в redirect URL нет кода авторизации
	ErrNoCode = errors.New("authorization code missing")
)

// KakaoCodePrompter asks the user to open the Kakao authorization page and
// paste back either the redirect URL or the bare code
func KakaoCodePrompter(io iocli.IO) auth.CodePrompter {
	return func(ctx context.Context, authURL, state string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		io.Println("Open this URL in a browser and sign in with Kakao:")
		io.Println()
		io.Println("  " + authURL)
		io.Println()

		input, err := io.ReadInput("Paste the redirect URL or the code (empty to cancel): ")
		if err != nil {
			return "", fmt.Errorf("failed to read authorization code: %w", err)
		}
		return parseAuthCode(input, state)
	}
}

// parseAuthCode пустая строка без ошибки означает отмену
func parseAuthCode(input, state string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}
	if !strings.Contains(input, "=") {
		return input, nil
	}

	raw := input
	if _, query, ok := strings.Cut(input, "?"); ok {
		raw = query
	}
	q, err := url.ParseQuery(raw)
	if err != nil {
		return "", fmt.Errorf("invalid redirect URL: %w", err)
	}

	if e := q.Get("error"); e != "" {
		if e == "access_denied" {
			return "", nil
		}
		return "", fmt.Errorf("kakao authorization failed: %s %s", e, q.Get("error_description"))
	}
	if got := q.Get("state"); got != "" && got != state {
		return "", ErrStateMismatch
	}

	code := q.Get("code")
	if code == "" {
		return "", ErrNoCode
	}
	return code, nil
}
