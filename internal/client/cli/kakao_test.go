package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAuthCode(t *testing.T) {
	const state = "st-1"

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
		anyErr  bool
	}{
		{name: "empty cancels", input: "  ", want: ""},
		{name: "bare code", input: " abc123 ", want: "abc123"},
		{name: "redirect url", input: "http://localhost:9999/callback?code=abc123&state=st-1", want: "abc123"},
		{name: "query only", input: "code=abc123&state=st-1", want: "abc123"},
		{name: "no state echoed", input: "http://localhost/cb?code=abc123", want: "abc123"},
		{name: "access denied cancels", input: "http://localhost/cb?error=access_denied&state=st-1", want: ""},
		{name: "state mismatch", input: "http://localhost/cb?code=abc123&state=other", wantErr: ErrStateMismatch},
		{name: "no code", input: "http://localhost/cb?state=st-1", wantErr: ErrNoCode},
		{name: "provider error", input: "http://localhost/cb?error=server_error&error_description=down", anyErr: true},
		{name: "broken query", input: "http://localhost/cb?code=%zz", anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := parseAuthCode(tt.input, state)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, code)
			}
		})
	}
}

func TestKakaoCodePrompter(t *testing.T) {
	io, out := newTestIO("http://localhost/cb?code=kc-1&state=st-1")
	prompt := KakaoCodePrompter(io)

	code, err := prompt(context.Background(), "https://kauth.kakao.com/oauth/authorize?state=st-1", "st-1")
	require.NoError(t, err)
	assert.Equal(t, "kc-1", code)
	assert.Contains(t, out.String(), "https://kauth.kakao.com/oauth/authorize?state=st-1")

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		io, _ := newTestIO("kc-1")
		_, err := KakaoCodePrompter(io)(ctx, "https://kauth.kakao.com", "st-1")
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, io.ReadInputCalls())
	})

	t.Run("input closed", func(t *testing.T) {
		io, _ := newTestIO()
		_, err := KakaoCodePrompter(io)(context.Background(), "https://kauth.kakao.com", "st-1")
		assert.ErrorContains(t, err, "failed to read authorization code")
	})
}
