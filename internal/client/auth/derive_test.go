package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSession(t *testing.T) {
	tests := []struct {
		name         string
		states       ProviderStates
		wantLoggedIn bool
		wantActive   Kind
		inconsistent bool
	}{
		{name: "nobody", states: ProviderStates{}, wantActive: KindNone},
		{name: "password only", states: ProviderStates{Password: true}, wantLoggedIn: true, wantActive: KindPassword},
		{name: "apple only", states: ProviderStates{Apple: true}, wantLoggedIn: true, wantActive: KindApple},
		{name: "kakao only", states: ProviderStates{Kakao: true}, wantLoggedIn: true, wantActive: KindKakao},
		{name: "password beats kakao", states: ProviderStates{Password: true, Kakao: true}, wantLoggedIn: true, wantActive: KindPassword, inconsistent: true},
		{name: "apple beats kakao", states: ProviderStates{Apple: true, Kakao: true}, wantLoggedIn: true, wantActive: KindApple, inconsistent: true},
		{name: "all three", states: ProviderStates{Password: true, Apple: true, Kakao: true}, wantLoggedIn: true, wantActive: KindPassword, inconsistent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveSession(tt.states)
			assert.Equal(t, tt.wantLoggedIn, got.LoggedIn)
			assert.Equal(t, tt.wantActive, got.Active)
			assert.Equal(t, tt.inconsistent, got.Inconsistent())
		})
	}
}

func TestResolveDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		identity *Identity
		want     string
	}{
		{name: "nil", identity: nil, want: ""},
		{name: "provider name wins", identity: &Identity{Kind: KindPassword, DisplayName: "Alice", Email: "a@x.io"}, want: "Alice"},
		{name: "password email local part", identity: &Identity{Kind: KindPassword, Email: "alice@x.io"}, want: "alice"},
		{name: "password fallback", identity: &Identity{Kind: KindPassword}, want: FallbackPasswordName},
		{name: "apple full name", identity: &Identity{Kind: KindApple, GivenName: "Tim", FamilyName: "Cook", Email: "t@x.io"}, want: "Tim Cook"},
		{name: "apple given name only", identity: &Identity{Kind: KindApple, GivenName: "Tim"}, want: "Tim"},
		{name: "apple email local part", identity: &Identity{Kind: KindApple, Email: "relay123@privaterelay.appleid.com"}, want: "relay123"},
		{name: "apple fallback", identity: &Identity{Kind: KindApple}, want: FallbackAppleName},
		{name: "kakao nickname", identity: &Identity{Kind: KindKakao, Nickname: "Kim", Email: "k@x.io"}, want: "Kim"},
		{name: "kakao email", identity: &Identity{Kind: KindKakao, Email: "kim@x.io"}, want: "kim"},
		{name: "kakao fallback", identity: &Identity{Kind: KindKakao}, want: FallbackKakaoName},
		{name: "blank name ignored", identity: &Identity{Kind: KindKakao, DisplayName: "  ", Nickname: "Kim"}, want: "Kim"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDisplayName(tt.identity))
		})
	}
}

func TestKind_String(t *testing.T) {
	for _, kind := range []Kind{KindPassword, KindApple, KindKakao} {
		assert.Equal(t, kind, ParseKind(kind.String()))
	}
	assert.Equal(t, KindNone, ParseKind("github"))
	assert.Equal(t, "none", KindNone.String())
}
