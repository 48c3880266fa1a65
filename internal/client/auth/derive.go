package auth

import "strings"

// Fixed display names used when a provider gives nothing better
const (
	FallbackPasswordName = "User"
	FallbackAppleName    = "Apple User"
	FallbackKakaoName    = "Kakao User"
)

// priority order of providers when several are logged in at once
var priority = []Kind{KindPassword, KindApple, KindKakao}

// ProviderStates per-provider logged-in flags
type ProviderStates struct {
	Password bool `json:"password"`
	Apple    bool `json:"apple"`
	Kakao    bool `json:"kakao"`
}

// Of returns the flag of the given provider
func (s ProviderStates) Of(kind Kind) bool {
	switch kind {
	case KindPassword:
		return s.Password
	case KindApple:
		return s.Apple
	case KindKakao:
		return s.Kakao
	default:
		return false
	}
}

// Session derived login view. Never stored.
type Session struct {
	LoggedIn  bool
	Active    Kind   // highest priority logged-in provider, KindNone if nobody
	Providers []Kind // every logged-in provider in priority order
}

// Inconsistent reports that more than one provider has an active session
func (s Session) Inconsistent() bool {
	return len(s.Providers) > 1
}

// DeriveSession computes the session from provider states.
// LoggedIn is the OR of all flags; Active follows Password > Apple > Kakao.
func DeriveSession(states ProviderStates) Session {
	var session Session
	for _, kind := range priority {
		if !states.Of(kind) {
			continue
		}
		if !session.LoggedIn {
			session.LoggedIn = true
			session.Active = kind
		}
		session.Providers = append(session.Providers, kind)
	}
	return session
}

// ResolveDisplayName picks the name shown for an identity:
// provider name, then Apple full name or Kakao nickname, then email local part,
// then a fixed fallback.
func ResolveDisplayName(identity *Identity) string {
	if identity == nil {
		return ""
	}

	if name := strings.TrimSpace(identity.DisplayName); name != "" {
		return name
	}

	switch identity.Kind {
	case KindApple:
		if name := joinNameParts(identity.GivenName, identity.FamilyName); name != "" {
			return name
		}
	case KindKakao:
		if name := strings.TrimSpace(identity.Nickname); name != "" {
			return name
		}
	}

	if local := emailLocalPart(identity.Email); local != "" {
		return local
	}

	return fallbackName(identity.Kind)
}

func joinNameParts(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

func emailLocalPart(email string) string {
	local, _, found := strings.Cut(strings.TrimSpace(email), "@")
	if !found {
		return ""
	}
	return local
}

func fallbackName(kind Kind) string {
	switch kind {
	case KindApple:
		return FallbackAppleName
	case KindKakao:
		return FallbackKakaoName
	default:
		return FallbackPasswordName
	}
}
