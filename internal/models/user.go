package models

import "time"

// Провайдеры, с которыми пользователь может быть заведен на сервере
const (
	ProviderPassword = "password"
	ProviderKakao    = "kakao"
)

// User учетная запись на сервере. Пользователи Kakao заводятся через
// custom token: id вида kakao_<id>, пароля нет, email может быть пустым.
type User struct {
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"` // argon2id
	Provider     string    `json:"provider"`
	PhotoURL     string    `json:"photo_url"`
}

// HasPassword сообщает, можно ли войти по email и паролю
func (u *User) HasPassword() bool {
	return u.Provider == ProviderPassword && u.PasswordHash != ""
}

// RefreshToken одноразовый refresh token. Хранится только хеш.
type RefreshToken struct {
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"token_hash"` // SHA-256, hex
}

// Expired true, если к моменту now токен уже недействителен
func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
