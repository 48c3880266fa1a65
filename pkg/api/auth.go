package api

// SignUpRequest представляет запрос на регистрацию нового пользователя
type SignUpRequest struct {
	Email       string `json:"email"`       // email пользователя
	Password    string `json:"password"`    // пароль в открытом виде (только по TLS)
	DisplayName string `json:"displayName"` // отображаемое имя
}

// SignUpResponse представляет ответ на успешную регистрацию
type SignUpResponse struct {
	UID     string `json:"uid"`     // UUID пользователя
	Message string `json:"message"` // сообщение об успешной регистрации
}

// SignInRequest представляет запрос на аутентификацию по email и паролю
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CustomTokenSignInRequest вход по custom token, выпущенному createCustomToken
type CustomTokenSignInRequest struct {
	CustomToken string `json:"customToken"`
}

// TokenResponse представляет ответ с токенами доступа
type TokenResponse struct {
	IDToken      string `json:"idToken"`      // JWT id token
	RefreshToken string `json:"refreshToken"` // непрозрачный refresh token
	ExpiresIn    int64  `json:"expiresIn"`    // время жизни id token в секундах
	UID          string `json:"uid"`          // идентификатор пользователя
	Email        string `json:"email"`        // email пользователя (может быть пустым)
	DisplayName  string `json:"displayName"`  // отображаемое имя
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // код ошибки (auth/user-not-found, not-found, ...)
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// Коды ошибок аутентификации
const (
	ErrCodeInvalidEmail      = "auth/invalid-email"
	ErrCodeUserNotFound      = "auth/user-not-found"
	ErrCodeWrongPassword     = "auth/wrong-password"
	ErrCodeInvalidCredential = "auth/invalid-credential"
	ErrCodeEmailInUse        = "auth/email-already-in-use"
	ErrCodeWeakPassword      = "auth/weak-password"
	ErrCodeInvalidToken      = "auth/invalid-token"
)

// Общие коды ошибок API
const (
	ErrCodeNotFound          = "not-found"
	ErrCodePermissionDenied  = "permission-denied"
	ErrCodeInvalidArgument   = "invalid-argument"
	ErrCodeResourceExhausted = "resource-exhausted"
	ErrCodeInternal          = "internal"
)
