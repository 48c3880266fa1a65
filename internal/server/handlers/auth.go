package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/gophcal/internal/crypto"
	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/server/jwt"
	"github.com/iudanet/gophcal/internal/server/storage"
	"github.com/iudanet/gophcal/internal/validation"
	"github.com/iudanet/gophcal/pkg/api"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger       *slog.Logger
	userStorage  storage.UserStorage
	tokenStorage storage.TokenStorage
	tokens       *jwt.Service
	now          func() time.Time
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, tokenStorage storage.TokenStorage, tokens *jwt.Service) *AuthHandler {
	return &AuthHandler{
		logger:       logger,
		userStorage:  userStorage,
		tokenStorage: tokenStorage,
		tokens:       tokens,
		now:          time.Now,
	}
}

// SignUp обрабатывает POST /api/v1/auth/signup
// Регистрация нового пользователя по email и паролю
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode signup request", slog.Any("error", err))
		sendError(w, h.logger, http.StatusBadRequest, api.ErrCodeInvalidArgument, "invalid request body")
		return
	}

	// Валидация полей
	if err := validation.ValidateSignUp(req.Email, req.Password, req.DisplayName); err != nil {
		h.logger.WarnContext(ctx, "invalid signup request", slog.Any("error", err))
		sendError(w, h.logger, http.StatusBadRequest, credentialErrorCode(err), err.Error())
		return
	}

	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
		return
	}

	now := h.now()
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        strings.TrimSpace(req.Email),
		DisplayName:  strings.TrimSpace(req.DisplayName),
		PasswordHash: passwordHash,
		Provider:     models.ProviderPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Сохраняем в БД
	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "email already registered")
			sendError(w, h.logger, http.StatusConflict, api.ErrCodeEmailInUse, "email already in use")
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully", slog.String("user_id", user.ID))

	sendJSON(w, h.logger, api.SignUpResponse{
		UID:     user.ID,
		Message: "User registered successfully",
	}, http.StatusCreated)
}

// SignIn обрабатывает POST /api/v1/auth/signin
// Аутентификация по email и паролю
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode signin request", slog.Any("error", err))
		sendError(w, h.logger, http.StatusBadRequest, api.ErrCodeInvalidArgument, "invalid request body")
		return
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		sendError(w, h.logger, http.StatusBadRequest, api.ErrCodeInvalidEmail, err.Error())
		return
	}
	if req.Password == "" {
		sendError(w, h.logger, http.StatusUnauthorized, api.ErrCodeInvalidCredential, "password is required")
		return
	}

	// Получаем пользователя из БД
	user, err := h.userStorage.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "signin failed: user not found")
			sendError(w, h.logger, http.StatusUnauthorized, api.ErrCodeUserNotFound, "user not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
		return
	}

	// Пользователи custom token не имеют пароля
	if !user.HasPassword() {
		h.logger.WarnContext(ctx, "signin failed: account has no password", slog.String("user_id", user.ID))
		sendError(w, h.logger, http.StatusUnauthorized, api.ErrCodeInvalidCredential, "invalid credentials")
		return
	}

	if err := crypto.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			h.logger.WarnContext(ctx, "signin failed: wrong password", slog.String("user_id", user.ID))
			sendError(w, h.logger, http.StatusUnauthorized, api.ErrCodeWrongPassword, "wrong password")
			return
		}
		h.logger.ErrorContext(ctx, "failed to verify password", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "user signed in successfully", slog.String("user_id", user.ID))
	h.issueTokens(w, r, user)
}

// CustomSignIn обрабатывает POST /api/v1/auth/custom
// Обмен custom token (выпущенного /createCustomToken) на пару токенов
func (h *AuthHandler) CustomSignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CustomTokenSignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CustomToken == "" {
		sendError(w, h.logger, http.StatusBadRequest, api.ErrCodeInvalidArgument, "customToken is required")
		return
	}

	claims, err := h.tokens.ValidateCustomToken(req.CustomToken)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid custom token", slog.Any("error", err))
		sendError(w, h.logger, http.StatusUnauthorized, api.ErrCodeInvalidToken, "invalid or expired custom token")
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(w, h.logger, http.StatusUnauthorized, api.ErrCodeUserNotFound, "user not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "custom token exchanged", slog.String("user_id", user.ID))
	h.issueTokens(w, r, user)
}

// Refresh обрабатывает POST /api/v1/auth/refresh
// Обновление токенов с помощью refresh token (старый токен отзывается)
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Извлекаем refresh token из Authorization header
	refreshToken, err := BearerToken(r)
	if err != nil {
		sendError(w, h.logger, http.StatusUnauthorized, api.ErrCodeInvalidToken, err.Error())
		return
	}

	tokenHash, err := crypto.HashToken(refreshToken)
	if err != nil {
		sendError(w, h.logger, http.StatusUnauthorized, api.ErrCodeInvalidToken, "invalid refresh token")
		return
	}

	// Токен одноразовый: удаление и чтение одной операцией, повторное
	// использование получит 401
	storedToken, err := h.tokenStorage.ConsumeRefreshToken(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			h.logger.WarnContext(ctx, "refresh token not found")
			sendError(w, h.logger, http.StatusUnauthorized, api.ErrCodeInvalidToken, "invalid refresh token")
			return
		}
		h.logger.ErrorContext(ctx, "failed to consume refresh token", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
		return
	}

	// Проверяем срок действия
	if storedToken.Expired(h.now()) {
		h.logger.WarnContext(ctx, "refresh token expired", slog.String("user_id", storedToken.UserID))
		sendError(w, h.logger, http.StatusUnauthorized, api.ErrCodeInvalidToken, "refresh token expired")
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, storedToken.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(w, h.logger, http.StatusUnauthorized, api.ErrCodeUserNotFound, "user not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "tokens refreshed successfully", slog.String("user_id", user.ID))
	h.issueTokens(w, r, user)
}

// SignOut обрабатывает POST /api/v1/auth/signout
// Выход пользователя: отзываются все refresh tokens
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idToken, err := BearerToken(r)
	if err != nil {
		sendError(w, h.logger, http.StatusUnauthorized, api.ErrCodeInvalidToken, err.Error())
		return
	}

	claims, err := h.tokens.ValidateIDToken(idToken)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid id token", slog.Any("error", err))
		sendError(w, h.logger, http.StatusUnauthorized, api.ErrCodeInvalidToken, "invalid or expired id token")
		return
	}

	deletedCount, err := h.tokenStorage.RevokeUserTokens(ctx, claims.UserID())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to revoke user tokens", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "user signed out successfully",
		slog.String("user_id", claims.UserID()),
		slog.Int("tokens_deleted", deletedCount))

	w.WriteHeader(http.StatusNoContent)
}

// issueTokens выпускает id token и refresh token и отправляет их клиенту
func (h *AuthHandler) issueTokens(w http.ResponseWriter, r *http.Request, user *models.User) {
	ctx := r.Context()

	// 1. ID token
	idToken, expiresIn, err := h.tokens.IssueIDToken(user.ID, user.Email, user.DisplayName, user.Provider)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate id token", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
		return
	}

	// 2. Refresh token, в БД хранится только хеш
	refreshToken, expiresAt, err := h.tokens.GenerateRefreshToken()
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate refresh token", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
		return
	}
	tokenHash, err := crypto.HashToken(refreshToken)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash refresh token", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
		return
	}

	// 3. Сохраняем refresh token
	if err := h.tokenStorage.SaveRefreshToken(ctx, &models.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: h.now(),
	}); err != nil {
		h.logger.ErrorContext(ctx, "failed to save refresh token", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
		return
	}

	sendJSON(w, h.logger, api.TokenResponse{
		IDToken:      idToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		UID:          user.ID,
		Email:        user.Email,
		DisplayName:  user.DisplayName,
	}, http.StatusOK)
}

// credentialErrorCode сопоставляет ошибку валидации с кодом ошибки API
func credentialErrorCode(err error) string {
	var verr *validation.Error
	if errors.As(err, &verr) {
		switch verr.Field {
		case "email":
			return api.ErrCodeInvalidEmail
		case "password":
			return api.ErrCodeWeakPassword
		}
	}
	return api.ErrCodeInvalidArgument
}
