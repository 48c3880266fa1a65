package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/iudanet/gophcal/internal/kakao"
	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/server/jwt"
	"github.com/iudanet/gophcal/internal/server/storage"
	"github.com/iudanet/gophcal/pkg/api"
)

// defaultKakaoDisplayName имя пользователя без никнейма в профиле Kakao
const defaultKakaoDisplayName = "카카오 사용자"

// KakaoAPI профиль пользователя по access token Kakao
type KakaoAPI interface {
	Me(ctx context.Context, token *oauth2.Token) (*kakao.User, error)
}

var _ KakaoAPI = (*kakao.Client)(nil)

// KakaoHandler обменивает access token Kakao на custom token сервера
type KakaoHandler struct {
	logger      *slog.Logger
	kakao       KakaoAPI
	userStorage storage.UserStorage
	tokens      *jwt.Service
	now         func() time.Time
}

// NewKakaoHandler создает новый handler для Kakao
func NewKakaoHandler(logger *slog.Logger, kakaoAPI KakaoAPI, userStorage storage.UserStorage, tokens *jwt.Service) *KakaoHandler {
	return &KakaoHandler{
		logger:      logger,
		kakao:       kakaoAPI,
		userStorage: userStorage,
		tokens:      tokens,
		now:         time.Now,
	}
}

// CreateCustomToken обрабатывает POST /createCustomToken
//  1. проверяет access token через Kakao user API
//  2. создает или обновляет пользователя kakao_<id>
//  3. выпускает custom token для /api/v1/auth/custom
func (h *KakaoHandler) CreateCustomToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateCustomTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.AccessToken) == "" {
		sendError(w, h.logger, http.StatusBadRequest, api.ErrCodeInvalidArgument, "accessToken is required")
		return
	}

	profile, err := h.kakao.Me(ctx, &oauth2.Token{AccessToken: req.AccessToken, TokenType: "Bearer"})
	if err != nil {
		h.sendKakaoError(w, r, err)
		return
	}

	now := h.now()
	user := kakaoToUser(profile, now)
	if err := h.userStorage.UpsertUser(ctx, user); err != nil {
		h.logger.ErrorContext(ctx, "failed to upsert kakao user", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
		return
	}

	customToken, err := h.tokens.IssueCustomToken(user.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue custom token", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "kakao custom token issued", slog.String("user_id", user.ID))

	sendJSON(w, h.logger, api.CreateCustomTokenResponse{
		Success:     true,
		CustomToken: customToken,
		User:        toKakaoUser(user, profile),
	}, http.StatusOK)
}

// GetKakaoUserInfo обрабатывает GET /getKakaoUserInfo?uid=kakao_<id>
func (h *KakaoHandler) GetKakaoUserInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	uid := r.URL.Query().Get("uid")
	if !strings.HasPrefix(uid, "kakao_") {
		sendError(w, h.logger, http.StatusBadRequest, api.ErrCodeInvalidArgument, "uid must be a kakao user id")
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(w, h.logger, http.StatusNotFound, api.ErrCodeNotFound, "user not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get kakao user", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "internal server error")
		return
	}

	sendJSON(w, h.logger, api.KakaoUserInfoResponse{
		Success: true,
		User:    toKakaoUser(user, nil),
	}, http.StatusOK)
}

func (h *KakaoHandler) sendKakaoError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, kakao.ErrInvalidToken):
		h.logger.WarnContext(r.Context(), "kakao rejected access token")
		sendError(w, h.logger, http.StatusUnauthorized, api.ErrCodeInvalidToken, "invalid kakao access token")
	case errors.Is(err, kakao.ErrInsufficientScope):
		h.logger.WarnContext(r.Context(), "kakao token lacks permission")
		sendError(w, h.logger, http.StatusForbidden, api.ErrCodePermissionDenied, "insufficient kakao api permission")
	default:
		h.logger.ErrorContext(r.Context(), "kakao api request failed", slog.Any("error", err))
		sendError(w, h.logger, http.StatusInternalServerError, api.ErrCodeInternal, "failed to create custom token")
	}
}

func kakaoToUser(profile *kakao.User, now time.Time) *models.User {
	name := strings.TrimSpace(profile.Account.Profile.Nickname)
	if name == "" {
		name = defaultKakaoDisplayName
	}
	return &models.User{
		ID:          kakao.UID(profile.ID),
		Email:       profile.Account.Email,
		DisplayName: name,
		Provider:    models.ProviderKakao,
		PhotoURL:    profile.Account.Profile.ProfileImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func toKakaoUser(user *models.User, profile *kakao.User) api.KakaoUser {
	out := api.KakaoUser{
		UID:         user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
	}
	if profile != nil {
		out.KakaoID = profile.ID
		out.ProfileImage = profile.Account.Profile.ThumbnailImageURL
	}
	return out
}
