package api

// CreateCustomTokenRequest запрос на выпуск custom token по access token Kakao
type CreateCustomTokenRequest struct {
	AccessToken string `json:"accessToken"`
}

// KakaoUser профиль пользователя Kakao, как его видит сервер
type KakaoUser struct {
	UID          string `json:"uid"` // kakao_<id>
	Email        string `json:"email,omitempty"`
	DisplayName  string `json:"displayName"`
	PhotoURL     string `json:"photoURL,omitempty"`
	KakaoID      int64  `json:"kakaoId"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// CreateCustomTokenResponse ответ RPC createCustomToken
type CreateCustomTokenResponse struct {
	Success     bool      `json:"success"`
	CustomToken string    `json:"customToken"`
	User        KakaoUser `json:"user"`
}

// KakaoUserInfoResponse ответ getKakaoUserInfo
type KakaoUserInfoResponse struct {
	Success bool      `json:"success"`
	User    KakaoUser `json:"user"`
}

// HealthResponse ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
