package dto

// LoginRequest carries the credentials for the token endpoint.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenPairResponse is returned on successful login.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshTokenRequest carries the refresh token for the refresh endpoint.
type RefreshTokenRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// AccessTokenResponse is returned on successful refresh.
type AccessTokenResponse struct {
	Access string `json:"access"`
}
