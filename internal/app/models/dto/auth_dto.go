package dto

import "github.com/rtorralba/schooldesk/internal/app/models"

// LoginRequest carries dashboard login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries a refresh token to rotate.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair.
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn"`
	RefreshExpiresIn int    `json:"refreshExpiresIn"`
}

// ProfileResponse is the current user's account view.
type ProfileResponse struct {
	ID       int64           `json:"id"`
	Email    string          `json:"email"`
	FullName string          `json:"fullName"`
	RoleType models.RoleType `json:"roleType"`
}
