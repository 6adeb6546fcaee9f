package request

// LoginRequest carries a Firebase ID token for exchange
type LoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// RegisterRequest represents the registration payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RefreshTokenRequest represents the token refresh payload
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ForgotPasswordRequest represents the password reset payload
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}
