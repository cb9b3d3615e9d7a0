package dto

// DeveloperLoginRequest is the body of POST /auth/developer-login
type DeveloperLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued developer token
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}
