package admin_login

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token       string `json:"token"`
	DisplayName string `json:"displayName"`
}
