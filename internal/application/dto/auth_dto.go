package dto

import "time"

// LoginRequest credenciales enviadas a POST /autenticacao/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse respuesta del backend al login.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// SessionResponse sesión actual tal como la expone el dashboard.
type SessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	Ready         bool       `json:"ready"`
	ID            string     `json:"id,omitempty"`
	Username      string     `json:"username,omitempty"`
	Role          string     `json:"role,omitempty"`
	IsAdmin       bool       `json:"is_admin"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// LoginResult respuesta de POST /login del dashboard.
type LoginResult struct {
	Redirect string          `json:"redirect"`
	Session  SessionResponse `json:"session"`
}

// LoginStatusResponse respuesta de GET /login: estado de sesión y destino pendiente.
type LoginStatusResponse struct {
	Session SessionResponse `json:"session"`
	From    string          `json:"from,omitempty"`
}
