package dto

import "time"

// UserRecord usuario tal como lo devuelve GET /api/users.
type UserRecord struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Setor     string `json:"setor"`
	CreatedAt string `json:"createdAt"`
}

// CreateUserRequest cuerpo de POST /api/users (password en texto; lo hashea el backend).
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Setor    string `json:"setor"`
}

// UpdateUserRequest cuerpo parcial de PUT /api/users/{id}.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
	Setor    *string `json:"setor,omitempty"`
}

// UserResponse usuario normalizado servido por el dashboard (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Setor     string    `json:"setor,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Deletable bool      `json:"deletable"`
}

// UserListResponse lista de usuarios.
type UserListResponse struct {
	Items   []UserResponse `json:"items"`
	Loading bool           `json:"loading"`
}

// UserInputRequest cuerpo de POST/PUT /users del dashboard.
type UserInputRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Setor    *string `json:"setor"`
}
