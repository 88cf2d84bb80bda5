package entity

import "time"

// Role rol normalizado de una cuenta.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleCollaborator Role = "collaborator"
)

// ProtectedUsername cuenta que nunca se elimina desde el dashboard.
const ProtectedUsername = "admin"

// User cuenta de usuario del backend.
type User struct {
	ID        string
	Username  string
	Role      Role
	Setor     string // sector (vocabulario del backend)
	CreatedAt time.Time
}
