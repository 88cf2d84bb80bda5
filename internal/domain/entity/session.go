package entity

import "time"

// Session identidad autenticada actual. Como máximo una por proceso.
type Session struct {
	ID        string // sintético, no corresponde al id del backend
	Username  string
	Role      Role
	CreatedAt time.Time
	ExpiresAt time.Time // informativo, cero si el token no lo expone
}

// IsAdmin indica si la sesión tiene rol admin.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// Owns indica si la cuenta u es la de esta sesión (por id o por username).
func (s *Session) Owns(u User) bool {
	if s == nil {
		return false
	}
	return (u.ID != "" && u.ID == s.ID) || (u.Username != "" && u.Username == s.Username)
}
