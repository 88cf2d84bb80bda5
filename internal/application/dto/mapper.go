package dto

import "github.com/jhoicas/Inventario-dashboard/internal/domain/entity"

// NewProductResponse proyecta un producto normalizado a la vista.
func NewProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		MinimumStock: p.MinimumStock,
		CurrentStock: p.CurrentStock,
		Status:       string(p.Status),
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
	}
}

// NewProductResponses proyecta una lista; nunca devuelve nil.
func NewProductResponses(list []entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, NewProductResponse(p))
	}
	return out
}

// NewMovementResponse proyecta un movimiento. El autor sólo se expone si showUser.
func NewMovementResponse(m entity.Movement, showUser bool) MovementResponse {
	r := MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        string(m.Type),
		Quantity:    m.Quantity,
		Note:        m.Note,
		CreatedAt:   m.CreatedAt,
	}
	if showUser {
		r.UserName = m.UserName
	}
	return r
}

func NewMovementResponses(list []entity.Movement, showUser bool) []MovementResponse {
	out := make([]MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, NewMovementResponse(m, showUser))
	}
	return out
}

// NewUserResponse proyecta una cuenta (sin password).
func NewUserResponse(u entity.User, deletable bool) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		Setor:     u.Setor,
		CreatedAt: u.CreatedAt,
		Deletable: deletable,
	}
}

// NewSessionResponse estado de sesión para la vista; s puede ser nil.
func NewSessionResponse(s *entity.Session, ready bool) SessionResponse {
	r := SessionResponse{Ready: ready}
	if s == nil {
		return r
	}
	createdAt := s.CreatedAt
	r.Authenticated = true
	r.ID = s.ID
	r.Username = s.Username
	r.Role = string(s.Role)
	r.IsAdmin = s.IsAdmin()
	r.CreatedAt = &createdAt
	if !s.ExpiresAt.IsZero() {
		expiresAt := s.ExpiresAt
		r.ExpiresAt = &expiresAt
	}
	return r
}
