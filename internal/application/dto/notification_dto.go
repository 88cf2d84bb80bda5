package dto

import "time"

// NotificationDTO aviso al operador (equivalente al toast de la UI).
type NotificationDTO struct {
	ID        uint64    `json:"id"`
	Kind      string    `json:"kind"` // success | error | navigate
	Message   string    `json:"message,omitempty"`
	Target    string    `json:"target,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListResponse respuesta de GET /notifications.
type NotificationListResponse struct {
	Items  []NotificationDTO `json:"items"`
	LastID uint64            `json:"last_id"`
}
