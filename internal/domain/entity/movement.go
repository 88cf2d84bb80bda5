package entity

import "time"

// MovementType tipo de movimiento normalizado.
type MovementType string

const (
	MovementEntry MovementType = "entry"
	MovementExit  MovementType = "exit"
)

// Movement movimiento de stock. Inmutable: no existe update ni delete.
type Movement struct {
	ID          string
	ProductID   string
	ProductName string
	Type        MovementType
	Quantity    int
	Note        string
	UserName    string // autor desnormalizado, sin FK
	CreatedAt   time.Time
}
