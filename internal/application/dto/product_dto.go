package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRecord producto tal como lo devuelve GET /api/produtos (vocabulario del backend).
type ProductRecord struct {
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	Descricao     string          `json:"descricao"`
	EstoqueMinimo decimal.Decimal `json:"estoqueMinimo"`
	Active        bool            `json:"active"`
	CreatedAt     string          `json:"createdAt"`
}

// CreateProductRequest cuerpo de POST /api/produtos.
type CreateProductRequest struct {
	Nome          string `json:"nome"`
	Descricao     string `json:"descricao"`
	EstoqueMinimo int    `json:"estoqueMinimo"`
}

// UpdateProductRequest cuerpo parcial de PUT /api/produtos/{id}.
type UpdateProductRequest struct {
	Nome          *string `json:"nome,omitempty"`
	Descricao     *string `json:"descricao,omitempty"`
	EstoqueMinimo *int    `json:"estoqueMinimo,omitempty"`
}

// ProductResponse producto normalizado servido por el dashboard.
type ProductResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	MinimumStock int       `json:"minimum_stock"`
	CurrentStock int       `json:"current_stock"`
	Status       string    `json:"status"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProductListResponse lista de productos; Loading indica carga inicial en curso.
type ProductListResponse struct {
	Items   []ProductResponse `json:"items"`
	Loading bool              `json:"loading"`
}

// ProductInputRequest cuerpo de POST/PUT /products del dashboard (campos parciales en PUT).
type ProductInputRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	MinimumStock *int    `json:"minimum_stock"`
}
