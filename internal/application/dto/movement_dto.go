package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementRecord movimiento tal como lo devuelve GET /api/movimentacoes.
// Las cantidades llegan como BigDecimal ("10.0"); se decodifican con decimal.
type MovementRecord struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	NomeProduto string          `json:"nomeProduto"`
	Tipo        string          `json:"tipo"` // ENTRADA | SAIDA
	Quantidade  decimal.Decimal `json:"quantidade"`
	DataHora    string          `json:"dataHora"`
	NomeUsuario string          `json:"nomeUsuario"`
	Observacao  string          `json:"observacao,omitempty"`
}

// MovementRequest cuerpo de POST /api/movimentacoes/entrada y /saida.
type MovementRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Note      string `json:"note"`
}

// MovementResponse movimiento normalizado servido por el dashboard.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Note        string    `json:"note,omitempty"`
	UserName    string    `json:"user_name,omitempty"` // sólo visible para admin
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse lista de movimientos.
type MovementListResponse struct {
	Items   []MovementResponse `json:"items"`
	Loading bool               `json:"loading"`
}

// MovementInputRequest cuerpo de POST /movements del dashboard.
type MovementInputRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"` // entry | exit
	Quantity  int    `json:"quantity"`
	Note      string `json:"note"`
}

// HistorySummary totales del historial filtrado.
type HistorySummary struct {
	Entries int `json:"entries"` // cantidad total de entradas
	Exits   int `json:"exits"`   // cantidad total de salidas
	Total   int `json:"total"`   // número de movimientos
}

// HistoryResponse respuesta de GET /history.
type HistoryResponse struct {
	Items   []MovementResponse `json:"items"`
	Summary HistorySummary     `json:"summary"`
}
