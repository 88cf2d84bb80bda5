package dto

// ErrorResponse cuerpo de error HTTP del dashboard.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIErrorBody cuerpo de error que devuelve el backend de inventario.
type APIErrorBody struct {
	Message string `json:"message"`
}
