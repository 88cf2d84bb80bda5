package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims que el backend incluye en el token. El dashboard no tiene la clave de firma:
// sólo lee el contenido, la validación la hace siempre el backend.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// TokenInfo datos informativos extraídos de un token.
type TokenInfo struct {
	Subject   string
	Role      string
	ExpiresAt time.Time // cero si el token no trae exp
}

// Expired indica si el token ya venció respecto a now. Sin exp nunca vence.
func (i TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !now.Before(i.ExpiresAt)
}

// Inspect decodifica el token sin verificar la firma.
// Retorna error si el token no tiene formato JWT (tokens opacos).
func Inspect(tokenString string) (TokenInfo, error) {
	if tokenString == "" {
		return TokenInfo{}, fmt.Errorf("jwt: token vacío")
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return TokenInfo{}, fmt.Errorf("jwt: decodificar token: %w", err)
	}
	info := TokenInfo{Subject: claims.Subject, Role: claims.Role}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
