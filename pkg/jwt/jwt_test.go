package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Inventario-dashboard/pkg/jwt"
)

func signed(t *testing.T, claims gojwt.Claims) string {
	t.Helper()
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("clave-del-backend"))
	require.NoError(t, err)
	return tok
}

func TestInspect_ExtraeClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := signed(t, pkgjwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{Subject: "maria", ExpiresAt: gojwt.NewNumericDate(exp)},
		Role:             "ADMIN",
	})

	info, err := pkgjwt.Inspect(tok)
	require.NoError(t, err)
	assert.Equal(t, "maria", info.Subject)
	assert.Equal(t, "ADMIN", info.Role)
	assert.True(t, info.ExpiresAt.Equal(exp))
	assert.False(t, info.Expired(time.Now()))
}

func TestInspect_TokenVencidoNoFalla(t *testing.T) {
	exp := time.Now().Add(-time.Minute)
	tok := signed(t, pkgjwt.Claims{
		RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(exp)},
	})

	info, err := pkgjwt.Inspect(tok)
	require.NoError(t, err, "la inspección no valida expiración; eso lo decide el backend")
	assert.True(t, info.Expired(time.Now()))
}

func TestInspect_TokenOpaco(t *testing.T) {
	_, err := pkgjwt.Inspect("token-opaco-sin-puntos")
	assert.Error(t, err)

	_, err = pkgjwt.Inspect("")
	assert.Error(t, err)
}

func TestTokenInfo_SinExpNuncaVence(t *testing.T) {
	assert.False(t, pkgjwt.TokenInfo{}.Expired(time.Now()))
}
