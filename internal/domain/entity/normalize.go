package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ── Tabla de equivalencias backend → vocabulario interno ──────────────────────
// El backend mezcla inglés y portugués ("CRITICAL", "critico", "ENTRADA").
// Las claves están plegadas (minúsculas, sin acentos).

var statusAliases = map[string]StockStatus{
	"normal":   StockNormal,
	"low":      StockLow,
	"baixo":    StockLow,
	"critical": StockCritical,
	"critico":  StockCritical,
}

var movementAliases = map[string]MovementType{
	"entry":   MovementEntry,
	"entrada": MovementEntry,
}

// NormalizeStatus traduce el estado del backend; cualquier valor desconocido es normal.
func NormalizeStatus(raw string) StockStatus {
	if s, ok := statusAliases[Fold(raw)]; ok {
		return s
	}
	return StockNormal
}

// NormalizeMovementType traduce el tipo del backend; todo lo que no sea entrada es salida.
func NormalizeMovementType(raw string) MovementType {
	if t, ok := movementAliases[Fold(raw)]; ok {
		return t
	}
	return MovementExit
}

// NormalizeRole admin (cualquier caja) es admin; el resto es colaborador.
func NormalizeRole(raw string) Role {
	if Fold(raw) == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleCollaborator
}

// Fold pliega mayúsculas y elimina diacríticos ("CRÍTICO" → "critico").
// Caser y Transformer tienen estado: se crean por llamada.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}
