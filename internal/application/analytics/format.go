package analytics

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = language.BrazilianPortuguese

// FormatInt formatea con separador de miles pt-BR: 1234 → "1.234".
func FormatInt(n int) string {
	return message.NewPrinter(ptBR).Sprintf("%d", n)
}

// MonthLabel etiqueta legible del mes, ej: "março de 2026".
func MonthLabel(t time.Time) string {
	months := [...]string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	}
	return fmt.Sprintf("%s de %d", months[t.Month()-1], t.Year())
}
