// Package formato da formato regional (separador de miles ".", decimal ",") a
// montos y porcentajes para textos dirigidos al usuario: narrativa y PDF.
package formato

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NoDisponible texto para métricas nulas.
const NoDisponible = "N/D"

var idioma = language.Spanish

// Numero con la cantidad de decimales indicada: 1234567.891, 2 → "1.234.567,89".
func Numero(d decimal.Decimal, decimales int) string {
	f, _ := d.Round(int32(decimales)).Float64()
	return message.NewPrinter(idioma).Sprint(number.Decimal(f, number.Scale(decimales)))
}

// Moneda monto sin centavos: 150000 → "$150.000".
func Moneda(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + Numero(d.Abs(), 0)
	}
	return "$" + Numero(d, 0)
}

// Pct porcentaje con un decimal y signo explícito: 25.46 → "+25,5%".
func Pct(d decimal.Decimal) string {
	s := Numero(d, 1) + "%"
	if d.Round(1).IsPositive() {
		return "+" + s
	}
	return s
}

// NullPct como Pct, o N/D si la métrica no se pudo calcular.
func NullPct(d decimal.NullDecimal) string {
	if !d.Valid {
		return NoDisponible
	}
	return Pct(d.Decimal)
}

// NullNumero como Numero, o N/D.
func NullNumero(d decimal.NullDecimal, decimales int) string {
	if !d.Valid {
		return NoDisponible
	}
	return Numero(d.Decimal, decimales)
}

// NullMoneda como Moneda, o N/D.
func NullMoneda(d decimal.NullDecimal) string {
	if !d.Valid {
		return NoDisponible
	}
	return Moneda(d.Decimal)
}
