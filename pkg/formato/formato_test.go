package formato_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/sellout-api/pkg/formato"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestMoneda(t *testing.T) {
	assert.Equal(t, "$150.000", formato.Moneda(d("150000")))
	assert.Equal(t, "$1.250.000", formato.Moneda(d("1249999.6")))
	assert.Equal(t, "-$35.000", formato.Moneda(d("-35000")))
}

func TestNumero(t *testing.T) {
	assert.Equal(t, "1.234.567,89", formato.Numero(d("1234567.891"), 2))
	assert.Equal(t, "0,75", formato.Numero(d("0.75"), 2))
}

func TestPct(t *testing.T) {
	assert.Equal(t, "+25,5%", formato.Pct(d("25.46")))
	assert.Equal(t, "-12,0%", formato.Pct(d("-12")))
	assert.Equal(t, "0,0%", formato.Pct(d("0.01")))
}

func TestNulos(t *testing.T) {
	assert.Equal(t, formato.NoDisponible, formato.NullPct(decimal.NullDecimal{}))
	assert.Equal(t, formato.NoDisponible, formato.NullMoneda(decimal.NullDecimal{}))
	assert.Equal(t, formato.NoDisponible, formato.NullNumero(decimal.NullDecimal{}, 2))
	assert.Equal(t, "+150,0%", formato.NullPct(decimal.NewNullDecimal(d("150"))))
}
