package promociones

import "github.com/shopspring/decimal"

var cien = decimal.NewFromInt(100)

// variacionPct (actual - base) / base * 100.
// Con base cero: 0% si actual también es cero, 100% en otro caso ("arrancó de cero").
func variacionPct(actual, base decimal.Decimal) decimal.Decimal {
	if base.IsZero() {
		if actual.IsZero() {
			return decimal.Zero
		}
		return cien
	}
	return actual.Sub(base).Div(base).Mul(cien)
}

// VariacionPct versión exportada para los adaptadores que arman ProductoHermano.
func VariacionPct(actual, base decimal.Decimal) decimal.Decimal {
	return variacionPct(actual, base)
}

// PrecioPromedio venta / unidades; nulo sin unidades vendidas.
func PrecioPromedio(venta, unidades decimal.Decimal) decimal.NullDecimal {
	if !unidades.IsPositive() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(venta.Div(unidades))
}

// dividir num / den, cero si den es cero.
func dividir(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}

// precioConocido un precio promedio nulo o no positivo no sirve como referencia.
func precioConocido(p decimal.NullDecimal) bool {
	return p.Valid && p.Decimal.IsPositive()
}

// variacionPrecioPct variación % del precio; nula si falta alguno de los dos precios
// o si el precio base no es positivo. Un precio actual de cero (100% de descuento) es válido.
func variacionPrecioPct(actual, base decimal.NullDecimal) decimal.NullDecimal {
	if !actual.Valid || !precioConocido(base) {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(actual.Decimal.Sub(base.Decimal).Div(base.Decimal).Mul(cien))
}

// elasticidad %Δunidades / %Δprecio; nula si la variación de precio es desconocida o cero.
func elasticidad(unidadesPct decimal.Decimal, precioPct decimal.NullDecimal) decimal.NullDecimal {
	if !precioPct.Valid || precioPct.Decimal.IsZero() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(unidadesPct.Div(precioPct.Decimal))
}

func maxCero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
