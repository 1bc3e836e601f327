package promociones

import "github.com/shopspring/decimal"

// CalcularCostoDescuento costo del descuento otorgado sobre las unidades vendidas,
// valorizado al precio promedio del baseline.
//
//	descuento_porcentaje  unidades * precio * pct/100
//	precio_especial       unidades * max(0, precio - especial)
//	multicompra_nx1       floor(unidades/compra) * (compra-lleva) * precio
//	multicompra_nxprecio  floor(unidades/cantidad) * max(0, cantidad*precio - precio_set)
//	bundle                0 (el precio observado ya refleja el combo)
//
// Las multicompras solo cuentan sets completos. Sin precio base el costo es cero.
func CalcularCostoDescuento(cfg PromocionConfig, unidades decimal.Decimal, precioBase decimal.NullDecimal) (decimal.Decimal, error) {
	switch p := cfg.Parametros.(type) {
	case DescuentoPorcentaje:
		if !precioConocido(precioBase) {
			return decimal.Zero, nil
		}
		return unidades.Mul(precioBase.Decimal).Mul(p.Porcentaje.Div(cien)), nil

	case PrecioEspecial:
		if !precioConocido(precioBase) {
			return decimal.Zero, nil
		}
		return unidades.Mul(maxCero(precioBase.Decimal.Sub(p.Precio))), nil

	case MulticompraNx1:
		if !precioConocido(precioBase) || p.Compra <= 0 {
			return decimal.Zero, nil
		}
		sets := unidades.Div(decimal.NewFromInt(int64(p.Compra))).Floor()
		gratis := decimal.NewFromInt(int64(p.Compra - p.Lleva))
		return sets.Mul(gratis).Mul(precioBase.Decimal), nil

	case MulticompraNxPrecio:
		if !precioConocido(precioBase) || p.Cantidad <= 0 {
			return decimal.Zero, nil
		}
		cantidad := decimal.NewFromInt(int64(p.Cantidad))
		sets := unidades.Div(cantidad).Floor()
		ahorroPorSet := maxCero(cantidad.Mul(precioBase.Decimal).Sub(p.Precio))
		return sets.Mul(ahorroPorSet), nil

	case Bundle:
		return decimal.Zero, nil

	default:
		return decimal.Zero, tipoDesconocido(cfg.Parametros)
	}
}

// CalcularPrecioEfectivo precio unitario que paga el cliente bajo la promoción.
// Devuelve nulo cuando la mecánica depende del precio base y éste es desconocido.
// Un precio especial por encima del precio base no es una rebaja: se reporta el base.
func CalcularPrecioEfectivo(cfg PromocionConfig, precioBase decimal.NullDecimal) (decimal.NullDecimal, error) {
	switch p := cfg.Parametros.(type) {
	case DescuentoPorcentaje:
		if !precioBase.Valid {
			return decimal.NullDecimal{}, nil
		}
		factor := decimal.NewFromInt(1).Sub(p.Porcentaje.Div(cien))
		return decimal.NewNullDecimal(precioBase.Decimal.Mul(factor)), nil

	case PrecioEspecial:
		if precioBase.Valid && p.Precio.GreaterThan(precioBase.Decimal) {
			return precioBase, nil
		}
		return decimal.NewNullDecimal(p.Precio), nil

	case MulticompraNx1:
		if !precioBase.Valid || p.Compra <= 0 {
			return decimal.NullDecimal{}, nil
		}
		lleva := decimal.NewFromInt(int64(p.Lleva))
		compra := decimal.NewFromInt(int64(p.Compra))
		return decimal.NewNullDecimal(lleva.Mul(precioBase.Decimal).Div(compra)), nil

	case MulticompraNxPrecio:
		if p.Cantidad <= 0 {
			return decimal.NullDecimal{}, nil
		}
		return decimal.NewNullDecimal(p.Precio.Div(decimal.NewFromInt(int64(p.Cantidad)))), nil

	case Bundle:
		return decimal.NewNullDecimal(p.PrecioBundle), nil

	default:
		return decimal.NullDecimal{}, tipoDesconocido(cfg.Parametros)
	}
}
