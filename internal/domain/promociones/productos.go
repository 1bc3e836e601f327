package promociones

import "github.com/shopspring/decimal"

// AnalizarProductos repite el cálculo de uplift/elasticidad para cada producto
// vendido en la ventana de promoción. Los productos que solo aparecen en el baseline
// no se emiten: la tabla responde a "cómo se movieron los productos promocionados".
func AnalizarProductos(promo, baseline VentasPeriodo) []ProductoPromocionAnalisis {
	base := make(map[string]VentaProducto, len(baseline.Productos))
	for _, p := range baseline.Productos {
		base[p.ProductoID] = p
	}

	total := promo.Totales.VentaTotal
	out := make([]ProductoPromocionAnalisis, 0, len(promo.Productos))
	for _, p := range promo.Productos {
		b, ok := base[p.ProductoID]
		if !ok {
			b = VentaProducto{ProductoID: p.ProductoID}
		}

		unidadesPct := variacionPct(p.Unidades, b.Unidades)
		out = append(out, ProductoPromocionAnalisis{
			ProductoID:            p.ProductoID,
			Nombre:                p.Nombre,
			VentaPromo:            p.Venta,
			VentaBaseline:         b.Venta,
			VentaDiferenciaPct:    variacionPct(p.Venta, b.Venta),
			UnidadesPromo:         p.Unidades,
			UnidadesBaseline:      b.Unidades,
			UnidadesDiferenciaPct: unidadesPct,
			PrecioPromo:           p.PrecioPromedio,
			PrecioBaseline:        b.PrecioPromedio,
			Elasticidad:           elasticidad(unidadesPct, variacionPrecioPct(p.PrecioPromedio, b.PrecioPromedio)),
			ContribucionPct:       contribucionPct(p.Venta, total),
		})
	}
	return out
}

func contribucionPct(venta, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return venta.Div(total).Mul(cien)
}
