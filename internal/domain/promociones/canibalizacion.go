package promociones

import "github.com/shopspring/decimal"

// AnalizarCanibalizacion resume la caída de venta en productos hermanos de categoría.
//
// Un hermano está afectado cuando su variación % es menor a u.CanibalizacionBajo.
// La pérdida total solo suma caídas (baseline - promo) de los afectados; el
// crecimiento de un hermano no compensa la caída de otro.
// ImpactoNeto = uplift del producto promocionado - pérdida total.
func AnalizarCanibalizacion(hermanos []ProductoHermano, upliftAbs decimal.Decimal, u Umbrales) *CanibalizacionAnalisis {
	res := &CanibalizacionAnalisis{
		Productos:           make([]ProductoCanibalizado, 0, len(hermanos)),
		CanibalizacionTotal: decimal.Zero,
	}
	for _, h := range hermanos {
		afectado := h.VariacionPct.LessThan(u.CanibalizacionBajo)
		res.Productos = append(res.Productos, ProductoCanibalizado{
			ProductoHermano: h,
			Diferencia:      h.VentaPromo.Sub(h.VentaBaseline),
			Afectado:        afectado,
		})
		if !afectado {
			continue
		}
		res.ProductosAfectados++
		res.CanibalizacionTotal = res.CanibalizacionTotal.Add(maxCero(h.VentaBaseline.Sub(h.VentaPromo)))
	}
	res.ImpactoNeto = upliftAbs.Sub(res.CanibalizacionTotal)
	return res
}
