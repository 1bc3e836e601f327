package promociones

import "github.com/shopspring/decimal"

// AnalizarRetencion compara la venta diaria después de la promoción contra la venta
// diaria durante la promoción y en el baseline. Devuelve nil si no hay ventana post-promo.
//
// La venta diaria de cada ventana se calcula sobre los días con venta.
func AnalizarRetencion(promo, baseline VentasPeriodo, post *VentasPeriodo, diasPostPromo int, u Umbrales) *RetencionAnalisis {
	if post == nil {
		return nil
	}

	diariaPromo := ventaDiaria(promo.Totales)
	diariaPost := ventaDiaria(post.Totales)
	diariaBase := ventaDiaria(baseline.Totales)

	indice := dividir(diariaPost, diariaPromo)
	return &RetencionAnalisis{
		VentaDiariaPromo:     diariaPromo,
		VentaDiariaPostPromo: diariaPost,
		VentaDiariaBaseline:  diariaBase,
		IndiceRetencion:      indice,
		IndiceVsBaseline:     dividir(diariaPost, diariaBase),
		Calificacion:         ClasificarRetencion(indice, u),
		DiasAnalizados:       diasPostPromo,
	}
}

// ClasificarRetencion bucket cualitativo del índice de retención.
func ClasificarRetencion(indice decimal.Decimal, u Umbrales) CalificacionRetencion {
	switch {
	case indice.GreaterThanOrEqual(u.RetencionExcelente):
		return RetencionExcelente
	case indice.GreaterThanOrEqual(u.RetencionBuena):
		return RetencionBuena
	case indice.GreaterThanOrEqual(u.RetencionRegular):
		return RetencionRegular
	default:
		return RetencionBaja
	}
}

func ventaDiaria(t VentasTotales) decimal.Decimal {
	if t.DiasConVenta <= 0 {
		return decimal.Zero
	}
	return t.VentaTotal.Div(decimal.NewFromInt(int64(t.DiasConVenta)))
}
