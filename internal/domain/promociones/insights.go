package promociones

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GenerarInsights evalúa la tabla de reglas en orden fijo:
// uplift → ROI → elasticidad → canibalización → retención.
// Una regla sin condición disparada no emite nada (un uplift de 5% no genera insight).
func GenerarInsights(k PromocionKpis, c *CanibalizacionAnalisis, r *RetencionAnalisis, u Umbrales) []PromocionInsight {
	insights := make([]PromocionInsight, 0, 5)
	add := func(in *PromocionInsight) {
		if in != nil {
			insights = append(insights, *in)
		}
	}

	add(insightUplift(k, u))
	add(insightROI(k, u))
	add(insightElasticidad(k, u))
	if c != nil {
		add(insightCanibalizacion(k, c, u))
	}
	if r != nil {
		add(insightRetencion(r))
	}
	return insights
}

func insightUplift(k PromocionKpis, u Umbrales) *PromocionInsight {
	pct := k.VentaDiferenciaPct
	valor := decimal.NewNullDecimal(pct)
	switch {
	case pct.GreaterThanOrEqual(u.UpliftExcelente):
		return &PromocionInsight{
			Tipo:        InsightPositivo,
			Titulo:      "Uplift excelente",
			Descripcion: fmt.Sprintf("Las ventas crecieron %s%% frente al baseline.", pct.StringFixed(1)),
			Metrica:     "venta_diferencia_pct",
			Valor:       valor,
		}
	case pct.GreaterThanOrEqual(u.UpliftBueno):
		return &PromocionInsight{
			Tipo:        InsightPositivo,
			Titulo:      "Buen uplift",
			Descripcion: fmt.Sprintf("Las ventas crecieron %s%% frente al baseline.", pct.StringFixed(1)),
			Metrica:     "venta_diferencia_pct",
			Valor:       valor,
		}
	case pct.LessThan(u.UpliftNegativo):
		return &PromocionInsight{
			Tipo:        InsightNegativo,
			Titulo:      "Ventas a la baja",
			Descripcion: fmt.Sprintf("Las ventas cayeron %s%% durante la promoción.", pct.Abs().StringFixed(1)),
			Metrica:     "venta_diferencia_pct",
			Valor:       valor,
		}
	}
	return nil
}

func insightROI(k PromocionKpis, u Umbrales) *PromocionInsight {
	if !k.ROI.Valid {
		return nil
	}
	roi := k.ROI.Decimal
	switch {
	case roi.GreaterThanOrEqual(u.ROIExcelente):
		return &PromocionInsight{
			Tipo:        InsightPositivo,
			Titulo:      "ROI excelente",
			Descripcion: fmt.Sprintf("Cada peso invertido en descuento retornó %s%% en venta incremental neta.", roi.StringFixed(1)),
			Metrica:     "roi",
			Valor:       k.ROI,
		}
	case roi.GreaterThanOrEqual(u.ROIBueno):
		return &PromocionInsight{
			Tipo:        InsightPositivo,
			Titulo:      "ROI positivo",
			Descripcion: fmt.Sprintf("El descuento se pagó con un ROI de %s%%.", roi.StringFixed(1)),
			Metrica:     "roi",
			Valor:       k.ROI,
		}
	case roi.LessThan(u.ROINegativo):
		return &PromocionInsight{
			Tipo:        InsightNegativo,
			Titulo:      "ROI negativo",
			Descripcion: fmt.Sprintf("La venta incremental no cubrió el costo del descuento (ROI %s%%).", roi.StringFixed(1)),
			Metrica:     "roi",
			Valor:       k.ROI,
		}
	}
	return nil
}

func insightElasticidad(k PromocionKpis, u Umbrales) *PromocionInsight {
	if !k.Elasticidad.Valid {
		return nil
	}
	abs := k.Elasticidad.Decimal.Abs()
	switch {
	case abs.GreaterThanOrEqual(u.ElasticidadMuyElastica):
		return &PromocionInsight{
			Tipo:        InsightPositivo,
			Titulo:      "Demanda muy elástica",
			Descripcion: fmt.Sprintf("Por cada 1%% de rebaja las unidades se movieron %s%%.", abs.StringFixed(2)),
			Metrica:     "elasticidad",
			Valor:       k.Elasticidad,
		}
	case abs.GreaterThanOrEqual(u.ElasticidadElastica):
		return &PromocionInsight{
			Tipo:        InsightNeutral,
			Titulo:      "Demanda elástica",
			Descripcion: fmt.Sprintf("Las unidades respondieron al precio con elasticidad %s.", k.Elasticidad.Decimal.StringFixed(2)),
			Metrica:     "elasticidad",
			Valor:       k.Elasticidad,
		}
	}
	return nil
}

func insightCanibalizacion(k PromocionKpis, c *CanibalizacionAnalisis, u Umbrales) *PromocionInsight {
	if c.ProductosAfectados == 0 {
		return &PromocionInsight{
			Tipo:        InsightPositivo,
			Titulo:      "Sin canibalización relevante",
			Descripcion: "Ningún producto de la categoría cayó por debajo del umbral durante la promoción.",
			Metrica:     "productos_afectados",
			Valor:       decimal.NewNullDecimal(decimal.Zero),
		}
	}

	// Pérdida como % del uplift; sin uplift positivo cualquier pérdida es alta.
	share := cien
	if k.VentaDiferencia.IsPositive() {
		share = c.CanibalizacionTotal.Div(k.VentaDiferencia).Mul(cien)
	} else if c.CanibalizacionTotal.IsZero() {
		share = decimal.Zero
	}

	valor := decimal.NewNullDecimal(c.CanibalizacionTotal)
	switch {
	case share.GreaterThanOrEqual(u.CanibalizacionAlta):
		desc := fmt.Sprintf("%d productos de la categoría perdieron %s, equivalente al %s%% del uplift.",
			c.ProductosAfectados, c.CanibalizacionTotal.StringFixed(0), share.StringFixed(1))
		return &PromocionInsight{
			Tipo:        InsightNegativo,
			Titulo:      "Canibalización alta",
			Descripcion: desc,
			Metrica:     "canibalizacion_total",
			Valor:       valor,
		}
	case share.GreaterThanOrEqual(u.CanibalizacionModerada):
		desc := fmt.Sprintf("%d productos de la categoría cedieron el %s%% del uplift.",
			c.ProductosAfectados, share.StringFixed(1))
		return &PromocionInsight{
			Tipo:        InsightNeutral,
			Titulo:      "Canibalización moderada",
			Descripcion: desc,
			Metrica:     "canibalizacion_total",
			Valor:       valor,
		}
	}
	return nil
}

func insightRetencion(r *RetencionAnalisis) *PromocionInsight {
	valor := decimal.NewNullDecimal(r.IndiceRetencion)
	pct := r.IndiceRetencion.Mul(cien).StringFixed(0)
	switch r.Calificacion {
	case RetencionExcelente:
		return &PromocionInsight{
			Tipo:        InsightPositivo,
			Titulo:      "Retención excelente",
			Descripcion: fmt.Sprintf("Después de la promoción se mantuvo el %s%% del ritmo de venta diario.", pct),
			Metrica:     "indice_retencion",
			Valor:       valor,
		}
	case RetencionBuena:
		return &PromocionInsight{
			Tipo:        InsightPositivo,
			Titulo:      "Buena retención",
			Descripcion: fmt.Sprintf("Se retuvo el %s%% del ritmo de venta de la promoción.", pct),
			Metrica:     "indice_retencion",
			Valor:       valor,
		}
	case RetencionRegular:
		return &PromocionInsight{
			Tipo:        InsightNeutral,
			Titulo:      "Retención regular",
			Descripcion: fmt.Sprintf("Solo se retuvo el %s%% del ritmo de venta de la promoción.", pct),
			Metrica:     "indice_retencion",
			Valor:       valor,
		}
	default:
		return &PromocionInsight{
			Tipo:        InsightNegativo,
			Titulo:      "Baja retención",
			Descripcion: fmt.Sprintf("La venta volvió a caer: apenas %s%% del ritmo de la promoción.", pct),
			Metrica:     "indice_retencion",
			Valor:       valor,
		}
	}
}

// Evaluar veredicto final. El orden importa: primero exitosa, luego negativa,
// y neutral por defecto.
func Evaluar(k PromocionKpis, insights []PromocionInsight, u Umbrales) Veredicto {
	var positivos, negativos int
	for _, in := range insights {
		switch in.Tipo {
		case InsightPositivo:
			positivos++
		case InsightNegativo:
			negativos++
		}
	}

	if k.VentaDiferenciaPct.IsPositive() &&
		k.ROI.Valid && k.ROI.Decimal.IsPositive() &&
		positivos > negativos {
		return VeredictoExitosa
	}
	if negativos > positivos || k.VentaDiferenciaPct.LessThan(u.VeredictoNegativoUplift) {
		return VeredictoNegativa
	}
	return VeredictoNeutral
}
