package promociones_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sellout-api/internal/domain/promociones"
)

func kpisCon(upliftPct string, roi decimal.NullDecimal, elasticidad decimal.NullDecimal) promociones.PromocionKpis {
	return promociones.PromocionKpis{
		VentaDiferencia:    d(upliftPct).Mul(d("1000")),
		VentaDiferenciaPct: d(upliftPct),
		ROI:                roi,
		Elasticidad:        elasticidad,
	}
}

func titulos(in []promociones.PromocionInsight) []string {
	out := make([]string, 0, len(in))
	for _, i := range in {
		out = append(out, i.Titulo)
	}
	return out
}

func TestGenerarInsights_ReglasDeUplift(t *testing.T) {
	u := promociones.UmbralesPorDefecto()
	casos := []struct {
		uplift string
		titulo string
		tipo   promociones.TipoInsight
	}{
		{"30", "Uplift excelente", promociones.InsightPositivo},
		{"12", "Buen uplift", promociones.InsightPositivo},
		{"-1", "Ventas a la baja", promociones.InsightNegativo},
	}
	for _, c := range casos {
		got := promociones.GenerarInsights(kpisCon(c.uplift, decimal.NullDecimal{}, decimal.NullDecimal{}), nil, nil, u)
		require.Len(t, got, 1, "uplift %s", c.uplift)
		assert.Equal(t, c.titulo, got[0].Titulo)
		assert.Equal(t, c.tipo, got[0].Tipo)
		assert.Equal(t, "venta_diferencia_pct", got[0].Metrica)
	}

	// Uplift plano (5%) no dispara nada.
	got := promociones.GenerarInsights(kpisCon("5", decimal.NullDecimal{}, decimal.NullDecimal{}), nil, nil, u)
	assert.Empty(t, got)
}

func TestGenerarInsights_OrdenFijo(t *testing.T) {
	k := kpisCon("40", nd("150"), nd("-2.5"))
	canib := &promociones.CanibalizacionAnalisis{}
	ret := &promociones.RetencionAnalisis{IndiceRetencion: d("0.8"), Calificacion: promociones.RetencionExcelente}

	got := promociones.GenerarInsights(k, canib, ret, promociones.UmbralesPorDefecto())
	assert.Equal(t, []string{
		"Uplift excelente",
		"ROI excelente",
		"Demanda muy elástica",
		"Sin canibalización relevante",
		"Retención excelente",
	}, titulos(got))
}

func TestGenerarInsights_ROIYElasticidad(t *testing.T) {
	u := promociones.UmbralesPorDefecto()

	got := promociones.GenerarInsights(kpisCon("5", nd("60"), nd("1.2")), nil, nil, u)
	assert.Equal(t, []string{"ROI positivo", "Demanda elástica"}, titulos(got))
	assert.Equal(t, promociones.InsightNeutral, got[1].Tipo)

	got = promociones.GenerarInsights(kpisCon("5", nd("-20"), nd("0.4")), nil, nil, u)
	assert.Equal(t, []string{"ROI negativo"}, titulos(got))

	// ROI entre 0 y 50: sin insight.
	got = promociones.GenerarInsights(kpisCon("5", nd("20"), decimal.NullDecimal{}), nil, nil, u)
	assert.Empty(t, got)
}

func TestGenerarInsights_Canibalizacion(t *testing.T) {
	u := promociones.UmbralesPorDefecto()
	k := kpisCon("5", decimal.NullDecimal{}, decimal.NullDecimal{}) // venta diferencia = 5000

	alta := &promociones.CanibalizacionAnalisis{ProductosAfectados: 2, CanibalizacionTotal: d("3000")}
	got := promociones.GenerarInsights(k, alta, nil, u)
	require.Len(t, got, 1)
	assert.Equal(t, "Canibalización alta", got[0].Titulo)
	assert.Equal(t, promociones.InsightNegativo, got[0].Tipo)

	moderada := &promociones.CanibalizacionAnalisis{ProductosAfectados: 1, CanibalizacionTotal: d("1000")}
	got = promociones.GenerarInsights(k, moderada, nil, u)
	require.Len(t, got, 1)
	assert.Equal(t, "Canibalización moderada", got[0].Titulo)

	leve := &promociones.CanibalizacionAnalisis{ProductosAfectados: 1, CanibalizacionTotal: d("100")}
	got = promociones.GenerarInsights(k, leve, nil, u)
	assert.Empty(t, got)
}

func TestGenerarInsights_RetencionBaja(t *testing.T) {
	ret := &promociones.RetencionAnalisis{IndiceRetencion: d("0.1"), Calificacion: promociones.RetencionBaja}
	got := promociones.GenerarInsights(kpisCon("5", decimal.NullDecimal{}, decimal.NullDecimal{}), nil, ret, promociones.UmbralesPorDefecto())
	require.Len(t, got, 1)
	assert.Equal(t, promociones.InsightNegativo, got[0].Tipo)
}

func TestGenerarInsights_UmbralesSustituibles(t *testing.T) {
	u := promociones.UmbralesPorDefecto()
	u.UpliftExcelente = d("60")
	got := promociones.GenerarInsights(kpisCon("40", decimal.NullDecimal{}, decimal.NullDecimal{}), nil, nil, u)
	require.Len(t, got, 1)
	assert.Equal(t, "Buen uplift", got[0].Titulo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Evaluar
// ──────────────────────────────────────────────────────────────────────────────

func insight(tipo promociones.TipoInsight) promociones.PromocionInsight {
	return promociones.PromocionInsight{Tipo: tipo}
}

func TestEvaluar_Exitosa(t *testing.T) {
	k := kpisCon("20", nd("30"), decimal.NullDecimal{})
	got := promociones.Evaluar(k, []promociones.PromocionInsight{insight(promociones.InsightPositivo)}, promociones.UmbralesPorDefecto())
	assert.Equal(t, promociones.VeredictoExitosa, got)
}

// Uplift positivo con ROI negativo nunca es exitosa.
func TestEvaluar_ROINegativoNoEsExitosa(t *testing.T) {
	k := kpisCon("20", nd("-5"), decimal.NullDecimal{})
	insights := []promociones.PromocionInsight{
		insight(promociones.InsightPositivo),
		insight(promociones.InsightPositivo),
	}
	got := promociones.Evaluar(k, insights, promociones.UmbralesPorDefecto())
	assert.NotEqual(t, promociones.VeredictoExitosa, got)
	assert.Equal(t, promociones.VeredictoNeutral, got)
}

func TestEvaluar_ROINuloNoEsExitosa(t *testing.T) {
	k := kpisCon("50", decimal.NullDecimal{}, decimal.NullDecimal{})
	got := promociones.Evaluar(k, []promociones.PromocionInsight{insight(promociones.InsightPositivo)}, promociones.UmbralesPorDefecto())
	assert.Equal(t, promociones.VeredictoNeutral, got)
}

func TestEvaluar_EmpateDeInsightsNoEsExitosa(t *testing.T) {
	k := kpisCon("20", nd("30"), decimal.NullDecimal{})
	insights := []promociones.PromocionInsight{insight(promociones.InsightPositivo), insight(promociones.InsightNegativo)}
	assert.Equal(t, promociones.VeredictoNeutral, promociones.Evaluar(k, insights, promociones.UmbralesPorDefecto()))
}

func TestEvaluar_Negativa(t *testing.T) {
	u := promociones.UmbralesPorDefecto()

	masNegativos := []promociones.PromocionInsight{insight(promociones.InsightNegativo)}
	assert.Equal(t, promociones.VeredictoNegativa, promociones.Evaluar(kpisCon("2", nd("10"), decimal.NullDecimal{}), masNegativos, u))

	// Caída mayor a 10% es negativa aunque no haya insights.
	assert.Equal(t, promociones.VeredictoNegativa, promociones.Evaluar(kpisCon("-10.5", decimal.NullDecimal{}, decimal.NullDecimal{}), nil, u))
	assert.Equal(t, promociones.VeredictoNeutral, promociones.Evaluar(kpisCon("-10", decimal.NullDecimal{}, decimal.NullDecimal{}), nil, u))
}
