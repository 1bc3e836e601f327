package promociones_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sellout-api/internal/domain"
	"github.com/jhoicas/sellout-api/internal/domain/promociones"
)

// ──────────────────────────────────────────────────────────────────────────────
// AnalizarPromocion: pipeline completo
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalizarPromocion_EscenarioReferenciaEsExitosa(t *testing.T) {
	res, err := promociones.AnalizarPromocion(descuento20(), ventasPromo(), ventasBaseline(), nil, nil)
	require.NoError(t, err)

	assertDecimal(t, "50", res.Kpis.VentaDiferenciaPct)
	assertDecimal(t, "33.33", res.Kpis.ROI.Decimal.Round(2))
	require.Len(t, res.Productos, 1)

	assert.Equal(t, []string{"Uplift excelente", "Demanda muy elástica"}, titulos(res.Insights))
	assert.Equal(t, promociones.VeredictoExitosa, res.Veredicto)
}

func TestAnalizarPromocion_SinHermanosNoHayCanibalizacion(t *testing.T) {
	res, err := promociones.AnalizarPromocion(descuento20(), ventasPromo(), ventasBaseline(), nil, nil)
	require.NoError(t, err)

	assert.Nil(t, res.Canibalizacion)
	assert.Nil(t, res.Retencion)
	for _, in := range res.Insights {
		assert.NotEqual(t, "canibalizacion_total", in.Metrica)
		assert.NotEqual(t, "productos_afectados", in.Metrica)
	}

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.JSONEq(t, "null", string(m["canibalizacion"]))
}

func TestAnalizarPromocion_ConHermanosYPostPromo(t *testing.T) {
	post := promociones.VentasPeriodo{
		Totales: promociones.VentasTotales{VentaTotal: d("30000"), DiasConVenta: 14},
	}
	res, err := promociones.AnalizarPromocion(descuento20(), ventasPromo(), ventasBaseline(), &post, hermanosFixture())
	require.NoError(t, err)

	require.NotNil(t, res.Canibalizacion)
	assertDecimal(t, "3000", res.Canibalizacion.CanibalizacionTotal)
	assertDecimal(t, "47000", res.Canibalizacion.ImpactoNeto)

	require.NotNil(t, res.Retencion)
	assertDecimal(t, "0.2", res.Retencion.IndiceRetencion.Round(4))
	assert.Equal(t, promociones.RetencionBaja, res.Retencion.Calificacion)

	assert.Equal(t, []string{"Uplift excelente", "Demanda muy elástica", "Baja retención"}, titulos(res.Insights))
	assert.Equal(t, promociones.VeredictoExitosa, res.Veredicto)
}

// Misma entrada, misma salida: sin reloj ni aleatoriedad.
func TestAnalizarPromocion_Idempotente(t *testing.T) {
	post := promociones.VentasPeriodo{Totales: promociones.VentasTotales{VentaTotal: d("77777"), DiasConVenta: 9}}

	r1, err := promociones.AnalizarPromocion(descuento20(), ventasPromo(), ventasBaseline(), &post, hermanosFixture())
	require.NoError(t, err)
	r2, err := promociones.AnalizarPromocion(descuento20(), ventasPromo(), ventasBaseline(), &post, hermanosFixture())
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
	j1, _ := json.Marshal(r1)
	j2, _ := json.Marshal(r2)
	assert.Equal(t, string(j1), string(j2))
}

func TestAnalizarPromocion_ConfigInvalidaFallaSinResultado(t *testing.T) {
	mismatch := descuento20()
	mismatch.Tipo = promociones.TipoBundle

	porcentajeFuera := configBase(promociones.DescuentoPorcentaje{Porcentaje: d("120")})

	nx1Invertido := configBase(promociones.MulticompraNx1{Compra: 2, Lleva: 3})

	fechas := descuento20()
	fechas.FechaInicioPromo, fechas.FechaFinPromo = fechas.FechaFinPromo, fechas.FechaInicioPromo

	baselineDespues := descuento20()
	baselineDespues.FechaInicioBaseline = fecha("2025-05-01")
	baselineDespues.FechaFinBaseline = fecha("2025-05-10")

	sinPost := descuento20()
	sinPost.DiasPostPromo = 0

	sinProductos := descuento20()
	sinProductos.ProductoIDs = nil

	for nombre, cfg := range map[string]promociones.PromocionConfig{
		"tipo_no_coincide":  mismatch,
		"porcentaje_fuera":  porcentajeFuera,
		"nx1_invertido":     nx1Invertido,
		"fechas_invertidas": fechas,
		"baseline_despues":  baselineDespues,
		"sin_post_promo":    sinPost,
		"sin_productos":     sinProductos,
	} {
		t.Run(nombre, func(t *testing.T) {
			res, err := promociones.AnalizarPromocion(cfg, ventasPromo(), ventasBaseline(), nil, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConfigPromocionInvalida)
			assert.Nil(t, res)
		})
	}
}

func TestAnalizador_UsaUmbralesInyectados(t *testing.T) {
	u := promociones.UmbralesPorDefecto()
	u.ElasticidadMuyElastica = d("10")
	u.ElasticidadElastica = d("9")

	res, err := promociones.NuevoAnalizador(u).Analizar(descuento20(), ventasPromo(), ventasBaseline(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Uplift excelente"}, titulos(res.Insights))
	assert.Equal(t, promociones.VeredictoExitosa, res.Veredicto)
}
