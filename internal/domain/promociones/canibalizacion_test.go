package promociones_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sellout-api/internal/domain/promociones"
)

func hermanosFixture() []promociones.ProductoHermano {
	return []promociones.ProductoHermano{
		{ProductoID: "H1", Nombre: "Café marca B", VentaPromo: d("8000"), VentaBaseline: d("10000"), VariacionPct: d("-20")},
		{ProductoID: "H2", Nombre: "Café marca C", VentaPromo: d("4900"), VentaBaseline: d("5000"), VariacionPct: d("-2")},
		{ProductoID: "H3", Nombre: "Café marca D", VentaPromo: d("9000"), VentaBaseline: d("6000"), VariacionPct: d("50")},
		{ProductoID: "H4", Nombre: "Café marca E", VentaPromo: d("1000"), VentaBaseline: d("2000"), VariacionPct: d("-50")},
	}
}

func TestAnalizarCanibalizacion_SoloSumaCaidasDeAfectados(t *testing.T) {
	got := promociones.AnalizarCanibalizacion(hermanosFixture(), d("50000"), promociones.UmbralesPorDefecto())

	require.Len(t, got.Productos, 4)
	assert.Equal(t, 2, got.ProductosAfectados)
	// H1 (2000) + H4 (1000); H2 no cruza -5% y el alza de H3 no compensa.
	assertDecimal(t, "3000", got.CanibalizacionTotal)
	assertDecimal(t, "47000", got.ImpactoNeto)

	assert.True(t, got.Productos[0].Afectado)
	assert.False(t, got.Productos[1].Afectado)
	assert.False(t, got.Productos[2].Afectado)
	assertDecimal(t, "3000", got.Productos[2].Diferencia)
}

func TestAnalizarCanibalizacion_UmbralExactoNoAfecta(t *testing.T) {
	hermanos := []promociones.ProductoHermano{
		{ProductoID: "H1", VentaPromo: d("95"), VentaBaseline: d("100"), VariacionPct: d("-5")},
	}
	got := promociones.AnalizarCanibalizacion(hermanos, d("10"), promociones.UmbralesPorDefecto())
	assert.Equal(t, 0, got.ProductosAfectados)
	assert.True(t, got.CanibalizacionTotal.IsZero())
}

// Un hermano marcado afectado pero con venta promo mayor no resta (pérdida >= 0).
func TestAnalizarCanibalizacion_PerdidaNuncaNegativa(t *testing.T) {
	hermanos := []promociones.ProductoHermano{
		{ProductoID: "H1", VentaPromo: d("120"), VentaBaseline: d("100"), VariacionPct: d("-10")},
	}
	got := promociones.AnalizarCanibalizacion(hermanos, d("10"), promociones.UmbralesPorDefecto())
	assert.Equal(t, 1, got.ProductosAfectados)
	assert.True(t, got.CanibalizacionTotal.IsZero())
	assertDecimal(t, "10", got.ImpactoNeto)
}

func TestAnalizarCanibalizacion_ListaVacia(t *testing.T) {
	got := promociones.AnalizarCanibalizacion([]promociones.ProductoHermano{}, d("100"), promociones.UmbralesPorDefecto())
	require.NotNil(t, got)
	assert.Empty(t, got.Productos)
	assert.Equal(t, 0, got.ProductosAfectados)
	assertDecimal(t, "100", got.ImpactoNeto)
}
