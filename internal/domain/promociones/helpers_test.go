package promociones_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/sellout-api/internal/domain/promociones"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures compartidas
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func nd(s string) decimal.NullDecimal { return decimal.NewNullDecimal(d(s)) }

func fecha(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// configBase promoción válida de 20% con baseline de marzo y promo en abril.
func configBase(p promociones.Parametros) promociones.PromocionConfig {
	return promociones.PromocionConfig{
		Nombre:              "Semana del café",
		ProductoIDs:         []string{"SKU-CAFE-500"},
		Tipo:                p.Tipo(),
		Parametros:          p,
		FechaInicioBaseline: fecha("2025-03-01"),
		FechaFinBaseline:    fecha("2025-03-14"),
		FechaInicioPromo:    fecha("2025-04-01"),
		FechaFinPromo:       fecha("2025-04-14"),
		DiasPostPromo:       14,
	}
}

func descuento20() promociones.PromocionConfig {
	return configBase(promociones.DescuentoPorcentaje{Porcentaje: d("20")})
}

// ventas escenario de referencia: baseline 100k/1000u a $100, promo 150k/1875u a $80.
func ventasBaseline() promociones.VentasPeriodo {
	return promociones.VentasPeriodo{
		Totales: promociones.VentasTotales{
			VentaTotal:      d("100000"),
			UnidadesTotal:   d("1000"),
			Transacciones:   800,
			PrecioPromedio:  nd("100"),
			TiendasConVenta: 20,
			DiasConVenta:    14,
		},
		Productos: []promociones.VentaProducto{
			{ProductoID: "SKU-CAFE-500", Nombre: "Café 500g", Venta: d("100000"), Unidades: d("1000"), PrecioPromedio: nd("100")},
		},
	}
}

func ventasPromo() promociones.VentasPeriodo {
	return promociones.VentasPeriodo{
		Totales: promociones.VentasTotales{
			VentaTotal:      d("150000"),
			UnidadesTotal:   d("1875"),
			Transacciones:   1300,
			PrecioPromedio:  nd("80"),
			TiendasConVenta: 25,
			DiasConVenta:    14,
		},
		Productos: []promociones.VentaProducto{
			{ProductoID: "SKU-CAFE-500", Nombre: "Café 500g", Venta: d("150000"), Unidades: d("1875"), PrecioPromedio: nd("80")},
		},
	}
}

// assertDecimal compara por valor (no por representación interna).
func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "esperado %s, obtenido %s", want, got.String())
}
