package promociones

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalcularKpis combina los agregados de promo y baseline en las métricas principales.
// Las divisiones están protegidas: ningún KPI queda en NaN/Inf; lo que no se puede
// calcular queda nulo (precio, descuento real, ROI, elasticidad).
func CalcularKpis(cfg PromocionConfig, promo, baseline VentasPeriodo) (PromocionKpis, error) {
	pt, bt := promo.Totales, baseline.Totales

	costo, err := CalcularCostoDescuento(cfg, pt.UnidadesTotal, bt.PrecioPromedio)
	if err != nil {
		return PromocionKpis{}, err
	}
	precioEfectivo, err := CalcularPrecioEfectivo(cfg, bt.PrecioPromedio)
	if err != nil {
		return PromocionKpis{}, err
	}

	ventaDif := pt.VentaTotal.Sub(bt.VentaTotal)
	unidadesDif := pt.UnidadesTotal.Sub(bt.UnidadesTotal)
	unidadesPct := variacionPct(pt.UnidadesTotal, bt.UnidadesTotal)
	precioPct := variacionPrecioPct(pt.PrecioPromedio, bt.PrecioPromedio)

	var descuentoReal decimal.NullDecimal
	if precioPct.Valid {
		descuentoReal = decimal.NewNullDecimal(precioPct.Decimal.Neg())
	}

	var roi decimal.NullDecimal
	if costo.IsPositive() {
		roi = decimal.NewNullDecimal(ventaDif.Sub(costo).Div(costo).Mul(cien))
	}

	return PromocionKpis{
		VentaPromo:         pt.VentaTotal,
		VentaBaseline:      bt.VentaTotal,
		VentaDiferencia:    ventaDif,
		VentaDiferenciaPct: variacionPct(pt.VentaTotal, bt.VentaTotal),

		UnidadesPromo:         pt.UnidadesTotal,
		UnidadesBaseline:      bt.UnidadesTotal,
		UnidadesDiferencia:    unidadesDif,
		UnidadesDiferenciaPct: unidadesPct,

		PrecioPromedioPromo:    pt.PrecioPromedio,
		PrecioPromedioBaseline: bt.PrecioPromedio,
		PrecioDiferenciaPct:    precioPct,
		DescuentoRealPct:       descuentoReal,
		PrecioEfectivo:         precioEfectivo,

		CostoDescuento:   costo,
		VentaIncremental: ventaDif,
		BeneficioNeto:    ventaDif.Sub(costo),
		ROI:              roi,
		Elasticidad:      elasticidad(unidadesPct, precioPct),

		CoberturaTiendas: cobertura(pt.TiendasConVenta, bt.TiendasConVenta),
		TiendasPromo:     pt.TiendasConVenta,
		TiendasBaseline:  bt.TiendasConVenta,

		DiasPromo:     diasCalendario(cfg.FechaInicioPromo, cfg.FechaFinPromo),
		DiasBaseline:  diasCalendario(cfg.FechaInicioBaseline, cfg.FechaFinBaseline),
		DiasPostPromo: cfg.DiasPostPromo,
	}, nil
}

// cobertura tiendas activas en promo / máximo de tiendas activas en cualquiera de las ventanas.
func cobertura(tiendasPromo, tiendasBaseline int) decimal.Decimal {
	maxTiendas := tiendasPromo
	if tiendasBaseline > maxTiendas {
		maxTiendas = tiendasBaseline
	}
	if maxTiendas <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(tiendasPromo)).Div(decimal.NewFromInt(int64(maxTiendas)))
}

// diasCalendario días del rango [inicio, fin], ambos inclusive.
func diasCalendario(inicio, fin time.Time) int {
	a := time.Date(inicio.Year(), inicio.Month(), inicio.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(fin.Year(), fin.Month(), fin.Day(), 0, 0, 0, 0, time.UTC)
	if b.Before(a) {
		return 0
	}
	return int(b.Sub(a).Hours()/24) + 1
}
