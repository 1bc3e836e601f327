package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sellout-api/internal/domain/promociones"
)

// ResumenVentasRequest parámetros para GET /api/ventas/resumen.
type ResumenVentasRequest struct {
	Desde     string   `query:"desde" validate:"omitempty,datetime=2006-01-02"` // por defecto primer día del mes actual
	Hasta     string   `query:"hasta" validate:"omitempty,datetime=2006-01-02"` // por defecto hoy
	Top       int      `query:"top" validate:"gte=0,lte=200"`                   // máx productos en el ranking (default 20)
	Categoria string   `query:"categoria"`
	Ciudades  []string `query:"ciudades"`
	TiendaIDs []string `query:"tienda_ids"`
}

// PeriodoDTO rango de fechas del reporte.
type PeriodoDTO struct {
	Desde string `json:"desde"`
	Hasta string `json:"hasta"`
}

// TotalesVentasDTO KPIs de cabecera del dashboard.
type TotalesVentasDTO struct {
	Venta           decimal.Decimal     `json:"venta"`
	Unidades        decimal.Decimal     `json:"unidades"`
	Transacciones   int                 `json:"transacciones"`
	TicketPromedio  decimal.NullDecimal `json:"ticket_promedio"`
	PrecioPromedio  decimal.NullDecimal `json:"precio_promedio"`
	TiendasConVenta int                 `json:"tiendas_con_venta"`
	DiasConVenta    int                 `json:"dias_con_venta"`
}

// ProductoRankingDTO fila del ranking con curva de Pareto.
type ProductoRankingDTO struct {
	Rank             int             `json:"rank"`
	ProductoID       string          `json:"producto_id"`
	Nombre           string          `json:"nombre"`
	Categoria        string          `json:"categoria"`
	Venta            decimal.Decimal `json:"venta"`
	Unidades         decimal.Decimal `json:"unidades"`
	ParticipacionPct decimal.Decimal `json:"participacion_pct"`
	AcumuladoPct     decimal.Decimal `json:"acumulado_pct"`
	EsPareto         bool            `json:"es_pareto"` // dentro del primer 80% de la venta acumulada
}

// ResumenVentasDTO respuesta de GET /api/ventas/resumen.
type ResumenVentasDTO struct {
	Periodo   PeriodoDTO                `json:"periodo"`
	Etiqueta  string                    `json:"etiqueta"` // ej. "Abril 2025"
	Totales   TotalesVentasDTO          `json:"totales"`
	Productos []ProductoRankingDTO      `json:"productos"`
	Diario    []promociones.VentaDiaria `json:"diario"`
}
