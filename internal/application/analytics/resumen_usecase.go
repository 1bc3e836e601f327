// Package analytics contiene los casos de uso de lectura del dashboard de sell-out.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sellout-api/internal/application/dto"
	"github.com/jhoicas/sellout-api/internal/domain"
	"github.com/jhoicas/sellout-api/internal/domain/promociones"
	"github.com/jhoicas/sellout-api/internal/domain/repository"
	"github.com/jhoicas/sellout-api/pkg/validator"
)

const (
	defaultTop      = 20
	paretoThreshold = 80 // el primer 80% de la venta acumulada
)

var (
	hundred  = decimal.NewFromInt(100)
	pareto80 = decimal.NewFromInt(paretoThreshold)
)

// ResumenUseCase genera el resumen de sell-out de un período: KPIs de cabecera,
// ranking de productos con curva de Pareto y serie diaria.
type ResumenUseCase struct {
	ventas repository.VentasRepository
	ahora  func() time.Time
}

// NewResumenUseCase construye el caso de uso.
func NewResumenUseCase(ventas repository.VentasRepository) *ResumenUseCase {
	return &ResumenUseCase{ventas: ventas, ahora: time.Now}
}

// ConReloj reemplaza el reloj usado para los valores por defecto del período.
func (uc *ResumenUseCase) ConReloj(ahora func() time.Time) *ResumenUseCase {
	uc.ahora = ahora
	return uc
}

// GetResumen construye el ResumenVentasDTO para el tenant indicado.
func (uc *ResumenUseCase) GetResumen(
	ctx context.Context,
	tenantID string,
	req dto.ResumenVentasRequest,
) (*dto.ResumenVentasDTO, error) {
	if tenantID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	desde, hasta, err := uc.periodo(req.Desde, req.Hasta)
	if err != nil {
		return nil, err
	}
	top := req.Top
	if top <= 0 {
		top = defaultTop
	}

	periodo, err := uc.ventas.GetVentasPeriodo(ctx, repository.FiltroVentas{
		TenantID:  tenantID,
		Desde:     desde,
		Hasta:     hasta,
		TiendaIDs: req.TiendaIDs,
		Ciudades:  req.Ciudades,
		Categoria: req.Categoria,
	})
	if err != nil {
		return nil, fmt.Errorf("resumen: ventas del período: %w", err)
	}

	t := periodo.Totales
	totales := dto.TotalesVentasDTO{
		Venta:           t.VentaTotal.Round(2),
		Unidades:        t.UnidadesTotal,
		Transacciones:   t.Transacciones,
		PrecioPromedio:  redondear(t.PrecioPromedio),
		TiendasConVenta: t.TiendasConVenta,
		DiasConVenta:    t.DiasConVenta,
	}
	if t.Transacciones > 0 {
		totales.TicketPromedio = decimal.NewNullDecimal(t.VentaTotal.Div(decimal.NewFromInt(int64(t.Transacciones))).Round(2))
	}

	diario := periodo.Diario
	if diario == nil {
		diario = []promociones.VentaDiaria{}
	}

	return &dto.ResumenVentasDTO{
		Periodo: dto.PeriodoDTO{
			Desde: desde.Format(dto.FormatoFecha),
			Hasta: hasta.Format(dto.FormatoFecha),
		},
		Etiqueta:  etiquetaPeriodo(desde, hasta),
		Totales:   totales,
		Productos: rankingPareto(periodo.Productos, t.VentaTotal, top),
		Diario:    diario,
	}, nil
}

// rankingPareto asigna rank, participación y acumulado sobre la venta total del
// período (no sobre el top), y marca EsPareto mientras el acumulado no supere el
// 80%. El producto que cruza el umbral queda incluido.
func rankingPareto(productos []promociones.VentaProducto, total decimal.Decimal, top int) []dto.ProductoRankingDTO {
	n := len(productos)
	if n > top {
		n = top
	}
	ranking := make([]dto.ProductoRankingDTO, 0, n)

	var acumulado decimal.Decimal
	previoDentro := true
	for i, p := range productos[:n] {
		participacion := decimal.Zero
		if total.IsPositive() {
			participacion = p.Venta.Div(total).Mul(hundred)
		}
		esPareto := previoDentro && total.IsPositive()
		acumulado = acumulado.Add(participacion)
		previoDentro = acumulado.LessThan(pareto80)

		ranking = append(ranking, dto.ProductoRankingDTO{
			Rank:             i + 1,
			ProductoID:       p.ProductoID,
			Nombre:           p.Nombre,
			Categoria:        p.Categoria,
			Venta:            p.Venta.Round(2),
			Unidades:         p.Unidades,
			ParticipacionPct: participacion.Round(2),
			AcumuladoPct:     acumulado.Round(2),
			EsPareto:         esPareto,
		})
	}
	return ranking
}

// periodo aplica los valores por defecto: del primer día del mes actual a hoy.
func (uc *ResumenUseCase) periodo(desdeStr, hastaStr string) (desde, hasta time.Time, err error) {
	now := uc.ahora()
	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	hasta = hoy
	if hastaStr != "" {
		if hasta, err = time.Parse(dto.FormatoFecha, hastaStr); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: hasta inválido", domain.ErrInvalidInput)
		}
	}
	desde = time.Date(hasta.Year(), hasta.Month(), 1, 0, 0, 0, 0, time.UTC)
	if desdeStr != "" {
		if desde, err = time.Parse(dto.FormatoFecha, desdeStr); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: desde inválido", domain.ErrInvalidInput)
		}
	}
	if desde.After(hasta) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: desde no puede ser posterior a hasta", domain.ErrInvalidInput)
	}
	return desde, hasta, nil
}

func redondear(n decimal.NullDecimal) decimal.NullDecimal {
	if !n.Valid {
		return n
	}
	return decimal.NewNullDecimal(n.Decimal.Round(2))
}

var meses = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// etiquetaPeriodo "Abril 2025" si el período cae en un solo mes, si no "01/03/2025 - 14/04/2025".
func etiquetaPeriodo(desde, hasta time.Time) string {
	if desde.Year() == hasta.Year() && desde.Month() == hasta.Month() {
		return fmt.Sprintf("%s %d", meses[desde.Month()-1], desde.Year())
	}
	return desde.Format("02/01/2006") + " - " + hasta.Format("02/01/2006")
}
