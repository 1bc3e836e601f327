package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sellout-api/internal/domain/promociones"
	"github.com/jhoicas/sellout-api/internal/domain/repository"
)

var _ repository.VentasRepository = (*VentasRepo)(nil)

// VentasRepo consultas agregadas sobre el hecho de sell-out.
//
// Modelo esperado:
//
//	ventas(tenant_id, fecha DATE, tienda_id, producto_id, ticket_id, unidades NUMERIC, venta NUMERIC)
//	productos(tenant_id, id, nombre, categoria)
//	tiendas(tenant_id, id, ciudad)
type VentasRepo struct {
	db DBTX
}

// NewVentasRepository construye el adaptador.
func NewVentasRepository(db DBTX) *VentasRepo {
	return &VentasRepo{db: db}
}

const fromVentas = `
	FROM ventas v
	JOIN productos p ON p.tenant_id = v.tenant_id AND p.id = v.producto_id
	JOIN tiendas   t ON t.tenant_id = v.tenant_id AND t.id = v.tienda_id`

// $1 tenant, $2..$3 rango inclusivo, $4 productos, $5 tiendas, $6 ciudades, $7 categoría.
const whereVentas = `
	WHERE v.tenant_id = $1
	  AND v.fecha BETWEEN $2 AND $3
	  AND (cardinality($4::text[]) = 0 OR v.producto_id = ANY($4::text[]))
	  AND (cardinality($5::text[]) = 0 OR v.tienda_id   = ANY($5::text[]))
	  AND (cardinality($6::text[]) = 0 OR t.ciudad      = ANY($6::text[]))
	  AND ($7::text = '' OR p.categoria = $7::text)`

func argsVentas(f repository.FiltroVentas) []any {
	return []any{
		f.TenantID, f.Desde, f.Hasta,
		noNil(f.ProductoIDs), noNil(f.TiendaIDs), noNil(f.Ciudades),
		f.Categoria,
	}
}

// GetVentasPeriodo ejecuta tres agregaciones sobre el mismo filtro: totales,
// por producto y por día.
func (r *VentasRepo) GetVentasPeriodo(ctx context.Context, f repository.FiltroVentas) (*promociones.VentasPeriodo, error) {
	totales, err := r.totales(ctx, f)
	if err != nil {
		return nil, err
	}
	productos, err := r.porProducto(ctx, f)
	if err != nil {
		return nil, err
	}
	diario, err := r.porDia(ctx, f)
	if err != nil {
		return nil, err
	}
	return &promociones.VentasPeriodo{Totales: totales, Productos: productos, Diario: diario}, nil
}

func (r *VentasRepo) totales(ctx context.Context, f repository.FiltroVentas) (promociones.VentasTotales, error) {
	query := `
	SELECT
	    COALESCE(SUM(v.venta), 0)     AS venta_total,
	    COALESCE(SUM(v.unidades), 0)  AS unidades_total,
	    COUNT(DISTINCT v.ticket_id)   AS transacciones,
	    COUNT(DISTINCT v.tienda_id)   AS tiendas,
	    COUNT(DISTINCT v.fecha)       AS dias` + fromVentas + whereVentas

	var t promociones.VentasTotales
	err := r.db.QueryRow(ctx, query, argsVentas(f)...).Scan(
		&t.VentaTotal,
		&t.UnidadesTotal,
		&t.Transacciones,
		&t.TiendasConVenta,
		&t.DiasConVenta,
	)
	if err != nil {
		return promociones.VentasTotales{}, fmt.Errorf("ventas.GetVentasPeriodo totales: %w", err)
	}
	t.PrecioPromedio = promociones.PrecioPromedio(t.VentaTotal, t.UnidadesTotal)
	return t, nil
}

func (r *VentasRepo) porProducto(ctx context.Context, f repository.FiltroVentas) ([]promociones.VentaProducto, error) {
	query := `
	SELECT
	    p.id,
	    p.nombre,
	    p.categoria,
	    SUM(v.venta)    AS venta,
	    SUM(v.unidades) AS unidades` + fromVentas + whereVentas + `
	GROUP BY p.id, p.nombre, p.categoria
	ORDER BY venta DESC, p.id`

	rows, err := r.db.Query(ctx, query, argsVentas(f)...)
	if err != nil {
		return nil, fmt.Errorf("ventas.GetVentasPeriodo productos: %w", err)
	}
	defer rows.Close()

	out := []promociones.VentaProducto{}
	for rows.Next() {
		var vp promociones.VentaProducto
		if err := rows.Scan(&vp.ProductoID, &vp.Nombre, &vp.Categoria, &vp.Venta, &vp.Unidades); err != nil {
			return nil, fmt.Errorf("ventas.GetVentasPeriodo productos scan: %w", err)
		}
		vp.PrecioPromedio = promociones.PrecioPromedio(vp.Venta, vp.Unidades)
		out = append(out, vp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ventas.GetVentasPeriodo productos rows: %w", err)
	}
	return out, nil
}

func (r *VentasRepo) porDia(ctx context.Context, f repository.FiltroVentas) ([]promociones.VentaDiaria, error) {
	query := `
	SELECT
	    v.fecha,
	    SUM(v.venta)    AS venta,
	    SUM(v.unidades) AS unidades` + fromVentas + whereVentas + `
	GROUP BY v.fecha
	ORDER BY v.fecha`

	rows, err := r.db.Query(ctx, query, argsVentas(f)...)
	if err != nil {
		return nil, fmt.Errorf("ventas.GetVentasPeriodo diario: %w", err)
	}
	defer rows.Close()

	out := []promociones.VentaDiaria{}
	for rows.Next() {
		var d promociones.VentaDiaria
		if err := rows.Scan(&d.Fecha, &d.Venta, &d.Unidades); err != nil {
			return nil, fmt.Errorf("ventas.GetVentasPeriodo diario scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ventas.GetVentasPeriodo diario rows: %w", err)
	}
	return out, nil
}

// GetProductosHermanos compara la venta de cada hermano de categoría entre ambas
// ventanas en una sola pasada (SUM ... FILTER).
func (r *VentasRepo) GetProductosHermanos(ctx context.Context, f repository.FiltroHermanos) ([]promociones.ProductoHermano, error) {
	const query = `
	SELECT
	    p.id,
	    p.nombre,
	    COALESCE(SUM(v.venta) FILTER (WHERE v.fecha BETWEEN $4 AND $5), 0) AS venta_promo,
	    COALESCE(SUM(v.venta) FILTER (WHERE v.fecha BETWEEN $6 AND $7), 0) AS venta_baseline
	FROM ventas v
	JOIN productos p ON p.tenant_id = v.tenant_id AND p.id = v.producto_id
	JOIN tiendas   t ON t.tenant_id = v.tenant_id AND t.id = v.tienda_id
	WHERE v.tenant_id = $1
	  AND p.categoria = $2
	  AND NOT (p.id = ANY($3::text[]))
	  AND (v.fecha BETWEEN $4 AND $5 OR v.fecha BETWEEN $6 AND $7)
	  AND (cardinality($8::text[]) = 0 OR v.tienda_id = ANY($8::text[]))
	  AND (cardinality($9::text[]) = 0 OR t.ciudad    = ANY($9::text[]))
	GROUP BY p.id, p.nombre
	ORDER BY venta_baseline DESC, p.id`

	rows, err := r.db.Query(ctx, query,
		f.TenantID, f.Categoria, noNil(f.ExcluirProductoIDs),
		f.InicioPromo, f.FinPromo, f.InicioBaseline, f.FinBaseline,
		noNil(f.TiendaIDs), noNil(f.Ciudades),
	)
	if err != nil {
		return nil, fmt.Errorf("ventas.GetProductosHermanos: %w", err)
	}
	defer rows.Close()

	out := []promociones.ProductoHermano{}
	for rows.Next() {
		var h promociones.ProductoHermano
		var promo, base decimal.Decimal
		if err := rows.Scan(&h.ProductoID, &h.Nombre, &promo, &base); err != nil {
			return nil, fmt.Errorf("ventas.GetProductosHermanos scan: %w", err)
		}
		h.VentaPromo = promo
		h.VentaBaseline = base
		h.VariacionPct = promociones.VariacionPct(promo, base)
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ventas.GetProductosHermanos rows: %w", err)
	}
	return out, nil
}

// noNil pgx codifica un slice nil como NULL y cardinality(NULL) no es 0.
func noNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
