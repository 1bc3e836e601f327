package repository

import (
	"context"
	"time"

	"github.com/jhoicas/sellout-api/internal/domain/promociones"
)

// FiltroVentas alcance de una consulta agregada de sell-out. Las fechas son
// días calendario inclusivos; las listas vacías no filtran.
type FiltroVentas struct {
	TenantID    string
	Desde       time.Time
	Hasta       time.Time
	ProductoIDs []string
	TiendaIDs   []string
	Ciudades    []string
	Categoria   string
}

// FiltroHermanos productos de la misma categoría que no participan en la
// promoción, comparados entre la ventana promo y la baseline.
type FiltroHermanos struct {
	TenantID           string
	Categoria          string
	ExcluirProductoIDs []string
	TiendaIDs          []string
	Ciudades           []string
	InicioPromo        time.Time
	FinPromo           time.Time
	InicioBaseline     time.Time
	FinBaseline        time.Time
}

// VentasRepository consultas de solo lectura sobre el data warehouse de sell-out.
type VentasRepository interface {
	// GetVentasPeriodo devuelve totales, desglose por producto (ordenado por venta
	// descendente) y serie diaria de la ventana. Sin ventas devuelve ceros, nunca nil.
	GetVentasPeriodo(ctx context.Context, f FiltroVentas) (*promociones.VentasPeriodo, error)

	// GetProductosHermanos devuelve los hermanos de categoría con su venta en ambas
	// ventanas y la variación porcentual ya calculada.
	GetProductosHermanos(ctx context.Context, f FiltroHermanos) ([]promociones.ProductoHermano, error)
}
