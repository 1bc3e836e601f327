package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sellout-api/internal/domain"
	"github.com/jhoicas/sellout-api/internal/domain/promociones"
)

// FormatoFecha formato de fechas en la API (días calendario, sin hora).
const FormatoFecha = "2006-01-02"

// ParametrosDTO parámetros de la mecánica en forma plana; solo aplican los
// campos de la mecánica indicada en AnalisisPromocionRequest.Tipo.
type ParametrosDTO struct {
	Porcentaje   decimal.Decimal `json:"porcentaje"`
	Precio       decimal.Decimal `json:"precio"`
	Compra       int             `json:"compra"`
	Lleva        int             `json:"lleva"`
	Cantidad     int             `json:"cantidad"`
	PrecioBundle decimal.Decimal `json:"precio_bundle"`
}

// AnalisisPromocionRequest cuerpo de POST /api/promociones/analisis.
type AnalisisPromocionRequest struct {
	Nombre      string        `json:"nombre" validate:"max=200"`
	ProductoIDs []string      `json:"producto_ids" validate:"required,min=1,max=200,dive,required"`
	Tipo        string        `json:"tipo" validate:"required,oneof=descuento_porcentaje precio_especial multicompra_nx1 multicompra_nxprecio bundle"`
	Parametros  ParametrosDTO `json:"parametros"`

	FechaInicioPromo    string `json:"fecha_inicio_promo" validate:"required,datetime=2006-01-02"`
	FechaFinPromo       string `json:"fecha_fin_promo" validate:"required,datetime=2006-01-02"`
	FechaInicioBaseline string `json:"fecha_inicio_baseline" validate:"required,datetime=2006-01-02"`
	FechaFinBaseline    string `json:"fecha_fin_baseline" validate:"required,datetime=2006-01-02"`
	DiasPostPromo       int    `json:"dias_post_promo" validate:"min=1,max=180"`

	TiendaIDs []string `json:"tienda_ids" validate:"omitempty,dive,required"`
	Ciudades  []string `json:"ciudades" validate:"omitempty,dive,required"`
	Categoria string   `json:"categoria" validate:"required_if=IncluirCanibalizacion true"`

	IncluirPostPromo      bool `json:"incluir_post_promo"`
	IncluirCanibalizacion bool `json:"incluir_canibalizacion"`
}

// ToConfig convierte la solicitud al modelo del motor. No valida reglas de
// negocio (eso lo hace PromocionConfig.Validar).
func (r AnalisisPromocionRequest) ToConfig() (promociones.PromocionConfig, error) {
	fechas := make([]time.Time, 4)
	for i, s := range []string{r.FechaInicioPromo, r.FechaFinPromo, r.FechaInicioBaseline, r.FechaFinBaseline} {
		t, err := time.Parse(FormatoFecha, s)
		if err != nil {
			return promociones.PromocionConfig{}, fmt.Errorf("%w: fecha %q inválida", domain.ErrInvalidInput, s)
		}
		fechas[i] = t
	}

	tipo := promociones.TipoPromocion(r.Tipo)
	params, err := r.Parametros.toDomain(tipo)
	if err != nil {
		return promociones.PromocionConfig{}, err
	}

	return promociones.PromocionConfig{
		Nombre:              r.Nombre,
		ProductoIDs:         r.ProductoIDs,
		Tipo:                tipo,
		Parametros:          params,
		FechaInicioPromo:    fechas[0],
		FechaFinPromo:       fechas[1],
		FechaInicioBaseline: fechas[2],
		FechaFinBaseline:    fechas[3],
		DiasPostPromo:       r.DiasPostPromo,
		TiendaIDs:           r.TiendaIDs,
		Ciudades:            r.Ciudades,
		Categoria:           r.Categoria,
	}, nil
}

func (p ParametrosDTO) toDomain(tipo promociones.TipoPromocion) (promociones.Parametros, error) {
	switch tipo {
	case promociones.TipoDescuentoPorcentaje:
		return promociones.DescuentoPorcentaje{Porcentaje: p.Porcentaje}, nil
	case promociones.TipoPrecioEspecial:
		return promociones.PrecioEspecial{Precio: p.Precio}, nil
	case promociones.TipoMulticompraNx1:
		return promociones.MulticompraNx1{Compra: p.Compra, Lleva: p.Lleva}, nil
	case promociones.TipoMulticompraNxPrecio:
		return promociones.MulticompraNxPrecio{Cantidad: p.Cantidad, Precio: p.Precio}, nil
	case promociones.TipoBundle:
		return promociones.Bundle{PrecioBundle: p.PrecioBundle}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrTipoPromocionDesconocido, tipo)
	}
}

// AnalisisPromocionResponse respuesta del análisis.
type AnalisisPromocionResponse struct {
	AnalisisID string                          `json:"analisis_id"`
	DesdeCache bool                            `json:"desde_cache"`
	Resultado  *promociones.PromocionResultado `json:"resultado"`
}

// NarrativaResponse resumen en lenguaje natural del análisis.
type NarrativaResponse struct {
	AnalisisID string `json:"analisis_id"`
	Veredicto  string `json:"veredicto"`
	Narrativa  string `json:"narrativa"`
	Modelo     string `json:"modelo"`
}
