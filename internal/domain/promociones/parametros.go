package promociones

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sellout-api/internal/domain"
)

// TipoPromocion identifica la mecánica comercial de la promoción.
type TipoPromocion string

const (
	TipoDescuentoPorcentaje TipoPromocion = "descuento_porcentaje"
	TipoPrecioEspecial      TipoPromocion = "precio_especial"
	TipoMulticompraNx1      TipoPromocion = "multicompra_nx1"
	TipoMulticompraNxPrecio TipoPromocion = "multicompra_nxprecio"
	TipoBundle              TipoPromocion = "bundle"
)

// TiposValidos devuelve las mecánicas soportadas por el motor.
func TiposValidos() []TipoPromocion {
	return []TipoPromocion{
		TipoDescuentoPorcentaje,
		TipoPrecioEspecial,
		TipoMulticompraNx1,
		TipoMulticompraNxPrecio,
		TipoBundle,
	}
}

// Parametros es la unión etiquetada de parámetros por mecánica.
// Solo los tipos de este paquete la implementan (método validar no exportado).
type Parametros interface {
	Tipo() TipoPromocion
	validar() error
}

// DescuentoPorcentaje: X% de descuento sobre el precio regular (0 < X <= 100).
type DescuentoPorcentaje struct {
	Porcentaje decimal.Decimal `json:"porcentaje"`
}

// PrecioEspecial: precio fijo por unidad durante la promoción.
type PrecioEspecial struct {
	Precio decimal.Decimal `json:"precio"`
}

// MulticompraNx1: se llevan Compra unidades y se pagan Lleva (3x2 → Compra=3, Lleva=2).
type MulticompraNx1 struct {
	Compra int `json:"compra"`
	Lleva  int `json:"lleva"`
}

// MulticompraNxPrecio: Cantidad unidades por un precio fijo (ej. 3 por $10.000).
type MulticompraNxPrecio struct {
	Cantidad int             `json:"cantidad"`
	Precio   decimal.Decimal `json:"precio"`
}

// Bundle: combo de productos a un precio conjunto.
type Bundle struct {
	PrecioBundle decimal.Decimal `json:"precio_bundle"`
}

func (DescuentoPorcentaje) Tipo() TipoPromocion { return TipoDescuentoPorcentaje }
func (PrecioEspecial) Tipo() TipoPromocion      { return TipoPrecioEspecial }
func (MulticompraNx1) Tipo() TipoPromocion      { return TipoMulticompraNx1 }
func (MulticompraNxPrecio) Tipo() TipoPromocion { return TipoMulticompraNxPrecio }
func (Bundle) Tipo() TipoPromocion              { return TipoBundle }

func (p DescuentoPorcentaje) validar() error {
	if !p.Porcentaje.IsPositive() || p.Porcentaje.GreaterThan(cien) {
		return fmt.Errorf("%w: porcentaje debe estar en (0, 100], recibido %s",
			domain.ErrConfigPromocionInvalida, p.Porcentaje)
	}
	return nil
}

func (p PrecioEspecial) validar() error {
	if !p.Precio.IsPositive() {
		return fmt.Errorf("%w: precio especial debe ser mayor a cero", domain.ErrConfigPromocionInvalida)
	}
	return nil
}

func (p MulticompraNx1) validar() error {
	if p.Lleva < 1 || p.Compra <= p.Lleva {
		return fmt.Errorf("%w: multicompra requiere compra > lleva >= 1 (compra=%d, lleva=%d)",
			domain.ErrConfigPromocionInvalida, p.Compra, p.Lleva)
	}
	return nil
}

func (p MulticompraNxPrecio) validar() error {
	if p.Cantidad <= 0 {
		return fmt.Errorf("%w: cantidad debe ser mayor a cero", domain.ErrConfigPromocionInvalida)
	}
	if !p.Precio.IsPositive() {
		return fmt.Errorf("%w: precio del set debe ser mayor a cero", domain.ErrConfigPromocionInvalida)
	}
	return nil
}

func (p Bundle) validar() error {
	if !p.PrecioBundle.IsPositive() {
		return fmt.Errorf("%w: precio del bundle debe ser mayor a cero", domain.ErrConfigPromocionInvalida)
	}
	return nil
}

// tipoDesconocido construye el error para variantes no contempladas en un switch.
func tipoDesconocido(p Parametros) error {
	if p == nil {
		return fmt.Errorf("%w: parámetros ausentes", domain.ErrConfigPromocionInvalida)
	}
	return errTipoDesconocido(p.Tipo())
}

func errTipoDesconocido(tipo TipoPromocion) error {
	validos := make([]string, 0, len(TiposValidos()))
	for _, t := range TiposValidos() {
		validos = append(validos, string(t))
	}
	return fmt.Errorf("%w: %q (válidos: %s)", domain.ErrTipoPromocionDesconocido, tipo, strings.Join(validos, ", "))
}

// DecodificarParametros interpreta el JSON de parámetros según la mecánica indicada.
func DecodificarParametros(tipo TipoPromocion, raw []byte) (Parametros, error) {
	var p Parametros
	switch tipo {
	case TipoDescuentoPorcentaje:
		var v DescuentoPorcentaje
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrConfigPromocionInvalida, err)
		}
		p = v
	case TipoPrecioEspecial:
		var v PrecioEspecial
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrConfigPromocionInvalida, err)
		}
		p = v
	case TipoMulticompraNx1:
		var v MulticompraNx1
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrConfigPromocionInvalida, err)
		}
		p = v
	case TipoMulticompraNxPrecio:
		var v MulticompraNxPrecio
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrConfigPromocionInvalida, err)
		}
		p = v
	case TipoBundle:
		var v Bundle
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrConfigPromocionInvalida, err)
		}
		p = v
	default:
		return nil, errTipoDesconocido(tipo)
	}
	return p, nil
}
