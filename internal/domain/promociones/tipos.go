// Package promociones implementa el motor de análisis de impacto de promociones:
// a partir de la configuración de una promoción y de tres ventanas de ventas
// agregadas (promoción, baseline y post-promoción opcional) calcula uplift,
// costo del descuento, ROI, elasticidad, canibalización y retención, y los
// traduce en insights y un veredicto final.
//
// Todas las funciones son puras: no hacen I/O, no leen el reloj y no mutan sus
// entradas. Es seguro invocarlas en paralelo y memoizar su resultado.
package promociones

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sellout-api/internal/domain"
)

// ── Entrada ───────────────────────────────────────────────────────────────────

// PromocionConfig configuración de la promoción tal como la entrega el wizard.
type PromocionConfig struct {
	Nombre      string        `json:"nombre"`
	ProductoIDs []string      `json:"producto_ids"`
	Tipo        TipoPromocion `json:"tipo"`
	Parametros  Parametros    `json:"parametros"`

	FechaInicioPromo    time.Time `json:"fecha_inicio_promo"`
	FechaFinPromo       time.Time `json:"fecha_fin_promo"`
	FechaInicioBaseline time.Time `json:"fecha_inicio_baseline"`
	FechaFinBaseline    time.Time `json:"fecha_fin_baseline"`
	DiasPostPromo       int       `json:"dias_post_promo"`

	// Alcance opcional; vacío = todas las tiendas/ciudades/categorías del tenant.
	TiendaIDs []string `json:"tienda_ids,omitempty"`
	Ciudades  []string `json:"ciudades,omitempty"`
	Categoria string   `json:"categoria,omitempty"`
}

// Validar comprueba las invariantes del modelo de datos. Un error aquí es un
// error del llamador: el análisis no se ejecuta.
func (c PromocionConfig) Validar() error {
	if len(c.ProductoIDs) == 0 {
		return fmt.Errorf("%w: se requiere al menos un producto", domain.ErrConfigPromocionInvalida)
	}
	if c.Parametros == nil {
		return tipoDesconocido(nil)
	}
	if c.Parametros.Tipo() != c.Tipo {
		return fmt.Errorf("%w: parámetros de tipo %q para una promoción %q",
			domain.ErrConfigPromocionInvalida, c.Parametros.Tipo(), c.Tipo)
	}
	if err := c.Parametros.validar(); err != nil {
		return err
	}
	if c.FechaInicioPromo.After(c.FechaFinPromo) {
		return fmt.Errorf("%w: fecha_inicio_promo posterior a fecha_fin_promo", domain.ErrConfigPromocionInvalida)
	}
	if c.FechaInicioBaseline.After(c.FechaFinBaseline) {
		return fmt.Errorf("%w: fecha_inicio_baseline posterior a fecha_fin_baseline", domain.ErrConfigPromocionInvalida)
	}
	if !c.FechaFinBaseline.Before(c.FechaInicioPromo) {
		return fmt.Errorf("%w: el baseline debe terminar antes del inicio de la promoción", domain.ErrConfigPromocionInvalida)
	}
	if c.DiasPostPromo <= 0 {
		return fmt.Errorf("%w: dias_post_promo debe ser mayor a cero", domain.ErrConfigPromocionInvalida)
	}
	return nil
}

// UnmarshalJSON resuelve la unión de parámetros a partir del campo tipo.
func (c *PromocionConfig) UnmarshalJSON(data []byte) error {
	type alias PromocionConfig
	aux := struct {
		*alias
		Parametros json.RawMessage `json:"parametros"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.Parametros = nil
	if len(aux.Parametros) == 0 || string(aux.Parametros) == "null" {
		return nil
	}
	p, err := DecodificarParametros(c.Tipo, aux.Parametros)
	if err != nil {
		return err
	}
	c.Parametros = p
	return nil
}

// VentasTotales totales agregados de una ventana.
type VentasTotales struct {
	VentaTotal      decimal.Decimal     `json:"venta_total"`
	UnidadesTotal   decimal.Decimal     `json:"unidades_total"`
	Transacciones   int                 `json:"transacciones"`
	PrecioPromedio  decimal.NullDecimal `json:"precio_promedio"` // null si no hubo ventas
	TiendasConVenta int                 `json:"tiendas_con_venta"`
	DiasConVenta    int                 `json:"dias_con_venta"`
}

// VentaProducto línea del desglose por producto.
type VentaProducto struct {
	ProductoID     string              `json:"producto_id"`
	Nombre         string              `json:"nombre"`
	Categoria      string              `json:"categoria,omitempty"`
	Venta          decimal.Decimal     `json:"venta"`
	Unidades       decimal.Decimal     `json:"unidades"`
	PrecioPromedio decimal.NullDecimal `json:"precio_promedio"`
}

// VentaDiaria punto de la serie diaria.
type VentaDiaria struct {
	Fecha    time.Time       `json:"fecha"`
	Venta    decimal.Decimal `json:"venta"`
	Unidades decimal.Decimal `json:"unidades"`
}

// VentasPeriodo resumen pre-agregado de una ventana de tiempo. El motor nunca lo modifica.
type VentasPeriodo struct {
	Totales   VentasTotales   `json:"totales"`
	Productos []VentaProducto `json:"productos"`
	Diario    []VentaDiaria   `json:"diario"`
}

// ProductoHermano producto de la misma categoría que no participa en la promoción.
type ProductoHermano struct {
	ProductoID    string          `json:"producto_id"`
	Nombre        string          `json:"nombre"`
	VentaPromo    decimal.Decimal `json:"venta_promo"`
	VentaBaseline decimal.Decimal `json:"venta_baseline"`
	VariacionPct  decimal.Decimal `json:"variacion_pct"`
}

// ── Salida ────────────────────────────────────────────────────────────────────

// PromocionKpis métricas principales promo vs baseline.
type PromocionKpis struct {
	VentaPromo         decimal.Decimal `json:"venta_promo"`
	VentaBaseline      decimal.Decimal `json:"venta_baseline"`
	VentaDiferencia    decimal.Decimal `json:"venta_diferencia"`
	VentaDiferenciaPct decimal.Decimal `json:"venta_diferencia_pct"`

	UnidadesPromo         decimal.Decimal `json:"unidades_promo"`
	UnidadesBaseline      decimal.Decimal `json:"unidades_baseline"`
	UnidadesDiferencia    decimal.Decimal `json:"unidades_diferencia"`
	UnidadesDiferenciaPct decimal.Decimal `json:"unidades_diferencia_pct"`

	PrecioPromedioPromo    decimal.NullDecimal `json:"precio_promedio_promo"`
	PrecioPromedioBaseline decimal.NullDecimal `json:"precio_promedio_baseline"`
	PrecioDiferenciaPct    decimal.NullDecimal `json:"precio_diferencia_pct"`
	DescuentoRealPct       decimal.NullDecimal `json:"descuento_real_pct"`
	PrecioEfectivo         decimal.NullDecimal `json:"precio_efectivo"`

	CostoDescuento   decimal.Decimal     `json:"costo_descuento"`
	VentaIncremental decimal.Decimal     `json:"venta_incremental"`
	BeneficioNeto    decimal.Decimal     `json:"beneficio_neto"` // venta incremental - costo del descuento
	ROI              decimal.NullDecimal `json:"roi"`
	Elasticidad      decimal.NullDecimal `json:"elasticidad"`

	CoberturaTiendas decimal.Decimal `json:"cobertura_tiendas"` // 0..1
	TiendasPromo     int             `json:"tiendas_promo"`
	TiendasBaseline  int             `json:"tiendas_baseline"`

	DiasPromo     int `json:"dias_promo"`
	DiasBaseline  int `json:"dias_baseline"`
	DiasPostPromo int `json:"dias_post_promo"`
}

// ProductoPromocionAnalisis mismas métricas que los KPIs, acotadas a un producto.
type ProductoPromocionAnalisis struct {
	ProductoID            string              `json:"producto_id"`
	Nombre                string              `json:"nombre"`
	VentaPromo            decimal.Decimal     `json:"venta_promo"`
	VentaBaseline         decimal.Decimal     `json:"venta_baseline"`
	VentaDiferenciaPct    decimal.Decimal     `json:"venta_diferencia_pct"`
	UnidadesPromo         decimal.Decimal     `json:"unidades_promo"`
	UnidadesBaseline      decimal.Decimal     `json:"unidades_baseline"`
	UnidadesDiferenciaPct decimal.Decimal     `json:"unidades_diferencia_pct"`
	PrecioPromo           decimal.NullDecimal `json:"precio_promo"`
	PrecioBaseline        decimal.NullDecimal `json:"precio_baseline"`
	Elasticidad           decimal.NullDecimal `json:"elasticidad"`
	ContribucionPct       decimal.Decimal     `json:"contribucion_pct"` // % de la venta total de la promo
}

// ProductoCanibalizado fila por producto hermano.
type ProductoCanibalizado struct {
	ProductoHermano
	Diferencia decimal.Decimal `json:"diferencia"` // venta_promo - venta_baseline
	Afectado   bool            `json:"afectado"`
}

// CanibalizacionAnalisis pérdida estimada en productos hermanos.
type CanibalizacionAnalisis struct {
	Productos           []ProductoCanibalizado `json:"productos"`
	CanibalizacionTotal decimal.Decimal        `json:"canibalizacion_total"`
	ProductosAfectados  int                    `json:"productos_afectados"`
	ImpactoNeto         decimal.Decimal        `json:"impacto_neto"`
}

// CalificacionRetencion bucket cualitativo del índice de retención.
type CalificacionRetencion string

const (
	RetencionExcelente CalificacionRetencion = "excelente"
	RetencionBuena     CalificacionRetencion = "buena"
	RetencionRegular   CalificacionRetencion = "regular"
	RetencionBaja      CalificacionRetencion = "baja"
)

// RetencionAnalisis comparación del ritmo diario post-promo vs durante y antes.
type RetencionAnalisis struct {
	VentaDiariaPromo     decimal.Decimal       `json:"venta_diaria_promo"`
	VentaDiariaPostPromo decimal.Decimal       `json:"venta_diaria_post_promo"`
	VentaDiariaBaseline  decimal.Decimal       `json:"venta_diaria_baseline"`
	IndiceRetencion      decimal.Decimal       `json:"indice_retencion"`
	IndiceVsBaseline     decimal.Decimal       `json:"indice_vs_baseline"`
	Calificacion         CalificacionRetencion `json:"calificacion"`
	DiasAnalizados       int                   `json:"dias_analizados"`
}

// TipoInsight polaridad del insight.
type TipoInsight string

const (
	InsightPositivo TipoInsight = "positivo"
	InsightNegativo TipoInsight = "negativo"
	InsightNeutral  TipoInsight = "neutral"
)

// PromocionInsight observación legible derivada de una métrica.
type PromocionInsight struct {
	Tipo        TipoInsight         `json:"tipo"`
	Titulo      string              `json:"titulo"`
	Descripcion string              `json:"descripcion"`
	Metrica     string              `json:"metrica,omitempty"`
	Valor       decimal.NullDecimal `json:"valor"`
}

// Veredicto evaluación global de la promoción.
type Veredicto string

const (
	VeredictoExitosa  Veredicto = "exitosa"
	VeredictoNeutral  Veredicto = "neutral"
	VeredictoNegativa Veredicto = "negativa"
)

// PromocionResultado única salida del motor.
type PromocionResultado struct {
	Config         PromocionConfig             `json:"config"`
	Kpis           PromocionKpis               `json:"kpis"`
	Productos      []ProductoPromocionAnalisis `json:"productos"`
	Canibalizacion *CanibalizacionAnalisis     `json:"canibalizacion"`
	Retencion      *RetencionAnalisis          `json:"retencion"`
	Insights       []PromocionInsight          `json:"insights"`
	Veredicto      Veredicto                   `json:"veredicto"`
}
