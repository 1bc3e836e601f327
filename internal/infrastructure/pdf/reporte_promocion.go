// Package pdf genera el informe imprimible de un análisis de promoción.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre promo + mecánica  │  Veredicto + fechas     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Métrica | Promo | Baseline | Variación               │
//	│  RESULTADO: costo, incremental, beneficio neto, ROI         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRODUCTOS: una fila por producto promocionado              │
//	│  CANIBALIZACIÓN / RETENCIÓN (si se calcularon)              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INSIGHTS                                                   │
//	│  FOOTER: QR con el ID del análisis                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sellout-api/internal/application/ports"
	"github.com/jhoicas/sellout-api/internal/domain/promociones"
	"github.com/jhoicas/sellout-api/pkg/formato"
)

var _ ports.ReportePDF = (*MarotoReporte)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorPositivo = &props.Color{Red: 22, Green: 128, Blue: 61}
	colorNegativo = &props.Color{Red: 185, Green: 28, Blue: 28}
)

const formatoFecha = "02/01/2006"

var cien = decimal.NewFromInt(100)

// ── Generador ─────────────────────────────────────────────────────────────────

// MarotoReporte implementa ports.ReportePDF usando Maroto v2.
type MarotoReporte struct {
	autor string
}

// NewMarotoReporte construye el generador; autor aparece en los metadatos del PDF.
func NewMarotoReporte(autor string) *MarotoReporte { return &MarotoReporte{autor: autor} }

// GenerarReporte genera el PDF y devuelve sus bytes.
func (g *MarotoReporte) GenerarReporte(
	_ context.Context,
	analisisID string,
	r *promociones.PromocionResultado,
) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("pdf: resultado nulo")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Análisis de promoción", true).
		WithAuthor(g.autor, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(separador(0.5))

	m.AddRows(tituloSeccion("KPIs PROMO VS BASELINE"))
	m.AddRows(encabezadoTabla([]string{"Métrica", "Promo", "Baseline", "Variación"}, []int{4, 3, 3, 2}))
	m.AddRows(kpiRows(r.Kpis)...)
	m.AddRows(resultadoRow(r.Kpis))
	m.AddRows(separador(0.3))

	if len(r.Productos) > 0 {
		m.AddRows(tituloSeccion("DETALLE POR PRODUCTO"))
		m.AddRows(encabezadoTabla([]string{"Producto", "Venta promo", "Var. venta", "Var. unid.", "Elasticidad", "% del total"}, []int{4, 2, 2, 1, 2, 1}))
		m.AddRows(productoRows(r.Productos)...)
		m.AddRows(separador(0.3))
	}

	if r.Canibalizacion != nil {
		m.AddRows(tituloSeccion("CANIBALIZACIÓN"))
		m.AddRows(canibalizacionRows(r.Canibalizacion)...)
		m.AddRows(separador(0.3))
	}

	if r.Retencion != nil {
		m.AddRows(tituloSeccion("RETENCIÓN POST-PROMO"))
		m.AddRows(retencionRow(r.Retencion))
		m.AddRows(separador(0.3))
	}

	if len(r.Insights) > 0 {
		m.AddRows(tituloSeccion("INSIGHTS"))
		m.AddRows(insightRows(r.Insights)...)
	}

	m.AddRows(row.New(3))
	m.AddRows(footerRow(analisisID))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre y mecánica (izq), veredicto y períodos (der).
func headerRow(r *promociones.PromocionResultado) core.Row {
	c := r.Config
	nombre := c.Nombre
	if nombre == "" {
		nombre = "Promoción sin nombre"
	}
	return row.New(22).Add(
		col.New(7).Add(
			text.New(nombre, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Mecánica: "+mecanica(c.Parametros), props.Text{Size: 9, Top: 9, Color: colorGray}),
			text.New(fmt.Sprintf("%d producto(s)", len(c.ProductoIDs)), props.Text{Size: 8, Top: 15, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("VEREDICTO", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(veredictoLabel(r.Veredicto), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6, Color: colorVeredicto(r.Veredicto),
			}),
			text.New("Promo: "+rango(c.FechaInicioPromo.Format(formatoFecha), c.FechaFinPromo.Format(formatoFecha)),
				props.Text{Size: 8, Align: align.Right, Top: 13, Color: colorGray}),
			text.New("Baseline: "+rango(c.FechaInicioBaseline.Format(formatoFecha), c.FechaFinBaseline.Format(formatoFecha)),
				props.Text{Size: 8, Align: align.Right, Top: 17, Color: colorGray}),
		),
	)
}

func kpiRows(k promociones.PromocionKpis) []core.Row {
	anchos := []int{4, 3, 3, 2}
	return []core.Row{
		filaTabla([]string{"Venta", formato.Moneda(k.VentaPromo), formato.Moneda(k.VentaBaseline), formato.Pct(k.VentaDiferenciaPct)}, anchos),
		filaTabla([]string{"Unidades", formato.Numero(k.UnidadesPromo, 0), formato.Numero(k.UnidadesBaseline, 0), formato.Pct(k.UnidadesDiferenciaPct)}, anchos),
		filaTabla([]string{"Precio promedio", formato.NullMoneda(k.PrecioPromedioPromo), formato.NullMoneda(k.PrecioPromedioBaseline), formato.NullPct(k.PrecioDiferenciaPct)}, anchos),
		filaTabla([]string{"Tiendas con venta", fmt.Sprint(k.TiendasPromo), fmt.Sprint(k.TiendasBaseline), formato.Numero(k.CoberturaTiendas.Mul(cien), 0) + "%"}, anchos),
		filaTabla([]string{"Días", fmt.Sprint(k.DiasPromo), fmt.Sprint(k.DiasBaseline), ""}, anchos),
	}
}

// resultadoRow: bloque de resultado económico alineado a la derecha.
func resultadoRow(k promociones.PromocionKpis) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	etiquetas := col.New(4).Add(
		label("Descuento real:"),
		text.New("Costo del descuento:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 5}),
		text.New("Venta incremental:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 10}),
		text.New("Beneficio neto:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 15, Color: colorPrimary}),
		text.New("ROI / Elasticidad:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 21}),
	)
	valores := col.New(3).Add(
		text.New(formato.NullPct(k.DescuentoRealPct), props.Text{Size: 9, Align: align.Right, Right: 1}),
		text.New(formato.Moneda(k.CostoDescuento), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 5}),
		text.New(formato.Moneda(k.VentaIncremental), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 10}),
		text.New(formato.Moneda(k.BeneficioNeto), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 15, Color: colorSigno(k.BeneficioNeto),
		}),
		text.New(formato.NullNumero(k.ROI, 2)+" / "+formato.NullNumero(k.Elasticidad, 2),
			props.Text{Size: 9, Align: align.Right, Right: 1, Top: 21}),
	)
	return row.New(28).Add(col.New(5), etiquetas, valores)
}

func productoRows(productos []promociones.ProductoPromocionAnalisis) []core.Row {
	anchos := []int{4, 2, 2, 1, 2, 1}
	rows := make([]core.Row, 0, len(productos))
	for _, p := range productos {
		nombre := p.Nombre
		if nombre == "" {
			nombre = p.ProductoID
		}
		rows = append(rows, filaTabla([]string{
			nombre,
			formato.Moneda(p.VentaPromo),
			formato.Pct(p.VentaDiferenciaPct),
			formato.Pct(p.UnidadesDiferenciaPct),
			formato.NullNumero(p.Elasticidad, 2),
			formato.Numero(p.ContribucionPct, 1) + "%",
		}, anchos))
	}
	return rows
}

func canibalizacionRows(c *promociones.CanibalizacionAnalisis) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(text.New(fmt.Sprintf(
			"%d producto(s) hermano(s) afectado(s). Pérdida estimada %s, impacto neto %s.",
			c.ProductosAfectados, formato.Moneda(c.CanibalizacionTotal), formato.Moneda(c.ImpactoNeto),
		), props.Text{Size: 8, Top: 1}))),
	}
	anchos := []int{5, 2, 2, 3}
	conEncabezado := false
	for _, p := range c.Productos {
		if !p.Afectado {
			continue
		}
		if !conEncabezado {
			rows = append(rows, encabezadoTabla([]string{"Producto hermano", "Venta promo", "Baseline", "Variación"}, anchos))
			conEncabezado = true
		}
		rows = append(rows, filaTabla([]string{
			p.Nombre, formato.Moneda(p.VentaPromo), formato.Moneda(p.VentaBaseline), formato.Pct(p.VariacionPct),
		}, anchos))
	}
	return rows
}

func retencionRow(r *promociones.RetencionAnalisis) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("Índice de retención: "+formato.Numero(r.IndiceRetencion, 2), props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
			text.New(fmt.Sprintf("Calificación: %s (%d días analizados)", r.Calificacion, r.DiasAnalizados),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("Venta diaria promo: "+formato.Moneda(r.VentaDiariaPromo), props.Text{Size: 8, Align: align.Right, Top: 1}),
			text.New("Post-promo: "+formato.Moneda(r.VentaDiariaPostPromo), props.Text{Size: 8, Align: align.Right, Top: 5}),
			text.New("Baseline: "+formato.Moneda(r.VentaDiariaBaseline), props.Text{Size: 8, Align: align.Right, Top: 9}),
		),
	)
}

func insightRows(insights []promociones.PromocionInsight) []core.Row {
	rows := make([]core.Row, 0, len(insights))
	for _, in := range insights {
		rows = append(rows, row.New(11).Add(
			col.New(12).Add(
				text.New(marcaInsight(in.Tipo)+" "+in.Titulo, props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 1, Color: colorInsight(in.Tipo),
				}),
				text.New(in.Descripcion, props.Text{Size: 8, Top: 6, Left: 4, Color: colorGray}),
			),
		))
	}
	return rows
}

// footerRow: QR con el ID del análisis para rastrear el informe.
func footerRow(analisisID string) core.Row {
	qr := col.New(3)
	if analisisID != "" {
		qr.Add(code.NewQr(analisisID, props.Rect{Percent: 90, Center: true}))
	}
	return row.New(30).Add(
		qr,
		col.New(9).Add(
			text.New("ID del análisis", props.Text{Style: fontstyle.Bold, Size: 8, Top: 8, Left: 3, Color: colorPrimary}),
			text.New(analisisID, props.Text{Size: 8, Top: 13, Left: 3, Color: colorGray}),
			text.New("Cifras calculadas sobre ventas sell-out agregadas; el baseline no ajusta estacionalidad.",
				props.Text{Size: 6.5, Top: 20, Left: 3, Color: colorGray}),
		),
	)
}

// ── Piezas reutilizables ──────────────────────────────────────────────────────

func separador(grosor float64) core.Row {
	return line.NewRow(1, props.Line{Color: colorPrimary, Thickness: grosor})
}

func tituloSeccion(titulo string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(titulo, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

// encabezadoTabla: primera columna a la izquierda, el resto a la derecha.
func encabezadoTabla(labels []string, anchos []int) core.Row {
	cols := make([]core.Col, len(labels))
	for i, l := range labels {
		cols[i] = col.New(anchos[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: alineacion(i), Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func filaTabla(valores []string, anchos []int) core.Row {
	cols := make([]core.Col, len(valores))
	for i, v := range valores {
		cols[i] = col.New(anchos[i]).Add(text.New(v, props.Text{
			Size: 8, Align: alineacion(i), Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(cols...)
}

func alineacion(i int) align.Type {
	if i == 0 {
		return align.Left
	}
	return align.Right
}

// ── helpers ───────────────────────────────────────────────────────────────────

func mecanica(p promociones.Parametros) string {
	switch v := p.(type) {
	case promociones.DescuentoPorcentaje:
		return formato.Numero(v.Porcentaje, 0) + "% de descuento"
	case promociones.PrecioEspecial:
		return "Precio especial " + formato.Moneda(v.Precio)
	case promociones.MulticompraNx1:
		return fmt.Sprintf("Lleva %d paga %d", v.Compra, v.Lleva)
	case promociones.MulticompraNxPrecio:
		return fmt.Sprintf("%d x %s", v.Cantidad, formato.Moneda(v.Precio))
	case promociones.Bundle:
		return "Bundle " + formato.Moneda(v.PrecioBundle)
	default:
		return "-"
	}
}

func veredictoLabel(v promociones.Veredicto) string {
	switch v {
	case promociones.VeredictoExitosa:
		return "EXITOSA"
	case promociones.VeredictoNegativa:
		return "NEGATIVA"
	default:
		return "NEUTRAL"
	}
}

func colorVeredicto(v promociones.Veredicto) *props.Color {
	switch v {
	case promociones.VeredictoExitosa:
		return colorPositivo
	case promociones.VeredictoNegativa:
		return colorNegativo
	default:
		return colorGray
	}
}

func colorSigno(d decimal.Decimal) *props.Color {
	if d.IsNegative() {
		return colorNegativo
	}
	return colorPositivo
}

func marcaInsight(t promociones.TipoInsight) string {
	switch t {
	case promociones.InsightPositivo:
		return "[+]"
	case promociones.InsightNegativo:
		return "[-]"
	default:
		return "[=]"
	}
}

func colorInsight(t promociones.TipoInsight) *props.Color {
	switch t {
	case promociones.InsightPositivo:
		return colorPositivo
	case promociones.InsightNegativo:
		return colorNegativo
	default:
		return colorGray
	}
}

func rango(desde, hasta string) string { return desde + " - " + hasta }
