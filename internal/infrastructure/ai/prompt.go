package ai

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sellout-api/internal/domain/promociones"
	"github.com/jhoicas/sellout-api/pkg/formato"
)

const (
	maxProductosPrompt = 10
	formatoFechaPrompt = "02/01/2006"
)

var cien = decimal.NewFromInt(100)

// ConstruirPrompt serializa el resultado del motor como texto plano para el modelo.
// Solo incluye cifras ya calculadas; el modelo no debe derivar nuevas.
func ConstruirPrompt(r *promociones.PromocionResultado) string {
	var b strings.Builder
	c := r.Config
	k := r.Kpis

	fmt.Fprintf(&b, "Promoción: %s\n", nombreOPorDefecto(c.Nombre))
	fmt.Fprintf(&b, "Mecánica: %s\n", describirMecanica(c.Parametros))
	fmt.Fprintf(&b, "Período promo: %s al %s (%d días)\n",
		c.FechaInicioPromo.Format(formatoFechaPrompt), c.FechaFinPromo.Format(formatoFechaPrompt), k.DiasPromo)
	fmt.Fprintf(&b, "Período baseline: %s al %s (%d días)\n",
		c.FechaInicioBaseline.Format(formatoFechaPrompt), c.FechaFinBaseline.Format(formatoFechaPrompt), k.DiasBaseline)
	fmt.Fprintf(&b, "Veredicto del motor: %s\n\n", r.Veredicto)

	b.WriteString("KPIs:\n")
	fmt.Fprintf(&b, "- Venta promo %s vs baseline %s (%s)\n",
		formato.Moneda(k.VentaPromo), formato.Moneda(k.VentaBaseline), formato.Pct(k.VentaDiferenciaPct))
	fmt.Fprintf(&b, "- Unidades promo %s vs baseline %s (%s)\n",
		formato.Numero(k.UnidadesPromo, 0), formato.Numero(k.UnidadesBaseline, 0), formato.Pct(k.UnidadesDiferenciaPct))
	fmt.Fprintf(&b, "- Precio promedio promo %s vs baseline %s (descuento real %s)\n",
		formato.NullMoneda(k.PrecioPromedioPromo), formato.NullMoneda(k.PrecioPromedioBaseline), formato.NullPct(k.DescuentoRealPct))
	fmt.Fprintf(&b, "- Costo del descuento %s, venta incremental %s, beneficio neto %s\n",
		formato.Moneda(k.CostoDescuento), formato.Moneda(k.VentaIncremental), formato.Moneda(k.BeneficioNeto))
	fmt.Fprintf(&b, "- ROI %s, elasticidad %s\n",
		formato.NullNumero(k.ROI, 2), formato.NullNumero(k.Elasticidad, 2))
	fmt.Fprintf(&b, "- Cobertura de tiendas %s (%d de %d)\n",
		formato.Numero(k.CoberturaTiendas.Mul(cien), 1)+"%", k.TiendasPromo, k.TiendasBaseline)

	if len(r.Productos) > 0 {
		b.WriteString("\nProductos:\n")
		for i, p := range r.Productos {
			if i == maxProductosPrompt {
				fmt.Fprintf(&b, "- ... y %d productos más\n", len(r.Productos)-maxProductosPrompt)
				break
			}
			fmt.Fprintf(&b, "- %s: venta %s (%s), %s del total\n",
				p.Nombre, formato.Moneda(p.VentaPromo), formato.Pct(p.VentaDiferenciaPct), formato.Numero(p.ContribucionPct, 1)+"%")
		}
	}

	if can := r.Canibalizacion; can != nil {
		fmt.Fprintf(&b, "\nCanibalización: %d productos afectados, pérdida %s, impacto neto %s\n",
			can.ProductosAfectados, formato.Moneda(can.CanibalizacionTotal), formato.Moneda(can.ImpactoNeto))
	}

	if ret := r.Retencion; ret != nil {
		fmt.Fprintf(&b, "\nRetención post-promo (%d días): índice %s, calificación %s\n",
			ret.DiasAnalizados, formato.Numero(ret.IndiceRetencion, 2), ret.Calificacion)
	}

	if len(r.Insights) > 0 {
		b.WriteString("\nInsights:\n")
		for _, in := range r.Insights {
			fmt.Fprintf(&b, "- [%s] %s: %s\n", in.Tipo, in.Titulo, in.Descripcion)
		}
	}
	return b.String()
}

func describirMecanica(p promociones.Parametros) string {
	switch v := p.(type) {
	case promociones.DescuentoPorcentaje:
		return fmt.Sprintf("descuento de %s%%", formato.Numero(v.Porcentaje, 0))
	case promociones.PrecioEspecial:
		return "precio especial de " + formato.Moneda(v.Precio)
	case promociones.MulticompraNx1:
		return fmt.Sprintf("multicompra %dx%d", v.Compra, v.Lleva)
	case promociones.MulticompraNxPrecio:
		return fmt.Sprintf("%d unidades por %s", v.Cantidad, formato.Moneda(v.Precio))
	case promociones.Bundle:
		return "bundle a " + formato.Moneda(v.PrecioBundle)
	default:
		return "desconocida"
	}
}

func nombreOPorDefecto(nombre string) string {
	if nombre == "" {
		return "(sin nombre)"
	}
	return nombre
}
