package promociones

// Analizador ejecuta el pipeline completo con una tabla de umbrales fija.
type Analizador struct {
	umbrales Umbrales
}

// NuevoAnalizador construye un analizador con los umbrales dados.
func NuevoAnalizador(u Umbrales) *Analizador {
	return &Analizador{umbrales: u}
}

// Analizar corre KPIs → productos → canibalización (si hay hermanos) →
// retención (si hay post-promo) → insights → veredicto.
//
// hermanos == nil significa "sin datos de canibalización"; un slice vacío sí se
// analiza (cero productos afectados). Una configuración inválida devuelve error
// y ningún resultado parcial.
func (a *Analizador) Analizar(
	cfg PromocionConfig,
	promo, baseline VentasPeriodo,
	postPromo *VentasPeriodo,
	hermanos []ProductoHermano,
) (*PromocionResultado, error) {
	if err := cfg.Validar(); err != nil {
		return nil, err
	}

	kpis, err := CalcularKpis(cfg, promo, baseline)
	if err != nil {
		return nil, err
	}
	productos := AnalizarProductos(promo, baseline)

	var canib *CanibalizacionAnalisis
	if hermanos != nil {
		canib = AnalizarCanibalizacion(hermanos, kpis.VentaDiferencia, a.umbrales)
	}
	retencion := AnalizarRetencion(promo, baseline, postPromo, cfg.DiasPostPromo, a.umbrales)

	insights := GenerarInsights(kpis, canib, retencion, a.umbrales)

	return &PromocionResultado{
		Config:         cfg,
		Kpis:           kpis,
		Productos:      productos,
		Canibalizacion: canib,
		Retencion:      retencion,
		Insights:       insights,
		Veredicto:      Evaluar(kpis, insights, a.umbrales),
	}, nil
}

// AnalizarPromocion atajo con UmbralesPorDefecto.
func AnalizarPromocion(
	cfg PromocionConfig,
	promo, baseline VentasPeriodo,
	postPromo *VentasPeriodo,
	hermanos []ProductoHermano,
) (*PromocionResultado, error) {
	return NuevoAnalizador(UmbralesPorDefecto()).Analizar(cfg, promo, baseline, postPromo, hermanos)
}
