// Package analisis orquesta el análisis de impacto de promociones: trae las
// ventanas de ventas del data warehouse, ejecuta el motor puro y publica el
// resultado (JSON, narrativa IA o PDF).
package analisis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/sellout-api/internal/application/dto"
	"github.com/jhoicas/sellout-api/internal/application/ports"
	"github.com/jhoicas/sellout-api/internal/domain"
	"github.com/jhoicas/sellout-api/internal/domain/promociones"
	"github.com/jhoicas/sellout-api/internal/domain/repository"
	"github.com/jhoicas/sellout-api/pkg/logger"
	"github.com/jhoicas/sellout-api/pkg/validator"
)

const narrativaTimeout = 30 * time.Second

// Deps dependencias del caso de uso. Cache, LLM y PDF son opcionales.
type Deps struct {
	Ventas     repository.VentasRepository
	Analizador *promociones.Analizador
	Cache      ports.ResultadoCache
	CacheTTL   time.Duration
	LLM        ports.LLMService
	PDF        ports.ReportePDF
	Logger     *logger.Logger
}

// AnalisisUseCase caso de uso de análisis de promociones.
type AnalisisUseCase struct {
	deps    Deps
	log     *logger.Logger
	nuevoID func() string
}

// NewAnalisisUseCase construye el caso de uso. Sin Analizador usa los umbrales por defecto.
func NewAnalisisUseCase(deps Deps) *AnalisisUseCase {
	if deps.Analizador == nil {
		deps.Analizador = promociones.NuevoAnalizador(promociones.UmbralesPorDefecto())
	}
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &AnalisisUseCase{
		deps:    deps,
		log:     log.Component("analisis"),
		nuevoID: func() string { return uuid.NewString() },
	}
}

// Analizar valida la solicitud, consulta las ventanas en paralelo y ejecuta el motor.
//
// Errores: domain.ErrInvalidInput (solicitud mal formada), domain.ErrConfigPromocionInvalida
// o domain.ErrTipoPromocionDesconocido (reglas de la promoción), cualquier otro es interno.
func (uc *AnalisisUseCase) Analizar(
	ctx context.Context,
	tenantID string,
	req dto.AnalisisPromocionRequest,
) (*dto.AnalisisPromocionResponse, error) {
	if tenantID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	cfg, err := req.ToConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validar(); err != nil {
		return nil, err
	}

	analisisID := uc.nuevoID()
	key := cacheKey(tenantID, req)

	if res, ok := uc.leerCache(ctx, key); ok {
		uc.log.Info().Str("analisis_id", analisisID).Str("tenant_id", tenantID).Msg("análisis servido desde caché")
		return &dto.AnalisisPromocionResponse{AnalisisID: analisisID, DesdeCache: true, Resultado: res}, nil
	}

	inicio := time.Now()
	res, err := uc.ejecutar(ctx, tenantID, cfg, req.IncluirPostPromo, req.IncluirCanibalizacion)
	if err != nil {
		return nil, err
	}
	analisisDuracion.WithLabelValues(string(cfg.Tipo)).Observe(time.Since(inicio).Seconds())
	analisisTotal.WithLabelValues(string(cfg.Tipo), string(res.Veredicto)).Inc()

	uc.escribirCache(ctx, key, res)

	uc.log.Info().
		Str("analisis_id", analisisID).
		Str("tenant_id", tenantID).
		Str("tipo", string(cfg.Tipo)).
		Str("veredicto", string(res.Veredicto)).
		Dur("duracion", time.Since(inicio)).
		Msg("análisis de promoción completado")

	return &dto.AnalisisPromocionResponse{AnalisisID: analisisID, Resultado: res}, nil
}

// ejecutar lanza las consultas independientes en paralelo y corre el motor.
func (uc *AnalisisUseCase) ejecutar(
	ctx context.Context,
	tenantID string,
	cfg promociones.PromocionConfig,
	conPostPromo, conCanibalizacion bool,
) (*promociones.PromocionResultado, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type ventasResult struct {
		periodo *promociones.VentasPeriodo
		err     error
	}
	type hermanosResult struct {
		hermanos []promociones.ProductoHermano
		err      error
	}

	filtro := func(desde, hasta time.Time) repository.FiltroVentas {
		return repository.FiltroVentas{
			TenantID:    tenantID,
			Desde:       desde,
			Hasta:       hasta,
			ProductoIDs: cfg.ProductoIDs,
			TiendaIDs:   cfg.TiendaIDs,
			Ciudades:    cfg.Ciudades,
			Categoria:   cfg.Categoria,
		}
	}

	promoCh := make(chan ventasResult, 1)
	baseCh := make(chan ventasResult, 1)
	postCh := make(chan ventasResult, 1)
	hermCh := make(chan hermanosResult, 1)

	go func() {
		p, err := uc.deps.Ventas.GetVentasPeriodo(ctx, filtro(cfg.FechaInicioPromo, cfg.FechaFinPromo))
		promoCh <- ventasResult{p, err}
	}()
	go func() {
		p, err := uc.deps.Ventas.GetVentasPeriodo(ctx, filtro(cfg.FechaInicioBaseline, cfg.FechaFinBaseline))
		baseCh <- ventasResult{p, err}
	}()
	if conPostPromo {
		desde, hasta := VentanaPostPromo(cfg)
		go func() {
			p, err := uc.deps.Ventas.GetVentasPeriodo(ctx, filtro(desde, hasta))
			postCh <- ventasResult{p, err}
		}()
	} else {
		postCh <- ventasResult{}
	}
	if conCanibalizacion {
		go func() {
			h, err := uc.deps.Ventas.GetProductosHermanos(ctx, repository.FiltroHermanos{
				TenantID:           tenantID,
				Categoria:          cfg.Categoria,
				ExcluirProductoIDs: cfg.ProductoIDs,
				TiendaIDs:          cfg.TiendaIDs,
				Ciudades:           cfg.Ciudades,
				InicioPromo:        cfg.FechaInicioPromo,
				FinPromo:           cfg.FechaFinPromo,
				InicioBaseline:     cfg.FechaInicioBaseline,
				FinBaseline:        cfg.FechaFinBaseline,
			})
			hermCh <- hermanosResult{h, err}
		}()
	} else {
		hermCh <- hermanosResult{}
	}

	promo := <-promoCh
	base := <-baseCh
	post := <-postCh
	herm := <-hermCh

	if promo.err != nil {
		return nil, fmt.Errorf("analisis: ventas promo: %w", promo.err)
	}
	if base.err != nil {
		return nil, fmt.Errorf("analisis: ventas baseline: %w", base.err)
	}
	if post.err != nil {
		return nil, fmt.Errorf("analisis: ventas post-promo: %w", post.err)
	}
	if herm.err != nil {
		return nil, fmt.Errorf("analisis: productos hermanos: %w", herm.err)
	}

	hermanos := herm.hermanos
	if conCanibalizacion && hermanos == nil {
		hermanos = []promociones.ProductoHermano{}
	}

	return uc.deps.Analizador.Analizar(cfg, deref(promo.periodo), deref(base.periodo), post.periodo, hermanos)
}

// Narrar ejecuta el análisis y pide al LLM un resumen ejecutivo.
func (uc *AnalisisUseCase) Narrar(
	ctx context.Context,
	tenantID string,
	req dto.AnalisisPromocionRequest,
) (*dto.NarrativaResponse, error) {
	if uc.deps.LLM == nil {
		return nil, fmt.Errorf("%w: narrativa IA no configurada", domain.ErrServicioNoDisponible)
	}
	resp, err := uc.Analizar(ctx, tenantID, req)
	if err != nil {
		return nil, err
	}

	llmCtx, cancel := context.WithTimeout(ctx, narrativaTimeout)
	defer cancel()

	texto, err := uc.deps.LLM.NarrarAnalisis(llmCtx, resp.Resultado)
	if err != nil {
		uc.log.Warn().Err(err).Str("analisis_id", resp.AnalisisID).Msg("narrativa IA falló")
		return nil, fmt.Errorf("%w: %w", domain.ErrServicioNoDisponible, err)
	}
	return &dto.NarrativaResponse{
		AnalisisID: resp.AnalisisID,
		Veredicto:  string(resp.Resultado.Veredicto),
		Narrativa:  texto,
		Modelo:     uc.deps.LLM.Modelo(),
	}, nil
}

// ExportarPDF ejecuta el análisis y genera el informe PDF.
func (uc *AnalisisUseCase) ExportarPDF(
	ctx context.Context,
	tenantID string,
	req dto.AnalisisPromocionRequest,
) (pdf []byte, analisisID string, err error) {
	if uc.deps.PDF == nil {
		return nil, "", fmt.Errorf("%w: generador PDF no configurado", domain.ErrServicioNoDisponible)
	}
	resp, err := uc.Analizar(ctx, tenantID, req)
	if err != nil {
		return nil, "", err
	}
	pdf, err = uc.deps.PDF.GenerarReporte(ctx, resp.AnalisisID, resp.Resultado)
	if err != nil {
		return nil, "", fmt.Errorf("analisis: generar PDF: %w", err)
	}
	return pdf, resp.AnalisisID, nil
}

// VentanaPostPromo días FinPromo+1 .. FinPromo+DiasPostPromo, inclusivos.
func VentanaPostPromo(cfg promociones.PromocionConfig) (desde, hasta time.Time) {
	return cfg.FechaFinPromo.AddDate(0, 0, 1), cfg.FechaFinPromo.AddDate(0, 0, cfg.DiasPostPromo)
}

func (uc *AnalisisUseCase) leerCache(ctx context.Context, key string) (*promociones.PromocionResultado, bool) {
	if uc.deps.Cache == nil {
		return nil, false
	}
	res, ok, err := uc.deps.Cache.Get(ctx, key)
	switch {
	case err != nil:
		cacheConsultas.WithLabelValues("error").Inc()
		uc.log.Warn().Err(err).Msg("caché de análisis no disponible")
		return nil, false
	case !ok:
		cacheConsultas.WithLabelValues("miss").Inc()
		return nil, false
	default:
		cacheConsultas.WithLabelValues("hit").Inc()
		return res, true
	}
}

func (uc *AnalisisUseCase) escribirCache(ctx context.Context, key string, res *promociones.PromocionResultado) {
	if uc.deps.Cache == nil {
		return
	}
	if err := uc.deps.Cache.Set(ctx, key, res, uc.deps.CacheTTL); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo guardar el análisis en caché")
	}
}

// cacheKey promo:analisis:<tenant>:<sha256 de la solicitud>.
func cacheKey(tenantID string, req dto.AnalisisPromocionRequest) string {
	raw, err := json.Marshal(req)
	if err != nil {
		raw = []byte(fmt.Sprintf("%+v", req))
	}
	sum := sha256.Sum256(raw)
	return "promo:analisis:" + tenantID + ":" + hex.EncodeToString(sum[:])
}

func deref(p *promociones.VentasPeriodo) promociones.VentasPeriodo {
	if p == nil {
		return promociones.VentasPeriodo{}
	}
	return *p
}
