package ports

import (
	"context"
	"time"

	"github.com/jhoicas/sellout-api/internal/domain/promociones"
)

// ResultadoCache almacena resultados de análisis ya calculados. Un fallo de la
// caché nunca debe impedir el análisis.
type ResultadoCache interface {
	// Get devuelve (nil, false, nil) si la clave no existe.
	Get(ctx context.Context, key string) (*promociones.PromocionResultado, bool, error)
	Set(ctx context.Context, key string, r *promociones.PromocionResultado, ttl time.Duration) error
}

// ReportePDF genera el informe imprimible de un análisis.
type ReportePDF interface {
	GenerarReporte(ctx context.Context, analisisID string, r *promociones.PromocionResultado) ([]byte, error)
}
