package ports

import (
	"context"

	"github.com/jhoicas/sellout-api/internal/domain/promociones"
)

// LLMService puerto de salida hacia un modelo de lenguaje. La aplicación solo
// conoce este contrato; el adaptador concreto (Gemini) vive en infrastructure/ai.
type LLMService interface {
	// NarrarAnalisis redacta un resumen ejecutivo en español del resultado.
	// El contexto debe llevar timeout: es una llamada de red externa.
	NarrarAnalisis(ctx context.Context, r *promociones.PromocionResultado) (string, error)

	// Modelo nombre del modelo usado, para trazabilidad en la respuesta.
	Modelo() string
}
