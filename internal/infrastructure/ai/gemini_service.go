package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jhoicas/sellout-api/internal/application/ports"
	"github.com/jhoicas/sellout-api/internal/domain/promociones"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

// ErrRespuestaVacia el modelo no devolvió texto (bloqueo por seguridad o sin candidatos).
var ErrRespuestaVacia = errors.New("AI: Gemini devolvió respuesta vacía")

const systemPrompt = `Eres un analista de trade marketing para retail en Colombia.
Recibes los resultados ya calculados del análisis de una promoción (no recalcules nada).
Escribe en español un resumen ejecutivo para el gerente comercial:
- Un párrafo inicial con el veredicto y la cifra más relevante.
- Entre 3 y 5 viñetas con hallazgos concretos (uplift, costo del descuento, ROI, canibalización, retención).
- Una recomendación final accionable.
Usa solo las cifras entregadas, sin inventar datos. Máximo 250 palabras, sin tablas.`

// GeminiService adaptador de LLMService sobre el SDK oficial de Google Gemini.
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService abre el cliente. model suele ser "gemini-1.5-flash".
func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("AI: crear cliente Gemini: %w", err)
	}
	return &GeminiService{client: client, model: model}, nil
}

// Close libera el cliente gRPC.
func (s *GeminiService) Close() error {
	return s.client.Close()
}

// Modelo nombre del modelo configurado.
func (s *GeminiService) Modelo() string { return s.model }

// NarrarAnalisis pide al modelo el resumen ejecutivo de un resultado.
func (s *GeminiService) NarrarAnalisis(ctx context.Context, r *promociones.PromocionResultado) (string, error) {
	model := s.client.GenerativeModel(s.model)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	model.SetTemperature(0.3)
	model.SetMaxOutputTokens(1024)

	resp, err := model.GenerateContent(ctx, genai.Text(ConstruirPrompt(r)))
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: GenerateContent: %w", err)
	}
	return textoRespuesta(resp)
}

// textoRespuesta concatena las partes de texto del primer candidato.
func textoRespuesta(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrRespuestaVacia
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	texto := strings.TrimSpace(b.String())
	if texto == "" {
		return "", ErrRespuestaVacia
	}
	return texto, nil
}
