package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sellout-api/internal/application/analisis"
	"github.com/jhoicas/sellout-api/internal/application/dto"
	"github.com/jhoicas/sellout-api/pkg/logger"
)

// PromocionHandler maneja los endpoints de análisis de promociones.
type PromocionHandler struct {
	uc  *analisis.AnalisisUseCase
	log *logger.Logger
}

// NewPromocionHandler construye el handler.
func NewPromocionHandler(uc *analisis.AnalisisUseCase, log *logger.Logger) *PromocionHandler {
	return &PromocionHandler{uc: uc, log: log}
}

// Analizar godoc
// @Summary      Análisis de impacto de una promoción
// @Description  Compara la ventana de la promoción contra el baseline y, opcionalmente, mide
// @Description  canibalización en la categoría y retención post-promo. Devuelve KPIs, detalle
// @Description  por producto, insights y un veredicto.
// @Tags         promociones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AnalisisPromocionRequest  true  "Configuración de la promoción"
// @Success      200   {object}  dto.AnalisisPromocionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/promociones/analisis [post]
func (h *PromocionHandler) Analizar(c *fiber.Ctx) error {
	var req dto.AnalisisPromocionRequest
	if err := c.BodyParser(&req); err != nil {
		return cuerpoInvalido(c)
	}
	resp, err := h.uc.Analizar(c.UserContext(), GetTenantID(c), req)
	if err != nil {
		return responderError(c, h.log, err)
	}
	return c.JSON(resp)
}

// Narrativa godoc
// @Summary      Resumen ejecutivo del análisis generado por IA
// @Description  Ejecuta el análisis y pide al modelo de lenguaje un resumen en español.
// @Tags         promociones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AnalisisPromocionRequest  true  "Configuración de la promoción"
// @Success      200   {object}  dto.NarrativaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/promociones/analisis/narrativa [post]
func (h *PromocionHandler) Narrativa(c *fiber.Ctx) error {
	var req dto.AnalisisPromocionRequest
	if err := c.BodyParser(&req); err != nil {
		return cuerpoInvalido(c)
	}
	resp, err := h.uc.Narrar(c.UserContext(), GetTenantID(c), req)
	if err != nil {
		return responderError(c, h.log, err)
	}
	return c.JSON(resp)
}

// PDF godoc
// @Summary      Informe PDF del análisis
// @Tags         promociones
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.AnalisisPromocionRequest  true  "Configuración de la promoción"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/promociones/analisis/pdf [post]
func (h *PromocionHandler) PDF(c *fiber.Ctx) error {
	var req dto.AnalisisPromocionRequest
	if err := c.BodyParser(&req); err != nil {
		return cuerpoInvalido(c)
	}
	pdf, analisisID, err := h.uc.ExportarPDF(c.UserContext(), GetTenantID(c), req)
	if err != nil {
		return responderError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="analisis-`+analisisID+`.pdf"`)
	c.Set("X-Analisis-ID", analisisID)
	return c.Send(pdf)
}

func cuerpoInvalido(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_BODY", Message: "cuerpo JSON inválido",
	})
}
