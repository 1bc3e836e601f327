package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sellout-api/internal/application/analytics"
	"github.com/jhoicas/sellout-api/internal/application/dto"
	"github.com/jhoicas/sellout-api/pkg/logger"
)

// VentasHandler maneja los endpoints de lectura del dashboard de sell-out.
type VentasHandler struct {
	uc  *analytics.ResumenUseCase
	log *logger.Logger
}

// NewVentasHandler construye el handler.
func NewVentasHandler(uc *analytics.ResumenUseCase, log *logger.Logger) *VentasHandler {
	return &VentasHandler{uc: uc, log: log}
}

// GetResumen godoc
// @Summary      Resumen de sell-out del período
// @Description  KPIs de cabecera, ranking de productos con curva de Pareto (80/20) y serie diaria.
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        desde       query  string    false  "Inicio del período (YYYY-MM-DD). Default: primer día del mes."
// @Param        hasta       query  string    false  "Fin del período (YYYY-MM-DD). Default: hoy."
// @Param        top         query  int       false  "Máx. productos en el ranking (default 20, max 200)."
// @Param        categoria   query  string    false  "Filtrar por categoría"
// @Param        ciudades    query  []string  false  "Filtrar por ciudades"  collectionFormat(multi)
// @Param        tienda_ids  query  []string  false  "Filtrar por tiendas"   collectionFormat(multi)
// @Success      200  {object}  dto.ResumenVentasDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ventas/resumen [get]
func (h *VentasHandler) GetResumen(c *fiber.Ctx) error {
	var req dto.ResumenVentasRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	resumen, err := h.uc.GetResumen(c.UserContext(), GetTenantID(c), req)
	if err != nil {
		return responderError(c, h.log, err)
	}
	return c.JSON(resumen)
}
