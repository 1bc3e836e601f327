package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound                 = errors.New("recurso no encontrado")
	ErrInvalidInput             = errors.New("entrada inválida")
	ErrUnauthorized             = errors.New("no autorizado")
	ErrForbidden                = errors.New("acceso denegado")
	ErrConfigPromocionInvalida  = errors.New("configuración de promoción inválida")
	ErrTipoPromocionDesconocido = errors.New("tipo de promoción desconocido")
	ErrServicioNoDisponible     = errors.New("servicio externo no disponible")
)
