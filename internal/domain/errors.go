package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Nota: "datos insuficientes para la previsión" NO es un error de dominio;
// es un resultado de negocio que el caller debe manejar como valor
// (ver forecasting.Outcome). Aquí solo viven las fallas reales.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
