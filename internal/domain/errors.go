package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Flujo de aprobación.
	ErrRulesNotConfigured = errors.New("reglas de aprobación no configuradas")
	ErrNoApprovers        = errors.New("no hay aprobadores configurados")
	ErrNotCurrentApprover = errors.New("no es el aprobador actual")
	ErrExpenseFinalized   = errors.New("el gasto ya fue finalizado")
	ErrCommentRequired    = errors.New("el comentario de rechazo es requerido")

	// Colaboradores externos (degradación, no fallo de request).
	ErrConversionDegraded = errors.New("conversión de divisa degradada")
	ErrOCRFailed          = errors.New("extracción OCR fallida")
	ErrUnknownCountry     = errors.New("país desconocido")
)
