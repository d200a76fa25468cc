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
	ErrPendingApproval    = errors.New("cuenta pendiente de aprobación")
	ErrRejected           = errors.New("cuenta rechazada")
	ErrAlreadyCompleted   = errors.New("la tarea ya está completada")
	ErrNotAssignee        = errors.New("solo el asignado puede completar la tarea")
	ErrInvalidCEOCode     = errors.New("código de registro de CEO inválido")
)
