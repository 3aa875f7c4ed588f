package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicateSKU        = errors.New("el SKU ya está registrado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrStockExceedsMax     = errors.New("el stock excede la capacidad máxima")
	ErrQtyExceedsPO        = errors.New("la cantidad excede lo disponible sin planificar en la orden")
	ErrStageNotAdvanceable = errors.New("la etapa no es la siguiente en la secuencia")
	ErrStageNotRevertible  = errors.New("solo la última etapa completada puede revertirse")
)
