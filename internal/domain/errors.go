package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrItemNotFound       = errors.New("ítem no encontrado")
	ErrInvalidQuantity    = errors.New("cantidad inválida")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicateSKU       = errors.New("sku duplicado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
