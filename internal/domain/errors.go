package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica un error de dominio. El traductor HTTP decide el status
// code según el Kind; cualquier error sin Kind se trata como Internal.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

// Error es el error de dominio etiquetado: un Kind más un mensaje apto
// para el cliente. Se construye en el punto de detección y viaja sin
// modificarse hasta el traductor HTTP.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// BadRequest construye un error de entrada inválida o invariante rota (400).
func BadRequest(format string, args ...any) error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized construye un error de credencial ausente o inválida (401).
func Unauthorized(format string, args ...any) error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// Forbidden construye un error de rol o propiedad insuficiente (403).
func Forbidden(format string, args ...any) error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// NotFound construye un error de recurso inexistente (404).
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict construye un error de clave duplicada a nivel de índice (409).
// Ocurre cuando una escritura concurrente pasó el pre-chequeo de unicidad.
func Conflict(format string, args ...any) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// KindOf devuelve el Kind de un error. Errores sin etiqueta (driver,
// codec, etc.) se clasifican como Internal y no exponen detalle al cliente.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
