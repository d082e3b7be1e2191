package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound: el id no existe en la colección. Resultado normal, no excepcional.
	ErrNotFound = errors.New("not found")

	// ErrCorrupted: los bytes persistidos de la colección no parsean.
	// Falla fuerte y aislada por colección (una colección corrupta no tumba las demás).
	ErrCorrupted = errors.New("collection data corrupted")

	// ErrInvalidInput: criterio o patch con forma inválida (no serializable a JSON).
	ErrInvalidInput = errors.New("invalid input")
)

// KV es el espacio clave-valor persistido que respalda todas las colecciones.
// Una entrada por colección; el valor es la secuencia completa serializada.
type KV interface {
	// Get retorna (nil, false, nil) si la clave nunca fue escrita.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
