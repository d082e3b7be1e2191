package store

import "time"

// Campos de sistema, asignados siempre por la colección (nunca por el caller).
const (
	FieldID          = "id"
	FieldCreatedDate = "created_date"
	FieldUpdatedDate = "updated_date"
)

// Meta son los campos comunes de todo record persistido.
// Se embebe en cada modelo de dominio; los tags JSON son el formato de wire
// y también el formato persistido (texto estructurado, sin versionado).
type Meta struct {
	ID          string    `json:"id"`
	CreatedDate time.Time `json:"created_date"`
	UpdatedDate time.Time `json:"updated_date"`
}
