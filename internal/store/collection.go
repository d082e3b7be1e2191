package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// keyPrefix es el namespace de las entradas persistidas (medecho_<entityName>).
const keyPrefix = "medecho_"

// Collection expone CRUD uniforme sobre una colección tipada respaldada por el KV.
//
// Cada operación de escritura lee el snapshot completo de la colección, lo muta
// en memoria y lo reescribe entero. Es el contrato de diseño (consistencia por
// snapshot, costo O(n) por escritura); la serialización entre writers la da el
// adapter de KV dentro del proceso. Entre procesos se tolera lost-update
// (last-writer-wins).
type Collection[T any] struct {
	kv  KV
	key string

	now   func() time.Time
	newID func() string
}

func NewCollection[T any](kv KV, entityName string) *Collection[T] {
	return &Collection[T]{
		kv:    kv,
		key:   keyPrefix + entityName,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Key retorna la clave persistida de la colección (útil para seeds y tests).
func (c *Collection[T]) Key() string { return c.key }

// WithClock fija el reloj (tests). Retorna la misma colección.
func (c *Collection[T]) WithClock(now func() time.Time) *Collection[T] {
	if now != nil {
		c.now = now
	}
	return c
}

// WithIDFunc fija el generador de ids (tests).
func (c *Collection[T]) WithIDFunc(newID func() string) *Collection[T] {
	if newID != nil {
		c.newID = newID
	}
	return c
}

// GetAll retorna todos los records en orden de inserción.
// Colección nunca escrita => slice vacío, sin error.
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	raw, err := c.readAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(raw))
	for _, m := range raw {
		v, err := decode[T](m)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorrupted, c.key, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// GetByID busca por id con scan lineal. Ausente => ErrNotFound.
func (c *Collection[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T

	raw, err := c.readAll(ctx)
	if err != nil {
		return zero, err
	}

	for _, m := range raw {
		if recordID(m) == id {
			return decode[T](m)
		}
	}
	return zero, ErrNotFound
}

// Filter retorna los records donde *todos* los campos del criterio igualan
// exactamente el campo correspondiente (igualdad estricta sobre la forma JSON,
// sin substring ni wildcard). Criterio vacío => todo.
func (c *Collection[T]) Filter(ctx context.Context, criteria map[string]any) ([]T, error) {
	want := make(map[string]any, len(criteria))
	for k, v := range criteria {
		nv, err := normalize(v)
		if err != nil {
			return nil, fmt.Errorf("%w: criteria field %q: %v", ErrInvalidInput, k, err)
		}
		want[k] = nv
	}

	raw, err := c.readAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0)
	for _, m := range raw {
		if !matches(m, want) {
			continue
		}
		v, err := decode[T](m)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorrupted, c.key, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Create asigna id y timestamps, agrega al final y persiste la colección completa.
// Los campos de sistema que traiga el input se ignoran.
func (c *Collection[T]) Create(ctx context.Context, in T) (T, error) {
	var zero T

	m, err := encode(in)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := c.now().UTC()
	m[FieldID] = c.newID()
	m[FieldCreatedDate] = now
	m[FieldUpdatedDate] = now

	raw, err := c.readAll(ctx)
	if err != nil {
		return zero, err
	}

	raw = append(raw, m)
	if err := c.writeAll(ctx, raw); err != nil {
		return zero, err
	}

	return decode[T](m)
}

// Update mergea patch sobre el record existente (patch gana en conflictos,
// salvo campos de sistema: id y created_date son inmutables, updated_date lo
// refresca la colección). Id ausente => ErrNotFound, sin escritura.
func (c *Collection[T]) Update(ctx context.Context, id string, patch map[string]any) (T, error) {
	var zero T

	raw, err := c.readAll(ctx)
	if err != nil {
		return zero, err
	}

	idx := -1
	for i, m := range raw {
		if recordID(m) == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return zero, ErrNotFound
	}

	m := raw[idx]
	for k, v := range patch {
		if k == FieldID || k == FieldCreatedDate || k == FieldUpdatedDate {
			continue
		}
		nv, err := normalize(v)
		if err != nil {
			return zero, fmt.Errorf("%w: patch field %q: %v", ErrInvalidInput, k, err)
		}
		m[k] = nv
	}
	m[FieldUpdatedDate] = c.now().UTC()
	raw[idx] = m

	if err := c.writeAll(ctx, raw); err != nil {
		return zero, err
	}
	return decode[T](m)
}

// Delete remueve por id. Retorna si hubo remoción; sin cambio => sin escritura.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	raw, err := c.readAll(ctx)
	if err != nil {
		return false, err
	}

	filtered := make([]map[string]any, 0, len(raw))
	for _, m := range raw {
		if recordID(m) == id {
			continue
		}
		filtered = append(filtered, m)
	}

	if len(filtered) == len(raw) {
		return false, nil
	}

	if err := c.writeAll(ctx, filtered); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteAll limpia el estado persistido completo de la colección.
func (c *Collection[T]) DeleteAll(ctx context.Context) error {
	return c.kv.Delete(ctx, c.key)
}

// -------------------------
// internals
// -------------------------

// readAll trabaja sobre mapas JSON (no sobre T) para que campos desconocidos
// presentes en storage sobrevivan al read-modify-write.
func (c *Collection[T]) readAll(ctx context.Context) ([]map[string]any, error) {
	b, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !ok || len(b) == 0 {
		return []map[string]any{}, nil
	}

	var items []map[string]any
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupted, c.key, err)
	}
	return items, nil
}

func (c *Collection[T]) writeAll(ctx context.Context, items []map[string]any) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return c.kv.Set(ctx, c.key, b)
}

func recordID(m map[string]any) string {
	s, _ := m[FieldID].(string)
	return s
}

func matches(m map[string]any, want map[string]any) bool {
	for k, v := range want {
		got, ok := m[k]
		if !ok {
			return false
		}
		if !reflect.DeepEqual(got, v) {
			return false
		}
	}
	return true
}

// normalize lleva un valor Go a su forma JSON (números a float64, structs a
// mapas) para que la igualdad estricta del filtro compare contra lo persistido.
func normalize(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func encode[T any](v T) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decode[T any](m map[string]any) (T, error) {
	var v T
	b, err := json.Marshal(m)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, err
	}
	return v, nil
}
