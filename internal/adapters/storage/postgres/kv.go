package postgres

import (
	"context"
	"database/sql"
)

// KV sobre una tabla clave-valor: una fila por colección, snapshot completo
// en jsonb. Mantiene la semántica de snapshot completo (read-modify-write de
// colección entera, last-writer-wins entre procesos); no hay versionado
// optimista.
type KV struct {
	db *sql.DB
}

func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

// EnsureSchema crea la tabla si no existe. Se llama una vez al armar el router.
func (kv *KV) EnsureSchema(ctx context.Context) error {
	_, err := kv.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv_collections (
			key        text primary key,
			value      jsonb not null,
			updated_at timestamptz not null default now()
		)
	`)
	return err
}

func (kv *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	row := kv.db.QueryRowContext(ctx, `
		SELECT value FROM kv_collections WHERE key = $1
	`, key)

	var b []byte
	if err := row.Scan(&b); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (kv *KV) Set(ctx context.Context, key string, value []byte) error {
	_, err := kv.db.ExecContext(ctx, `
		INSERT INTO kv_collections (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()
	`, key, value)
	return err
}

func (kv *KV) Delete(ctx context.Context, key string) error {
	_, err := kv.db.ExecContext(ctx, `
		DELETE FROM kv_collections WHERE key = $1
	`, key)
	return err
}
