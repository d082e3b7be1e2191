// Package localfile persiste cada colección en un archivo JSON propio:
// una entrada por clave, texto estructurado, sin esquema.
package localfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type KV struct {
	mu  sync.Mutex
	dir string
}

// NewKV crea el directorio si no existe.
func NewKV(dir string) (*KV, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("localfile: dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localfile: mkdir %s: %w", dir, err)
	}
	return &KV{dir: dir}, nil
}

func (kv *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	b, err := os.ReadFile(kv.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("localfile: read %s: %w", key, err)
	}
	return b, true, nil
}

// Set escribe a un temporal y renombra, para no dejar una colección a medio
// escribir si el proceso muere en medio del write.
func (kv *KV) Set(ctx context.Context, key string, value []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	target := kv.path(key)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("localfile: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("localfile: rename %s: %w", key, err)
	}
	return nil
}

func (kv *KV) Delete(ctx context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	if err := os.Remove(kv.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("localfile: remove %s: %w", key, err)
	}
	return nil
}

func (kv *KV) path(key string) string {
	// las claves vienen del namespace interno (medecho_*), no del usuario
	return filepath.Join(kv.dir, key+".json")
}
