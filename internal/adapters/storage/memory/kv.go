package memory

import (
	"context"
	"sync"
)

// KV in-memory para dev y tests. Serializa writers con el mutex, así dentro
// del proceso no hay lost-update; el contrato de snapshot completo por
// operación lo impone la colección, no este adapter.
type KV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewKV() *KV {
	return &KV{data: make(map[string][]byte)}
}

func (kv *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	b, ok := kv.data[key]
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(b))
	copy(out, b)
	return out, true, nil
}

func (kv *KV) Set(ctx context.Context, key string, value []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	b := make([]byte, len(value))
	copy(b, value)
	kv.data[key] = b
	return nil
}

func (kv *KV) Delete(ctx context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	delete(kv.data, key)
	return nil
}
