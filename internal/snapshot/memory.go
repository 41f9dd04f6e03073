package snapshot

import (
	"context"
	"sync"
)

// MemoryBackend keeps snapshots in process memory. Nothing survives a restart.
type MemoryBackend struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (b *MemoryBackend) Load(_ context.Context, collection string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.data[collection]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (b *MemoryBackend) Save(_ context.Context, collection string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[collection] = append([]byte(nil), data...)
	return nil
}

func (b *MemoryBackend) Close() error {
	return nil
}
