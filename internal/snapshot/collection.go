package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/common"
)

// Collection is a typed view of one snapshot: a map keyed by user identifier.
type Collection[T any] struct {
	backend Backend
	name    string
	mu      sync.Mutex
}

func NewCollection[T any](b Backend, name string) *Collection[T] {
	return &Collection[T]{backend: b, name: name}
}

func (c *Collection[T]) Name() string {
	return c.name
}

// Read returns the current snapshot. A missing snapshot reads as empty.
func (c *Collection[T]) Read(ctx context.Context) (map[string]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Update loads the snapshot, lets fn mutate it and writes it back. When fn
// returns an error nothing is written and the error is returned as is.
func (c *Collection[T]) Update(ctx context.Context, fn func(doc map[string]T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, err := c.load(ctx)
	if err != nil {
		return err
	}

	if err := fn(doc); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", common.ErrStorage, c.name, err)
	}

	if err := c.backend.Save(ctx, c.name, data); err != nil {
		return fmt.Errorf("%w: save %s: %v", common.ErrStorage, c.name, err)
	}
	return nil
}

func (c *Collection[T]) load(ctx context.Context) (map[string]T, error) {
	data, ok, err := c.backend.Load(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", common.ErrStorage, c.name, err)
	}

	doc := make(map[string]T)
	if !ok || len(data) == 0 {
		return doc, nil
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", common.ErrStorage, c.name, err)
	}
	return doc, nil
}
