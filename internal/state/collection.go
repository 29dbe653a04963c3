package state

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"workstudy/internal/logger"
	"workstudy/internal/store"
)

// Collection is one canonical entity list and its persisted mirror.
// Every mutation replaces the whole list and writes it through immediately.
type Collection[T any] struct {
	mu     sync.Mutex
	key    string
	items  []T
	kv     store.KV
	logger *slog.Logger
}

func newCollection[T any](ctx context.Context, kv store.KV, log *slog.Logger, key string, fallback []T) *Collection[T] {
	return &Collection[T]{
		key:    key,
		items:  load(ctx, kv, log, key, fallback),
		kv:     kv,
		logger: log,
	}
}

// All returns a copy of the collection in canonical order.
func (c *Collection[T]) All() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// Len returns the number of items.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Set replaces the collection with next and persists it.
func (c *Collection[T]) Set(ctx context.Context, next []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replace(ctx, slices.Clone(next))
}

// Update runs fn over a copy of the current items under the collection lock.
// When fn reports a change its result becomes the new collection and is
// persisted; otherwise memory and storage are left untouched.
func (c *Collection[T]) Update(ctx context.Context, fn func(items []T) ([]T, bool)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, changed := fn(slices.Clone(c.items))
	if !changed {
		return false
	}
	c.replace(ctx, next)
	return true
}

func (c *Collection[T]) replace(ctx context.Context, next []T) {
	if next == nil {
		next = []T{}
	}
	c.items = next
	save(ctx, c.kv, c.logger, c.key, next)
}

// load reads the record under key. A missing, unreadable or undecodable
// record yields a copy of fallback.
func load[T any](ctx context.Context, kv store.KV, log *slog.Logger, key string, fallback []T) []T {
	l := logger.FromContext(ctx, log).With("key", key)

	data, err := kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			l.Warn("failed to read record, using defaults", "error", err)
		}
		return slices.Clone(fallback)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		l.Warn("corrupt record, using defaults", "error", err)
		return slices.Clone(fallback)
	}
	if items == nil {
		l.Warn("empty record payload, using defaults")
		return slices.Clone(fallback)
	}
	return items
}

// save mirrors value under key. Failures are logged and dropped: memory stays
// authoritative for the running process.
func save(ctx context.Context, kv store.KV, log *slog.Logger, key string, value any) {
	l := logger.FromContext(ctx, log).With("key", key)

	data, err := json.Marshal(value)
	if err != nil {
		l.Warn("failed to encode record", "error", err)
		return
	}
	if err := kv.Put(ctx, key, data); err != nil {
		l.Warn("failed to persist record", "error", err)
	}
}
