package persistence

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// KV is the key-value contract the roster persists through. Get reports
// found=false for missing keys rather than an error.
type KV interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// MemoryKV is a process-lifetime map store. It backs the degraded mode of
// the Adapter and the tests.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Adapter fronts a durable backing store and degrades to memory when the
// store is unavailable. The probe runs once at construction; a failed probe
// makes the fallback permanent for the process lifetime, there is no retry.
type Adapter struct {
	backing  KV
	fallback *MemoryKV
	degraded bool
	logger   *zap.Logger
}

const probeKey = "__storage_probe__"

// NewAdapter probes the backing store with a throwaway write/delete and
// returns an adapter bound to it, or to the in-memory fallback when the
// probe fails. A nil backing store skips the probe and starts degraded.
func NewAdapter(ctx context.Context, backing KV, logger *zap.Logger) *Adapter {
	a := &Adapter{backing: backing, fallback: NewMemoryKV(), logger: logger}

	if backing == nil {
		a.degraded = true
		logger.Warn("no durable store configured; changes will not survive restarts")
		return a
	}

	if err := backing.Set(ctx, probeKey, "probe"); err != nil {
		a.degraded = true
		logger.Warn("durable store unavailable, using memory storage", zap.Error(err))
		return a
	}
	if err := backing.Remove(ctx, probeKey); err != nil {
		a.degraded = true
		logger.Warn("durable store unavailable, using memory storage", zap.Error(err))
		return a
	}

	return a
}

// Degraded reports whether the adapter fell back to memory at startup.
func (a *Adapter) Degraded() bool {
	return a.degraded
}

func (a *Adapter) store() KV {
	if a.degraded {
		return a.fallback
	}
	return a.backing
}

func (a *Adapter) Get(ctx context.Context, key string) (string, bool, error) {
	return a.store().Get(ctx, key)
}

func (a *Adapter) Set(ctx context.Context, key, value string) error {
	return a.store().Set(ctx, key, value)
}

func (a *Adapter) Remove(ctx context.Context, key string) error {
	return a.store().Remove(ctx, key)
}
