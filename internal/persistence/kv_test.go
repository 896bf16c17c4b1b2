package persistence

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

type brokenKV struct {
	setErr    error
	removeErr error
	sets      int
}

func (b *brokenKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("unreachable")
}

func (b *brokenKV) Set(context.Context, string, string) error {
	b.sets++
	return b.setErr
}

func (b *brokenKV) Remove(context.Context, string) error {
	return b.removeErr
}

func TestMemoryKV(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	if _, found, _ := kv.Get(ctx, "missing"); found {
		t.Fatal("empty store reported a value")
	}

	if err := kv.Set(ctx, "k", "v1"); err != nil {
		t.Fatal(err)
	}
	if err := kv.Set(ctx, "k", "v2"); err != nil {
		t.Fatal(err)
	}
	v, found, err := kv.Get(ctx, "k")
	if err != nil || !found || v != "v2" {
		t.Fatalf("Get = (%q, %v, %v), want (v2, true, nil)", v, found, err)
	}

	if err := kv.Remove(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := kv.Get(ctx, "k"); found {
		t.Fatal("value survived Remove")
	}

	// Removing a missing key is not an error.
	if err := kv.Remove(ctx, "k"); err != nil {
		t.Fatal(err)
	}
}

func TestAdapterUsesHealthyBacking(t *testing.T) {
	ctx := context.Background()
	backing := NewMemoryKV()

	adapter := NewAdapter(ctx, backing, zap.NewNop())
	if adapter.Degraded() {
		t.Fatal("healthy backing reported degraded")
	}

	// The probe key must not linger.
	if _, found, _ := backing.Get(ctx, probeKey); found {
		t.Fatal("probe key left behind")
	}

	if err := adapter.Set(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}
	if v, found, _ := backing.Get(ctx, "k"); !found || v != "v" {
		t.Fatal("write did not reach the backing store")
	}
}

func TestAdapterFallsBackWhenProbeFails(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		backing *brokenKV
	}{
		{name: "set fails", backing: &brokenKV{setErr: errors.New("down")}},
		{name: "remove fails", backing: &brokenKV{removeErr: errors.New("down")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewAdapter(ctx, tt.backing, zap.NewNop())
			if !adapter.Degraded() {
				t.Fatal("failed probe did not degrade the adapter")
			}

			setsAfterProbe := tt.backing.sets

			// Degraded adapters serve from memory and never retry the backing
			// store.
			if err := adapter.Set(ctx, "k", "v"); err != nil {
				t.Fatalf("in-memory Set failed: %v", err)
			}
			if v, found, err := adapter.Get(ctx, "k"); err != nil || !found || v != "v" {
				t.Fatalf("in-memory Get = (%q, %v, %v)", v, found, err)
			}
			if tt.backing.sets != setsAfterProbe {
				t.Fatal("degraded adapter wrote to the backing store")
			}
		})
	}
}

func TestAdapterNilBackingStartsDegraded(t *testing.T) {
	ctx := context.Background()
	adapter := NewAdapter(ctx, nil, zap.NewNop())
	if !adapter.Degraded() {
		t.Fatal("nil backing should start degraded")
	}
	if err := adapter.Set(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}
	if v, found, _ := adapter.Get(ctx, "k"); !found || v != "v" {
		t.Fatal("fallback store not serving")
	}
}
