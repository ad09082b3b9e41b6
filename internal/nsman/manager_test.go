package nsman

import (
	"context"
	"errors"
	"sync"
	"testing"

	"golang.org/x/sys/unix"
)

// fakeBackend records created namespaces and can be told to fail.
type fakeBackend struct {
	mu      sync.Mutex
	live    map[string]bool
	failErr error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{live: make(map[string]bool)}
}

func (f *fakeBackend) Create(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return f.failErr
	}
	f.live[name] = true
	return nil
}

func (f *fakeBackend) Delete(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.live, name)
	return nil
}

func (f *fakeBackend) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.live)
}

func TestProvisionTeardownRoundTrip(t *testing.T) {
	backend := newFakeBackend()
	m := New(backend, nil)
	ctx := context.Background()

	handle, err := m.Provision(ctx, "node-a")
	if err != nil {
		t.Fatalf("Provision() error = %v", err)
	}
	if handle == "" {
		t.Fatal("Provision() returned empty handle")
	}
	if backend.count() != 1 || m.Count() != 1 {
		t.Fatalf("expected 1 namespace, backend=%d manager=%d", backend.count(), m.Count())
	}
	if name := m.Resolve(handle); name == "" {
		t.Fatal("Resolve() returned empty name for live handle")
	}

	if err := m.Teardown(ctx, handle); err != nil {
		t.Fatalf("Teardown() error = %v", err)
	}
	if backend.count() != 0 {
		t.Fatalf("namespace leaked after teardown: %d live", backend.count())
	}
}

func TestTeardownIdempotent(t *testing.T) {
	m := New(newFakeBackend(), nil)
	ctx := context.Background()

	handle, err := m.Provision(ctx, "node-a")
	if err != nil {
		t.Fatalf("Provision() error = %v", err)
	}
	if err := m.Teardown(ctx, handle); err != nil {
		t.Fatalf("first Teardown() error = %v", err)
	}
	if err := m.Teardown(ctx, handle); err != nil {
		t.Fatalf("second Teardown() error = %v", err)
	}
	if err := m.Teardown(ctx, "never-existed"); err != nil {
		t.Fatalf("Teardown of unknown handle error = %v", err)
	}
}

func TestProvisionFailureLeavesNothingBehind(t *testing.T) {
	backend := newFakeBackend()
	backend.failErr = errors.New("mount: permission denied")
	m := New(backend, nil)

	_, err := m.Provision(context.Background(), "node-a")
	if !errors.Is(err, ErrProvisionFailed) {
		t.Fatalf("Provision() error = %v, want ErrProvisionFailed", err)
	}
	if m.Count() != 0 {
		t.Fatalf("handle leaked after failed provision: %d", m.Count())
	}
}

func TestExhaustionClassification(t *testing.T) {
	backend := newFakeBackend()
	backend.failErr = unix.EMFILE
	m := New(backend, nil)

	_, err := m.Provision(context.Background(), "node-a")
	if !errors.Is(err, ErrResourceExhausted) {
		t.Fatalf("Provision() error = %v, want ErrResourceExhausted", err)
	}
}

func TestProvisionLimit(t *testing.T) {
	m := New(newFakeBackend(), nil, WithLimit(2))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := m.Provision(ctx, "node"); err != nil {
			t.Fatalf("Provision %d error = %v", i, err)
		}
	}
	_, err := m.Provision(ctx, "node")
	if !errors.Is(err, ErrResourceExhausted) {
		t.Fatalf("over-limit Provision error = %v, want ErrResourceExhausted", err)
	}
}

func TestHandlesNeverReused(t *testing.T) {
	m := New(newFakeBackend(), nil)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		h, err := m.Provision(ctx, "node")
		if err != nil {
			t.Fatalf("Provision() error = %v", err)
		}
		if seen[h] {
			t.Fatalf("handle %q reused", h)
		}
		seen[h] = true
		if err := m.Teardown(ctx, h); err != nil {
			t.Fatalf("Teardown() error = %v", err)
		}
	}
}
