// Package nsman provisions and tears down the isolated network namespaces
// backing emulated nodes.
package nsman

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/packetforge/netemd/internal/logging"
	"golang.org/x/sys/unix"
)

var (
	// ErrResourceExhausted indicates the host cannot allocate another
	// isolated context.
	ErrResourceExhausted = errors.New("namespace resources exhausted")
	// ErrProvisionFailed indicates an OS-level error during provisioning.
	// No partial resources are left behind when it is returned.
	ErrProvisionFailed = errors.New("namespace provisioning failed")
)

// Backend abstracts the OS namespace primitive so the manager can be tested
// without privileges. Create must be all-or-nothing; Delete must succeed for
// an already-absent name.
type Backend interface {
	Create(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
}

// Manager owns the arena of namespace handles. Callers communicate in
// opaque handles only; the OS-level name is resolved internally and never
// passed around.
type Manager struct {
	mu      sync.Mutex
	byID    map[string]string // handle -> namespace name
	backend Backend

	prefix   string
	maxSpace int
	log      logging.Logger
}

// Option customises Manager construction.
type Option func(*Manager)

// WithLimit caps the number of concurrently provisioned namespaces.
// Exceeding the cap fails with ErrResourceExhausted before any OS call.
func WithLimit(n int) Option {
	return func(m *Manager) { m.maxSpace = n }
}

// WithPrefix overrides the namespace name prefix (default "nem").
func WithPrefix(p string) Option {
	return func(m *Manager) {
		if p != "" {
			m.prefix = p
		}
	}
}

// New constructs a Manager over the given backend. log may be nil.
func New(backend Backend, log logging.Logger, opts ...Option) *Manager {
	if log == nil {
		log = logging.Noop()
	}
	m := &Manager{
		byID:    make(map[string]string),
		backend: backend,
		prefix:  "nem",
		log:     log,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Provision allocates a fresh namespace and returns its opaque handle.
// Handles are never reused; a failed allocation leaves nothing behind.
func (m *Manager) Provision(ctx context.Context, nodeID string) (string, error) {
	m.mu.Lock()
	if m.maxSpace > 0 && len(m.byID) >= m.maxSpace {
		m.mu.Unlock()
		return "", fmt.Errorf("%w: limit of %d namespaces reached", ErrResourceExhausted, m.maxSpace)
	}
	handle := uuid.NewString()
	name := m.prefix + "-" + handle[:8]
	// Reserve the handle before the (slow) OS call so a concurrent
	// Provision cannot land on the same name.
	m.byID[handle] = name
	m.mu.Unlock()

	if err := m.backend.Create(ctx, name); err != nil {
		m.mu.Lock()
		delete(m.byID, handle)
		m.mu.Unlock()
		return "", classify(err, nodeID)
	}

	m.log.Debug(ctx, "namespace provisioned",
		logging.String("node_id", nodeID),
		logging.String("handle", handle),
	)
	return handle, nil
}

// Teardown releases the namespace behind the handle. Tearing down an
// already-absent handle succeeds silently.
func (m *Manager) Teardown(ctx context.Context, handle string) error {
	m.mu.Lock()
	name, ok := m.byID[handle]
	if ok {
		delete(m.byID, handle)
	}
	m.mu.Unlock()
	if !ok {
		return nil
	}

	if err := m.backend.Delete(ctx, name); err != nil {
		return fmt.Errorf("%w: delete %q: %v", ErrProvisionFailed, name, err)
	}
	m.log.Debug(ctx, "namespace released", logging.String("handle", handle))
	return nil
}

// Resolve translates a handle into the OS namespace name for consumers that
// must attach interfaces. The empty string means the handle is gone.
func (m *Manager) Resolve(handle string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byID[handle]
}

// Count reports the number of live namespaces.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}

// classify maps backend failures onto the provisioning error taxonomy.
func classify(err error, nodeID string) error {
	if errors.Is(err, ErrResourceExhausted) || isExhaustion(err) {
		return fmt.Errorf("%w: node %q: %v", ErrResourceExhausted, nodeID, err)
	}
	return fmt.Errorf("%w: node %q: %v", ErrProvisionFailed, nodeID, err)
}

func isExhaustion(err error) bool {
	for _, errno := range []unix.Errno{unix.EMFILE, unix.ENFILE, unix.ENOSPC, unix.ENOMEM} {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
