package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/packetforge/netemd/internal/events"
	"github.com/packetforge/netemd/internal/fabric"
	"github.com/packetforge/netemd/internal/logging"
	"github.com/packetforge/netemd/internal/nsman"
	"github.com/packetforge/netemd/model"
	"github.com/packetforge/netemd/topo"
)

// Manager owns the live sessions of the daemon. It is the single internal
// command surface shared by both protocol front-ends; neither protocol has
// privileged semantics.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	nodes       *nsman.Manager
	fabric      *fabric.Manager
	broadcaster *events.Broadcaster
	log         logging.Logger
}

// NewManager wires the session layer over the provisioning managers and the
// event broadcaster.
func NewManager(nodes *nsman.Manager, fab *fabric.Manager, bc *events.Broadcaster, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Noop()
	}
	return &Manager{
		sessions:    make(map[string]*Session),
		nodes:       nodes,
		fabric:      fab,
		broadcaster: bc,
		log:         log,
	}
}

// Create registers a new session in PhaseDefined. An empty id is replaced by
// a generated one.
func (m *Manager) Create(ctx context.Context, id string) (model.SessionInfo, error) {
	if id == "" {
		id = uuid.NewString()
	}

	m.mu.Lock()
	if _, ok := m.sessions[id]; ok {
		m.mu.Unlock()
		return model.SessionInfo{}, fmt.Errorf("%w: session %q", ErrExists, id)
	}
	store := topo.NewStore(id, m.broadcaster)
	s := newSession(id, store, m.nodes, m.fabric, m.log)
	m.sessions[id] = s
	m.mu.Unlock()

	// The creation event goes through the store so it takes revision 1 and
	// shows up in the snapshot revision a subscriber reconciles against.
	store.EmitCreated(model.PhaseDefined)
	m.log.Info(ctx, "session created", logging.String("session_id", id))
	return s.Info(), nil
}

// Get returns the named session.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: session %q", ErrNotFound, id)
	}
	return s, nil
}

// List returns summaries of all live sessions.
func (m *Manager) List() []model.SessionInfo {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	infos := make([]model.SessionInfo, 0, len(sessions))
	for _, s := range sessions {
		infos = append(infos, s.Info())
	}
	return infos
}

// Destroy releases all of a session's resources and removes it. Unlike other
// commands it is accepted in Errored and Terminated; it is the only way out
// of an absorbing phase.
func (m *Manager) Destroy(ctx context.Context, id string) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}
	if err := s.destroy(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()

	m.broadcaster.CloseSession(id)
	m.log.Info(ctx, "session destroyed", logging.String("session_id", id))
	return nil
}

// Subscribe attaches an event subscription to the named session.
func (m *Manager) Subscribe(id string) (*events.Subscription, error) {
	if _, err := m.Get(id); err != nil {
		return nil, err
	}
	return m.broadcaster.Subscribe(id), nil
}

// Unsubscribe detaches a subscription obtained from Subscribe.
func (m *Manager) Unsubscribe(sub *events.Subscription) {
	m.broadcaster.Unsubscribe(sub)
}

// Shutdown destroys every live session. Used on daemon termination; errors
// are logged and the remaining sessions are still released.
func (m *Manager) Shutdown(ctx context.Context) {
	for _, info := range m.List() {
		if err := m.Destroy(ctx, info.ID); err != nil {
			m.log.Warn(ctx, "destroying session on shutdown",
				logging.String("session_id", info.ID),
				logging.Err(err),
			)
		}
	}
}
