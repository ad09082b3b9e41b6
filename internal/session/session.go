package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/packetforge/netemd/internal/fabric"
	"github.com/packetforge/netemd/internal/logging"
	"github.com/packetforge/netemd/internal/nsman"
	"github.com/packetforge/netemd/model"
	"github.com/packetforge/netemd/topo"
)

// command is one unit of serialized work on a session. The context is
// detached from the issuing request so that a client disconnect never aborts
// an in-flight provisioning step; the result is simply discarded if the
// caller is gone.
type command struct {
	ctx  context.Context
	fn   func(ctx context.Context) error
	done chan error
}

// Session owns one emulated topology and its lifecycle. All mutating
// commands funnel through a single worker goroutine, so commands targeting
// the same session are admitted one at a time in arrival order while
// different sessions proceed fully in parallel. Reads go straight to the
// Store, which is safe under concurrent mutation.
type Session struct {
	id    string
	store *topo.Store

	nodes  *nsman.Manager
	fabric *fabric.Manager
	log    logging.Logger

	mu    sync.Mutex
	phase model.Phase

	cmds chan *command
	// quit is closed when the worker exits after Destroy; senders blocked
	// on cmds observe it and fail with ErrNotFound.
	quit chan struct{}
}

func newSession(id string, store *topo.Store, nodes *nsman.Manager, fab *fabric.Manager, log logging.Logger) *Session {
	s := &Session{
		id:     id,
		store:  store,
		nodes:  nodes,
		fabric: fab,
		log:    log,
		phase:  model.PhaseDefined,
		cmds:   make(chan *command),
		quit:   make(chan struct{}),
	}
	go s.work()
	return s
}

func (s *Session) work() {
	for cmd := range s.cmds {
		cmd.done <- cmd.fn(cmd.ctx)
		select {
		case <-s.quit:
			return
		default:
		}
	}
}

// do submits fn to the session worker and waits for its result. If ctx is
// cancelled while waiting, the command still runs to completion and its
// result is discarded.
func (s *Session) do(ctx context.Context, fn func(ctx context.Context) error) error {
	cmd := &command{
		ctx:  context.WithoutCancel(ctx),
		fn:   fn,
		done: make(chan error, 1),
	}
	select {
	case s.cmds <- cmd:
	case <-s.quit:
		return fmt.Errorf("%w: session %q", ErrNotFound, s.id)
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Phase returns the current lifecycle phase.
func (s *Session) Phase() model.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// setPhase records a phase transition and emits it as a committed mutation
// so subscribers see it in revision order with topology events.
func (s *Session) setPhase(p model.Phase) {
	s.mu.Lock()
	s.phase = p
	s.mu.Unlock()
	s.store.EmitPhase(p)
}

// Info returns the wire-facing summary of the session.
func (s *Session) Info() model.SessionInfo {
	nodes, links := s.store.Counts()
	return model.SessionInfo{
		ID:       s.id,
		Phase:    s.Phase(),
		Revision: s.store.Revision(),
		Nodes:    nodes,
		Links:    links,
	}
}

// Snapshot returns a consistent copy of the session topology.
func (s *Session) Snapshot() topo.Snapshot {
	return s.store.Snapshot()
}

// GetNode returns a copy of the named node.
func (s *Session) GetNode(id string) (model.Node, error) {
	return s.store.GetNode(id)
}

// GetLink returns a copy of the named link.
func (s *Session) GetLink(id string) (model.Link, error) {
	return s.store.GetLink(id)
}

func (s *Session) invalidState(verb string) error {
	return fmt.Errorf("%w: cannot %s in phase %q", ErrInvalidState, verb, s.Phase())
}

// AddNode defines a new node. Topology structure is editable only before
// instantiation.
func (s *Session) AddNode(ctx context.Context, n model.Node) error {
	return s.do(ctx, func(context.Context) error {
		if s.Phase() != model.PhaseDefined {
			return s.invalidState("add node")
		}
		return s.store.DefineNode(n)
	})
}

// UpdateNode replaces the desired configuration of a defined node.
func (s *Session) UpdateNode(ctx context.Context, id string, cfg model.NodeConfig) error {
	return s.do(ctx, func(context.Context) error {
		if s.Phase() != model.PhaseDefined {
			return s.invalidState("update node")
		}
		return s.store.UpdateNode(id, cfg)
	})
}

// RemoveNode removes a defined node. Fails with Conflict while a link still
// references it.
func (s *Session) RemoveNode(ctx context.Context, id string) error {
	return s.do(ctx, func(context.Context) error {
		if s.Phase() != model.PhaseDefined {
			return s.invalidState("remove node")
		}
		return s.store.RemoveNode(id)
	})
}

// AddLink defines a new link between two existing nodes.
func (s *Session) AddLink(ctx context.Context, l model.Link) error {
	return s.do(ctx, func(context.Context) error {
		if s.Phase() != model.PhaseDefined {
			return s.invalidState("add link")
		}
		return s.store.DefineLink(l)
	})
}

// UpdateLink replaces a link's shaping parameters. While the session is
// running the new parameters are applied to the live link as a single
// atomic replace before the store is updated; a failed reshape leaves both
// the link and the store unchanged.
func (s *Session) UpdateLink(ctx context.Context, id string, sh model.Shaping) error {
	return s.do(ctx, func(ctx context.Context) error {
		switch s.Phase() {
		case model.PhaseDefined:
			return s.store.UpdateLink(id, sh)
		case model.PhaseRunning:
			link, err := s.store.GetLink(id)
			if err != nil {
				return err
			}
			if err := s.fabric.Reshape(ctx, link.FabricHandle, sh); err != nil {
				return err
			}
			return s.store.UpdateLink(id, sh)
		default:
			return s.invalidState("update link")
		}
	})
}

// RemoveLink removes a defined link.
func (s *Session) RemoveLink(ctx context.Context, id string) error {
	return s.do(ctx, func(context.Context) error {
		if s.Phase() != model.PhaseDefined {
			return s.invalidState("remove link")
		}
		return s.store.RemoveLink(id)
	})
}

// teardownTask undoes one provisioning step. Tasks accumulate during
// instantiation and run in reverse order on failure.
type teardownTask struct {
	nodeID string
	linkID string
	handle string
	// fabricOwned marks a bridge or link handle torn down by the link
	// fabric; otherwise the handle belongs to the namespace manager.
	fabricOwned bool
}

// Start instantiates every defined node and link and moves the session to
// Running. Any provisioning failure rolls back everything already created
// and absorbs the session into Errored.
func (s *Session) Start(ctx context.Context) error {
	return s.do(ctx, func(ctx context.Context) error {
		if s.Phase() != model.PhaseDefined {
			return s.invalidState("start")
		}
		s.setPhase(model.PhaseInstantiating)

		if err := s.instantiate(ctx); err != nil {
			s.setPhase(model.PhaseErrored)
			s.log.Error(ctx, "session instantiation failed",
				logging.String("session_id", s.id),
				logging.Err(err),
			)
			return err
		}
		s.setPhase(model.PhaseRunning)
		return nil
	})
}

func (s *Session) instantiate(ctx context.Context) error {
	snap := s.store.Snapshot()

	var done []teardownTask
	fail := func(err error) error {
		s.rollback(ctx, done)
		return err
	}

	for _, n := range snap.Nodes {
		var handle string
		var err error
		if n.Type == model.NodeTypeSwitch {
			handle, err = s.fabric.ProvisionBridge(ctx, n.ID)
		} else {
			handle, err = s.nodes.Provision(ctx, n.ID)
		}
		if err != nil {
			if markErr := s.store.MarkNodeFailed(n.ID); markErr != nil {
				s.log.Warn(ctx, "marking node failed", logging.String("node_id", n.ID), logging.Err(markErr))
			}
			return fail(err)
		}
		done = append(done, teardownTask{
			nodeID:      n.ID,
			handle:      handle,
			fabricOwned: n.Type == model.NodeTypeSwitch,
		})
		if err := s.store.BindNode(n.ID, handle); err != nil {
			return fail(err)
		}
	}

	for _, l := range snap.Links {
		hA, hB, err := s.endpointHandles(l)
		if err != nil {
			return fail(err)
		}
		handle, err := s.fabric.Provision(ctx, l, hA, hB)
		if err != nil {
			if markErr := s.store.MarkLinkFailed(l.ID); markErr != nil {
				s.log.Warn(ctx, "marking link failed", logging.String("link_id", l.ID), logging.Err(markErr))
			}
			return fail(err)
		}
		done = append(done, teardownTask{linkID: l.ID, handle: handle, fabricOwned: true})
		if err := s.store.BindLink(l.ID, handle); err != nil {
			return fail(err)
		}
	}
	return nil
}

func (s *Session) endpointHandles(l model.Link) (string, string, error) {
	a, err := s.store.GetNode(l.A.NodeID)
	if err != nil {
		return "", "", err
	}
	b, err := s.store.GetNode(l.B.NodeID)
	if err != nil {
		return "", "", err
	}
	return a.NamespaceHandle, b.NamespaceHandle, nil
}

// rollback tears down provisioned resources in reverse creation order.
// Teardown is idempotent, so errors are logged and skipped; the goal is
// zero resident OS resources afterwards.
func (s *Session) rollback(ctx context.Context, tasks []teardownTask) {
	for i := len(tasks) - 1; i >= 0; i-- {
		t := tasks[i]
		var err error
		if t.fabricOwned {
			err = s.fabric.Teardown(ctx, t.handle)
		} else {
			err = s.nodes.Teardown(ctx, t.handle)
		}
		if err != nil {
			s.log.Warn(ctx, "rollback teardown failed",
				logging.String("handle", t.handle),
				logging.Err(err),
			)
			continue
		}
		if t.linkID != "" {
			if err := s.store.UnbindLink(t.linkID); err != nil && !errors.Is(err, ErrNotFound) {
				s.log.Warn(ctx, "unbinding link", logging.String("link_id", t.linkID), logging.Err(err))
			}
		} else {
			if err := s.store.UnbindNode(t.nodeID); err != nil && !errors.Is(err, ErrNotFound) {
				s.log.Warn(ctx, "unbinding node", logging.String("node_id", t.nodeID), logging.Err(err))
			}
		}
	}
}

// Stop tears down a running session's links and nodes and moves it to
// Terminated. Definitions survive; only OS resources are released.
func (s *Session) Stop(ctx context.Context) error {
	return s.do(ctx, func(ctx context.Context) error {
		if s.Phase() != model.PhaseRunning {
			return s.invalidState("stop")
		}
		s.setPhase(model.PhaseShuttingDown)
		s.release(ctx)
		s.setPhase(model.PhaseTerminated)
		return nil
	})
}

// release tears down every bound link and node. Safe to call with nothing
// bound; teardown of absent handles succeeds silently.
func (s *Session) release(ctx context.Context) {
	snap := s.store.Snapshot()
	for _, l := range snap.Links {
		if l.FabricHandle == "" {
			continue
		}
		if err := s.fabric.Teardown(ctx, l.FabricHandle); err != nil {
			s.log.Warn(ctx, "link teardown failed", logging.String("link_id", l.ID), logging.Err(err))
			continue
		}
		if err := s.store.UnbindLink(l.ID); err != nil {
			s.log.Warn(ctx, "unbinding link", logging.String("link_id", l.ID), logging.Err(err))
		}
	}
	for _, n := range snap.Nodes {
		if n.NamespaceHandle == "" {
			continue
		}
		var err error
		if n.Type == model.NodeTypeSwitch {
			err = s.fabric.Teardown(ctx, n.NamespaceHandle)
		} else {
			err = s.nodes.Teardown(ctx, n.NamespaceHandle)
		}
		if err != nil {
			s.log.Warn(ctx, "node teardown failed", logging.String("node_id", n.ID), logging.Err(err))
			continue
		}
		if err := s.store.UnbindNode(n.ID); err != nil {
			s.log.Warn(ctx, "unbinding node", logging.String("node_id", n.ID), logging.Err(err))
		}
	}
}

// destroy releases all resources and stops the worker. Permitted from any
// stable phase, including Errored and Terminated, since it is the only way
// out of an absorbing state. Returns through do like every other command so
// it serializes behind in-flight work.
func (s *Session) destroy(ctx context.Context) error {
	return s.do(ctx, func(ctx context.Context) error {
		s.release(ctx)
		s.setPhase(model.PhaseTerminated)
		close(s.quit)
		return nil
	})
}
