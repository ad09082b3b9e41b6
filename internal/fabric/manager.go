// Package fabric provisions the virtual interface pairs, bridges, and
// queuing disciplines backing emulated links.
package fabric

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/packetforge/netemd/internal/logging"
	"github.com/packetforge/netemd/model"
)

var (
	// ErrEndpointUnavailable indicates a namespace or bridge handle named
	// by a link is gone.
	ErrEndpointUnavailable = errors.New("endpoint unavailable")
	// ErrShapingRejected indicates shaping parameters outside host
	// capability.
	ErrShapingRejected = errors.New("shaping rejected")
	// ErrProvisionFailed indicates an OS-level error while building the
	// link; any partially created interfaces are removed before return.
	ErrProvisionFailed = errors.New("link provisioning failed")
)

// Backend abstracts the OS link primitives. nsName "" addresses the
// daemon's own namespace. DeleteInterface must succeed for an
// already-absent interface.
type Backend interface {
	CreateVethPair(ctx context.Context, a, b string) error
	MoveAndRename(ctx context.Context, ifName, nsName, newName string) error
	SetUp(ctx context.Context, nsName, ifName string) error
	AddAddress(ctx context.Context, nsName, ifName, cidr string) error
	// ApplyShaping installs the full parameter set as one qdisc replace,
	// so a link is never observably half-shaped.
	ApplyShaping(ctx context.Context, nsName, ifName string, sh model.Shaping) error
	ClearShaping(ctx context.Context, nsName, ifName string) error
	CreateBridge(ctx context.Context, name string) error
	AttachToBridge(ctx context.Context, ifName, bridge string) error
	DeleteInterface(ctx context.Context, nsName, ifName string) error
}

// NamespaceResolver translates namespace handles into OS names. Implemented
// by the namespace manager; the fabric never sees raw namespace paths.
type NamespaceResolver interface {
	Resolve(handle string) string
}

// vethEnd tracks where one side of a pair currently lives.
type vethEnd struct {
	name   string // current interface name
	nsName string // "" while in the daemon namespace
	bridge string // bridge it is attached to, if any
}

type linkRes struct {
	ends [2]vethEnd
	// shaping is the parameter set currently installed on both ends; it
	// is what a failed reshape restores.
	shaping model.Shaping
}

type bridgeRes struct {
	name string
}

// Manager owns the arena of link and bridge handles.
type Manager struct {
	mu      sync.Mutex
	links   map[string]*linkRes
	bridges map[string]*bridgeRes

	backend  Backend
	resolver NamespaceResolver
	log      logging.Logger
}

// New constructs a Manager. log may be nil.
func New(backend Backend, resolver NamespaceResolver, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Noop()
	}
	return &Manager{
		links:    make(map[string]*linkRes),
		bridges:  make(map[string]*bridgeRes),
		backend:  backend,
		resolver: resolver,
		log:      log,
	}
}

// ValidateShaping rejects parameters the host cannot express. It is also
// invoked by Provision and Reshape before touching the OS.
func ValidateShaping(sh model.Shaping) error {
	if sh.Delay < 0 {
		return fmt.Errorf("%w: negative delay", ErrShapingRejected)
	}
	if sh.Jitter < 0 {
		return fmt.Errorf("%w: negative jitter", ErrShapingRejected)
	}
	if sh.Jitter > 0 && sh.Delay == 0 {
		return fmt.Errorf("%w: jitter requires a base delay", ErrShapingRejected)
	}
	if sh.LossPercent < 0 || sh.LossPercent > 100 {
		return fmt.Errorf("%w: loss %.2f%% outside [0, 100]", ErrShapingRejected, sh.LossPercent)
	}
	return nil
}

// ProvisionBridge creates a bridge in the daemon namespace for a
// switch-type node and returns its opaque handle.
func (m *Manager) ProvisionBridge(ctx context.Context, nodeID string) (string, error) {
	handle := uuid.NewString()
	name := "nb" + handle[:8]

	if err := m.backend.CreateBridge(ctx, name); err != nil {
		return "", fmt.Errorf("%w: bridge for node %q: %v", ErrProvisionFailed, nodeID, err)
	}
	if err := m.backend.SetUp(ctx, "", name); err != nil {
		_ = m.backend.DeleteInterface(ctx, "", name)
		return "", fmt.Errorf("%w: bridge for node %q: %v", ErrProvisionFailed, nodeID, err)
	}

	m.mu.Lock()
	m.bridges[handle] = &bridgeRes{name: name}
	m.mu.Unlock()

	m.log.Debug(ctx, "bridge provisioned",
		logging.String("node_id", nodeID),
		logging.String("handle", handle),
	)
	return handle, nil
}

// endpointTarget resolves a node handle into either a namespace name or a
// bridge name.
type endpointTarget struct {
	nsName string
	bridge string
}

func (m *Manager) resolveEndpoint(handle string) (endpointTarget, error) {
	m.mu.Lock()
	br, isBridge := m.bridges[handle]
	m.mu.Unlock()
	if isBridge {
		return endpointTarget{bridge: br.name}, nil
	}
	if m.resolver != nil {
		if name := m.resolver.Resolve(handle); name != "" {
			return endpointTarget{nsName: name}, nil
		}
	}
	return endpointTarget{}, fmt.Errorf("%w: handle %q", ErrEndpointUnavailable, handle)
}

// Provision creates the veth pair for a link, places each end at its
// endpoint (inside the node namespace, or attached to the node's bridge),
// assigns addresses, and installs shaping. On any failure everything
// created so far is removed before the error is returned.
func (m *Manager) Provision(ctx context.Context, link model.Link, handleA, handleB string) (string, error) {
	if err := ValidateShaping(link.Shaping); err != nil {
		return "", err
	}
	targetA, err := m.resolveEndpoint(handleA)
	if err != nil {
		return "", err
	}
	targetB, err := m.resolveEndpoint(handleB)
	if err != nil {
		return "", err
	}

	handle := uuid.NewString()
	res := &linkRes{
		ends: [2]vethEnd{
			{name: "ve" + handle[:8] + "a"},
			{name: "ve" + handle[:8] + "b"},
		},
		shaping: link.Shaping,
	}

	if err := m.backend.CreateVethPair(ctx, res.ends[0].name, res.ends[1].name); err != nil {
		return "", fmt.Errorf("%w: link %q: %v", ErrProvisionFailed, link.ID, err)
	}

	place := func(i int, target endpointTarget, ep model.Endpoint) error {
		end := &res.ends[i]
		if target.bridge != "" {
			if err := m.backend.AttachToBridge(ctx, end.name, target.bridge); err != nil {
				return err
			}
			end.bridge = target.bridge
			return m.backend.SetUp(ctx, "", end.name)
		}

		ifName := fmt.Sprintf("eth%d", ep.Slot)
		if err := m.backend.MoveAndRename(ctx, end.name, target.nsName, ifName); err != nil {
			return err
		}
		end.name = ifName
		end.nsName = target.nsName
		for _, cidr := range []string{ep.IPv4, ep.IPv6} {
			if cidr == "" {
				continue
			}
			if err := m.backend.AddAddress(ctx, target.nsName, ifName, cidr); err != nil {
				return err
			}
		}
		if err := m.backend.SetUp(ctx, target.nsName, ifName); err != nil {
			return err
		}
		if !link.Shaping.Unconstrained() {
			return m.backend.ApplyShaping(ctx, target.nsName, ifName, link.Shaping)
		}
		return nil
	}

	if err := place(0, targetA, link.A); err != nil {
		m.destroy(ctx, res)
		return "", wrapProvision(link.ID, err)
	}
	if err := place(1, targetB, link.B); err != nil {
		m.destroy(ctx, res)
		return "", wrapProvision(link.ID, err)
	}

	m.mu.Lock()
	m.links[handle] = res
	m.mu.Unlock()

	m.log.Debug(ctx, "link provisioned",
		logging.String("link_id", link.ID),
		logging.String("handle", handle),
	)
	return handle, nil
}

func wrapProvision(linkID string, err error) error {
	if errors.Is(err, ErrShapingRejected) || errors.Is(err, ErrEndpointUnavailable) {
		return err
	}
	return fmt.Errorf("%w: link %q: %v", ErrProvisionFailed, linkID, err)
}

// Reshape replaces the shaping parameters on both ends of a link. The
// backend applies each end as a single qdisc replace; when a later end
// fails, the earlier ends are restored to the previous parameter set, so a
// link is never left with only half of a new one.
func (m *Manager) Reshape(ctx context.Context, handle string, sh model.Shaping) error {
	if err := ValidateShaping(sh); err != nil {
		return err
	}

	m.mu.Lock()
	res, ok := m.links[handle]
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: link handle %q", ErrEndpointUnavailable, handle)
	}
	prev := res.shaping

	for i, end := range res.ends {
		if end.bridge != "" {
			// Shaping lives on namespace-side ends; bridge ports pass through.
			continue
		}
		if err := m.installShaping(ctx, end, sh); err != nil {
			for _, done := range res.ends[:i] {
				if done.bridge != "" {
					continue
				}
				if rerr := m.installShaping(ctx, done, prev); rerr != nil {
					m.log.Warn(ctx, "restore after failed reshape",
						logging.String("handle", handle),
						logging.String("interface", done.name),
						logging.Err(rerr),
					)
				}
			}
			return fmt.Errorf("%w: reshape %q on %q: %v", ErrProvisionFailed, handle, end.name, err)
		}
	}

	m.mu.Lock()
	res.shaping = sh
	m.mu.Unlock()
	return nil
}

func (m *Manager) installShaping(ctx context.Context, end vethEnd, sh model.Shaping) error {
	if sh.Unconstrained() {
		return m.backend.ClearShaping(ctx, end.nsName, end.name)
	}
	return m.backend.ApplyShaping(ctx, end.nsName, end.name, sh)
}

// Teardown removes the veth pair or bridge behind a handle. Tearing down
// an already-absent handle succeeds silently.
func (m *Manager) Teardown(ctx context.Context, handle string) error {
	m.mu.Lock()
	if br, ok := m.bridges[handle]; ok {
		delete(m.bridges, handle)
		m.mu.Unlock()
		if err := m.backend.DeleteInterface(ctx, "", br.name); err != nil {
			return fmt.Errorf("%w: delete bridge %q: %v", ErrProvisionFailed, br.name, err)
		}
		return nil
	}
	res, ok := m.links[handle]
	if ok {
		delete(m.links, handle)
	}
	m.mu.Unlock()
	if !ok {
		return nil
	}

	m.destroy(ctx, res)
	return nil
}

// destroy deletes a veth pair. Removing either end removes both; the other
// delete then sees an absent interface, which the backend tolerates.
func (m *Manager) destroy(ctx context.Context, res *linkRes) {
	for _, end := range res.ends {
		if err := m.backend.DeleteInterface(ctx, end.nsName, end.name); err != nil {
			m.log.Warn(ctx, "failed to delete interface",
				logging.String("interface", end.name),
				logging.Err(err),
			)
		}
	}
}

// Count reports the number of live link and bridge handles.
func (m *Manager) Count() (links, bridges int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.links), len(m.bridges)
}
