package session

import (
	"errors"

	"github.com/packetforge/netemd/internal/fabric"
	"github.com/packetforge/netemd/internal/nsman"
	"github.com/packetforge/netemd/topo"
)

// Sentinel errors surfaced by the session manager. Most are re-exported from
// the packages that detect them so that protocol front-ends can map the whole
// taxonomy with a single import.
var (
	ErrNotFound  = topo.ErrNotFound
	ErrExists    = topo.ErrExists
	ErrConflict  = topo.ErrConflict
	ErrSlotInUse = topo.ErrSlotInUse

	// ErrInvalidState is returned for a command that is illegal in the
	// session's current phase. The wrapping message names the phase.
	ErrInvalidState = errors.New("invalid session state")

	ErrResourceExhausted   = nsman.ErrResourceExhausted
	ErrShapingRejected     = fabric.ErrShapingRejected
	ErrEndpointUnavailable = fabric.ErrEndpointUnavailable
)

// IsProvisionFailed reports whether err is a provisioning failure from either
// the namespace manager or the link fabric.
func IsProvisionFailed(err error) bool {
	return errors.Is(err, nsman.ErrProvisionFailed) || errors.Is(err, fabric.ErrProvisionFailed)
}
