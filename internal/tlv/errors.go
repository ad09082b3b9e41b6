package tlv

import (
	"errors"

	"github.com/packetforge/netemd/internal/events"
	"github.com/packetforge/netemd/internal/session"
	"github.com/packetforge/netemd/topo"
)

// ErrorCode classifies err into the wire taxonomy carried by MsgError
// frames. The partition mirrors the gRPC status mapping.
func ErrorCode(err error) uint16 {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return CodeNotFound
	case errors.Is(err, session.ErrExists):
		return CodeExists
	case errors.Is(err, session.ErrSlotInUse):
		return CodeSlotInUse
	case errors.Is(err, session.ErrConflict):
		return CodeConflict
	case errors.Is(err, session.ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, session.ErrEndpointUnavailable):
		return CodeEndpointUnavailable
	case errors.Is(err, session.ErrResourceExhausted):
		return CodeResourceExhausted
	case errors.Is(err, session.ErrShapingRejected):
		return CodeShapingRejected
	case errors.Is(err, topo.ErrInvalid), errors.Is(err, ErrMalformed):
		return CodeInvalidArgument
	case errors.Is(err, events.ErrSlowConsumer):
		return CodeSlowConsumer
	case session.IsProvisionFailed(err):
		return CodeProvisionFailed
	default:
		return CodeInternal
	}
}
