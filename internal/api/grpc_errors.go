package api

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/packetforge/netemd/internal/events"
	"github.com/packetforge/netemd/internal/fabric"
	"github.com/packetforge/netemd/internal/nsman"
	"github.com/packetforge/netemd/internal/session"
	"github.com/packetforge/netemd/topo"
)

// ToStatusError maps the daemon's error taxonomy onto gRPC status codes.
// The TLV front-end performs the equivalent mapping onto its numeric codes,
// so a client sees the same failure class on either protocol.
func ToStatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, session.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, session.ErrExists):
		return status.Error(codes.AlreadyExists, err.Error())

	case errors.Is(err, session.ErrConflict),
		errors.Is(err, session.ErrSlotInUse),
		errors.Is(err, session.ErrInvalidState),
		errors.Is(err, session.ErrEndpointUnavailable):
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, topo.ErrInvalid),
		errors.Is(err, session.ErrShapingRejected):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, session.ErrResourceExhausted):
		return status.Error(codes.ResourceExhausted, err.Error())

	case errors.Is(err, events.ErrSlowConsumer):
		return status.Error(codes.Unavailable, err.Error())

	case errors.Is(err, nsman.ErrProvisionFailed),
		errors.Is(err, fabric.ErrProvisionFailed):
		return status.Error(codes.Internal, err.Error())

	default:
		return status.Error(codes.Internal, err.Error())
	}
}
