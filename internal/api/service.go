// Package api exposes the session manager over gRPC. It is one of two
// protocol front-ends sharing the same internal command surface; the other
// is the legacy TLV listener.
package api

import (
	"context"
	"errors"
	"sort"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/packetforge/netemd/api/gen/netempb"
	"github.com/packetforge/netemd/internal/events"
	"github.com/packetforge/netemd/internal/logging"
	"github.com/packetforge/netemd/internal/session"
)

// NetemService implements netem.v1.NetemService backed by the session
// manager.
type NetemService struct {
	netempb.UnimplementedNetemServiceServer

	sessions *session.Manager
	log      logging.Logger
}

// NewNetemService constructs the service. log may be nil.
func NewNetemService(sessions *session.Manager, log logging.Logger) *NetemService {
	if log == nil {
		log = logging.Noop()
	}
	return &NetemService{sessions: sessions, log: log}
}

func (s *NetemService) ensureReady() error {
	if s == nil || s.sessions == nil {
		return status.Error(codes.Internal, "service not initialised")
	}
	return nil
}

func (s *NetemService) CreateSession(ctx context.Context, req *netempb.CreateSessionRequest) (*netempb.CreateSessionResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	info, err := s.sessions.Create(ctx, req.GetId())
	if err != nil {
		return nil, ToStatusError(err)
	}
	return &netempb.CreateSessionResponse{Session: infoToProto(info)}, nil
}

func (s *NetemService) GetSession(ctx context.Context, req *netempb.GetSessionRequest) (*netempb.GetSessionResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	sess, err := s.sessions.Get(req.GetId())
	if err != nil {
		return nil, ToStatusError(err)
	}
	return &netempb.GetSessionResponse{Session: infoToProto(sess.Info())}, nil
}

func (s *NetemService) ListSessions(ctx context.Context, _ *netempb.ListSessionsRequest) (*netempb.ListSessionsResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	infos := s.sessions.List()
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })

	resp := &netempb.ListSessionsResponse{}
	for _, info := range infos {
		resp.Sessions = append(resp.Sessions, infoToProto(info))
	}
	return resp, nil
}

func (s *NetemService) StartSession(ctx context.Context, req *netempb.StartSessionRequest) (*netempb.StartSessionResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	sess, err := s.sessions.Get(req.GetId())
	if err != nil {
		return nil, ToStatusError(err)
	}
	if err := sess.Start(ctx); err != nil {
		return nil, ToStatusError(err)
	}
	return &netempb.StartSessionResponse{Session: infoToProto(sess.Info())}, nil
}

func (s *NetemService) StopSession(ctx context.Context, req *netempb.StopSessionRequest) (*netempb.StopSessionResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	sess, err := s.sessions.Get(req.GetId())
	if err != nil {
		return nil, ToStatusError(err)
	}
	if err := sess.Stop(ctx); err != nil {
		return nil, ToStatusError(err)
	}
	return &netempb.StopSessionResponse{Session: infoToProto(sess.Info())}, nil
}

func (s *NetemService) DeleteSession(ctx context.Context, req *netempb.DeleteSessionRequest) (*netempb.DeleteSessionResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	if err := s.sessions.Destroy(ctx, req.GetId()); err != nil {
		return nil, ToStatusError(err)
	}
	return &netempb.DeleteSessionResponse{}, nil
}

func (s *NetemService) AddNode(ctx context.Context, req *netempb.AddNodeRequest) (*netempb.AddNodeResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	if err := validateAddNode(req); err != nil {
		return nil, err
	}
	sess, err := s.sessions.Get(req.GetSessionId())
	if err != nil {
		return nil, ToStatusError(err)
	}
	if err := sess.AddNode(ctx, nodeFromProto(req.GetNode())); err != nil {
		return nil, ToStatusError(err)
	}
	node, err := sess.GetNode(req.GetNode().GetId())
	if err != nil {
		return nil, ToStatusError(err)
	}
	return &netempb.AddNodeResponse{Node: nodeToProto(node)}, nil
}

func (s *NetemService) UpdateNode(ctx context.Context, req *netempb.UpdateNodeRequest) (*netempb.UpdateNodeResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	if err := requireFields(req.GetSessionId(), "session_id", req.GetNodeId(), "node_id"); err != nil {
		return nil, err
	}
	sess, err := s.sessions.Get(req.GetSessionId())
	if err != nil {
		return nil, ToStatusError(err)
	}
	if err := sess.UpdateNode(ctx, req.GetNodeId(), configFromProto(req.GetConfig())); err != nil {
		return nil, ToStatusError(err)
	}
	node, err := sess.GetNode(req.GetNodeId())
	if err != nil {
		return nil, ToStatusError(err)
	}
	return &netempb.UpdateNodeResponse{Node: nodeToProto(node)}, nil
}

func (s *NetemService) RemoveNode(ctx context.Context, req *netempb.RemoveNodeRequest) (*netempb.RemoveNodeResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	if err := requireFields(req.GetSessionId(), "session_id", req.GetNodeId(), "node_id"); err != nil {
		return nil, err
	}
	sess, err := s.sessions.Get(req.GetSessionId())
	if err != nil {
		return nil, ToStatusError(err)
	}
	if err := sess.RemoveNode(ctx, req.GetNodeId()); err != nil {
		return nil, ToStatusError(err)
	}
	return &netempb.RemoveNodeResponse{}, nil
}

func (s *NetemService) AddLink(ctx context.Context, req *netempb.AddLinkRequest) (*netempb.AddLinkResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	if err := validateAddLink(req); err != nil {
		return nil, err
	}
	sess, err := s.sessions.Get(req.GetSessionId())
	if err != nil {
		return nil, ToStatusError(err)
	}
	if err := sess.AddLink(ctx, linkFromProto(req.GetLink())); err != nil {
		return nil, ToStatusError(err)
	}
	link, err := sess.GetLink(req.GetLink().GetId())
	if err != nil {
		return nil, ToStatusError(err)
	}
	return &netempb.AddLinkResponse{Link: linkToProto(link)}, nil
}

func (s *NetemService) UpdateLink(ctx context.Context, req *netempb.UpdateLinkRequest) (*netempb.UpdateLinkResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	if err := requireFields(req.GetSessionId(), "session_id", req.GetLinkId(), "link_id"); err != nil {
		return nil, err
	}
	sess, err := s.sessions.Get(req.GetSessionId())
	if err != nil {
		return nil, ToStatusError(err)
	}
	if err := sess.UpdateLink(ctx, req.GetLinkId(), shapingFromProto(req.GetShaping())); err != nil {
		return nil, ToStatusError(err)
	}
	link, err := sess.GetLink(req.GetLinkId())
	if err != nil {
		return nil, ToStatusError(err)
	}
	return &netempb.UpdateLinkResponse{Link: linkToProto(link)}, nil
}

func (s *NetemService) RemoveLink(ctx context.Context, req *netempb.RemoveLinkRequest) (*netempb.RemoveLinkResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	if err := requireFields(req.GetSessionId(), "session_id", req.GetLinkId(), "link_id"); err != nil {
		return nil, err
	}
	sess, err := s.sessions.Get(req.GetSessionId())
	if err != nil {
		return nil, ToStatusError(err)
	}
	if err := sess.RemoveLink(ctx, req.GetLinkId()); err != nil {
		return nil, ToStatusError(err)
	}
	return &netempb.RemoveLinkResponse{}, nil
}

func (s *NetemService) GetSnapshot(ctx context.Context, req *netempb.GetSnapshotRequest) (*netempb.GetSnapshotResponse, error) {
	if err := s.ensureReady(); err != nil {
		return nil, err
	}
	sess, err := s.sessions.Get(req.GetSessionId())
	if err != nil {
		return nil, ToStatusError(err)
	}

	snap := sess.Snapshot()
	resp := &netempb.GetSnapshotResponse{
		SessionId: snap.SessionID,
		Revision:  snap.Revision,
		Phase:     phaseToProto(sess.Phase()),
	}
	sort.Slice(snap.Nodes, func(i, j int) bool { return snap.Nodes[i].ID < snap.Nodes[j].ID })
	sort.Slice(snap.Links, func(i, j int) bool { return snap.Links[i].ID < snap.Links[j].ID })
	for _, n := range snap.Nodes {
		resp.Nodes = append(resp.Nodes, nodeToProto(n))
	}
	for _, l := range snap.Links {
		resp.Links = append(resp.Links, linkToProto(l))
	}
	return resp, nil
}

// StreamEvents forwards the session's event feed in revision order until the
// client goes away, the session is destroyed, or the subscriber falls too
// far behind.
func (s *NetemService) StreamEvents(req *netempb.StreamEventsRequest, stream grpc.ServerStreamingServer[netempb.Event]) error {
	if err := s.ensureReady(); err != nil {
		return err
	}
	sub, err := s.sessions.Subscribe(req.GetSessionId())
	if err != nil {
		return ToStatusError(err)
	}
	defer s.sessions.Unsubscribe(sub)

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return status.FromContextError(ctx.Err()).Err()
		case ev, ok := <-sub.Events():
			if !ok {
				if subErr := sub.Err(); errors.Is(subErr, events.ErrSlowConsumer) {
					s.log.Warn(ctx, "event subscriber disconnected",
						logging.String("session_id", req.GetSessionId()),
						logging.Err(subErr),
					)
					return ToStatusError(subErr)
				}
				return nil
			}
			if err := stream.Send(eventToProto(ev)); err != nil {
				return err
			}
		}
	}
}
