package api

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/packetforge/netemd/api/gen/netempb"
)

func missingField(name string) error {
	return status.Errorf(codes.InvalidArgument, "%s is required", name)
}

// requireFields checks (value, name) pairs and rejects the first empty one.
func requireFields(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i] == "" {
			return missingField(pairs[i+1])
		}
	}
	return nil
}

func validateAddNode(req *netempb.AddNodeRequest) error {
	if req.GetSessionId() == "" {
		return missingField("session_id")
	}
	if req.GetNode() == nil {
		return missingField("node")
	}
	if req.GetNode().GetId() == "" {
		return missingField("node.id")
	}
	return nil
}

func validateAddLink(req *netempb.AddLinkRequest) error {
	if req.GetSessionId() == "" {
		return missingField("session_id")
	}
	link := req.GetLink()
	if link == nil {
		return missingField("link")
	}
	if link.GetId() == "" {
		return missingField("link.id")
	}
	if link.GetA().GetNodeId() == "" {
		return missingField("link.a.node_id")
	}
	if link.GetB().GetNodeId() == "" {
		return missingField("link.b.node_id")
	}
	return nil
}
