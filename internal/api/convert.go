package api

import (
	"time"

	"github.com/packetforge/netemd/api/gen/netempb"
	"github.com/packetforge/netemd/model"
)

func phaseToProto(p model.Phase) netempb.Phase {
	switch p {
	case model.PhaseDefined:
		return netempb.Phase_PHASE_DEFINED
	case model.PhaseInstantiating:
		return netempb.Phase_PHASE_INSTANTIATING
	case model.PhaseRunning:
		return netempb.Phase_PHASE_RUNNING
	case model.PhaseShuttingDown:
		return netempb.Phase_PHASE_SHUTTING_DOWN
	case model.PhaseTerminated:
		return netempb.Phase_PHASE_TERMINATED
	case model.PhaseErrored:
		return netempb.Phase_PHASE_ERRORED
	default:
		return netempb.Phase_PHASE_UNSPECIFIED
	}
}

func nodeTypeFromProto(t netempb.NodeType) model.NodeType {
	switch t {
	case netempb.NodeType_NODE_TYPE_ROUTER:
		return model.NodeTypeRouter
	case netempb.NodeType_NODE_TYPE_SWITCH:
		return model.NodeTypeSwitch
	default:
		return model.NodeTypeHost
	}
}

func nodeTypeToProto(t model.NodeType) netempb.NodeType {
	switch t {
	case model.NodeTypeHost:
		return netempb.NodeType_NODE_TYPE_HOST
	case model.NodeTypeRouter:
		return netempb.NodeType_NODE_TYPE_ROUTER
	case model.NodeTypeSwitch:
		return netempb.NodeType_NODE_TYPE_SWITCH
	default:
		return netempb.NodeType_NODE_TYPE_UNSPECIFIED
	}
}

func statusToProto(st model.EntityStatus) netempb.EntityStatus {
	switch st {
	case model.StatusDefined:
		return netempb.EntityStatus_ENTITY_STATUS_DEFINED
	case model.StatusInstantiated:
		return netempb.EntityStatus_ENTITY_STATUS_INSTANTIATED
	case model.StatusFailed:
		return netempb.EntityStatus_ENTITY_STATUS_FAILED
	case model.StatusRemoved:
		return netempb.EntityStatus_ENTITY_STATUS_REMOVED
	default:
		return netempb.EntityStatus_ENTITY_STATUS_UNSPECIFIED
	}
}

func configFromProto(c *netempb.NodeConfig) model.NodeConfig {
	if c == nil {
		return model.NodeConfig{}
	}
	return model.NodeConfig{
		Hostname: c.GetHostname(),
		IPv4:     c.GetIpv4(),
		IPv6:     c.GetIpv6(),
		Services: c.GetServices(),
	}
}

func configToProto(c model.NodeConfig) *netempb.NodeConfig {
	return &netempb.NodeConfig{
		Hostname: c.Hostname,
		Ipv4:     c.IPv4,
		Ipv6:     c.IPv6,
		Services: c.Services,
	}
}

func nodeFromProto(n *netempb.Node) model.Node {
	if n == nil {
		return model.Node{}
	}
	return model.Node{
		ID:     n.GetId(),
		Name:   n.GetName(),
		Type:   nodeTypeFromProto(n.GetType()),
		Config: configFromProto(n.GetConfig()),
	}
}

func nodeToProto(n model.Node) *netempb.Node {
	return &netempb.Node{
		Id:              n.ID,
		Name:            n.Name,
		Type:            nodeTypeToProto(n.Type),
		Config:          configToProto(n.Config),
		NamespaceHandle: n.NamespaceHandle,
		Status:          statusToProto(n.Status),
	}
}

func endpointFromProto(e *netempb.Endpoint) model.Endpoint {
	if e == nil {
		return model.Endpoint{}
	}
	return model.Endpoint{
		NodeID: e.GetNodeId(),
		Slot:   int(e.GetSlot()),
		IPv4:   e.GetIpv4(),
		IPv6:   e.GetIpv6(),
	}
}

func endpointToProto(e model.Endpoint) *netempb.Endpoint {
	return &netempb.Endpoint{
		NodeId: e.NodeID,
		Slot:   uint32(e.Slot),
		Ipv4:   e.IPv4,
		Ipv6:   e.IPv6,
	}
}

func shapingFromProto(sh *netempb.Shaping) model.Shaping {
	if sh == nil {
		return model.Shaping{}
	}
	return model.Shaping{
		BandwidthBps: sh.GetBandwidthBps(),
		Delay:        time.Duration(sh.GetDelayUs()) * time.Microsecond,
		Jitter:       time.Duration(sh.GetJitterUs()) * time.Microsecond,
		LossPercent:  sh.GetLossPercent(),
	}
}

func shapingToProto(sh model.Shaping) *netempb.Shaping {
	return &netempb.Shaping{
		BandwidthBps: sh.BandwidthBps,
		DelayUs:      sh.Delay.Microseconds(),
		JitterUs:     sh.Jitter.Microseconds(),
		LossPercent:  sh.LossPercent,
	}
}

func linkFromProto(l *netempb.Link) model.Link {
	if l == nil {
		return model.Link{}
	}
	return model.Link{
		ID:      l.GetId(),
		A:       endpointFromProto(l.GetA()),
		B:       endpointFromProto(l.GetB()),
		Shaping: shapingFromProto(l.GetShaping()),
	}
}

func linkToProto(l model.Link) *netempb.Link {
	return &netempb.Link{
		Id:           l.ID,
		A:            endpointToProto(l.A),
		B:            endpointToProto(l.B),
		Shaping:      shapingToProto(l.Shaping),
		FabricHandle: l.FabricHandle,
		Status:       statusToProto(l.Status),
	}
}

func infoToProto(info model.SessionInfo) *netempb.SessionInfo {
	return &netempb.SessionInfo{
		Id:       info.ID,
		Phase:    phaseToProto(info.Phase),
		Revision: info.Revision,
		Nodes:    int32(info.Nodes),
		Links:    int32(info.Links),
	}
}

func eventToProto(ev model.Event) *netempb.Event {
	return &netempb.Event{
		Kind:      string(ev.Kind),
		SessionId: ev.SessionID,
		EntityId:  ev.EntityID,
		Phase:     phaseToProto(ev.Phase),
		Revision:  ev.Revision,
	}
}
