package tlv

import (
	"fmt"
	"time"

	"github.com/packetforge/netemd/model"
	"github.com/packetforge/netemd/topo"
)

// Message types. Requests are answered by MsgAck, a typed response, or
// MsgError. MsgEvent frames are pushed asynchronously after MsgSubscribe.
const (
	MsgSessionCreate uint16 = 0x0001
	MsgSessionStart  uint16 = 0x0002
	MsgSessionStop   uint16 = 0x0003
	MsgSessionDelete uint16 = 0x0004
	MsgSessionList   uint16 = 0x0005
	MsgSessionGet    uint16 = 0x0006

	MsgNodeAdd    uint16 = 0x0010
	MsgNodeUpdate uint16 = 0x0011
	MsgNodeRemove uint16 = 0x0012

	MsgLinkAdd    uint16 = 0x0020
	MsgLinkUpdate uint16 = 0x0021
	MsgLinkRemove uint16 = 0x0022

	MsgSnapshot  uint16 = 0x0030
	MsgSubscribe uint16 = 0x0031

	MsgAck             uint16 = 0x00F0
	MsgSessionInfo     uint16 = 0x00F1
	MsgSessionListResp uint16 = 0x00F2
	MsgSnapshotResp    uint16 = 0x00F3
	MsgEvent           uint16 = 0x00F4
	MsgError           uint16 = 0x00FF
)

// Field tags. Tags are scoped per message type but drawn from one space so a
// dump of any frame is self-describing.
const (
	TagSessionID uint16 = 1
	TagNodeID    uint16 = 2
	TagLinkID    uint16 = 3
	TagName      uint16 = 4
	TagNodeType  uint16 = 5
	TagHostname  uint16 = 6
	TagIPv4      uint16 = 7
	TagIPv6      uint16 = 8
	TagService   uint16 = 9

	TagEndpointA uint16 = 10
	TagEndpointB uint16 = 11
	TagSlot      uint16 = 12

	TagBandwidthBps uint16 = 20
	TagDelayUs      uint16 = 21
	TagJitterUs     uint16 = 22
	// Loss travels as millionths of a percent so the wire stays integral.
	TagLossMicroPct uint16 = 23

	TagPhase     uint16 = 30
	TagRevision  uint16 = 31
	TagStatus    uint16 = 32
	TagNodeCount uint16 = 33
	TagLinkCount uint16 = 34

	TagEventKind uint16 = 40
	TagEntityID  uint16 = 41

	TagNode    uint16 = 50
	TagLink    uint16 = 51
	TagSession uint16 = 52

	TagErrorCode    uint16 = 60
	TagErrorMessage uint16 = 61
	TagRequestType  uint16 = 62
)

// Error codes carried in MsgError frames. The code partitions failures the
// same way the gRPC status mapping does, so clients of either surface see
// one taxonomy.
const (
	CodeInvalidArgument     uint16 = 1
	CodeNotFound            uint16 = 2
	CodeExists              uint16 = 3
	CodeConflict            uint16 = 4
	CodeSlotInUse           uint16 = 5
	CodeInvalidState        uint16 = 6
	CodeResourceExhausted   uint16 = 7
	CodeProvisionFailed     uint16 = 8
	CodeShapingRejected     uint16 = 9
	CodeSlowConsumer        uint16 = 10
	CodeEndpointUnavailable uint16 = 11
	CodeInternal            uint16 = 99
)

func encodeShaping(fs Fields, sh model.Shaping) Fields {
	if sh.BandwidthBps != 0 {
		fs = fs.AddUint64(TagBandwidthBps, sh.BandwidthBps)
	}
	if sh.Delay != 0 {
		fs = fs.AddUint64(TagDelayUs, uint64(sh.Delay/time.Microsecond))
	}
	if sh.Jitter != 0 {
		fs = fs.AddUint64(TagJitterUs, uint64(sh.Jitter/time.Microsecond))
	}
	if sh.LossPercent != 0 {
		fs = fs.AddUint64(TagLossMicroPct, uint64(sh.LossPercent*1e6))
	}
	return fs
}

func decodeShaping(fs Fields) model.Shaping {
	var sh model.Shaping
	if v, ok := fs.Uint64(TagBandwidthBps); ok {
		sh.BandwidthBps = v
	}
	if v, ok := fs.Uint64(TagDelayUs); ok {
		sh.Delay = time.Duration(v) * time.Microsecond
	}
	if v, ok := fs.Uint64(TagJitterUs); ok {
		sh.Jitter = time.Duration(v) * time.Microsecond
	}
	if v, ok := fs.Uint64(TagLossMicroPct); ok {
		sh.LossPercent = float64(v) / 1e6
	}
	return sh
}

func encodeEndpoint(ep model.Endpoint) Fields {
	fs := Fields{}.AddString(TagNodeID, ep.NodeID).AddUint16(TagSlot, uint16(ep.Slot))
	if ep.IPv4 != "" {
		fs = fs.AddString(TagIPv4, ep.IPv4)
	}
	if ep.IPv6 != "" {
		fs = fs.AddString(TagIPv6, ep.IPv6)
	}
	return fs
}

func decodeEndpoint(fs Fields) (model.Endpoint, error) {
	var ep model.Endpoint
	id, ok := fs.String(TagNodeID)
	if !ok {
		return ep, fmt.Errorf("%w: endpoint missing node id", ErrMalformed)
	}
	ep.NodeID = id
	slot, ok := fs.Uint16(TagSlot)
	if !ok {
		return ep, fmt.Errorf("%w: endpoint missing slot", ErrMalformed)
	}
	ep.Slot = int(slot)
	ep.IPv4, _ = fs.String(TagIPv4)
	ep.IPv6, _ = fs.String(TagIPv6)
	return ep, nil
}

func encodeNode(n model.Node) Fields {
	fs := Fields{}.
		AddString(TagNodeID, n.ID).
		AddString(TagName, n.Name).
		AddString(TagNodeType, string(n.Type)).
		AddUint16(TagStatus, uint16(n.Status))
	if n.Config.Hostname != "" {
		fs = fs.AddString(TagHostname, n.Config.Hostname)
	}
	for _, a := range n.Config.IPv4 {
		fs = fs.AddString(TagIPv4, a)
	}
	for _, a := range n.Config.IPv6 {
		fs = fs.AddString(TagIPv6, a)
	}
	for _, s := range n.Config.Services {
		fs = fs.AddString(TagService, s)
	}
	return fs
}

func decodeNodeConfig(fs Fields) model.NodeConfig {
	var cfg model.NodeConfig
	cfg.Hostname, _ = fs.String(TagHostname)
	cfg.IPv4 = fs.Strings(TagIPv4)
	cfg.IPv6 = fs.Strings(TagIPv6)
	cfg.Services = fs.Strings(TagService)
	return cfg
}

func decodeNode(fs Fields) (model.Node, error) {
	var n model.Node
	id, ok := fs.String(TagNodeID)
	if !ok {
		return n, fmt.Errorf("%w: node missing id", ErrMalformed)
	}
	n.ID = id
	n.Name, _ = fs.String(TagName)
	if t, ok := fs.String(TagNodeType); ok {
		n.Type = model.NodeType(t)
	} else {
		n.Type = model.NodeTypeHost
	}
	n.Config = decodeNodeConfig(fs)
	return n, nil
}

func encodeLink(l model.Link) Fields {
	fs := Fields{}.
		AddString(TagLinkID, l.ID).
		AddNested(TagEndpointA, encodeEndpoint(l.A)).
		AddNested(TagEndpointB, encodeEndpoint(l.B)).
		AddUint16(TagStatus, uint16(l.Status))
	return encodeShaping(fs, l.Shaping)
}

func decodeLink(fs Fields) (model.Link, error) {
	var l model.Link
	id, ok := fs.String(TagLinkID)
	if !ok {
		return l, fmt.Errorf("%w: link missing id", ErrMalformed)
	}
	l.ID = id
	for tag, dst := range map[uint16]*model.Endpoint{TagEndpointA: &l.A, TagEndpointB: &l.B} {
		nested, err := fs.Nested(tag)
		if err != nil {
			return l, err
		}
		if len(nested) != 1 {
			return l, fmt.Errorf("%w: link %q needs both endpoints", ErrMalformed, l.ID)
		}
		ep, err := decodeEndpoint(nested[0])
		if err != nil {
			return l, err
		}
		*dst = ep
	}
	l.Shaping = decodeShaping(fs)
	return l, nil
}

func encodeSessionInfo(info model.SessionInfo) Fields {
	return Fields{}.
		AddString(TagSessionID, info.ID).
		AddString(TagPhase, info.Phase.String()).
		AddUint64(TagRevision, info.Revision).
		AddUint32(TagNodeCount, uint32(info.Nodes)).
		AddUint32(TagLinkCount, uint32(info.Links))
}

func encodeSnapshot(phase model.Phase, snap topo.Snapshot) Fields {
	fs := Fields{}.
		AddString(TagSessionID, snap.SessionID).
		AddString(TagPhase, phase.String()).
		AddUint64(TagRevision, snap.Revision)
	for _, n := range snap.Nodes {
		fs = fs.AddNested(TagNode, encodeNode(n))
	}
	for _, l := range snap.Links {
		fs = fs.AddNested(TagLink, encodeLink(l))
	}
	return fs
}

func encodeEvent(ev model.Event) Fields {
	fs := Fields{}.
		AddString(TagEventKind, string(ev.Kind)).
		AddString(TagSessionID, ev.SessionID).
		AddUint64(TagRevision, ev.Revision)
	if ev.EntityID != "" {
		fs = fs.AddString(TagEntityID, ev.EntityID)
	}
	if ev.Kind == model.EventSessionPhase {
		fs = fs.AddString(TagPhase, ev.Phase.String())
	}
	return fs
}
