package model

import "time"

// Endpoint names one side of a link: a node plus an interface slot on it.
// Slots are small integers; slot N materialises as eth<N> inside the
// node's namespace. The optional addresses are assigned to that interface
// when the link is instantiated.
type Endpoint struct {
	NodeID string
	Slot   int
	IPv4   string // CIDR, optional
	IPv6   string // CIDR, optional
}

// Shaping holds traffic-shaping parameters for a link. Zero values mean
// unconstrained; LossPercent is a percentage in [0, 100].
type Shaping struct {
	BandwidthBps uint64
	Delay        time.Duration
	Jitter       time.Duration
	LossPercent  float64
}

// Unconstrained reports whether no shaping parameter is set.
func (s Shaping) Unconstrained() bool {
	return s.BandwidthBps == 0 && s.Delay == 0 && s.Jitter == 0 && s.LossPercent == 0
}

// Link is an emulated connection between two nodes, backed by a virtual
// interface pair once instantiated.
type Link struct {
	ID      string
	A, B    Endpoint
	Shaping Shaping

	// FabricHandle is non-empty iff Status is StatusInstantiated. It is
	// resolved through the Link Fabric Manager, mirroring Node.NamespaceHandle.
	FabricHandle string

	Status EntityStatus
}
