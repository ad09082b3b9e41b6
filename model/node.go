package model

// NodeType categorises an emulated node and decides its backing resource.
// Hosts and routers get a network namespace; switches get a bridge in the
// daemon's own namespace.
type NodeType string

const (
	NodeTypeHost   NodeType = "host"
	NodeTypeRouter NodeType = "router"
	NodeTypeSwitch NodeType = "switch"
)

// EntityStatus tracks where a node or link is in its provisioning lifecycle.
type EntityStatus int

const (
	StatusDefined EntityStatus = iota
	StatusInstantiated
	StatusFailed
	// StatusRemoved exists for the wire contract; the store deletes
	// removed records rather than tombstoning them, so it never appears
	// on a stored entity.
	StatusRemoved
)

func (s EntityStatus) String() string {
	switch s {
	case StatusDefined:
		return "defined"
	case StatusInstantiated:
		return "instantiated"
	case StatusFailed:
		return "failed"
	case StatusRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// NodeConfig is the desired configuration for a node, supplied by clients.
type NodeConfig struct {
	Hostname string
	// IPv4 and IPv6 addresses in CIDR notation assigned to the node's
	// loopback or first interface once instantiated.
	IPv4     []string
	IPv6     []string
	Services []string
}

// Node is an emulated network endpoint owned by the Topology Store.
type Node struct {
	ID     string
	Name   string
	Type   NodeType
	Config NodeConfig

	// NamespaceHandle is non-empty iff Status is StatusInstantiated.
	// It is an opaque identifier resolved by the Namespace Manager, never
	// a raw OS path or file descriptor.
	NamespaceHandle string

	Status EntityStatus
}
