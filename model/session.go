package model

// Phase is the lifecycle phase of an emulation session.
type Phase int

const (
	PhaseDefined Phase = iota
	PhaseInstantiating
	PhaseRunning
	PhaseShuttingDown
	PhaseTerminated
	// PhaseErrored is absorbing: it is entered on unrecoverable provisioning
	// failure and only Destroy is accepted afterwards.
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseDefined:
		return "defined"
	case PhaseInstantiating:
		return "instantiating"
	case PhaseRunning:
		return "running"
	case PhaseShuttingDown:
		return "shutting-down"
	case PhaseTerminated:
		return "terminated"
	case PhaseErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// SessionInfo is the wire-facing summary of a session.
type SessionInfo struct {
	ID       string
	Phase    Phase
	Revision uint64
	Nodes    int
	Links    int
}
