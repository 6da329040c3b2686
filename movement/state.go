package movement

// State identifies the active movement state. Exactly one state is active at
// a time; only the per-step transition logic mutates it.
type State int

const (
	StateIdle State = iota
	StateWalking
	StateFalling
	StateSliding
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateFalling:
		return "falling"
	case StateSliding:
		return "sliding"
	default:
		return "unknown"
	}
}

// GroundKind classifies the surface found by the downward ground probe.
type GroundKind int

const (
	GroundAir GroundKind = iota
	GroundFlat
	GroundShallow
	GroundSteep
)

func (g GroundKind) String() string {
	switch g {
	case GroundAir:
		return "air"
	case GroundFlat:
		return "flat"
	case GroundShallow:
		return "shallow"
	case GroundSteep:
		return "steep"
	default:
		return "unknown"
	}
}
