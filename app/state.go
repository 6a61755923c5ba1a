package app

// State is the Host life-cycle phase.
type State int

const (
	StateConstructed State = iota
	StateStarting
	StateReady
	StateLooping
	StateStopping
	StateTerminated
	StateFaulted
)

var stateNames = [...]string{
	StateConstructed: "constructed",
	StateStarting:    "starting",
	StateReady:       "ready",
	StateLooping:     "looping",
	StateStopping:    "stopping",
	StateTerminated:  "terminated",
	StateFaulted:     "faulted",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
