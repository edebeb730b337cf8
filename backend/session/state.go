package session

type State int

const (
	Loading State = iota
	AwaitingDecision
	Quarantining
	Completed
	Aborted
)

func (s State) String() string {
	switch s {
	case Loading:
		return "Loading"
	case AwaitingDecision:
		return "AwaitingDecision"
	case Quarantining:
		return "Quarantining"
	case Completed:
		return "Completed"
	case Aborted:
		return "Aborted"
	}
	return "Unknown"
}

// IsClosed tells whether the session no longer accepts decisions.
func (s State) IsClosed() bool {
	return s == Completed || s == Aborted
}
