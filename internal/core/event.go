package core

// Event is a state delta the simulation reports to its collaborators.
type Event int

const (
	EventJump       Event = iota + 1 // Impulse applied
	EventScore                       // A pair was passed
	EventCollision                   // Body hit a pair, the floor or the ceiling
	EventSessionEnd                  // Session moved to Over
	EventNewBest                     // Best score was raised
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventJump:
		return "jump"
	case EventScore:
		return "score"
	case EventCollision:
		return "collision"
	case EventSessionEnd:
		return "session-end"
	case EventNewBest:
		return "new-best"
	default:
		return "unknown"
	}
}
