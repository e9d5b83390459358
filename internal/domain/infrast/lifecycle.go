package infrast

// Lifecycle tells the compiler whether the scheduler is running the current sequence
type Lifecycle int

const (
	// Idle - sequence may be rebuilt
	Idle Lifecycle = iota
	// Executing - sequence is frozen, only parameters are applied
	Executing
)

func (l Lifecycle) String() string {
	switch l {
	case Idle:
		return "idle"
	case Executing:
		return "executing"
	}
	return "unknown"
}
