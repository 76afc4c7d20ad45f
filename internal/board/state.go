package board

// State summarises what the next Advance will do.
type State uint8

const (
	// Idle: nothing is falling and no piece is active; the next tick spawns.
	Idle State = iota
	// Descending: a piece is active, loose blocks may be falling too.
	Descending
	// Resolving: no piece, but settled blocks are still falling.
	Resolving
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Descending:
		return "descending"
	case Resolving:
		return "resolving"
	default:
		return "unknown"
	}
}
