package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the command surface a frontend drives. Advance is called on a fixed
// cadence; Left, Right and Rotate in response to input between ticks.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Advance()
	Left()
	Right()
	Rotate()
	// Cells returns a fresh snapshot of the board including any falling
	// piece. Callers may keep or mutate it.
	Cells() Grid
}

// ParameterProvider is implemented by sims that expose a HUD snapshot.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}
