package sim

// Action is one of the fixed input channels the simulation reads.
type Action int

const (
	Left Action = iota
	Right
	Thrust
	Tether
	Restart
	Quit

	ActionCount
)

// String returns the action name for logs and key-binding display.
func (a Action) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	case Thrust:
		return "thrust"
	case Tether:
		return "tether"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Input is a per-tick snapshot of held actions. The collector writes it, the
// core only reads.
type Input [ActionCount]bool

// Held reports whether the action is held this tick.
func (in Input) Held(a Action) bool { return in[a] }

// Set marks an action held and returns the input, for test setup chains.
func (in Input) Set(a Action) Input {
	in[a] = true
	return in
}
