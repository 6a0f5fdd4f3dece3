package projectile

// Lifecycle is the flight state of a projectile
// Active is the only non-terminal state; no transition leaves a terminal state
type Lifecycle uint8

const (
	Active Lifecycle = iota
	Crashed
	Escaped
	Orbited
)

var lifecycleNames = [...]string{
	Active:  "active",
	Crashed: "crashed",
	Escaped: "escaped",
	Orbited: "orbited",
}

func (l Lifecycle) String() string {
	if int(l) < len(lifecycleNames) {
		return lifecycleNames[l]
	}
	return "unknown"
}

// Terminal reports whether the state admits no further updates
func (l Lifecycle) Terminal() bool {
	return l != Active
}
