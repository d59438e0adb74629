package entity

// State is a combat entity's behavioral state. Each state drives one
// animation clip; Spawn, Attack, Hurt and Die lock out other transitions
// until they release, and Die is terminal.
type State int

const (
	StateSpawn State = iota
	StateIdle
	StateWalk
	StateAttack
	StateHurt
	StateDie
)

// String returns the state's name, which doubles as the key used for
// clips in kind definition files.
func (s State) String() string {
	switch s {
	case StateSpawn:
		return "spawn"
	case StateIdle:
		return "idle"
	case StateWalk:
		return "walk"
	case StateAttack:
		return "attack"
	case StateHurt:
		return "hurt"
	case StateDie:
		return "die"
	default:
		return "unknown"
	}
}

// stateByName resolves a definition-file state key.
func stateByName(name string) (State, bool) {
	switch name {
	case "spawn":
		return StateSpawn, true
	case "idle":
		return StateIdle, true
	case "walk":
		return StateWalk, true
	case "attack":
		return StateAttack, true
	case "hurt":
		return StateHurt, true
	case "die":
		return StateDie, true
	default:
		return 0, false
	}
}
