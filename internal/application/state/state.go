package state

// GameState represents the current state of the game
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateRespawning // player died; world is rebuilt when the delay runs out
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateRespawning:
		return "Respawning"
	default:
		return "Unknown"
	}
}

// Simulating reports whether physics ticks run in this state
func (s GameState) Simulating() bool {
	return s == StatePlaying
}
