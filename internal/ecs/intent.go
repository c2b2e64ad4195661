package ecs

import "errors"

// ErrNotImplemented is returned for player actions that have no behavior yet
var ErrNotImplemented = errors.New("not implemented")

// Action is a discrete movement intent queued for one tick
type Action int

const (
	ActionMoveRight Action = iota
	ActionMoveLeft
	ActionCrouch
	ActionJump
	ActionAttack
	ActionInteract
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionMoveRight:
		return "MoveRight"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionCrouch:
		return "Crouch"
	case ActionJump:
		return "Jump"
	case ActionAttack:
		return "Attack"
	case ActionInteract:
		return "Interact"
	default:
		return "Unknown"
	}
}

// KeyState is raw directional key state, for callers that skip the action queue
type KeyState struct {
	Left  bool
	Right bool
	Jump  bool
}
