package ecs

import "fmt"

// MovementConfig holds player movement tuning.
// Speeds are in units/s, Nudge in units.
type MovementConfig struct {
	Speed         float64 // horizontal run speed
	JumpSpeed     float64 // initial upward velocity
	JumpNudge     float64 // lift applied on jump to leave resting contact
	FallThreshold float64 // vertical velocity below which the player counts as falling
}

// DefaultMovementConfig returns the stock tuning
func DefaultMovementConfig() MovementConfig {
	return MovementConfig{
		Speed:         150,
		JumpSpeed:     375,
		JumpNudge:     3,
		FallThreshold: -10,
	}
}

// ApplyPlayerActions applies one tick's action queue to the player.
// The whole queue is checked first, so an unimplemented action aborts
// before anything is mutated.
func ApplyPlayerActions(w *World, actions []Action, cfg MovementConfig) error {
	var keys KeyState
	for _, a := range actions {
		switch a {
		case ActionMoveRight:
			keys.Right = true
		case ActionMoveLeft:
			keys.Left = true
		case ActionJump:
			keys.Jump = true
		case ActionCrouch, ActionAttack, ActionInteract:
			return fmt.Errorf("%w: %s", ErrNotImplemented, a)
		default:
			return fmt.Errorf("unknown action %d", int(a))
		}
	}

	ApplyPlayerKeys(w, keys, cfg)
	return nil
}

// ApplyPlayerKeys applies raw key state to the player.
// Zero or several players is a no-op.
func ApplyPlayerKeys(w *World, keys KeyState, cfg MovementConfig) {
	id, ok := w.SinglePlayer()
	if !ok {
		return
	}

	xf, hasXf := w.Transform[id]
	vel, hasVel := w.Velocity[id]
	if !hasXf || !hasVel {
		return
	}

	// Horizontal: pressing both cancels out
	switch {
	case keys.Right && !keys.Left:
		vel[0] = cfg.Speed
		setFacing(w, id, FacingRight)
	case keys.Left && !keys.Right:
		vel[0] = -cfg.Speed
		setFacing(w, id, FacingLeft)
	default:
		vel[0] = 0
	}

	// Jumping and falling need fall state
	if grav, ok := w.Gravity[id]; ok {
		// Walked off a ledge
		if vel[1] < cfg.FallThreshold {
			grav.Airborne = true
		}

		if keys.Jump && !grav.Airborne {
			xf.Position[1] += cfg.JumpNudge
			vel[1] = cfg.JumpSpeed
			grav.Airborne = true
		}
		w.Gravity[id] = grav
	}

	w.Transform[id] = xf
	w.Velocity[id] = vel
}

// setFacing writes Facing only when the entity has one and it changed
func setFacing(w *World, id EntityID, f Facing) {
	cur, ok := w.Facing[id]
	if !ok || cur == f {
		return
	}
	w.Facing[id] = f
}
