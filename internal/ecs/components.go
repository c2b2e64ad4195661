package ecs

import "github.com/go-gl/mathgl/mgl64"

// Transform represents an entity's position and scale in world units.
// Y grows upward. For colliders, Scale is the full box size.
type Transform struct {
	Position mgl64.Vec2
	Scale    mgl64.Vec2
}

// GravityAffected marks an entity pulled down by gravity
type GravityAffected struct {
	Airborne bool // not resting on a supporting surface
}

// Facing represents which direction entity faces
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns the string representation of the facing direction
func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "Right"
	case FacingLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// TerrainHandler decides what happens to an actor touching terrain
type TerrainHandler int

const (
	HandlerStop TerrainHandler = iota // push out and zero velocity on the contact axis
	HandlerDie                        // emit a DeathSignal, no physical response
)

// String returns the string representation of the handler
func (h TerrainHandler) String() string {
	switch h {
	case HandlerStop:
		return "stop"
	case HandlerDie:
		return "die"
	default:
		return "unknown"
	}
}

// ParseTerrainHandler parses "stop" or "die". Empty string means stop.
func ParseTerrainHandler(s string) (TerrainHandler, bool) {
	switch s {
	case "", "stop":
		return HandlerStop, true
	case "die":
		return HandlerDie, true
	default:
		return HandlerStop, false
	}
}
