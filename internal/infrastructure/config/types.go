package config

import (
	"errors"
	"fmt"
)

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display  DisplayConfig   `json:"display"`
	Physics  PhysicsSettings `json:"physics"`
	Movement MovementConfig  `json:"movement"`
	Jump     JumpConfig      `json:"jump"`
	Debug    DebugConfig     `json:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	TickRate     int `json:"tickRate"` // fixed simulation ticks per second
}

type PhysicsSettings struct {
	Gravity float64 `json:"gravity"` // units/s^2, applied downward
}

type MovementConfig struct {
	Speed float64 `json:"speed"` // horizontal units/s
}

type JumpConfig struct {
	Speed         float64 `json:"speed"`         // initial vertical units/s
	Nudge         float64 `json:"nudge"`         // instant lift so the jump clears the ground contact
	FallThreshold float64 `json:"fallThreshold"` // vy below this marks the player airborne
}

type DebugConfig struct {
	ShowHitboxes bool `json:"showHitboxes"`
}

// Defaults used when physics.json leaves a value at zero
const (
	DefaultScreenWidth   = 640
	DefaultScreenHeight  = 480
	DefaultScale         = 1
	DefaultTickRate      = 64
	DefaultGravity       = 9.8 * 80
	DefaultMoveSpeed     = 150
	DefaultJumpSpeed     = 375
	DefaultJumpNudge     = 3
	DefaultFallThreshold = -10
)

// DefaultPhysicsConfig returns a config with every default applied
func DefaultPhysicsConfig() *PhysicsConfig {
	cfg := &PhysicsConfig{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero values
func (c *PhysicsConfig) ApplyDefaults() {
	if c.Display.ScreenWidth == 0 {
		c.Display.ScreenWidth = DefaultScreenWidth
	}
	if c.Display.ScreenHeight == 0 {
		c.Display.ScreenHeight = DefaultScreenHeight
	}
	if c.Display.Scale == 0 {
		c.Display.Scale = DefaultScale
	}
	if c.Display.TickRate == 0 {
		c.Display.TickRate = DefaultTickRate
	}
	if c.Physics.Gravity == 0 {
		c.Physics.Gravity = DefaultGravity
	}
	if c.Movement.Speed == 0 {
		c.Movement.Speed = DefaultMoveSpeed
	}
	if c.Jump.Speed == 0 {
		c.Jump.Speed = DefaultJumpSpeed
	}
	if c.Jump.Nudge == 0 {
		c.Jump.Nudge = DefaultJumpNudge
	}
	if c.Jump.FallThreshold == 0 {
		c.Jump.FallThreshold = DefaultFallThreshold
	}
}

// Validate rejects values the simulation cannot run with
func (c *PhysicsConfig) Validate() error {
	var errs []error
	if c.Display.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("display.tickRate must be positive, got %d", c.Display.TickRate))
	}
	if c.Display.Scale <= 0 {
		errs = append(errs, fmt.Errorf("display.scale must be positive, got %d", c.Display.Scale))
	}
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d",
			c.Display.ScreenWidth, c.Display.ScreenHeight))
	}
	if c.Movement.Speed <= 0 {
		errs = append(errs, fmt.Errorf("movement.speed must be positive, got %v", c.Movement.Speed))
	}
	if c.Jump.Speed <= 0 {
		errs = append(errs, fmt.Errorf("jump.speed must be positive, got %v", c.Jump.Speed))
	}
	return errors.Join(errs...)
}

// DT returns the fixed timestep in seconds
func (c *PhysicsConfig) DT() float64 {
	return 1.0 / float64(c.Display.TickRate)
}
