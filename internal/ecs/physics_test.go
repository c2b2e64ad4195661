package ecs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestApplyGravity(t *testing.T) {
	const dt = 0.1

	t.Run("reduces vertical velocity by G*dt", func(t *testing.T) {
		w := NewWorld()
		id := w.CreatePlayer(mgl64.Vec2{}, mgl64.Vec2{20, 20})

		ApplyGravity(w, DefaultGravity, dt)

		assert.InDelta(t, -78.4, w.Velocity[id][1], 1e-9)
		assert.Equal(t, 0.0, w.Velocity[id][0], "horizontal velocity untouched")
	})

	t.Run("independent of airborne state", func(t *testing.T) {
		w := NewWorld()
		airborne := w.CreatePlayer(mgl64.Vec2{}, mgl64.Vec2{20, 20})
		grounded := w.CreateActor(ActorConfig{Size: mgl64.Vec2{1, 1}, Gravity: true})
		w.Gravity[grounded] = GravityAffected{Airborne: false}
		w.Velocity[grounded] = mgl64.Vec2{0, 50}

		ApplyGravity(w, DefaultGravity, dt)

		assert.InDelta(t, -78.4, w.Velocity[airborne][1], 1e-9)
		assert.InDelta(t, 50-78.4, w.Velocity[grounded][1], 1e-9)
	})

	t.Run("skips entities without gravity", func(t *testing.T) {
		w := NewWorld()
		id := w.CreateActor(ActorConfig{Size: mgl64.Vec2{1, 1}, Velocity: mgl64.Vec2{3, 4}})

		ApplyGravity(w, DefaultGravity, dt)

		assert.Equal(t, mgl64.Vec2{3, 4}, w.Velocity[id])
	})
}

func TestApplyVelocity(t *testing.T) {
	w := NewWorld()
	a := w.CreateActor(ActorConfig{Position: mgl64.Vec2{10, 20}, Size: mgl64.Vec2{1, 1}, Velocity: mgl64.Vec2{100, -50}})
	b := w.CreateActor(ActorConfig{Position: mgl64.Vec2{-5, 0}, Size: mgl64.Vec2{1, 1}, Velocity: mgl64.Vec2{0, 30}})
	terrain := w.CreateTerrain(mgl64.Vec2{0, 0}, mgl64.Vec2{10, 10})

	ApplyVelocity(w, 0.5)

	posA := w.Transform[a].Position
	posB := w.Transform[b].Position
	assert.InDelta(t, 60, posA[0], 1e-9)
	assert.InDelta(t, -5, posA[1], 1e-9)
	assert.InDelta(t, -5, posB[0], 1e-9)
	assert.InDelta(t, 15, posB[1], 1e-9)
	assert.Equal(t, mgl64.Vec2{0, 0}, w.Transform[terrain].Position, "static bodies have no velocity")
}

func TestApplyVelocity_OrderIndependent(t *testing.T) {
	build := func(reverse bool) *World {
		w := NewWorld()
		cfgs := []ActorConfig{
			{Position: mgl64.Vec2{1, 1}, Size: mgl64.Vec2{1, 1}, Velocity: mgl64.Vec2{10, 0}},
			{Position: mgl64.Vec2{2, 2}, Size: mgl64.Vec2{1, 1}, Velocity: mgl64.Vec2{0, -10}},
			{Position: mgl64.Vec2{3, 3}, Size: mgl64.Vec2{1, 1}, Velocity: mgl64.Vec2{-7, 7}},
		}
		if reverse {
			cfgs[0], cfgs[2] = cfgs[2], cfgs[0]
		}
		for _, c := range cfgs {
			w.CreateActor(c)
		}
		return w
	}

	forward := build(false)
	backward := build(true)
	ApplyVelocity(forward, 1.0/64)
	ApplyVelocity(backward, 1.0/64)

	assert.Equal(t, forward.Transform[1].Position, backward.Transform[3].Position)
	assert.Equal(t, forward.Transform[2].Position, backward.Transform[2].Position)
	assert.Equal(t, forward.Transform[3].Position, backward.Transform[1].Position)
}
