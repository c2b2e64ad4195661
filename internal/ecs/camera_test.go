package ecs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestFollowCamera(t *testing.T) {
	t.Run("copies player position", func(t *testing.T) {
		w := NewWorld()
		player := w.CreatePlayer(mgl64.Vec2{40, -75}, mgl64.Vec2{20, 20})
		cam := w.CreateCamera(mgl64.Vec2{})

		assert.True(t, FollowCamera(w))
		assert.Equal(t, w.Transform[player].Position, w.Transform[cam].Position)
		assert.Equal(t, mgl64.Vec2{1, 1}, w.Transform[cam].Scale, "only position is synced")
	})

	t.Run("no camera", func(t *testing.T) {
		w := NewWorld()
		w.CreatePlayer(mgl64.Vec2{40, -75}, mgl64.Vec2{20, 20})

		assert.False(t, FollowCamera(w))
	})

	t.Run("two players", func(t *testing.T) {
		w := NewWorld()
		w.CreatePlayer(mgl64.Vec2{40, -75}, mgl64.Vec2{20, 20})
		w.CreatePlayer(mgl64.Vec2{-40, -75}, mgl64.Vec2{20, 20})
		cam := w.CreateCamera(mgl64.Vec2{5, 5})

		assert.False(t, FollowCamera(w))
		assert.Equal(t, mgl64.Vec2{5, 5}, w.Transform[cam].Position)
	})

	t.Run("two cameras", func(t *testing.T) {
		w := NewWorld()
		w.CreatePlayer(mgl64.Vec2{40, -75}, mgl64.Vec2{20, 20})
		a := w.CreateCamera(mgl64.Vec2{1, 1})
		b := w.CreateCamera(mgl64.Vec2{2, 2})

		assert.False(t, FollowCamera(w))
		assert.Equal(t, mgl64.Vec2{1, 1}, w.Transform[a].Position)
		assert.Equal(t, mgl64.Vec2{2, 2}, w.Transform[b].Position)
	})
}
