// Package scene defines the Scene interface for game screens.
//
// The simulation runs inside a scene so the game loop only needs to
// forward fixed ticks and draw calls.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one fixed tick of dt seconds.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene, including when the game stops
	// on an error. Use this for flushing recordings and releasing watchers.
	OnExit()
}
