// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/platcore/internal/application/scene"
)

// Options configures a Game
type Options struct {
	ScreenWidth  int
	ScreenHeight int
	TickRate     int // ticks per second; ebiten's TPS must match
	Logger       *zap.Logger
}

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	updates uint64
	logger  *zap.Logger
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	dt := 1.0 / 64.0
	if opts.TickRate > 0 {
		dt = 1.0 / float64(opts.TickRate)
	}

	g := &Game{
		current: initialScene,
		screenW: opts.ScreenWidth,
		screenH: opts.ScreenHeight,
		dt:      dt,
		logger:  logger,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// A scene error exits the current scene and ends the loop.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.updates++

	next, err := g.current.Update(g.dt)
	if err != nil {
		g.logger.Error("scene update failed, stopping", zap.Uint64("update", g.updates), zap.Error(err))
		g.current.OnExit()
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// DT returns the fixed delta time passed to scenes
func (g *Game) DT() float64 {
	return g.dt
}

// Updates returns how many times Update ran
func (g *Game) Updates() uint64 {
	return g.updates
}
