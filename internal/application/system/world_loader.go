package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/platcore/internal/ecs"
	"github.com/younwookim/platcore/internal/infrastructure/config"
)

// LoadWorld builds a World from a stage config: static bodies first, then
// actors, the player and the camera, so ids follow file order.
func LoadWorld(cfg *config.StageConfig) (*ecs.World, error) {
	w := ecs.NewWorld()

	for i, t := range cfg.Terrain {
		if err := checkSize(t); err != nil {
			return nil, fmt.Errorf("terrain[%d]: %w", i, err)
		}
		w.CreateTerrain(pos(t), size(t))
	}
	for i, st := range cfg.Static {
		if err := checkSize(st); err != nil {
			return nil, fmt.Errorf("static[%d]: %w", i, err)
		}
		w.CreateStatic(pos(st), size(st))
	}

	for i, a := range cfg.Actors {
		if err := checkSize(a.BodyConfig); err != nil {
			return nil, fmt.Errorf("actors[%d]: %w", i, err)
		}
		handler, ok := ecs.ParseTerrainHandler(a.Handler)
		if !ok {
			return nil, fmt.Errorf("actors[%d]: unknown handler %q", i, a.Handler)
		}
		w.CreateActor(ecs.ActorConfig{
			Position: pos(a.BodyConfig),
			Size:     size(a.BodyConfig),
			Velocity: mgl64.Vec2{a.VX, a.VY},
			Gravity:  a.Gravity,
			Handler:  handler,
		})
	}

	if err := checkSize(cfg.Player); err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	handler, ok := ecs.ParseTerrainHandler(cfg.Player.Handler)
	if !ok {
		return nil, fmt.Errorf("player: unknown handler %q", cfg.Player.Handler)
	}
	player := w.CreatePlayer(pos(cfg.Player), size(cfg.Player))
	w.TerrainHandler[player] = handler

	if cfg.Camera != nil {
		w.CreateCamera(mgl64.Vec2{cfg.Camera.X, cfg.Camera.Y})
	}

	return w, nil
}

func pos(b config.BodyConfig) mgl64.Vec2  { return mgl64.Vec2{b.X, b.Y} }
func size(b config.BodyConfig) mgl64.Vec2 { return mgl64.Vec2{b.Width, b.Height} }

func checkSize(b config.BodyConfig) error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("size must be positive, got %vx%v", b.Width, b.Height)
	}
	return nil
}
