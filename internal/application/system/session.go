package system

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/platcore/internal/ecs"
	"github.com/younwookim/platcore/internal/infrastructure/config"
)

// DefaultRespawnDelay is how many ticks the world stays frozen after the player dies
const DefaultRespawnDelay = 32

// Session owns one world built from a stage and advances it a tick at a time.
// Dead actors are removed after each tick; a dead player freezes the world
// for RespawnDelay ticks and then the stage is rebuilt.
type Session struct {
	stage        *config.StageConfig
	physics      *PhysicsSystem
	world        *ecs.World
	logger       *zap.Logger
	respawnDelay int
	respawnLeft  int
	playerDeaths int
	last         TickReport
}

// NewSession builds the stage's world and a physics system for it
func NewSession(physicsCfg *config.PhysicsConfig, stage *config.StageConfig, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	w, err := LoadWorld(stage)
	if err != nil {
		return nil, fmt.Errorf("failed to load stage %s: %w", stage.ID, err)
	}
	return &Session{
		stage:        stage,
		physics:      NewPhysicsSystem(physicsCfg, logger),
		world:        w,
		logger:       logger,
		respawnDelay: DefaultRespawnDelay,
	}, nil
}

// SetRespawnDelay changes the freeze length; 0 respawns on the next tick
func (s *Session) SetRespawnDelay(ticks int) {
	s.respawnDelay = max(ticks, 0)
}

// Step runs one tick with the given input. While respawning the input is ignored.
func (s *Session) Step(in InputState) (TickReport, error) {
	if s.respawnLeft > 0 {
		s.respawnLeft--
		if s.respawnLeft == 0 {
			if err := s.Respawn(); err != nil {
				return TickReport{}, err
			}
		}
		s.last = TickReport{}
		return s.last, nil
	}

	report, err := s.physics.Tick(s.world, MapActions(in))
	if err != nil {
		return TickReport{}, err
	}
	s.last = report

	playerDied, removed := ApplyDeaths(s.world, report.Deaths)
	if removed > 0 {
		s.logger.Debug("actors removed", zap.Uint64("tick", report.Tick), zap.Int("count", removed))
	}
	if playerDied {
		s.playerDeaths++
		s.logger.Info("player died", zap.Uint64("tick", report.Tick), zap.Int("deaths", s.playerDeaths))
		s.respawnLeft = s.respawnDelay + 1
	}
	return report, nil
}

// Respawn rebuilds the world from the stage
func (s *Session) Respawn() error {
	w, err := LoadWorld(s.stage)
	if err != nil {
		return fmt.Errorf("failed to respawn: %w", err)
	}
	s.world = w
	s.respawnLeft = 0
	return nil
}

// Reload swaps in a new stage and rebuilds the world
func (s *Session) Reload(stage *config.StageConfig) error {
	w, err := LoadWorld(stage)
	if err != nil {
		return fmt.Errorf("failed to reload stage %s: %w", stage.ID, err)
	}
	s.stage = stage
	s.world = w
	s.respawnLeft = 0
	return nil
}

// SetPhysics replaces the physics config. Tick count and stats restart.
func (s *Session) SetPhysics(cfg *config.PhysicsConfig) {
	s.physics = NewPhysicsSystem(cfg, s.logger)
}

// World returns the current world; it changes on respawn and reload
func (s *Session) World() *ecs.World { return s.world }

// Physics returns the physics system
func (s *Session) Physics() *PhysicsSystem { return s.physics }

// Stage returns the current stage config
func (s *Session) Stage() *config.StageConfig { return s.stage }

// Respawning reports whether the world is frozen after a player death
func (s *Session) Respawning() bool { return s.respawnLeft > 0 }

// PlayerDeaths returns how many times the player has died
func (s *Session) PlayerDeaths() int { return s.playerDeaths }

// LastReport returns the most recent tick report
func (s *Session) LastReport() TickReport { return s.last }
