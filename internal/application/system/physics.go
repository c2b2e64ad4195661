package system

import (
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/younwookim/platcore/internal/ecs"
	"github.com/younwookim/platcore/internal/infrastructure/config"
)

// TickReport is what one tick produced. Slices are copies owned by the caller.
type TickReport struct {
	Tick    uint64
	Dynamic []ecs.DynamicOverlap
	Static  []ecs.StaticOverlap
	Terrain []ecs.TerrainOverlap
	Deaths  []ecs.DeathSignal
}

// PhysicsSystem runs the fixed-timestep pipeline over a World
type PhysicsSystem struct {
	config   *config.PhysicsConfig
	movement ecs.MovementConfig
	logger   *zap.Logger
	signals  ecs.Signals
	tick     uint64
	stats    Stats
}

// NewPhysicsSystem creates a new physics system. A nil logger discards output.
func NewPhysicsSystem(cfg *config.PhysicsConfig, logger *zap.Logger) *PhysicsSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhysicsSystem{
		config: cfg,
		movement: ecs.MovementConfig{
			Speed:         cfg.Movement.Speed,
			JumpSpeed:     cfg.Jump.Speed,
			JumpNudge:     cfg.Jump.Nudge,
			FallThreshold: cfg.Jump.FallThreshold,
		},
		logger: logger.Named("physics"),
	}
}

// DT returns the fixed timestep in seconds
func (s *PhysicsSystem) DT() float64 {
	return s.config.DT()
}

// TickCount returns the number of completed ticks
func (s *PhysicsSystem) TickCount() uint64 {
	return s.tick
}

// Stats returns the running counters
func (s *PhysicsSystem) Stats() *Stats {
	return &s.stats
}

// Tick advances the world by one step using queued player actions.
// An action without behavior aborts the tick before anything moves.
func (s *PhysicsSystem) Tick(w *ecs.World, actions []ecs.Action) (TickReport, error) {
	start := time.Now()
	s.signals.Reset()

	if err := ecs.ApplyPlayerActions(w, actions, s.movement); err != nil {
		return TickReport{}, fmt.Errorf("tick %d: %w", s.tick+1, err)
	}
	return s.step(w, start), nil
}

// TickKeys advances the world by one step using raw key state
func (s *PhysicsSystem) TickKeys(w *ecs.World, keys ecs.KeyState) TickReport {
	start := time.Now()
	s.signals.Reset()

	ecs.ApplyPlayerKeys(w, keys, s.movement)
	return s.step(w, start)
}

// step runs everything after movement: gravity, integration, detection, resolution, camera
func (s *PhysicsSystem) step(w *ecs.World, start time.Time) TickReport {
	dt := s.DT()

	ecs.ApplyGravity(w, s.config.Physics.Gravity, dt)
	ecs.ApplyVelocity(w, dt)

	ecs.DetectStaticOverlaps(w, &s.signals)
	ecs.DetectDynamicOverlaps(w, &s.signals)

	// the resolver drains the terrain queue
	terrain := slices.Clone(s.signals.Terrain)
	dropped := ecs.ResolveTerrainOverlaps(w, &s.signals, s.logger)

	ecs.FollowCamera(w)

	s.tick++
	report := TickReport{
		Tick:    s.tick,
		Dynamic: slices.Clone(s.signals.Dynamic),
		Static:  slices.Clone(s.signals.Static),
		Terrain: terrain,
		Deaths:  slices.Clone(s.signals.Deaths),
	}
	s.stats.AddTick(report, len(terrain), dropped, time.Since(start).Nanoseconds())

	if dropped > 0 {
		s.logger.Debug("terrain signals dropped", zap.Uint64("tick", s.tick), zap.Int("count", dropped))
	}
	return report
}

// ApplyDeaths removes every non-player actor named in deaths and reports
// whether the player was among them. Duplicate signals are harmless.
func ApplyDeaths(w *ecs.World, deaths []ecs.DeathSignal) (playerDied bool, removed int) {
	for _, d := range deaths {
		if _, ok := w.IsPlayer[d.Actor]; ok {
			playerDied = true
			continue
		}
		if !w.Exists(d.Actor) {
			continue
		}
		w.DestroyEntity(d.Actor)
		removed++
	}
	return playerDied, removed
}
