package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/younwookim/platcore/internal/application/replay"
	"github.com/younwookim/platcore/internal/application/system"
	"github.com/younwookim/platcore/internal/infrastructure/config"
)

// ReplayResult is the state after a headless replay
type ReplayResult struct {
	Stage        string
	Frames       int
	PlayerDeaths int
	HasPlayer    bool
	Position     mgl64.Vec2
	Velocity     mgl64.Vec2
	Airborne     bool
	Stats        system.StatsSnapshot
}

// runReplay feeds every recorded frame through a fresh session, without a window
func runReplay(loader *config.Loader, data *replay.ReplayData, logger *zap.Logger) (ReplayResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	physics, err := loader.LoadPhysics()
	if err != nil {
		return ReplayResult{}, err
	}
	if data.TickRate > 0 && data.TickRate != physics.Display.TickRate {
		logger.Warn("using the recorded tick rate",
			zap.Int("recorded", data.TickRate), zap.Int("configured", physics.Display.TickRate))
		physics.Display.TickRate = data.TickRate
	}

	stage, err := loader.LoadStage(data.Stage)
	if err != nil {
		return ReplayResult{}, err
	}

	session, err := system.NewSession(physics, stage, logger)
	if err != nil {
		return ReplayResult{}, err
	}

	replayer := replay.NewReplayer(*data)
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		if _, err := session.Step(input); err != nil {
			return ReplayResult{}, fmt.Errorf("replay frame %d: %w", replayer.CurrentFrame()-1, err)
		}
	}

	result := ReplayResult{
		Stage:        stage.ID,
		Frames:       replayer.TotalFrames(),
		PlayerDeaths: session.PlayerDeaths(),
		Stats:        session.Physics().Stats().Snapshot(),
	}
	w := session.World()
	if id, ok := w.SinglePlayer(); ok {
		result.HasPlayer = true
		result.Position = w.Transform[id].Position
		result.Velocity = w.Velocity[id]
		result.Airborne = w.Gravity[id].Airborne
	}
	return result, nil
}

// Log writes the result as one structured record
func (r ReplayResult) Log(logger *zap.Logger) {
	logger.Info("replay finished",
		zap.String("stage", r.Stage),
		zap.Int("frames", r.Frames),
		zap.Int("playerDeaths", r.PlayerDeaths),
		zap.Bool("hasPlayer", r.HasPlayer),
		zap.Float64s("position", r.Position[:]),
		zap.Float64s("velocity", r.Velocity[:]),
		zap.Bool("airborne", r.Airborne),
		zap.Int64("ticks", r.Stats.Ticks),
		zap.Float64("avgTickMs", r.Stats.AvgTickMs))
}
