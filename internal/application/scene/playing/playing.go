// Package playing provides the main gameplay scene.
package playing

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/younwookim/platcore/internal/application/scene"
	"github.com/younwookim/platcore/internal/application/state"
	"github.com/younwookim/platcore/internal/application/system"
	"github.com/younwookim/platcore/internal/infrastructure/config"
)

// InputSource supplies one tick of input
type InputSource interface {
	GetInput() system.InputState
}

// Options configures the Playing scene
type Options struct {
	Physics    *config.PhysicsConfig
	Stage      *config.StageConfig
	Input      InputSource     // nil polls ebiten
	Loader     *config.Loader  // used for hot reload
	Watcher    *config.Watcher // nil disables hot reload
	RecordPath string          // non-empty enables recording
	Logger     *zap.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	physicsCfg *config.PhysicsConfig
	session    *system.Session
	state      state.GameState
	input      InputSource
	loader     *config.Loader
	watcher    *config.Watcher
	logger     *zap.Logger
	screenW    int
	screenH    int

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(opts Options) (*Playing, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	input := opts.Input
	if input == nil {
		input = system.NewInputSystem()
	}

	session, err := system.NewSession(opts.Physics, opts.Stage, logger)
	if err != nil {
		return nil, err
	}

	p := &Playing{
		physicsCfg:     opts.Physics,
		session:        session,
		state:          state.StatePlaying,
		input:          input,
		loader:         opts.Loader,
		watcher:        opts.Watcher,
		logger:         logger,
		screenW:        opts.Physics.Display.ScreenWidth,
		screenH:        opts.Physics.Display.ScreenHeight,
		recordFilename: opts.RecordPath,
	}

	// Initialize recorder if recording is enabled
	if opts.RecordPath != "" {
		p.recorder = NewRecorder(opts.Stage.ID, opts.Physics.Display.TickRate)
		logger.Info("recording enabled", zap.String("path", opts.RecordPath))
	}

	return p, nil
}

// Update advances the simulation by one tick (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.pollReload()

	input := p.input.GetInput()

	if p.state == state.StatePaused {
		if input.Pause {
			p.state = state.StatePlaying
		}
		return nil, nil
	}
	if input.Pause {
		p.state = state.StatePaused
		return nil, nil
	}

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	if _, err := p.session.Step(input); err != nil {
		return nil, err
	}

	if p.session.Respawning() {
		p.state = state.StateRespawning
	} else {
		p.state = state.StatePlaying
	}

	return nil, nil // nil = stay on this scene
}

// pollReload applies config files changed on disk
func (p *Playing) pollReload() {
	if p.watcher == nil || p.loader == nil {
		return
	}

	for {
		path, ok := p.watcher.Poll()
		if !ok {
			return
		}
		p.reload(path)
	}
}

func (p *Playing) reload(path string) {
	name := filepath.Base(path)
	switch {
	case name == "physics.json":
		cfg, err := p.loader.LoadPhysics()
		if err != nil {
			p.logger.Warn("physics reload failed, keeping current config", zap.Error(err))
			return
		}
		if cfg.Display.TickRate != p.physicsCfg.Display.TickRate {
			p.logger.Warn("tickRate change needs a restart, keeping current rate",
				zap.Int("current", p.physicsCfg.Display.TickRate), zap.Int("file", cfg.Display.TickRate))
			cfg.Display.TickRate = p.physicsCfg.Display.TickRate
		}
		p.physicsCfg = cfg
		p.session.SetPhysics(cfg)
		p.logger.Info("physics reloaded")

	case strings.TrimSuffix(name, filepath.Ext(name)) == p.session.Stage().ID:
		stage, err := p.loader.LoadStage(p.session.Stage().ID)
		if err != nil {
			p.logger.Warn("stage reload failed, keeping current world", zap.Error(err))
			return
		}
		if err := p.session.Reload(stage); err != nil {
			p.logger.Warn("stage reload failed, keeping current world", zap.Error(err))
			return
		}
		p.state = state.StatePlaying
		p.logger.Info("stage reloaded", zap.String("stage", stage.ID))
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", zap.Error(err))
	} else {
		p.logger.Info("recording saved", zap.String("path", filename), zap.Int("frames", p.recorder.FrameCount()))
	}
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Session returns the running simulation
func (p *Playing) Session() *system.Session {
	return p.session
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info("stage started", zap.String("stage", p.session.Stage().ID),
		zap.Int("tickRate", p.physicsCfg.Display.TickRate))
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
	if p.watcher != nil {
		_ = p.watcher.Close()
	}
	snap := p.session.Physics().Stats().Snapshot()
	p.logger.Info("stage stopped",
		zap.Int64("ticks", snap.Ticks),
		zap.Int64("deaths", snap.Deaths),
		zap.Int64("dropped", snap.Dropped),
		zap.Float64("avgTickMs", snap.AvgTickMs))
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
