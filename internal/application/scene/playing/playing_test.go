package playing

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/younwookim/platcore/internal/application/replay"
	"github.com/younwookim/platcore/internal/application/scene"
	"github.com/younwookim/platcore/internal/application/state"
	"github.com/younwookim/platcore/internal/application/system"
	"github.com/younwookim/platcore/internal/ecs"
	"github.com/younwookim/platcore/internal/infrastructure/config"
)

// scriptedInput replays a fixed list of inputs, then idles
type scriptedInput struct {
	frames []system.InputState
	next   int
}

func (s *scriptedInput) GetInput() system.InputState {
	if s.next >= len(s.frames) {
		return system.InputState{}
	}
	in := s.frames[s.next]
	s.next++
	return in
}

func newTestPlaying(t *testing.T, frames ...system.InputState) *Playing {
	t.Helper()
	p, err := New(Options{
		Physics: config.DefaultPhysicsConfig(),
		Stage:   config.DefaultStage(),
		Input:   &scriptedInput{frames: frames},
		Logger:  zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	return p
}

func update(t *testing.T, p *Playing, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		next, err := p.Update(1.0 / 64)
		require.NoError(t, err)
		require.Nil(t, next)
	}
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p := newTestPlaying(t)

	assert.Equal(t, state.StatePlaying, p.State())
	assert.Nil(t, p.recorder)
	w, h := p.Layout(0, 0)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestNewPlaying_BadStage(t *testing.T) {
	stage := config.DefaultStage()
	stage.Player.Handler = "teleport"

	_, err := New(Options{Physics: config.DefaultPhysicsConfig(), Stage: stage})
	assert.Error(t, err)
}

func TestPlaying_PlayerLands(t *testing.T) {
	p := newTestPlaying(t)

	update(t, p, 300)

	w := p.Session().World()
	player, ok := w.SinglePlayer()
	require.True(t, ok)
	assert.InDelta(t, -75.0, w.Transform[player].Position[1], 1e-9)
	assert.False(t, w.Gravity[player].Airborne)
}

func TestPlaying_Pause(t *testing.T) {
	p := newTestPlaying(t,
		system.InputState{},
		system.InputState{Pause: true},
		system.InputState{Right: true},
		system.InputState{Right: true},
		system.InputState{Pause: true},
	)

	update(t, p, 1)
	assert.Equal(t, uint64(1), p.Session().Physics().TickCount())

	update(t, p, 1)
	assert.Equal(t, state.StatePaused, p.State())

	update(t, p, 2)
	assert.Equal(t, uint64(1), p.Session().Physics().TickCount(), "no ticks while paused")

	update(t, p, 1)
	assert.Equal(t, state.StatePlaying, p.State())

	update(t, p, 1)
	assert.Equal(t, uint64(2), p.Session().Physics().TickCount())
}

func TestPlaying_UnimplementedActionEndsGame(t *testing.T) {
	p := newTestPlaying(t, system.InputState{}, system.InputState{Crouch: true})

	update(t, p, 1)
	_, err := p.Update(1.0 / 64)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ecs.ErrNotImplemented))
}

func TestPlaying_RespawnState(t *testing.T) {
	stage := config.DefaultStage()
	stage.Player.Handler = "die"
	p, err := New(Options{
		Physics: config.DefaultPhysicsConfig(),
		Stage:   stage,
		Input:   &scriptedInput{},
	})
	require.NoError(t, err)

	for i := 0; i < 300 && p.State() != state.StateRespawning; i++ {
		update(t, p, 1)
	}
	require.Equal(t, state.StateRespawning, p.State())
	assert.Equal(t, 1, p.Session().PlayerDeaths())

	update(t, p, system.DefaultRespawnDelay+1)
	assert.Equal(t, state.StatePlaying, p.State())
}

func TestPlaying_WithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.json")
	p, err := New(Options{
		Physics:    config.DefaultPhysicsConfig(),
		Stage:      config.DefaultStage(),
		Input:      &scriptedInput{frames: []system.InputState{{Right: true}, {Pause: true}, {Pause: true}, {Jump: true}}},
		RecordPath: path,
	})
	require.NoError(t, err)
	require.NotNil(t, p.recorder)

	update(t, p, 4)
	assert.Equal(t, 2, p.recorder.FrameCount(), "pause toggles are not recorded")

	p.OnExit()
	assert.False(t, p.recorder.IsRecording())

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "default", data.Stage)
	assert.Equal(t, 64, data.TickRate)
	assert.Equal(t, []replay.FrameInput{{F: 0, R: true}, {F: 1, J: true}}, data.Frames)
}

func TestPlaying_OnExitWithoutFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.json")
	p, err := New(Options{
		Physics:    config.DefaultPhysicsConfig(),
		Stage:      config.DefaultStage(),
		Input:      &scriptedInput{},
		RecordPath: path,
	})
	require.NoError(t, err)

	p.OnEnter()
	p.OnExit()

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "empty recordings are not written")
}

func TestPlaying_HotReloadStage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "stages"), 0o755))
	stagePath := filepath.Join(dir, "stages", "default.yaml")
	writeStage := func(playerX string) {
		doc := "id: default\nplayer: {x: " + playerX + ", y: 100, width: 20, height: 20}\n" +
			"terrain:\n  - {x: 0, y: -100, width: 300, height: 30}\n"
		require.NoError(t, os.WriteFile(stagePath, []byte(doc), 0o644))
	}
	writeStage("0")

	loader := config.NewLoader(dir)
	stage, err := loader.LoadStage("default")
	require.NoError(t, err)
	watcher, err := config.NewWatcher(filepath.Join(dir, "stages"))
	require.NoError(t, err)

	p, err := New(Options{
		Physics: config.DefaultPhysicsConfig(),
		Stage:   stage,
		Input:   &scriptedInput{},
		Loader:  loader,
		Watcher: watcher,
		Logger:  zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	defer p.OnExit()

	writeStage("40")

	assert.Eventually(t, func() bool {
		update(t, p, 1)
		w := p.Session().World()
		player, ok := w.SinglePlayer()
		return ok && w.Transform[player].Position[0] == 40
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRecorder_StopAndIsRecording(t *testing.T) {
	r := NewRecorder("test", 64)

	assert.True(t, r.IsRecording())
	r.Stop()
	assert.False(t, r.IsRecording())
}

func TestRecorder_DoesNotRecordWhenStopped(t *testing.T) {
	r := NewRecorder("test", 64)
	r.RecordFrame(system.InputState{Left: true})
	r.Stop()
	r.RecordFrame(system.InputState{Right: true})

	assert.Equal(t, 1, r.FrameCount())
	assert.Equal(t, "test", r.GetData().Stage)
	assert.True(t, r.GetData().Frames[0].L)
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()

	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, name)
}
