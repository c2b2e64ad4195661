package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/platcore/internal/application/scene"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	lastDT        float64
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	m.lastDT = dt
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

var testOpts = Options{ScreenWidth: 640, ScreenHeight: 480, TickRate: 64}

func TestNew(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, testOpts)

	assert.NotNil(t, g)
	assert.Equal(t, 1, mockInitial.onEnterCalled, "OnEnter should be called on initial scene")
	assert.Equal(t, 1.0/64, g.DT())
}

func TestNew_DefaultTickRate(t *testing.T) {
	g := New(&mockScene{}, Options{ScreenWidth: 1, ScreenHeight: 1})

	assert.Equal(t, 1.0/64, g.DT())
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, Options{TickRate: 32})

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mockInitial.updateCalled, "Update should delegate to current scene")
	assert.Equal(t, 1.0/32, mockInitial.lastDT)
	assert.Equal(t, uint64(1), g.Updates())
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	mockInitial := &mockScene{}
	g := New(mockInitial, testOpts)

	g.Draw(nil)

	assert.Equal(t, 1, mockInitial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	g := New(&mockScene{}, testOpts)

	w, h := g.Layout(1280, 960)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}

	// scene1 will transition to scene2 on first update
	scene1.nextScene = scene2

	g := New(scene1, testOpts)
	assert.Equal(t, 1, scene1.onEnterCalled, "Initial scene OnEnter called")

	// First update triggers transition
	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled, "scene1 Update called")
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	// Second update goes to scene2
	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{nextScene: nil} // Returns nil, no transition

	g := New(scene1, testOpts)

	// Multiple updates, no transition
	for i := 0; i < 5; i++ {
		err := g.Update()
		assert.NoError(t, err)
	}

	assert.Equal(t, 5, scene1.updateCalled, "All updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "No OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	scene1 := &mockScene{updateErr: assert.AnError}

	opts := testOpts
	opts.Logger = zap.New(core)
	g := New(scene1, opts)

	err := g.Update()
	assert.ErrorIs(t, err, assert.AnError, "Error should propagate from scene")
	assert.Equal(t, 1, scene1.onExitCalled, "scene exits so it can flush state")
	assert.Equal(t, 1, logs.Len())
}
