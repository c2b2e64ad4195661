package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/platcore/internal/ecs"
)

// InputSystem polls the keyboard and mouse
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state
type InputState struct {
	Left     bool
	Right    bool
	Jump     bool
	Crouch   bool
	Interact bool // just pressed
	Attack   bool // just pressed
	Pause    bool // just pressed
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:     anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:    anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Jump:     anyPressed(ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp),
		Crouch:   anyPressed(ebiten.KeyShiftLeft, ebiten.KeyS, ebiten.KeyArrowDown),
		Interact: inpututil.IsKeyJustPressed(ebiten.KeyE),
		Attack:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pause:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// MapActions turns one tick of input into the ordered action queue.
// Opposite directions cancel; crouch is ignored while jump is held.
func MapActions(in InputState) []ecs.Action {
	var actions []ecs.Action

	switch {
	case in.Right && !in.Left:
		actions = append(actions, ecs.ActionMoveRight)
	case in.Left && !in.Right:
		actions = append(actions, ecs.ActionMoveLeft)
	}

	if in.Jump {
		actions = append(actions, ecs.ActionJump)
	} else if in.Crouch {
		actions = append(actions, ecs.ActionCrouch)
	}

	if in.Interact {
		actions = append(actions, ecs.ActionInteract)
	}
	if in.Attack {
		actions = append(actions, ecs.ActionAttack)
	}

	return actions
}

// Keys converts input to the raw key state used by TickKeys
func (in InputState) Keys() ecs.KeyState {
	return ecs.KeyState{Left: in.Left, Right: in.Right, Jump: in.Jump}
}
