package replay

import (
	"time"

	"github.com/younwookim/platcore/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// GetInput returns the input for the current tick and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return ToInput(fi), true
}

// ToInput converts a recorded frame to input state
func ToInput(fi FrameInput) system.InputState {
	return system.InputState{
		Left:     fi.L,
		Right:    fi.R,
		Jump:     fi.J,
		Crouch:   fi.C,
		Attack:   fi.A,
		Interact: fi.I,
	}
}

// FromInput converts input state to a recorded frame
func FromInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F: frame,
		L: in.Left,
		R: in.Right,
		J: in.Jump,
		C: in.Crouch,
		A: in.Attack,
		I: in.Interact,
	}
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Stage returns the recorded stage name
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// TickRate returns the recorded tick rate, 0 if unknown
func (r *Replayer) TickRate() int {
	return r.data.TickRate
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int, stage string) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Stage:     stage,
		TickRate:  64,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}

	return data
}
