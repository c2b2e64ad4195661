package playing

import (
	"fmt"
	"time"

	"github.com/younwookim/platcore/internal/application/replay"
	"github.com/younwookim/platcore/internal/application/system"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for the given stage and tick rate
func NewRecorder(stage string, tickRate int) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.FormatVersion,
			Stage:     stage,
			TickRate:  tickRate,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 64*60), // ~1 minute at 64 Hz
		},
		recording: true,
		frame:     0,
	}
}

// RecordFrame records a single tick's input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.FromInput(r.frame, input))
	r.frame++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	return r.data.Save(filename)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
