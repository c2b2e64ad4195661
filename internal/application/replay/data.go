package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single tick
type FrameInput struct {
	F int  `json:"f"`           // Tick number, from 0
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump
	C bool `json:"c,omitempty"` // Crouch
	A bool `json:"a,omitempty"` // Attack
	I bool `json:"i,omitempty"` // Interact
}

// ReplayData contains all data needed to replay a session.
// The simulation is deterministic, so stage and tick rate are the only state.
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	TickRate  int          `json:"tickRate"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Stage == "" {
		return nil, fmt.Errorf("failed to decode replay: missing stage")
	}

	return &data, nil
}

// Save writes the replay data to a file
func (d *ReplayData) Save(filename string) error {
	if len(d.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(d); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}
