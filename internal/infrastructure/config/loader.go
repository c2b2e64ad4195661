package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Stage   *StageConfig
}

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics loads physics.json, applies defaults and validates it
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	var cfg PhysicsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid physics.json: %w", err)
	}

	return &cfg, nil
}

// LoadStage loads a stage YAML file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	cfg, err := ParseStage(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}
	if cfg.ID == "" {
		cfg.ID = name
	}

	return cfg, nil
}

// ParseStage decodes a stage document
func ParseStage(data []byte) (*StageConfig, error) {
	var cfg StageConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAll loads physics.json and the named stage
func (l *Loader) LoadAll(stage string) (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	st, err := l.LoadStage(stage)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics: physics,
		Stage:   st,
	}, nil
}
