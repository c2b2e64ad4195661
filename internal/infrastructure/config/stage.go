package config

// StageConfig is the root config for stage YAML files.
// Coordinates are world units, y up, positions are box centers.
type StageConfig struct {
	ID      string        `yaml:"id"`
	Name    string        `yaml:"name"`
	Player  BodyConfig    `yaml:"player"`
	Terrain []BodyConfig  `yaml:"terrain"`
	Static  []BodyConfig  `yaml:"static"`
	Actors  []ActorConfig `yaml:"actors"`
	Camera  *PointConfig  `yaml:"camera"`
}

// BodyConfig places an axis-aligned box
type BodyConfig struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Handler string  `yaml:"handler,omitempty"` // "stop" (default) or "die"; player and actors only
}

// ActorConfig places a non-player dynamic collider
type ActorConfig struct {
	BodyConfig `yaml:",inline"`
	VX         float64 `yaml:"vx"`
	VY         float64 `yaml:"vy"`
	Gravity    bool    `yaml:"gravity"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DefaultStage is the built-in scene: a floor, a wall on its right half, the player above
func DefaultStage() *StageConfig {
	return &StageConfig{
		ID:   "default",
		Name: "Default",
		Player: BodyConfig{
			X: 0, Y: 100, Width: 20, Height: 20, Handler: "stop",
		},
		Terrain: []BodyConfig{
			{X: 0, Y: -100, Width: 300, Height: 30},
			{X: 125, Y: -70, Width: 50, Height: 100},
		},
		Camera: &PointConfig{},
	}
}
