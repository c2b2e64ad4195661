package ecs

// DynamicOverlap is emitted once per intersecting pair of actors (A < B)
type DynamicOverlap struct {
	A, B EntityID
}

// StaticOverlap is emitted when an actor touches a non-terrain static body
type StaticOverlap struct {
	Static EntityID
	Actor  EntityID
}

// TerrainOverlap is emitted when an actor touches a terrain body
type TerrainOverlap struct {
	Terrain EntityID
	Actor   EntityID
}

// DeathSignal is emitted when an actor with a Die handler touches terrain
type DeathSignal struct {
	Actor EntityID
}

// Signals holds the tick-scoped signal queues.
// Producers append during a tick; the next stage drains them; Reset runs at tick start.
type Signals struct {
	Dynamic []DynamicOverlap
	Static  []StaticOverlap
	Terrain []TerrainOverlap
	Deaths  []DeathSignal
}

// Reset empties every queue, keeping capacity
func (s *Signals) Reset() {
	s.Dynamic = s.Dynamic[:0]
	s.Static = s.Static[:0]
	s.Terrain = s.Terrain[:0]
	s.Deaths = s.Deaths[:0]
}
