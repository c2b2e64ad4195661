package ecs

import (
	"maps"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Transform      map[EntityID]Transform
	Velocity       map[EntityID]mgl64.Vec2 // units per second
	Gravity        map[EntityID]GravityAffected
	Facing         map[EntityID]Facing
	StaticCollider map[EntityID]Box // fixed at creation
	TerrainHandler map[EntityID]TerrainHandler

	// Tags
	IsCollider map[EntityID]struct{}
	IsTerrain  map[EntityID]struct{}
	IsPlayer   map[EntityID]struct{}
	IsCamera   map[EntityID]struct{}
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:         1, // 0 is "nil"
		Transform:      make(map[EntityID]Transform),
		Velocity:       make(map[EntityID]mgl64.Vec2),
		Gravity:        make(map[EntityID]GravityAffected),
		Facing:         make(map[EntityID]Facing),
		StaticCollider: make(map[EntityID]Box),
		TerrainHandler: make(map[EntityID]TerrainHandler),
		IsCollider:     make(map[EntityID]struct{}),
		IsTerrain:      make(map[EntityID]struct{}),
		IsPlayer:       make(map[EntityID]struct{}),
		IsCamera:       make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Transform, id)
	delete(w.Velocity, id)
	delete(w.Gravity, id)
	delete(w.Facing, id)
	delete(w.StaticCollider, id)
	delete(w.TerrainHandler, id)
	delete(w.IsCollider, id)
	delete(w.IsTerrain, id)
	delete(w.IsPlayer, id)
	delete(w.IsCamera, id)
}

// Exists checks if an entity has a Transform component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Transform[id]
	return ok
}

// SortedIDs returns the keys of a component map in ascending order.
// Every system iterates through this so a tick is reproducible.
func SortedIDs[V any](m map[EntityID]V) []EntityID {
	return slices.Sorted(maps.Keys(m))
}

// SinglePlayer returns the player entity if exactly one exists
func (w *World) SinglePlayer() (EntityID, bool) {
	return single(w.IsPlayer)
}

// SingleCamera returns the camera entity if exactly one exists
func (w *World) SingleCamera() (EntityID, bool) {
	return single(w.IsCamera)
}

func single(tag map[EntityID]struct{}) (EntityID, bool) {
	if len(tag) != 1 {
		return 0, false
	}
	for id := range tag {
		return id, true
	}
	return 0, false
}

// CreatePlayer creates the player: zero velocity, airborne, Stop handler, facing right
func (w *World) CreatePlayer(pos, size mgl64.Vec2) EntityID {
	id := w.NewEntity()

	w.Transform[id] = Transform{Position: pos, Scale: size}
	w.Velocity[id] = mgl64.Vec2{}
	w.Gravity[id] = GravityAffected{Airborne: true}
	w.TerrainHandler[id] = HandlerStop
	w.Facing[id] = FacingRight
	w.IsCollider[id] = struct{}{}
	w.IsPlayer[id] = struct{}{}

	return id
}

// CreateTerrain creates a terrain body. Its box is derived once here.
func (w *World) CreateTerrain(pos, size mgl64.Vec2) EntityID {
	id := w.CreateStatic(pos, size)
	w.IsTerrain[id] = struct{}{}
	return id
}

// CreateStatic creates a static (non-terrain) body
func (w *World) CreateStatic(pos, size mgl64.Vec2) EntityID {
	id := w.NewEntity()

	xf := Transform{Position: pos, Scale: size}
	w.Transform[id] = xf
	w.StaticCollider[id] = BoxFromTransform(xf)

	return id
}

// ActorConfig holds configuration for creating a non-player actor
type ActorConfig struct {
	Position mgl64.Vec2
	Size     mgl64.Vec2
	Velocity mgl64.Vec2
	Gravity  bool
	Handler  TerrainHandler
}

// CreateActor creates a dynamic collider that is not the player
func (w *World) CreateActor(cfg ActorConfig) EntityID {
	id := w.NewEntity()

	w.Transform[id] = Transform{Position: cfg.Position, Scale: cfg.Size}
	w.Velocity[id] = cfg.Velocity
	if cfg.Gravity {
		w.Gravity[id] = GravityAffected{Airborne: true}
	}
	w.TerrainHandler[id] = cfg.Handler
	w.IsCollider[id] = struct{}{}

	return id
}

// CreateCamera creates a camera entity
func (w *World) CreateCamera(pos mgl64.Vec2) EntityID {
	id := w.NewEntity()

	w.Transform[id] = Transform{Position: pos, Scale: mgl64.Vec2{1, 1}}
	w.IsCamera[id] = struct{}{}

	return id
}

// CountActors returns the number of dynamic colliders
func (w *World) CountActors() int {
	return len(w.IsCollider)
}
