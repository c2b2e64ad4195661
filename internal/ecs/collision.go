package ecs

import (
	"go.uber.org/zap"
)

// actorBoxes returns the sorted collider ids that have a Transform, with their boxes
func actorBoxes(w *World) ([]EntityID, []Box) {
	ids := make([]EntityID, 0, len(w.IsCollider))
	boxes := make([]Box, 0, len(w.IsCollider))
	for _, id := range SortedIDs(w.IsCollider) {
		xf, ok := w.Transform[id]
		if !ok {
			continue
		}
		ids = append(ids, id)
		boxes = append(boxes, BoxFromTransform(xf))
	}
	return ids, boxes
}

// DetectDynamicOverlaps scans every unordered pair of actors.
// Overlapping actors are only reported; nothing separates them.
func DetectDynamicOverlaps(w *World, sig *Signals) {
	ids, boxes := actorBoxes(w)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if boxes[i].Intersects(boxes[j]) {
				sig.Dynamic = append(sig.Dynamic, DynamicOverlap{A: ids[i], B: ids[j]})
			}
		}
	}
}

// DetectStaticOverlaps tests every static body against every actor.
// Terrain bodies produce TerrainOverlap, the rest StaticOverlap.
func DetectStaticOverlaps(w *World, sig *Signals) {
	ids, boxes := actorBoxes(w)
	for _, sid := range SortedIDs(w.StaticCollider) {
		staticBox := w.StaticCollider[sid]
		_, terrain := w.IsTerrain[sid]
		for i, aid := range ids {
			if !staticBox.Intersects(boxes[i]) {
				continue
			}
			if terrain {
				sig.Terrain = append(sig.Terrain, TerrainOverlap{Terrain: sid, Actor: aid})
			} else {
				sig.Static = append(sig.Static, StaticOverlap{Static: sid, Actor: aid})
			}
		}
	}
}

// ResolveTerrainOverlaps drains sig.Terrain in order.
// Die actors get a DeathSignal appended to sig.Deaths; Stop actors are pushed
// out along one axis. Returns the number of dropped signals.
func ResolveTerrainOverlaps(w *World, sig *Signals, logger *zap.Logger) int {
	if logger == nil {
		logger = zap.NewNop()
	}

	dropped := 0
	for _, ov := range sig.Terrain {
		if !resolveTerrainOverlap(w, sig, ov, logger) {
			dropped++
		}
	}
	sig.Terrain = sig.Terrain[:0]
	return dropped
}

func resolveTerrainOverlap(w *World, sig *Signals, ov TerrainOverlap, logger *zap.Logger) bool {
	xf, hasXf := w.Transform[ov.Actor]
	vel, hasVel := w.Velocity[ov.Actor]
	handler, hasHandler := w.TerrainHandler[ov.Actor]
	if !hasXf || !hasVel || !hasHandler {
		logger.Debug("terrain overlap dropped: actor lacks physics components",
			zap.Uint64("actor", uint64(ov.Actor)))
		return false
	}

	switch handler {
	case HandlerDie:
		sig.Deaths = append(sig.Deaths, DeathSignal{Actor: ov.Actor})
		return true
	case HandlerStop:
	default:
		logger.Error("terrain overlap dropped: unknown handler",
			zap.Uint64("actor", uint64(ov.Actor)), zap.Int("handler", int(handler)))
		return false
	}

	terrain, ok := w.StaticCollider[ov.Terrain]
	if !ok {
		logger.Error("terrain overlap dropped: terrain box missing",
			zap.Uint64("terrain", uint64(ov.Terrain)), zap.Uint64("actor", uint64(ov.Actor)))
		return false
	}

	pos := xf.Position
	half := xf.Scale.Mul(0.5)
	closest := terrain.ClosestPoint(pos)
	center := terrain.Center
	halfX := terrain.HalfSize[0]

	if center[0]-halfX < closest[0] && closest[0] < center[0]+halfX {
		// Vertical contact. This guard mirrors the horizontal one but never
		// fires: closest x strictly inside the box is the actor's own x.
		if !pastOnSide(closest[0], center[0], pos[0]) {
			if closest[1] > center[1] {
				pos[1] = closest[1] + half[1]
				if grav, ok := w.Gravity[ov.Actor]; ok {
					grav.Airborne = false
					w.Gravity[ov.Actor] = grav
				}
			} else {
				pos[1] = closest[1] - half[1]
			}
		}
		vel[1] = 0
	} else {
		// Horizontal contact. Skip the snap when the actor center is past the
		// contact point vertically, i.e. it only clipped a corner.
		if !pastOnSide(closest[1], center[1], pos[1]) {
			if closest[0] > center[0] {
				pos[0] = closest[0] + half[0]
			} else {
				pos[0] = closest[0] - half[0]
			}
		}
		vel[0] = 0
	}

	xf.Position = pos
	w.Transform[ov.Actor] = xf
	w.Velocity[ov.Actor] = vel
	return true
}

// pastOnSide reports whether actor lies beyond contact, on the side of
// contact away from center
func pastOnSide(contact, center, actor float64) bool {
	return (contact > center && actor > contact) || (contact < center && actor < contact)
}
