package ecs

// DefaultGravity is the world-scaled gravity constant (units/s²)
const DefaultGravity = 9.8 * 80

// ApplyGravity decrements vertical velocity of every gravity-affected entity.
// It does not look at Airborne; grounding comes from terrain resolution zeroing velocity.
func ApplyGravity(w *World, gravity, dt float64) {
	for _, id := range SortedIDs(w.Gravity) {
		vel, ok := w.Velocity[id]
		if !ok {
			continue
		}
		vel[1] -= gravity * dt
		w.Velocity[id] = vel
	}
}

// ApplyVelocity advances position by velocity*dt (explicit Euler, no substeps)
func ApplyVelocity(w *World, dt float64) {
	for _, id := range SortedIDs(w.Velocity) {
		xf, ok := w.Transform[id]
		if !ok {
			continue
		}
		xf.Position = xf.Position.Add(w.Velocity[id].Mul(dt))
		w.Transform[id] = xf
	}
}
