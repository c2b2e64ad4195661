package ecs

// FollowCamera copies the player's position into the camera's position.
// Needs exactly one player and one camera; otherwise nothing happens.
func FollowCamera(w *World) bool {
	pid, ok := w.SinglePlayer()
	if !ok {
		return false
	}
	cid, ok := w.SingleCamera()
	if !ok {
		return false
	}

	playerXf, ok := w.Transform[pid]
	if !ok {
		return false
	}
	camXf, ok := w.Transform[cid]
	if !ok {
		return false
	}

	camXf.Position = playerXf.Position
	w.Transform[cid] = camXf
	return true
}
