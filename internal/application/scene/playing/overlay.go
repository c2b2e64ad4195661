package playing

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/platcore/internal/application/state"
	"github.com/younwookim/platcore/internal/ecs"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorActor    = color.RGBA{200, 100, 100, 255}
	colorTerrain  = color.RGBA{90, 120, 220, 255}
	colorStatic   = color.RGBA{230, 210, 80, 255}
	colorOverlap  = color.RGBA{255, 255, 255, 255}
	colorOverlay  = color.RGBA{0, 0, 0, 128}
	colorDeathBar = color.RGBA{100, 0, 0, 180}
)

// Draw renders the world as hitbox wireframes around the camera
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	w := p.session.World()
	cam := p.cameraPosition(w)
	hot := p.overlapping()

	if p.physicsCfg.Debug.ShowHitboxes {
		for _, id := range ecs.SortedIDs(w.StaticCollider) {
			c := colorStatic
			if _, ok := w.IsTerrain[id]; ok {
				c = colorTerrain
			}
			p.strokeBox(screen, w.StaticCollider[id], cam, c, hot[id])
		}
		for _, id := range ecs.SortedIDs(w.IsCollider) {
			xf, ok := w.Transform[id]
			if !ok {
				continue
			}
			c := colorActor
			if _, ok := w.IsPlayer[id]; ok {
				c = colorPlayer
			}
			p.strokeBox(screen, ecs.BoxFromTransform(xf), cam, c, hot[id])
		}
	}

	p.drawUI(screen, w)

	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateRespawning:
		p.drawRespawnOverlay(screen)
	}
}

// cameraPosition returns the single camera's position, or the origin
func (p *Playing) cameraPosition(w *ecs.World) mgl64.Vec2 {
	if id, ok := w.SingleCamera(); ok {
		return w.Transform[id].Position
	}
	return mgl64.Vec2{}
}

// overlapping collects every entity named in this tick's overlap signals
func (p *Playing) overlapping() map[ecs.EntityID]bool {
	report := p.session.LastReport()
	hot := make(map[ecs.EntityID]bool, 2*(len(report.Dynamic)+len(report.Static)+len(report.Terrain)))
	for _, ov := range report.Dynamic {
		hot[ov.A] = true
		hot[ov.B] = true
	}
	for _, ov := range report.Static {
		hot[ov.Static] = true
		hot[ov.Actor] = true
	}
	for _, ov := range report.Terrain {
		hot[ov.Terrain] = true
		hot[ov.Actor] = true
	}
	return hot
}

// toScreen maps world coordinates (y up) to screen pixels (y down) centered on cam
func (p *Playing) toScreen(world, cam mgl64.Vec2) (float32, float32) {
	x := world[0] - cam[0] + float64(p.screenW)/2
	y := float64(p.screenH)/2 - (world[1] - cam[1])
	return float32(x), float32(y)
}

func (p *Playing) strokeBox(screen *ebiten.Image, box ecs.Box, cam mgl64.Vec2, c color.RGBA, hot bool) {
	// top-left corner on screen is (min x, max y) in the world
	x, y := p.toScreen(mgl64.Vec2{box.Min()[0], box.Max()[1]}, cam)
	size := box.Size()
	if hot {
		vector.FillRect(screen, x, y, float32(size[0]), float32(size[1]),
			color.RGBA{c.R, c.G, c.B, 64}, false)
		c = colorOverlap
	}
	vector.StrokeRect(screen, x, y, float32(size[0]), float32(size[1]), 1, c, false)
}

func (p *Playing) drawUI(screen *ebiten.Image, w *ecs.World) {
	snap := p.session.Physics().Stats().Snapshot()
	text := fmt.Sprintf("tick %d  actors %d  deaths %d  dropped %d  %.3fms",
		snap.Ticks, w.CountActors(), p.session.PlayerDeaths(), snap.Dropped, snap.AvgTickMs)

	if id, ok := w.SinglePlayer(); ok {
		pos, vel := w.Transform[id].Position, w.Velocity[id]
		text += fmt.Sprintf("\npos (%.1f, %.1f)  vel (%.1f, %.1f)  airborne %t",
			pos[0], pos[1], vel[0], vel[1], w.Gravity[id].Airborne)
	}
	text += "\nA/D: Move | W/Space: Jump | ESC: Pause"
	ebitenutil.DebugPrint(screen, text)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawRespawnOverlay(screen *ebiten.Image) {
	vector.FillRect(screen, 0, float32(p.screenH/2-20), float32(p.screenW), 40, colorDeathBar, false)
	ebitenutil.DebugPrintAt(screen, "YOU DIED", p.screenW/2-24, p.screenH/2-8)
}
