package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/crestwalker/components"
	cfg "github.com/pixelforge/crestwalker/config"
	"github.com/pixelforge/crestwalker/gamemath"
	"github.com/pixelforge/crestwalker/leveldata"
	"github.com/pixelforge/crestwalker/movement"
	"github.com/pixelforge/crestwalker/tags"
)

var (
	solidColor  = color.RGBA{100, 100, 110, 255}
	rampColor   = color.RGBA{90, 130, 100, 255}
	playerColor = map[movement.State]color.RGBA{
		movement.StateIdle:    {90, 160, 255, 255},
		movement.StateWalking: {90, 220, 140, 255},
		movement.StateFalling: {240, 200, 90, 255},
		movement.StateSliding: {240, 110, 90, 255},
	}
	velocityColor = color.RGBA{255, 255, 255, 255}
)

// toScreen converts a y-up world point into screen pixels relative to the
// camera.
func toScreen(camera *components.CameraData, screen *ebiten.Image, p gamemath.Vec) (float32, float32) {
	ppu := cfg.Window.PixelsPerUnit
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	sx := (p.X-camera.Position.X)*ppu + w/2
	sy := h/2 - (p.Y-camera.Position.Y)*ppu
	return float32(sx), float32(sy)
}

// DrawLevel renders the collision geometry as flat shapes.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	for _, s := range level.Data.Solids {
		x0, y0 := toScreen(camera, screen, gamemath.Vec{X: s.X, Y: s.Y + s.H})
		x1, y1 := toScreen(camera, screen, gamemath.Vec{X: s.X + s.W, Y: s.Y})

		switch s.Slope {
		case leveldata.SlopeUpRight:
			// Triangle rising to the right: base, right edge, hypotenuse.
			vector.StrokeLine(screen, x0, y1, x1, y1, 1, rampColor, true)
			vector.StrokeLine(screen, x1, y1, x1, y0, 1, rampColor, true)
			vector.StrokeLine(screen, x0, y1, x1, y0, 1, rampColor, true)
		case leveldata.SlopeUpLeft:
			vector.StrokeLine(screen, x0, y1, x1, y1, 1, rampColor, true)
			vector.StrokeLine(screen, x0, y1, x0, y0, 1, rampColor, true)
			vector.StrokeLine(screen, x0, y0, x1, y1, 1, rampColor, true)
		default:
			vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, solidColor, true)
		}
	}
}

// DrawPlayer renders the collider box tinted by state plus the velocity
// vector.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	d := components.Controller.Get(playerEntry)
	col := d.Body.Collider()
	pos := d.Body.Position()

	x0, y0 := toScreen(camera, screen, gamemath.Vec{X: pos.X - col.Radius, Y: pos.Y + col.HalfHeight})
	x1, y1 := toScreen(camera, screen, gamemath.Vec{X: pos.X + col.Radius, Y: pos.Y - col.HalfHeight})
	clr := playerColor[d.Controller.State()]
	vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, clr, true)

	vel := d.Controller.Velocity()
	cx, cy := toScreen(camera, screen, pos)
	vx, vy := toScreen(camera, screen, pos.Add(vel.Scale(0.25)))
	vector.StrokeLine(screen, cx, cy, vx, vy, 1, velocityColor, true)
}

// DrawHUD prints the controller state readout.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	d := components.Controller.Get(playerEntry)
	pos := d.Body.Position()
	vel := d.Controller.Velocity()
	slope := d.Controller.GroundSlope()

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"state: %s\npos: %.2f, %.2f\nvel: %.2f, %.2f\nslope: %.2f, %.2f\n[R] respawn",
		d.Controller.State(), pos.X, pos.Y, vel.X, vel.Y, slope.X, slope.Y,
	))
}
