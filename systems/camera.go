package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/crestwalker/components"
	cfg "github.com/pixelforge/crestwalker/config"
	"github.com/pixelforge/crestwalker/gamemath"
	"github.com/pixelforge/crestwalker/tags"
)

// lookAheadThreshold is the horizontal speed above which the camera leads
// the player.
const lookAheadThreshold = 0.5

// UpdateCamera follows the player with smoothing and look-ahead, bounded by
// the level edges. While a spawn pan tween is active it overrides the
// follow behavior.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if camera.PanX != nil && camera.PanY != nil {
		dt := float32(1.0 / float64(ebiten.TPS()))
		x, doneX := camera.PanX.Update(dt)
		y, doneY := camera.PanY.Update(dt)
		camera.Position = gamemath.Vec{X: float64(x), Y: float64(y)}
		if doneX && doneY {
			camera.PanX, camera.PanY = nil, nil
		}
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	d := components.Controller.Get(playerEntry)
	pos := d.Body.Position()
	vel := d.Controller.Velocity()

	if math.Abs(vel.X) > lookAheadThreshold {
		target := gamemath.Sign(vel.X) * cfg.Camera.LookAheadX
		camera.LookAheadX += (target - camera.LookAheadX) * cfg.Camera.LookAheadSmooth
	}

	target := gamemath.Vec{X: pos.X + camera.LookAheadX, Y: pos.Y}

	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry)
		halfW := float64(cfg.Window.Width) / cfg.Window.PixelsPerUnit / 2
		halfH := float64(cfg.Window.Height) / cfg.Window.PixelsPerUnit / 2
		target.X = math.Max(halfW, math.Min(level.Data.Width-halfW, target.X))
		target.Y = math.Max(halfH-4, math.Min(level.Data.Height-halfH, target.Y))
	}

	camera.Position.X += (target.X - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * cfg.Camera.FollowSmoothing
}

// StartSpawnPan sweeps the camera to the respawn point instead of cutting.
func StartSpawnPan(e *ecs.ECS, to gamemath.Vec) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.PanX = gween.New(float32(camera.Position.X), float32(to.X), cfg.Camera.SpawnPanDuration, ease.OutQuad)
	camera.PanY = gween.New(float32(camera.Position.Y), float32(to.Y), cfg.Camera.SpawnPanDuration, ease.OutQuad)
}
