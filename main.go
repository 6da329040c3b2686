package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/crestwalker/components"
	cfg "github.com/pixelforge/crestwalker/config"
	"github.com/pixelforge/crestwalker/gamemath"
	"github.com/pixelforge/crestwalker/leveldata"
	"github.com/pixelforge/crestwalker/systems"
	"github.com/pixelforge/crestwalker/systems/factory"
)

type Game struct {
	ecs *ecs.ECS
}

func NewGame(log zerolog.Logger) (*Game, error) {
	level := leveldata.Builtin()
	if path := os.Getenv("CRESTWALKER_LEVEL"); path != "" {
		loaded, err := leveldata.Load(os.DirFS("."), path)
		if err != nil {
			return nil, err
		}
		level = loaded
	}

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateMovement)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	levelEntry := factory.CreateLevel(e, level, log)
	levelData := components.Level.Get(levelEntry)
	spawn := level.Spawn()
	spawnPos := gamemath.Vec{X: spawn.X, Y: spawn.Y}

	factory.CreatePlayer(e, levelData.Space, spawnPos, log)
	factory.CreateCamera(e, spawnPos)

	return &Game{ecs: e}, nil
}

func (g *Game) Update() error {
	g.ecs.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.ecs.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return cfg.Window.Width, cfg.Window.Height
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := cfg.LoadSettings("."); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}
	if err := systems.InitPersistence(log); err == nil {
		systems.LoadSavedSettings()
	}

	game, err := NewGame(log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build world")
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}

	systems.SaveSettings()
}
