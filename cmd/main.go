package main

import (
	"time"

	"github.com/gookit/slog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/matjam/sword/internal/config"
	"github.com/matjam/sword/internal/diagnostics"
	"github.com/matjam/sword/internal/ecs"
	"github.com/matjam/sword/internal/ecs/component"
	"github.com/matjam/sword/internal/ecs/interaction"
	"github.com/matjam/sword/internal/ecs/statemachine"
	"github.com/matjam/sword/internal/ecs/system"
)

// Game hosts a *ecs.World behind ebiten's frame loop: Update drives the
// World's fixed/variable/late phases once per tick, Draw drives the
// render phase. Grounded on the teacher's cmd/main.go Game type.
type Game struct {
	world    *ecs.World
	renderer *system.Renderer
	lastTick time.Time
}

func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastTick)
	g.lastTick = now
	g.world.Tick(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Target = screen
	g.world.Render()
	ebitenutil.DebugPrint(screen, "sword ecs demo")
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return 1280, 768
}

// wander drives an entity's Move component back and forth, reversing
// direction every 30 frames. It exercises statemachine.Component end to
// end.
func wander(w *ecs.World, self ecs.EntityID) statemachine.Func {
	moveID := w.Registry().IDOf((*component.Move)(nil))
	return func(y *statemachine.Yield) {
		dir := 1
		for {
			e, ok := w.Entity(self)
			if !ok {
				return
			}
			if m, ok := e.Get(moveID); ok {
				m.(*component.Move).X = dir
			}
			for i := 0; i < 30; i++ {
				y.Wait(statemachine.NextFrame(w))
			}
			dir = -dir
		}
	}
}

func buildGame() (*Game, error) {
	healthLogger := &system.HealthLogger{}

	w, err := ecs.NewWorld(
		ecs.WithSystems(healthLogger),
		ecs.WithTimingSink(&diagnostics.SlogSink{MinElapsed: time.Millisecond}),
	)
	if err != nil {
		return nil, err
	}

	movement := system.NewMovement(w)
	renderer := system.NewRenderer(w)
	routines := statemachine.NewSystem(w)
	if err := w.AddSystems(movement, renderer, routines); err != nil {
		return nil, err
	}

	player := w.AddEntity(
		&component.Transform{X: 100, Y: 100},
		&component.Move{},
		&component.Health{Max: 10, Current: 10},
		&component.Drawable{Glyph: '@'},
	)
	player.Add(statemachine.New(wander(w, player.ID())))

	w.AddEntity(
		&component.Transform{X: 200, Y: 100},
		&component.Drawable{Glyph: '+'},
		interaction.New(interaction.EffectFunc(func(w *ecs.World, interactor, interacted *ecs.Entity) {
			slog.Info("interacted with door", "interactor", interactor.ID(), "interacted", interacted.ID())
		})),
	)

	return &Game{world: w, renderer: renderer, lastTick: time.Now()}, nil
}

func main() {
	slog.Configure(func(logger *slog.SugaredLogger) {
		f := logger.Formatter.(*slog.TextFormatter)
		f.EnableColor = true
	})

	cfg := config.Load()
	slog.Info("loaded config", "fixed_update_hz", cfg.ECS.FixedUpdateHz)

	g, err := buildGame()
	if err != nil {
		slog.Fatal(err)
	}

	ebiten.SetWindowSize(1280, 768)
	ebiten.SetWindowTitle("sword ecs demo")
	if err := ebiten.RunGame(g); err != nil {
		slog.Fatal(err)
	}
}
