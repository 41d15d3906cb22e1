package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/windrider/internal/anim"
	"github.com/samdwyer/windrider/internal/clock"
	"github.com/samdwyer/windrider/internal/entity"
	"github.com/samdwyer/windrider/internal/gamedata"
	"github.com/samdwyer/windrider/internal/input"
	"github.com/samdwyer/windrider/internal/locomotion"
	"github.com/samdwyer/windrider/internal/telemetry"
	"github.com/samdwyer/windrider/internal/ui"
	"github.com/samdwyer/windrider/internal/world"
)

// maxLook is how far the camera may pan from the player, in cells.
const maxLook = 20

// Game holds the entire game state.
type Game struct {
	cfg      Config
	log      *zap.Logger
	screen   *ui.Screen
	renderer *ui.Renderer

	tuning gamedata.Tuning

	sched    *clock.Scheduler
	level    *world.Level
	registry *world.Registry
	player   *entity.Player
	bridge   *anim.Bridge
	layout   *ui.Layout
	menu     *ui.RuneSelection
	mapper   *input.Mapper

	look    [2]int
	state   State
	running bool
}

// New creates a new game instance on the terminal.
func New(cfg Config, log *zap.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	return NewWithScreen(cfg, log, screen), nil
}

// NewWithScreen creates a game drawing to an existing screen.
func NewWithScreen(cfg Config, log *zap.Logger, screen *ui.Screen) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		cfg:      cfg,
		log:      log,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		state:    StatePlaying,
		running:  true,
	}
}

// Init loads data, generates the level and spawns the player.
func (g *Game) Init(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	tuning, err := gamedata.LoadTuningFile(g.cfg.TuningFile)
	if err != nil {
		return fmt.Errorf("failed to load tuning: %w", err)
	}
	runes, err := gamedata.LoadRuneRegistry()
	if err != nil {
		return fmt.Errorf("failed to load runes: %w", err)
	}
	g.tuning = tuning

	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	width, height := g.cfg.LevelWidth, g.cfg.LevelHeight
	if width <= 0 {
		width = world.DefaultWidth
	}
	if height <= 0 {
		height = world.DefaultHeight
	}

	g.level = world.NewLevel(width, height, rand.New(rand.NewSource(seed)))
	g.level.TunnelPush = tuning.WindTunnel.PushPerFrame
	g.level.TemporaryLifespan = gamedata.Seconds(tuning.WindTunnel.TemporaryLifespan)
	g.level.Generate(ctx)

	g.sched = clock.NewScheduler()
	g.registry = world.NewRegistry()
	g.layout = ui.NewLayout(g.log)
	g.mapper = input.NewMapper()

	g.player = entity.NewPlayer(uuid.New(), g.level.Spawn, g.level.Geometry, tuning.Params(), locomotion.Deps{
		Scheduler: g.sched,
		Sink:      g.layout,
		Logger:    g.log,
	})
	g.player.Body.Gravity = tuning.Movement.Gravity
	g.player.Body.FlyingDrag = tuning.Glide.Drag
	if id := g.cfg.StartRune; id != "" {
		def := runes.GetByID(id)
		if def == nil {
			return fmt.Errorf("unknown start rune %q", id)
		}
		g.player.SetActiveRune(def)
	}
	if err := g.registry.Add(g.player); err != nil {
		return fmt.Errorf("failed to register player: %w", err)
	}

	g.layout.ConstructDeferred(g.player.ID())
	g.bridge = anim.NewBridge(g.player.ID())
	g.menu = ui.NewRuneSelection(g.player.ID(), runes)
	g.player.Init()

	spawn := g.level.Spawn
	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("level.platforms", len(g.level.Platforms)),
		attribute.Int("level.tunnels", len(g.level.Tunnels)),
		attribute.Float64("player.spawn_x", spawn[0]),
		attribute.Float64("player.spawn_z", spawn[2]),
	)
	g.log.Info("game initialized",
		zap.Int64("seed", seed),
		zap.Int("platforms", len(g.level.Platforms)),
		zap.Int("tunnels", len(g.level.Tunnels)),
		zap.Stringer("player", g.player.ID()),
	)
	return nil
}

// Run executes the main game loop until the player quits or ctx is done.
// Terminal events are read on a separate goroutine and merged with the frame
// ticker.
func (g *Game) Run(ctx context.Context) error {
	if g.player == nil {
		if err := g.Init(ctx); err != nil {
			g.screen.Close()
			return err
		}
	}

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	frame := g.cfg.Frame()
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	g.render()
	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev := <-events:
			g.handleEvent(ev)
		case <-ticker.C:
			g.Step(frame)
			g.render()
		}
	}

	close(done)
	g.screen.Close()
	g.log.Info("game stopped")
	return nil
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.HandleKey(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// HandleKey maps a key press and applies the resulting actions.
func (g *Game) HandleKey(ev *tcell.EventKey) {
	g.apply(g.mapper.HandleKey(ev))
}

// Step advances the game by one frame.
func (g *Game) Step(dt time.Duration) {
	g.apply(g.mapper.Tick(dt))
	g.layout.Update(dt)

	if g.state != StatePlaying {
		return
	}
	g.sched.Advance(dt)
	g.player.Update(dt.Seconds())
	g.level.UpdateOverlaps(g.registry)
	g.level.TickTunnels(dt, g.registry)
	g.bridge.Update(g.registry)
}

func (g *Game) apply(actions []input.Action) {
	for _, a := range actions {
		g.applyOne(a)
	}
}

func (g *Game) applyOne(a input.Action) {
	switch a.Kind {
	case input.ActionQuit:
		g.running = false
	case input.ActionOpenRuneMenu:
		g.openMenu()
	case input.ActionMenuPrev:
		g.menu.Prev()
	case input.ActionMenuNext:
		g.menu.Next()
	case input.ActionMenuConfirm:
		if g.menu.Confirm(g.registry) && g.player.ActiveRune != nil {
			g.log.Info("rune selected", zap.String("rune", g.player.ActiveRune.ID))
		}
		g.closeMenu()
	case input.ActionMenuCancel:
		g.menu.Close()
		g.closeMenu()
	}

	if g.state != StatePlaying {
		return
	}

	switch a.Kind {
	case input.ActionMoveAxis:
		g.player.Move(a.X, a.Y)
	case input.ActionLookAxis:
		g.look[0] = max(-maxLook, min(maxLook, g.look[0]+int(a.X)))
		g.look[1] = max(-maxLook, min(maxLook, g.look[1]+int(a.Y)))
	case input.ActionSprintStart:
		g.player.SprintStart()
	case input.ActionSprintStop:
		g.player.SprintStop()
	case input.ActionSprintHeld:
		g.player.SprintHeld()
	case input.ActionJumpGlideStart:
		g.player.JumpGlideStart()
	case input.ActionJumpGlideStop:
		g.player.JumpGlideStop()
	case input.ActionThrow:
		g.player.ToggleThrow()
	}
}

// openMenu releases held inputs and pauses the simulation.
func (g *Game) openMenu() {
	if g.state == StateRuneMenu {
		return
	}
	g.apply(g.mapper.Reset())
	g.state = StateRuneMenu
	g.mapper.MenuOpen = true
	g.menu.Open(g.player.ActiveRune)
}

func (g *Game) closeMenu() {
	g.state = StatePlaying
	g.mapper.MenuOpen = false
}

func (g *Game) render() {
	g.renderer.Render(ui.View{
		Level:    g.level,
		Player:   g.player,
		Registry: g.registry,
		Pose:     g.bridge.Snapshot().Pose(),
		Layout:   g.layout,
		Menu:     g.menu,
		Look:     g.look,
	})
}

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Player returns the player entity.
func (g *Game) Player() *entity.Player { return g.player }

// Level returns the generated level.
func (g *Game) Level() *world.Level { return g.level }

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}

// Tuning returns the tuning in effect.
func (g *Game) Tuning() gamedata.Tuning { return g.tuning }
