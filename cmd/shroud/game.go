package main

import (
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/shroud/audio"
	"github.com/lixenwraith/shroud/component"
	"github.com/lixenwraith/shroud/engine"
	"github.com/lixenwraith/shroud/event"
	"github.com/lixenwraith/shroud/parameter"
	"github.com/lixenwraith/shroud/render"
)

// game is the host shell: it owns the world, feeds ticks and routes intents to sinks
type game struct {
	engine   *engine.Engine
	clock    *engine.Clock
	router   *event.Router
	hud      *render.HUD
	renderer *render.TerminalRenderer
	sound    *audio.SoundManager
	logger   *slog.Logger

	input    inputState
	world    component.World
	lastTick time.Duration
}

func newGame(eng *engine.Engine, clock *engine.Clock, screen tcell.Screen, sound *audio.SoundManager, logger *slog.Logger) *game {
	tn := eng.Tuning()
	hud := render.NewHUD(tn.CharacterMaxHealth)

	router := event.NewRouter()
	router.OnPanic = func(in event.Intent, r any) {
		logger.Error("intent handler panicked", "intent", in.Type.String(), "panic", r)
	}
	router.Register(hud)
	router.Register(sound)
	router.Register(event.HandlerFunc{
		Types: []event.IntentType{event.IntentUpdateScoreDisplay, event.IntentUpdateHealthDisplay},
		Fn: func(in event.Intent) {
			logger.Debug("display update", "intent", in.Type.String(), "value", in.Value)
		},
	})

	g := &game{
		engine:   eng,
		clock:    clock,
		router:   router,
		hud:      hud,
		renderer: render.NewTerminalRenderer(screen, tn, hud),
		sound:    sound,
		logger:   logger,
	}
	g.restart()
	return g
}

// restart begins a new run from the level start
func (g *game) restart() {
	g.world = g.engine.NewWorld()
	g.world.LastSpawnAt = g.clock.Now()
	g.lastTick = g.clock.Now()
	g.input.reset()
	g.router.Dispatch([]event.Intent{
		event.UpdateScoreDisplay(0),
		event.UpdateHealthDisplay(g.world.Character.Health),
	})
	g.logger.Info("run started", "at", g.lastTick)
}

// handleEvent processes one terminal event and reports whether the game keeps running
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch g.input.press(ev, g.clock.Now()) {
		case cmdQuit:
			return false
		case cmdPause:
			paused := g.clock.Toggle()
			g.sound.SetPaused(paused)
			if !paused {
				// Resume must not hand the next tick the whole pause as dt
				g.lastTick = g.clock.Now()
			}
			g.logger.Debug("pause toggled", "paused", paused)
		case cmdRestart:
			if g.world.Over() {
				g.restart()
			}
		}
	case *tcell.EventResize:
		g.draw()
	}
	return true
}

// tick advances the world to the current game time
func (g *game) tick() {
	if g.clock.IsPaused() || g.world.Over() {
		return
	}

	now := g.clock.Now()
	dt := min(now-g.lastTick, parameter.MaxTickDelta)
	g.lastTick = now

	g.world = g.engine.ApplyControl(g.world, g.input.control(now), now)

	var intents []event.Intent
	g.world, intents = g.engine.Tick(g.world, dt, now)
	g.router.Dispatch(intents)

	if g.world.Over() {
		g.logger.Info("run ended", "score", g.world.Score, "ticks", g.world.Tick)
	}
}

func (g *game) draw() {
	g.renderer.RenderFrame(render.Frame{
		World:  g.world,
		Now:    g.clock.Now(),
		Paused: g.clock.IsPaused(),
	})
}
