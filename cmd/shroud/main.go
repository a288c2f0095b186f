package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/lixenwraith/shroud/audio"
	"github.com/lixenwraith/shroud/core"
	"github.com/lixenwraith/shroud/engine"
	"github.com/lixenwraith/shroud/parameter"
)

var (
	debugFlag      = flag.Bool("debug", false, "Write debug logs to logs/shroud.log")
	configFlag     = flag.String("config", "", "Path to a TOML tuning file")
	noAudioFlag    = flag.Bool("no-audio", false, "Disable sound and music")
	dashPolicyFlag = flag.String("dash-policy", "", "Dash sweep policy: every_tick, once_per_dash")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	sessionID := uuid.NewString()
	if logFile := setupLogging(*debugFlag, sessionID); logFile != nil {
		defer logFile.Close()
	}
	logger := slog.Default()

	tuning, err := parameter.Load(*configFlag, os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if *dashPolicyFlag != "" {
		policy, err := parameter.ParseDashPolicy(*dashPolicyFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -dash-policy: %v\n", err)
			os.Exit(1)
		}
		tuning.DashPolicy = policy
	}

	eng, err := engine.New(tuning, engine.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start engine: %v\n", err)
		os.Exit(1)
	}

	// Audio is optional, every failure degrades to silence
	audioCfg, err := audio.LoadConfig(os.Getenv)
	if err != nil {
		logger.Warn("audio config", "error", err)
	}
	if *noAudioFlag {
		audioCfg.Enabled = false
	}
	if err := audioCfg.Validate(); err != nil {
		audioCfg.Enabled = false
	}
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio initialization failed, continuing without audio", "error", err)
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	core.SetCrashScreen(screen)

	logger.Info("shroud started", "dash_policy", tuning.DashPolicy.String(), "config", *configFlag)
	g := newGame(eng, engine.NewClock(nil), screen, sound, logger)
	run(g, screen)
}

// run drives the tick ticker and input until quit
func run(g *game, screen tcell.Screen) {
	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	// Input polling goroutine, a crash here must still restore the terminal
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	g.draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.tick()
			g.draw()
		}
	}
}
