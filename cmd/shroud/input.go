package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/shroud/engine"
	"github.com/lixenwraith/shroud/vmath"
)

// holdWindow is how long a key press keeps its axis held
// Terminals send no key-up events, key repeat refreshes the hold
const holdWindow = 180 * time.Millisecond

// command is a non-movement key action
type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdPause
	cmdRestart
)

// inputState latches terminal key presses into per-tick controls
type inputState struct {
	x, y          float64
	xUntil        time.Duration
	yUntil        time.Duration
	dashRequested bool
}

// press records a key event at game time now and returns any command it carries
func (in *inputState) press(ev *tcell.EventKey, now time.Duration) command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyUp:
		in.setY(-1, now)
	case tcell.KeyDown:
		in.setY(1, now)
	case tcell.KeyLeft:
		in.setX(-1, now)
	case tcell.KeyRight:
		in.setX(1, now)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return cmdQuit
		case 'p':
			return cmdPause
		case 'r':
			return cmdRestart
		case 'w':
			in.setY(-1, now)
		case 's':
			in.setY(1, now)
		case 'a':
			in.setX(-1, now)
		case 'd':
			in.setX(1, now)
		case ' ':
			in.dashRequested = true
		}
	}
	return cmdNone
}

func (in *inputState) setX(v float64, now time.Duration) {
	in.x, in.xUntil = v, now+holdWindow
}

func (in *inputState) setY(v float64, now time.Duration) {
	in.y, in.yUntil = v, now+holdWindow
}

// control builds the control for a tick at now and consumes the pending dash
func (in *inputState) control(now time.Duration) engine.Control {
	var dir vmath.Vec2
	if now < in.xUntil {
		dir.X = in.x
	}
	if now < in.yUntil {
		dir.Y = in.y
	}
	c := engine.Control{Direction: dir, Dash: in.dashRequested}
	in.dashRequested = false
	return c
}

// reset drops every held key
func (in *inputState) reset() {
	*in = inputState{}
}
