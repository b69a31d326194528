package app

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/segclock/clock"
	"github.com/lixenwraith/segclock/config"
	"github.com/lixenwraith/segclock/glyph"
	"github.com/lixenwraith/segclock/screen"
)

// state of the render loop
type state uint8

const (
	running state = iota
	terminating
)

// display is the subset of the screen controller the loop drives.
// screen.Screen implements it; tests substitute a fake
type display interface {
	Init(width, height int)
	Render(text string, count int)
}

// App ties the clock source to the display and runs the redraw loop
type App struct {
	cfg    config.Config
	source *clock.Source
}

// New creates an app for the given configuration
func New(cfg config.Config) *App {
	return &App{
		cfg:    cfg,
		source: clock.NewSource(clock.LayoutFor(cfg.TwentyFourHour, cfg.ShowSeconds)),
	}
}

// Run owns the terminal for the process lifetime: enter the alternate
// screen, draw, loop until quit, and restore the terminal on every exit
// path including propagated errors
func (a *App) Run() error {
	scr := screen.New(a.cfg.Color, a.cfg.HasColor)
	if err := scr.Enter(); err != nil {
		return err
	}
	defer scr.Leave()

	width, height := scr.Size()
	scr.Init(width, height)
	if err := a.redraw(scr); err != nil {
		return err
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := scr.PollEvent()
			if ev == nil { // Leave closes the event stream
				return
			}
			events <- ev
		}
	}()

	return a.loop(events, scr)
}

// loop waits for an input event or the tick timeout, once per iteration.
// A resize reflows and redraws immediately, a quit key terminates, any
// other event is ignored without a redraw, and a tick redraws with a
// freshly formatted time
func (a *App) loop(events <-chan tcell.Event, d display) error {
	ticker := time.NewTicker(a.cfg.Interval())
	defer ticker.Stop()

	st := running
	for st == running {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				width, height := ev.Size()
				d.Init(width, height)
				if err := a.redraw(d); err != nil {
					return err
				}
			case *tcell.EventKey:
				if isQuitKey(ev) {
					st = terminating
				}
			}
		case <-ticker.C:
			if err := a.redraw(d); err != nil {
				return err
			}
		}
	}
	return nil
}

// isQuitKey reports whether ev is one of the two quit keys, Escape or q
func isQuitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

// redraw formats the current time, encodes it into segmented glyphs and
// hands it to the display
func (a *App) redraw(d display) error {
	text, err := a.source.Render()
	if err != nil {
		return err
	}
	seg, count := glyph.Segmentify(text)
	d.Render(seg, count)
	return nil
}
