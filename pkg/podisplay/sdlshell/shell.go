// Package sdlshell is the SDL2 frontend: it owns the window, translates
// keyboard and controller input into button presses and draws the
// component's screen once per frame.
//
// Run must be called from the main OS thread.
package sdlshell

import (
	"context"
	"errors"
	"time"

	"github.com/BrandonKowalski/podisplay/pkg/podisplay"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/constants"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/internal"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/screen"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Options configures the SDL frontend.
type Options struct {
	Theme  Theme
	Window WindowOptions
	// InputDelay debounces presses (default: constants.DefaultInputDelay).
	InputDelay time.Duration
}

// Run opens the window and drives c until the user quits or ctx is done.
// c must already be started.
func Run(ctx context.Context, c *podisplay.Component, opts Options) error {
	if opts.Theme.FontPath == "" {
		return podisplay.NewInfrastructureError("load_font", errors.New("no font configured"))
	}
	if opts.InputDelay <= 0 {
		opts.InputDelay = constants.DefaultInputDelay
	}
	if opts.Window.IsZero() {
		opts.Window = WindowOptions{Resizable: true}
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return podisplay.NewInfrastructureError("sdl_init", err)
	}
	defer sdl.Quit()

	if err := ttf.Init(); err != nil {
		return podisplay.NewInfrastructureError("ttf_init", err)
	}
	defer ttf.Quit()

	window, err := openWindow(c.Title(), opts.Window)
	if err != nil {
		return podisplay.NewInfrastructureError("create_window", err)
	}
	defer window.close()

	if err := window.setIcon(iconSVG, 64); err != nil {
		internal.GetInternalLogger().Warn("Failed to set window icon", "error", err)
	}

	f, err := openFonts(opts.Theme.FontPath)
	if err != nil {
		return podisplay.NewInfrastructureError("load_font", err)
	}
	defer f.close()

	controllers := openControllers()
	defer func() {
		for _, gc := range controllers {
			gc.Close()
		}
	}()

	cache := newTextureCache(defaultMaxCacheSize)
	defer cache.destroy()

	s := &session{
		component: c,
		screen:    screen.New(c),
		painter:   &painter{window: window, theme: opts.Theme, fonts: f, cache: cache},
		repeater:  screen.NewRepeater(),
		delay:     opts.InputDelay,
	}
	return s.loop(ctx)
}

type session struct {
	component *podisplay.Component
	screen    *screen.Screen
	painter   *painter
	repeater  *screen.Repeater

	delay     time.Duration
	lastInput time.Time
	title     string
}

func (s *session) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		if !s.pollEvents() {
			return nil
		}

		if d := s.repeater.Update(); d != screen.DirectionNone {
			s.screen.Press(d.VirtualButton())
		}

		s.component.Drain()

		if title := s.component.Title(); title != s.title {
			s.painter.window.Window.SetTitle(title)
			s.title = title
		}
		s.painter.draw(s.screen.Frame())
	}
}

// pollEvents returns false once the user asked to quit.
func (s *session) pollEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			return false
		}

		input, ok := translate(event)
		if !ok || input.Repeat {
			continue
		}

		s.repeater.SetHeld(input.Button, input.Pressed)
		if !input.Pressed {
			continue
		}
		if time.Since(s.lastInput) < s.delay {
			continue
		}
		s.lastInput = time.Now()

		if s.screen.Press(input.Button) == screen.OutcomeQuit {
			return false
		}
	}
	return true
}
