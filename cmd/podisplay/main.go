// podisplay shows a purchase order and navigates between its views.
//
// By default it opens an SDL window (a TTF font is required, see --font).
// With --headless it reads commands from stdin and prints the screen as
// text after each one, which is handy for scripting and for machines
// without a display.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/BrandonKowalski/podisplay/pkg/podisplay"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/config"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/router"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/sdlshell"
)

func init() {
	// SDL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	logPath    string
	logLevel   string
	fontPath   string
	hash       string
	headless   bool
	fullscreen bool
	dumpConfig bool
}

func newFlagSet(f *flags) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("podisplay", pflag.ContinueOnError)
	flagSet.StringVarP(&f.configPath, "config", "c", "", "path to the application manifest (default: $PODISPLAY_CONFIG or built-in)")
	flagSet.StringVar(&f.logPath, "log-path", "", "also write JSON logs to this file")
	flagSet.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides the manifest)")
	flagSet.StringVar(&f.fontPath, "font", "", "TTF font for the SDL window")
	flagSet.StringVar(&f.hash, "hash", "", "initial location hash, e.g. #/second")
	flagSet.BoolVar(&f.headless, "headless", false, "drive the app from stdin instead of opening a window")
	flagSet.BoolVar(&f.fullscreen, "fullscreen", false, "open the window fullscreen at desktop resolution")
	flagSet.BoolVar(&f.dumpConfig, "dump-config", false, "print the effective manifest and exit")
	return flagSet
}

func run() error {
	var f flags
	if err := newFlagSet(&f).Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}

	if f.dumpConfig {
		encoded, err := cfg.Encode()
		if err != nil {
			return err
		}
		fmt.Print(encoded)
		return nil
	}

	if f.logPath == "" {
		f.logPath = cfg.Log.Path
	}
	if f.logLevel == "" {
		f.logLevel = cfg.Log.Level
	}
	options := podisplay.Options{LogPath: f.logPath, LogLevel: f.logLevel}
	if f.headless {
		// Keep stdout for the screen.
		options.Output = os.Stderr
	}
	podisplay.Init(options)
	defer podisplay.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	location := router.NewMemoryLocation(f.hash)
	component, err := podisplay.NewComponent(cfg, location)
	if err != nil {
		return err
	}
	defer component.Close()

	component.Start(ctx)

	if f.headless {
		return newConsole(component, location, os.Stdout).run(ctx, os.Stdin)
	}

	windowOptions := sdlshell.WindowOptions{Resizable: true}
	if f.fullscreen {
		windowOptions = sdlshell.WindowOptions{FullscreenDesktop: true, Borderless: true}
	}
	return sdlshell.Run(ctx, component, sdlshell.Options{
		Theme:  sdlshell.DefaultTheme(f.fontPath),
		Window: windowOptions,
	})
}
