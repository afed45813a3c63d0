package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/BrandonKowalski/podisplay/pkg/podisplay"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/constants"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/router"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/screen"
)

var consoleButtons = map[string]constants.VirtualButton{
	"up":     constants.VirtualButtonUp,
	"down":   constants.VirtualButtonDown,
	"left":   constants.VirtualButtonLeft,
	"right":  constants.VirtualButtonRight,
	"a":      constants.VirtualButtonA,
	"b":      constants.VirtualButtonB,
	"x":      constants.VirtualButtonX,
	"y":      constants.VirtualButtonY,
	"start":  constants.VirtualButtonStart,
	"select": constants.VirtualButtonSelect,
	"menu":   constants.VirtualButtonMenu,
}

const consoleHelp = `commands:
  up|down|left|right|a|b|x|y|start|select|menu   press a button
  nav <route> [key=value ...]                    navigate to a named route
  hash <fragment>                                change the location hash
  back | forward                                 step through history
  open <dialog> | close <dialog>                 drive the active view's dialogs
  wait                                           wait for mock data to load
  show                                           print the screen
  quit                                           exit
`

// console drives a component from line commands and prints the screen
// after each one.
type console struct {
	component *podisplay.Component
	location  *router.MemoryLocation
	screen    *screen.Screen
	out       io.Writer
}

func newConsole(c *podisplay.Component, loc *router.MemoryLocation, out io.Writer) *console {
	return &console{
		component: c,
		location:  loc,
		screen:    screen.New(c),
		out:       out,
	}
}

func (c *console) run(ctx context.Context, in io.Reader) error {
	c.component.Drain()
	c.show()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		quit := c.execute(ctx, strings.Fields(scanner.Text()))
		c.component.Drain()
		if quit {
			return nil
		}
		c.show()
	}
	return scanner.Err()
}

// execute runs one command and reports whether the console should exit.
func (c *console) execute(ctx context.Context, args []string) bool {
	if len(args) == 0 {
		return false
	}

	command := strings.ToLower(args[0])
	if button, ok := consoleButtons[command]; ok {
		return c.screen.Press(button) == screen.OutcomeQuit
	}

	switch command {
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprint(c.out, consoleHelp)
	case "show":
	case "nav":
		if len(args) < 2 {
			fmt.Fprintln(c.out, "usage: nav <route> [key=value ...]")
			return false
		}
		c.component.Router().NavigateTo(args[1], parseParams(args[2:]))
	case "hash":
		hash := ""
		if len(args) > 1 {
			hash = args[1]
		}
		c.location.SetHash(hash)
	case "back":
		c.location.Back()
	case "forward":
		c.location.Forward()
	case "open", "close":
		view := c.component.ActiveView()
		if view == nil || len(args) < 2 {
			fmt.Fprintf(c.out, "usage: %s <dialog> (needs an active view)\n", command)
			return false
		}
		if command == "open" {
			view.OpenDialog(args[1])
		} else {
			view.CloseDialog(args[1])
		}
	case "wait":
		if done := c.component.PODisplay().LoadsDone(); done != nil {
			select {
			case <-done:
			case <-ctx.Done():
			}
		}
	default:
		fmt.Fprintf(c.out, "unknown command %q, try help\n", command)
	}
	return false
}

func (c *console) show() {
	fmt.Fprint(c.out, c.screen.Frame().String())
}

func parseParams(args []string) router.Params {
	if len(args) == 0 {
		return nil
	}
	params := make(router.Params, len(args))
	for _, arg := range args {
		key, value, _ := strings.Cut(arg, "=")
		params[key] = value
	}
	return params
}
