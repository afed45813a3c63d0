// Package view holds the controllers behind the shell's views. A controller
// owns its view's transient state (dialogs, popovers, value help), reacts to
// typed events and forwards navigation requests to the router. It never
// touches the navigation state itself.
package view

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/podisplay/pkg/podisplay/internal"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/notify"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/router"
)

// Navigator is the part of the router controllers use.
type Navigator interface {
	NavigateTo(name string, params router.Params)
}

// Noticer shows fire-and-forget notices.
type Noticer interface {
	Show(message string)
}

// Texts localizes message IDs.
type Texts interface {
	Text(id string, data map[string]any) string
}

// DialogFactory builds a dialog on first open.
type DialogFactory func() (Dialog, error)

// DialogHandle is a controller's memoized reference to one dialog.
type DialogHandle struct {
	id     string
	open   bool
	dialog Dialog
}

func (h *DialogHandle) ID() string { return h.id }

func (h *DialogHandle) IsOpen() bool { return h.open }

func (h *DialogHandle) Dialog() Dialog { return h.dialog }

// Deps are the collaborators a controller talks to.
type Deps struct {
	Navigator Navigator
	Notices   Noticer
	Texts     Texts
	Logger    *slog.Logger
}

// Controller is the base every view controller embeds.
type Controller struct {
	name string
	deps Deps

	definitions map[string]DialogFactory
	dialogs     map[string]*DialogHandle
	order       []string

	active    bool
	destroyed bool
}

// NewController creates a controller for the named view.
func NewController(name string, deps Deps) *Controller {
	if deps.Logger == nil {
		deps.Logger = internal.GetLogger()
	}
	return &Controller{
		name:        name,
		deps:        deps,
		definitions: make(map[string]DialogFactory),
		dialogs:     make(map[string]*DialogHandle),
	}
}

// Name returns the view name.
func (c *Controller) Name() string { return c.name }

// Logger returns the controller's logger.
func (c *Controller) Logger() *slog.Logger { return c.deps.Logger }

// IsActive reports whether the view's route is current.
func (c *Controller) IsActive() bool { return c.active }

// OnActivate runs when a route targeting this view becomes current.
func (c *Controller) OnActivate(event router.MatchedEvent) {
	c.active = true
	c.deps.Logger.Debug("View activated", "view", c.name, "route", event.Route.Name, "hash", event.Hash)
}

// OnDeactivate runs when the router moves to another view.
func (c *Controller) OnDeactivate() {
	c.active = false
	c.deps.Logger.Debug("View deactivated", "view", c.name)
}

// RequestNavigation forwards to the router.
func (c *Controller) RequestNavigation(route string) {
	c.RequestNavigationWith(route, nil)
}

// RequestNavigationWith forwards to the router with parameters.
func (c *Controller) RequestNavigationWith(route string, params router.Params) {
	if c.deps.Navigator == nil {
		c.deps.Logger.Error("Router not found for view", "view", c.name, "route", route)
		return
	}
	c.deps.Navigator.NavigateTo(route, params)
}

// ShowTransientNotice shows message and returns immediately.
func (c *Controller) ShowTransientNotice(message string) {
	if c.deps.Notices == nil {
		c.deps.Logger.Info("Notice", "view", c.name, "message", message)
		return
	}
	c.deps.Notices.Show(message)
}

// Text localizes id, or returns id if the controller has no catalog.
func (c *Controller) Text(id string, data map[string]any) string {
	if c.deps.Texts == nil {
		return id
	}
	return c.deps.Texts.Text(id, data)
}

// DefineDialog declares how to build the dialog with the given id. The
// dialog itself is only built on first open.
func (c *Controller) DefineDialog(id string, create DialogFactory) {
	c.definitions[id] = create
}

// DefineOverlays declares one overlay per entry, copied on first open.
func (c *Controller) DefineOverlays(overlays ...Overlay) {
	for _, o := range overlays {
		o := o
		c.DefineDialog(o.ID, func() (Dialog, error) {
			created := o
			return &created, nil
		})
	}
}

// OpenDialog opens the dialog with id, building it on first use. Opening an
// open dialog does nothing. An unknown id shows a notice instead of failing.
func (c *Controller) OpenDialog(id string) {
	handle, err := c.handle(id)
	if err != nil {
		c.deps.Logger.Warn("Dialog not available", "view", c.name, "dialog", id, "error", err)
		c.ShowTransientNotice(c.Text(notify.MsgDialogNotFound, map[string]any{"ID": id}))
		return
	}
	if handle.open {
		return
	}
	handle.dialog.Open()
	handle.open = true
}

// CloseDialog closes the dialog with id. Closing a closed or never-opened
// dialog does nothing.
func (c *Controller) CloseDialog(id string) {
	handle, ok := c.dialogs[id]
	if !ok || !handle.open {
		return
	}
	handle.dialog.Close()
	handle.open = false
}

// ToggleDialog opens a closed dialog and closes an open one.
func (c *Controller) ToggleDialog(id string) {
	if handle, ok := c.dialogs[id]; ok && handle.open {
		c.CloseDialog(id)
		return
	}
	c.OpenDialog(id)
}

// Dialog returns the handle for id if it has been built.
func (c *Controller) Dialog(id string) (*DialogHandle, bool) {
	handle, ok := c.dialogs[id]
	return handle, ok
}

// OpenDialogs returns the open handles in creation order.
func (c *Controller) OpenDialogs() []*DialogHandle {
	var open []*DialogHandle
	for _, id := range c.order {
		if handle := c.dialogs[id]; handle.open {
			open = append(open, handle)
		}
	}
	return open
}

// Destroy closes and releases every dialog. The controller must not be
// used afterwards.
func (c *Controller) Destroy() {
	for _, id := range c.order {
		handle := c.dialogs[id]
		if handle.open {
			handle.dialog.Close()
			handle.open = false
		}
		handle.dialog.Destroy()
	}
	c.dialogs = make(map[string]*DialogHandle)
	c.order = nil
	c.destroyed = true
}

func (c *Controller) handle(id string) (*DialogHandle, error) {
	if c.destroyed {
		return nil, fmt.Errorf("view %s: destroyed", c.name)
	}
	if handle, ok := c.dialogs[id]; ok {
		return handle, nil
	}

	create, ok := c.definitions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDialogNotFound, id)
	}

	dialog, err := create()
	if err != nil {
		return nil, fmt.Errorf("view %s: create dialog %q: %w", c.name, id, err)
	}

	handle := &DialogHandle{id: id, dialog: dialog}
	c.dialogs[id] = handle
	c.order = append(c.order, id)
	c.deps.Logger.Debug("Dialog created", "view", c.name, "dialog", id)
	return handle, nil
}
