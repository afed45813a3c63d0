package podisplay

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/podisplay/pkg/podisplay/config"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/constants"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/internal"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/mockdata"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/notify"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/router"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/view"
)

// Component is the running application: one UI loop, one router and the
// controllers of every view. All of its state is touched from the loop only;
// frontends reach it through Post.
type Component struct {
	cfg      *config.Config
	loop     *internal.Loop
	location router.Location
	router   *router.Router
	toaster  *notify.Toaster
	catalog  *notify.Catalog
	logger   *slog.Logger

	app       *view.AppController
	poDisplay *view.PODisplayController
	second    *view.Controller

	started bool
}

// ComponentOption configures a Component.
type ComponentOption func(*componentOptions)

type componentOptions struct {
	loader view.DataLoader
	logger *slog.Logger
}

// WithDataLoader replaces the mock data loader built from the manifest.
func WithDataLoader(loader view.DataLoader) ComponentOption {
	return func(o *componentOptions) { o.loader = loader }
}

// WithComponentLogger replaces the application logger.
func WithComponentLogger(logger *slog.Logger) ComponentOption {
	return func(o *componentOptions) { o.logger = logger }
}

// NewComponent builds the shell described by cfg on top of loc.
func NewComponent(cfg *config.Config, loc router.Location, opts ...ComponentOption) (*Component, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, NewInfrastructureError("validate_manifest", err)
	}

	options := componentOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.logger == nil {
		options.logger = internal.GetLogger()
	}

	catalog, err := notify.NewCatalog(cfg.App.Locale)
	if err != nil {
		return nil, NewInfrastructureError("load_catalog", err)
	}

	loop := internal.NewLoop()
	r := router.New(loc,
		router.WithPoster(loop),
		router.WithDefaultRoute(cfg.Routing.DefaultRoute),
		router.WithLogger(options.logger),
	)
	for _, route := range cfg.Routing.Routes {
		if err := r.AddRoute(router.Route{Name: route.Name, Pattern: route.Pattern, Target: route.Target}); err != nil {
			return nil, NewInfrastructureError("register_routes", err)
		}
	}

	toaster := notify.NewToaster(loop,
		notify.WithDuration(cfg.Notify.ToastDuration.Duration),
		notify.WithToastLogger(options.logger),
	)

	deps := view.Deps{
		Navigator: r,
		Notices:   toaster,
		Texts:     catalog,
		Logger:    options.logger,
	}

	loader := options.loader
	if loader == nil {
		loader = mockdata.NewLoader(mockdata.Sources{
			Customers: cfg.Data.Customers,
			Products:  cfg.Data.Products,
			Orders:    cfg.Data.Orders,
		}).WithTimeout(cfg.Data.Timeout.Duration)
	}

	c := &Component{
		cfg:       cfg,
		loop:      loop,
		location:  loc,
		router:    r,
		toaster:   toaster,
		catalog:   catalog,
		logger:    options.logger,
		app:       view.NewAppController(r, deps),
		poDisplay: view.NewPODisplayController(deps, loop, loader),
		second:    view.NewController(constants.RouteSecond, deps),
	}

	r.AddTarget(constants.RouteMain, c.poDisplay)
	r.AddTarget(constants.RouteSecond, c.second)

	return c, nil
}

// Start queues view initialization followed by router initialization.
// The start-up redirect, if any, runs after both. Calling Start twice
// does nothing.
func (c *Component) Start(ctx context.Context) {
	if c.started {
		return
	}
	c.started = true

	c.loop.Post(func() {
		c.app.OnInit()
		c.poDisplay.OnInit(ctx)
		c.router.Initialize()
		c.logger.Info("Component started", "app", c.cfg.App.ID, "locale", c.catalog.Language().String())
	})
}

// Run processes UI work until ctx is done or Close is called.
func (c *Component) Run(ctx context.Context) error {
	return c.loop.Run(ctx)
}

// Post queues fn on the UI loop. Safe from any goroutine.
func (c *Component) Post(fn func()) {
	c.loop.Post(fn)
}

// Drain runs all queued UI work on the calling goroutine. Frame-driven
// frontends call it once per frame instead of Run.
func (c *Component) Drain() int {
	return c.loop.Drain()
}

// Close stops the router, releases every view's dialogs and stops the loop.
func (c *Component) Close() {
	c.router.Stop()
	c.poDisplay.Destroy()
	c.second.Destroy()
	c.app.Destroy()
	c.loop.Stop()
}

// Config returns the manifest the component was built from.
func (c *Component) Config() *config.Config { return c.cfg }

// Router returns the router.
func (c *Component) Router() *router.Router { return c.router }

// Location returns the hash source.
func (c *Component) Location() router.Location { return c.location }

// Toaster returns the transient notice surface.
func (c *Component) Toaster() *notify.Toaster { return c.toaster }

// App returns the root view controller.
func (c *Component) App() *view.AppController { return c.app }

// PODisplay returns the purchase order view controller.
func (c *Component) PODisplay() *view.PODisplayController { return c.poDisplay }

// Second returns the second view's controller.
func (c *Component) Second() *view.Controller { return c.second }

// ActiveView returns the controller whose route is current, or nil.
func (c *Component) ActiveView() *view.Controller {
	switch {
	case c.poDisplay.IsActive():
		return c.poDisplay.Controller
	case c.second.IsActive():
		return c.second
	default:
		return nil
	}
}

// Title returns the window title.
func (c *Component) Title() string {
	return fmt.Sprintf("%s - %s", c.cfg.App.Title, c.router.State().Current)
}
