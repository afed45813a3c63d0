package router

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/podisplay/pkg/podisplay/constants"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/internal"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/schedule"
)

// View is the target a route activates. Hooks must not block.
type View interface {
	OnActivate(event MatchedEvent)
	OnDeactivate()
}

// MatchedEvent describes a route that became current.
type MatchedEvent struct {
	Route  Route
	Params Params
	Hash   string // normalized, without "#/"
}

// BypassedEvent describes a navigation that matched no route.
type BypassedEvent struct {
	Hash string // the unresolved hash, or the route name for NavigateTo
	Err  error
}

// NavigationState is the router's view of where the app is.
// Empty strings mean "none".
type NavigationState struct {
	Current  string
	Previous string
}

type navigation struct {
	name     string
	params   Params
	hash     string
	fromHash bool
}

// Option configures a Router.
type Option func(*Router)

// WithDefaultRoute sets the route used when the app starts without a hash.
func WithDefaultRoute(name string) Option {
	return func(r *Router) { r.defaultRoute = name }
}

// WithPoster sets where deferred work (the default navigation) is posted.
func WithPoster(p schedule.Poster) Option {
	return func(r *Router) { r.poster = p }
}

// WithLogger replaces the internal logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) { r.logger = logger }
}

// Router maps location hashes to views and applies navigation requests
// one at a time, in the order they were issued. It must only be used from
// the UI thread.
type Router struct {
	location Location
	poster   schedule.Poster
	logger   *slog.Logger

	routes  map[string]*compiledRoute
	order   []string
	targets map[string]View

	state        NavigationState
	currentHash  string
	activeTarget string

	initialized bool
	viewReady   bool
	unsubscribe func()
	writing     bool

	applying bool
	pending  []navigation

	defaultRoute string
	defaultNav   *schedule.Task

	bypassed []func(BypassedEvent)
	matched  []func(MatchedEvent)
}

// New creates a router observing loc.
func New(loc Location, opts ...Option) *Router {
	r := &Router{
		location:     loc,
		poster:       schedule.Immediate,
		routes:       make(map[string]*compiledRoute),
		targets:      make(map[string]View),
		defaultRoute: constants.RouteMain,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = internal.GetInternalLogger()
	}
	return r
}

// AddRoute registers a route. Names must be unique.
func (r *Router) AddRoute(route Route) error {
	if _, exists := r.routes[route.Name]; exists {
		return fmt.Errorf("router: %w: %q", ErrDuplicateRoute, route.Name)
	}

	compiled, err := compile(route)
	if err != nil {
		return fmt.Errorf("router: %w", err)
	}

	r.routes[route.Name] = compiled
	r.order = append(r.order, route.Name)
	return nil
}

// AddTarget binds a view to a target name used by routes.
func (r *Router) AddTarget(target string, v View) *Router {
	r.targets[target] = v
	return r
}

// Routes returns the registered routes in registration order.
func (r *Router) Routes() []Route {
	routes := make([]Route, 0, len(r.order))
	for _, name := range r.order {
		routes = append(routes, r.routes[name].Route)
	}
	return routes
}

// OnBypassed registers a listener for navigations that match no route.
func (r *Router) OnBypassed(fn func(BypassedEvent)) *Router {
	r.bypassed = append(r.bypassed, fn)
	return r
}

// OnRouteMatched registers a listener for every route that becomes current.
func (r *Router) OnRouteMatched(fn func(MatchedEvent)) *Router {
	r.matched = append(r.matched, fn)
	return r
}

// State returns a copy of the navigation state.
func (r *Router) State() NavigationState {
	return r.state
}

// IsInitialized reports whether Initialize has taken effect.
func (r *Router) IsInitialized() bool {
	return r.initialized
}

// HashFor renders the address-bar hash for a route, e.g. "#/orders/42".
func (r *Router) HashFor(name string, params Params) (string, error) {
	route, ok := r.routes[name]
	if !ok {
		return "", fmt.Errorf("router: %w: %q", ErrRouteNotFound, name)
	}
	path, err := route.build(params)
	if err != nil {
		return "", fmt.Errorf("router: %w", err)
	}
	return "#/" + path, nil
}

// Initialize starts observing the location and resolves the current hash.
// Calling it again is a no-op. Calling it with no routes registered logs a
// warning and leaves the router uninitialized.
//
// An empty start hash arms a one-shot navigation to the default route that
// runs once ViewReady is signalled.
func (r *Router) Initialize() {
	if r.initialized {
		r.logger.Debug("Router already initialized")
		return
	}
	if len(r.routes) == 0 {
		r.logger.Warn("Router initialized before any routes were registered")
		return
	}

	r.initialized = true
	r.unsubscribe = r.location.Subscribe(r.onHashChange)

	hash := NormalizeHash(r.location.Hash())
	if hash == "" {
		r.armDefaultNavigation()
		return
	}

	r.enqueue(navigation{hash: hash, fromHash: true})
}

// ViewReady signals that the hosting view finished initializing. A pending
// default navigation is posted to run after the work already queued.
func (r *Router) ViewReady() {
	r.viewReady = true
	if r.defaultNav != nil {
		r.defaultNav.Schedule(r.poster)
	}
}

// DefaultNavigationPending reports whether the start-up redirect may still run.
func (r *Router) DefaultNavigationPending() bool {
	return r.defaultNav != nil && r.defaultNav.Pending()
}

// NavigateTo makes the named route current and writes its hash.
// Unknown names and missing parameters are reported to bypass listeners;
// the navigation state is left untouched.
func (r *Router) NavigateTo(name string, params Params) {
	r.enqueue(navigation{name: name, params: params})
}

// Stop unsubscribes from the location and drops any pending default navigation.
func (r *Router) Stop() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
	if r.defaultNav != nil {
		r.defaultNav.Cancel()
		r.defaultNav = nil
	}
	r.pending = nil
	r.initialized = false
}

func (r *Router) armDefaultNavigation() {
	if r.defaultNav != nil || r.state.Current != "" {
		return
	}

	r.logger.Debug("No hash found, default route armed", "route", r.defaultRoute)
	r.defaultNav = schedule.NewTask(func() {
		if r.state.Current != "" {
			return
		}
		r.logger.Debug("Navigating to default route", "route", r.defaultRoute)
		r.NavigateTo(r.defaultRoute, nil)
	})

	if r.viewReady {
		r.defaultNav.Schedule(r.poster)
	}
}

func (r *Router) onHashChange(hash string) {
	if r.writing {
		return
	}
	r.enqueue(navigation{hash: hash, fromHash: true})
}

// enqueue appends n and, unless a navigation is already being applied
// further up the stack, applies the queue in order.
func (r *Router) enqueue(n navigation) {
	r.pending = append(r.pending, n)
	if r.applying {
		return
	}

	r.applying = true
	defer func() { r.applying = false }()

	for len(r.pending) > 0 {
		next := r.pending[0]
		r.pending = r.pending[1:]
		r.apply(next)
	}
}

func (r *Router) apply(n navigation) {
	if n.fromHash {
		r.applyHash(NormalizeHash(n.hash))
		return
	}

	route, ok := r.routes[n.name]
	if !ok {
		r.bypass(n.name, fmt.Errorf("%w: %q", ErrRouteNotFound, n.name))
		return
	}

	path, err := route.build(n.params)
	if err != nil {
		r.bypass(n.name, err)
		return
	}

	r.commit(route, n.params, path, true)
}

// applyHash resolves a normalized hash. An empty hash before any route is
// current arms the default navigation; once a route is current it resolves
// like any other hash, and is ignored when no route has an empty pattern.
func (r *Router) applyHash(hash string) {
	if hash == "" && r.state.Current == "" {
		r.armDefaultNavigation()
		return
	}

	if hash == r.currentHash {
		return
	}

	for _, name := range r.order {
		route := r.routes[name]
		if params, ok := route.match(hash); ok {
			r.commit(route, params, hash, false)
			return
		}
	}

	if hash == "" {
		r.logger.Debug("Ignoring empty hash, route already current", "route", r.state.Current)
		return
	}
	r.bypass(hash, fmt.Errorf("%w: %q", ErrRouteNotFound, hash))
}

func (r *Router) commit(route *compiledRoute, params Params, path string, writeHash bool) {
	if r.defaultNav != nil {
		r.defaultNav.Cancel()
	}

	if path == r.currentHash && route.Name == r.state.Current {
		return
	}

	r.state = NavigationState{Current: route.Name, Previous: r.state.Current}
	r.currentHash = path

	if writeHash {
		r.writing = true
		r.location.SetHash("/" + path)
		r.writing = false
	}

	r.logger.Debug("Route matched", "route", route.Name, "hash", path, "previous", r.state.Previous)

	if params == nil {
		params = Params{}
	}
	event := MatchedEvent{Route: route.Route, Params: params, Hash: path}

	if r.activeTarget != route.Target {
		if previous, ok := r.targets[r.activeTarget]; ok {
			previous.OnDeactivate()
		}
		r.activeTarget = route.Target
	}
	if v, ok := r.targets[route.Target]; ok {
		v.OnActivate(event)
	} else if route.Target != "" {
		r.logger.Warn("Route target has no view", "route", route.Name, "target", route.Target)
	}

	for _, fn := range r.matched {
		fn(event)
	}
}

func (r *Router) bypass(hash string, err error) {
	r.logger.Warn("Route bypassed", "hash", hash, "error", err)
	event := BypassedEvent{Hash: hash, Err: err}
	for _, fn := range r.bypassed {
		fn(event)
	}
}
