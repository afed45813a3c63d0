// Package router provides hash-based navigation between views.
//
// A Router owns the mapping from the location hash ("#/orders/42") to the
// active view. Navigation requests are applied strictly in the order they
// were issued: a request made while another one is being applied (from a
// view hook or a listener) is queued and applied afterwards, so listeners
// never observe a half-applied state.
//
// # Basic Usage
//
//	loc := router.NewMemoryLocation("")
//	r := router.New(loc, router.WithPoster(loop))
//
//	_ = r.AddRoute(router.Route{Name: "main", Pattern: "main", Target: "main"})
//	_ = r.AddRoute(router.Route{Name: "order", Pattern: "orders/{id}", Target: "order"})
//	r.AddTarget("main", mainView)
//	r.AddTarget("order", orderView)
//
//	r.OnBypassed(func(e router.BypassedEvent) {
//	    logger.Warn("Route bypassed", "hash", e.Hash)
//	})
//
//	r.Initialize()
//	r.ViewReady() // runs the one-shot redirect to "main" if the hash was empty
//
//	r.NavigateTo("order", router.Params{"id": "42"}) // hash becomes "#/orders/42"
//
// # Unresolved Navigation
//
// Unknown route names and hashes never fail the caller. They are reported
// once to every OnBypassed listener and leave the NavigationState untouched.
//
// # Start-up Redirect
//
// When the location starts without a hash, Initialize arms a one-shot task
// that navigates to the default route once ViewReady is signalled. Any real
// navigation applied before it runs cancels it.
package router
