package router

import "errors"

var (
	// ErrRouteNotFound indicates a route name or hash that matches no registered route.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMissingParameter indicates a navigation that omitted a required pattern placeholder.
	ErrMissingParameter = errors.New("missing route parameter")

	// ErrDuplicateRoute indicates a second registration under an existing route name.
	ErrDuplicateRoute = errors.New("duplicate route name")

	// ErrInvalidPattern indicates a route pattern that cannot be compiled.
	ErrInvalidPattern = errors.New("invalid route pattern")
)
