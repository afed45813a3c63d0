package podisplay

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/podisplay/pkg/podisplay/mockdata"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/router"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/view"
)

// Recoverable conditions. None of them stops the shell: each is reported
// where it is detected (bypass listener, notice, message list).
var (
	// ErrRouteNotFound indicates a hash or route name that matches no route.
	ErrRouteNotFound = router.ErrRouteNotFound

	// ErrDialogNotFound indicates a dialog identifier the view does not define.
	ErrDialogNotFound = view.ErrDialogNotFound
)

// InfrastructureError represents a shell-level failure that prevents start-up
// (invalid manifest, catalog that will not load, SDL that will not start).
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "register_routes", "load_catalog")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("podisplay: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("podisplay: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsRouteNotFound checks if an error reports an unresolved route.
func IsRouteNotFound(err error) bool {
	return errors.Is(err, ErrRouteNotFound)
}

// IsDialogNotFound checks if an error reports an unknown dialog.
func IsDialogNotFound(err error) bool {
	return errors.Is(err, ErrDialogNotFound)
}

// IsDataLoadFailure checks if an error reports a mock document load failure.
func IsDataLoadFailure(err error) bool {
	return mockdata.IsDataLoadError(err)
}
