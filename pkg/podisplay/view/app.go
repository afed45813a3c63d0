package view

import (
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/notify"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/router"
)

// AppController backs the root view hosting every routed view.
type AppController struct {
	*Controller
	router *router.Router
}

// NewAppController creates the root controller.
func NewAppController(r *router.Router, deps Deps) *AppController {
	if deps.Navigator == nil && r != nil {
		deps.Navigator = r
	}
	return &AppController{
		Controller: NewController("app", deps),
		router:     r,
	}
}

// OnInit attaches the bypass handler and signals the router that the root
// view is ready, which releases the start-up redirect.
func (a *AppController) OnInit() {
	logger := a.Logger()
	logger.Info("App controller initialized")

	if a.router == nil {
		logger.Error("Router not found in App controller")
		return
	}

	a.router.OnBypassed(a.onBypassed)
	a.router.ViewReady()
}

func (a *AppController) onBypassed(event router.BypassedEvent) {
	a.Logger().Warn("Route bypassed", "hash", event.Hash, "error", event.Err)
	a.ShowTransientNotice(a.Text(notify.MsgPageNotFound, map[string]any{"Hash": event.Hash}))
}
