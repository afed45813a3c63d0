package view

import (
	"context"
	"testing"

	"github.com/BrandonKowalski/podisplay/pkg/podisplay/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShell(t *testing.T, hash string) (*router.Router, *router.MemoryLocation, *AppController, *PODisplayController, *fakeNotices, *queuePoster) {
	t.Helper()

	deps, _, notices := testDeps(t)
	q := &queuePoster{}
	loc := router.NewMemoryLocation(hash)
	r := router.New(loc, router.WithPoster(q), router.WithLogger(quietLogger()))
	deps.Navigator = r

	require.NoError(t, r.AddRoute(router.Route{Name: "main", Pattern: "main", Target: "main"}))
	require.NoError(t, r.AddRoute(router.Route{Name: "second", Pattern: "second", Target: "second"}))

	app := NewAppController(r, deps)
	po := NewPODisplayController(deps, q, nil)
	second := NewController("second", deps)
	r.AddTarget("main", po)
	r.AddTarget("second", second)

	return r, loc, app, po, notices, q
}

func TestAppStartsOnMainAfterInit(t *testing.T) {
	r, loc, app, po, _, q := newShell(t, "")

	app.OnInit()
	po.OnInit(context.Background())
	r.Initialize()

	assert.Equal(t, "", r.State().Current, "redirect waits for synchronous init to finish")
	q.flush()

	assert.Equal(t, "main", r.State().Current)
	assert.Equal(t, "#/main", loc.Href())
	assert.True(t, po.IsActive())
}

func TestAppBypassShowsNotice(t *testing.T) {
	r, _, app, _, notices, q := newShell(t, "#/main")
	app.OnInit()
	r.Initialize()
	q.flush()

	r.NavigateTo("nonexistent", nil)

	assert.Equal(t, []string{"Page not found: nonexistent"}, notices.shown)
	assert.Equal(t, "main", r.State().Current)
}

func TestControllersDriveRouter(t *testing.T) {
	r, loc, app, po, _, q := newShell(t, "")
	app.OnInit()
	r.Initialize()
	q.flush()

	po.OnNextPress(PressEvent{Source: "next"})
	assert.Equal(t, "second", r.State().Current)
	assert.False(t, po.IsActive())

	po.OnBackPress(PressEvent{Source: "back"})
	assert.Equal(t, "main", r.State().Current)
	assert.Equal(t, "second", r.State().Previous)
	assert.Equal(t, "#/main", loc.Href())
	assert.True(t, po.IsActive())
}

func TestAppWithoutRouter(t *testing.T) {
	deps, _, _ := testDeps(t)
	deps.Navigator = nil
	app := NewAppController(nil, deps)
	assert.NotPanics(t, app.OnInit)
}
