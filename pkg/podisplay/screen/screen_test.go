package screen

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/BrandonKowalski/podisplay/pkg/podisplay"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/config"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/constants"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/mockdata"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/router"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noLoads struct{}

func (noLoads) LoadAsync(_ context.Context, _ func(mockdata.Result)) <-chan struct{} {
	done := make(chan struct{})
	close(done)
	return done
}

func newTestScreen(t *testing.T) (*Screen, *podisplay.Component) {
	t.Helper()

	c, err := podisplay.NewComponent(config.Default(), router.NewMemoryLocation(""),
		podisplay.WithDataLoader(noLoads{}),
		podisplay.WithComponentLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)
	t.Cleanup(c.Close)

	c.Start(context.Background())
	c.Drain()
	return New(c), c
}

func press(s *Screen, buttons ...constants.VirtualButton) {
	for _, b := range buttons {
		s.Press(b)
	}
}

func TestFrameShowsMainView(t *testing.T) {
	s, _ := newTestScreen(t)

	frame := s.Frame()
	assert.Equal(t, "PO Display", frame.Title)
	assert.Equal(t, "#/main", frame.Hash)
	assert.Equal(t, constants.RouteMain, frame.Route)
	assert.Nil(t, frame.Overlay)

	require.NotEmpty(t, frame.Lines)
	assert.Equal(t, Line{Label: "Purchase Order", Value: "4500017100"}, frame.Lines[0])

	var focused []string
	for _, line := range frame.Lines {
		if line.Focused {
			focused = append(focused, line.Label)
		}
	}
	assert.Equal(t, []string{"Vendor"}, focused)
	assert.Contains(t, frame.String(), "> Vendor: 1000")
	assert.Contains(t, frame.String(), "[Menu] Quit")
}

func TestValueHelpThroughButtons(t *testing.T) {
	s, _ := newTestScreen(t)

	press(s, constants.VirtualButtonA)
	frame := s.Frame()
	require.NotNil(t, frame.Overlay)
	assert.Equal(t, view.KindSelectDialog, frame.Overlay.Kind)
	require.Len(t, frame.Overlay.Items, 3)
	assert.True(t, frame.Overlay.Items[0].Focused)

	press(s, constants.VirtualButtonDown, constants.VirtualButtonA)
	assert.Nil(t, s.Frame().Overlay)
	assert.Equal(t, "Item 2", s.Vendor().Value())
	assert.Equal(t, "0001", s.PaymentTerms().Value())
}

func TestConfirmDialogThroughButtons(t *testing.T) {
	s, c := newTestScreen(t)

	// Vendor, Payment Terms, Messages, Open Dialog
	press(s, constants.VirtualButtonDown, constants.VirtualButtonDown, constants.VirtualButtonDown)
	press(s, constants.VirtualButtonA)
	require.NotNil(t, s.Frame().Overlay)
	assert.Equal(t, constants.DialogConfirm, s.Frame().Overlay.ID)

	press(s, constants.VirtualButtonB)
	assert.Nil(t, s.Frame().Overlay)
	assert.Empty(t, c.Toaster().Active())

	press(s, constants.VirtualButtonA, constants.VirtualButtonA)
	assert.Nil(t, s.Frame().Overlay)
	assert.Equal(t, []string{"Dialog confirmed"}, s.Frame().Toasts)
}

func TestNextAndBackThroughButtons(t *testing.T) {
	s, c := newTestScreen(t)

	for i := 0; i < 6; i++ {
		press(s, constants.VirtualButtonDown)
	}
	press(s, constants.VirtualButtonA)

	frame := s.Frame()
	assert.Equal(t, constants.RouteSecond, frame.Route)
	assert.Equal(t, "#/second", frame.Hash)
	require.Len(t, frame.Lines, 1)
	assert.True(t, frame.Lines[0].Focused)

	press(s, constants.VirtualButtonB)
	assert.Equal(t, constants.RouteMain, c.Router().State().Current)
	assert.Equal(t, "#/main", s.Frame().Hash)
}

func TestMessagePopoverShortcut(t *testing.T) {
	s, _ := newTestScreen(t)

	press(s, constants.VirtualButtonY)
	frame := s.Frame()
	require.NotNil(t, frame.Overlay)
	assert.Equal(t, view.KindPopover, frame.Overlay.Kind)
	assert.Equal(t, "[Success] System Information", frame.Overlay.Items[0].Label)

	press(s, constants.VirtualButtonA)
	assert.Nil(t, s.Frame().Overlay)
}

func TestFocusWrapsAndMenuQuits(t *testing.T) {
	s, _ := newTestScreen(t)

	assert.Equal(t, OutcomeHandled, s.Press(constants.VirtualButtonUp))
	assert.Equal(t, 13, s.Focus())
	assert.Equal(t, OutcomeHandled, s.Press(constants.VirtualButtonDown))
	assert.Equal(t, 0, s.Focus())

	assert.Equal(t, OutcomeNone, s.Press(constants.VirtualButtonSelect))
	assert.Equal(t, OutcomeQuit, s.Press(constants.VirtualButtonMenu))
}

func TestRepeaterTiming(t *testing.T) {
	now := time.Unix(0, 0)
	r := NewRepeaterWithTiming(300*time.Millisecond, 50*time.Millisecond)
	r.now = func() time.Time { return now }
	r.Reset()

	assert.False(t, r.SetHeld(constants.VirtualButtonA, true))
	assert.True(t, r.SetHeld(constants.VirtualButtonDown, true))
	assert.Equal(t, DirectionNone, r.Update())

	now = now.Add(300 * time.Millisecond)
	assert.Equal(t, DirectionDown, r.Update())

	now = now.Add(40 * time.Millisecond)
	assert.Equal(t, DirectionNone, r.Update())
	now = now.Add(10 * time.Millisecond)
	assert.Equal(t, DirectionDown, r.Update())
	assert.Equal(t, constants.VirtualButtonDown, r.Held().VirtualButton())

	r.SetHeld(constants.VirtualButtonDown, false)
	assert.Equal(t, DirectionNone, r.Update())
}
