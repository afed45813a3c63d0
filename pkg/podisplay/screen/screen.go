// Package screen maps a running Component onto something a frontend can
// draw and drive with a handful of buttons. It owns focus and the input
// fields the value help writes into; everything else lives in the views.
//
// A Screen is used from the UI loop only.
package screen

import (
	"fmt"

	"github.com/BrandonKowalski/podisplay/pkg/podisplay"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/constants"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/mockdata"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/view"
)

// Outcome tells the frontend what a button press led to.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeHandled
	OutcomeQuit
)

type entry struct {
	line Line
	run  func()
}

// Screen is the button-driven face of a Component.
type Screen struct {
	component *podisplay.Component
	focus     int

	vendor *view.Field
	terms  *view.Field
}

// New creates a screen for c.
func New(c *podisplay.Component) *Screen {
	order := c.PODisplay().PurchaseOrder()
	return &Screen{
		component: c,
		vendor:    view.NewField("vendor", order.Vendor),
		terms:     view.NewField("paymentTerms", order.PaymentTerms),
	}
}

// Vendor returns the vendor input field.
func (s *Screen) Vendor() *view.Field { return s.vendor }

// PaymentTerms returns the payment terms input field.
func (s *Screen) PaymentTerms() *view.Field { return s.terms }

// Focus returns the index of the focused entry.
func (s *Screen) Focus() int { return s.focus }

// Press handles one button press.
func (s *Screen) Press(button constants.VirtualButton) Outcome {
	if button == constants.VirtualButtonMenu {
		return OutcomeQuit
	}

	if overlay, ok := s.topOverlay(); ok {
		return s.pressOverlay(overlay, button)
	}

	switch button {
	case constants.VirtualButtonUp:
		s.moveFocus(-1)
	case constants.VirtualButtonDown:
		s.moveFocus(1)
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		s.runFocused(s.entries())
	case constants.VirtualButtonB:
		s.back()
	case constants.VirtualButtonY:
		if s.component.PODisplay().IsActive() {
			s.component.PODisplay().HandleMessagePopoverPress(view.PressEvent{Source: "messagePopoverBtn"})
		}
	default:
		return OutcomeNone
	}
	return OutcomeHandled
}

// Frame snapshots what to draw.
func (s *Screen) Frame() Frame {
	r := s.component.Router()
	state := r.State()

	frame := Frame{
		Title: s.component.Config().App.Title,
		Hash:  "#" + s.component.Location().Hash(),
		Route: state.Current,
	}

	entries := s.entries()
	if s.focus >= focusableCount(entries) {
		s.focus = 0
	}
	focusable := 0
	for _, e := range entries {
		line := e.line
		if e.run != nil {
			line.Focusable = true
			line.Focused = focusable == s.focus
			focusable++
		}
		frame.Lines = append(frame.Lines, line)
	}

	if overlay, ok := s.topOverlay(); ok {
		of := &OverlayFrame{
			ID:       overlay.ID,
			Title:    overlay.Title,
			Kind:     overlay.Kind,
			Selected: overlay.Selected,
		}
		for i, item := range overlay.Items {
			of.Items = append(of.Items, Line{
				Label:     item.Title,
				Value:     item.Description,
				Focusable: true,
				Focused:   i == overlay.Selected,
			})
		}
		frame.Overlay = of
	}

	for _, toast := range s.component.Toaster().Active() {
		frame.Toasts = append(frame.Toasts, toast.Message)
	}

	frame.Footer = s.footer(frame.Overlay != nil)
	return frame
}

func (s *Screen) footer(overlayOpen bool) []FooterHelpItem {
	if overlayOpen {
		return []FooterHelpItem{
			{ButtonName: "A", HelpText: "Confirm"},
			{ButtonName: "B", HelpText: "Cancel"},
		}
	}
	items := []FooterHelpItem{
		{ButtonName: "A", HelpText: "Select"},
		{ButtonName: "B", HelpText: "Back"},
	}
	if s.component.PODisplay().IsActive() {
		items = append(items, FooterHelpItem{ButtonName: "Y", HelpText: "Messages"})
	}
	return append(items, FooterHelpItem{ButtonName: "Menu", HelpText: "Quit"})
}

// entries lists the rows of the active view. Rows without run are read-only.
func (s *Screen) entries() []entry {
	switch {
	case s.component.PODisplay().IsActive():
		return s.mainEntries()
	case s.component.Second().IsActive():
		second := s.component.Second()
		return []entry{{
			line: Line{Label: "Back to purchase order"},
			run:  func() { second.RequestNavigation(constants.RouteMain) },
		}}
	default:
		return nil
	}
}

func (s *Screen) mainEntries() []entry {
	po := s.component.PODisplay()
	order := po.PurchaseOrder()

	entries := []entry{
		{line: Line{Label: "Purchase Order", Value: order.PONumber}},
		{line: Line{Label: "Created By", Value: order.CreatedBy}},
		{line: Line{Label: "Document Type", Value: order.DocumentType}},
		{line: Line{Label: "Currency", Value: fmt.Sprintf("%s (%s)", order.Currency, order.ExchangeRate)}},
		{line: Line{Label: "Mock Data", Value: storeSummary(po.Store())}},
		{
			line: Line{Label: "Vendor", Value: s.vendor.Value()},
			run:  func() { po.HandleValueHelp(view.ValueHelpEvent{Source: s.vendor}) },
		},
		{
			line: Line{Label: "Payment Terms", Value: s.terms.Value()},
			run:  func() { po.HandleValueHelp(view.ValueHelpEvent{Source: s.terms}) },
		},
		{
			line: Line{Label: "Messages", Value: fmt.Sprintf("%d", po.Messages().Len())},
			run:  func() { po.HandleMessagePopoverPress(view.PressEvent{Source: "messagePopoverBtn"}) },
		},
		{
			line: Line{Label: "Open Dialog"},
			run:  func() { po.OnOpenDialogPress(view.PressEvent{Source: "openDialogBtn"}) },
		},
		{
			line: Line{Label: "Download Attachment"},
			run:  func() { po.OnFileDownload(view.PressEvent{Source: "downloadBtn"}) },
		},
		{
			line: Line{Label: "Related Document", Value: "ME23N"},
			run: func() {
				po.OnNavigationLinkPress(view.LinkEvent{Source: "relatedLink", NavTarget: "ME23N"})
			},
		},
		{
			line: Line{Label: "Next"},
			run:  func() { po.OnNextPress(view.PressEvent{Source: "nextBtn"}) },
		},
	}

	for _, action := range view.Actions() {
		action := action
		entries = append(entries, entry{
			line: Line{Label: action.Label()},
			run:  func() { po.OnActionPress(action) },
		})
	}

	return entries
}

func focusableCount(entries []entry) int {
	n := 0
	for _, e := range entries {
		if e.run != nil {
			n++
		}
	}
	return n
}

func (s *Screen) moveFocus(delta int) {
	n := focusableCount(s.entries())
	if n == 0 {
		s.focus = 0
		return
	}
	s.focus = ((s.focus+delta)%n + n) % n
}

func (s *Screen) runFocused(entries []entry) {
	i := 0
	for _, e := range entries {
		if e.run == nil {
			continue
		}
		if i == s.focus {
			e.run()
			return
		}
		i++
	}
}

// back steps the history back when the location supports it, otherwise
// returns to the main view.
func (s *Screen) back() {
	if b, ok := s.component.Location().(interface{ Back() bool }); ok && b.Back() {
		return
	}
	if s.component.Router().State().Current != constants.RouteMain {
		s.component.Router().NavigateTo(constants.RouteMain, nil)
	}
}

func (s *Screen) topOverlay() (*view.Overlay, bool) {
	active := s.component.ActiveView()
	if active == nil {
		return nil, false
	}
	open := active.OpenDialogs()
	if len(open) == 0 {
		return nil, false
	}
	overlay, ok := open[len(open)-1].Dialog().(*view.Overlay)
	return overlay, ok
}

func (s *Screen) pressOverlay(overlay *view.Overlay, button constants.VirtualButton) Outcome {
	active := s.component.ActiveView()
	po := s.component.PODisplay()
	event := view.DialogEvent{DialogID: overlay.ID}

	switch button {
	case constants.VirtualButtonUp:
		overlay.Move(-1)
	case constants.VirtualButtonDown:
		overlay.Move(1)
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		switch {
		case overlay.Kind == view.KindPopover:
			active.CloseDialog(overlay.ID)
		case po.IsActive():
			po.OnDialogConfirm(event)
		default:
			active.CloseDialog(overlay.ID)
		}
	case constants.VirtualButtonB:
		if po.IsActive() {
			po.OnDialogCancel(event)
		} else {
			active.CloseDialog(overlay.ID)
		}
	default:
		return OutcomeNone
	}
	return OutcomeHandled
}

func storeSummary(store *mockdata.Store) string {
	summary := ""
	for i, kind := range []mockdata.Kind{mockdata.KindCustomers, mockdata.KindProducts, mockdata.KindOrders} {
		if i > 0 {
			summary += ", "
		}
		status := "pending"
		switch {
		case store.Loaded(kind):
			status = "ok"
		case store.Failure(kind) != nil:
			status = "failed"
		}
		summary += fmt.Sprintf("%s %s", kind, status)
	}
	return summary
}
