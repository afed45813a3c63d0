package view

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/podisplay/pkg/podisplay/constants"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/mockdata"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/notify"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/router"
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/schedule"
)

// DataLoader fetches the mock documents.
type DataLoader interface {
	LoadAsync(ctx context.Context, onResult func(mockdata.Result)) <-chan struct{}
}

// PODisplayController backs the purchase order display view.
type PODisplayController struct {
	*Controller

	poster schedule.Poster
	loader DataLoader

	order     PurchaseOrder
	orderID   string
	messages  *notify.MessageList
	store     *mockdata.Store
	loadsDone <-chan struct{}

	valueHelpTarget ValueTarget
}

// NewPODisplayController creates the controller. Load results are applied
// through poster so they land on the UI thread.
func NewPODisplayController(deps Deps, poster schedule.Poster, loader DataLoader) *PODisplayController {
	if poster == nil {
		poster = schedule.Immediate
	}

	c := &PODisplayController{
		Controller: NewController("poDisplay", deps),
		poster:     poster,
		loader:     loader,
		order:      DefaultPurchaseOrder(),
		messages:   notify.NewMessageList(),
		store:      mockdata.NewStore(),
	}

	c.DefineDialog(constants.DialogConfirm, c.createConfirm)
	c.DefineDialog(constants.DialogValueHelp, c.createValueHelp)
	c.DefineDialog(constants.DialogMessagePopover, c.createMessagePopover)

	return c
}

// OnInit starts the mock data loads and seeds the view models. Loads run in
// the background; their failure never blocks the view.
func (c *PODisplayController) OnInit(ctx context.Context) {
	if c.loader != nil {
		c.loadsDone = c.loader.LoadAsync(ctx, func(r mockdata.Result) {
			c.poster.Post(func() { c.applyData(r) })
		})
	}

	c.order = DefaultPurchaseOrder()
	c.messages = notify.NewMessageList(notify.Message{
		Type:        notify.SeveritySuccess,
		Title:       c.Text(notify.MsgSystemInfoTitle, nil),
		Description: c.Text(notify.MsgSystemInfoText, nil),
		Subtitle:    c.Text(notify.MsgSystemInfoSubtitle, nil),
		Counter:     1,
	})

	c.Logger().Info("PODisplayView controller initialized")
}

// LoadsDone is closed once every mock document load has reported.
// It is nil if no loader was configured.
func (c *PODisplayController) LoadsDone() <-chan struct{} {
	return c.loadsDone
}

// OnActivate shows the order named by "orders/{id}" routes, or the seeded
// order when the route carries no id.
func (c *PODisplayController) OnActivate(event router.MatchedEvent) {
	c.Controller.OnActivate(event)
	c.orderID = event.Params["id"]
	c.order.PONumber = c.orderID
	if c.orderID == "" {
		c.order.PONumber = DefaultPurchaseOrder().PONumber
	}
}

// PurchaseOrder returns the displayed document.
func (c *PODisplayController) PurchaseOrder() PurchaseOrder { return c.order }

// Messages returns the message list model.
func (c *PODisplayController) Messages() *notify.MessageList { return c.messages }

// Store returns the mock data loaded so far.
func (c *PODisplayController) Store() *mockdata.Store { return c.store }

// Overlay returns the built overlay for id, if any.
func (c *PODisplayController) Overlay(id string) (*Overlay, bool) {
	handle, ok := c.Dialog(id)
	if !ok {
		return nil, false
	}
	o, ok := handle.Dialog().(*Overlay)
	return o, ok
}

func (c *PODisplayController) applyData(r mockdata.Result) {
	c.store.Apply(r)
	if r.Err == nil {
		c.Logger().Debug("Mock data loaded", "kind", r.Kind, "source", r.Source)
		return
	}

	c.Logger().Warn("Mock data load failed", "kind", r.Kind, "source", r.Source, "error", r.Err)
	c.messages.Add(notify.Message{
		Type:        notify.SeverityWarning,
		Title:       c.Text(notify.MsgDataLoadFailedTitle, nil),
		Description: r.Err.Error(),
		Subtitle:    c.Text(notify.MsgDataLoadFailed, map[string]any{"Source": string(r.Kind)}),
	})
}

// HandleValueHelp opens the value help list for the requesting field.
// The confirmed item's title is written back into that field.
func (c *PODisplayController) HandleValueHelp(event ValueHelpEvent) {
	if err := event.Validate(); err != nil {
		c.Logger().Warn("Rejected value help event", "error", err)
		return
	}
	c.valueHelpTarget = event.Source
	c.OpenDialog(constants.DialogValueHelp)
}

func (c *PODisplayController) createConfirm() (Dialog, error) {
	return &Overlay{
		ID:    constants.DialogConfirm,
		Title: c.Text(notify.MsgConfirmTitle, nil),
		Kind:  KindDialog,
	}, nil
}

func (c *PODisplayController) createValueHelp() (Dialog, error) {
	return &Overlay{
		ID:    constants.DialogValueHelp,
		Title: c.Text(notify.MsgSelectValue, nil),
		Kind:  KindSelectDialog,
		Items: []Item{
			{Title: "Item 1", Description: "Description 1"},
			{Title: "Item 2", Description: "Description 2"},
			{Title: "Item 3", Description: "Description 3"},
		},
		OnConfirm: func(item Item) {
			if c.valueHelpTarget != nil {
				c.valueHelpTarget.SetValue(item.Title)
			}
		},
	}, nil
}

// HandleMessagePopoverPress toggles the message popover.
func (c *PODisplayController) HandleMessagePopoverPress(event PressEvent) {
	if err := event.Validate(); err != nil {
		c.Logger().Warn("Rejected press event", "error", err)
		return
	}
	if o, ok := c.Overlay(constants.DialogMessagePopover); ok {
		o.Items = c.messageItems()
	}
	c.ToggleDialog(constants.DialogMessagePopover)
}

func (c *PODisplayController) createMessagePopover() (Dialog, error) {
	return &Overlay{
		ID:    constants.DialogMessagePopover,
		Title: c.Text(notify.MsgMessagesTitle, nil),
		Kind:  KindPopover,
		Items: c.messageItems(),
	}, nil
}

func (c *PODisplayController) messageItems() []Item {
	messages := c.messages.Messages()
	items := make([]Item, 0, len(messages))
	for _, m := range messages {
		title := fmt.Sprintf("[%s] %s", m.Type, m.Title)
		if m.Counter > 1 {
			title = fmt.Sprintf("%s (%d)", title, m.Counter)
		}
		items = append(items, Item{Title: title, Description: m.Description})
	}
	return items
}

// OnFileDownload acknowledges a download request.
func (c *PODisplayController) OnFileDownload(PressEvent) {
	c.ShowTransientNotice(c.Text(notify.MsgFileDownload, nil))
}

// OnNavigationLinkPress handles links without an href.
func (c *PODisplayController) OnNavigationLinkPress(event LinkEvent) {
	if err := event.Validate(); err != nil {
		c.Logger().Warn("Rejected link event", "error", err)
		return
	}
	if event.Href != "" {
		return
	}
	if event.NavTarget != "" {
		c.ShowTransientNotice(c.Text(notify.MsgNavigatingTo, map[string]any{"Target": event.NavTarget}))
	}
}

// OnOpenDialogPress opens the dialog named by the button, or the confirm
// dialog if the button names none.
func (c *PODisplayController) OnOpenDialogPress(event PressEvent) {
	id := event.DialogID
	if id == "" {
		id = constants.DialogConfirm
	}
	c.OpenDialog(id)
}

// OnDialogConfirm handles a dialog's confirm button. Select dialogs hand
// their selection to the waiting field; other dialogs acknowledge.
func (c *PODisplayController) OnDialogConfirm(event DialogEvent) {
	if err := event.Validate(); err != nil {
		c.Logger().Warn("Rejected dialog event", "error", err)
		return
	}

	if o, ok := c.Overlay(event.DialogID); ok && o.Kind == KindSelectDialog {
		o.Confirm()
	} else {
		c.ShowTransientNotice(c.Text(notify.MsgDialogConfirmed, nil))
	}
	c.CloseDialog(event.DialogID)
}

// OnDialogCancel closes the dialog without acting on it.
func (c *PODisplayController) OnDialogCancel(event DialogEvent) {
	if err := event.Validate(); err != nil {
		c.Logger().Warn("Rejected dialog event", "error", err)
		return
	}
	c.CloseDialog(event.DialogID)
}

// OnNextPress navigates to the second view.
func (c *PODisplayController) OnNextPress(PressEvent) {
	c.RequestNavigation(constants.RouteSecond)
}

// OnBackPress navigates back to the main view.
func (c *PODisplayController) OnBackPress(PressEvent) {
	c.RequestNavigation(constants.RouteMain)
}

// NavTo navigates to an arbitrary route.
func (c *PODisplayController) NavTo(route string) {
	c.RequestNavigation(route)
}

// OnActionPress acknowledges a toolbar button.
func (c *PODisplayController) OnActionPress(action Action) {
	c.ShowTransientNotice(c.Text(notify.MsgButtonPressed, map[string]any{"Label": action.Label()}))
}
