package view

// Dialog is the surface a DialogHandle drives.
type Dialog interface {
	Open()
	Close()
	Destroy()
}

// OverlayKind distinguishes how an overlay is presented.
type OverlayKind int

const (
	KindDialog       OverlayKind = iota // Modal dialog with confirm/cancel
	KindPopover                         // Anchored, toggled list
	KindSelectDialog                    // Modal list picker
)

func (k OverlayKind) String() string {
	switch k {
	case KindPopover:
		return "popover"
	case KindSelectDialog:
		return "select"
	default:
		return "dialog"
	}
}

// Item is one row of a popover or select dialog.
type Item struct {
	Title       string
	Description string
}

// Overlay is the Dialog implementation frontends render.
type Overlay struct {
	ID        string
	Title     string
	Kind      OverlayKind
	Items     []Item
	Selected  int
	OnConfirm func(item Item)

	open      bool
	destroyed bool
	opened    int
}

func (o *Overlay) Open() {
	if o.destroyed {
		return
	}
	o.open = true
	o.opened++
}

func (o *Overlay) Close() {
	o.open = false
}

func (o *Overlay) Destroy() {
	o.open = false
	o.destroyed = true
	o.OnConfirm = nil
}

// IsOpen reports whether the overlay is showing.
func (o *Overlay) IsOpen() bool { return o.open }

// IsDestroyed reports whether the owning view released the overlay.
func (o *Overlay) IsDestroyed() bool { return o.destroyed }

// TimesOpened counts Open calls, for diagnostics.
func (o *Overlay) TimesOpened() int { return o.opened }

// Move shifts the selection by delta, wrapping around.
func (o *Overlay) Move(delta int) {
	if len(o.Items) == 0 {
		return
	}
	o.Selected = ((o.Selected+delta)%len(o.Items) + len(o.Items)) % len(o.Items)
}

// SelectedItem returns the highlighted item.
func (o *Overlay) SelectedItem() (Item, bool) {
	if o.Selected < 0 || o.Selected >= len(o.Items) {
		return Item{}, false
	}
	return o.Items[o.Selected], true
}

// Confirm hands the selected item to OnConfirm.
func (o *Overlay) Confirm() {
	if o.OnConfirm == nil {
		return
	}
	if item, ok := o.SelectedItem(); ok {
		o.OnConfirm(item)
	}
}
