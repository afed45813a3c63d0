package screen

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/podisplay/pkg/podisplay/view"
)

// FooterHelpItem describes one button hint shown in the footer.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

// Line is one row of the view body.
type Line struct {
	Label     string
	Value     string
	Focusable bool
	Focused   bool
}

func (l Line) String() string {
	text := l.Label
	if l.Value != "" {
		text = fmt.Sprintf("%s: %s", l.Label, l.Value)
	}
	if l.Focused {
		return "> " + text
	}
	return "  " + text
}

// OverlayFrame is the topmost open dialog.
type OverlayFrame struct {
	ID       string
	Title    string
	Kind     view.OverlayKind
	Items    []Line
	Selected int
}

// Frame is everything a frontend draws for one tick.
type Frame struct {
	Title   string
	Hash    string
	Route   string
	Lines   []Line
	Overlay *OverlayFrame
	Toasts  []string
	Footer  []FooterHelpItem
}

// String renders the frame as plain text for the console frontend.
func (f Frame) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "== %s [%s] ==\n", f.Title, f.Hash)
	for _, line := range f.Lines {
		b.WriteString(line.String())
		b.WriteByte('\n')
	}

	if f.Overlay != nil {
		fmt.Fprintf(&b, "-- %s (%s) --\n", f.Overlay.Title, f.Overlay.Kind)
		for _, item := range f.Overlay.Items {
			b.WriteString(item.String())
			b.WriteByte('\n')
		}
	}

	for _, toast := range f.Toasts {
		fmt.Fprintf(&b, "(!) %s\n", toast)
	}

	if len(f.Footer) > 0 {
		hints := make([]string, 0, len(f.Footer))
		for _, item := range f.Footer {
			hints = append(hints, fmt.Sprintf("[%s] %s", item.ButtonName, item.HelpText))
		}
		b.WriteString(strings.Join(hints, "  "))
		b.WriteByte('\n')
	}

	return b.String()
}
