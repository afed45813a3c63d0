package view

import "fmt"

// PressEvent is raised by buttons. DialogID is set by buttons that open a dialog.
type PressEvent struct {
	Source   string
	DialogID string
}

func (e PressEvent) Validate() error {
	if e.Source == "" {
		return fmt.Errorf("%w: press without source", ErrInvalidEvent)
	}
	return nil
}

// LinkEvent is raised by navigation links. A link with an Href is handled
// by the host; otherwise NavTarget names where it points.
type LinkEvent struct {
	Source    string
	Href      string
	NavTarget string
}

func (e LinkEvent) Validate() error {
	if e.Source == "" {
		return fmt.Errorf("%w: link without source", ErrInvalidEvent)
	}
	return nil
}

// ValueTarget is an input field that value help writes into.
type ValueTarget interface {
	Value() string
	SetValue(value string)
}

// ValueHelpEvent is raised by an input's value help (F4) request.
type ValueHelpEvent struct {
	Source ValueTarget
}

func (e ValueHelpEvent) Validate() error {
	if e.Source == nil {
		return fmt.Errorf("%w: value help without source field", ErrInvalidEvent)
	}
	return nil
}

// DialogEvent is raised by a dialog's own buttons.
type DialogEvent struct {
	DialogID string
}

func (e DialogEvent) Validate() error {
	if e.DialogID == "" {
		return fmt.Errorf("%w: dialog event without dialog id", ErrInvalidEvent)
	}
	return nil
}

// Field is a plain ValueTarget.
type Field struct {
	ID    string
	value string
}

// NewField creates a field with an initial value.
func NewField(id, value string) *Field {
	return &Field{ID: id, value: value}
}

func (f *Field) Value() string { return f.value }

func (f *Field) SetValue(value string) { f.value = value }
