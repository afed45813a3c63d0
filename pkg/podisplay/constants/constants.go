// Package constants defines shared constants, types, and configuration values
// used throughout the podisplay shell.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read at startup.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	ConfigPathEnvVar   = "PODISPLAY_CONFIG"
	LogLevelEnvVar     = "LOG_LEVEL"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Well-known route names.
const (
	RouteMain   = "main"
	RouteSecond = "second"
)

// Well-known dialog identifiers owned by the PO display view.
const (
	DialogConfirm        = "confirmDialog"
	DialogValueHelp      = "valueHelp"
	DialogMessagePopover = "messagePopover"
)

// VirtualButton represents an abstract input button, mapped from physical keys.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Default timing constants.
const (
	DefaultInputDelay    = 20 * time.Millisecond // Debounce delay between input events
	DefaultToastDuration = 3 * time.Second       // How long a transient notice stays visible
	DefaultLoadTimeout   = 10 * time.Second      // Per-document mock data load timeout
)
