package sdlshell

import "github.com/veandco/go-sdl2/sdl"

// Theme defines the visual appearance of the SDL frontend.
type Theme struct {
	HighlightColor       sdl.Color // Focused row background, footer pills
	AccentColor          sdl.Color // Header bar, overlay border
	ButtonLabelColor     sdl.Color // Text inside footer pills
	TextColor            sdl.Color // Default text
	HighlightedTextColor sdl.Color // Text on the focused row
	HintColor            sdl.Color // Hash line, read-only values
	BackgroundColor      sdl.Color // Screen background
	ToastColor           sdl.Color // Transient notice background
	FontPath             string    // TTF used for every text size
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// DefaultTheme is a dark teal theme using fontPath.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		HighlightColor:       HexToColor(0xFFFFFF),
		AccentColor:          HexToColor(0x008080),
		ButtonLabelColor:     HexToColor(0x000000),
		TextColor:            HexToColor(0xFFFFFF),
		HighlightedTextColor: HexToColor(0x000000),
		HintColor:            HexToColor(0xB4B4B4),
		BackgroundColor:      HexToColor(0x1B1B1B),
		ToastColor:           HexToColor(0x323232),
		FontPath:             fontPath,
	}
}
