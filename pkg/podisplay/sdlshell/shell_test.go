package sdlshell

import (
	"testing"

	"github.com/BrandonKowalski/podisplay/pkg/podisplay/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestHexToColor(t *testing.T) {
	assert.Equal(t, sdl.Color{R: 0x00, G: 0x80, B: 0x80, A: 0xFF}, HexToColor(0x008080))
	assert.Equal(t, sdl.Color{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}, HexToColor(0x123456))
}

func TestRasterizeIcon(t *testing.T) {
	img, err := RasterizeIcon(iconSVG, 64)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())

	corner := img.RGBAAt(0, 0)
	assert.Zero(t, corner.A, "rounded corner stays transparent")

	sheet := img.RGBAAt(32, 48)
	assert.Equal(t, uint8(0xFF), sheet.R)
	assert.Equal(t, uint8(0xFF), sheet.A)

	_, err = RasterizeIcon(iconSVG, 0)
	assert.Error(t, err)
}

func TestKeyButton(t *testing.T) {
	assert.Equal(t, constants.VirtualButtonUp, KeyButton(sdl.K_UP))
	assert.Equal(t, constants.VirtualButtonA, KeyButton(sdl.K_RETURN))
	assert.Equal(t, constants.VirtualButtonB, KeyButton(sdl.K_BACKSPACE))
	assert.Equal(t, constants.VirtualButtonMenu, KeyButton(sdl.K_ESCAPE))
	assert.Equal(t, constants.VirtualButtonUnassigned, KeyButton(sdl.K_F12))

	assert.Equal(t, constants.VirtualButtonY, ControllerButton(sdl.CONTROLLER_BUTTON_Y))
	assert.Equal(t, constants.VirtualButtonSelect, ControllerButton(sdl.CONTROLLER_BUTTON_BACK))
}

func TestTranslateKeyboardEvent(t *testing.T) {
	input, ok := translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_DOWN}})
	require.True(t, ok)
	assert.Equal(t, InputEvent{Button: constants.VirtualButtonDown, Pressed: true}, input)

	input, ok = translate(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_DOWN}})
	require.True(t, ok)
	assert.False(t, input.Pressed)

	_, ok = translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_F12}})
	assert.False(t, ok)
	_, ok = translate(&sdl.QuitEvent{})
	assert.False(t, ok)
}

func TestTextureCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := newTextureCache(2)
	c.set("a", cachedTexture{w: 1})
	c.set("b", cachedTexture{w: 2})

	_, ok := c.get("a")
	require.True(t, ok)

	c.set("c", cachedTexture{w: 3})
	_, ok = c.get("b")
	assert.False(t, ok, "b was least recently used")

	entry, ok := c.get("a")
	require.True(t, ok)
	assert.Equal(t, int32(1), entry.w)

	c.destroy()
	_, ok = c.get("c")
	assert.False(t, ok)
}

func TestWindowOptionsFlags(t *testing.T) {
	assert.True(t, WindowOptions{}.IsZero())
	flags := WindowOptions{Resizable: true}.ToSDLFlags()
	assert.NotZero(t, flags&sdl.WINDOW_SHOWN)
	assert.NotZero(t, flags&sdl.WINDOW_RESIZABLE)
	assert.Zero(t, WindowOptions{Hidden: true}.ToSDLFlags()&sdl.WINDOW_SHOWN)
}
