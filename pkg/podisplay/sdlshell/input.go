package sdlshell

import (
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// InputEvent is a physical input translated to a virtual button.
type InputEvent struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool
}

// KeyButton maps keyboard keys to virtual buttons.
func KeyButton(key sdl.Keycode) constants.VirtualButton {
	switch key {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN, sdl.K_a:
		return constants.VirtualButtonA
	case sdl.K_BACKSPACE, sdl.K_b:
		return constants.VirtualButtonB
	case sdl.K_x:
		return constants.VirtualButtonX
	case sdl.K_y:
		return constants.VirtualButtonY
	case sdl.K_SPACE:
		return constants.VirtualButtonStart
	case sdl.K_TAB:
		return constants.VirtualButtonSelect
	case sdl.K_ESCAPE:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}

// ControllerButton maps game controller buttons to virtual buttons.
func ControllerButton(button sdl.GameControllerButton) constants.VirtualButton {
	switch button {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_A:
		return constants.VirtualButtonA
	case sdl.CONTROLLER_BUTTON_B:
		return constants.VirtualButtonB
	case sdl.CONTROLLER_BUTTON_X:
		return constants.VirtualButtonX
	case sdl.CONTROLLER_BUTTON_Y:
		return constants.VirtualButtonY
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}

// translate turns an SDL event into an InputEvent. ok is false for
// events that carry no button.
func translate(event sdl.Event) (InputEvent, bool) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		button := KeyButton(e.Keysym.Sym)
		if button == constants.VirtualButtonUnassigned {
			return InputEvent{}, false
		}
		return InputEvent{
			Button:  button,
			Pressed: e.Type == sdl.KEYDOWN,
			Repeat:  e.Repeat != 0,
		}, true

	case *sdl.ControllerButtonEvent:
		button := ControllerButton(sdl.GameControllerButton(e.Button))
		if button == constants.VirtualButtonUnassigned {
			return InputEvent{}, false
		}
		return InputEvent{Button: button, Pressed: e.State == sdl.PRESSED}, true
	}
	return InputEvent{}, false
}

func openControllers() []*sdl.GameController {
	var controllers []*sdl.GameController
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if gc := sdl.GameControllerOpen(i); gc != nil {
			controllers = append(controllers, gc)
		}
	}
	return controllers
}
