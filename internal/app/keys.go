package app

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/folio3d/internal/portfolio"
)

// action is a keyboard shortcut outcome.
type action int

const (
	actionNone action = iota
	actionSetModel
	actionToggleHelp
	actionOpenResume
	actionScreenshot
	actionFullscreen
	actionResetCamera
	actionToggleBounds
	actionQuit
)

// keyAction maps a scancode to its shortcut. Model keys also return the
// identity to put on stage.
func keyAction(key sdl.Scancode) (action, portfolio.ModelIdentity) {
	switch key {
	case sdl.SCANCODE_1, sdl.SCANCODE_KP_1:
		return actionSetModel, portfolio.NextJS
	case sdl.SCANCODE_2, sdl.SCANCODE_KP_2:
		return actionSetModel, portfolio.React
	case sdl.SCANCODE_3, sdl.SCANCODE_KP_3:
		return actionSetModel, portfolio.Tailwind
	case sdl.SCANCODE_R:
		return actionSetModel, portfolio.Resume
	case sdl.SCANCODE_H:
		return actionToggleHelp, 0
	case sdl.SCANCODE_O:
		return actionOpenResume, 0
	case sdl.SCANCODE_F12:
		return actionScreenshot, 0
	case sdl.SCANCODE_F:
		return actionFullscreen, 0
	case sdl.SCANCODE_B:
		return actionToggleBounds, 0
	case sdl.SCANCODE_HOME:
		return actionResetCamera, 0
	case sdl.SCANCODE_ESCAPE:
		return actionQuit, 0
	}
	return actionNone, 0
}
