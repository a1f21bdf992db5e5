//go:build !windows

package platform

import (
	"fyne.io/fyne/v2"

	"github.com/desktools/appdrawer/internal/geometry"
)

// Fyne exposes no global cursor or work area here, so the window keeps the
// driver's default placement.

func workArea() (geometry.Rect, error) {
	return geometry.Rect{}, errUnsupported
}

func cursorPosition() (geometry.Point, error) {
	return geometry.Point{}, errUnsupported
}

func moveWindow(fyne.Window, int, int) error {
	return errUnsupported
}
