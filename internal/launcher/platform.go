package launcher

import "github.com/desktools/appdrawer/internal/geometry"

// Platform is the set of OS and toolkit services the launcher needs
type Platform interface {
	// WorkArea returns the usable desktop area; zero when unknown
	WorkArea() geometry.Rect
	// CursorPosition returns the last known cursor position in screen coordinates
	CursorPosition() (geometry.Point, bool)
	CreateWindow(opts WindowOptions) (Window, error)
	// Launch starts path as a detached process and does not wait for it
	Launch(path string) error
	// ShowError blocks on a modal message box
	ShowError(title, message string)
}

// WindowOptions describes the icon row window. Placement is computed at a
// canvas scale of 1; the placement inputs are kept so a platform whose
// canvas is scaled can redo it in device pixels.
type WindowOptions struct {
	Title     string
	Placement geometry.Placement

	IconSize    uint32
	Count       int
	Cursor      geometry.Point
	CursorKnown bool
	WorkArea    geometry.Rect
}

// Window is a borderless icon row and its event source
type Window interface {
	LoadTexture(path string) (Texture, error)
	// Present draws textures left to right in iconSize slots and shows the frame once
	Present(textures []Texture, iconSize int)
	// WaitEvent blocks until the next input or window event
	WaitEvent() Event
	Destroy()
}

// Texture is a decoded icon bitmap owned by a Window
type Texture interface {
	Release()
}
