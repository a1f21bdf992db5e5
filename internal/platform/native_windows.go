//go:build windows

package platform

import (
	"errors"
	"fmt"
	"unsafe"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"

	"github.com/desktools/appdrawer/internal/geometry"
)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfoW = user32.NewProc("SystemParametersInfoW")
	procGetCursorPos          = user32.NewProc("GetCursorPos")
	procSetWindowPos          = user32.NewProc("SetWindowPos")
)

const (
	spiGetWorkArea = 0x0030

	swpNoSize   = 0x0001
	swpNoZOrder = 0x0004
)

type win32Point struct {
	X, Y int32
}

func workArea() (geometry.Rect, error) {
	var r windows.Rect
	ret, _, err := procSystemParametersInfoW.Call(spiGetWorkArea, 0, uintptr(unsafe.Pointer(&r)), 0)
	if ret == 0 {
		return geometry.Rect{}, fmt.Errorf("SystemParametersInfoW: %w", err)
	}
	return geometry.Rect{
		MinX: int(r.Left),
		MinY: int(r.Top),
		MaxX: int(r.Right),
		MaxY: int(r.Bottom),
	}, nil
}

func cursorPosition() (geometry.Point, error) {
	var p win32Point
	ret, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&p)))
	if ret == 0 {
		return geometry.Point{}, fmt.Errorf("GetCursorPos: %w", err)
	}
	return geometry.Point{X: int(p.X), Y: int(p.Y)}, nil
}

// moveWindow sets the top-left corner of w in screen pixels
func moveWindow(w fyne.Window, x, y int) error {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return errors.New("window has no native handle")
	}

	var err error
	nw.RunNative(func(ctx any) {
		wc, ok := ctx.(driver.WindowsWindowContext)
		if !ok {
			err = fmt.Errorf("unexpected native context %T", ctx)
			return
		}
		ret, _, callErr := procSetWindowPos.Call(wc.HWND, 0, uintptr(x), uintptr(y), 0, 0, swpNoSize|swpNoZOrder)
		if ret == 0 {
			err = fmt.Errorf("SetWindowPos: %w", callErr)
		}
	})
	return err
}
