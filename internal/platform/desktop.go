package platform

import (
	"errors"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/desktools/appdrawer/internal/geometry"
	"github.com/desktools/appdrawer/internal/launcher"
)

const appID = "io.desktools.appdrawer"

var errUnsupported = errors.New("not supported on " + runtime.GOOS)

// Desktop implements launcher.Platform on top of Fyne and the host OS
type Desktop struct {
	logger  *zap.Logger
	fyneApp fyne.App
}

// New creates a Desktop; the Fyne app starts on the first CreateWindow
func New(logger *zap.Logger) *Desktop {
	return &Desktop{logger: logger}
}

func (d *Desktop) WorkArea() geometry.Rect {
	r, err := workArea()
	if err != nil {
		d.logger.Debug("Work area unavailable", zap.Error(err))
		return geometry.Rect{}
	}
	return r
}

func (d *Desktop) CursorPosition() (geometry.Point, bool) {
	p, err := cursorPosition()
	if err != nil {
		d.logger.Debug("Cursor position unavailable", zap.Error(err))
		return geometry.Point{}, false
	}
	return p, true
}

func (d *Desktop) CreateWindow(opts launcher.WindowOptions) (launcher.Window, error) {
	w, err := newWindow(d.application(), opts, d.logger)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (d *Desktop) Launch(path string) error {
	return startDetached(path)
}

func (d *Desktop) ShowError(title, message string) {
	dialog.Message("%s", message).Title(title).Error()
}

// application creates the Fyne app on first use. FYNE_SCALE is set to 1
// unless the user already chose one. Fyne still multiplies it by the monitor
// scale on HiDPI displays, so window.place redoes the placement at the
// canvas scale before the native move.
func (d *Desktop) application() fyne.App {
	if d.fyneApp == nil {
		if _, ok := os.LookupEnv("FYNE_SCALE"); !ok {
			os.Setenv("FYNE_SCALE", "1")
		}
		d.fyneApp = app.NewWithID(appID)
	}
	return d.fyneApp
}
