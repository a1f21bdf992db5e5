package platform

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"go.uber.org/zap"

	"github.com/desktools/appdrawer/internal/geometry"
	"github.com/desktools/appdrawer/internal/icons"
	"github.com/desktools/appdrawer/internal/launcher"
)

// window is a borderless Fyne splash window. Its event loop runs once: the
// first actionable event is recorded and the app quits.
type window struct {
	fyneApp fyne.App
	win     fyne.Window
	logger  *zap.Logger
	opts    launcher.WindowOptions

	events *eventRecorder
	ran    bool
}

func newWindow(a fyne.App, opts launcher.WindowOptions, logger *zap.Logger) (*window, error) {
	pl := opts.Placement
	if pl.Width <= 0 || pl.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", pl.Width, pl.Height)
	}

	drv, ok := a.Driver().(desktop.Driver)
	if !ok {
		return nil, fmt.Errorf("driver %T cannot create borderless windows", a.Driver())
	}
	fw := drv.CreateSplashWindow()
	if fw == nil {
		return nil, errors.New("driver returned no window")
	}
	fw.SetTitle(opts.Title)
	fw.SetPadded(false)
	fw.Resize(fyne.NewSize(float32(pl.Width), float32(pl.Height)))
	fw.SetFixedSize(true)

	w := &window{
		fyneApp: a,
		win:     fw,
		logger:  logger,
		opts:    opts,
		events:  newEventRecorder(a.Quit),
	}

	fw.SetCloseIntercept(w.events.closed)
	if dc, ok := fw.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(w.events.key)
	} else {
		fw.Canvas().SetOnTypedKey(w.events.key)
	}

	lc := a.Lifecycle()
	lc.SetOnStarted(w.place)
	lc.SetOnEnteredForeground(w.events.focusGained)
	lc.SetOnExitedForeground(w.events.focusLost)

	return w, nil
}

func (w *window) LoadTexture(path string) (launcher.Texture, error) {
	img, err := icons.Decode(path)
	if err != nil {
		return nil, err
	}

	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillStretch
	ci.ScaleMode = canvas.ImageScaleSmooth
	return &texture{img: ci}, nil
}

func (w *window) Present(textures []launcher.Texture, iconSize int) {
	strip := NewIconStrip(iconSize, stripImages(textures, w.logger))
	strip.OnPress = w.events.press
	w.win.SetContent(strip)
	w.win.Show()
}

// WaitEvent runs the Fyne loop until the first actionable event. Later calls
// report the window as closed.
func (w *window) WaitEvent() launcher.Event {
	if !w.ran {
		w.ran = true
		w.fyneApp.Run()
	}
	return w.events.take()
}

// Destroy closes the window. After the loop has run Quit already tore it down.
func (w *window) Destroy() {
	if w.ran {
		return
	}
	w.ran = true
	w.win.Close()
}

// place moves the window once it exists. The native move is in device
// pixels, so the row is placed again at the canvas scale.
func (w *window) place() {
	pl := scaledPlacement(w.opts, w.win.Canvas().Scale())
	if !pl.Positioned {
		return
	}
	if err := moveWindow(w.win, pl.X, pl.Y); err != nil {
		w.logger.Debug("Keeping default window placement", zap.Error(err))
	}
}

func scaledPlacement(opts launcher.WindowOptions, scale float32) geometry.Placement {
	if opts.Count == 0 || scale == 1 {
		return opts.Placement
	}
	return geometry.PlaceScaled(opts.IconSize, opts.Count, scale, opts.Cursor, opts.CursorKnown, opts.WorkArea)
}

// stripImages keeps one image per slot so icons stay under the index they
// are picked by. A texture this window did not make, or one already
// released, is drawn as an empty slot.
func stripImages(textures []launcher.Texture, logger *zap.Logger) []*canvas.Image {
	images := make([]*canvas.Image, len(textures))
	for i, t := range textures {
		if tex, ok := t.(*texture); ok && tex.img != nil {
			images[i] = tex.img
			continue
		}
		logger.Warn("Icon slot left empty", zap.Int("index", i), zap.String("texture", fmt.Sprintf("%T", t)))
		images[i] = &canvas.Image{}
	}
	return images
}

type texture struct {
	img *canvas.Image
}

func (t *texture) Release() {
	if t.img == nil {
		return
	}
	t.img.Image = nil
	t.img = nil
}
