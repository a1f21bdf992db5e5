package launcher

import (
	"errors"

	"github.com/desktools/appdrawer/internal/geometry"
)

type fakeTexture struct {
	path     string
	win      *fakeWindow
	released bool
}

func (t *fakeTexture) Release() {
	if t.released {
		return
	}
	t.released = true
	t.win.released++
}

type fakeWindow struct {
	opts      WindowOptions
	events    []Event
	failIcon  string
	loaded    int
	released  int
	presented [][]string
	waits     int
	destroyed int
}

func (w *fakeWindow) LoadTexture(path string) (Texture, error) {
	if path == w.failIcon {
		return nil, errors.New("unsupported image format")
	}
	w.loaded++
	return &fakeTexture{path: path, win: w}, nil
}

func (w *fakeWindow) Present(textures []Texture, iconSize int) {
	paths := make([]string, len(textures))
	for i, tex := range textures {
		paths[i] = tex.(*fakeTexture).path
	}
	w.presented = append(w.presented, paths)
}

func (w *fakeWindow) WaitEvent() Event {
	w.waits++
	if len(w.events) == 0 {
		return Event{Kind: EventClose}
	}
	ev := w.events[0]
	w.events = w.events[1:]
	return ev
}

func (w *fakeWindow) Destroy() {
	w.destroyed++
}

type fakePlatform struct {
	area        geometry.Rect
	cursor      geometry.Point
	cursorKnown bool

	window    *fakeWindow
	createErr error
	created   int

	launchErr error
	launched  []string
	dialogs   []string
}

func newFakePlatform(events ...Event) *fakePlatform {
	return &fakePlatform{
		area:        geometry.Rect{MaxX: 1920, MaxY: 1040},
		cursor:      geometry.Point{X: 500, Y: 500},
		cursorKnown: true,
		window:      &fakeWindow{events: events},
	}
}

func (p *fakePlatform) WorkArea() geometry.Rect { return p.area }

func (p *fakePlatform) CursorPosition() (geometry.Point, bool) { return p.cursor, p.cursorKnown }

func (p *fakePlatform) CreateWindow(opts WindowOptions) (Window, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}
	p.created++
	p.window.opts = opts
	return p.window, nil
}

func (p *fakePlatform) Launch(path string) error {
	p.launched = append(p.launched, path)
	return p.launchErr
}

func (p *fakePlatform) ShowError(title, message string) {
	p.dialogs = append(p.dialogs, message)
}
