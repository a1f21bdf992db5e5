package platform

import (
	"fyne.io/fyne/v2"

	"github.com/desktools/appdrawer/internal/launcher"
)

// eventRecorder keeps the first actionable event of a window and stops the
// loop through quit. Until something is recorded the window reads as closed.
type eventRecorder struct {
	event    launcher.Event
	recorded bool
	focused  bool
	quit     func()
}

func newEventRecorder(quit func()) *eventRecorder {
	return &eventRecorder{
		event: launcher.Event{Kind: launcher.EventClose},
		quit:  quit,
	}
}

func (r *eventRecorder) record(ev launcher.Event) {
	if r.recorded {
		return
	}
	r.recorded = true
	r.event = ev
	if r.quit != nil {
		r.quit()
	}
}

func (r *eventRecorder) key(ev *fyne.KeyEvent) {
	r.record(launcher.Event{Kind: launcher.EventKeyDown, Key: string(ev.Name)})
}

func (r *eventRecorder) press(x int) {
	r.record(launcher.Event{Kind: launcher.EventMouseDown, X: x})
}

func (r *eventRecorder) closed() {
	r.record(launcher.Event{Kind: launcher.EventClose})
}

func (r *eventRecorder) focusGained() {
	r.focused = true
}

// focusLost only counts a switch away after the row was focused
func (r *eventRecorder) focusLost() {
	if r.focused {
		r.record(launcher.Event{Kind: launcher.EventFocusLost})
	}
}

// take hands out the recorded event once; later calls read as closed
func (r *eventRecorder) take() launcher.Event {
	ev := r.event
	r.event = launcher.Event{Kind: launcher.EventClose}
	return ev
}
