package launcher

import "fmt"

// EventKind identifies the source of an Event
type EventKind int

const (
	EventNone EventKind = iota
	EventMouseDown
	EventKeyDown
	EventClose
	EventFocusLost
)

func (k EventKind) String() string {
	switch k {
	case EventMouseDown:
		return "mouse_down"
	case EventKeyDown:
		return "key_down"
	case EventClose:
		return "close"
	case EventFocusLost:
		return "focus_lost"
	default:
		return "none"
	}
}

// Event is one input or window event. X is the horizontal pixel of a mouse
// press inside the window; Key is the key name of a key press ("0".."9" for
// the main row, "KP0".."KP9" for the keypad).
type Event struct {
	Kind EventKind
	X    int
	Key  string
}

// State is where a Dispatcher is in its single pass
type State int

const (
	StateAwaitingInput State = iota
	StateDispatching
)

// OutcomeKind is what the launcher does once input is settled
type OutcomeKind int

const (
	OutcomeLaunch OutcomeKind = iota
	OutcomeInvalid
	OutcomeCancel
	OutcomeClosed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeLaunch:
		return "launch"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeCancel:
		return "cancel"
	case OutcomeClosed:
		return "closed"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is what the launcher commits to after the first actionable event
type Outcome struct {
	Kind  OutcomeKind
	Index int
}

// Dispatcher turns the first actionable event into an Outcome. Once it has
// committed it ignores everything else.
type Dispatcher struct {
	iconSize int
	count    int
	state    State
}

// NewDispatcher creates a dispatcher for count icons of iconSize pixels
func NewDispatcher(iconSize, count int) *Dispatcher {
	return &Dispatcher{iconSize: iconSize, count: count}
}

func (d *Dispatcher) State() State {
	return d.state
}

// Dispatch handles ev and reports whether the dispatcher committed to an outcome
func (d *Dispatcher) Dispatch(ev Event) (Outcome, bool) {
	if d.state != StateAwaitingInput {
		return Outcome{}, false
	}

	var out Outcome
	switch ev.Kind {
	case EventMouseDown:
		out = d.selection(ClickIndex(ev.X, d.iconSize))
	case EventKeyDown:
		idx, ok := KeyIndex(ev.Key)
		if !ok {
			out = Outcome{Kind: OutcomeCancel, Index: -1}
		} else {
			out = d.selection(idx)
		}
	case EventClose, EventFocusLost:
		out = Outcome{Kind: OutcomeClosed, Index: -1}
	default:
		return Outcome{}, false
	}

	d.state = StateDispatching
	return out, true
}

func (d *Dispatcher) selection(idx int) Outcome {
	if idx < 0 || idx >= d.count {
		return Outcome{Kind: OutcomeInvalid, Index: idx}
	}
	return Outcome{Kind: OutcomeLaunch, Index: idx}
}

// ClickIndex maps a horizontal pixel to an icon slot: floor((x+1)/iconSize)
func ClickIndex(x, iconSize int) int {
	if iconSize <= 0 {
		return -1
	}
	n := x + 1
	if n < 0 {
		return (n - iconSize + 1) / iconSize
	}
	return n / iconSize
}

// KeyIndex maps digit keys to slots: "1" is the first icon, "0" the tenth
func KeyIndex(key string) (int, bool) {
	if len(key) == 3 && key[:2] == "KP" {
		key = key[2:]
	}
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return 0, false
	}
	if key[0] == '0' {
		return 9, true
	}
	return int(key[0]-'1'), true
}
