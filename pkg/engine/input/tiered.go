package input

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceMouse
	DeviceKeyboard
	DeviceTerminal
)

// EventKind is the pointer-level interaction a cell receives.
type EventKind int

const (
	EventNone EventKind = iota
	EventClick
	EventEnter
	EventLeave
)

// String returns the name of the event kind
func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventEnter:
		return "enter"
	case EventLeave:
		return "leave"
	default:
		return "none"
	}
}

// Event is a pointer interaction with the grid. Index is the cell the pointer
// refers to and is ignored for EventLeave.
type Event struct {
	Kind      EventKind
	Index     int
	Device    Device
	Timestamp time.Time
}

// Click returns a click event on the given cell
func Click(index int) Event {
	return Event{Kind: EventClick, Index: index, Timestamp: time.Now()}
}

// Enter returns a pointer-enter event on the given cell
func Enter(index int) Event {
	return Event{Kind: EventEnter, Index: index, Timestamp: time.Now()}
}

// Leave returns a pointer-leave event
func Leave() Event {
	return Event{Kind: EventLeave, Index: -1, Timestamp: time.Now()}
}

// From returns a copy of the event tagged with its source device
func (e Event) From(device Device) Event {
	e.Device = device
	return e
}

// String returns a short description such as "click(4)" or "leave()"
func (e Event) String() string {
	if e.Kind == EventLeave || e.Kind == EventNone {
		return e.Kind.String() + "()"
	}
	return fmt.Sprintf("%s(%d)", e.Kind, e.Index)
}

// Action represents a high-level keyboard intent, used where no pointer is available.
type Action int

const (
	ActionNone Action = iota

	// Cursor movement
	ActionCursorLeft
	ActionCursorRight
	ActionCursorUp
	ActionCursorDown

	// Marks
	ActionSelect       // click on the cell under the cursor
	ActionClearPreview // pointer leaves the grid

	// Meta / UI
	ActionQuit
	ActionZoomIn
	ActionZoomOut
)

// bindings maps key codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Cursor (arrows, Vim)
	"up":    ActionCursorUp,
	"k":     ActionCursorUp,
	"down":  ActionCursorDown,
	"j":     ActionCursorDown,
	"left":  ActionCursorLeft,
	"h":     ActionCursorLeft,
	"right": ActionCursorRight,
	"l":     ActionCursorRight,

	"enter": ActionSelect,
	" ":     ActionSelect,
	"esc":   ActionClearPreview,

	"q":      ActionQuit,
	"ctrl+c": ActionQuit,

	// Zoom (fixed bindings, not rebindable)
	"=": ActionZoomIn,
	"+": ActionZoomIn,
	"-": ActionZoomOut,
}

// reserved codes cannot be rebound or removed
var reserved = map[string]bool{
	"up":     true,
	"down":   true,
	"left":   true,
	"right":  true,
	"enter":  true,
	"ctrl+c": true,
}

// MapToAction applies the current bindings to a key code.
func MapToAction(code string) Action {
	if act, ok := bindings[code]; ok {
		return act
	}
	return ActionNone
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionCursorLeft:
		return "Cursor Left"
	case ActionCursorRight:
		return "Cursor Right"
	case ActionCursorUp:
		return "Cursor Up"
	case ActionCursorDown:
		return "Cursor Down"
	case ActionSelect:
		return "Select"
	case ActionClearPreview:
		return "Clear Preview"
	case ActionQuit:
		return "Quit"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all non-reserved bindings for the given action with a single code.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}

// ActionByName looks an action up by its ActionName, ignoring case and
// accepting "-" or "_" in place of spaces ("cursor-up", "clear_preview").
func ActionByName(name string) (Action, bool) {
	normalize := func(s string) string {
		s = strings.ToLower(s)
		return strings.NewReplacer(" ", "-", "_", "-").Replace(s)
	}
	want := normalize(name)
	for a := ActionCursorLeft; a <= ActionZoomOut; a++ {
		if normalize(ActionName(a)) == want {
			return a, true
		}
	}
	return ActionNone, false
}
