// Package menu lists and edits the keyboard bindings.
package menu

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	engineinput "tilegrid/pkg/engine/input"
	"tilegrid/pkg/game/renderer"
)

// ErrUnknownAction is returned by Rebind for action names ActionByName does not know
var ErrUnknownAction = errors.New("unknown action")

// ErrFixedBinding is returned by Rebind for actions that cannot be rebound
var ErrFixedBinding = errors.New("binding cannot be changed")

// BindingMenuItem represents a menu item for a key binding.
type BindingMenuItem struct {
	Action        engineinput.Action
	NonRebindable bool
}

// GetLabel returns the display label for this binding menu item.
func (b *BindingMenuItem) GetLabel() string {
	name := engineinput.ActionName(b.Action)
	byAction := engineinput.GetBindingsByAction()
	codes := byAction[b.Action]
	for i, code := range codes {
		if code == " " {
			codes[i] = "space"
		}
	}
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}

	if b.NonRebindable {
		return fmt.Sprintf("%s: %s (fixed)", renderer.StyleText(name, renderer.StyleSubtle), codeText)
	}
	return fmt.Sprintf("%s: %s", name, codeText)
}

// actions lists the bindable actions in display order
var actions = []engineinput.Action{
	engineinput.ActionCursorUp,
	engineinput.ActionCursorDown,
	engineinput.ActionCursorLeft,
	engineinput.ActionCursorRight,
	engineinput.ActionSelect,
	engineinput.ActionClearPreview,
	engineinput.ActionQuit,
	engineinput.ActionZoomIn,
	engineinput.ActionZoomOut,
}

// GetMenuItems returns one item per action
func GetMenuItems() []*BindingMenuItem {
	items := make([]*BindingMenuItem, len(actions))
	for i, action := range actions {
		items[i] = &BindingMenuItem{
			Action:        action,
			NonRebindable: isNonRebindable(action),
		}
	}
	return items
}

// Rebind replaces the bindings of the named action with code
func Rebind(actionName, code string) error {
	action, ok := engineinput.ActionByName(actionName)
	if !ok {
		return errors.Wrapf(ErrUnknownAction, "%q", actionName)
	}
	if isNonRebindable(action) {
		return errors.Wrapf(ErrFixedBinding, "%s", engineinput.ActionName(action))
	}
	engineinput.SetSingleBinding(action, code)
	return nil
}

// isNonRebindable checks if an action cannot be rebound.
func isNonRebindable(action engineinput.Action) bool {
	return action == engineinput.ActionZoomIn ||
		action == engineinput.ActionZoomOut
}
