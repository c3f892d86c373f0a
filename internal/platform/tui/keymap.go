package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-artillery/internal/config"
	"github.com/vovakirdan/tui-artillery/internal/core"
)

// mouseButtons maps configuration names to Bubble Tea mouse buttons.
var mouseButtons = map[string]tea.MouseButton{
	"left":       tea.MouseButtonLeft,
	"middle":     tea.MouseButtonMiddle,
	"right":      tea.MouseButtonRight,
	"wheel_up":   tea.MouseButtonWheelUp,
	"wheel_down": tea.MouseButtonWheelDown,
	"backward":   tea.MouseButtonBackward,
	"forward":    tea.MouseButtonForward,
}

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// Bindings come from the configuration. It also serves as the help.KeyMap
// for the help line.
type KeyMapper struct {
	SpeedUp   key.Binding
	SpeedDown key.Binding
	AimLeft   key.Binding
	AimRight  key.Binding
	Fire      key.Binding
	Restart   key.Binding
	Quit      key.Binding

	mouse map[tea.MouseButton]core.Action
}

// NewKeyMapper creates a key mapper from configured bindings.
func NewKeyMapper(kb config.KeyBindings) *KeyMapper {
	km := &KeyMapper{
		SpeedUp:   newBinding(kb.SpeedUp, "speed +"),
		SpeedDown: newBinding(kb.SpeedDown, "speed -"),
		AimLeft:   newBinding(kb.AimLeft, "aim left"),
		AimRight:  newBinding(kb.AimRight, "aim right"),
		Fire:      newBinding(kb.Fire, "fire"),
		Restart:   newBinding(kb.Restart, "restart"),
		Quit:      newBinding(kb.Quit, "quit"),
		mouse:     make(map[tea.MouseButton]core.Action),
	}

	// Earlier actions win when a button is bound twice
	for _, a := range []struct {
		binding config.Binding
		action  core.Action
	}{
		{kb.Fire, core.ActionFire},
		{kb.SpeedUp, core.ActionSpeedUp},
		{kb.SpeedDown, core.ActionSpeedDown},
		{kb.AimLeft, core.ActionAimLeft},
		{kb.AimRight, core.ActionAimRight},
		{kb.Restart, core.ActionRestart},
	} {
		for _, name := range a.binding.Mouse {
			btn, ok := mouseButtons[name]
			if !ok {
				continue
			}
			if _, taken := km.mouse[btn]; !taken {
				km.mouse[btn] = a.action
			}
		}
	}
	return km
}

func newBinding(b config.Binding, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(describe(b), desc),
	)
}

// describe returns the short help label for a binding, e.g. "space/left click".
func describe(b config.Binding) string {
	names := make([]string, 0, len(b.Keys)+len(b.Mouse))
	for _, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		names = append(names, k)
	}
	for _, m := range b.Mouse {
		names = append(names, strings.ReplaceAll(m, "_", " ")+" click")
	}
	return strings.Join(names, "/")
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.Fire):
		return core.ActionFire, false
	case key.Matches(msg, km.SpeedUp):
		return core.ActionSpeedUp, false
	case key.Matches(msg, km.SpeedDown):
		return core.ActionSpeedDown, false
	case key.Matches(msg, km.AimLeft):
		return core.ActionAimLeft, false
	case key.Matches(msg, km.AimRight):
		return core.ActionAimRight, false
	case key.Matches(msg, km.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapMouse translates a mouse message to an action. Only button presses
// and wheel events count.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action != tea.MouseActionPress {
		return core.ActionNone
	}
	if a, ok := km.mouse[msg.Button]; ok {
		return a
	}
	return core.ActionNone
}

// ShortHelp implements help.KeyMap.
func (km *KeyMapper) ShortHelp() []key.Binding {
	return []key.Binding{km.Fire, km.AimLeft, km.AimRight, km.SpeedUp, km.SpeedDown, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km *KeyMapper) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.AimLeft, km.AimRight},
		{km.SpeedUp, km.SpeedDown},
		{km.Fire, km.Restart, km.Quit},
	}
}

func defaultBindings() config.KeyBindings {
	return config.DefaultConfig().Keys
}
