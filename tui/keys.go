package tui

import (
	"github.com/gdamore/tcell/v2"
)

// Action is a controller command bound to a key
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionPause
	ActionReset
	ActionDecreaseAB
	ActionIncreaseAB
	ActionDecreaseBA
	ActionIncreaseBA
	ActionDecreasePopA
	ActionIncreasePopA
	ActionDecreasePopB
	ActionIncreasePopB
	ActionToggleMetrics
	ActionQuit
)

// Adjustment steps
const (
	PercentStep    = 1.0
	PopulationStep = 10
)

// Binding maps one key to an action
type Binding struct {
	Key    tcell.Key
	Rune   rune // Only for tcell.KeyRune
	Action Action
}

// Bindings is the complete key map
var Bindings = []Binding{
	{Key: tcell.KeyRune, Rune: 's', Action: ActionStart},
	{Key: tcell.KeyRune, Rune: ' ', Action: ActionStart},
	{Key: tcell.KeyRune, Rune: 'p', Action: ActionPause},
	{Key: tcell.KeyRune, Rune: 'r', Action: ActionReset},
	{Key: tcell.KeyRune, Rune: 'a', Action: ActionDecreaseAB},
	{Key: tcell.KeyRune, Rune: 'A', Action: ActionIncreaseAB},
	{Key: tcell.KeyRune, Rune: 'b', Action: ActionDecreaseBA},
	{Key: tcell.KeyRune, Rune: 'B', Action: ActionIncreaseBA},
	{Key: tcell.KeyRune, Rune: '[', Action: ActionDecreasePopA},
	{Key: tcell.KeyRune, Rune: ']', Action: ActionIncreasePopA},
	{Key: tcell.KeyRune, Rune: '{', Action: ActionDecreasePopB},
	{Key: tcell.KeyRune, Rune: '}', Action: ActionIncreasePopB},
	{Key: tcell.KeyRune, Rune: 'd', Action: ActionToggleMetrics},
	{Key: tcell.KeyRune, Rune: 'q', Action: ActionQuit},
	{Key: tcell.KeyEscape, Action: ActionQuit},
	{Key: tcell.KeyCtrlC, Action: ActionQuit},
}

// Lookup returns the action bound to a key press
func Lookup(key tcell.Key, r rune) Action {
	for _, b := range Bindings {
		if b.Key != key {
			continue
		}
		if key == tcell.KeyRune && b.Rune != r {
			continue
		}
		return b.Action
	}
	return ActionNone
}
