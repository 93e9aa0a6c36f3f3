package key

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// FromTcell converts a tcell key event to an Event.
// Control characters reported as tcell.KeyCtrlA..KeyCtrlZ become rune
// events with ModCtrl, except those tcell aliases to Backspace, Tab,
// Enter and Escape.
func FromTcell(ev *tcell.EventKey) Event {
	mods := fromTcellMod(ev.Modifiers())

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if mods.HasCtrl() {
			r = unicode.ToLower(r)
		}
		// Shift is already folded into the rune
		return NewRuneEvent(r, mods&^ModShift)
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return NewSpecialEvent(KeyBackspace, mods)
	case k == tcell.KeyTab:
		return NewSpecialEvent(KeyTab, mods)
	case k == tcell.KeyEnter:
		return NewSpecialEvent(KeyEnter, mods)
	case k == tcell.KeyEscape:
		return NewSpecialEvent(KeyEscape, mods)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		r := rune('a' + (k - tcell.KeyCtrlA))
		return NewRuneEvent(r, mods.With(ModCtrl))
	default:
		if special, ok := tcellKeys[k]; ok {
			return NewSpecialEvent(special, mods)
		}
		return Event{}
	}
}

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyDelete: KeyDelete,
	tcell.KeyInsert: KeyInsert,
	tcell.KeyHome:   KeyHome,
	tcell.KeyEnd:    KeyEnd,
	tcell.KeyPgUp:   KeyPageUp,
	tcell.KeyPgDn:   KeyPageDown,
	tcell.KeyUp:     KeyUp,
	tcell.KeyDown:   KeyDown,
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyF1:     KeyF1,
	tcell.KeyF2:     KeyF2,
	tcell.KeyF3:     KeyF3,
	tcell.KeyF4:     KeyF4,
	tcell.KeyF5:     KeyF5,
	tcell.KeyF6:     KeyF6,
	tcell.KeyF7:     KeyF7,
	tcell.KeyF8:     KeyF8,
	tcell.KeyF9:     KeyF9,
	tcell.KeyF10:    KeyF10,
	tcell.KeyF11:    KeyF11,
	tcell.KeyF12:    KeyF12,
}

// fromTcellMod converts a tcell modifier mask to a Modifier.
func fromTcellMod(m tcell.ModMask) Modifier {
	var result Modifier
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}
