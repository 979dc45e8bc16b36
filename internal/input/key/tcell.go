package key

import "github.com/gdamore/tcell/v2"

// FromTcell converts a tcell key event into an Event.
// Unrecognized keys map to KeyNone.
func FromTcell(ev *tcell.EventKey) Event {
	var mods Modifier
	tm := ev.Modifiers()
	if tm&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if tm&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}
	if tm&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return Event{Key: KeyEscape, Mods: mods}
	case tcell.KeyEnter:
		return Event{Key: KeyEnter, Mods: mods}
	case tcell.KeyTab:
		return Event{Key: KeyTab, Mods: mods}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Key: KeyBackspace, Mods: mods}
	case tcell.KeyDelete:
		return Event{Key: KeyDelete, Mods: mods}
	case tcell.KeyHome:
		return Event{Key: KeyHome, Mods: mods}
	case tcell.KeyEnd:
		return Event{Key: KeyEnd, Mods: mods}
	case tcell.KeyPgUp:
		return Event{Key: KeyPageUp, Mods: mods}
	case tcell.KeyPgDn:
		return Event{Key: KeyPageDown, Mods: mods}
	case tcell.KeyUp:
		return Event{Key: KeyUp, Mods: mods}
	case tcell.KeyDown:
		return Event{Key: KeyDown, Mods: mods}
	case tcell.KeyLeft:
		return Event{Key: KeyLeft, Mods: mods}
	case tcell.KeyRight:
		return Event{Key: KeyRight, Mods: mods}
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return Event{Key: KeySpace, Mods: mods}
		}
		// Shift is already baked into the rune for printable keys.
		mods &^= ModShift
		return Event{Key: KeyRune, Rune: r, Mods: mods}
	}

	// Ctrl+letter arrives as a dedicated tcell key code.
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		r := rune('a' + (ev.Key() - tcell.KeyCtrlA))
		return Event{Key: KeyRune, Rune: r, Mods: mods.With(ModCtrl)}
	}

	return Event{Key: KeyNone, Mods: mods}
}
