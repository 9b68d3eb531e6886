package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

var tcellKeyNames = map[tcell.Key]string{
	tcell.KeyUp:        "arrowup",
	tcell.KeyDown:      "arrowdown",
	tcell.KeyLeft:      "arrowleft",
	tcell.KeyRight:     "arrowright",
	tcell.KeyEscape:    "escape",
	tcell.KeyEnter:     "enter",
	tcell.KeyTab:       "tab",
	tcell.KeyBackspace: "backspace",
	tcell.KeyCtrlC:     "ctrl+c",
	tcell.KeyCtrlQ:     "ctrl+q",
}

// KeyName normalizes a tcell key event into a lower-case identifier
// Returns false for keys with no stable name
func KeyName(ev *tcell.EventKey) (string, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return "space", true
		}
		return strings.ToLower(string(r)), true
	}
	name, ok := tcellKeyNames[ev.Key()]
	return name, ok
}
