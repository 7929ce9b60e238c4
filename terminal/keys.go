package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"snake-classic/game"
)

// CommandFor maps a key press to a game command.
func CommandFor(key tcell.Key, r rune) (game.Command, bool) {
	switch key {
	case tcell.KeyUp:
		return game.CommandUp, true
	case tcell.KeyDown:
		return game.CommandDown, true
	case tcell.KeyLeft:
		return game.CommandLeft, true
	case tcell.KeyRight:
		return game.CommandRight, true
	case tcell.KeyEnter:
		return game.CommandConfirm, true
	case tcell.KeyRune:
		switch unicode.ToLower(r) {
		case 'w':
			return game.CommandUp, true
		case 's':
			return game.CommandDown, true
		case 'a':
			return game.CommandLeft, true
		case 'd':
			return game.CommandRight, true
		case 'p', ' ':
			return game.CommandPause, true
		}
	}
	return game.CommandNone, false
}

// IsQuit reports whether the key ends the program.
func IsQuit(key tcell.Key, r rune) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC ||
		(key == tcell.KeyRune && unicode.ToLower(r) == 'q')
}
