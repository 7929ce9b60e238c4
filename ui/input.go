package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-classic/game"
)

var keyBindings = map[int32]game.Command{
	rl.KeyUp:    game.CommandUp,
	rl.KeyW:     game.CommandUp,
	rl.KeyDown:  game.CommandDown,
	rl.KeyS:     game.CommandDown,
	rl.KeyLeft:  game.CommandLeft,
	rl.KeyA:     game.CommandLeft,
	rl.KeyRight: game.CommandRight,
	rl.KeyD:     game.CommandRight,
	rl.KeySpace: game.CommandPause,
	rl.KeyP:     game.CommandPause,
	rl.KeyEnter: game.CommandConfirm,
}

// ReadCommands drains the keys pressed since the last frame, in press order.
func ReadCommands() []game.Command {
	var cmds []game.Command
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if cmd, ok := keyBindings[key]; ok {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
