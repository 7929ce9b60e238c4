package game

import (
	"snake-classic/game/types"
)

// Command is an abstract player input, independent of any key encoding.
type Command int

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandPause
	CommandConfirm
)

// Direction returns the heading for a directional command, NONE otherwise.
func (cmd Command) Direction() types.Direction {
	switch cmd {
	case CommandUp:
		return types.UP
	case CommandDown:
		return types.DOWN
	case CommandLeft:
		return types.LEFT
	case CommandRight:
		return types.RIGHT
	default:
		return types.NONE
	}
}

func (cmd Command) String() string {
	switch cmd {
	case CommandPause:
		return "pause"
	case CommandConfirm:
		return "confirm"
	case CommandNone:
		return "none"
	default:
		return cmd.Direction().String()
	}
}

// InputMapper routes commands to the controller according to its state.
//
// On the welcome and game over screens only Confirm does anything. While
// paused only Pause does anything, and it resumes.
type InputMapper struct {
	ctrl *Controller
}

func NewInputMapper(ctrl *Controller) *InputMapper {
	return &InputMapper{ctrl: ctrl}
}

func (m *InputMapper) Handle(cmd Command) {
	switch m.ctrl.State() {
	case NotStarted, Over:
		if cmd == CommandConfirm {
			m.ctrl.Start()
		}
	case Paused:
		if cmd == CommandPause {
			m.ctrl.TogglePause()
		}
	case Running:
		switch cmd {
		case CommandPause:
			m.ctrl.TogglePause()
		case CommandUp, CommandDown, CommandLeft, CommandRight:
			d := cmd.Direction().ToPoint()
			m.ctrl.HandleDirection(d.X, d.Y)
		}
	}
}

// HandleAll feeds a batch of commands in order.
func (m *InputMapper) HandleAll(cmds []Command) {
	for _, cmd := range cmds {
		m.Handle(cmd)
	}
}
