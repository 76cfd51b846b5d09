package app

// Command is a single keystroke worth of user intent, polled once per frame.
type Command int

const (
	// CommandNone means no key of interest was pressed.
	CommandNone Command = iota
	// CommandReset clears and reseeds the grid.
	CommandReset
	// CommandColorForward selects the next color in the list.
	CommandColorForward
	// CommandColorBackward selects the previous color in the list.
	CommandColorBackward
	// CommandQuit ends the run.
	CommandQuit
)

// CommandForKey maps a typed character to its Command. Enter and Escape are
// expected as '\n'/'\r' and 0x1b.
func CommandForKey(r rune) Command {
	switch r {
	case 'c':
		return CommandReset
	case 'f':
		return CommandColorForward
	case 'F':
		return CommandColorBackward
	case 'q', '\n', '\r', 0x1b:
		return CommandQuit
	}
	return CommandNone
}

// Action names the lifecycle branch a frame took.
type Action int

const (
	// ActionNone means the frame only stepped the simulation.
	ActionNone Action = iota
	// ActionResize means the buffers were resized and reseeded.
	ActionResize
	// ActionReset means the grid was reseeded, by command or by the tick limit.
	ActionReset
	// ActionQuit means the loop should stop.
	ActionQuit
	// ActionColor means the selected color changed.
	ActionColor
)

func (a Action) String() string {
	switch a {
	case ActionResize:
		return "resize"
	case ActionReset:
		return "reset"
	case ActionQuit:
		return "quit"
	case ActionColor:
		return "color"
	}
	return "none"
}

// Display draws the active generation and owns the color used for live cells.
type Display interface {
	// Size reports the current drawing surface dimensions in cells.
	Size() (w, h int)
	// SelectColor switches live cells to the given palette index.
	SelectColor(color int)
	// Draw renders a row-major w*h grid of 0/1 cells.
	Draw(cells []uint8, w, h int)
}

// Input yields at most one command per call without blocking.
type Input interface {
	Poll() Command
}
