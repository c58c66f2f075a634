package controls

// Action is a discrete host command, usually bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveDown
	ActionMoveUp
	ActionMoveNear
	ActionMoveFar
	ActionTurnLeft
	ActionTurnRight
	ActionToggleVariant
	ActionToggleAnimation
	ActionReset
	ActionSnapshot
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:            "none",
	ActionMoveLeft:        "move-left",
	ActionMoveRight:       "move-right",
	ActionMoveDown:        "move-down",
	ActionMoveUp:          "move-up",
	ActionMoveNear:        "move-near",
	ActionMoveFar:         "move-far",
	ActionTurnLeft:        "turn-left",
	ActionTurnRight:       "turn-right",
	ActionToggleVariant:   "toggle-variant",
	ActionToggleAnimation: "toggle-animation",
	ActionReset:           "reset",
	ActionSnapshot:        "snapshot",
	ActionQuit:            "quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// nudges maps panel actions to the control and step count they change.
var nudges = map[Action]struct {
	id    ID
	steps int
}{
	ActionMoveLeft:  {PositionX, -1},
	ActionMoveRight: {PositionX, 1},
	ActionMoveDown:  {PositionY, -1},
	ActionMoveUp:    {PositionY, 1},
	ActionMoveNear:  {PositionZ, 1},
	ActionMoveFar:   {PositionZ, -1},
	ActionTurnLeft:  {Turn, -1},
	ActionTurnRight: {Turn, 1},
}

// Apply performs a panel action. It reports whether the action belongs to
// the panel; host actions such as ActionQuit are left to the caller.
func (p *Panel) Apply(a Action) bool {
	if n, ok := nudges[a]; ok {
		p.Nudge(n.id, n.steps)
		return true
	}
	if a == ActionToggleVariant {
		p.Toggle(BodyVariant)
		return true
	}
	return false
}
