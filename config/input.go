package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	// ActionPrimary jumps or flips while running and starts a run otherwise
	ActionPrimary
	ActionStart
	ActionQuit
	ActionMute
	ActionCount // Must be last - used for array sizing
)
