package domain

import "fmt"

// State is the single view state of a reservation flow.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSubmitted
	StateSelectingMenu
	StateConfirmed
)

var stateNames = map[State]string{
	StateEditing:       "editing",
	StateSubmitting:    "submitting",
	StateSubmitted:     "submitted",
	StateSelectingMenu: "selecting_menu",
	StateConfirmed:     "confirmed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// FormLocked reports whether draft fields reject edits in this state.
func (s State) FormLocked() bool {
	return s == StateSubmitting
}
