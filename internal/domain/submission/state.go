package submission

import festfusion_errors "festfusion/pkg/errors"

// State is the draft lifecycle position. Transitions are explicit; handlers
// never mutate state directly.
type State string

const (
	StateEmpty      State = "EMPTY"
	StateUploaded   State = "UPLOADED"
	StateSummarized State = "SUMMARIZED"
	StateEdited     State = "EDITED"
	StateSaved      State = "SAVED"
)

// transitions lists the legal next states. Edited may be re-entered while the
// contributor keeps revising; Saved is terminal.
var transitions = map[State][]State{
	StateEmpty:      {StateUploaded},
	StateUploaded:   {StateSummarized},
	StateSummarized: {StateEdited, StateSaved},
	StateEdited:     {StateEdited, StateSaved},
	StateSaved:      {},
}

func (s State) CanTransition(to State) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves the draft to the requested state or fails without
// mutating it.
func (d *Draft) Transition(to State) error {
	if !d.State.CanTransition(to) {
		return festfusion_errors.ErrInvalidTransition
	}
	d.State = to
	return nil
}
