package calculator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorDisplay is the display text used when a computation is undefined.
const ErrorDisplay = "Error"

// ErrInvalidState is returned by State.Validate for states that could not
// have been produced by the engine.
var ErrInvalidState = errors.New("invalid calculator state")

// State is the complete calculator state. It is treated as an immutable value:
// every key press produces a new State.
type State struct {
	Display           string    `json:"display"`
	Expression        string    `json:"expression"`
	PreviousValue     *float64  `json:"previous_value,omitempty"`
	Operation         *Operator `json:"operation,omitempty"`
	WaitingForOperand bool      `json:"waiting_for_operand"`
}

// Initial returns the state shown at start-up and after AC.
func Initial() State {
	return State{Display: "0", Expression: "0"}
}

// IsError reports whether the display holds the error sentinel.
func (s State) IsError() bool {
	return s.Display == ErrorDisplay
}

// HasPending reports whether a binary operation is awaiting its second operand.
func (s State) HasPending() bool {
	return s.PreviousValue != nil && s.Operation != nil
}

// Validate checks a state received from outside the process.
func (s State) Validate() error {
	if s.Display == "" {
		return fmt.Errorf("%w: empty display", ErrInvalidState)
	}
	if s.Expression == "" {
		return fmt.Errorf("%w: empty expression", ErrInvalidState)
	}
	if s.IsError() {
		return nil
	}
	if strings.Count(s.Display, ".") > 1 {
		return fmt.Errorf("%w: display %q has more than one decimal point", ErrInvalidState, s.Display)
	}
	if _, ok := parseOperand(s.Display); !ok {
		return fmt.Errorf("%w: display %q is not a number", ErrInvalidState, s.Display)
	}
	if s.PreviousValue != nil && !isFinite(*s.PreviousValue) {
		return fmt.Errorf("%w: previous value is not finite", ErrInvalidState)
	}
	return nil
}

func withPrevious(v float64) *float64 {
	return &v
}

func withOperation(op Operator) *Operator {
	return &op
}
