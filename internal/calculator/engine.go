package calculator

import (
	"errors"
	"regexp"
	"strings"
)

// ErrDivisionByZero is returned by Calculate when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Calculate applies op to a and b. An unknown operator yields b unchanged.
func Calculate(a, b float64, op Operator) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return b, nil
	}
}

// Handle returns the state that follows s when key k is pressed.
// It never modifies s.
func Handle(s State, k Key) State {
	switch k := k.(type) {
	case Digit:
		return inputNumber(s, k.Text)
	case Clear:
		return Initial()
	case Equals:
		return performCalculation(s)
	case Decimal:
		return inputDecimal(s)
	case Backspace:
		return backspace(s)
	case OperatorKey:
		return inputOperation(s, k.Op)
	default:
		return s
	}
}

// HandleLabel classifies label and applies it to s.
func HandleLabel(s State, label string) State {
	return Handle(s, ParseKey(label))
}

// Replay applies labels to s in order and returns the final state.
func Replay(s State, labels ...string) State {
	for _, label := range labels {
		s = HandleLabel(s, label)
	}
	return s
}

// evaluate runs a pending operation against the display value. The result
// is false for division by zero and for results that are not finite.
func evaluate(prev float64, display string, op Operator) (float64, bool) {
	operand, ok := parseOperand(display)
	if !ok {
		return 0, false
	}
	result, err := Calculate(prev, operand, op)
	if err != nil || !isFinite(result) {
		return 0, false
	}
	return result, true
}

func inputNumber(s State, digit string) State {
	if s.IsError() {
		return State{Display: digit, Expression: digit}
	}

	if s.WaitingForOperand {
		s.Display = digit
		s.Expression += digit
		s.WaitingForOperand = false
		return s
	}

	display := digit
	if s.Display != "0" {
		display = s.Display + digit
	}
	if _, ok := parseOperand(display); !ok {
		// Multi-character digits such as "1.5" or "-3" cannot extend every
		// display; they replace the operand being typed instead.
		s.Display = digit
		s.Expression = replaceTrailingNumber(s.Expression, digit)
		return s
	}

	s.Display = display
	if s.Expression == "0" {
		s.Expression = digit
	} else {
		s.Expression += digit
	}
	return s
}

func inputOperation(s State, op Operator) State {
	if s.IsError() {
		return s
	}

	input, ok := parseOperand(s.Display)
	switch {
	case !ok:
		s.Display = ErrorDisplay
		s.PreviousValue = nil
	case s.PreviousValue == nil:
		s.PreviousValue = withPrevious(input)
	case s.Operation != nil:
		result, ok := evaluate(*s.PreviousValue, s.Display, *s.Operation)
		if !ok {
			s.Display = ErrorDisplay
			s.PreviousValue = nil
			break
		}
		s.Display = formatNumber(result)
		s.PreviousValue = withPrevious(result)
	}

	s.WaitingForOperand = true
	if s.IsError() {
		s.Operation = nil
	} else {
		s.Operation = withOperation(op)
	}
	s.Expression += string(op)
	return s
}

func performCalculation(s State) State {
	if !s.HasPending() || s.IsError() {
		return s
	}

	text := ErrorDisplay
	if result, ok := evaluate(*s.PreviousValue, s.Display, *s.Operation); ok {
		text = formatNumber(result)
	}

	return State{
		Display:           text,
		Expression:        text,
		WaitingForOperand: true,
	}
}

func inputDecimal(s State) State {
	if s.WaitingForOperand || s.IsError() {
		if s.Expression == ErrorDisplay {
			s.Expression = "0."
		} else {
			s.Expression += "0."
		}
		s.Display = "0."
		s.WaitingForOperand = false
		return s
	}

	if _, ok := parseOperand(s.Display + "."); ok && !strings.Contains(s.Display, ".") {
		s.Display += "."
		s.Expression += "."
	}
	return s
}

// trailingNumber matches the number at the end of an expression, exponent
// included. A minus sign only belongs to it when it opens the expression, as
// in a negative result carried over from a previous evaluation.
var trailingNumber = regexp.MustCompile(`(^-)?\d+\.?\d*(e[+-]?\d+)?$`)

// danglingExponent matches an exponent marker left without digits.
var danglingExponent = regexp.MustCompile(`e[+-]?$`)

func replaceTrailingNumber(expression, with string) string {
	return trailingNumber.ReplaceAllLiteralString(expression, with)
}

func backspace(s State) State {
	if s.IsError() {
		return Initial()
	}

	if len(s.Display) == 1 {
		s.Display = "0"
		s.Expression = replaceTrailingNumber(s.Expression, "0")
		return s
	}

	display := danglingExponent.ReplaceAllLiteralString(s.Display[:len(s.Display)-1], "")
	if display == "-" {
		display = "0"
	}

	s.Display = display
	if !s.WaitingForOperand {
		s.Expression = replaceTrailingNumber(s.Expression, display)
	}
	return s
}
