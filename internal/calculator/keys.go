package calculator

import "strconv"

// Operator is a binary operator symbol as it appears on the keypad.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "×"
	OpDivide   Operator = "/"
)

// Special key labels.
const (
	LabelClear     = "AC"
	LabelEquals    = "="
	LabelDecimal   = "."
	LabelBackspace = "⌫"
)

// Key is a classified keypad press.
type Key interface {
	// Label is the text printed on the key.
	Label() string
	// Kind names the key class, used for logging and metric attributes.
	Kind() string
}

// Digit is a numeric key. Text is the canonical form of the number.
type Digit struct {
	Text string
}

// Clear resets the calculator.
type Clear struct{}

// Equals evaluates the pending operation.
type Equals struct{}

// Decimal inserts a decimal point.
type Decimal struct{}

// Backspace deletes the last entered character.
type Backspace struct{}

// OperatorKey selects a binary operation.
type OperatorKey struct {
	Op Operator
}

func (d Digit) Label() string       { return d.Text }
func (Clear) Label() string         { return LabelClear }
func (Equals) Label() string        { return LabelEquals }
func (Decimal) Label() string       { return LabelDecimal }
func (Backspace) Label() string     { return LabelBackspace }
func (k OperatorKey) Label() string { return string(k.Op) }

func (Digit) Kind() string       { return "digit" }
func (Clear) Kind() string       { return "clear" }
func (Equals) Kind() string      { return "equals" }
func (Decimal) Kind() string     { return "decimal" }
func (Backspace) Kind() string   { return "backspace" }
func (OperatorKey) Kind() string { return "operator" }

// ParseKey classifies a key label. Any label that parses as a finite number
// is a digit; labels that are neither numbers nor one of the special keys are
// treated as operators.
func ParseKey(label string) Key {
	if v, err := strconv.ParseFloat(label, 64); err == nil && isFinite(v) {
		return Digit{Text: formatNumber(v)}
	}

	switch label {
	case LabelClear:
		return Clear{}
	case LabelEquals:
		return Equals{}
	case LabelDecimal:
		return Decimal{}
	case LabelBackspace:
		return Backspace{}
	}

	return OperatorKey{Op: Operator(label)}
}

var keypad = [][]string{
	{LabelClear, string(OpDivide), string(OpMultiply), LabelBackspace},
	{"7", "8", "9", string(OpSubtract)},
	{"4", "5", "6", string(OpAdd)},
	{"1", "2", "3", LabelDecimal},
	{"0", LabelEquals},
}

// Keypad returns the key labels row by row, top to bottom.
func Keypad() [][]string {
	rows := make([][]string, len(keypad))
	for i, row := range keypad {
		rows[i] = append([]string(nil), row...)
	}
	return rows
}

// KeypadLabels returns every keypad label in row order.
func KeypadLabels() []string {
	var labels []string
	for _, row := range keypad {
		labels = append(labels, row...)
	}
	return labels
}
