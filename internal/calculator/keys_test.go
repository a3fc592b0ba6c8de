package calculator

import (
	"errors"
	"testing"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		label string
		want  Key
	}{
		{label: "0", want: Digit{Text: "0"}},
		{label: "7", want: Digit{Text: "7"}},
		{label: "42", want: Digit{Text: "42"}},
		{label: "1e3", want: Digit{Text: "1000"}},
		{label: "AC", want: Clear{}},
		{label: "=", want: Equals{}},
		{label: ".", want: Decimal{}},
		{label: "⌫", want: Backspace{}},
		{label: "+", want: OperatorKey{Op: OpAdd}},
		{label: "-", want: OperatorKey{Op: OpSubtract}},
		{label: "×", want: OperatorKey{Op: OpMultiply}},
		{label: "/", want: OperatorKey{Op: OpDivide}},
		{label: "NaN", want: OperatorKey{Op: Operator("NaN")}},
		{label: "Inf", want: OperatorKey{Op: Operator("Inf")}},
	}

	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			got := ParseKey(tc.label)
			if got != tc.want {
				t.Fatalf("expected %#v, got %#v", tc.want, got)
			}
		})
	}
}

func TestParseKeyCoversKeypad(t *testing.T) {
	for _, label := range KeypadLabels() {
		k := ParseKey(label)
		if k.Label() != label {
			t.Fatalf("label %q: round trip produced %q", label, k.Label())
		}
	}
}

func TestKeypadLayout(t *testing.T) {
	want := []string{"AC", "/", "×", "⌫", "7", "8", "9", "-", "4", "5", "6", "+", "1", "2", "3", ".", "0", "="}
	got := KeypadLabels()
	if len(got) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("label %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	rows := Keypad()
	rows[0][0] = "changed"
	if Keypad()[0][0] != LabelClear {
		t.Fatal("expected Keypad to return a copy")
	}
}

func TestUnknownOperatorBecomesPending(t *testing.T) {
	s := press("6", "%", "2", "=")
	if s.Display != "2" {
		t.Fatalf("expected unknown operator to yield the second operand, got %q", s.Display)
	}
}

func TestValidate(t *testing.T) {
	valid := []State{
		Initial(),
		press("1", ".", "5", "+"),
		press("9", "/", "0", "="),
		{Display: "0.", Expression: "0."},
	}
	for _, s := range valid {
		if err := s.Validate(); err != nil {
			t.Fatalf("expected %+v to be valid, got %v", s, err)
		}
	}

	invalid := []State{
		{},
		{Display: "0"},
		{Display: "1.2.3", Expression: "1.2.3"},
		{Display: "abc", Expression: "abc"},
	}
	for _, s := range invalid {
		err := s.Validate()
		if !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState for %+v, got %v", s, err)
		}
	}
}
