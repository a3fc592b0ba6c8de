package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"keypad-calc/internal/calculator"
	"keypad-calc/internal/observability"

	"go.uber.org/zap"
)

// keySource yields key labels until it returns io.EOF.
type keySource interface {
	Next() (string, error)
}

type sliceSource struct {
	labels []string
}

func newSliceSource(labels []string) *sliceSource {
	return &sliceSource{labels: labels}
}

func (s *sliceSource) Next() (string, error) {
	if len(s.labels) == 0 {
		return "", io.EOF
	}
	label := s.labels[0]
	s.labels = s.labels[1:]
	return label, nil
}

// lineSource reads one label per line; blank lines are skipped.
type lineSource struct {
	scanner *bufio.Scanner
}

func newLineSource(r io.Reader) *lineSource {
	return &lineSource{scanner: bufio.NewScanner(r)}
}

func (s *lineSource) Next() (string, error) {
	for s.scanner.Scan() {
		if label := strings.TrimSpace(s.scanner.Text()); label != "" {
			return label, nil
		}
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// run feeds every label from src through the engine and renders the
// expression after each one. It returns the final state.
func run(s calculator.State, src keySource, w io.Writer, verbose bool) (calculator.State, error) {
	for {
		label, err := src.Next()
		if err == io.EOF {
			return s, nil
		}
		if err != nil {
			return s, err
		}

		key := calculator.ParseKey(label)
		s = calculator.Handle(s, key)

		observability.Logger.Debug("key",
			zap.String("label", label),
			zap.String("kind", key.Kind()),
			zap.String("display", s.Display),
		)

		render(w, s, verbose)
	}
}

func render(w io.Writer, s calculator.State, verbose bool) {
	if !verbose {
		fmt.Fprintln(w, s.Expression)
		return
	}

	pending := "-"
	if s.HasPending() {
		pending = fmt.Sprintf("%g %s", *s.PreviousValue, *s.Operation)
	}
	fmt.Fprintf(w, "%-20s display=%s pending=%s\n", s.Expression, s.Display, pending)
}
