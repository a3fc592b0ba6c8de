package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"keypad-calc/internal/handlers"
	"keypad-calc/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var errMissingKey = errors.New("key is required")

// startState resolves the state a request starts from.
func startState(s *State) (State, error) {
	if s == nil {
		return Initial(), nil
	}
	if err := s.Validate(); err != nil {
		return State{}, err
	}
	return *s, nil
}

// ---------------------------------------------------------------------------
// Handlers: single key
// ---------------------------------------------------------------------------

// Press handles POST /calculator/press
func Press(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.press",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req PressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "press", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if req.Key == "" {
		observability.RecordError(ctx, span, logger, errorCounter, "press", errMissingKey.Error(), errMissingKey, http.StatusBadRequest, w)
		return
	}

	start, err := startState(req.State)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "press", "invalid state", err, http.StatusBadRequest, w)
		return
	}

	key := ParseKey(req.Key)
	next := Apply(ctx, start, req.Key)

	span.SetAttributes(attribute.String("calculator.key.kind", key.Kind()))
	span.SetStatus(codes.Ok, "")

	handlers.WriteJSON(w, http.StatusOK, PressResponse{
		Key:   key.Label(),
		Kind:  key.Kind(),
		State: next,
	})
}

// ---------------------------------------------------------------------------
// Handler: key sequences (one child span per key)
// ---------------------------------------------------------------------------

// Sequence handles POST /calculator/sequence. It replays a list of keys on a
// starting state and reports the display after every key.
func Sequence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.sequence",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "sequence", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(req.Keys) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "sequence", "no keys provided", fmt.Errorf("keys array is empty"), http.StatusBadRequest, w)
		return
	}

	for i, label := range req.Keys {
		if label == "" {
			observability.RecordError(ctx, span, logger, errorCounter, "sequence", errMissingKey.Error(), fmt.Errorf("empty key at index %d", i), http.StatusBadRequest, w)
			return
		}
	}

	state, err := startState(req.State)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "sequence", "invalid state", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.Int("sequence.keys_count", len(req.Keys)))
	sequenceLength.Record(ctx, int64(len(req.Keys)))

	steps := make([]SequenceStep, 0, len(req.Keys))
	for i, label := range req.Keys {
		key := ParseKey(label)
		state = Apply(ctx, state, label)

		steps = append(steps, SequenceStep{
			Index:      i,
			Key:        key.Label(),
			Kind:       key.Kind(),
			Display:    state.Display,
			Expression: state.Expression,
		})
	}

	span.AddEvent("sequence.complete", trace.WithAttributes(
		attribute.String("display", state.Display),
		attribute.Int("total_keys", len(req.Keys)),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("key sequence applied",
		zap.Int("keys", len(req.Keys)),
		zap.String("display", state.Display),
		zap.String("expression", state.Expression),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, SequenceResponse{
		Steps: steps,
		State: state,
	})
}

// ---------------------------------------------------------------------------
// Handler: keypad layout
// ---------------------------------------------------------------------------

// Layout handles GET /calculator/keypad
func Layout(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, KeypadResponse{Rows: Keypad()})
}
