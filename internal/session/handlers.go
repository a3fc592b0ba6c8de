package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"keypad-calc/internal/handlers"
	"keypad-calc/internal/observability"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("session")

// Handler serves the session endpoints from a Store.
type Handler struct {
	store *Store
}

// NewHandler returns a Handler backed by store.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// statusFor maps store errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrCapacity):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// start opens the request span shared by every session handler.
func start(r *http.Request, opName string) (*http.Request, trace.Span, *zap.Logger) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("session.%s", opName),
		trace.WithAttributes(
			attribute.String("request.id", observability.RequestIDFromContext(ctx)),
		),
	)
	if id := chi.URLParam(r, "id"); id != "" {
		span.SetAttributes(attribute.String("session.id", id))
	}

	return r.WithContext(ctx), span, logger
}

// Create handles POST /sessions
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	r, span, logger := start(r, "create")
	defer span.End()
	ctx := r.Context()

	sess, err := h.store.Create(ctx)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "create", err.Error(), err, statusFor(err), w)
		return
	}

	span.SetAttributes(attribute.String("session.id", sess.ID))
	span.SetStatus(codes.Ok, "")

	logger.Info("session created",
		zap.String("session_id", sess.ID),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	handlers.WriteJSON(w, http.StatusCreated, sess)
}

// Get handles GET /sessions/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	r, span, logger := start(r, "get")
	defer span.End()
	ctx := r.Context()

	sess, err := h.store.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "get", err.Error(), err, statusFor(err), w)
		return
	}

	span.SetStatus(codes.Ok, "")
	handlers.WriteJSON(w, http.StatusOK, sess)
}

// Press handles POST /sessions/{id}/press
func (h *Handler) Press(w http.ResponseWriter, r *http.Request) {
	r, span, logger := start(r, "press")
	defer span.End()
	ctx := r.Context()

	var req PressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "press", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if req.Key == "" {
		err := errors.New("key is required")
		observability.RecordError(ctx, span, logger, errorCounter, "press", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	sess, err := h.store.Press(ctx, chi.URLParam(r, "id"), req.Key)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "press", err.Error(), err, statusFor(err), w)
		return
	}

	span.SetStatus(codes.Ok, "")
	handlers.WriteJSON(w, http.StatusOK, sess)
}

// Clear handles POST /sessions/{id}/clear
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	r, span, logger := start(r, "clear")
	defer span.End()
	ctx := r.Context()

	sess, err := h.store.Reset(ctx, chi.URLParam(r, "id"))
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "clear", err.Error(), err, statusFor(err), w)
		return
	}

	span.SetStatus(codes.Ok, "")
	handlers.WriteJSON(w, http.StatusOK, sess)
}

// Delete handles DELETE /sessions/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	r, span, logger := start(r, "delete")
	defer span.End()
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if err := h.store.Delete(ctx, id); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "delete", err.Error(), err, statusFor(err), w)
		return
	}

	span.SetStatus(codes.Ok, "")

	logger.Info("session deleted",
		zap.String("session_id", id),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	w.WriteHeader(http.StatusNoContent)
}
