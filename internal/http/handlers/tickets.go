package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"eventix/backend/internal/repository"
)

type recordTransactionRequest struct {
	Event    string `json:"event"`
	NTickets int    `json:"nTickets"`
}

// RecordTransaction handles POST /api/tickets. The sold-count update and
// the transaction insert happen atomically in the repository, so a request
// either fully succeeds or leaves no trace.
func (h *Handler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)

	var req recordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("action", "action", "record_transaction", "status", "invalid_json")
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if req.Event == "" || req.NTickets <= 0 {
		logger.Warn("action", "action", "record_transaction", "status", "missing_fields")
		writeError(w, http.StatusBadRequest, "Missing required fields: event, nTickets")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	_, err := h.store.RecordTransaction(ctx, req.Event, req.NTickets, h.clock.Now())
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrEventNotFound):
		// The original contract reports a missing event as 400, not 404.
		logger.Warn("action", "action", "record_transaction", "status", "event_not_found", "event_id", req.Event)
		writeError(w, http.StatusBadRequest, "Event not found")
		return
	case errors.Is(err, repository.ErrSoldOut):
		logger.Warn("action", "action", "record_transaction", "status", "sold_out", "event_id", req.Event, "n_tickets", req.NTickets)
		writeError(w, http.StatusBadRequest, "Event sold out or insufficient tickets available")
		return
	default:
		logger.Error("action", "action", "record_transaction", "status", "db_error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Info("action", "action", "record_transaction", "status", "recorded", "event_id", req.Event, "n_tickets", req.NTickets)
	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Transaction recorded successfully",
	})
}
